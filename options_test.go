package omnigen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOptions(t *testing.T) {
	t.Run("defaults are zero", func(t *testing.T) {
		o := ApplyOptions()

		assert.Empty(t, o.Model)
		assert.Empty(t, o.System)
		assert.Zero(t, o.MaxTokens)
		assert.Nil(t, o.Temperature)
		assert.Nil(t, o.Tools)
		assert.Nil(t, o.ResponseSchema)
	})

	t.Run("options compose", func(t *testing.T) {
		o := ApplyOptions(
			WithModel("gpt-4o"),
			WithSystem("be terse"),
			WithMaxTokens(256),
			WithTemperature(0.7),
			WithToolChoice(ToolChoiceAuto),
		)

		assert.Equal(t, "gpt-4o", o.Model)
		assert.Equal(t, "be terse", o.System)
		assert.Equal(t, 256, o.MaxTokens)
		require.NotNil(t, o.Temperature)
		assert.Equal(t, 0.7, *o.Temperature)
		assert.Equal(t, ToolChoiceAuto, o.ToolChoice)
	})

	t.Run("later options win", func(t *testing.T) {
		o := ApplyOptions(WithModel("first"), WithModel("second"))
		assert.Equal(t, "second", o.Model)
	})

	t.Run("WithTools sets declarations", func(t *testing.T) {
		tools := []Tool{{Name: "a"}, {Name: "b"}}
		o := ApplyOptions(WithTools(tools))

		require.Len(t, o.Tools, 2)
		assert.Equal(t, "a", o.Tools[0].Name)
	})

	t.Run("WithResponseSchema copies the schema", func(t *testing.T) {
		rs := ResponseSchema{
			Name:   "person",
			Schema: json.RawMessage(`{"type":"object"}`),
			Strict: true,
		}
		o := ApplyOptions(WithResponseSchema(rs))

		require.NotNil(t, o.ResponseSchema)
		assert.Equal(t, "person", o.ResponseSchema.Name)
		assert.True(t, o.ResponseSchema.Strict)
	})
}
