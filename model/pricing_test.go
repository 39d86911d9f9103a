package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ai "github.com/omnigen-ai/omnigen"
)

func TestPricingCost(t *testing.T) {
	p := Pricing{InputPerMillion: 3.00, OutputPerMillion: 15.00}

	usage := ai.Usage{PromptTokens: 1_000_000, CompletionTokens: 200_000}
	assert.InDelta(t, 3.00+3.00, p.Cost(usage), 1e-9)

	t.Run("zero usage costs nothing", func(t *testing.T) {
		assert.Zero(t, p.Cost(ai.Usage{}))
	})
}

func TestHasCachedPricing(t *testing.T) {
	assert.True(t, GPT4o.Pricing().HasCachedPricing())
	assert.False(t, ClaudeSonnet45.Pricing().HasCachedPricing())
}

func TestFind(t *testing.T) {
	m, ok := Find("claude-sonnet-4-5")
	assert.True(t, ok)
	assert.Equal(t, ClaudeSonnet45, m)
	assert.Equal(t, VendorAnthropic, m.Vendor())

	_, ok = Find("nonexistent-model")
	assert.False(t, ok)
}

func TestModelIdentifiers(t *testing.T) {
	assert.Equal(t, "gpt-4o", GPT4o.String())
	assert.Equal(t, "claude-sonnet-4-5", ClaudeSonnet45.String())
	assert.Equal(t, DefaultClaudeModel, ClaudeSonnet45)
	assert.Equal(t, DefaultGPTModel, GPT4o)
}
