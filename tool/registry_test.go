package tool

import (
	"context"
	"testing"

	"github.com/omnigen-ai/omnigen/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchArgs struct {
	Query string `json:"query" desc:"Search query"`
}

type sumArgs struct {
	A int `json:"a"`
	B int `json:"b"`
}

func TestRegistryAdd(t *testing.T) {
	t.Run("registers single tool with Func", func(t *testing.T) {
		registry := NewRegistry().Add(
			Func("search", "Search the web", func(ctx context.Context, args searchArgs) (any, error) {
				return "result: " + args.Query, nil
			}),
		)

		assert.Equal(t, 1, registry.Len())
		tl, ok := registry.Get("search")
		require.True(t, ok)
		assert.Equal(t, "search", tl.Name)
		assert.Equal(t, "Search the web", tl.Description)
		assert.True(t, tl.Callable())
	})

	t.Run("registers multiple tools in single Add call", func(t *testing.T) {
		registry := NewRegistry().Add(
			Func("search", "Search the web", func(ctx context.Context, args searchArgs) (any, error) {
				return "search result", nil
			}),
			Func("sum", "Add two numbers", func(ctx context.Context, args sumArgs) (any, error) {
				return args.A + args.B, nil
			}),
		)

		assert.Equal(t, 2, registry.Len())
		assert.Equal(t, []string{"search", "sum"}, registry.Names())
	})

	t.Run("panics on duplicate tool name", func(t *testing.T) {
		assert.Panics(t, func() {
			NewRegistry().Add(
				Func("dupe", "First", func(ctx context.Context, args searchArgs) (any, error) {
					return "", nil
				}),
				Func("dupe", "Second", func(ctx context.Context, args searchArgs) (any, error) {
					return "", nil
				}),
			)
		})
	})
}

func TestRegistryRegister(t *testing.T) {
	weather := New("weather", "Get weather",
		schema.Object().Field("city", schema.String()),
		WithHandler(func(ctx context.Context, args map[string]any) (any, error) {
			return "sunny", nil
		}),
	)

	t.Run("returns error on duplicate", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, registry.Register(weather))

		err := registry.Register(weather)
		var dup *ErrToolAlreadyRegistered
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "weather", dup.Name)
	})

	t.Run("Set overwrites existing registration", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, registry.Register(weather))

		replacement := New("weather", "Get detailed weather", weather.Parameters)
		registry.Set(replacement)

		got, ok := registry.Get("weather")
		require.True(t, ok)
		assert.Equal(t, "Get detailed weather", got.Description)
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("Unregister removes tool", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, registry.Register(weather))

		registry.Unregister("weather")
		_, ok := registry.Get("weather")
		assert.False(t, ok)

		// no-op for unknown names
		registry.Unregister("weather")
		assert.Equal(t, 0, registry.Len())
	})
}

func TestRegistryDefinitions(t *testing.T) {
	registry := NewRegistry().Add(
		Func("search", "Search the web", func(ctx context.Context, args searchArgs) (any, error) {
			return "", nil
		}),
	)

	defs := registry.Definitions()
	require.Len(t, defs, 1)
	assert.Equal(t, "search", defs[0].Name)
	assert.Equal(t, "Search the web", defs[0].Description)
	assert.Contains(t, string(defs[0].Parameters), `"query"`)
}

func TestRegisterFunc(t *testing.T) {
	registry := NewRegistry()
	err := RegisterFunc(registry, "sum", "Add two numbers",
		func(ctx context.Context, args sumArgs) (any, error) {
			return args.A + args.B, nil
		},
	)
	require.NoError(t, err)

	tl, ok := registry.Get("sum")
	require.True(t, ok)

	result, err := tl.Handler(context.Background(), map[string]any{"a": 2, "b": 3})
	require.NoError(t, err)
	assert.Equal(t, 5, result)
}
