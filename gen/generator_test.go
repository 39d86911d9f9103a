package gen

import (
	"context"
	"errors"
	"testing"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/event"
	"github.com/omnigen-ai/omnigen/schema"
	"github.com/omnigen-ai/omnigen/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider returns scripted responses in order, repeating the last
// one when the script runs out.
type mockProvider struct {
	responses []*ai.Response
	streams   [][]ai.StreamEvent
	err       error

	calls    int
	messages [][]ai.Message
	options  []*ai.Options
}

func (m *mockProvider) record(messages []ai.Message, opts []ai.Option) {
	m.calls++
	m.messages = append(m.messages, messages)
	m.options = append(m.options, ai.ApplyOptions(opts...))
}

func (m *mockProvider) next() *ai.Response {
	i := m.calls - 1
	if i >= len(m.responses) {
		i = len(m.responses) - 1
	}
	return m.responses[i]
}

func (m *mockProvider) GenerateText(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	m.record(messages, opts)
	if m.err != nil {
		return nil, m.err
	}
	return m.next(), nil
}

func (m *mockProvider) GenerateObject(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	return m.GenerateText(ctx, messages, opts...)
}

func (m *mockProvider) StreamText(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	m.record(messages, opts)
	if m.err != nil {
		return nil, m.err
	}
	i := m.calls - 1
	if i >= len(m.streams) {
		i = len(m.streams) - 1
	}
	ch := make(chan ai.StreamEvent, len(m.streams[i]))
	for _, ev := range m.streams[i] {
		ch <- ev
	}
	close(ch)
	return ch, nil
}

func (m *mockProvider) StreamObject(ctx context.Context, messages []ai.Message, opts ...ai.Option) (<-chan ai.StreamEvent, error) {
	return m.StreamText(ctx, messages, opts...)
}

func textResponse(content string, usage ai.Usage) *ai.Response {
	return &ai.Response{Content: content, FinishReason: ai.FinishStop, Usage: usage}
}

func toolCallResponse(usage ai.Usage, calls ...ai.ToolCall) *ai.Response {
	return &ai.Response{FinishReason: ai.FinishToolCalls, ToolCalls: calls, Usage: usage}
}

func echoRegistry(t *testing.T) *tool.Registry {
	t.Helper()
	return tool.NewRegistry().Add(
		tool.New("echo", "Echo the message back",
			schema.Object().Field("message", schema.String()),
			tool.WithHandler(func(ctx context.Context, args map[string]any) (any, error) {
				return args["message"], nil
			}),
		),
	)
}

func userMessages() []ai.Message {
	return []ai.Message{ai.NewUserMessage("hi")}
}

func TestGenerateText(t *testing.T) {
	ctx := context.Background()

	t.Run("plain response completes in one call", func(t *testing.T) {
		provider := &mockProvider{responses: []*ai.Response{
			textResponse("hello", ai.Usage{PromptTokens: 2, CompletionTokens: 3, TotalTokens: 5}),
		}}
		g := New(provider)

		result, err := g.GenerateText(ctx, userMessages())
		require.NoError(t, err)
		assert.Equal(t, 1, provider.calls)
		assert.Equal(t, "hello", result.Text())
		assert.Equal(t, 0, result.Roundtrips)
		assert.Equal(t, 5, result.Usage.TotalTokens)
		assert.False(t, result.HasToolCalls())
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		g := New(&mockProvider{responses: []*ai.Response{textResponse("", ai.Usage{})}})
		_, err := g.GenerateText(ctx, nil)
		assert.ErrorIs(t, err, ai.ErrEmptyInput)
	})

	t.Run("provider errors propagate", func(t *testing.T) {
		cause := errors.New("rate limited")
		finished := false
		g := New(&mockProvider{err: cause}, OnFinish(func(*Result) { finished = true }))

		_, err := g.GenerateText(ctx, userMessages())
		assert.ErrorIs(t, err, cause)
		assert.False(t, finished)
	})

	t.Run("executes tool calls and resubmits", func(t *testing.T) {
		call := ai.ToolCall{ID: "call-1", Name: "echo", Arguments: `{"message": "ping"}`}
		provider := &mockProvider{responses: []*ai.Response{
			toolCallResponse(ai.Usage{PromptTokens: 10, TotalTokens: 10}, call),
			textResponse("pong", ai.Usage{CompletionTokens: 4, TotalTokens: 4}),
		}}
		g := New(provider, WithRegistry(echoRegistry(t)))

		result, err := g.GenerateText(ctx, userMessages())
		require.NoError(t, err)

		assert.Equal(t, 2, provider.calls)
		assert.Equal(t, "pong", result.Text())
		assert.Equal(t, 1, result.Roundtrips)

		// usage summed across both calls
		assert.Equal(t, 14, result.Usage.TotalTokens)
		require.Len(t, result.UsageByCall, 2)
		assert.Equal(t, 10, result.UsageByCall[0].TotalTokens)

		// conversation grew: user, assistant tool call, tool result
		require.Len(t, result.Messages, 3)
		assert.Equal(t, ai.RoleAssistant, result.Messages[1].Role)
		assert.Equal(t, ai.RoleTool, result.Messages[2].Role)
		require.Len(t, result.Messages[2].ToolResults, 1)
		assert.Equal(t, "ping", result.Messages[2].ToolResults[0].Result)

		// second provider call saw the grown conversation
		assert.Len(t, provider.messages[1], 3)

		require.Len(t, result.ToolResults, 1)
		assert.Equal(t, "call-1", result.ToolResults[0].ToolCallID)
	})

	t.Run("registered tools are advertised to the provider", func(t *testing.T) {
		provider := &mockProvider{responses: []*ai.Response{textResponse("ok", ai.Usage{})}}
		g := New(provider, WithRegistry(echoRegistry(t)))

		_, err := g.GenerateText(ctx, userMessages())
		require.NoError(t, err)

		require.Len(t, provider.options[0].Tools, 1)
		assert.Equal(t, "echo", provider.options[0].Tools[0].Name)
	})

	t.Run("roundtrip cap returns the last result as-is", func(t *testing.T) {
		call := ai.ToolCall{ID: "call-1", Name: "echo", Arguments: `{"message": "again"}`}
		provider := &mockProvider{responses: []*ai.Response{
			toolCallResponse(ai.Usage{TotalTokens: 1}, call),
		}}
		g := New(provider, WithRegistry(echoRegistry(t)), WithMaxRoundtrips(2))

		result, err := g.GenerateText(ctx, userMessages())
		require.NoError(t, err)

		// 1 initial call + 2 roundtrips
		assert.Equal(t, 3, provider.calls)
		assert.Equal(t, 2, result.Roundtrips)
		assert.True(t, result.HasToolCalls())
		assert.Equal(t, 3, result.Usage.TotalTokens)
	})

	t.Run("no callable match returns tool calls to the caller", func(t *testing.T) {
		call := ai.ToolCall{ID: "call-1", Name: "unknown", Arguments: `{}`}
		provider := &mockProvider{responses: []*ai.Response{
			toolCallResponse(ai.Usage{}, call),
		}}
		g := New(provider, WithRegistry(echoRegistry(t)))

		result, err := g.GenerateText(ctx, userMessages())
		require.NoError(t, err)
		assert.Equal(t, 1, provider.calls)
		assert.True(t, result.HasToolCalls())
	})

	t.Run("unknown tool alongside a known one becomes a failed result", func(t *testing.T) {
		calls := []ai.ToolCall{
			{ID: "a", Name: "echo", Arguments: `{"message": "hi"}`},
			{ID: "b", Name: "unknown", Arguments: `{}`},
		}
		provider := &mockProvider{responses: []*ai.Response{
			toolCallResponse(ai.Usage{}, calls...),
			textResponse("recovered", ai.Usage{}),
		}}
		g := New(provider, WithRegistry(echoRegistry(t)))

		result, err := g.GenerateText(ctx, userMessages())
		require.NoError(t, err)
		assert.Equal(t, "recovered", result.Text())

		toolMsg := result.Messages[2]
		require.Len(t, toolMsg.ToolResults, 2)
		assert.False(t, toolMsg.ToolResults[0].Failed())
		assert.True(t, toolMsg.ToolResults[1].Failed())
		assert.Contains(t, toolMsg.ToolResults[1].Error, "tool not found")
	})

	t.Run("onFinish fires exactly once", func(t *testing.T) {
		call := ai.ToolCall{ID: "call-1", Name: "echo", Arguments: `{"message": "x"}`}
		provider := &mockProvider{responses: []*ai.Response{
			toolCallResponse(ai.Usage{}, call),
			textResponse("done", ai.Usage{}),
		}}

		finishes := 0
		g := New(provider, WithRegistry(echoRegistry(t)), OnFinish(func(r *Result) {
			finishes++
			assert.Equal(t, "done", r.Text())
		}))

		_, err := g.GenerateText(ctx, userMessages())
		require.NoError(t, err)
		assert.Equal(t, 1, finishes)
	})

	t.Run("emits run lifecycle events", func(t *testing.T) {
		provider := &mockProvider{responses: []*ai.Response{textResponse("ok", ai.Usage{})}}
		ch := event.NewChannel()
		g := New(provider, WithEvents(ch))

		_, err := g.GenerateText(ctx, userMessages())
		require.NoError(t, err)
		close(ch)

		var types []event.Type
		for ev := range ch {
			types = append(types, ev.Type)
		}
		assert.Equal(t, []event.Type{event.RunStart, event.RoundtripStart, event.RoundtripEnd, event.RunEnd}, types)
	})
}

func TestGenerateObject(t *testing.T) {
	ctx := context.Background()
	personSchema := schema.Object().
		Field("name", schema.String()).
		Field("age", schema.Int())

	t.Run("parses and validates the output", func(t *testing.T) {
		provider := &mockProvider{responses: []*ai.Response{
			textResponse(`{"name":"Ann","age":30}`, ai.Usage{TotalTokens: 9}),
		}}
		g := New(provider)

		result, err := g.GenerateObject(ctx, userMessages(), personSchema)
		require.NoError(t, err)
		assert.Equal(t, "Ann", result.Object["name"])
		assert.Equal(t, 9, result.Usage.TotalTokens)

		// response schema was passed through to the provider
		rs := provider.options[0].ResponseSchema
		require.NotNil(t, rs)
		assert.Contains(t, string(rs.Schema), `"age"`)
	})

	t.Run("schema violations surface as validation errors", func(t *testing.T) {
		provider := &mockProvider{responses: []*ai.Response{
			textResponse(`{"name":"Ann"}`, ai.Usage{}),
		}}
		g := New(provider)

		_, err := g.GenerateObject(ctx, userMessages(), personSchema)
		var verr *schema.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Error(), "age")
	})

	t.Run("non-JSON output is an error", func(t *testing.T) {
		provider := &mockProvider{responses: []*ai.Response{
			textResponse(`not json`, ai.Usage{}),
		}}
		g := New(provider)

		_, err := g.GenerateObject(ctx, userMessages(), personSchema)
		assert.Error(t, err)
	})
}

func TestObjectTyped(t *testing.T) {
	type person struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	provider := &mockProvider{responses: []*ai.Response{
		textResponse(`{"name":"Ann","age":30}`, ai.Usage{}),
	}}
	g := New(provider)

	result, err := ObjectTyped[person](context.Background(), g, userMessages())
	require.NoError(t, err)
	assert.Equal(t, person{Name: "Ann", Age: 30}, result.Value)
}
