package gen

import (
	"context"
	"errors"
	"fmt"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/event"
	"github.com/omnigen-ai/omnigen/internal/conversation"
	"github.com/omnigen-ai/omnigen/retry"
	"github.com/omnigen-ai/omnigen/stream"
	"github.com/omnigen-ai/omnigen/tool"
)

// DefaultMaxRoundtrips bounds tool-execution cycles when no explicit
// limit is configured.
const DefaultMaxRoundtrips = 5

// Generator orchestrates generation requests against a provider,
// running the tool roundtrip loop until the model stops requesting
// tools or the roundtrip cap is reached.
type Generator struct {
	provider      ai.Provider
	executor      *tool.Executor
	events        chan<- event.Event
	maxRoundtrips int
	retry         *retry.Config
	onFinish      func(*Result)
	onTextChunk   func(stream.TextChunk)
	onObjectChunk func(stream.ObjectChunk)
}

// New creates a Generator for the given provider.
func New(provider ai.Provider, opts ...GeneratorOption) *Generator {
	g := &Generator{
		provider:      provider,
		maxRoundtrips: DefaultMaxRoundtrips,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateText runs the full generation loop and returns the terminal result.
//
// When the provider's response carries tool calls and at least one of
// them names a callable registered tool, every call is executed, the
// results are appended to the conversation, and the conversation is
// resubmitted. The loop repeats up to the configured roundtrip cap;
// at the cap the last response is returned as-is, unresolved tool
// calls included, so callers should check HasToolCalls on the result.
func (g *Generator) GenerateText(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*Result, error) {
	return g.run(ctx, messages, func(ctx context.Context, msgs []ai.Message) (*ai.Response, error) {
		return g.withRetry(ctx, func() (*ai.Response, error) {
			return g.provider.GenerateText(ctx, msgs, g.requestOptions(opts)...)
		})
	})
}

// withRetry wraps one provider invocation in the configured retry policy.
func (g *Generator) withRetry(ctx context.Context, fn func() (*ai.Response, error)) (*ai.Response, error) {
	if g.retry == nil {
		return fn()
	}
	return retry.Do(ctx, *g.retry, fn)
}

// requestOptions prepends the registry's tool definitions so callers
// don't have to re-declare registered tools per request.
func (g *Generator) requestOptions(opts []ai.Option) []ai.Option {
	if g.executor == nil || g.executor.Registry().Len() == 0 {
		return opts
	}
	return append([]ai.Option{ai.WithTools(g.executor.Registry().Definitions())}, opts...)
}

// callFunc performs one provider invocation over the current conversation.
type callFunc func(ctx context.Context, messages []ai.Message) (*ai.Response, error)

// run drives the roundtrip loop shared by the text, object, and
// streaming paths.
func (g *Generator) run(ctx context.Context, messages []ai.Message, call callFunc) (*Result, error) {
	if len(messages) == 0 {
		return nil, ai.ErrEmptyInput
	}

	history := conversation.From(messages)
	result := &Result{}

	event.Emit(g.events, event.Event{Type: event.RunStart})

	roundtrips := 0
	for {
		callNum := roundtrips + 1
		event.Emit(g.events, event.Event{Type: event.RoundtripStart, Roundtrip: callNum})

		response, err := call(ctx, history.Messages())
		if err != nil {
			event.Emit(g.events, event.Event{Type: event.RunError, Roundtrip: callNum, Error: err})
			return nil, err
		}

		event.Emit(g.events, event.Event{Type: event.RoundtripEnd, Roundtrip: callNum, Response: response})

		result.Usage.Add(response.Usage)
		result.UsageByCall = append(result.UsageByCall, response.Usage)
		result.Response = response

		if !response.HasToolCalls() || !g.anyCallable(response.ToolCalls) || roundtrips >= g.maxRoundtrips {
			break
		}

		history.Append(ai.Message{
			Role:      ai.RoleAssistant,
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})

		results := g.executeCalls(ctx, response.ToolCalls)
		result.ToolResults = append(result.ToolResults, results...)
		history.Append(ai.NewToolResultMessage(results...))

		roundtrips++
	}

	result.Roundtrips = roundtrips
	result.Messages = history.Messages()

	event.Emit(g.events, event.Event{Type: event.RunEnd, Response: result.Response})
	if g.onFinish != nil {
		g.onFinish(result)
	}
	return result, nil
}

// anyCallable reports whether at least one requested tool is registered
// with a handler. When none is, the calls are left for the caller to
// resolve and the loop terminates.
func (g *Generator) anyCallable(calls []ai.ToolCall) bool {
	if g.executor == nil {
		return false
	}
	for _, call := range calls {
		if t, ok := g.executor.Registry().Get(call.Name); ok && t.Callable() {
			return true
		}
	}
	return false
}

// executeCalls runs every tool call in order. Unregistered names become
// failed results reporting "tool not found" so the conversation can
// continue rather than aborting.
func (g *Generator) executeCalls(ctx context.Context, calls []ai.ToolCall) []ai.ToolResult {
	results := make([]ai.ToolResult, len(calls))
	for i, call := range calls {
		event.Emit(g.events, event.Event{Type: event.ToolCallStart, ToolCall: &calls[i]})

		result, err := g.executor.Execute(ctx, call)
		if err != nil {
			msg := err.Error()
			var notFound *tool.ErrToolNotFound
			if errors.As(err, &notFound) {
				msg = fmt.Sprintf("tool not found: %s", notFound.Name)
			}
			result = ai.ToolResult{ToolCallID: call.ID, Error: msg}
		}
		results[i] = result

		event.Emit(g.events, event.Event{Type: event.ToolCallResult, ToolCall: &calls[i], ToolResult: &results[i]})
	}
	return results
}
