package gen

import (
	"github.com/omnigen-ai/omnigen/event"
	"github.com/omnigen-ai/omnigen/retry"
	"github.com/omnigen-ai/omnigen/stream"
	"github.com/omnigen-ai/omnigen/tool"
)

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithExecutor attaches a tool executor. Tools registered in the
// executor's registry are advertised to the provider on every request
// and executed during roundtrips.
func WithExecutor(e *tool.Executor) GeneratorOption {
	return func(g *Generator) { g.executor = e }
}

// WithRegistry is shorthand for WithExecutor over a permit-everything
// policy.
func WithRegistry(r *tool.Registry) GeneratorOption {
	return func(g *Generator) { g.executor = tool.NewExecutor(r) }
}

// WithMaxRoundtrips bounds the number of tool-execution cycles per run.
// Values below zero are treated as zero (no tool execution).
func WithMaxRoundtrips(n int) GeneratorOption {
	return func(g *Generator) {
		if n < 0 {
			n = 0
		}
		g.maxRoundtrips = n
	}
}

// WithRetry retries transient provider errors with exponential backoff.
// Server-suggested Retry-After delays are honored when larger than the
// configured backoff. Streaming paths retry connection establishment
// only, never mid-stream events.
func WithRetry(cfg retry.Config) GeneratorOption {
	return func(g *Generator) { g.retry = &cfg }
}

// WithEvents attaches a best-effort event channel for run observability.
func WithEvents(ch chan<- event.Event) GeneratorOption {
	return func(g *Generator) { g.events = ch }
}

// OnFinish registers a hook invoked exactly once with the terminal
// result of every successful run.
func OnFinish(fn func(*Result)) GeneratorOption {
	return func(g *Generator) { g.onFinish = fn }
}

// OnTextChunk registers a side-channel hook fired once per chunk on
// text streaming paths.
func OnTextChunk(fn func(stream.TextChunk)) GeneratorOption {
	return func(g *Generator) { g.onTextChunk = fn }
}

// OnObjectChunk registers a side-channel hook fired once per chunk on
// object streaming paths.
func OnObjectChunk(fn func(stream.ObjectChunk)) GeneratorOption {
	return func(g *Generator) { g.onObjectChunk = fn }
}
