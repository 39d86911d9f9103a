package gen

import (
	"context"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/event"
	"github.com/omnigen-ai/omnigen/retry"
	"github.com/omnigen-ai/omnigen/schema"
	"github.com/omnigen-ai/omnigen/stream"
)

// StreamText runs the generation loop on the streaming path and returns
// a pull-based chunk sequence.
//
// Deltas from every roundtrip flow through a single sequence; tool
// execution happens between roundtrips without surfacing as chunks.
// The terminal chunk carries the final finish reason and the usage
// summed across all provider calls. Errors, including mid-run provider
// failures, surface from the stream's Next method.
func (g *Generator) StreamText(ctx context.Context, messages []ai.Message, opts ...ai.Option) *stream.TextStream {
	out := make(chan ai.StreamEvent, 64)

	go func() {
		defer close(out)

		result, err := g.run(ctx, messages, func(ctx context.Context, msgs []ai.Message) (*ai.Response, error) {
			return g.consumeStream(ctx, out, func() (<-chan ai.StreamEvent, error) {
				return g.provider.StreamText(ctx, msgs, g.requestOptions(opts)...)
			})
		})
		if err != nil {
			out <- ai.StreamEvent{Err: err}
			return
		}
		out <- terminalEvent(result)
	}()

	ts := stream.NewTextStream(out)
	if g.onTextChunk != nil {
		ts.OnChunk(g.onTextChunk)
	}
	return ts
}

// StreamObject is StreamText's structured-output counterpart. Object
// deltas are deep-merged by the returned stream; the terminal chunk's
// accumulated value falls back to the final response content when the
// provider streams no partial objects.
//
// The bundled providers (openai, anthropic, compat) stream structured
// output as text deltas, so with them the stream carries no
// intermediate object chunks and the object arrives parsed on the
// terminal chunk. Partial-object chunks appear only with Provider
// implementations that emit StreamEvent.ObjectDelta natively.
//
// The final accumulated object is not re-validated against s here;
// callers needing validated output should validate the terminal chunk
// or use GenerateObject.
func (g *Generator) StreamObject(ctx context.Context, messages []ai.Message, s schema.Schema, opts ...ai.Option) *stream.ObjectStream {
	out := make(chan ai.StreamEvent, 64)

	go func() {
		defer close(out)

		rs, err := responseSchema(s)
		if err != nil {
			out <- ai.StreamEvent{Err: err}
			return
		}
		opts = append(opts, ai.WithResponseSchema(rs))

		result, err := g.run(ctx, messages, func(ctx context.Context, msgs []ai.Message) (*ai.Response, error) {
			return g.consumeStream(ctx, out, func() (<-chan ai.StreamEvent, error) {
				return g.provider.StreamObject(ctx, msgs, g.requestOptions(opts)...)
			})
		})
		if err != nil {
			out <- ai.StreamEvent{Err: err}
			return
		}
		out <- terminalEvent(result)
	}()

	os := stream.NewObjectStream(out)
	if g.onObjectChunk != nil {
		os.OnChunk(g.onObjectChunk)
	}
	return os
}

// consumeStream drains one provider stream, forwarding deltas to out
// and returning the stream's terminal response. The terminal event
// itself is withheld; the run loop emits a single terminal once all
// roundtrips finish.
func (g *Generator) consumeStream(ctx context.Context, out chan<- ai.StreamEvent, open func() (<-chan ai.StreamEvent, error)) (*ai.Response, error) {
	events, err := g.openWithRetry(ctx, open)
	if err != nil {
		return nil, err
	}

	var response *ai.Response
	for ev := range events {
		if ev.Err != nil {
			return nil, ev.Err
		}
		if ev.Done {
			response = ev.Response
			continue
		}
		if ev.Delta != "" {
			event.Emit(g.events, event.Event{Type: event.MessageDelta, Delta: ev.Delta})
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if response == nil {
		return nil, &stream.Error{Kind: stream.ErrUnexpectedTermination}
	}
	return response, nil
}

// openWithRetry retries stream connection establishment under the
// configured retry policy. Events already flowing are never replayed.
func (g *Generator) openWithRetry(ctx context.Context, open func() (<-chan ai.StreamEvent, error)) (<-chan ai.StreamEvent, error) {
	if g.retry == nil {
		return open()
	}
	return retry.DoStream(ctx, *g.retry, open)
}

// terminalEvent builds the single Done event for a completed run, with
// usage replaced by the run's accumulated total.
func terminalEvent(result *Result) ai.StreamEvent {
	final := *result.Response
	final.Usage = result.Usage
	return ai.StreamEvent{Done: true, Response: &final}
}
