package gen

import (
	"context"
	"io"
	"testing"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/schema"
	"github.com/omnigen-ai/omnigen/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doneEvent(resp *ai.Response) ai.StreamEvent {
	return ai.StreamEvent{Done: true, Response: resp}
}

func drainText(t *testing.T, ts *stream.TextStream) []stream.TextChunk {
	t.Helper()
	var chunks []stream.TextChunk
	for {
		chunk, err := ts.Next()
		if err == io.EOF {
			return chunks
		}
		require.NoError(t, err)
		chunks = append(chunks, chunk)
	}
}

func TestStreamText(t *testing.T) {
	ctx := context.Background()

	t.Run("accumulates deltas with a single terminal chunk", func(t *testing.T) {
		provider := &mockProvider{streams: [][]ai.StreamEvent{{
			{Delta: "Hel"},
			{Delta: "lo, "},
			{Delta: "world!"},
			doneEvent(textResponse("Hello, world!", ai.Usage{TotalTokens: 6})),
		}}}
		g := New(provider)

		chunks := drainText(t, g.StreamText(ctx, userMessages()))
		require.Len(t, chunks, 4)
		assert.Equal(t, "Hello, world!", chunks[3].Accumulated)

		terminal := 0
		for _, c := range chunks {
			if c.Complete {
				terminal++
			}
		}
		assert.Equal(t, 1, terminal)
		require.NotNil(t, chunks[3].Usage)
		assert.Equal(t, 6, chunks[3].Usage.TotalTokens)
	})

	t.Run("one chunk sequence spans tool roundtrips", func(t *testing.T) {
		call := ai.ToolCall{ID: "call-1", Name: "echo", Arguments: `{"message": "hi"}`}
		provider := &mockProvider{streams: [][]ai.StreamEvent{
			{
				{Delta: "Let me check. "},
				doneEvent(toolCallResponse(ai.Usage{TotalTokens: 3}, call)),
			},
			{
				{Delta: "The answer "},
				{Delta: "is hi."},
				doneEvent(textResponse("The answer is hi.", ai.Usage{TotalTokens: 4})),
			},
		}}
		g := New(provider, WithRegistry(echoRegistry(t)))

		chunks := drainText(t, g.StreamText(ctx, userMessages()))
		require.Len(t, chunks, 4)
		assert.Equal(t, 2, provider.calls)

		last := chunks[len(chunks)-1]
		assert.True(t, last.Complete)
		assert.Equal(t, "Let me check. The answer is hi.", last.Accumulated)
		require.NotNil(t, last.Usage)
		assert.Equal(t, 7, last.Usage.TotalTokens, "usage summed across roundtrips")
	})

	t.Run("onFinish and OnTextChunk hooks fire", func(t *testing.T) {
		provider := &mockProvider{streams: [][]ai.StreamEvent{{
			{Delta: "hi"},
			doneEvent(textResponse("hi", ai.Usage{})),
		}}}

		finishes := 0
		var hooked int
		g := New(provider,
			OnFinish(func(*Result) { finishes++ }),
			OnTextChunk(func(stream.TextChunk) { hooked++ }),
		)

		chunks := drainText(t, g.StreamText(ctx, userMessages()))
		assert.Len(t, chunks, 2)
		assert.Equal(t, 2, hooked)
		assert.Equal(t, 1, finishes)
	})

	t.Run("stream without a terminal event is an error", func(t *testing.T) {
		provider := &mockProvider{streams: [][]ai.StreamEvent{{
			{Delta: "partial"},
		}}}
		g := New(provider)

		ts := g.StreamText(ctx, userMessages())
		_, err := ts.Next()
		require.NoError(t, err)

		_, err = ts.Next()
		var serr *stream.Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, stream.ErrUnexpectedTermination, serr.Kind)
	})

	t.Run("provider errors surface from Next", func(t *testing.T) {
		provider := &mockProvider{streams: [][]ai.StreamEvent{{
			{Err: assert.AnError},
		}}}
		g := New(provider)

		_, err := g.StreamText(ctx, userMessages()).Next()
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestStreamObject(t *testing.T) {
	ctx := context.Background()
	personSchema := schema.Object().
		Field("name", schema.String()).
		Field("age", schema.Int())

	t.Run("merges object deltas to completion", func(t *testing.T) {
		provider := &mockProvider{streams: [][]ai.StreamEvent{{
			{ObjectDelta: map[string]any{"name": "Ann"}},
			{ObjectDelta: map[string]any{"age": 30}},
			doneEvent(textResponse(`{"name":"Ann","age":30}`, ai.Usage{TotalTokens: 8})),
		}}}
		g := New(provider)

		final, err := g.StreamObject(ctx, userMessages(), personSchema).Collect()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Ann", "age": 30}, final.Accumulated)
		require.NotNil(t, final.Usage)
		assert.Equal(t, 8, final.Usage.TotalTokens)

		// provider received the response schema
		require.NotNil(t, provider.options[0].ResponseSchema)
	})

	t.Run("falls back to terminal content when no deltas arrive", func(t *testing.T) {
		provider := &mockProvider{streams: [][]ai.StreamEvent{{
			doneEvent(textResponse(`{"name":"Ann","age":30}`, ai.Usage{})),
		}}}
		g := New(provider)

		final, err := g.StreamObject(ctx, userMessages(), personSchema).Collect()
		require.NoError(t, err)
		assert.Equal(t, "Ann", final.Accumulated["name"])
	})
}
