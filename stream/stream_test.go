package stream

import (
	"errors"
	"io"
	"testing"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(events ...ai.StreamEvent) <-chan ai.StreamEvent {
	ch := make(chan ai.StreamEvent, len(events))
	for _, ev := range events {
		ch <- ev
	}
	close(ch)
	return ch
}

func doneEvent(content string, reason ai.FinishReason, usage ai.Usage) ai.StreamEvent {
	return ai.StreamEvent{
		Done: true,
		Response: &ai.Response{
			Content:      content,
			FinishReason: reason,
			Usage:        usage,
		},
	}
}

func TestTextStream(t *testing.T) {
	t.Run("accumulates deltas in order", func(t *testing.T) {
		s := NewTextStream(feed(
			ai.StreamEvent{Delta: "Hel"},
			ai.StreamEvent{Delta: "lo, "},
			ai.StreamEvent{Delta: "world!"},
			doneEvent("Hello, world!", ai.FinishStop, ai.Usage{PromptTokens: 3, CompletionTokens: 4, TotalTokens: 7}),
		))

		var chunks []TextChunk
		for {
			chunk, err := s.Next()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			chunks = append(chunks, chunk)
		}

		require.Len(t, chunks, 4)
		assert.Equal(t, "Hel", chunks[0].Delta)
		assert.Equal(t, "Hel", chunks[0].Accumulated)
		assert.Equal(t, "Hello, ", chunks[1].Accumulated)
		assert.Equal(t, "Hello, world!", chunks[2].Accumulated)

		terminal := 0
		for _, c := range chunks {
			if c.Complete {
				terminal++
			}
		}
		assert.Equal(t, 1, terminal, "exactly one terminal chunk")

		last := chunks[len(chunks)-1]
		assert.True(t, last.Complete)
		assert.Equal(t, "Hello, world!", last.Accumulated)
		assert.Equal(t, ai.FinishStop, last.FinishReason)
		require.NotNil(t, last.Usage)
		assert.Equal(t, 7, last.Usage.TotalTokens)
	})

	t.Run("skips empty deltas", func(t *testing.T) {
		s := NewTextStream(feed(
			ai.StreamEvent{Delta: ""},
			ai.StreamEvent{Delta: "hi"},
			doneEvent("hi", ai.FinishStop, ai.Usage{}),
		))

		chunk, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, "hi", chunk.Delta)
	})

	t.Run("returns EOF after the terminal chunk", func(t *testing.T) {
		s := NewTextStream(feed(doneEvent("", ai.FinishStop, ai.Usage{})))

		chunk, err := s.Next()
		require.NoError(t, err)
		assert.True(t, chunk.Complete)

		_, err = s.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("close without terminal is an unexpected termination", func(t *testing.T) {
		s := NewTextStream(feed(ai.StreamEvent{Delta: "partial"}))

		_, err := s.Next()
		require.NoError(t, err)

		_, err = s.Next()
		var serr *Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, ErrUnexpectedTermination, serr.Kind)
	})

	t.Run("propagates event errors", func(t *testing.T) {
		cause := errors.New("connection reset")
		s := NewTextStream(feed(ai.StreamEvent{Err: cause}))

		_, err := s.Next()
		assert.ErrorIs(t, err, cause)
	})

	t.Run("OnChunk fires once per chunk without affecting the sequence", func(t *testing.T) {
		var hooked []string
		s := NewTextStream(feed(
			ai.StreamEvent{Delta: "a"},
			ai.StreamEvent{Delta: "b"},
			doneEvent("ab", ai.FinishStop, ai.Usage{}),
		)).OnChunk(func(c TextChunk) {
			hooked = append(hooked, c.Accumulated)
		})

		final, err := s.Collect()
		require.NoError(t, err)
		assert.Equal(t, "ab", final.Accumulated)
		assert.Equal(t, []string{"a", "ab", "ab"}, hooked)
	})
}

func TestObjectStream(t *testing.T) {
	t.Run("deep merges deltas", func(t *testing.T) {
		s := NewObjectStream(feed(
			ai.StreamEvent{ObjectDelta: map[string]any{"name": "Ann"}},
			ai.StreamEvent{ObjectDelta: map[string]any{"address": map[string]any{"city": "Oslo"}}},
			ai.StreamEvent{ObjectDelta: map[string]any{"address": map[string]any{"zip": "0150"}, "age": 30}},
			doneEvent("", ai.FinishStop, ai.Usage{TotalTokens: 12}),
		))

		final, err := s.Collect()
		require.NoError(t, err)
		assert.True(t, final.Complete)
		assert.Equal(t, map[string]any{
			"name": "Ann",
			"age":  30,
			"address": map[string]any{
				"city": "Oslo",
				"zip":  "0150",
			},
		}, final.Accumulated)
		require.NotNil(t, final.Usage)
		assert.Equal(t, 12, final.Usage.TotalTokens)
	})

	t.Run("falls back to terminal response content", func(t *testing.T) {
		s := NewObjectStream(feed(
			doneEvent(`{"name":"Ann"}`, ai.FinishStop, ai.Usage{}),
		))

		final, err := s.Collect()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Ann"}, final.Accumulated)
	})

	t.Run("close without terminal is an unexpected termination", func(t *testing.T) {
		s := NewObjectStream(feed(
			ai.StreamEvent{ObjectDelta: map[string]any{"name": "Ann"}},
		))

		_, err := s.Next()
		require.NoError(t, err)

		_, err = s.Next()
		var serr *Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, ErrUnexpectedTermination, serr.Kind)
	})
}
