package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmit(t *testing.T) {
	t.Run("stamps and delivers events", func(t *testing.T) {
		ch := NewChannel()
		Emit(ch, Event{Type: RunStart})

		got := <-ch
		assert.Equal(t, RunStart, got.Type)
		assert.False(t, got.Timestamp.IsZero())
	})

	t.Run("drops events when the channel is full", func(t *testing.T) {
		ch := make(chan Event, 1)
		Emit(ch, Event{Type: RunStart})
		Emit(ch, Event{Type: RunEnd})

		assert.Len(t, ch, 1)
		got := <-ch
		assert.Equal(t, RunStart, got.Type)
	})

	t.Run("nil channel is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Emit(nil, Event{Type: RunError})
		})
	})
}
