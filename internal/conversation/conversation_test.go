package conversation

import (
	"sync"
	"testing"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/stretchr/testify/assert"
)

func TestHistory_Append(t *testing.T) {
	h := New()

	assert.Equal(t, 0, h.Len())

	h.Append(ai.Message{Role: ai.RoleUser, Content: "Hello"})
	assert.Equal(t, 1, h.Len())

	h.Append(
		ai.Message{Role: ai.RoleAssistant, Content: "Hi there"},
		ai.Message{Role: ai.RoleUser, Content: "How are you?"},
	)
	assert.Equal(t, 3, h.Len())
}

func TestHistory_Messages(t *testing.T) {
	h := New()

	h.Append(
		ai.Message{Role: ai.RoleUser, Content: "Hello"},
		ai.Message{Role: ai.RoleAssistant, Content: "Hi"},
	)

	messages := h.Messages()
	assert.Len(t, messages, 2)
	assert.Equal(t, "Hello", messages[0].Content)

	// Verify it's a copy - modifying returned slice doesn't affect history
	messages[0].Content = "Modified"
	assert.Equal(t, "Hello", h.Messages()[0].Content)
}

func TestHistory_Last(t *testing.T) {
	h := From([]ai.Message{
		{Role: ai.RoleUser, Content: "one"},
		{Role: ai.RoleAssistant, Content: "two"},
		{Role: ai.RoleUser, Content: "three"},
	})

	last := h.Last(2)
	assert.Len(t, last, 2)
	assert.Equal(t, "two", last[0].Content)
	assert.Equal(t, "three", last[1].Content)

	assert.Len(t, h.Last(10), 3)
	assert.Nil(t, h.Last(0))
}

func TestHistory_Clone(t *testing.T) {
	h := From([]ai.Message{{Role: ai.RoleUser, Content: "Hello"}})

	clone := h.Clone()
	clone.Append(ai.Message{Role: ai.RoleAssistant, Content: "Hi"})

	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestHistory_ConcurrentAccess(t *testing.T) {
	h := New()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Append(ai.Message{Role: ai.RoleUser, Content: "msg"})
			_ = h.Messages()
			_ = h.Len()
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, h.Len())
}
