// Package conversation manages the message history a generation run
// builds up across tool roundtrips.
package conversation

import (
	"sync"

	ai "github.com/omnigen-ai/omnigen"
)

// History holds an ordered conversation transcript.
// It is safe for concurrent use.
type History struct {
	mu       sync.RWMutex
	messages []ai.Message
}

// New creates an empty History.
func New() *History {
	return &History{messages: make([]ai.Message, 0)}
}

// From creates a History initialized with existing messages.
func From(messages []ai.Message) *History {
	h := New()
	if len(messages) > 0 {
		h.messages = make([]ai.Message, len(messages))
		copy(h.messages, messages)
	}
	return h
}

// Messages returns a copy of all messages.
func (h *History) Messages() []ai.Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	result := make([]ai.Message, len(h.messages))
	copy(result, h.messages)
	return result
}

// Append adds messages to the history.
func (h *History) Append(msgs ...ai.Message) {
	if len(msgs) == 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, msgs...)
}

// Len returns the number of messages.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.messages)
}

// Last returns the last n messages. If n > Len(), returns all messages.
func (h *History) Last(n int) []ai.Message {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if n <= 0 {
		return nil
	}
	start := len(h.messages) - n
	if start < 0 {
		start = 0
	}
	result := make([]ai.Message, len(h.messages)-start)
	copy(result, h.messages[start:])
	return result
}

// Clone creates a deep copy of the History.
func (h *History) Clone() *History {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return From(h.messages)
}

// Clear removes all messages.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = make([]ai.Message, 0)
}
