package store

import (
	"context"
	"encoding/json"
	"fmt"

	ai "github.com/omnigen-ai/omnigen"
)

// Conversations persists message history keyed by conversation ID.
// Messages are stored as JSON through the underlying [Adapter], so any
// backend that round-trips raw JSON works.
type Conversations struct {
	adapter Adapter
}

// NewConversations creates a conversation store over the given adapter.
// A nil adapter defaults to a fresh [MemoryAdapter].
func NewConversations(adapter Adapter) *Conversations {
	if adapter == nil {
		adapter = NewMemoryAdapter()
	}
	return &Conversations{adapter: adapter}
}

// Save stores the full message history for a conversation, replacing
// any previous history under the same ID.
func (c *Conversations) Save(ctx context.Context, id string, messages []ai.Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("store: marshal conversation %q: %w", id, err)
	}
	return c.adapter.Set(ctx, id, data)
}

// Load retrieves the message history for a conversation.
// Returns nil, false, nil if the conversation does not exist.
func (c *Conversations) Load(ctx context.Context, id string) ([]ai.Message, bool, error) {
	data, ok, err := c.adapter.Get(ctx, id)
	if err != nil || !ok {
		return nil, ok, err
	}
	var messages []ai.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, false, fmt.Errorf("store: unmarshal conversation %q: %w", id, err)
	}
	return messages, true, nil
}

// Append loads a conversation, appends the given messages, and saves
// the result. A missing conversation starts empty.
func (c *Conversations) Append(ctx context.Context, id string, messages ...ai.Message) error {
	history, _, err := c.Load(ctx, id)
	if err != nil {
		return err
	}
	return c.Save(ctx, id, append(history, messages...))
}

// Delete removes a conversation. No error if it does not exist.
func (c *Conversations) Delete(ctx context.Context, id string) error {
	return c.adapter.Delete(ctx, id)
}

// IDs returns the IDs of all stored conversations.
func (c *Conversations) IDs(ctx context.Context) ([]string, error) {
	return c.adapter.Keys(ctx)
}
