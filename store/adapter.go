// Package store provides conversation persistence.
//
// An [Adapter] is a thread-safe key/value backend holding raw JSON.
// [Conversations] layers message marshaling on top of an adapter so a
// caller can save and restore []ai.Message history across runs:
//
//	conv := store.NewConversations(store.NewMemoryAdapter())
//	conv.Save(ctx, id, messages)
//	messages, ok, err := conv.Load(ctx, id)
package store

import (
	"context"
	"encoding/json"
)

// Adapter defines the interface for persistence backends.
// Implementations must be thread-safe.
type Adapter interface {
	// Get retrieves a value by key. Returns nil, false, nil if not found.
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)

	// Set stores a value by key.
	Set(ctx context.Context, key string, value json.RawMessage) error

	// Delete removes a key. No error if key doesn't exist.
	Delete(ctx context.Context, key string) error

	// Keys returns all keys.
	Keys(ctx context.Context) ([]string, error)

	// Len returns the number of stored keys.
	Len(ctx context.Context) (int, error)

	// Clear removes all data.
	Clear(ctx context.Context) error
}
