// Package event provides a best-effort observability channel for the
// generation lifecycle. Events carry no control flow: emission never
// blocks, and a full or absent channel drops events silently.
package event

import (
	"time"

	ai "github.com/omnigen-ai/omnigen"
)

// Type identifies the kind of event.
type Type string

// Run lifecycle events
const (
	// RunStart fires when a generation run begins.
	RunStart Type = "run_start"

	// RunEnd fires when a generation run completes successfully.
	RunEnd Type = "run_end"

	// RunError fires when an unrecoverable error occurs.
	RunError Type = "run_error"
)

// Roundtrip lifecycle events
const (
	// RoundtripStart fires before each provider call (1-indexed).
	RoundtripStart Type = "roundtrip_start"

	// RoundtripEnd fires after each provider call returns.
	RoundtripEnd Type = "roundtrip_end"
)

// Message lifecycle events
const (
	// MessageDelta fires for each streaming text delta.
	MessageDelta Type = "message_delta"

	// MessageEnd fires when an assistant message completes.
	MessageEnd Type = "message_end"
)

// Tool call lifecycle events
const (
	// ToolCallStart fires when a tool call is about to execute.
	ToolCallStart Type = "tool_call_start"

	// ToolCallResult fires with the tool execution result.
	ToolCallResult Type = "tool_call_result"
)

// Event represents an observable occurrence during a generation run.
type Event struct {
	// Type identifies the kind of event.
	Type Type

	// Delta contains streaming content for MessageDelta events.
	Delta string

	// Response contains the provider response for RoundtripEnd,
	// MessageEnd, and RunEnd events.
	Response *ai.Response

	// ToolCall contains the tool call for tool-related events.
	ToolCall *ai.ToolCall

	// ToolResult contains the result for ToolCallResult events.
	ToolResult *ai.ToolResult

	// Roundtrip is the current provider call number (1-indexed).
	Roundtrip int

	// Error contains the error for RunError events.
	Error error

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Emit sends an event with timestamp to the channel (non-blocking).
// A nil channel is a no-op.
func Emit(ch chan<- Event, e Event) {
	if ch == nil {
		return
	}
	e.Timestamp = time.Now()
	select {
	case ch <- e:
	default:
		// Channel full - don't block
	}
}

// NewChannel creates a buffered event channel with standard capacity.
func NewChannel() chan Event {
	return make(chan Event, 100)
}
