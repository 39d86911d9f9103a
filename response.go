package omnigen

// FinishReason classifies why generation stopped.
type FinishReason string

const (
	FinishStop          FinishReason = "stop"
	FinishLength        FinishReason = "length"
	FinishToolCalls     FinishReason = "tool_calls"
	FinishContentFilter FinishReason = "content_filter"
)

// Usage contains token usage information for a request.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// Add accumulates another usage record into this one.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// Response represents a complete response from a provider.
type Response struct {
	Content      string       `json:"content,omitempty"`
	FinishReason FinishReason `json:"finishReason,omitempty"`
	Usage        Usage        `json:"usage"`
	// ToolCalls contains any tool invocation requests from the model.
	ToolCalls []ToolCall `json:"toolCalls,omitempty"`
}

// HasToolCalls reports whether the model requested tool invocations.
func (r *Response) HasToolCalls() bool {
	return r != nil && len(r.ToolCalls) > 0
}

// StreamEvent represents a single event in a provider streaming response.
// Adapters emit deltas as they arrive and close the channel after sending
// a final Done event carrying the complete Response.
type StreamEvent struct {
	// Delta contains the incremental text content for this event.
	Delta string
	// ObjectDelta contains a partial-object fragment for structured-output
	// streams. Nil for text streams. Optional: providers that stream
	// structured output as JSON text leave it nil and consumers parse the
	// object from the terminal Response instead.
	ObjectDelta map[string]any
	// Done indicates this is the final event in the stream.
	Done bool
	// Response contains the final response data when Done is true.
	Response *Response
	// Err contains any error that occurred during streaming.
	Err error
}
