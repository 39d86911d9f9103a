package omnigen

import "context"

// Provider defines the interface vendor adapters implement.
//
// Streaming methods return a channel of raw StreamEvents; the channel is
// closed when the stream completes or an error occurs. Callers normally
// consume streams through the stream subpackage, which accumulates events
// into chunks with a single terminal chunk per stream.
type Provider interface {
	// GenerateText sends a conversation and returns a complete response.
	GenerateText(ctx context.Context, messages []Message, opts ...Option) (*Response, error)

	// StreamText sends a conversation and streams the response incrementally.
	StreamText(ctx context.Context, messages []Message, opts ...Option) (<-chan StreamEvent, error)

	// GenerateObject sends a conversation and returns a response whose
	// Content is a JSON document conforming to the configured ResponseSchema
	// (see WithResponseSchema).
	GenerateObject(ctx context.Context, messages []Message, opts ...Option) (*Response, error)

	// StreamObject streams a structured-output response incrementally.
	StreamObject(ctx context.Context, messages []Message, opts ...Option) (<-chan StreamEvent, error)
}
