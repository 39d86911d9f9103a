package stream

import "fmt"

// ErrorKind classifies streaming failures.
type ErrorKind string

const (
	// ErrMalformedFrame means a frame's payload was not valid JSON.
	ErrMalformedFrame ErrorKind = "malformed_frame"
	// ErrUnexpectedTermination means the stream ended before a terminal chunk.
	ErrUnexpectedTermination ErrorKind = "unexpected_termination"
	// ErrNoData means the stream produced no data within the expected window.
	ErrNoData ErrorKind = "no_data"
)

// Error is a typed streaming failure. Frame carries the offending raw
// frame for malformed-frame errors.
type Error struct {
	Kind  ErrorKind
	Frame string
	Err   error
}

// Error returns a formatted message including the kind and, for
// malformed frames, the raw frame content.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrMalformedFrame:
		return fmt.Sprintf("stream: malformed frame: %q", e.Frame)
	case ErrUnexpectedTermination:
		return "stream: terminated before completion"
	case ErrNoData:
		return "stream: no data received"
	}
	return fmt.Sprintf("stream: %s", e.Kind)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}
