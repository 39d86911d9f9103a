package stream

import (
	"io"

	ai "github.com/omnigen-ai/omnigen"
)

// TextStream converts a provider's event channel into a pull-based
// sequence of text chunks. It is forward-only and non-restartable.
type TextStream struct {
	events  <-chan ai.StreamEvent
	acc     string
	done    bool
	onChunk func(TextChunk)
}

// NewTextStream creates a TextStream over a provider event channel.
func NewTextStream(events <-chan ai.StreamEvent) *TextStream {
	return &TextStream{events: events}
}

// OnChunk registers a hook invoked once per chunk as a side channel.
// It has no effect on the chunk sequence itself.
// Returns the stream for chaining.
func (s *TextStream) OnChunk(fn func(TextChunk)) *TextStream {
	s.onChunk = fn
	return s
}

// Next returns the next chunk.
//
// The first chunk's Accumulated equals its Delta; each later chunk's
// Accumulated appends its Delta to the previous value. The terminal
// chunk has Complete set and carries the finish reason and usage; after
// it, Next returns io.EOF. A channel that closes before the terminal
// chunk yields a *Error with kind ErrUnexpectedTermination.
func (s *TextStream) Next() (TextChunk, error) {
	if s.done {
		return TextChunk{}, io.EOF
	}
	for {
		ev, ok := <-s.events
		if !ok {
			return TextChunk{}, &Error{Kind: ErrUnexpectedTermination}
		}
		if ev.Err != nil {
			return TextChunk{}, ev.Err
		}
		if ev.Done {
			s.done = true
			chunk := TextChunk{Accumulated: s.acc, Complete: true}
			if ev.Response != nil {
				chunk.FinishReason = ev.Response.FinishReason
				usage := ev.Response.Usage
				chunk.Usage = &usage
				if chunk.Accumulated == "" {
					chunk.Accumulated = ev.Response.Content
				}
			}
			s.emit(chunk)
			return chunk, nil
		}
		if ev.Delta == "" {
			continue
		}
		s.acc += ev.Delta
		chunk := TextChunk{Delta: ev.Delta, Accumulated: s.acc}
		s.emit(chunk)
		return chunk, nil
	}
}

// Collect drains the stream and returns the terminal chunk.
func (s *TextStream) Collect() (TextChunk, error) {
	for {
		chunk, err := s.Next()
		if err != nil {
			return TextChunk{}, err
		}
		if chunk.Complete {
			return chunk, nil
		}
	}
}

func (s *TextStream) emit(chunk TextChunk) {
	if s.onChunk != nil {
		s.onChunk(chunk)
	}
}
