package stream

import (
	"encoding/json"
	"io"

	ai "github.com/omnigen-ai/omnigen"
)

// ObjectStream converts a provider's event channel into a pull-based
// sequence of partial-object chunks. It is forward-only and
// non-restartable.
type ObjectStream struct {
	events  <-chan ai.StreamEvent
	acc     map[string]any
	done    bool
	onChunk func(ObjectChunk)
}

// NewObjectStream creates an ObjectStream over a provider event channel.
func NewObjectStream(events <-chan ai.StreamEvent) *ObjectStream {
	return &ObjectStream{events: events}
}

// OnChunk registers a hook invoked once per chunk as a side channel.
// It has no effect on the chunk sequence itself.
// Returns the stream for chaining.
func (s *ObjectStream) OnChunk(fn func(ObjectChunk)) *ObjectStream {
	s.onChunk = fn
	return s
}

// Next returns the next chunk.
//
// Each chunk's Accumulated is the deep merge of every delta so far.
// The terminal chunk has Complete set and carries the finish reason and
// usage; after it, Next returns io.EOF. A channel that closes before
// the terminal chunk yields a *Error with kind ErrUnexpectedTermination.
func (s *ObjectStream) Next() (ObjectChunk, error) {
	if s.done {
		return ObjectChunk{}, io.EOF
	}
	for {
		ev, ok := <-s.events
		if !ok {
			return ObjectChunk{}, &Error{Kind: ErrUnexpectedTermination}
		}
		if ev.Err != nil {
			return ObjectChunk{}, ev.Err
		}
		if ev.Done {
			s.done = true
			chunk := ObjectChunk{Accumulated: s.acc, Complete: true}
			if ev.Response != nil {
				chunk.FinishReason = ev.Response.FinishReason
				usage := ev.Response.Usage
				chunk.Usage = &usage
				if chunk.Accumulated == nil && ev.Response.Content != "" {
					var parsed map[string]any
					if err := json.Unmarshal([]byte(ev.Response.Content), &parsed); err == nil {
						chunk.Accumulated = parsed
					}
				}
			}
			s.emit(chunk)
			return chunk, nil
		}
		if len(ev.ObjectDelta) == 0 {
			continue
		}
		s.acc = merge(s.acc, ev.ObjectDelta)
		chunk := ObjectChunk{Delta: ev.ObjectDelta, Accumulated: s.acc}
		s.emit(chunk)
		return chunk, nil
	}
}

// Collect drains the stream and returns the terminal chunk.
func (s *ObjectStream) Collect() (ObjectChunk, error) {
	for {
		chunk, err := s.Next()
		if err != nil {
			return ObjectChunk{}, err
		}
		if chunk.Complete {
			return chunk, nil
		}
	}
}

func (s *ObjectStream) emit(chunk ObjectChunk) {
	if s.onChunk != nil {
		s.onChunk(chunk)
	}
}
