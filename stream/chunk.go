package stream

import (
	ai "github.com/omnigen-ai/omnigen"
)

// TextChunk is one incremental unit of a streamed text generation.
//
// Accumulated is the concatenation of every delta emitted so far,
// including this one. Exactly one chunk per stream has Complete set,
// and it is always the last; it carries the finish reason and the
// usage observed for the stream.
type TextChunk struct {
	Delta        string
	Accumulated  string
	Complete     bool
	FinishReason ai.FinishReason
	Usage        *ai.Usage
}

// ObjectChunk is one incremental unit of a streamed object generation.
//
// Accumulated is the deep merge of every delta emitted so far. The
// terminal chunk follows the same rules as TextChunk.
type ObjectChunk struct {
	Delta        map[string]any
	Accumulated  map[string]any
	Complete     bool
	FinishReason ai.FinishReason
	Usage        *ai.Usage
}

// merge deep-merges src into dst and returns dst. Nested maps merge
// recursively; every other value type overwrites.
func merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				dst[k] = merge(existing, sub)
				continue
			}
		}
		dst[k] = v
	}
	return dst
}
