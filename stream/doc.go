// Package stream provides the streaming layer for the omnigen library:
// a Server-Sent-Events frame decoder and pull-based chunk accumulators.
//
// Decoder parses raw SSE bytes into JSON payloads, handling partial
// reads, multi-line data fields, and the [DONE] sentinel. Provider
// adapters use it to turn HTTP response bodies into event channels.
//
// TextStream and ObjectStream wrap a provider event channel and expose
// Next(), yielding chunks whose Accumulated value grows monotonically
// by concatenation (text) or deep merge (object). Every stream emits
// exactly one terminal chunk, marked Complete, carrying the finish
// reason and usage:
//
//	ts := stream.NewTextStream(events)
//	for {
//	    chunk, err := ts.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Print(chunk.Delta)
//	}
//
// Streams are forward-only and non-restartable. Abandoning a stream
// mid-way leaves unread events to the producer; the caller owns closing
// the underlying connection.
package stream
