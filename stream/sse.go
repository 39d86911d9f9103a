package stream

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
)

// doneSentinel terminates an SSE stream without producing a payload.
const doneSentinel = "[DONE]"

// Decoder reads Server-Sent-Events frames from a byte stream.
//
// Frames are groups of lines separated by a blank line. Only `data:`
// lines contribute to the payload; multiple data lines within one frame
// are joined with newlines per the SSE spec. Comment lines (leading
// colon) and unknown fields are skipped. A `data: [DONE]` frame ends
// the stream with io.EOF.
type Decoder struct {
	r    *bufio.Reader
	seen bool
}

// NewDecoder creates a Decoder over r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReaderSize(r, 64*1024)}
}

// Next returns the next frame's data payload as validated JSON.
//
// It returns io.EOF when the stream ends or the [DONE] sentinel is
// seen, and a *Error with kind ErrMalformedFrame when a frame's
// payload is not valid JSON. A stream that closes before yielding a
// single frame returns a *Error with kind ErrNoData instead of io.EOF.
func (d *Decoder) Next() (json.RawMessage, error) {
	data, err := d.nextFrame()
	if err != nil {
		if err == io.EOF && !d.seen {
			return nil, &Error{Kind: ErrNoData}
		}
		return nil, err
	}
	d.seen = true
	if string(data) == doneSentinel {
		return nil, io.EOF
	}
	if !json.Valid(data) {
		return nil, &Error{Kind: ErrMalformedFrame, Frame: string(data)}
	}
	return json.RawMessage(data), nil
}

// nextFrame returns the next frame's concatenated data lines.
func (d *Decoder) nextFrame() ([]byte, error) {
	var dataLines [][]byte
	for {
		line, err := d.r.ReadBytes('\n')
		if err != nil {
			// If we accumulated data before EOF, return it.
			if len(line) > 0 {
				line = bytes.TrimRight(line, "\r\n")
				if len(line) > 0 {
					dataLines = appendDataLine(dataLines, line)
				}
			}
			if len(dataLines) > 0 {
				return bytes.Join(dataLines, []byte("\n")), nil
			}
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, err
		}

		line = bytes.TrimRight(line, "\r\n")
		if len(line) == 0 {
			if len(dataLines) == 0 {
				continue
			}
			return bytes.Join(dataLines, []byte("\n")), nil
		}

		// Comment line.
		if line[0] == ':' {
			continue
		}
		dataLines = appendDataLine(dataLines, line)
	}
}

func appendDataLine(dst [][]byte, line []byte) [][]byte {
	if !bytes.HasPrefix(line, []byte("data:")) {
		return dst
	}
	val := line[len("data:"):]
	if len(val) > 0 && val[0] == ' ' {
		val = val[1:]
	}
	return append(dst, append([]byte(nil), val...))
}
