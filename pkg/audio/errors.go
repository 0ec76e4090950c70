// ABOUTME: Error types for the audio codec
// ABOUTME: DecodeError for malformed input, InvalidBufferError for bad buffers
package audio

import "fmt"

// DecodeError reports malformed input. Retrying the same input cannot succeed.
type DecodeError struct {
	// Op names the decoder that failed ("base64", "wav")
	Op string
	// Offset is the byte offset of the problem, or -1 if unknown
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s decode failed at offset %d: %v", e.Op, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s decode failed: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// InvalidBufferError reports a Buffer that breaks its invariants, such as
// channels of different lengths. It indicates a bug in whatever built the buffer.
type InvalidBufferError struct {
	Reason string
}

func (e *InvalidBufferError) Error() string {
	return "invalid audio buffer: " + e.Reason
}
