// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for all audio encoders
package encode

import "github.com/harperreed/speechwav/pkg/audio"

// Encoder encodes a sample buffer to bytes
type Encoder interface {
	// Encode converts a Buffer to encoded audio data
	Encode(buf *audio.Buffer) ([]byte, error)
}
