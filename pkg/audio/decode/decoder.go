// ABOUTME: Decoder interface definition
// ABOUTME: Common interface for all audio decoders
package decode

import "github.com/harperreed/speechwav/pkg/audio"

// Decoder decodes audio bytes into a sample buffer
type Decoder interface {
	// Decode converts encoded audio data to a Buffer
	Decode(data []byte) (*audio.Buffer, error)
}
