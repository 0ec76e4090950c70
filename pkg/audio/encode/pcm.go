// ABOUTME: PCM audio encoder
// ABOUTME: Quantizes and interleaves a Buffer into 16-bit little-endian PCM
package encode

import (
	"encoding/binary"
	"fmt"

	"github.com/harperreed/speechwav/pkg/audio"
)

// PCMEncoder encodes headerless 16-bit PCM
type PCMEncoder struct{}

// NewPCM creates a new PCM encoder. A zero BitDepth means 16.
func NewPCM(format audio.Format) (*PCMEncoder, error) {
	if format.Codec != "pcm" {
		return nil, fmt.Errorf("invalid codec for PCM encoder: %s", format.Codec)
	}

	if format.BitDepth != 0 && format.BitDepth != audio.BitDepth16 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16)", format.BitDepth)
	}

	return &PCMEncoder{}, nil
}

// Encode converts a Buffer to interleaved PCM bytes
func (e *PCMEncoder) Encode(buf *audio.Buffer) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	output := make([]byte, pcmSize(buf))
	writeSamples(output, buf)
	return output, nil
}

func pcmSize(buf *audio.Buffer) int {
	return buf.FrameCount() * buf.ChannelCount() * audio.BytesPerSample
}

// writeSamples interleaves buf into out, which must hold pcmSize(buf) bytes
func writeSamples(out []byte, buf *audio.Buffer) {
	channels := buf.ChannelCount()
	for c := 0; c < channels; c++ {
		for i, s := range buf.Channel(c) {
			offset := (i*channels + c) * audio.BytesPerSample
			binary.LittleEndian.PutUint16(out[offset:], uint16(audio.Quantize16(s)))
		}
	}
}
