// ABOUTME: PCM audio decoder
// ABOUTME: Decodes interleaved 16-bit little-endian PCM to normalized floats
package decode

import (
	"encoding/binary"
	"fmt"

	"github.com/harperreed/speechwav/pkg/audio"
)

// PCMDecoder decodes headerless 16-bit PCM
type PCMDecoder struct {
	sampleRate int
	channels   int
}

// NewPCM creates a new PCM decoder. A zero BitDepth means 16.
func NewPCM(format audio.Format) (*PCMDecoder, error) {
	if format.Codec != "pcm" {
		return nil, fmt.Errorf("invalid codec for PCM decoder: %s", format.Codec)
	}

	if format.BitDepth != 0 && format.BitDepth != audio.BitDepth16 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16)", format.BitDepth)
	}

	if format.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", format.SampleRate)
	}

	if format.Channels <= 0 {
		return nil, fmt.Errorf("invalid channel count: %d", format.Channels)
	}

	return &PCMDecoder{
		sampleRate: format.SampleRate,
		channels:   format.Channels,
	}, nil
}

// Decode converts PCM bytes to a Buffer. Bytes past the last whole frame
// are ignored; Decode never fails.
func (d *PCMDecoder) Decode(data []byte) (*audio.Buffer, error) {
	frameSize := d.channels * audio.BytesPerSample
	frames := len(data) / frameSize

	channels := make([][]float64, d.channels)
	for c := range channels {
		channels[c] = make([]float64, frames)
	}

	for i := 0; i < frames; i++ {
		for c := 0; c < d.channels; c++ {
			offset := (i*d.channels + c) * audio.BytesPerSample
			sample16 := int16(binary.LittleEndian.Uint16(data[offset:]))
			channels[c][i] = audio.Normalize16(sample16)
		}
	}

	return audio.NewBuffer(d.sampleRate, channels...)
}
