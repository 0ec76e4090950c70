// ABOUTME: WAV file encoder
// ABOUTME: Writes a canonical 44-byte RIFF/WAVE header and 16-bit PCM payload
package encode

import (
	"encoding/binary"

	"github.com/harperreed/speechwav/pkg/audio"
)

// WAVEncoder encodes a Buffer as a 16-bit PCM WAV file
type WAVEncoder struct{}

// NewWAV creates a new WAV encoder
func NewWAV() *WAVEncoder {
	return &WAVEncoder{}
}

// Encode returns a complete WAV file for buf
func (e *WAVEncoder) Encode(buf *audio.Buffer) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	dataSize := pcmSize(buf)
	channels := buf.ChannelCount()
	sampleRate := buf.SampleRate()
	blockAlign := channels * audio.BytesPerSample

	out := make([]byte, audio.HeaderSize+dataSize)

	// RIFF header
	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))
	copy(out[8:12], "WAVE")

	// fmt subchunk
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], audio.FormatPCM)
	binary.LittleEndian.PutUint16(out[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(out[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:36], audio.BitDepth16)

	// data subchunk
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(dataSize))

	writeSamples(out[audio.HeaderSize:], buf)
	return out, nil
}
