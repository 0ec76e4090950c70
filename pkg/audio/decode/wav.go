// ABOUTME: WAV file decoder
// ABOUTME: Parses RIFF/WAVE containers with 16-bit PCM payloads
package decode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/harperreed/speechwav/pkg/audio"
	"github.com/youpy/go-riff"
)

// wavFormat mirrors the 16-byte PCM fmt chunk
type wavFormat struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// WAVDecoder decodes 16-bit PCM WAV files
type WAVDecoder struct{}

// NewWAV creates a new WAV decoder
func NewWAV() *WAVDecoder {
	return &WAVDecoder{}
}

// Decode parses a WAV file and decodes its data chunk
func (d *WAVDecoder) Decode(data []byte) (buf *audio.Buffer, err error) {
	// go-riff panics when the input ends inside a RIFF or chunk header
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, wavError(fmt.Errorf("malformed RIFF: %v", r))
		}
	}()

	riffChunk, err := riff.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return nil, wavError(err)
	}
	if string(riffChunk.FileType[:]) != "WAVE" {
		return nil, wavError(fmt.Errorf("file type %q is not WAVE", riffChunk.FileType[:]))
	}

	fmtChunk := findChunk(riffChunk, "fmt ")
	if fmtChunk == nil {
		return nil, wavError(errors.New("format chunk is not found"))
	}

	var format wavFormat
	if err := binary.Read(fmtChunk, binary.LittleEndian, &format); err != nil {
		return nil, wavError(fmt.Errorf("read format chunk: %w", err))
	}
	if format.AudioFormat != audio.FormatPCM {
		return nil, wavError(fmt.Errorf("unsupported audio format: %d", format.AudioFormat))
	}
	if format.BitsPerSample != audio.BitDepth16 {
		return nil, wavError(fmt.Errorf("unsupported bits per sample: %d", format.BitsPerSample))
	}

	dataChunk := findChunk(riffChunk, "data")
	if dataChunk == nil {
		return nil, wavError(errors.New("data chunk is not found"))
	}
	pcm, err := io.ReadAll(dataChunk)
	if err != nil {
		return nil, wavError(fmt.Errorf("read data chunk: %w", err))
	}

	pcmDecoder, err := NewPCM(audio.Format{
		Codec:      "pcm",
		SampleRate: int(format.SampleRate),
		Channels:   int(format.NumChannels),
		BitDepth:   int(format.BitsPerSample),
	})
	if err != nil {
		return nil, wavError(err)
	}
	return pcmDecoder.Decode(pcm)
}

func findChunk(riffChunk *riff.RIFFChunk, id string) *riff.Chunk {
	for _, ch := range riffChunk.Chunks {
		if string(ch.ChunkID[:]) == id {
			return ch
		}
	}
	return nil
}

func wavError(err error) error {
	return &audio.DecodeError{Op: "wav", Offset: -1, Err: err}
}
