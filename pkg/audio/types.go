// ABOUTME: Audio type definitions
// ABOUTME: Defines stream formats and decoded sample buffers
package audio

import (
	"fmt"
	"time"
)

const (
	// HeaderSize is the size of a canonical WAV header in bytes
	HeaderSize = 44

	// FormatPCM is the WAV audio format code for uncompressed PCM
	FormatPCM = 1

	// BitDepth16 is the only sample width the codec reads and writes
	BitDepth16 = 16

	// BytesPerSample is the size of one 16-bit sample
	BytesPerSample = BitDepth16 / 8
)

// Defaults for the text-to-speech provider's raw output
const (
	DefaultSampleRate = 24000
	DefaultChannels   = 1
)

// Format describes a raw audio stream
type Format struct {
	Codec      string
	SampleRate int
	Channels   int
	BitDepth   int
}

// Buffer is decoded audio: one slice of normalized samples per channel.
// All channels have the same length. A Buffer is never modified after
// construction; callers must not write to the slices returned by Channel.
type Buffer struct {
	sampleRate int
	channels   [][]float64
}

// NewBuffer creates a buffer from per-channel samples. The buffer takes
// ownership of the slices.
func NewBuffer(sampleRate int, channels ...[]float64) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, &InvalidBufferError{Reason: fmt.Sprintf("sample rate must be positive, got %d", sampleRate)}
	}
	if len(channels) == 0 {
		return nil, &InvalidBufferError{Reason: "buffer has no channels"}
	}
	frames := len(channels[0])
	for c, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, &InvalidBufferError{
				Reason: fmt.Sprintf("channel %d has %d frames, channel 0 has %d", c+1, len(ch), frames),
			}
		}
	}
	return &Buffer{sampleRate: sampleRate, channels: channels}, nil
}

// SampleRate returns the sample rate in Hz
func (b *Buffer) SampleRate() int {
	return b.sampleRate
}

// ChannelCount returns the number of channels
func (b *Buffer) ChannelCount() int {
	return len(b.channels)
}

// FrameCount returns the number of samples in each channel
func (b *Buffer) FrameCount() int {
	if len(b.channels) == 0 {
		return 0
	}
	return len(b.channels[0])
}

// Channel returns the samples of channel c
func (b *Buffer) Channel(c int) []float64 {
	return b.channels[c]
}

// Duration returns the playing time of the buffer at its sample rate
func (b *Buffer) Duration() time.Duration {
	if b.sampleRate <= 0 {
		return 0
	}
	return time.Duration(b.FrameCount()) * time.Second / time.Duration(b.sampleRate)
}

// Format returns the 16-bit PCM format this buffer encodes to
func (b *Buffer) Format() Format {
	return Format{
		Codec:      "pcm",
		SampleRate: b.sampleRate,
		Channels:   len(b.channels),
		BitDepth:   BitDepth16,
	}
}

// Validate re-checks the construction invariants. Buffers built with
// NewBuffer always pass; a zero Buffer or nil pointer does not.
func (b *Buffer) Validate() error {
	if b == nil {
		return &InvalidBufferError{Reason: "buffer is nil"}
	}
	_, err := NewBuffer(b.sampleRate, b.channels...)
	return err
}
