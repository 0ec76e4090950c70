// ABOUTME: Speech audio pipeline
// ABOUTME: Composes base64, PCM and WAV codecs with the playback player
package speech

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/speechwav/pkg/audio"
	"github.com/harperreed/speechwav/pkg/audio/decode"
	"github.com/harperreed/speechwav/pkg/audio/encode"
	"github.com/harperreed/speechwav/pkg/audio/output"
)

// Config holds pipeline configuration
type Config struct {
	// SampleRate of the provider's raw PCM (default: 24000)
	SampleRate int

	// Channels of the provider's raw PCM (default: 1)
	Channels int
}

// Pipeline converts provider output. It holds no mutable state and is
// safe for concurrent use.
type Pipeline struct {
	config Config
	pcm    *decode.PCMDecoder
	wav    *encode.WAVEncoder
}

// New creates a pipeline with the given configuration
func New(config Config) (*Pipeline, error) {
	if config.SampleRate == 0 {
		config.SampleRate = audio.DefaultSampleRate
	}
	if config.Channels == 0 {
		config.Channels = audio.DefaultChannels
	}

	pcm, err := decode.NewPCM(audio.Format{
		Codec:      "pcm",
		SampleRate: config.SampleRate,
		Channels:   config.Channels,
		BitDepth:   audio.BitDepth16,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid pipeline config: %w", err)
	}

	return &Pipeline{
		config: config,
		pcm:    pcm,
		wav:    encode.NewWAV(),
	}, nil
}

// Config returns the effective configuration
func (p *Pipeline) Config() Config {
	return p.config
}

// Decode converts base64 PCM text to a buffer
func (p *Pipeline) Decode(b64 string) (*audio.Buffer, error) {
	raw, err := decode.Base64(b64)
	if err != nil {
		return nil, err
	}
	return p.DecodePCM(raw)
}

// DecodePCM converts raw PCM bytes to a buffer. Trailing partial frames
// are dropped.
func (p *Pipeline) DecodePCM(raw []byte) (*audio.Buffer, error) {
	return p.pcm.Decode(raw)
}

// EncodeWAV converts a buffer to a WAV file
func (p *Pipeline) EncodeWAV(buf *audio.Buffer) ([]byte, error) {
	return p.wav.Encode(buf)
}

// Transcode converts base64 PCM text to a WAV file
func (p *Pipeline) Transcode(b64 string) ([]byte, error) {
	buf, err := p.Decode(b64)
	if err != nil {
		return nil, err
	}
	return p.EncodeWAV(buf)
}

// Export encodes buf as a downloadable WAV artifact
func (p *Pipeline) Export(buf *audio.Buffer, filename string) (*Artifact, error) {
	data, err := p.EncodeWAV(buf)
	if err != nil {
		return nil, err
	}
	if filename == "" {
		filename = DefaultFilename
	}
	return &Artifact{
		Filename: filename,
		MIMEType: MIMEType,
		Data:     data,
	}, nil
}

// Play decodes base64 PCM text and starts it on player, stopping
// whatever player was playing before
func (p *Pipeline) Play(ctx context.Context, player *output.Player, b64 string) (*output.Handle, error) {
	buf, err := p.Decode(b64)
	if err != nil {
		return nil, err
	}
	return player.Play(ctx, buf)
}

// TrimDataURL removes surrounding whitespace and a leading
// "data:<mime>[;base64]," prefix, leaving the base64 payload
func TrimDataURL(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if _, payload, ok := strings.Cut(s, ","); ok {
		return strings.TrimSpace(payload)
	}
	return s
}
