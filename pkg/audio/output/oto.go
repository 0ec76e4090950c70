// ABOUTME: Oto-based audio output implementation
// ABOUTME: Plays each buffer on its own oto player sharing one process-wide context
package output

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/harperreed/speechwav/pkg/audio"
	"github.com/harperreed/speechwav/pkg/audio/encode"
	"github.com/harperreed/speechwav/pkg/audio/resample"
)

// pollInterval is how often a playback checks whether oto has drained it
const pollInterval = 10 * time.Millisecond

// Oto output implementation using oto library
type Oto struct {
	mu         sync.Mutex
	otoCtx     *oto.Context
	pcm        *encode.PCMEncoder
	sampleRate int
	channels   int
	suspended  bool
}

// NewOto creates a new Oto output. The device opens on the first Play,
// using that buffer's sample rate and channel count.
func NewOto() *Oto {
	return &Oto{pcm: &encode.PCMEncoder{}}
}

// Open initializes the output device. oto allows one context per process,
// so a second Open with a different format keeps the first one.
func (o *Oto) Open(sampleRate, channels int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.openLocked(sampleRate, channels)
}

func (o *Oto) openLocked(sampleRate, channels int) error {
	if o.otoCtx != nil {
		if o.suspended {
			if err := o.otoCtx.Resume(); err != nil {
				return fmt.Errorf("failed to resume oto context: %w", err)
			}
			o.suspended = false
		}
		if o.sampleRate != sampleRate || o.channels != channels {
			log.Printf("Warning: oto already running at %dHz %dch, ignoring request for %dHz %dch",
				o.sampleRate, o.channels, sampleRate, channels)
		}
		return nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	o.otoCtx = ctx
	o.sampleRate = sampleRate
	o.channels = channels

	log.Printf("Audio output initialized: %dHz, %d channels", sampleRate, channels)

	return nil
}

// Play starts buf on a new oto player
func (o *Oto) Play(ctx context.Context, buf *audio.Buffer) (*Handle, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.openLocked(buf.SampleRate(), buf.ChannelCount()); err != nil {
		return nil, err
	}
	pcm, err := devicePCM(o.pcm, buf, o.sampleRate, o.channels)
	if err != nil {
		return nil, err
	}

	player := o.otoCtx.NewPlayer(bytes.NewReader(pcm))
	player.Play()

	h := newHandle(func() error {
		player.Pause()
		return player.Close()
	})
	go watchPlayer(ctx, h, player)

	return h, nil
}

// devicePCM converts buf to the interleaved PCM16 stream of a device
// opened at sampleRate and channels
func devicePCM(enc *encode.PCMEncoder, buf *audio.Buffer, sampleRate, channels int) ([]byte, error) {
	if buf.ChannelCount() != channels {
		return nil, fmt.Errorf("buffer has %d channels, output is open with %d", buf.ChannelCount(), channels)
	}

	buf, err := resample.Convert(buf, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("failed to resample for output: %w", err)
	}
	return enc.Encode(buf)
}

func watchPlayer(ctx context.Context, h *Handle, player *oto.Player) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.Done():
			return
		case <-ctx.Done():
			h.Stop()
			return
		case <-ticker.C:
			if !player.IsPlaying() {
				h.finish()
				return
			}
		}
	}
}

// Close suspends the device. The context itself lives until process exit.
func (o *Oto) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.otoCtx != nil && !o.suspended {
		if err := o.otoCtx.Suspend(); err != nil {
			return fmt.Errorf("failed to suspend oto context: %w", err)
		}
		o.suspended = true
	}
	return nil
}
