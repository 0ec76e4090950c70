// ABOUTME: Null audio output
// ABOUTME: Plays nothing and completes after the buffer's duration
package output

import (
	"context"
	"time"

	"github.com/harperreed/speechwav/pkg/audio"
)

// Null is a Sink without a device. Playback finishes after the buffer's
// duration scaled by Speed, or when ctx is cancelled.
type Null struct {
	// Speed divides the playing time; values <= 0 mean 1
	Speed float64
}

// NewNull creates a Null sink playing in real time
func NewNull() *Null {
	return &Null{Speed: 1}
}

// Play starts a silent playback of buf
func (n *Null) Play(ctx context.Context, buf *audio.Buffer) (*Handle, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	speed := n.Speed
	if speed <= 0 {
		speed = 1
	}
	timer := time.NewTimer(time.Duration(float64(buf.Duration()) / speed))
	h := newHandle(func() error {
		timer.Stop()
		return nil
	})

	go func() {
		select {
		case <-timer.C:
			h.finish()
		case <-ctx.Done():
			h.Stop()
		case <-h.Done():
		}
	}()

	return h, nil
}

// Close releases nothing
func (n *Null) Close() error {
	return nil
}
