// ABOUTME: Audio output interface definition and playback handle
// ABOUTME: Common interface for audio playback backends
package output

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/harperreed/speechwav/pkg/audio"
)

// Sink represents an audio output device
type Sink interface {
	// Play starts playing buf and returns its handle
	Play(ctx context.Context, buf *audio.Buffer) (*Handle, error)

	// Close releases output resources
	Close() error
}

// State describes a playback
type State int

const (
	StatePlaying State = iota
	StateFinished
	StateStopped
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateFinished:
		return "finished"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Handle is one playback. It ends exactly once, by finishing or by Stop.
type Handle struct {
	id      string
	done    chan struct{}
	once    sync.Once
	release func() error

	mu    sync.Mutex
	state State
	err   error
}

// newHandle creates a playing handle. release is called once when the
// playback ends and must free the device resources behind it.
func newHandle(release func() error) *Handle {
	return &Handle{
		id:      uuid.New().String(),
		done:    make(chan struct{}),
		release: release,
	}
}

// ID returns the unique playback id
func (h *Handle) ID() string {
	return h.id
}

// Done is closed when playback ends
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// State returns the current playback state
func (h *Handle) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Err returns the error from releasing the device, if any
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Stop ends playback early. Stopping a finished handle is a no-op.
func (h *Handle) Stop() error {
	h.end(StateStopped)
	return h.Err()
}

// Wait blocks until playback ends or ctx is done
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return h.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// finish marks natural completion
func (h *Handle) finish() {
	h.end(StateFinished)
}

func (h *Handle) end(state State) {
	h.once.Do(func() {
		var err error
		if h.release != nil {
			err = h.release()
		}
		h.mu.Lock()
		h.state = state
		h.err = err
		h.mu.Unlock()
		close(h.done)
	})
}
