// ABOUTME: Exclusive playback on top of a Sink
// ABOUTME: Starting a new playback stops and releases the previous one
package output

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/harperreed/speechwav/pkg/audio"
)

// ErrPlayerClosed is returned by Play after Close
var ErrPlayerClosed = errors.New("player is closed")

// PlayerConfig holds player configuration
type PlayerConfig struct {
	// OnComplete is called with the handle id when a playback finishes on
	// its own. It is not called for stopped playbacks.
	OnComplete func(id string)
}

// Player plays one buffer at a time through a Sink
type Player struct {
	sink   Sink
	config PlayerConfig

	mu      sync.Mutex
	current *Handle
	closed  bool
}

// NewPlayer creates a player that owns sink
func NewPlayer(sink Sink, config PlayerConfig) *Player {
	return &Player{
		sink:   sink,
		config: config,
	}
}

// Play stops the current playback, if any, and starts buf
func (p *Player) Play(ctx context.Context, buf *audio.Buffer) (*Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrPlayerClosed
	}

	p.stopLocked()

	h, err := p.sink.Play(ctx, buf)
	if err != nil {
		return nil, err
	}
	p.current = h

	go p.watch(h)
	return h, nil
}

// Current returns the active playback, or nil
func (p *Player) Current() *Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Stop stops the active playback, if any
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Close stops playback and closes the sink
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.stopLocked()
	return p.sink.Close()
}

// stopLocked must be called with p.mu held
func (p *Player) stopLocked() {
	if p.current == nil {
		return
	}
	if err := p.current.Stop(); err != nil {
		log.Printf("Warning: failed to release playback %s: %v", p.current.ID(), err)
	}
	p.current = nil
}

func (p *Player) watch(h *Handle) {
	<-h.Done()

	p.mu.Lock()
	if p.current == h {
		p.current = nil
	}
	p.mu.Unlock()

	if h.State() == StateFinished && p.config.OnComplete != nil {
		p.config.OnComplete(h.ID())
	}
}
