// ABOUTME: Tests for exclusive Player
// ABOUTME: Verifies stop-previous semantics and completion notifications
package output

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/harperreed/speechwav/pkg/audio"
)

// fakeSink hands out handles that the test finishes by hand
type fakeSink struct {
	mu       sync.Mutex
	handles  []*Handle
	released map[string]bool
	closed   bool
	err      error
}

func newFakeSink() *fakeSink {
	return &fakeSink{released: make(map[string]bool)}
}

func (s *fakeSink) Play(ctx context.Context, buf *audio.Buffer) (*Handle, error) {
	if s.err != nil {
		return nil, s.err
	}
	var h *Handle
	h = newHandle(func() error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.released[h.ID()] = true
		return nil
	})
	s.mu.Lock()
	s.handles = append(s.handles, h)
	s.mu.Unlock()
	return h, nil
}

func (s *fakeSink) Close() error {
	s.closed = true
	return nil
}

func (s *fakeSink) wasReleased(h *Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released[h.ID()]
}

func testBuffer(t *testing.T) *audio.Buffer {
	t.Helper()
	buf, err := audio.NewBuffer(24000, []float64{0, 0.5, -0.5})
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}
	return buf
}

func TestPlayer_NewPlaybackStopsPrevious(t *testing.T) {
	sink := newFakeSink()
	player := NewPlayer(sink, PlayerConfig{})
	defer player.Close()

	first, err := player.Play(context.Background(), testBuffer(t))
	if err != nil {
		t.Fatalf("first Play failed: %v", err)
	}
	second, err := player.Play(context.Background(), testBuffer(t))
	if err != nil {
		t.Fatalf("second Play failed: %v", err)
	}

	if first.State() != StateStopped {
		t.Errorf("expected first playback stopped, got %v", first.State())
	}
	if !sink.wasReleased(first) {
		t.Error("expected first playback released")
	}
	if second.State() != StatePlaying {
		t.Errorf("expected second playback playing, got %v", second.State())
	}
	if player.Current() != second {
		t.Error("expected second playback to be current")
	}
}

func TestPlayer_OnCompleteOnlyForNaturalFinish(t *testing.T) {
	completed := make(chan string, 2)
	sink := newFakeSink()
	player := NewPlayer(sink, PlayerConfig{
		OnComplete: func(id string) { completed <- id },
	})
	defer player.Close()

	stopped, err := player.Play(context.Background(), testBuffer(t))
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	finished, err := player.Play(context.Background(), testBuffer(t))
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	finished.finish()

	select {
	case id := <-completed:
		if id != finished.ID() {
			t.Errorf("expected completion for %s, got %s", finished.ID(), id)
		}
		if id == stopped.ID() {
			t.Error("stopped playback must not report completion")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no completion notification")
	}

	deadline := time.Now().Add(2 * time.Second)
	for player.Current() != nil {
		if time.Now().After(deadline) {
			t.Fatal("finished playback still current")
		}
		time.Sleep(time.Millisecond)
	}

	select {
	case id := <-completed:
		t.Errorf("unexpected completion for %s", id)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestPlayer_Stop(t *testing.T) {
	sink := newFakeSink()
	player := NewPlayer(sink, PlayerConfig{})
	defer player.Close()

	h, err := player.Play(context.Background(), testBuffer(t))
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	player.Stop()

	if h.State() != StateStopped {
		t.Errorf("expected stopped, got %v", h.State())
	}
	if player.Current() != nil {
		t.Error("expected no current playback after Stop")
	}
	player.Stop()
}

func TestPlayer_Close(t *testing.T) {
	sink := newFakeSink()
	player := NewPlayer(sink, PlayerConfig{})

	h, err := player.Play(context.Background(), testBuffer(t))
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if err := player.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if !sink.closed {
		t.Error("expected sink closed")
	}
	if h.State() != StateStopped {
		t.Errorf("expected stopped, got %v", h.State())
	}
	if _, err := player.Play(context.Background(), testBuffer(t)); !errors.Is(err, ErrPlayerClosed) {
		t.Errorf("expected ErrPlayerClosed, got %v", err)
	}
	if err := player.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
}

func TestPlayer_SinkError(t *testing.T) {
	sink := newFakeSink()
	sink.err = errors.New("no device")
	player := NewPlayer(sink, PlayerConfig{})
	defer player.Close()

	if _, err := player.Play(context.Background(), testBuffer(t)); !errors.Is(err, sink.err) {
		t.Errorf("expected sink error, got %v", err)
	}
	if player.Current() != nil {
		t.Error("expected no current playback")
	}
}

func TestPlayer_WithNullSink(t *testing.T) {
	done := make(chan string, 1)
	player := NewPlayer(&Null{Speed: 100}, PlayerConfig{
		OnComplete: func(id string) { done <- id },
	})
	defer player.Close()

	h, err := player.Play(context.Background(), testBuffer(t))
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}

	select {
	case id := <-done:
		if id != h.ID() {
			t.Errorf("expected %s, got %s", h.ID(), id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("null playback never completed")
	}
}
