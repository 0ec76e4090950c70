// ABOUTME: Tests for the oto output
// ABOUTME: Covers device PCM preparation and, when a device exists, real playback
package output

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/speechwav/pkg/audio"
	"github.com/harperreed/speechwav/pkg/audio/encode"
)

func TestDevicePCM(t *testing.T) {
	mono, err := audio.Tone(440, 24000, 1, 100*time.Millisecond, 0.5)
	if err != nil {
		t.Fatalf("Tone() failed: %v", err)
	}
	stereo, err := audio.Tone(440, 24000, 2, 100*time.Millisecond, 0.5)
	if err != nil {
		t.Fatalf("Tone() failed: %v", err)
	}

	tests := []struct {
		name       string
		buf        *audio.Buffer
		sampleRate int
		channels   int
		wantBytes  int
		wantErr    string
	}{
		{"same format", mono, 24000, 1, 2400 * 2, ""},
		{"resampled up", mono, 48000, 1, 4800 * 2, ""},
		{"resampled down", mono, 16000, 1, 1600 * 2, ""},
		{"stereo", stereo, 24000, 2, 2400 * 2 * 2, ""},
		{"channel mismatch", stereo, 24000, 1, 0, "buffer has 2 channels, output is open with 1"},
		{"mono into stereo", mono, 48000, 2, 0, "buffer has 1 channels, output is open with 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm, err := devicePCM(&encode.PCMEncoder{}, tt.buf, tt.sampleRate, tt.channels)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("devicePCM() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("devicePCM() failed: %v", err)
			}
			if len(pcm) != tt.wantBytes {
				t.Errorf("len = %d, want %d", len(pcm), tt.wantBytes)
			}
		})
	}
}

func TestDevicePCM_SameRateMatchesEncoder(t *testing.T) {
	buf, err := audio.NewBuffer(24000, []float64{0.5, -0.5, 1, -1})
	if err != nil {
		t.Fatalf("NewBuffer() failed: %v", err)
	}

	enc := &encode.PCMEncoder{}
	want, err := enc.Encode(buf)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	got, err := devicePCM(enc, buf, 24000, 1)
	if err != nil {
		t.Fatalf("devicePCM() failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("devicePCM() = %x, want %x", got, want)
	}
}

// oto allows a single context per process, so every device check shares
// the one opened here.
func TestOto_DevicePlayback(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping audio device test in short mode")
	}

	out := NewOto()
	if err := out.Open(24000, 1); err != nil {
		t.Skipf("no audio device available: %v", err)
	}
	defer out.Close()

	t.Run("natural completion", func(t *testing.T) {
		buf, err := audio.Tone(440, 24000, 1, 50*time.Millisecond, 0.1)
		if err != nil {
			t.Fatalf("Tone() failed: %v", err)
		}
		waitFinished(t, out, buf)
	})

	t.Run("resampled to open rate", func(t *testing.T) {
		buf, err := audio.Tone(440, 48000, 1, 50*time.Millisecond, 0.1)
		if err != nil {
			t.Fatalf("Tone() failed: %v", err)
		}
		waitFinished(t, out, buf)
	})

	t.Run("channel mismatch", func(t *testing.T) {
		buf, err := audio.Tone(440, 24000, 2, 50*time.Millisecond, 0.1)
		if err != nil {
			t.Fatalf("Tone() failed: %v", err)
		}
		h, err := out.Play(context.Background(), buf)
		if err == nil {
			h.Stop()
			t.Fatal("Play() should reject a stereo buffer on a mono device")
		}
	})

	t.Run("stop", func(t *testing.T) {
		buf, err := audio.Tone(440, 24000, 1, 2*time.Second, 0.1)
		if err != nil {
			t.Fatalf("Tone() failed: %v", err)
		}
		h, err := out.Play(context.Background(), buf)
		if err != nil {
			t.Fatalf("Play() failed: %v", err)
		}
		if err := h.Stop(); err != nil {
			t.Errorf("Stop() failed: %v", err)
		}
		if h.State() != StateStopped {
			t.Errorf("state = %v, want %v", h.State(), StateStopped)
		}
	})
}

func waitFinished(t *testing.T, out *Oto, buf *audio.Buffer) {
	t.Helper()
	h, err := out.Play(context.Background(), buf)
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.Wait(ctx); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}
	if h.State() != StateFinished {
		t.Errorf("state = %v, want %v", h.State(), StateFinished)
	}
}
