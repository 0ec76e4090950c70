// ABOUTME: Sine tone generator
// ABOUTME: Builds test buffers for the CLI and for codec tests
package audio

import (
	"math"
	"time"
)

// Tone generates a sine wave of the given frequency, duplicated to every
// channel. Amplitude is clamped to [0, 1].
func Tone(frequency float64, sampleRate, channels int, d time.Duration, amplitude float64) (*Buffer, error) {
	if channels <= 0 {
		return nil, &InvalidBufferError{Reason: "tone needs at least one channel"}
	}
	amplitude = max(0, min(1, amplitude))

	frames := 0
	if sampleRate > 0 && d > 0 {
		frames = int(int64(d) * int64(sampleRate) / int64(time.Second))
	}

	wave := make([]float64, frames)
	for i := range wave {
		t := float64(i) / float64(sampleRate)
		wave[i] = amplitude * math.Sin(2*math.Pi*frequency*t)
	}

	chans := make([][]float64, channels)
	chans[0] = wave
	for c := 1; c < channels; c++ {
		chans[c] = append([]float64(nil), wave...)
	}
	return NewBuffer(sampleRate, chans...)
}
