// ABOUTME: Simple linear resampler for converting audio sample rates
// ABOUTME: Used by playback sinks whose device rate differs from the buffer
package resample

import (
	"fmt"

	"github.com/harperreed/speechwav/pkg/audio"
)

// Convert returns buf resampled to outputRate. A buffer already at
// outputRate is returned unchanged.
func Convert(buf *audio.Buffer, outputRate int) (*audio.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if outputRate <= 0 {
		return nil, fmt.Errorf("invalid output rate: %d", outputRate)
	}
	if buf.SampleRate() == outputRate {
		return buf, nil
	}

	outputFrames := OutputFrames(buf.FrameCount(), buf.SampleRate(), outputRate)
	ratio := float64(buf.SampleRate()) / float64(outputRate)

	channels := make([][]float64, buf.ChannelCount())
	for c := range channels {
		channels[c] = interpolate(buf.Channel(c), outputFrames, ratio)
	}
	return audio.NewBuffer(outputRate, channels...)
}

// OutputFrames calculates how many frames Convert produces
func OutputFrames(inputFrames, inputRate, outputRate int) int {
	return int(int64(inputFrames) * int64(outputRate) / int64(inputRate))
}

func interpolate(input []float64, outputFrames int, ratio float64) []float64 {
	output := make([]float64, outputFrames)
	last := len(input) - 1
	for i := range output {
		pos := float64(i) * ratio
		idx := int(pos)
		if idx >= last {
			output[i] = input[last]
			continue
		}
		frac := pos - float64(idx)
		output[i] = input[idx]*(1.0-frac) + input[idx+1]*frac
	}
	return output
}
