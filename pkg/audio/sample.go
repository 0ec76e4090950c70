// ABOUTME: Sample conversion between normalized floats and 16-bit PCM
// ABOUTME: Shared clamping and quantization used by decode and encode
package audio

import "math"

const (
	// PositiveScale multiplies non-negative samples on encode (2^15 - 1)
	PositiveScale = 32767
	// NegativeScale multiplies negative samples on encode and divides every sample on decode (2^15)
	NegativeScale = 32768
)

// Clamp limits a sample to [-1, 1]. NaN maps to 0.
func Clamp(s float64) float64 {
	if math.IsNaN(s) {
		return 0
	}
	return max(-1, min(1, s))
}

// Quantize16 converts a normalized sample to int16, truncating toward zero
func Quantize16(s float64) int16 {
	s = Clamp(s)
	if s < 0 {
		return int16(s * NegativeScale)
	}
	return int16(s * PositiveScale)
}

// Normalize16 converts an int16 sample to a float in [-1, 1)
func Normalize16(v int16) float64 {
	return float64(v) / NegativeScale
}
