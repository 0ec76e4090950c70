// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Buffer, error types and 16-bit sample conversion
// Package audio provides the core types shared by the speechwav codec.
//
// This package defines:
//   - Format: Describes a raw PCM stream (codec, sample rate, channels, bit depth)
//   - Buffer: Decoded audio as one normalized float64 slice per channel
//   - DecodeError, InvalidBufferError: the error taxonomy of the codec
//
// It also provides the 16-bit quantization helpers used on both sides of
// the codec. Decoding divides by 32768; encoding multiplies positive
// samples by 32767 and negative samples by 32768. The asymmetry keeps
// +1.0 inside the int16 range and is relied on by stored audio.
//
// Example:
//
//	buf, err := audio.NewBuffer(24000, []float64{0, 0.5, -0.5})
//	q := audio.Quantize16(0.5) // 16383
//	s := audio.Normalize16(q)  // 0.499969...
package audio
