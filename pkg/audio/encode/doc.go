// ABOUTME: Audio encoder package for speech output
// ABOUTME: Provides Base64, PCM16 and WAV encoders for audio.Buffer
// Package encode serializes an audio.Buffer.
//
// Supports: raw 16-bit little-endian PCM, canonical 44-byte-header WAV,
// and base64 text.
//
// Samples are clamped to [-1, 1] and quantized with audio.Quantize16,
// interleaved frame by frame.
//
// Example:
//
//	wav, err := encode.NewWAV().Encode(buf)
//	os.WriteFile("speech.wav", wav, 0o644)
package encode
