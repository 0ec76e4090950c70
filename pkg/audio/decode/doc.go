// ABOUTME: Audio decoder package for text-to-speech output
// ABOUTME: Provides Base64, PCM and WAV decoders producing audio.Buffer
// Package decode turns encoded audio back into an audio.Buffer.
//
// Supports: base64 text, raw 16-bit little-endian PCM, RIFF/WAVE files
//
// Raw PCM carries no metadata, so the caller supplies the sample rate and
// channel count through audio.Format. Trailing bytes that do not form a
// whole frame are dropped without error.
//
// Example:
//
//	raw, err := decode.Base64(payload)
//	decoder, err := decode.NewPCM(audio.Format{Codec: "pcm", SampleRate: 24000, Channels: 1})
//	buf, err := decoder.Decode(raw)
package decode
