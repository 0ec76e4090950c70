// ABOUTME: High-level speech audio API
// ABOUTME: Turns text-to-speech base64 PCM into buffers, WAV files and playback
// Package speech provides the pipeline most callers need.
//
// A text-to-speech provider returns base64 text holding raw 16-bit PCM
// with no header. The Pipeline knows the stream's sample rate and channel
// count (24000 Hz mono by default) and provides:
//   - Decode: base64 text to an audio.Buffer
//   - EncodeWAV: an audio.Buffer to a WAV file
//   - Transcode: base64 text straight to a WAV file
//   - Export: a downloadable audio/wav Artifact
//   - Play: hand decoded audio to an output.Player
//
// Example:
//
//	p, err := speech.New(speech.Config{})
//	wav, err := p.Transcode(speech.TrimDataURL(payload))
//	art, err := p.Export(buf, "greeting.wav")
//	path, err := art.WriteFile(".")
package speech
