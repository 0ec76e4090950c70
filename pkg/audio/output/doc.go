// ABOUTME: Audio output package for playing decoded speech
// ABOUTME: Provides Sink interface, playback handles, Player, oto and null sinks
// Package output provides audio playback.
//
// A Sink turns an audio.Buffer into a playing Handle. Every playback gets
// its own Handle, which is released exactly once, either when playback
// finishes on its own or when it is stopped. Player wraps a Sink and keeps
// at most one playback alive: starting a new one stops the previous one.
//
// Example:
//
//	player := output.NewPlayer(output.NewOto(), output.PlayerConfig{
//	    OnComplete: func(id string) { log.Printf("done: %s", id) },
//	})
//	defer player.Close()
//	h, err := player.Play(ctx, buf)
//	err = h.Wait(ctx)
package output
