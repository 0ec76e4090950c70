// ABOUTME: Entry point for the speechwav converter
// ABOUTME: Turns base64 text-to-speech PCM into a WAV file and optionally plays it
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/harperreed/speechwav/internal/version"
	"github.com/harperreed/speechwav/pkg/audio"
	"github.com/harperreed/speechwav/pkg/audio/output"
	"github.com/harperreed/speechwav/pkg/speech"
)

var (
	inFile      = flag.String("in", "-", "Base64 PCM input file (- for stdin)")
	outFile     = flag.String("out", speech.DefaultFilename, "WAV output file (- for stdout)")
	sampleRate  = flag.Int("rate", audio.DefaultSampleRate, "Sample rate of the raw PCM in Hz")
	channels    = flag.Int("channels", audio.DefaultChannels, "Channel count of the raw PCM")
	tone        = flag.Float64("tone", 0, "Generate a sine tone of this frequency instead of reading input")
	duration    = flag.Duration("duration", time.Second, "Length of the generated tone")
	play        = flag.Bool("play", false, "Play the audio after writing it")
	sinkName    = flag.String("sink", "oto", "Playback sink: oto or null")
	logFile     = flag.String("log-file", "", "Also append logs to this file")
	debug       = flag.Bool("debug", false, "Enable debug logging")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Log to stderr so the WAV can go to stdout
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("Received %v signal, stopping", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	pipeline, err := speech.New(speech.Config{
		SampleRate: *sampleRate,
		Channels:   *channels,
	})
	if err != nil {
		return err
	}

	buf, err := loadBuffer(pipeline)
	if err != nil {
		return err
	}
	if *debug {
		log.Printf("Decoded %d frames, %d channels at %dHz (%v)",
			buf.FrameCount(), buf.ChannelCount(), buf.SampleRate(), buf.Duration())
	}

	art, err := pipeline.Export(buf, filepath.Base(*outFile))
	if err != nil {
		return err
	}
	if *outFile == "-" {
		if _, err := os.Stdout.Write(art.Data); err != nil {
			return fmt.Errorf("failed to write WAV to stdout: %w", err)
		}
	} else {
		path, err := art.WriteFile(filepath.Dir(*outFile))
		if err != nil {
			return err
		}
		log.Printf("Wrote %s (%d bytes, %s)", path, len(art.Data), art.MIMEType)
	}

	if !*play {
		return nil
	}
	return playBuffer(ctx, buf)
}

func loadBuffer(pipeline *speech.Pipeline) (*audio.Buffer, error) {
	cfg := pipeline.Config()
	if *tone > 0 {
		return audio.Tone(*tone, cfg.SampleRate, cfg.Channels, *duration, 0.5)
	}

	var r io.Reader = os.Stdin
	if *inFile != "-" {
		f, err := os.Open(*inFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return pipeline.Decode(speech.TrimDataURL(string(text)))
}

func playBuffer(ctx context.Context, buf *audio.Buffer) error {
	var sink output.Sink
	switch *sinkName {
	case "oto":
		otoSink := output.NewOto()
		if err := otoSink.Open(buf.SampleRate(), buf.ChannelCount()); err != nil {
			return fmt.Errorf("failed to open audio device: %w", err)
		}
		sink = otoSink
	case "null":
		sink = output.NewNull()
	default:
		return fmt.Errorf("unknown sink %q (supported: oto, null)", *sinkName)
	}

	player := output.NewPlayer(sink, output.PlayerConfig{
		OnComplete: func(id string) {
			if *debug {
				log.Printf("Playback %s finished", id)
			}
		},
	})
	defer player.Close()

	h, err := player.Play(ctx, buf)
	if err != nil {
		return fmt.Errorf("failed to start playback: %w", err)
	}
	log.Printf("Playing %v of audio", buf.Duration())

	if err := h.Wait(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
