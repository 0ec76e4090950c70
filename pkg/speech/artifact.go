// ABOUTME: Downloadable WAV artifact
// ABOUTME: Carries filename, MIME type and bytes, and writes them to disk
package speech

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// MIMEType of every exported artifact
	MIMEType = "audio/wav"

	// DefaultFilename is used when the caller gives none
	DefaultFilename = "speech.wav"
)

// Artifact is an encoded WAV file ready for download
type Artifact struct {
	Filename string
	MIMEType string
	Data     []byte
}

// WriteFile writes the artifact into dir and returns its path. Only the
// base name of Filename is used.
func (a *Artifact) WriteFile(dir string) (string, error) {
	path := filepath.Join(dir, filepath.Base(a.Filename))
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
