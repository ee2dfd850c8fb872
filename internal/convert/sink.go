// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink writes converted maps under an output directory, mirroring the
// input collection's subdirectory structure.
type Sink struct {
	OutputDir string
}

// NewSink creates a Sink targeting outputDir, creating the directory if
// it does not exist.
func NewSink(outputDir string) (*Sink, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Sink{OutputDir: outputDir}, nil
}

// Write persists one serialized map at relPath (slash-separated,
// relative to the output base), creating any missing parent
// directories. A failed write is fatal to the run.
func (s *Sink) Write(relPath string, data []byte) (string, error) {
	full := filepath.Join(s.OutputDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", filepath.Dir(full), err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", full, err)
	}
	return full, nil
}
