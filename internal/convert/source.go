// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/classydev100/react-mindmap/pkg/types"
)

// Source reads raw documents from a collection directory.
type Source struct {
	baseDir string
}

// NewSource creates a Source rooted at dir.
func NewSource(dir string) *Source {
	return &Source{baseDir: dir}
}

// Load walks the collection and parses every .json leaf into a
// SourceDocument. Paths are slash-separated and relative to the base,
// and every document is visited exactly once.
func (s *Source) Load() ([]types.SourceDocument, error) {
	var docs []types.SourceDocument

	err := filepath.WalkDir(s.baseDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}

		var raw types.RawDocument
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing %s: %w", p, err)
		}

		rel, err := filepath.Rel(s.baseDir, p)
		if err != nil {
			return fmt.Errorf("relativizing %s: %w", p, err)
		}

		docs = append(docs, types.SourceDocument{
			Raw:  raw,
			Path: filepath.ToSlash(rel),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading collection %s: %w", s.baseDir, err)
	}
	return docs, nil
}
