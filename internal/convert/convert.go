// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert orchestrates the two-pass map conversion: pass one
// loads the whole collection and builds the cross-document link table,
// pass two normalizes each document against that table and writes the
// result to a mirrored output path.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/classydev100/react-mindmap/internal/normalize"
	"github.com/classydev100/react-mindmap/internal/resolve"
	"github.com/classydev100/react-mindmap/pkg/types"
)

// Document runs the per-document pipeline: normalize the top-level
// nodes while recording the id-to-text lookup, flatten every node's
// descendants into the subnode sequence, and normalize connections
// against the lookup.
func Document(raw types.RawDocument, links resolve.Table) types.Map {
	idToText := make(map[string]string, len(raw.Nodes))
	nodes := make([]types.Node, 0, len(raw.Nodes))
	subnodes := []types.Subnode{}

	for _, rn := range raw.Nodes {
		n := normalize.Node(rn, links)
		idToText[rn.ID] = n.Text
		nodes = append(nodes, n)
		subnodes = append(subnodes, normalize.Flatten(rn.Nodes, n.Text, links)...)
	}

	connections := make([]types.Connection, 0, len(raw.Connections))
	for _, rc := range raw.Connections {
		connections = append(connections, normalize.Connection(rc, idToText))
	}

	return types.Map{
		Title:       raw.Title,
		Nodes:       nodes,
		Subnodes:    subnodes,
		Connections: connections,
	}
}

// Summary holds counts from one conversion run.
type Summary struct {
	Documents int
}

// Run converts a whole collection. The link table is fully built over
// every document before any document is normalized, because a
// document's internal links may reference any other document's token.
// Output writes for different documents are dispatched independently;
// Run waits for all of them and fails on the first write error.
func Run(cfg types.ConvertConfig, w io.Writer) (Summary, error) {
	if cfg.InputDir == "" || cfg.OutputDir == "" {
		return Summary{}, errors.New("input and output directories are required")
	}

	docs, err := NewSource(cfg.InputDir).Load()
	if err != nil {
		return Summary{}, err
	}

	links := resolve.BuildTable(docs, cfg.RootMap)

	sink, err := NewSink(cfg.OutputDir)
	if err != nil {
		return Summary{}, err
	}

	// Marshal every document before dispatching any write, so an
	// encoding failure never leaves in-flight writes unobserved.
	type encoded struct {
		path string
		data []byte
	}
	pending := make([]encoded, 0, len(docs))
	for _, d := range docs {
		m := Document(d.Raw, links)

		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return Summary{}, fmt.Errorf("encoding %s: %w", d.Path, err)
		}
		pending = append(pending, encoded{path: d.Path, data: data})
		fmt.Fprintf(w, "converted: %s\n", d.Path)
	}

	var g errgroup.Group
	for _, p := range pending {
		g.Go(func() error {
			_, err := sink.Write(p.path, p.data)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	fmt.Fprintf(w, "\n%d map(s) converted\n", len(docs))
	return Summary{Documents: len(docs)}, nil
}
