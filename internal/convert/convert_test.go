// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/classydev100/react-mindmap/internal/resolve"
	"github.com/classydev100/react-mindmap/pkg/types"
)

func writeDoc(t *testing.T, dir, rel string, doc types.RawDocument) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDocument(t *testing.T) {
	raw := types.RawDocument{
		Token: strings.Repeat("a", 40),
		Title: "Mathematics",
		Nodes: []types.RawNode{
			{
				ID:       "n1",
				Title:    types.RichText{Text: "<b>Algebra</b>"},
				Location: types.Point{X: 1, Y: 2},
				Nodes: []types.RawNode{
					{Title: types.RichText{Text: "Groups"}},
					{Title: types.RichText{Text: "Rings"}},
				},
			},
			{
				ID:    "n2",
				Title: types.RichText{Text: "Geometry"},
			},
		},
		Connections: []types.RawConnection{
			{StartNodeID: "n1", EndNodeID: "n2", WayPointOffset: types.Point{X: 5, Y: 6}},
		},
	}

	m := Document(raw, resolve.Table{})

	if m.Title != "Mathematics" {
		t.Errorf("title = %q", m.Title)
	}
	if len(m.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(m.Nodes))
	}
	if m.Nodes[0].Text != "Algebra" {
		t.Errorf("nodes[0].Text = %q", m.Nodes[0].Text)
	}

	// The flattened subnode count equals the number of non-top-level
	// nodes in the tree.
	if len(m.Subnodes) != 2 {
		t.Fatalf("subnodes = %d, want 2", len(m.Subnodes))
	}
	for _, sub := range m.Subnodes {
		if sub.Parent != "Algebra" {
			t.Errorf("subnode %q parent = %q, want Algebra", sub.Text, sub.Parent)
		}
	}

	if len(m.Connections) != 1 {
		t.Fatalf("connections = %d, want 1", len(m.Connections))
	}
	c := m.Connections[0]
	if c.Source != "Algebra" || c.Target != "Geometry" {
		t.Errorf("connection endpoints = %q -> %q", c.Source, c.Target)
	}
	if c.Curve != (types.Point{X: 5, Y: 6}) {
		t.Errorf("curve = %+v", c.Curve)
	}
}

func TestRun_CrossDocumentLink(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	tokenA := strings.Repeat("1", 40)

	// Document A lives at learn-anything/math/algebra.json; document B
	// links to it by token.
	writeDoc(t, inputDir, "learn-anything/math/algebra.json", types.RawDocument{
		Token: tokenA,
		Title: "Algebra",
		Nodes: []types.RawNode{{ID: "a1", Title: types.RichText{Text: "Algebra"}}},
	})
	writeDoc(t, inputDir, "learn-anything.json", types.RawDocument{
		Token: strings.Repeat("2", 40),
		Title: "Learn Anything",
		Nodes: []types.RawNode{
			{
				ID:    "b1",
				Title: types.RichText{Text: `<a href="https://maps.example.com/id/` + tokenA + `">Algebra</a>`},
			},
		},
	})

	var log bytes.Buffer
	summary, err := Run(types.ConvertConfig{
		InputDir:  inputDir,
		OutputDir: outputDir,
	}, &log)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Documents != 2 {
		t.Errorf("documents = %d, want 2", summary.Documents)
	}

	// Output mirrors the input's relative structure.
	rootOut := filepath.Join(outputDir, "learn-anything.json")
	data, err := os.ReadFile(rootOut)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	var m types.Map
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if len(m.Nodes) != 1 {
		t.Fatalf("nodes = %d, want 1", len(m.Nodes))
	}

	// The internal link resolves to A's computed relative path, with the
	// root-map segment stripped.
	if m.Nodes[0].URL == nil || *m.Nodes[0].URL != "math/algebra" {
		t.Errorf("url = %v, want math/algebra", m.Nodes[0].URL)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "learn-anything", "math", "algebra.json")); err != nil {
		t.Errorf("expected mirrored output for nested document: %v", err)
	}

	if !strings.Contains(log.String(), "2 map(s) converted") {
		t.Errorf("log output %q missing summary line", log.String())
	}
}

func TestRun_UnknownTokenDropsURL(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	writeDoc(t, inputDir, "solo.json", types.RawDocument{
		Token: strings.Repeat("3", 40),
		Title: "Solo",
		Nodes: []types.RawNode{
			{
				ID:    "n1",
				Title: types.RichText{Text: `<a href="https://maps.example.com/id/` + strings.Repeat("f", 40) + `">Missing</a>`},
			},
		},
	})

	var log bytes.Buffer
	if _, err := Run(types.ConvertConfig{InputDir: inputDir, OutputDir: outputDir}, &log); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "solo.json"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"url"`) {
		t.Errorf("unresolved internal link should drop the url field, got %s", data)
	}
}

func TestRun_WriteFailureFatal(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	writeDoc(t, inputDir, "sub/a.json", types.RawDocument{
		Title: "A",
		Nodes: []types.RawNode{{ID: "n1", Title: types.RichText{Text: "A"}}},
	})

	// A regular file where the mirrored subdirectory must go makes the
	// sink's directory creation fail.
	if err := os.WriteFile(filepath.Join(outputDir, "sub"), []byte("in the way"), 0o644); err != nil {
		t.Fatal(err)
	}

	var log bytes.Buffer
	summary, err := Run(types.ConvertConfig{InputDir: inputDir, OutputDir: outputDir}, &log)
	if err == nil {
		t.Fatal("write failure should be fatal to the run")
	}
	if summary != (Summary{}) {
		t.Errorf("summary = %+v, want zero value on failed run", summary)
	}
}

func TestRun_MissingConfig(t *testing.T) {
	if _, err := Run(types.ConvertConfig{}, &bytes.Buffer{}); err == nil {
		t.Error("missing directories should fail before any processing")
	}
}

func TestSink_CreatesParents(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSink(filepath.Join(dir, "out"))
	if err != nil {
		t.Fatal(err)
	}

	full, err := sink.Write("deep/nested/map.json", []byte("{}"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(full); err != nil {
		t.Errorf("expected output file at %s: %v", full, err)
	}
}

func TestSource_LoadVisitsEveryDocument(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a.json", types.RawDocument{Title: "A"})
	writeDoc(t, dir, "sub/b.json", types.RawDocument{Title: "B"})
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatal(err)
	}

	docs, err := NewSource(dir).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("loaded %d documents, want 2", len(docs))
	}

	paths := map[string]bool{}
	for _, d := range docs {
		paths[d.Path] = true
	}
	if !paths["a.json"] || !paths["sub/b.json"] {
		t.Errorf("unexpected paths: %v", paths)
	}
}
