// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/classydev100/react-mindmap/pkg/types"
)

func writeMap(t *testing.T, dir, rel string, m types.Map) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func sampleMap() types.Map {
	url := "math/algebra"
	return types.Map{
		Title: "Mathematics",
		Nodes: []types.Node{
			{Text: "Algebra", URL: &url, Category: "wiki"},
			{Text: "Geometry"},
		},
		Subnodes: []types.Subnode{
			{Node: types.Node{Text: "Group theory", Category: "video"}, Parent: "Algebra"},
		},
	}
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	mapsDir := t.TempDir()
	store, err := NewStore(types.IndexConfig{IndexDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store, mapsDir
}

func TestIngestAndSearch(t *testing.T) {
	store, mapsDir := newTestStore(t)
	writeMap(t, mapsDir, "math.json", sampleMap())

	var log bytes.Buffer
	summary, err := store.Ingest(context.Background(), mapsDir, &log)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Indexed != 1 || summary.Total() != 1 {
		t.Fatalf("summary = %+v, want 1 indexed", summary)
	}
	if !strings.Contains(log.String(), "indexed math.json (3 nodes)") {
		t.Errorf("log = %q", log.String())
	}

	results, err := store.Search(context.Background(), QueryOptions{Query: "algebra"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	r := results[0]
	if r.Text != "Algebra" || r.MapPath != "math.json" || r.MapTitle != "Mathematics" {
		t.Errorf("result = %+v", r)
	}

	// Category filter reaches subnodes too.
	results, err = store.Search(context.Background(), QueryOptions{Category: "video"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Parent != "Algebra" {
		t.Errorf("category results = %+v", results)
	}
}

func TestIngest_SkipsUnchanged(t *testing.T) {
	store, mapsDir := newTestStore(t)
	writeMap(t, mapsDir, "math.json", sampleMap())

	ctx := context.Background()
	if _, err := store.Ingest(ctx, mapsDir, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	summary, err := store.Ingest(ctx, mapsDir, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Skipped != 1 || summary.Indexed != 0 {
		t.Errorf("second run summary = %+v, want 1 skipped", summary)
	}
}

func TestIngest_MalformedMapCounted(t *testing.T) {
	store, mapsDir := newTestStore(t)
	if err := os.WriteFile(filepath.Join(mapsDir, "broken.json"), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	summary, err := store.Ingest(context.Background(), mapsDir, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Failed != 1 {
		t.Errorf("summary = %+v, want 1 failed", summary)
	}
}

func TestExportJSON(t *testing.T) {
	store, mapsDir := newTestStore(t)
	writeMap(t, mapsDir, "math.json", sampleMap())

	ctx := context.Background()
	if _, err := store.Ingest(ctx, mapsDir, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if err := store.ExportJSON(ctx, QueryOptions{}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(store.indexDir, "export.json"))
	if err != nil {
		t.Fatal(err)
	}
	var exported []QueryResult
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatal(err)
	}
	if len(exported) != 3 {
		t.Errorf("exported %d nodes, want 3", len(exported))
	}
}
