// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"strings"
	"testing"

	"github.com/classydev100/react-mindmap/pkg/types"
)

func TestDocPath(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{
			name:   "root map keeps its own name",
			origin: "learn-anything.json",
			want:   "learn-anything",
		},
		{
			name:   "sentinel segment removed from nested path",
			origin: "learn-anything/mathematics/linear-algebra.json",
			want:   "mathematics/linear-algebra",
		},
		{
			name:   "path without sentinel unchanged",
			origin: "science/physics.json",
			want:   "science/physics",
		},
		{
			name:   "suffix stripped once",
			origin: "maps.json",
			want:   "maps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DocPath(tt.origin, "learn-anything"); got != tt.want {
				t.Errorf("DocPath(%q) = %q, want %q", tt.origin, got, tt.want)
			}
		})
	}
}

func TestBuildTable(t *testing.T) {
	t1 := strings.Repeat("a", 40)
	t2 := strings.Repeat("b", 40)

	docs := []types.SourceDocument{
		{Raw: types.RawDocument{Token: t1, Title: "Root"}, Path: "learn-anything.json"},
		{Raw: types.RawDocument{Token: t2, Title: "Algebra"}, Path: "learn-anything/math/algebra.json"},
		{Raw: types.RawDocument{Title: "No token"}, Path: "orphan.json"},
	}

	table := BuildTable(docs, "")

	if got, ok := table.Resolve(t1); !ok || got != "learn-anything" {
		t.Errorf("Resolve(t1) = %q, %v", got, ok)
	}
	if got, ok := table.Resolve(t2); !ok || got != "math/algebra" {
		t.Errorf("Resolve(t2) = %q, %v", got, ok)
	}
	if _, ok := table.Resolve(strings.Repeat("c", 40)); ok {
		t.Error("unknown token should not resolve")
	}
	if len(table) != 2 {
		t.Errorf("table size = %d, want 2 (tokenless documents skipped)", len(table))
	}
}
