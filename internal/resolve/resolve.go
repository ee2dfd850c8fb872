// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve builds the collection-wide table that turns internal
// link tokens into relative document paths. The table is constructed
// once over the whole input collection, before any document is
// normalized, and is read-only afterwards.
package resolve

import (
	"path"
	"strings"

	"github.com/classydev100/react-mindmap/pkg/types"
)

// Table maps a document's 40-character token to its relative path in
// the converted collection.
type Table map[string]string

// BuildTable derives the token-to-path mapping for every document in
// the collection. rootMap names the collection's root document; the
// empty string falls back to types.DefaultRootMap.
func BuildTable(docs []types.SourceDocument, rootMap string) Table {
	if rootMap == "" {
		rootMap = types.DefaultRootMap
	}
	t := make(Table, len(docs))
	for _, d := range docs {
		if d.Raw.Token == "" {
			continue
		}
		t[d.Raw.Token] = DocPath(d.Path, rootMap)
	}
	return t
}

// DocPath converts an origin path (relative to the collection base)
// into the path the renderer addresses the document by: the .json
// suffix is stripped, and every rootMap segment is removed unless the
// path is exactly the root document itself.
func DocPath(origin, rootMap string) string {
	p := strings.TrimSuffix(path.Clean(origin), ".json")
	if p == rootMap {
		return p
	}
	segs := strings.Split(p, "/")
	kept := segs[:0]
	for _, seg := range segs {
		if seg != rootMap {
			kept = append(kept, seg)
		}
	}
	return strings.Join(kept, "/")
}

// Resolve returns the relative path for token. Unknown tokens report
// ok=false; callers treat that as a degraded link, not an error.
func (t Table) Resolve(token string) (string, bool) {
	p, ok := t[token]
	return p, ok
}
