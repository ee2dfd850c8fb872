// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize converts raw tree nodes and connections into the
// flat, plain-text structures the renderer consumes.
package normalize

import (
	"regexp"
	"strings"

	"github.com/classydev100/react-mindmap/internal/emoji"
	"github.com/classydev100/react-mindmap/internal/resolve"
	"github.com/classydev100/react-mindmap/internal/richtext"
	"github.com/classydev100/react-mindmap/pkg/types"
)

// internalLink matches a hyperlink into another document of the same
// collection: a 40-character token following an /id/ path segment.
var internalLink = regexp.MustCompile(`/id/([A-Za-z0-9]{40})`)

// Node converts one raw node into its normalized form: markup stripped,
// internal links rewritten through the collection link table, and the
// leading emoji marker classified into a category and removed from the
// text.
func Node(raw types.RawNode, links resolve.Table) types.Node {
	text := richtext.Text(raw.Title.Text)

	url := richtext.URL(raw.Title.Text)
	urlField := &url
	if m := internalLink.FindStringSubmatch(url); m != nil {
		if p, ok := links.Resolve(m[1]); ok {
			resolved := p
			urlField = &resolved
		} else {
			// Dangling token: the link is dropped rather than kept as a
			// dead internal URL.
			urlField = nil
		}
	}

	var note *string
	if raw.Note != nil {
		trimmed := richtext.TrimNote(richtext.Text(raw.Note.Text))
		note = &trimmed
	}

	n := types.Node{
		Text: text,
		URL:  urlField,
		Note: note,
		Fx:   raw.Location.X,
		Fy:   raw.Location.Y,
	}

	if m := emoji.Pattern.FindString(text); m != "" {
		if cat := emoji.Category(m); cat != "" {
			n.Category = cat
			n.Text = strings.TrimSpace(strings.Replace(text, m, "", 1))
		}
	}

	return n
}
