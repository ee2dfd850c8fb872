// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"github.com/classydev100/react-mindmap/internal/richtext"
	"github.com/classydev100/react-mindmap/pkg/types"
)

// Connection rewrites a raw connection to reference nodes by display
// text instead of internal ID. idToText is the per-document lookup
// built while normalizing the top-level nodes; an endpoint missing from
// it (a connection into a subnode) stays empty and is omitted from the
// serialized output. The waypoint offset is copied verbatim as the
// curve; the label is carried only when the raw connection has one.
func Connection(raw types.RawConnection, idToText map[string]string) types.Connection {
	c := types.Connection{
		Source: idToText[raw.StartNodeID],
		Target: idToText[raw.EndNodeID],
		Curve:  raw.WayPointOffset,
	}
	if raw.Title != nil {
		text := richtext.Text(raw.Title.Text)
		c.Text = &text
	}
	return c
}
