// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Node is a normalized top-level node: plain text, a resolved URL, and
// fixed canvas coordinates.
type Node struct {
	// Text is the node title with markup and any category marker removed.
	Text string `json:"text"`

	// URL is the first hyperlink target found in the title, empty string
	// when the node carries no link. Internal links are rewritten to the
	// target document's relative path; nil means the link token was not
	// known to the collection, and the field is dropped on serialization.
	URL *string `json:"url,omitempty"`

	// Note is the plain-text note, absent when the raw node had none.
	Note *string `json:"note,omitempty"`

	// Fx, Fy pin the node to its exported canvas position.
	Fx float64 `json:"fx"`
	Fy float64 `json:"fy"`

	// Category is the taxonomy label derived from the title's emoji
	// marker, absent when no recognized marker was present.
	Category string `json:"category,omitempty"`
}

// Subnode is a normalized descendant node, tagged with the plain text of
// its immediate parent.
type Subnode struct {
	Node

	// Parent is the normalized text of the immediate enclosing node.
	Parent string `json:"parent"`

	// Color is the border/connection stroke color, when styled.
	Color string `json:"color,omitempty"`
}

// Connection is a normalized connection referencing nodes by their
// plain text rather than by internal ID.
type Connection struct {
	// Text is the connection label, absent when the raw connection had
	// no title.
	Text *string `json:"text,omitempty"`

	// Source and Target are the texts of the connected top-level nodes.
	// An endpoint that does not resolve (e.g. a connection into a
	// subnode) is dropped on serialization. A node whose normalized
	// text is empty serializes the same way; the renderer cannot
	// address such a node by text either.
	Source string `json:"source,omitempty"`
	Target string `json:"target,omitempty"`

	// Curve is the waypoint offset shaping the connection.
	Curve Point `json:"curve"`
}

// Map is one normalized document, ready for the renderer.
type Map struct {
	Title       string       `json:"title"`
	Nodes       []Node       `json:"nodes"`
	Subnodes    []Subnode    `json:"subnodes"`
	Connections []Connection `json:"connections"`
}
