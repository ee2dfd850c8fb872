// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the map conversion
// pipeline: raw documents as exported by the editor, and the normalized
// structures handed to the renderer.
package types

// RichText is a markup-bearing text field from the source editor.
// Titles and notes are stored as HTML fragments.
type RichText struct {
	Text string `json:"text"`
}

// Point is a 2D coordinate or offset.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Style carries the visual styling attached to a raw node. Only the
// stroke color is consumed downstream (subnode border/connection color).
type Style struct {
	StrokeColor string `json:"strokeColor"`
}

// RawNode is one node of the exported tree. Children nest to arbitrary
// depth under Nodes.
type RawNode struct {
	// ID is the node identifier, stable within one document.
	ID string `json:"id"`

	// Title is the node's rich-text title.
	Title RichText `json:"title"`

	// Note is the optional rich-text note attached to the node.
	Note *RichText `json:"note,omitempty"`

	// Location is the node's 2D position on the canvas.
	Location Point `json:"location"`

	// Style is the optional visual style.
	Style *Style `json:"style,omitempty"`

	// Nodes are the child nodes, in canvas order.
	Nodes []RawNode `json:"nodes,omitempty"`
}

// RawConnection links two nodes of the same document by ID.
type RawConnection struct {
	StartNodeID string `json:"startNodeID"`
	EndNodeID   string `json:"endNodeID"`

	// Title is the optional rich-text connection label.
	Title *RichText `json:"title,omitempty"`

	// WayPointOffset describes the curve shape of the connection.
	WayPointOffset Point `json:"wayPointOffset"`
}

// SourceDocument pairs a raw document with its origin path, slash
// separated and relative to the collection base.
type SourceDocument struct {
	Raw  RawDocument
	Path string
}

// RawDocument is one exported mind-map file: a token identifying the
// document, an ordered node tree, and a flat connection list.
type RawDocument struct {
	// Token is the 40-character identifier internal links use to
	// reference this document.
	Token string `json:"token"`

	// Title is the document title.
	Title string `json:"title"`

	// Nodes are the top-level nodes.
	Nodes []RawNode `json:"nodes"`

	// Connections are the cross-node connections.
	Connections []RawConnection `json:"connections,omitempty"`
}
