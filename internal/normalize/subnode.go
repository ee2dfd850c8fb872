// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"github.com/classydev100/react-mindmap/internal/resolve"
	"github.com/classydev100/react-mindmap/pkg/types"
)

// frame is one pending unit of the flattening walk: a raw node and the
// normalized text of its immediate parent.
type frame struct {
	node   types.RawNode
	parent string
}

// Flatten walks a node's descendant tree depth-first, pre-order, and
// returns the subnodes as one ordered sequence. Each record's Parent is
// the normalized text of its immediate enclosing node; order matches
// input child order at every level. An explicit work stack keeps deep
// real-world trees from exhausting the call stack.
func Flatten(children []types.RawNode, parentText string, links resolve.Table) []types.Subnode {
	var out []types.Subnode

	stack := make([]frame, 0, len(children))
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, frame{children[i], parentText})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		sub := types.Subnode{
			Node:   Node(f.node, links),
			Parent: f.parent,
		}
		if f.node.Style != nil {
			sub.Color = f.node.Style.StrokeColor
		}
		out = append(out, sub)

		for i := len(f.node.Nodes) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Nodes[i], sub.Text})
		}
	}

	return out
}
