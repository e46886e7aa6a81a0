package layout

import (
	"github.com/huzhiguan/PdfPig/model"
)

// partitionNode is one node of the recursive partition tree. A node is
// either a leaf holding words or an internal node holding children, never
// both. The empty sentinel (no words, no children) marks a branch that
// contained only whitespace.
type partitionNode struct {
	words    []model.Word
	children []*partitionNode
}

func newLeaf(words []model.Word) *partitionNode {
	return &partitionNode{words: words}
}

func newInternal(children []*partitionNode) *partitionNode {
	return &partitionNode{children: children}
}

func (n *partitionNode) isLeaf() bool {
	return len(n.children) == 0
}

// boundingBox returns the union of the node's word bounding boxes. Only
// meaningful for non-empty leaves.
func (n *partitionNode) boundingBox() model.Rectangle {
	var box model.Rectangle
	for i, w := range n.words {
		if i == 0 {
			box = w.BoundingBox
		} else {
			box = box.Union(w.BoundingBox)
		}
	}
	return box
}

// leaves returns the tree's leaves in document order. The empty sentinel
// yields nothing.
func (n *partitionNode) leaves() []*partitionNode {
	var out []*partitionNode
	n.collectLeaves(&out)
	return out
}

func (n *partitionNode) collectLeaves(out *[]*partitionNode) {
	if n.isLeaf() {
		if len(n.words) > 0 {
			*out = append(*out, n)
		}
		return
	}
	for _, c := range n.children {
		c.collectLeaves(out)
	}
}
