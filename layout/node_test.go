package layout

import (
	"testing"

	"github.com/huzhiguan/PdfPig/model"
)

func TestPartitionNodeLeavesInOrder(t *testing.T) {
	a := newLeaf([]model.Word{makeWord("a", 0, 0, 1, 1)})
	b := newLeaf([]model.Word{makeWord("b", 2, 0, 3, 1)})
	c := newLeaf([]model.Word{makeWord("c", 4, 0, 5, 1)})

	tree := newInternal([]*partitionNode{
		newInternal([]*partitionNode{a, b}),
		c,
	})

	leaves := tree.leaves()
	if len(leaves) != 3 {
		t.Fatalf("expected 3 leaves, got %d", len(leaves))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := leaves[i].words[0].Text; got != want {
			t.Errorf("leaf %d = %q, want %q", i, got, want)
		}
	}
}

func TestPartitionNodeEmptySentinel(t *testing.T) {
	sentinel := &partitionNode{}
	if got := sentinel.leaves(); len(got) != 0 {
		t.Errorf("expected no leaves from the empty sentinel, got %d", len(got))
	}

	tree := newInternal([]*partitionNode{
		&partitionNode{},
		newLeaf([]model.Word{makeWord("x", 0, 0, 1, 1)}),
	})
	if got := tree.leaves(); len(got) != 1 {
		t.Errorf("expected 1 leaf, got %d", len(got))
	}
}

func TestPartitionNodeBoundingBox(t *testing.T) {
	leaf := newLeaf([]model.Word{
		makeWord("a", 0, 0, 5, 5),
		makeWord("b", 10, 2, 15, 8),
	})

	box := leaf.boundingBox()
	if !box.Left().Equal(dec(0)) || !box.Right().Equal(dec(15)) ||
		!box.Bottom().Equal(dec(0)) || !box.Top().Equal(dec(8)) {
		t.Errorf("boundingBox = %s, want [0, 0, 15, 8]", box)
	}
}
