package manipulation

import (
	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/tree"
)

// Compression merges every node whose bag is contained in a neighbouring bag
// into that neighbour, leaving a decomposition without redundant nodes.
type Compression struct{}

// NewCompression returns the compression operation.
func NewCompression() *Compression {
	return &Compression{}
}

// Name implements Operation.
func (*Compression) Name() string { return "compression" }

// Capabilities implements Operation.
func (*Compression) Capabilities() Capabilities {
	return Capabilities{RemovesTreeNodes: true, CreatesSubsetMaximalBags: true}
}

// Clone implements Operation.
func (*Compression) Clone() Operation { return &Compression{} }

// Apply implements Operation.
//
// A node v absorbed by its parent is removed and its children reattach to the
// parent. A node absorbed by a child u is first rotated below u, then removed
// the same way. Repeats until no node is a subset of a neighbour.
func (c *Compression) Apply(_ graph.View, d *decomposition.Decomposition) error {
	if d == nil {
		return ErrNilDecomposition
	}
	for changed := true; changed; {
		changed = false
		for _, v := range d.Vertices() {
			if !d.IsVertex(v) || d.VertexCount() < 2 {
				continue
			}
			if u, ok := absorbingNeighbor(d, v); ok {
				if d.Parent(u) == v {
					d.SwapWithParent(u)
				}
				d.RemoveVertex(v)
				changed = true
			}
		}
	}
	return nil
}

// absorbingNeighbor finds a neighbour whose bag contains the bag of v,
// preferring the parent and then the lowest child.
func absorbingNeighbor(d *decomposition.Decomposition, v tree.VertexID) (tree.VertexID, bool) {
	bag := d.Bag(v)
	subset := func(u tree.VertexID) bool {
		for _, x := range bag {
			if !d.BagContains(u, x) {
				return false
			}
		}
		return true
	}
	if p := d.Parent(v); p != tree.None && subset(p) {
		return p, true
	}
	for _, c := range d.Children(v) {
		if subset(c) {
			return c, true
		}
	}
	return tree.None, false
}
