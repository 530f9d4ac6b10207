// File: bags.go
// Role: bag content and bag-derived node classification
//       (join, forget, introduce) of a Decomposition.
// Determinism:
//   - Bags are stored ascending without duplicates; every query returns ascending lists.

package decomposition

import (
	"sort"

	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/tree"
)

// SetBag replaces the bag of v. The input is copied, sorted and deduplicated.
func (d *Decomposition) SetBag(v tree.VertexID, bag []graph.Vertex) {
	d.mustVertex(v)

	out := make([]graph.Vertex, len(bag))
	copy(out, bag)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	w := 0
	for i, x := range out {
		if i > 0 && x == out[w-1] {
			continue
		}
		out[w] = x
		w++
	}
	if w == 0 {
		delete(d.bags, v)
		return
	}
	d.bags[v] = out[:w]
}

// Bag returns a copy of the bag of v.
func (d *Decomposition) Bag(v tree.VertexID) []graph.Vertex {
	d.mustVertex(v)
	return append([]graph.Vertex(nil), d.bags[v]...)
}

// BagSize returns |Bag(v)|.
func (d *Decomposition) BagSize(v tree.VertexID) int {
	d.mustVertex(v)
	return len(d.bags[v])
}

// BagContains reports whether x is in the bag of v.
func (d *Decomposition) BagContains(v tree.VertexID, x graph.Vertex) bool {
	d.mustVertex(v)
	bag := d.bags[v]
	i := sort.Search(len(bag), func(i int) bool { return bag[i] >= x })
	return i < len(bag) && bag[i] == x
}

// MaximumBagSize returns the largest bag size, 0 for an empty decomposition.
func (d *Decomposition) MaximumBagSize() int {
	best := 0
	for _, bag := range d.bags {
		if len(bag) > best {
			best = len(bag)
		}
	}
	return best
}

// MinimumBagSize returns the smallest bag size, 0 for an empty decomposition.
func (d *Decomposition) MinimumBagSize() int {
	if d.VertexCount() == 0 {
		return 0
	}
	best := -1
	for _, v := range d.Vertices() {
		n := len(d.bags[v])
		if best < 0 || n < best {
			best = n
		}
	}
	return best
}

// Width is the comparable quantity the search minimizes: the raw maximum bag size.
func (d *Decomposition) Width() int {
	return d.MaximumBagSize()
}

// ChildBagUnion returns the union of the bags of v's children.
func (d *Decomposition) ChildBagUnion(v tree.VertexID) []graph.Vertex {
	return d.childUnion(v).Values()
}

func (d *Decomposition) childUnion(v tree.VertexID) *VertexSet {
	s := NewVertexSet()
	for _, c := range d.Children(v) {
		s.Add(d.bags[c]...)
	}
	return s
}

// IntroducedVertices returns the vertices of Bag(v) absent from every child bag.
func (d *Decomposition) IntroducedVertices(v tree.VertexID) []graph.Vertex {
	return NewVertexSet(d.Bag(v)...).Difference(d.childUnion(v))
}

// ForgottenVertices returns the child-bag vertices missing from Bag(v).
func (d *Decomposition) ForgottenVertices(v tree.VertexID) []graph.Vertex {
	return d.childUnion(v).Difference(NewVertexSet(d.Bag(v)...))
}

// RememberedVertices returns the vertices of Bag(v) also present in a child bag.
func (d *Decomposition) RememberedVertices(v tree.VertexID) []graph.Vertex {
	return NewVertexSet(d.Bag(v)...).Intersection(d.childUnion(v))
}

// IsJoinNode reports whether v has at least two children.
func (d *Decomposition) IsJoinNode(v tree.VertexID) bool {
	return d.ChildCount(v) > 1
}

// IsForgetNode reports whether v forgets at least one child-bag vertex.
func (d *Decomposition) IsForgetNode(v tree.VertexID) bool {
	return len(d.ForgottenVertices(v)) > 0
}

// IsIntroduceNode reports whether v introduces at least one vertex.
func (d *Decomposition) IsIntroduceNode(v tree.VertexID) bool {
	return len(d.IntroducedVertices(v)) > 0
}

// JoinNodes lists the join nodes ascending.
func (d *Decomposition) JoinNodes() []tree.VertexID {
	return d.filterNodes(d.IsJoinNode)
}

// ForgetNodes lists the forget nodes ascending.
func (d *Decomposition) ForgetNodes() []tree.VertexID {
	return d.filterNodes(d.IsForgetNode)
}

// IntroduceNodes lists the introduce nodes ascending.
func (d *Decomposition) IntroduceNodes() []tree.VertexID {
	return d.filterNodes(d.IsIntroduceNode)
}

func (d *Decomposition) filterNodes(keep func(tree.VertexID) bool) []tree.VertexID {
	var out []tree.VertexID
	for _, v := range d.Vertices() {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
