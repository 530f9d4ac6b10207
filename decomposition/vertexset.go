package decomposition

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/treewidth/graph"
)

// VertexSet is an ordered set of graph vertices backed by a red-black tree.
type VertexSet struct {
	set *treeset.Set
}

// NewVertexSet returns a set holding vs.
func NewVertexSet(vs ...graph.Vertex) *VertexSet {
	s := &VertexSet{set: treeset.NewWith(utils.UInt32Comparator)}
	s.Add(vs...)
	return s
}

// Add inserts vs.
func (s *VertexSet) Add(vs ...graph.Vertex) {
	for _, v := range vs {
		s.set.Add(uint32(v))
	}
}

// Remove deletes vs.
func (s *VertexSet) Remove(vs ...graph.Vertex) {
	for _, v := range vs {
		s.set.Remove(uint32(v))
	}
}

// Contains reports whether v is a member.
func (s *VertexSet) Contains(v graph.Vertex) bool {
	return s.set.Contains(uint32(v))
}

// Len returns the number of members.
func (s *VertexSet) Len() int {
	return s.set.Size()
}

// Values returns the members ascending.
func (s *VertexSet) Values() []graph.Vertex {
	out := make([]graph.Vertex, 0, s.set.Size())
	it := s.set.Iterator()
	for it.Next() {
		out = append(out, graph.Vertex(it.Value().(uint32)))
	}
	return out
}

// Difference returns the members of s missing from o.
func (s *VertexSet) Difference(o *VertexSet) []graph.Vertex {
	var out []graph.Vertex
	it := s.set.Iterator()
	for it.Next() {
		v := it.Value().(uint32)
		if !o.set.Contains(v) {
			out = append(out, graph.Vertex(v))
		}
	}
	return out
}

// Intersection returns the members present in both s and o.
func (s *VertexSet) Intersection(o *VertexSet) []graph.Vertex {
	var out []graph.Vertex
	it := s.set.Iterator()
	for it.Next() {
		v := it.Value().(uint32)
		if o.set.Contains(v) {
			out = append(out, graph.Vertex(v))
		}
	}
	return out
}
