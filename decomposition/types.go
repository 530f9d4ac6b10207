// Package decomposition extends tree.Tree with per-node bags of original
// graph vertices, optional induced hyperedges and a generic label side-table.
//
// Bag content is independent of the tree structure: structural edits never
// touch bags except that removing a node drops its bag, induced hyperedges
// and labels. Nodes created by edits start with an empty bag.
//
// A Decomposition is single-owner. Functions that return one hand ownership
// to the caller; keep no reference to a Decomposition you have passed on.
package decomposition

import (
	"fmt"

	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/tree"
)

// Decomposition is a tree decomposition candidate.
type Decomposition struct {
	*tree.Tree

	bags    map[tree.VertexID][]graph.Vertex
	induced map[tree.VertexID][]graph.EdgeID
	labels  map[string]map[tree.VertexID]any
}

// New returns an empty decomposition.
func New() *Decomposition {
	return FromTree(tree.New())
}

// FromTree wraps an existing tree; every node starts with an empty bag.
// The decomposition takes ownership of t.
func FromTree(t *tree.Tree) *Decomposition {
	return &Decomposition{
		Tree:    t,
		bags:    make(map[tree.VertexID][]graph.Vertex),
		induced: make(map[tree.VertexID][]graph.EdgeID),
		labels:  make(map[string]map[tree.VertexID]any),
	}
}

// RemoveVertex removes a node and its annotations, reconnecting its children
// as tree.Tree.RemoveVertex does.
func (d *Decomposition) RemoveVertex(v tree.VertexID) {
	d.Tree.RemoveVertex(v)
	d.forget(v)
}

// RemoveSubtree removes v, its descendants and their annotations.
func (d *Decomposition) RemoveSubtree(v tree.VertexID) {
	gone := d.Tree.PreOrder(v)
	d.Tree.RemoveSubtree(v)
	for _, u := range gone {
		d.forget(u)
	}
}

// Reset empties the decomposition.
func (d *Decomposition) Reset() {
	d.Tree.Reset()
	d.bags = make(map[tree.VertexID][]graph.Vertex)
	d.induced = make(map[tree.VertexID][]graph.EdgeID)
	d.labels = make(map[string]map[tree.VertexID]any)
}

func (d *Decomposition) forget(v tree.VertexID) {
	delete(d.bags, v)
	delete(d.induced, v)
	for name, byVertex := range d.labels {
		delete(byVertex, v)
		if len(byVertex) == 0 {
			delete(d.labels, name)
		}
	}
}

// Clone returns a deep copy. Label values are copied by assignment.
func (d *Decomposition) Clone() *Decomposition {
	c := FromTree(d.Tree.Clone())
	for v, bag := range d.bags {
		c.bags[v] = append([]graph.Vertex(nil), bag...)
	}
	for v, ids := range d.induced {
		c.induced[v] = append([]graph.EdgeID(nil), ids...)
	}
	for name, byVertex := range d.labels {
		m := make(map[tree.VertexID]any, len(byVertex))
		for v, val := range byVertex {
			m[v] = val
		}
		c.labels[name] = m
	}
	return c
}

func (d *Decomposition) mustVertex(v tree.VertexID) {
	if !d.IsVertex(v) {
		panic(fmt.Errorf("%w: %d", tree.ErrUnknownVertex, v))
	}
}
