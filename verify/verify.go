// Package verify checks a decomposition against the definition of a tree
// decomposition of a graph:
//
//  1. the underlying tree is well formed;
//  2. every bag vertex belongs to the graph and every graph vertex is in some bag;
//  3. every hyperedge is contained in some bag;
//  4. for every vertex, the nodes whose bags contain it form a connected subtree.
//
// The search never calls it; tests and the command line do.
package verify

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/tree"
)

// Sentinel errors. Check wraps them with the offending vertex or edge.
var (
	ErrNilInput           = errors.New("verify: graph or decomposition is nil")
	ErrStructure          = errors.New("verify: malformed tree")
	ErrEmptyDecomposition = errors.New("verify: decomposition has no nodes")
	ErrUnknownBagVertex   = errors.New("verify: bag holds a vertex missing from the graph")
	ErrVertexNotCovered   = errors.New("verify: vertex not covered by any bag")
	ErrEdgeNotCovered     = errors.New("verify: hyperedge not covered by any bag")
	ErrNotConnected       = errors.New("verify: bags containing a vertex are not connected")
)

// Check returns nil when d is a tree decomposition of g, otherwise the first
// violation found.
//
// Complexity: O(N·b + T + E·k·o) for N nodes with bags of size at most b,
// T tree edges, E hyperedges of size at most k and o occurrences per vertex.
func Check(g graph.View, d *decomposition.Decomposition) error {
	if g == nil || d == nil {
		return ErrNilInput
	}
	if err := d.Validate(); err != nil {
		return errors.Wrap(ErrStructure, err.Error())
	}
	if d.VertexCount() == 0 {
		if g.VertexCount() == 0 {
			return nil
		}
		return ErrEmptyDecomposition
	}

	// holders[x] lists the nodes whose bag contains x.
	holders := make(map[graph.Vertex][]tree.VertexID)
	covered := decomposition.NewVertexSet()
	for _, v := range d.Vertices() {
		for _, x := range d.Bag(v) {
			if !g.IsVertex(x) {
				return errors.Wrapf(ErrUnknownBagVertex, "vertex %d in node %d", x, v)
			}
			holders[x] = append(holders[x], v)
			covered.Add(x)
		}
	}

	for _, x := range g.Vertices() {
		if !covered.Contains(x) {
			return errors.Wrapf(ErrVertexNotCovered, "vertex %d", x)
		}
	}

	for _, e := range g.Hyperedges() {
		if !edgeCovered(d, e, holders[e.Vertices[0]]) {
			return errors.Wrapf(ErrEdgeNotCovered, "hyperedge %d %v", e.ID, e.Vertices)
		}
	}

	// The holders of x induce a forest; it is one tree iff it has |holders|-1 edges.
	links := make(map[graph.Vertex]int)
	for _, te := range d.Edges() {
		for _, x := range d.Bag(te.Lower) {
			if d.BagContains(te.Higher, x) {
				links[x]++
			}
		}
	}
	for _, x := range g.Vertices() {
		if links[x] != len(holders[x])-1 {
			return errors.Wrapf(ErrNotConnected, "vertex %d in %d nodes joined by %d edges", x, len(holders[x]), links[x])
		}
	}
	return nil
}

func edgeCovered(d *decomposition.Decomposition, e graph.Hyperedge, candidates []tree.VertexID) bool {
	for _, v := range candidates {
		inside := true
		for _, x := range e.Vertices[1:] {
			if !d.BagContains(v, x) {
				inside = false
				break
			}
		}
		if inside {
			return true
		}
	}
	return false
}
