// File: labels.go
// Role: induced hyperedges and the generic label side-table.

package decomposition

import (
	"sort"

	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/tree"
)

// InducedHyperedges returns the ids of the input hyperedges recorded as
// induced by the bag of v. Empty until computed or set.
func (d *Decomposition) InducedHyperedges(v tree.VertexID) []graph.EdgeID {
	d.mustVertex(v)
	return append([]graph.EdgeID(nil), d.induced[v]...)
}

// SetInducedHyperedges records ids as the induced hyperedges of v.
func (d *Decomposition) SetInducedHyperedges(v tree.VertexID, ids []graph.EdgeID) {
	d.mustVertex(v)
	if len(ids) == 0 {
		delete(d.induced, v)
		return
	}
	out := append([]graph.EdgeID(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	d.induced[v] = out
}

// ComputeInducedHyperedges records, for every node, the hyperedges of g whose
// endpoints all lie in the node's bag.
//
// Complexity: O(N · E · k) for N nodes, E hyperedges of at most k endpoints.
func (d *Decomposition) ComputeInducedHyperedges(g graph.View) {
	edges := g.Hyperedges()
	d.induced = make(map[tree.VertexID][]graph.EdgeID)
	for _, v := range d.Vertices() {
		bag := NewVertexSet(d.bags[v]...)
		var ids []graph.EdgeID
		for _, e := range edges {
			inside := true
			for _, x := range e.Vertices {
				if !bag.Contains(x) {
					inside = false
					break
				}
			}
			if inside {
				ids = append(ids, e.ID)
			}
		}
		if len(ids) > 0 {
			d.induced[v] = ids
		}
	}
}

// SetLabel attaches value to v under name, replacing any previous value.
func (d *Decomposition) SetLabel(name string, v tree.VertexID, value any) {
	d.mustVertex(v)
	byVertex, ok := d.labels[name]
	if !ok {
		byVertex = make(map[tree.VertexID]any)
		d.labels[name] = byVertex
	}
	byVertex[v] = value
}

// Label returns the value of name at v.
func (d *Decomposition) Label(name string, v tree.VertexID) (any, bool) {
	val, ok := d.labels[name][v]
	return val, ok
}

// IsLabeled reports whether v carries a value under name.
func (d *Decomposition) IsLabeled(name string, v tree.VertexID) bool {
	_, ok := d.labels[name][v]
	return ok
}

// RemoveLabel drops the value of name at v.
func (d *Decomposition) RemoveLabel(name string, v tree.VertexID) {
	byVertex, ok := d.labels[name]
	if !ok {
		return
	}
	delete(byVertex, v)
	if len(byVertex) == 0 {
		delete(d.labels, name)
	}
}

// RemoveLabels drops every value stored under name.
func (d *Decomposition) RemoveLabels(name string) {
	delete(d.labels, name)
}

// SwapLabels exchanges every label value of a and b.
func (d *Decomposition) SwapLabels(a, b tree.VertexID) {
	d.mustVertex(a)
	d.mustVertex(b)
	for _, byVertex := range d.labels {
		va, okA := byVertex[a]
		vb, okB := byVertex[b]
		delete(byVertex, a)
		delete(byVertex, b)
		if okA {
			byVertex[b] = va
		}
		if okB {
			byVertex[a] = vb
		}
	}
}

// LabelNames returns the names of all label tables, ascending.
func (d *Decomposition) LabelNames() []string {
	out := make([]string, 0, len(d.labels))
	for name := range d.labels {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
