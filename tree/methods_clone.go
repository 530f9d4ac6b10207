// File: methods_clone.go
// Role: Clone and Validate.

package tree

import "fmt"

// Clone returns a deep copy. The copy continues id allocation from the same
// point, so both trees issue identical ids for identical edit sequences.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		ids:    t.ids,
		root:   t.root,
		nodes:  make(map[VertexID]*node, len(t.nodes)),
		slots:  make([]Edge, len(t.slots)),
		free:   cloneInts(t.free),
		slotOf: make(map[EdgeID]int, len(t.slotOf)),
		order:  cloneInts(t.order),
	}
	for v, n := range t.nodes {
		c.nodes[v] = &node{
			parent:   n.parent,
			children: cloneIDs(n.children),
			edges:    cloneIDs(n.edges),
		}
	}
	copy(c.slots, t.slots)
	for eid, slot := range t.slotOf {
		c.slotOf[eid] = slot
	}
	return c
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)
	return out
}

// Validate checks every structural invariant and returns the first violation.
// Edits keep the invariants, so a non-nil result indicates a bug.
func (t *Tree) Validate() error {
	if len(t.nodes) == 0 {
		if t.root != None || len(t.order) != 0 {
			return fmt.Errorf("tree: empty tree with root %d and %d edges", t.root, len(t.order))
		}
		return nil
	}
	if want := len(t.nodes) - 1; len(t.order) != want {
		return fmt.Errorf("tree: %d edges for %d vertices", len(t.order), len(t.nodes))
	}

	roots := 0
	for v, n := range t.nodes {
		for i := 1; i < len(n.children); i++ {
			if n.children[i-1] >= n.children[i] {
				return fmt.Errorf("tree: children of %d not strictly ascending", v)
			}
		}
		for i := 1; i < len(n.edges); i++ {
			if n.edges[i-1] >= n.edges[i] {
				return fmt.Errorf("tree: incident edges of %d not strictly ascending", v)
			}
		}
		if n.parent == None {
			roots++
			if v != t.root {
				return fmt.Errorf("tree: parentless vertex %d is not the root %d", v, t.root)
			}
			continue
		}
		pn, ok := t.nodes[n.parent]
		if !ok {
			return fmt.Errorf("tree: vertex %d has unknown parent %d", v, n.parent)
		}
		if !containsSorted(pn.children, v) {
			return fmt.Errorf("tree: vertex %d missing from children of %d", v, n.parent)
		}
		if t.edgeBetween(n.parent, v) == NoEdge {
			return fmt.Errorf("tree: no edge between %d and its parent %d", v, n.parent)
		}
	}
	if roots != 1 {
		return fmt.Errorf("tree: %d parentless vertices", roots)
	}

	for i, slot := range t.order {
		e := t.slots[slot]
		if i > 0 && t.slots[t.order[i-1]].ID >= e.ID {
			return fmt.Errorf("tree: edge order broken at position %d", i)
		}
		if e.Lower >= e.Higher {
			return fmt.Errorf("tree: edge %d endpoints not ordered", e.ID)
		}
		if t.nodes[e.Lower].parent != e.Higher && t.nodes[e.Higher].parent != e.Lower {
			return fmt.Errorf("tree: edge %d is not a parent-child link", e.ID)
		}
	}

	if got := len(t.PreOrder(t.root)); got != len(t.nodes) {
		return fmt.Errorf("tree: %d of %d vertices reachable from the root", got, len(t.nodes))
	}
	return nil
}
