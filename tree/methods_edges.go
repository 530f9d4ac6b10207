// File: methods_edges.go
// Role: edge slot storage (add, remove, relabel) and edge queries.
// Determinism:
//   - Edges() and EdgeAt() follow ascending edge id.
// AI-HINT (file):
//   - A slot index is stable for the life of an edge; only the ID field of the slot may change.
//   - order must stay sorted by id; every write path appends the largest id issued so far.

package tree

import "fmt"

// addEdge links a and b with a freshly allocated edge and records it on both nodes.
// The edge takes a free slot when one exists.
func (t *Tree) addEdge(a, b VertexID) EdgeID {
	eid := t.ids.edge()

	var slot int
	if n := len(t.free); n > 0 {
		slot = t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[slot] = newEdge(eid, a, b)
	} else {
		slot = len(t.slots)
		t.slots = append(t.slots, newEdge(eid, a, b))
	}
	t.slotOf[eid] = slot
	t.order = append(t.order, slot)

	t.nodes[a].edges = insertSorted(t.nodes[a].edges, eid)
	t.nodes[b].edges = insertSorted(t.nodes[b].edges, eid)
	return eid
}

// removeEdge unlinks an edge from both endpoints and frees its slot.
func (t *Tree) removeEdge(eid EdgeID) {
	slot := t.mustSlot(eid)
	e := t.slots[slot]

	t.dropIncident(e)
	t.dropOrder(eid)
	delete(t.slotOf, eid)
	t.slots[slot] = Edge{}
	t.free = append(t.free, slot)
}

// relabel gives the edge eid a fresh id and new endpoints a, b while keeping
// its slot, then rotates its order entry to the end. It returns the new id.
func (t *Tree) relabel(eid EdgeID, a, b VertexID) EdgeID {
	slot := t.mustSlot(eid)

	t.dropIncident(t.slots[slot])
	t.dropOrder(eid)
	delete(t.slotOf, eid)

	nid := t.ids.edge()
	t.slots[slot] = newEdge(nid, a, b)
	t.slotOf[nid] = slot
	t.order = append(t.order, slot)

	t.nodes[a].edges = insertSorted(t.nodes[a].edges, nid)
	t.nodes[b].edges = insertSorted(t.nodes[b].edges, nid)
	return nid
}

// dropIncident removes e.ID from the incident lists of any endpoint still present.
func (t *Tree) dropIncident(e Edge) {
	if n, ok := t.nodes[e.Lower]; ok {
		n.edges = removeSorted(n.edges, e.ID)
	}
	if n, ok := t.nodes[e.Higher]; ok {
		n.edges = removeSorted(n.edges, e.ID)
	}
}

// dropOrder deletes eid from order by binary search on edge id.
func (t *Tree) dropOrder(eid EdgeID) {
	lo, hi := 0, len(t.order)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if t.slots[t.order[mid]].ID < eid {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(t.order) && t.slots[t.order[lo]].ID == eid {
		t.order = append(t.order[:lo], t.order[lo+1:]...)
	}
}

// edgeBetween returns the id of the edge joining a and b, or NoEdge.
// Scans the shorter incident list.
func (t *Tree) edgeBetween(a, b VertexID) EdgeID {
	na, nb := t.nodes[a], t.nodes[b]
	if len(nb.edges) < len(na.edges) {
		na, a, b = nb, b, a
	}
	for _, eid := range na.edges {
		if t.slots[t.slotOf[eid]].Other(a) == b {
			return eid
		}
	}
	return NoEdge
}

func (t *Tree) mustSlot(eid EdgeID) int {
	slot, ok := t.slotOf[eid]
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrUnknownEdge, eid))
	}
	return slot
}

// IsEdge reports whether eid is a current edge id.
func (t *Tree) IsEdge(eid EdgeID) bool {
	_, ok := t.slotOf[eid]
	return ok
}

// EdgeCount returns the number of edges.
func (t *Tree) EdgeCount() int {
	return len(t.order)
}

// Edge looks up an edge by id.
func (t *Tree) Edge(eid EdgeID) (Edge, bool) {
	slot, ok := t.slotOf[eid]
	if !ok {
		return Edge{}, false
	}
	return t.slots[slot], true
}

// EdgeAt returns the edge at position i in ascending id order.
// Panics with ErrPosition when i is out of range.
func (t *Tree) EdgeAt(i int) Edge {
	if i < 0 || i >= len(t.order) {
		panic(fmt.Errorf("%w: %d", ErrPosition, i))
	}
	return t.slots[t.order[i]]
}

// Edges returns all edges in ascending id order.
func (t *Tree) Edges() []Edge {
	out := make([]Edge, len(t.order))
	for i, slot := range t.order {
		out[i] = t.slots[slot]
	}
	return out
}

// IncidentEdges returns the ids of the edges touching v, ascending.
func (t *Tree) IncidentEdges(v VertexID) []EdgeID {
	return cloneIDs(t.mustNode(v).edges)
}

// EdgeBetween returns the edge joining a and b, if they are adjacent.
func (t *Tree) EdgeBetween(a, b VertexID) (Edge, bool) {
	t.mustNode(a)
	t.mustNode(b)
	eid := t.edgeBetween(a, b)
	if eid == NoEdge {
		return Edge{}, false
	}
	return t.slots[t.slotOf[eid]], true
}
