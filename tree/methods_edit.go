// File: methods_edit.go
// Role: structural edits: InsertRoot, AddChild, AddParent, RemoveVertex,
//       RemoveSubtree, SetParent, SwapWithParent, Reset.
// Determinism:
//   - Every edit allocates ids in a fixed order; the same edit sequence yields the same ids.
// AI-HINT (file):
//   - Each edit restores the structural and sortedness invariants before returning.
//   - New edges always receive the next id; only SwapWithParent relabels an existing edge.

package tree

import "fmt"

// InsertRoot makes the tree non-empty. On an empty tree it allocates the next
// vertex id and makes it the root; otherwise it returns the existing root.
func (t *Tree) InsertRoot() VertexID {
	if t.root != None {
		return t.root
	}
	v := t.ids.vertex()
	t.nodes[v] = &node{}
	t.root = v
	return v
}

// AddChild attaches a new vertex under parent and returns it.
//
// Complexity: O(log d) for the sorted inserts, d = degree of parent.
func (t *Tree) AddChild(parent VertexID) VertexID {
	p := t.mustNode(parent)

	c := t.ids.vertex()
	t.nodes[c] = &node{parent: parent}
	p.children = insertSorted(p.children, c)
	t.addEdge(parent, c)
	return c
}

// AddParent inserts a new vertex directly above vertex and returns it.
//
// Root case: the new vertex becomes the root with vertex as its only child.
// Otherwise the new vertex is spliced between vertex and its parent p: edge
// (p, vertex) is replaced by (p, new) and (new, vertex), and the second of the
// two occupies the storage slot of the replaced edge.
func (t *Tree) AddParent(vertex VertexID) VertexID {
	nv := t.mustNode(vertex)
	n := t.ids.vertex()

	if nv.parent == None {
		t.nodes[n] = &node{children: []VertexID{vertex}}
		nv.parent = n
		t.root = n
		t.addEdge(n, vertex)
		return n
	}

	p := nv.parent
	np := t.nodes[p]
	old := t.edgeBetween(p, vertex)

	t.nodes[n] = &node{parent: p, children: []VertexID{vertex}}
	np.children = removeSorted(np.children, vertex)
	np.children = insertSorted(np.children, n)
	nv.parent = n

	t.addEdge(p, n)
	t.relabel(old, n, vertex)
	return n
}

// RemoveVertex deletes vertex and reconnects its children.
//
// Policy:
//   - no children: only the edge to the parent disappears; removing the only
//     vertex empties the tree.
//   - vertex has a parent p: every child is attached to p by one fresh edge.
//   - vertex is the root: the lowest child becomes root and every other child
//     is attached to it by one fresh edge.
func (t *Tree) RemoveVertex(vertex VertexID) {
	nv := t.mustNode(vertex)
	children := cloneIDs(nv.children)
	p := nv.parent

	for _, eid := range cloneIDs(nv.edges) {
		t.removeEdge(eid)
	}
	if p != None {
		t.nodes[p].children = removeSorted(t.nodes[p].children, vertex)
	}
	delete(t.nodes, vertex)

	if p == None {
		if len(children) == 0 {
			t.root = None
			return
		}
		head := children[0]
		t.nodes[head].parent = None
		t.root = head
		p = head
		children = children[1:]
	}

	np := t.nodes[p]
	for _, c := range children {
		t.nodes[c].parent = p
		np.children = insertSorted(np.children, c)
		t.addEdge(p, c)
	}
}

// RemoveSubtree deletes root and all of its descendants in post-order.
func (t *Tree) RemoveSubtree(root VertexID) {
	for _, v := range t.PostOrder(root) {
		t.removeLeaf(v)
	}
}

// removeLeaf deletes a childless vertex and its parent edge.
func (t *Tree) removeLeaf(v VertexID) {
	nv := t.nodes[v]
	for _, eid := range cloneIDs(nv.edges) {
		t.removeEdge(eid)
	}
	if nv.parent != None {
		t.nodes[nv.parent].children = removeSorted(t.nodes[nv.parent].children, v)
	} else {
		t.root = None
	}
	delete(t.nodes, v)
}

// SetParent moves vertex (with its subtree) under newParent.
//
// When newParent lies below vertex, the tree is first re-rooted at the child c
// of vertex on the path to newParent: the root-to-c path is inverted so c
// becomes the root and the former ancestors of vertex hang below vertex. The
// move then proceeds as usual. Re-rooting keeps every edge id.
//
// Panics with ErrCycle when vertex == newParent. A no-op when newParent is
// already the parent.
func (t *Tree) SetParent(vertex, newParent VertexID) {
	nv := t.mustNode(vertex)
	np := t.mustNode(newParent)
	if vertex == newParent {
		panic(fmt.Errorf("%w: %d under itself", ErrCycle, vertex))
	}
	if nv.parent == newParent {
		return
	}

	if t.IsAncestor(vertex, newParent) {
		c := newParent
		for t.nodes[c].parent != vertex {
			c = t.nodes[c].parent
		}
		t.reroot(c)
		if nv.parent == newParent {
			return
		}
	}

	old := nv.parent
	t.removeEdge(t.edgeBetween(old, vertex))
	t.nodes[old].children = removeSorted(t.nodes[old].children, vertex)

	nv.parent = newParent
	np.children = insertSorted(np.children, vertex)
	t.addEdge(newParent, vertex)
}

// reroot inverts the path from the current root to v so that v becomes the root.
func (t *Tree) reroot(v VertexID) {
	prev := None
	cur := v
	for cur != None {
		nc := t.nodes[cur]
		next := nc.parent
		if next != None {
			t.nodes[next].children = removeSorted(t.nodes[next].children, cur)
			nc.children = insertSorted(nc.children, next)
		}
		nc.parent = prev
		prev, cur = cur, next
	}
	t.root = v
}

// SwapWithParent rotates vertex into the position of its parent p: p becomes
// a child of vertex, the other children of both keep their parents.
//
// Edge (p, vertex) keeps its id. When p has a parent g, the edge (g, p) is
// relabelled in its slot with a fresh id and re-pointed to (g, vertex); it
// moves to the end of the id order. This is the only edit that changes the id
// of an existing edge.
//
// Panics with ErrNoParent when vertex is the root.
func (t *Tree) SwapWithParent(vertex VertexID) {
	nv := t.mustNode(vertex)
	p := nv.parent
	if p == None {
		panic(fmt.Errorf("%w: %d", ErrNoParent, vertex))
	}
	np := t.nodes[p]
	g := np.parent

	np.children = removeSorted(np.children, vertex)
	nv.children = insertSorted(nv.children, p)
	np.parent = vertex

	if g == None {
		nv.parent = None
		t.root = vertex
		return
	}

	ng := t.nodes[g]
	ng.children = removeSorted(ng.children, p)
	ng.children = insertSorted(ng.children, vertex)
	nv.parent = g
	t.relabel(t.edgeBetween(g, p), g, vertex)
}

// Reset removes every vertex and edge. Identifier allocation continues where it
// left off, so ids issued after Reset never collide with earlier ones.
func (t *Tree) Reset() {
	t.root = None
	t.nodes = make(map[VertexID]*node)
	t.slots = nil
	t.free = nil
	t.slotOf = make(map[EdgeID]int)
	t.order = nil
}
