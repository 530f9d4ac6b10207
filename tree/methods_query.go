// File: methods_query.go
// Role: read-only vertex queries: membership, parent/children, neighbours,
//       leaves, height/depth, ancestry and traversal orders.
// Determinism:
//   - Every returned list is ascending, traversals visit children ascending.

package tree

import (
	"fmt"
	"sort"
)

func (t *Tree) mustNode(v VertexID) *node {
	n, ok := t.nodes[v]
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrUnknownVertex, v))
	}
	return n
}

// IsVertex reports whether v is a vertex of the tree.
func (t *Tree) IsVertex(v VertexID) bool {
	_, ok := t.nodes[v]
	return ok
}

// VertexCount returns the number of vertices.
func (t *Tree) VertexCount() int {
	return len(t.nodes)
}

// Vertices returns all vertices ascending.
func (t *Tree) Vertices() []VertexID {
	out := make([]VertexID, 0, len(t.nodes))
	for v := range t.nodes {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Root returns the root, or None for an empty tree.
func (t *Tree) Root() VertexID {
	return t.root
}

// IsRoot reports whether v is the root.
func (t *Tree) IsRoot(v VertexID) bool {
	t.mustNode(v)
	return t.root == v
}

// Parent returns the parent of v, or None for the root.
func (t *Tree) Parent(v VertexID) VertexID {
	return t.mustNode(v).parent
}

// Children returns the children of v, ascending.
func (t *Tree) Children(v VertexID) []VertexID {
	return cloneIDs(t.mustNode(v).children)
}

// ChildCount returns the number of children of v.
func (t *Tree) ChildCount(v VertexID) int {
	return len(t.mustNode(v).children)
}

// ChildAt returns the i-th child of v in ascending order.
func (t *Tree) ChildAt(v VertexID, i int) VertexID {
	n := t.mustNode(v)
	if i < 0 || i >= len(n.children) {
		panic(fmt.Errorf("%w: child %d of %d", ErrPosition, i, v))
	}
	return n.children[i]
}

// IsChild reports whether child is a child of parent.
//
// Complexity: O(log d).
func (t *Tree) IsChild(parent, child VertexID) bool {
	t.mustNode(child)
	return containsSorted(t.mustNode(parent).children, child)
}

// Neighbors returns the parent (if any) and the children of v, ascending.
func (t *Tree) Neighbors(v VertexID) []VertexID {
	n := t.mustNode(v)
	out := cloneIDs(n.children)
	if n.parent != None {
		out = insertSorted(out, n.parent)
	}
	return out
}

// NeighborCount returns the degree of v.
func (t *Tree) NeighborCount(v VertexID) int {
	return len(t.mustNode(v).edges)
}

// IsNeighbor reports whether u and v are adjacent.
func (t *Tree) IsNeighbor(u, v VertexID) bool {
	nu := t.mustNode(u)
	nv := t.mustNode(v)
	return nu.parent == v || nv.parent == u
}

// IsLeaf reports whether v has no children.
func (t *Tree) IsLeaf(v VertexID) bool {
	return len(t.mustNode(v).children) == 0
}

// Leaves returns every childless vertex, ascending.
func (t *Tree) Leaves() []VertexID {
	var out []VertexID
	for v, n := range t.nodes {
		if len(n.children) == 0 {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LeafCount returns the number of leaves.
func (t *Tree) LeafCount() int {
	count := 0
	for _, n := range t.nodes {
		if len(n.children) == 0 {
			count++
		}
	}
	return count
}

// Depth returns the number of edges between v and the root.
func (t *Tree) Depth(v VertexID) int {
	d := 0
	for p := t.mustNode(v).parent; p != None; p = t.nodes[p].parent {
		d++
	}
	return d
}

// HeightOf returns the number of edges on the longest downward path from v.
func (t *Tree) HeightOf(v VertexID) int {
	t.mustNode(v)

	// Post-order gives children before parents.
	height := make(map[VertexID]int)
	for _, u := range t.PostOrder(v) {
		h := 0
		for _, c := range t.nodes[u].children {
			if height[c]+1 > h {
				h = height[c] + 1
			}
		}
		height[u] = h
	}
	return height[v]
}

// Height returns the height of the whole tree. Panics with ErrEmptyTree on an empty tree.
func (t *Tree) Height() int {
	if t.root == None {
		panic(ErrEmptyTree)
	}
	return t.HeightOf(t.root)
}

// IsAncestor reports whether ancestor lies strictly above v.
func (t *Tree) IsAncestor(ancestor, v VertexID) bool {
	t.mustNode(ancestor)
	for p := t.mustNode(v).parent; p != None; p = t.nodes[p].parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// SubtreeSize returns the number of vertices in the subtree rooted at v, v included.
func (t *Tree) SubtreeSize(v VertexID) int {
	return len(t.PreOrder(v))
}

// PreOrder lists the subtree of start, parents before children.
func (t *Tree) PreOrder(start VertexID) []VertexID {
	t.mustNode(start)

	var (
		out   []VertexID
		stack = []VertexID{start}
	)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, v)

		ch := t.nodes[v].children
		for i := len(ch) - 1; i >= 0; i-- {
			stack = append(stack, ch[i])
		}
	}
	return out
}

// PostOrder lists the subtree of start, children before parents.
func (t *Tree) PostOrder(start VertexID) []VertexID {
	t.mustNode(start)

	type frame struct {
		v    VertexID
		next int
	}
	var (
		out   []VertexID
		stack = []frame{{v: start}}
	)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		ch := t.nodes[top.v].children
		if top.next < len(ch) {
			c := ch[top.next]
			top.next++
			stack = append(stack, frame{v: c})
			continue
		}
		out = append(out, top.v)
		stack = stack[:len(stack)-1]
	}
	return out
}
