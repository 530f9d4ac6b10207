// Package tree implements the mutable rooted tree every decomposition is
// built on.
//
// A Tree issues its own vertex and edge identifiers. Ids are positive,
// strictly increasing over the lifetime of one Tree and never reused; the
// single exception is SwapWithParent, which relabels one edge in place with a
// fresh id (see there). The zero value of VertexID and EdgeID means "none".
//
// Between public operations the following always hold:
//
//	EdgeCount() == max(0, VertexCount()-1)
//	exactly one vertex has Parent() == None when the tree is non-empty
//	the structure is connected and acyclic
//	every node's children and incident edge ids are strictly ascending
//
// Operations that take a vertex or edge id require it to be a member.
// Violations are programmer errors: the operation panics with an error
// wrapping ErrUnknownVertex, ErrUnknownEdge, ErrEmptyTree or ErrCycle.
// Use IsVertex / IsEdge first when an id may be stale.
//
// A Tree is single-owner and not safe for concurrent mutation.
package tree

import "errors"

// Sentinel errors carried by contract-violation panics.
var (
	// ErrUnknownVertex indicates an id that is not a vertex of the tree.
	ErrUnknownVertex = errors.New("tree: unknown vertex")

	// ErrUnknownEdge indicates an id that is not an edge of the tree.
	ErrUnknownEdge = errors.New("tree: unknown edge")

	// ErrEmptyTree indicates an operation that needs at least one vertex.
	ErrEmptyTree = errors.New("tree: tree is empty")

	// ErrCycle indicates an edit that would make a vertex its own ancestor.
	ErrCycle = errors.New("tree: edit would create a cycle")

	// ErrNoParent indicates a rotation requested on the root.
	ErrNoParent = errors.New("tree: vertex has no parent")

	// ErrPosition indicates an index outside a list.
	ErrPosition = errors.New("tree: position out of range")
)

// VertexID identifies a tree node.
type VertexID uint32

// EdgeID identifies a tree edge.
type EdgeID uint32

// None is the "no vertex" sentinel (the parent of the root).
const None VertexID = 0

// NoEdge is the "no edge" sentinel.
const NoEdge EdgeID = 0

// firstID is the first id an allocator hands out.
const firstID = 1

// Edge is one parent–child adjacency, stored with the smaller endpoint first.
type Edge struct {
	// ID is the current identifier of the edge.
	ID EdgeID

	// Lower is the numerically smaller endpoint.
	Lower VertexID

	// Higher is the numerically larger endpoint.
	Higher VertexID
}

// Other returns the endpoint opposite v.
func (e Edge) Other(v VertexID) VertexID {
	if e.Lower == v {
		return e.Higher
	}
	return e.Lower
}

// Contains reports whether v is an endpoint of e.
func (e Edge) Contains(v VertexID) bool {
	return e.Lower == v || e.Higher == v
}

// newEdge orders the endpoints.
func newEdge(id EdgeID, a, b VertexID) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{ID: id, Lower: a, Higher: b}
}

// idAllocator hands out monotonically increasing vertex and edge ids.
type idAllocator struct {
	nextVertex VertexID
	nextEdge   EdgeID
}

func newIDAllocator() idAllocator {
	return idAllocator{nextVertex: firstID, nextEdge: firstID}
}

func (a *idAllocator) vertex() VertexID {
	v := a.nextVertex
	a.nextVertex++
	return v
}

func (a *idAllocator) edge() EdgeID {
	e := a.nextEdge
	a.nextEdge++
	return e
}

// node is the Node Store record of one vertex.
type node struct {
	parent   VertexID
	children []VertexID // strictly ascending
	edges    []EdgeID   // strictly ascending
}

// Tree is a rooted tree with stable vertex and edge identities.
//
// Edges live in slots: a slot index is the edge's internal storage position
// and never changes while the edge exists, even when its id is relabelled.
// order lists occupied slots by ascending edge id; because new and relabelled
// ids are always the largest issued so far, appending keeps it sorted.
type Tree struct {
	ids   idAllocator
	root  VertexID
	nodes map[VertexID]*node

	slots  []Edge
	free   []int
	slotOf map[EdgeID]int
	order  []int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{
		ids:    newIDAllocator(),
		nodes:  make(map[VertexID]*node),
		slotOf: make(map[EdgeID]int),
	}
}
