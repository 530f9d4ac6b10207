// Package graph defines the input hypergraph consumed by every decomposition
// strategy: positive integer vertices, hyperedges over them, and the
// read-only View the rest of the module depends on.
//
// A Graph is built once (usually by the format package) and then shared
// read-only. Mutating methods take a write lock, queries a read lock, so a
// loaded Graph may be handed to several readers at once.
//
// Errors:
//
//	ErrVertexNotFound      - a hyperedge or query names an unknown vertex.
//	ErrEdgeNotFound        - requested hyperedge does not exist.
//	ErrEmptyEdge           - a hyperedge with no endpoints.
//	ErrLoopNotAllowed      - a hyperedge repeats a vertex or has one endpoint while loops are disabled.
//	ErrMultiEdgeNotAllowed - a hyperedge with the same vertex set exists while multi-edges are disabled.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent hyperedge.
	ErrEdgeNotFound = errors.New("graph: hyperedge not found")

	// ErrEmptyEdge indicates a hyperedge without endpoints.
	ErrEmptyEdge = errors.New("graph: hyperedge has no endpoints")

	// ErrLoopNotAllowed indicates a degenerate hyperedge while loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a duplicate hyperedge while multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")
)

// Vertex is a positive vertex identifier. Vertices of a Graph are numbered
// 1..VertexCount() in insertion order.
type Vertex uint32

// EdgeID identifies a hyperedge within one Graph. Ids start at 1.
type EdgeID uint32

// Hyperedge connects an arbitrary non-empty set of vertices.
// Vertices is sorted ascending and free of duplicates.
type Hyperedge struct {
	// ID is unique within the owning Graph.
	ID EdgeID

	// Vertices are the endpoints, ascending.
	Vertices []Vertex
}

// Contains reports whether v is an endpoint of e.
func (e Hyperedge) Contains(v Vertex) bool {
	lo, hi := 0, len(e.Vertices)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if e.Vertices[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(e.Vertices) && e.Vertices[lo] == v
}

// View is the read-only contract strategies, verification and output code
// rely on. *Graph implements it.
//
// Vertices are numbered densely: Vertices() is exactly 1..VertexCount().
// preprocess.Prepare rejects views that break this.
type View interface {
	// VertexCount returns the number of vertices.
	VertexCount() int

	// Vertices returns all vertices ascending, 1..VertexCount().
	Vertices() []Vertex

	// IsVertex reports membership.
	IsVertex(v Vertex) bool

	// EdgeCount returns the number of hyperedges.
	EdgeCount() int

	// Hyperedges returns all hyperedges ordered by ID.
	Hyperedges() []Hyperedge

	// Hyperedge looks up one hyperedge by id.
	Hyperedge(id EdgeID) (Hyperedge, bool)

	// Neighbors returns the vertices sharing a hyperedge with v, ascending, v excluded.
	Neighbors(v Vertex) ([]Vertex, error)
}

// Graph is the concrete hypergraph.
//
// mu guards every field. edges is kept in id order; since ids are allocated
// monotonically, appends preserve that order.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool
	allowMulti bool

	vertexCount int

	edges     []Hyperedge
	edgeIndex map[EdgeID]int
	nextEdge  EdgeID

	// adj[v][u] = number of hyperedges containing both v and u.
	adj map[Vertex]map[Vertex]int
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithLoops permits hyperedges with a single distinct endpoint.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits several hyperedges over the same vertex set.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// NewGraph returns an empty Graph. By default loops and multi-edges are rejected.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		edgeIndex: make(map[EdgeID]int),
		adj:       make(map[Vertex]map[Vertex]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
