// File: methods.go
// Role: vertex/hyperedge lifecycle and queries for Graph.
// Determinism:
//   - Vertices() ascending, Hyperedges() by ID ascending, Neighbors() ascending.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package graph

import (
	"fmt"
	"sort"
)

// AddVertex appends one vertex and returns its id (VertexCount() after the call).
func (g *Graph) AddVertex() Vertex {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertexCount++
	return Vertex(g.vertexCount)
}

// AddVertices appends n vertices and returns the id of the first one.
// For n <= 0 it returns the id the next vertex would get and adds nothing.
func (g *Graph) AddVertices(n int) Vertex {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := Vertex(g.vertexCount + 1)
	if n > 0 {
		g.vertexCount += n
	}
	return first
}

// IsVertex reports whether v names a vertex of g.
func (g *Graph) IsVertex(v Vertex) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 1 && int(v) <= g.vertexCount
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertexCount
}

// Vertices returns 1..VertexCount().
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, g.vertexCount)
	for i := range out {
		out[i] = Vertex(i + 1)
	}
	return out
}

// AddEdge inserts a hyperedge over vs and returns its id.
//
// Steps:
//  1. Reject an empty endpoint list and unknown vertices.
//  2. Sort and dedupe endpoints; a single distinct endpoint is a loop.
//  3. Enforce the multi-edge constraint against existing hyperedges.
//  4. Allocate the id, store the edge, update adjacency multiplicities.
//
// Complexity: O(k log k + k²) for k endpoints, plus O(E) for the multi-edge scan
// when multi-edges are disabled.
func (g *Graph) AddEdge(vs ...Vertex) (EdgeID, error) {
	if len(vs) == 0 {
		return 0, ErrEmptyEdge
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, v := range vs {
		if v < 1 || int(v) > g.vertexCount {
			return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
		}
	}

	sorted := normalize(vs)
	if (len(sorted) < 2 || len(sorted) != len(vs)) && !g.allowLoops {
		return 0, ErrLoopNotAllowed
	}
	if !g.allowMulti {
		for _, e := range g.edges {
			if equalVertices(e.Vertices, sorted) {
				return 0, ErrMultiEdgeNotAllowed
			}
		}
	}

	g.nextEdge++
	id := g.nextEdge
	g.edgeIndex[id] = len(g.edges)
	g.edges = append(g.edges, Hyperedge{ID: id, Vertices: sorted})

	for i, v := range sorted {
		for _, u := range sorted[i+1:] {
			g.link(v, u)
			g.link(u, v)
		}
	}
	return id, nil
}

// RemoveEdge deletes a hyperedge by id.
func (g *Graph) RemoveEdge(id EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos, ok := g.edgeIndex[id]
	if !ok {
		return ErrEdgeNotFound
	}
	e := g.edges[pos]
	for i, v := range e.Vertices {
		for _, u := range e.Vertices[i+1:] {
			g.unlink(v, u)
			g.unlink(u, v)
		}
	}

	g.edges = append(g.edges[:pos], g.edges[pos+1:]...)
	delete(g.edgeIndex, id)
	for i := pos; i < len(g.edges); i++ {
		g.edgeIndex[g.edges[i].ID] = i
	}
	return nil
}

// EdgeCount returns the number of hyperedges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Hyperedges returns a copy of all hyperedges ordered by ID.
// Endpoint slices are shared and must not be modified.
func (g *Graph) Hyperedges() []Hyperedge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Hyperedge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Hyperedge looks up a hyperedge by id.
func (g *Graph) Hyperedge(id EdgeID) (Hyperedge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos, ok := g.edgeIndex[id]
	if !ok {
		return Hyperedge{}, false
	}
	return g.edges[pos], true
}

// Neighbors returns the vertices that share at least one hyperedge with v.
func (g *Graph) Neighbors(v Vertex) ([]Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 1 || int(v) > g.vertexCount {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	row := g.adj[v]
	out := make([]Vertex, 0, len(row))
	for u := range row {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// IsNeighbor reports whether u and v share a hyperedge.
func (g *Graph) IsNeighbor(u, v Vertex) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[u][v]
	return ok
}

// Degree returns the number of distinct neighbours of v.
func (g *Graph) Degree(v Vertex) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 1 || int(v) > g.vertexCount {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	return len(g.adj[v]), nil
}

// Clone returns a deep copy with the same options, vertices and hyperedge ids.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		allowLoops:  g.allowLoops,
		allowMulti:  g.allowMulti,
		vertexCount: g.vertexCount,
		edges:       make([]Hyperedge, len(g.edges)),
		edgeIndex:   make(map[EdgeID]int, len(g.edgeIndex)),
		nextEdge:    g.nextEdge,
		adj:         make(map[Vertex]map[Vertex]int, len(g.adj)),
	}
	for i, e := range g.edges {
		vs := make([]Vertex, len(e.Vertices))
		copy(vs, e.Vertices)
		c.edges[i] = Hyperedge{ID: e.ID, Vertices: vs}
		c.edgeIndex[e.ID] = i
	}
	for v, row := range g.adj {
		nr := make(map[Vertex]int, len(row))
		for u, n := range row {
			nr[u] = n
		}
		c.adj[v] = nr
	}
	return c
}

// link bumps the multiplicity of v→u. Caller holds mu.
func (g *Graph) link(v, u Vertex) {
	row, ok := g.adj[v]
	if !ok {
		row = make(map[Vertex]int)
		g.adj[v] = row
	}
	row[u]++
}

// unlink drops one multiplicity of v→u. Caller holds mu.
func (g *Graph) unlink(v, u Vertex) {
	row := g.adj[v]
	if row[u] <= 1 {
		delete(row, u)
		return
	}
	row[u]--
}

// normalize returns a sorted duplicate-free copy of vs.
func normalize(vs []Vertex) []Vertex {
	out := make([]Vertex, len(vs))
	copy(out, vs)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	w := 0
	for i, v := range out {
		if i > 0 && v == out[w-1] {
			continue
		}
		out[w] = v
		w++
	}
	return out[:w]
}

func equalVertices(a, b []Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
