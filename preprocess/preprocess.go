// Package preprocess derives the read-only facts strategies and filters need
// from an input graph: adjacency lists, degrees, connected components and a
// cheap lower bound on the achievable width.
//
// A *Graph is computed once per controller run and passed unchanged to every
// strategy invocation.
package preprocess

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/treewidth/graph"
)

// Sentinel errors for preprocessing.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("preprocess: graph is nil")

	// ErrNeighbors wraps a failure to enumerate neighbours.
	ErrNeighbors = errors.New("preprocess: neighbor iteration error")

	// ErrSparseVertices is returned when the vertices are not exactly 1..VertexCount().
	ErrSparseVertices = errors.New("preprocess: vertex ids are not dense")
)

// Func builds a preprocessed graph. Prepare is the default.
type Func func(ctx context.Context, g graph.View) (*Graph, error)

// Graph is the preprocessed view of an input graph.
type Graph struct {
	input graph.View

	neighbors  [][]graph.Vertex // indexed by vertex, slot 0 unused
	components [][]graph.Vertex
	isolated   []graph.Vertex

	minDegree   int
	maxDegree   int
	maxEdgeSize int
}

// Prepare computes adjacency, degrees and components of g.
// The vertices of g must be exactly 1..VertexCount(); otherwise
// ErrSparseVertices is returned.
// It polls ctx once per vertex and returns ctx.Err() when cancelled.
//
// Complexity: O(V + Σ deg) plus the neighbour enumeration cost of g.
func Prepare(ctx context.Context, g graph.View) (*Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	vertices := g.Vertices()
	if len(vertices) != n {
		return nil, fmt.Errorf("%w: %d vertices listed, %d counted", ErrSparseVertices, len(vertices), n)
	}
	for i, v := range vertices {
		if v != graph.Vertex(i+1) {
			return nil, fmt.Errorf("%w: vertex %d at position %d", ErrSparseVertices, v, i+1)
		}
	}

	p := &Graph{
		input:     g,
		neighbors: make([][]graph.Vertex, n+1),
		minDegree: -1,
	}

	for _, v := range vertices {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		nb, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("%w: vertex %d: %w", ErrNeighbors, v, err)
		}
		p.neighbors[v] = nb
		if d := len(nb); p.minDegree < 0 || d < p.minDegree {
			p.minDegree = d
		}
		if d := len(nb); d > p.maxDegree {
			p.maxDegree = d
		}
		if len(nb) == 0 {
			p.isolated = append(p.isolated, v)
		}
	}
	if p.minDegree < 0 {
		p.minDegree = 0
	}
	for _, e := range g.Hyperedges() {
		if len(e.Vertices) > p.maxEdgeSize {
			p.maxEdgeSize = len(e.Vertices)
		}
	}

	if err := p.findComponents(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// findComponents labels connected components with a breadth-first sweep,
// lowest unvisited vertex first, so component order is deterministic.
func (p *Graph) findComponents(ctx context.Context) error {
	n := len(p.neighbors) - 1
	visited := make([]bool, n+1)

	for s := 1; s <= n; s++ {
		if visited[s] {
			continue
		}
		visited[s] = true
		queue := []graph.Vertex{graph.Vertex(s)}
		var comp []graph.Vertex

		for len(queue) > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			for _, u := range p.neighbors[v] {
				if !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
		p.components = append(p.components, sortVertices(comp))
	}
	return nil
}

// Input returns the graph this view was computed from.
func (p *Graph) Input() graph.View {
	return p.input
}

// VertexCount returns the number of vertices.
func (p *Graph) VertexCount() int {
	return len(p.neighbors) - 1
}

// Neighbors returns the ascending neighbours of v. The slice is shared; do not modify it.
func (p *Graph) Neighbors(v graph.Vertex) []graph.Vertex {
	if v < 1 || int(v) >= len(p.neighbors) {
		return nil
	}
	return p.neighbors[v]
}

// Degree returns the number of distinct neighbours of v.
func (p *Graph) Degree(v graph.Vertex) int {
	return len(p.Neighbors(v))
}

// MinDegree returns the smallest vertex degree.
func (p *Graph) MinDegree() int { return p.minDegree }

// MaxDegree returns the largest vertex degree.
func (p *Graph) MaxDegree() int { return p.maxDegree }

// MaxHyperedgeSize returns the size of the largest hyperedge.
func (p *Graph) MaxHyperedgeSize() int { return p.maxEdgeSize }

// Components returns the connected components, each ascending, ordered by smallest vertex.
func (p *Graph) Components() [][]graph.Vertex {
	return p.components
}

// ComponentCount returns the number of connected components.
func (p *Graph) ComponentCount() int {
	return len(p.components)
}

// IsolatedVertices returns the vertices without neighbours.
func (p *Graph) IsolatedVertices() []graph.Vertex {
	return p.isolated
}

// LowerBound returns a bag size no decomposition of the graph can go below:
// every hyperedge must fit in one bag and the minimum degree bounds the
// treewidth from below.
func (p *Graph) LowerBound() int {
	if p.VertexCount() == 0 {
		return 0
	}
	lb := 1
	if p.maxEdgeSize > lb {
		lb = p.maxEdgeSize
	}
	if p.minDegree+1 > lb {
		lb = p.minDegree + 1
	}
	return lb
}

// sortVertices sorts in place with insertion sort; BFS output is nearly sorted.
func sortVertices(vs []graph.Vertex) []graph.Vertex {
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && vs[j-1] > vs[j]; j-- {
			vs[j-1], vs[j] = vs[j], vs[j-1]
		}
	}
	return vs
}
