// Package elimination builds tree decompositions from vertex elimination
// orderings (bucket elimination) and provides the one-bag trivial strategy.
//
// Eliminating a vertex v turns its remaining neighbourhood into a clique and
// removes v; the bag of v is v plus that neighbourhood. Orderings differ in
// how the next vertex is chosen. Ties are broken with a seeded random source,
// so repeated runs with the same seed produce the same decomposition.
package elimination

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/internal/rng"
	"github.com/katalvlaran/treewidth/preprocess"
)

// ErrUnknownOrdering is returned by ParseOrdering for an unrecognized name.
var ErrUnknownOrdering = errors.New("elimination: unknown ordering")

// Ordering selects the elimination heuristic.
type Ordering int

const (
	// MinFill eliminates the vertex whose elimination adds the fewest fill edges.
	MinFill Ordering = iota

	// MinDegree eliminates the vertex of smallest current degree.
	MinDegree

	// MaxCardinality eliminates in reverse maximum cardinality search order.
	MaxCardinality

	// Natural eliminates vertices in ascending id order.
	Natural

	// Random eliminates in a seeded random order.
	Random
)

var orderingNames = map[Ordering]string{
	MinFill:        "min-fill",
	MinDegree:      "min-degree",
	MaxCardinality: "max-cardinality",
	Natural:        "natural",
	Random:         "random",
}

// String returns the canonical name.
func (o Ordering) String() string {
	if s, ok := orderingNames[o]; ok {
		return s
	}
	return fmt.Sprintf("ordering(%d)", int(o))
}

// ParseOrdering maps a name (case-insensitive) to an Ordering.
func ParseOrdering(name string) (Ordering, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for o, s := range orderingNames {
		if s == n {
			return o, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownOrdering, "%q", name)
}

// Orderings lists every ordering in declaration order.
func Orderings() []Ordering {
	return []Ordering{MinFill, MinDegree, MaxCardinality, Natural, Random}
}

// eliminationGraph is the mutable adjacency an elimination runs on.
type eliminationGraph struct {
	adj       map[graph.Vertex]map[graph.Vertex]struct{}
	remaining []graph.Vertex // ascending
}

func newEliminationGraph(pre *preprocess.Graph) *eliminationGraph {
	n := pre.VertexCount()
	e := &eliminationGraph{
		adj:       make(map[graph.Vertex]map[graph.Vertex]struct{}, n),
		remaining: make([]graph.Vertex, 0, n),
	}
	for v := graph.Vertex(1); int(v) <= n; v++ {
		row := make(map[graph.Vertex]struct{}, pre.Degree(v))
		for _, u := range pre.Neighbors(v) {
			row[u] = struct{}{}
		}
		e.adj[v] = row
		e.remaining = append(e.remaining, v)
	}
	return e
}

func (e *eliminationGraph) degree(v graph.Vertex) int {
	return len(e.adj[v])
}

// fill counts the neighbour pairs of v that are not yet adjacent.
func (e *eliminationGraph) fill(v graph.Vertex) int {
	nb := e.neighbors(v)
	missing := 0
	for i, a := range nb {
		row := e.adj[a]
		for _, b := range nb[i+1:] {
			if _, ok := row[b]; !ok {
				missing++
			}
		}
	}
	return missing
}

func (e *eliminationGraph) neighbors(v graph.Vertex) []graph.Vertex {
	out := make([]graph.Vertex, 0, len(e.adj[v]))
	for u := range e.adj[v] {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// eliminate makes the neighbourhood of v a clique, removes v and returns the
// former neighbourhood ascending.
func (e *eliminationGraph) eliminate(v graph.Vertex) []graph.Vertex {
	nb := e.neighbors(v)
	for i, a := range nb {
		delete(e.adj[a], v)
		for _, b := range nb[i+1:] {
			e.adj[a][b] = struct{}{}
			e.adj[b][a] = struct{}{}
		}
	}
	delete(e.adj, v)

	i := sort.Search(len(e.remaining), func(i int) bool { return e.remaining[i] >= v })
	e.remaining = append(e.remaining[:i], e.remaining[i+1:]...)
	return nb
}

// picker returns the next vertex to eliminate.
type picker func() graph.Vertex

// newPicker builds the selection rule of o over e.
func newPicker(o Ordering, e *eliminationGraph, r *rand.Rand) picker {
	switch o {
	case MinDegree:
		return func() graph.Vertex { return pickMin(e, e.degree, r) }
	case MinFill:
		return func() graph.Vertex {
			return pickMin(e, func(v graph.Vertex) int {
				// degree breaks fill ties before the random choice
				return e.fill(v)*(len(e.remaining)+1) + e.degree(v)
			}, r)
		}
	case MaxCardinality:
		return staticPicker(maxCardinalityOrder(e, r))
	case Random:
		order := append([]graph.Vertex(nil), e.remaining...)
		rng.Shuffle(order, r)
		return staticPicker(order)
	default:
		return staticPicker(append([]graph.Vertex(nil), e.remaining...))
	}
}

func staticPicker(order []graph.Vertex) picker {
	i := 0
	return func() graph.Vertex {
		v := order[i]
		i++
		return v
	}
}

// pickMin returns a uniformly random vertex among those with the smallest score.
func pickMin(e *eliminationGraph, score func(graph.Vertex) int, r *rand.Rand) graph.Vertex {
	var (
		best = -1
		ties []graph.Vertex
	)
	for _, v := range e.remaining {
		s := score(v)
		switch {
		case best < 0 || s < best:
			best = s
			ties = append(ties[:0], v)
		case s == best:
			ties = append(ties, v)
		}
	}
	return ties[rng.Intn(r, len(ties))]
}

// maxCardinalityOrder numbers vertices by maximum cardinality search and
// returns the reverse visiting order, which is a perfect elimination order
// for chordal graphs.
func maxCardinalityOrder(e *eliminationGraph, r *rand.Rand) []graph.Vertex {
	n := len(e.remaining)
	weight := make(map[graph.Vertex]int, n)
	visited := make(map[graph.Vertex]bool, n)
	order := make([]graph.Vertex, n)

	for k := n - 1; k >= 0; k-- {
		best := -1
		var ties []graph.Vertex
		for _, v := range e.remaining {
			if visited[v] {
				continue
			}
			switch w := weight[v]; {
			case w > best:
				best = w
				ties = append(ties[:0], v)
			case w == best:
				ties = append(ties, v)
			}
		}
		v := ties[rng.Intn(r, len(ties))]
		visited[v] = true
		order[k] = v
		for u := range e.adj[v] {
			if !visited[u] {
				weight[u]++
			}
		}
	}
	return order
}
