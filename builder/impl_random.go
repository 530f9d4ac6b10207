// SPDX-License-Identifier: MIT
// Package: treewidth/builder
//
// impl_random.go - RandomSparse(n, p) and RandomHypergraph(n, m, k).
//
// Determinism:
//   - RandomSparse tries pairs (i, j), i < j, in lexicographic order, one
//     Bernoulli trial each.
//   - RandomHypergraph draws each hyperedge as the first k entries of a
//     Fisher-Yates shuffle; duplicates are redrawn a bounded number of times.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/internal/rng"
)

const (
	methodRandomSparse     = "RandomSparse"
	methodRandomHypergraph = "RandomHypergraph"

	minRandomVertices = 1
	minHyperedgeSize  = 2
	probMin           = 0.0
	probMax           = 1.0

	// redrawLimit bounds duplicate redraws per hyperedge.
	redrawLimit = 64
)

// RandomSparse appends an Erdős–Rényi graph G(n, p).
// A random source is required when 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < %d: %w", methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		first := g.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, methodRandomSparse, first+graph.Vertex(i), first+graph.Vertex(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// RandomHypergraph appends n vertices and m distinct hyperedges of k vertices each.
func RandomHypergraph(n, m, k int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if k < minHyperedgeSize || n < k || m < 0 {
			return fmt.Errorf("%s: n=%d, m=%d, k=%d (need 2 ≤ k ≤ n, m ≥ 0): %w",
				methodRandomHypergraph, n, m, k, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomHypergraph, ErrNeedRandSource)
		}

		first := g.AddVertices(n)
		pool := make([]graph.Vertex, n)
		for i := range pool {
			pool[i] = first + graph.Vertex(i)
		}

		for e := 0; e < m; e++ {
			added := false
			for try := 0; try < redrawLimit && !added; try++ {
				rng.Shuffle(pool, cfg.rng)
				_, err := g.AddEdge(pool[:k]...)
				switch {
				case err == nil:
					added = true
				case errors.Is(err, graph.ErrMultiEdgeNotAllowed):
					// redraw
				default:
					return fmt.Errorf("%s: %w", methodRandomHypergraph, err)
				}
			}
			if !added {
				return fmt.Errorf("%s: hyperedge %d kept colliding: %w", methodRandomHypergraph, e, ErrConstructFailed)
			}
		}
		return nil
	}
}
