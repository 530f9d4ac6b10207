// SPDX-License-Identifier: MIT
// Package: treewidth/builder
//
// impl_classic.go - Path, Cycle, Star, Wheel, Complete, CompleteBipartite.
//
// Vertex numbering: a constructor appending n vertices to a graph with k
// vertices uses k+1..k+n in the order documented per constructor.
// Edge order is stable and documented per constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treewidth/graph"
)

const (
	methodPath      = "Path"
	methodCycle     = "Cycle"
	methodStar      = "Star"
	methodWheel     = "Wheel"
	methodComplete  = "Complete"
	methodBipartite = "CompleteBipartite"

	minPathVertices     = 2
	minCycleVertices    = 3
	minStarVertices     = 2
	minWheelVertices    = 4
	minCompleteVertices = 1
	minBipartiteSide    = 1
)

// Path appends P_n: edges (i, i+1) in order.
func Path(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < %d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		first := g.AddVertices(n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, methodPath, first+graph.Vertex(i), first+graph.Vertex(i+1)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle appends C_n: the path edges, then the closing edge (n, 1).
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < %d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		first := graph.Vertex(g.VertexCount() + 1)
		if err := Path(n)(g, cfg); err != nil {
			return err
		}
		return addEdge(g, methodCycle, first, first+graph.Vertex(n-1))
	}
}

// Star appends a center (first vertex) joined to n-1 leaves.
func Star(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < %d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		center := g.AddVertices(n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, center, center+graph.Vertex(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Wheel appends a hub (first vertex) joined to every vertex of a cycle on the
// remaining n-1 vertices. Cycle edges come first, spokes after.
func Wheel(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minWheelVertices {
			return fmt.Errorf("%s: n=%d < %d: %w", methodWheel, n, minWheelVertices, ErrTooFewVertices)
		}
		hub := g.AddVertex()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodWheel, hub, hub+graph.Vertex(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete appends K_n with edges (i, j), i < j, in lexicographic order.
func Complete(n int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < %d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		first := g.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, first+graph.Vertex(i), first+graph.Vertex(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// CompleteBipartite appends K_{a,b}: the a left vertices come first.
func CompleteBipartite(a, b int) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if a < minBipartiteSide || b < minBipartiteSide {
			return fmt.Errorf("%s: a=%d, b=%d (each must be ≥ %d): %w",
				methodBipartite, a, b, minBipartiteSide, ErrTooFewVertices)
		}
		left := g.AddVertices(a + b)
		right := left + graph.Vertex(a)
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				if err := addEdge(g, methodBipartite, left+graph.Vertex(i), right+graph.Vertex(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
