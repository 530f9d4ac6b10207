// SPDX-License-Identifier: MIT
// Package: treewidth/builder
//
// api.go - entry point and constructor type for graph fixtures.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor appends its own fresh vertices, so composing constructors
//     yields a disjoint union.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; constructors return sentinel errors.
//
// AI-Hints:
//   - Use WithSeed(...) to freeze stochastic constructors (RandomSparse, RandomHypergraph).
//   - Known treewidths: Path 1, Cycle 2, Complete(n) n-1, Grid(r,c) min(r,c),
//     CompleteBipartite(a,b) min(a,b). Width as reported by decompositions is treewidth+1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/treewidth/graph"
)

// Constructor appends a topology to g using the resolved config.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in order.
// Constructor errors are wrapped with "BuildGraph: %w".
//
// Complexity: O(len(bopts)) + Σ cost of constructors.
func BuildGraph(gopts []graph.GraphOption, bopts []Option, cons ...Constructor) (*graph.Graph, error) {
	g := graph.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}

// MustBuild is BuildGraph for fixtures that cannot fail; it panics on error.
func MustBuild(cons ...Constructor) *graph.Graph {
	g, err := BuildGraph(nil, nil, cons...)
	if err != nil {
		panic(err)
	}
	return g
}

// addEdge wraps graph.AddEdge with method context.
func addEdge(g *graph.Graph, method string, vs ...graph.Vertex) error {
	if _, err := g.AddEdge(vs...); err != nil {
		return fmt.Errorf("%s: AddEdge(%v): %w", method, vs, err)
	}
	return nil
}
