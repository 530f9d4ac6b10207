// Package strategy defines the contract between decomposition strategies and
// the components that drive them.
//
// A Strategy turns a graph into a decomposition or reports that it could not
// produce one within the requested bag-size bound. Calls are stateless from
// the caller's point of view: each call receives everything it needs in an
// Input, and the returned decomposition belongs to the caller.
package strategy

import (
	"context"
	"errors"

	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/manipulation"
	"github.com/katalvlaran/treewidth/preprocess"
)

// ErrNoGraph is returned by strategies invoked without a graph.
var ErrNoGraph = errors.New("strategy: input graph is nil")

// Input bundles the arguments of one strategy call.
type Input struct {
	// Graph is the graph to decompose. Never modified.
	Graph graph.View

	// Preprocessed is the preprocessed view of Graph, passed through unchanged.
	Preprocessed *preprocess.Graph

	// Operations are applied to the result before it is returned. The callee
	// owns the list.
	Operations []manipulation.Operation

	// MaxBagSize bounds the result: a strategy must not return a decomposition
	// whose largest bag exceeds it. 0 means unbounded.
	MaxBagSize int
}

// Strategy builds decompositions.
type Strategy interface {
	// Name identifies the strategy in logs and statistics.
	Name() string

	// ComputeDecomposition returns a decomposition of in.Graph, or nil when the
	// strategy failed (including exceeding in.MaxBagSize or observing
	// cancellation). A non-nil error signals a broken input, not a failed attempt.
	ComputeDecomposition(ctx context.Context, in Input) (*decomposition.Decomposition, error)

	// SafelyInterruptible reports whether a result returned after ctx was
	// cancelled is still a complete, valid decomposition.
	SafelyInterruptible() bool

	// Clone returns an independent copy with the same configuration.
	Clone() Strategy

	// SetComputeInducedEdges toggles computing induced hyperedges on results.
	SetComputeInducedEdges(enabled bool)
}

// Budgeted is implemented by strategies able to run several attempts in one
// call. ComputeBudgeted performs at most attempts attempts, stops at the first
// result that satisfies in.MaxBagSize, and reports how many attempts it used.
type Budgeted interface {
	Strategy

	ComputeBudgeted(ctx context.Context, in Input, attempts int) (*decomposition.Decomposition, int, error)
}

// Filter decides whether a strategy should compete on a graph at all.
type Filter func(g graph.View, pre *preprocess.Graph) bool

// MaxVertices admits graphs with at most n vertices.
func MaxVertices(n int) Filter {
	return func(g graph.View, _ *preprocess.Graph) bool {
		return g.VertexCount() <= n
	}
}

// MaxDegree admits graphs whose largest vertex degree is at most n.
func MaxDegree(n int) Filter {
	return func(_ graph.View, pre *preprocess.Graph) bool {
		return pre != nil && pre.MaxDegree() <= n
	}
}

// Connected admits graphs with at most one connected component.
func Connected() Filter {
	return func(_ graph.View, pre *preprocess.Graph) bool {
		return pre != nil && pre.ComponentCount() <= 1
	}
}

// All admits a graph when every filter does. Nil filters are skipped.
func All(filters ...Filter) Filter {
	return func(g graph.View, pre *preprocess.Graph) bool {
		for _, f := range filters {
			if f != nil && !f(g, pre) {
				return false
			}
		}
		return true
	}
}

// Fits reports whether d respects the bound of in.
func Fits(d *decomposition.Decomposition, in Input) bool {
	return d != nil && (in.MaxBagSize <= 0 || d.MaximumBagSize() <= in.MaxBagSize)
}
