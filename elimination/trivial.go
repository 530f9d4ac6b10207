package elimination

import (
	"context"

	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/manipulation"
	"github.com/katalvlaran/treewidth/strategy"
)

// Trivial puts every vertex into a single bag. It never polls ctx and is
// safely interruptible: its result is always complete.
type Trivial struct {
	computeInduced bool
}

// NewTrivial returns the one-bag strategy.
func NewTrivial() *Trivial {
	return &Trivial{computeInduced: true}
}

// Name implements strategy.Strategy.
func (*Trivial) Name() string { return "trivial" }

// SafelyInterruptible implements strategy.Strategy.
func (*Trivial) SafelyInterruptible() bool { return true }

// SetComputeInducedEdges implements strategy.Strategy.
func (t *Trivial) SetComputeInducedEdges(enabled bool) { t.computeInduced = enabled }

// Clone implements strategy.Strategy.
func (t *Trivial) Clone() strategy.Strategy { return &Trivial{computeInduced: t.computeInduced} }

// ComputeDecomposition implements strategy.Strategy.
func (t *Trivial) ComputeDecomposition(_ context.Context, in strategy.Input) (*decomposition.Decomposition, error) {
	if in.Graph == nil {
		return nil, strategy.ErrNoGraph
	}
	d := decomposition.New()
	d.SetBag(d.InsertRoot(), in.Graph.Vertices())

	if err := manipulation.Apply(in.Operations, in.Graph, d); err != nil {
		return nil, err
	}
	if t.computeInduced {
		d.ComputeInducedHyperedges(in.Graph)
	}
	if !strategy.Fits(d, in) {
		return nil, nil
	}
	return d, nil
}
