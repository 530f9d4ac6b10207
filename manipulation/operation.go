// Package manipulation holds post-processing operations applied to a
// decomposition after a strategy has built it: structural rewrites and
// annotations.
//
// An operation list is owned by whoever received it last. Strategies that
// receive a list may keep it or mutate its members; callers that need the
// list afterwards pass CloneAll(list) instead.
package manipulation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/graph"
)

// Sentinel errors.
var (
	// ErrInvalidLimit is returned for a child-count limit below 2.
	ErrInvalidLimit = errors.New("manipulation: child limit must be at least 2")

	// ErrNilDecomposition is returned when Apply receives a nil decomposition.
	ErrNilDecomposition = errors.New("manipulation: decomposition is nil")
)

// Capabilities describe what an operation may do to a decomposition. Optimizers
// use them to decide whether re-applying an operation after further edits is
// safe or necessary.
type Capabilities struct {
	// Local is true when the operation touches each node independently of the rest.
	Local bool

	// CreatesTreeNodes is true when new nodes may appear.
	CreatesTreeNodes bool

	// RemovesTreeNodes is true when nodes may disappear.
	RemovesTreeNodes bool

	// ModifiesBagContents is true when bags may change.
	ModifiesBagContents bool

	// CreatesSubsetMaximalBags is true when no bag is left contained in a neighbouring bag.
	CreatesSubsetMaximalBags bool

	// CreatesLocationDependentLabels is true when labels depend on node position
	// and must be recomputed after structural edits.
	CreatesLocationDependentLabels bool
}

// Operation rewrites or annotates a decomposition in place.
type Operation interface {
	// Name identifies the operation in logs.
	Name() string

	// Apply runs the operation on d. g is the graph d decomposes.
	Apply(g graph.View, d *decomposition.Decomposition) error

	// Capabilities reports the operation's effects.
	Capabilities() Capabilities

	// Clone returns an independent copy.
	Clone() Operation
}

// CloneAll returns a fresh copy of every operation in ops, preserving order.
func CloneAll(ops []Operation) []Operation {
	if ops == nil {
		return nil
	}
	out := make([]Operation, len(ops))
	for i, op := range ops {
		out[i] = op.Clone()
	}
	return out
}

// Apply runs ops on d in order and stops at the first error.
func Apply(ops []Operation, g graph.View, d *decomposition.Decomposition) error {
	if d == nil {
		return ErrNilDecomposition
	}
	for _, op := range ops {
		if err := op.Apply(g, d); err != nil {
			return fmt.Errorf("manipulation: %s: %w", op.Name(), err)
		}
	}
	return nil
}
