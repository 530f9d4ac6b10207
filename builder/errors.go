// SPDX-License-Identifier: MIT
// Package: treewidth/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is; constructors
// attach method context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure (nil constructor, empty join).
var ErrConstructFailed = errors.New("builder: construction failed")
