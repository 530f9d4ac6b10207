// SPDX-License-Identifier: MIT
// Package: treewidth/builder
//
// options.go - functional options and resolved configuration.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs (nil rand).
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/treewidth/internal/rng"
)

// Option customizes constructor behaviour.
type Option func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// rng drives stochastic constructors; nil means "no randomness".
	rng *rand.Rand
}

func newBuilderConfig(opts ...Option) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a deterministic random source (seed 0 maps to rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rng.FromSeed(seed) }
}
