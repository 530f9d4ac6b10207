package adaptive

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/treewidth/preprocess"
)

// Defaults.
const (
	// DefaultDecisionRounds is the number of tournament rounds.
	DefaultDecisionRounds = 1

	// DefaultIterationCount is the number of refinement attempts.
	DefaultIterationCount = 1

	// Unlimited disables the non-improvement limit.
	Unlimited = -1

	// disqualificationRatio is the factor above the best minimal width at
	// which a strategy drops out of the tournament.
	disqualificationRatio = 1.5
)

// Option configures a Controller.
type Option func(c *Controller)

// WithDecisionRounds sets the number of tournament rounds. Values below 1 are ignored.
func WithDecisionRounds(n int) Option {
	return func(c *Controller) {
		if n >= 1 {
			c.decisionRounds = n
		}
	}
}

// WithIterationCount sets the refinement budget. 0 means no budget: refinement
// runs until the non-improvement limit is hit or the context is cancelled.
// Negative values are ignored.
func WithIterationCount(n int) Option {
	return func(c *Controller) {
		if n >= 0 {
			c.iterationCount = n
		}
	}
}

// WithNonImprovementLimit stops refinement after n consecutive attempts that
// do not improve the width. Unlimited (or any negative value) disables it.
func WithNonImprovementLimit(n int) Option {
	return func(c *Controller) {
		if n < 0 {
			n = Unlimited
		}
		c.nonImprovementLimit = n
	}
}

// WithSeed seeds the random source used to break selection ties.
// Seed 0 maps to the package default seed.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		c.seed = seed
		c.rand = nil
	}
}

// WithRand installs an explicit random source for selection ties. The
// controller takes ownership of r.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rand = r }
}

// WithLogger sets the logger. By default the logger carried by the run's
// context is used.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithComputeInducedEdges sets the induced-edge flag pushed to every
// registered strategy (default true).
func WithComputeInducedEdges(enabled bool) Option {
	return func(c *Controller) { c.computeInduced = enabled }
}

// WithPreprocessor replaces preprocess.Prepare for runs that do not bring a
// preprocessed graph.
func WithPreprocessor(f preprocess.Func) Option {
	return func(c *Controller) {
		if f != nil {
			c.preprocess = f
		}
	}
}

// WithProgress sets the callback used when the controller runs as a nested
// strategy, where no per-run callback can be passed.
func WithProgress(f ProgressFunc) Option {
	return func(c *Controller) { c.progress = f }
}

// WithMetrics routes the controller's Prometheus metrics to m instead of the
// collectors registered with the default registry.
func WithMetrics(m *Metrics) Option {
	return func(c *Controller) {
		if m != nil {
			c.metrics = m
		}
	}
}
