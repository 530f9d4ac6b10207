// Package adaptive implements the width-minimizing controller.
//
// A Controller owns a list of registered strategies and drives one run as a
// sequence of phases:
//
//  1. Filter: every registration's filter sees the input once; a false
//     answer disqualifies the strategy for the whole run.
//  2. Tournament: for the configured number of decision rounds each
//     qualified strategy computes one decomposition. After a round, a
//     strategy whose best width exceeds 1.5× the best width of the round's
//     survivors is disqualified.
//  3. Selection: the strategy with the smallest accumulated width wins;
//     ties are broken with the controller's seeded random source.
//  4. Refinement: the winner runs again, each time bounded below the best
//     width seen so far, until the iteration budget or the non-improvement
//     limit is exhausted.
//
// The best decomposition ever produced is retained and returned. Each strict
// improvement is reported through the progress callback.
//
// Cancellation: the context is polled before every strategy call. Once it is
// done, results of strategies that are not safely interruptible are dropped,
// no further phase starts, and the retained best (possibly nil) is returned
// with a nil error.
//
// A Controller is not safe for concurrent runs; Clone it instead.
package adaptive

import (
	"context"
	"errors"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/internal/rng"
	"github.com/katalvlaran/treewidth/manipulation"
	"github.com/katalvlaran/treewidth/preprocess"
	"github.com/katalvlaran/treewidth/strategy"
)

// Sentinel errors.
var (
	// ErrNoStrategies is returned when a run starts with nothing registered.
	ErrNoStrategies = errors.New("adaptive: no strategies registered")

	// ErrNilGraph is returned when a run starts without a graph.
	ErrNilGraph = errors.New("adaptive: graph is nil")
)

// Name is the strategy name a Controller reports.
const Name = "adaptive"

// ProgressFunc observes every strict improvement of the retained best.
// d is owned by the controller and must not be modified.
type ProgressFunc func(g graph.View, d *decomposition.Decomposition, f decomposition.Fitness)

// Request bundles the arguments of one run.
type Request struct {
	Graph graph.View

	// Preprocessed is used as is when set; otherwise the controller's
	// preprocessor runs once.
	Preprocessed *preprocess.Graph

	// Operations are cloned for every strategy call.
	Operations []manipulation.Operation

	// Progress overrides the callback installed by WithProgress.
	Progress ProgressFunc

	// UpperBound caps the bag size of every call while no result exists.
	// 0 means unbounded.
	UpperBound int
}

type registration struct {
	strategy strategy.Strategy
	filter   strategy.Filter
}

// Controller selects and refines decomposition strategies.
type Controller struct {
	registrations []registration

	decisionRounds      int
	iterationCount      int
	nonImprovementLimit int
	computeInduced      bool

	seed int64
	rand *rand.Rand

	logger     logrus.FieldLogger
	preprocess preprocess.Func
	progress   ProgressFunc
	metrics    *Metrics

	stats Stats
}

var _ strategy.Strategy = (*Controller)(nil)

// New returns a Controller with the default configuration adjusted by opts.
func New(opts ...Option) *Controller {
	c := &Controller{
		decisionRounds:      DefaultDecisionRounds,
		iterationCount:      DefaultIterationCount,
		nonImprovementLimit: Unlimited,
		computeInduced:      true,
		seed:                rng.DefaultSeed,
		preprocess:          preprocess.Prepare,
		metrics:             defaultMetrics,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rand == nil {
		c.rand = rng.FromSeed(c.seed)
	}
	return c
}

// Register adds s to the competition. f may be nil to admit every graph.
// The controller's induced-edge setting is pushed to s.
func (c *Controller) Register(s strategy.Strategy, f strategy.Filter) {
	if s == nil {
		return
	}
	s.SetComputeInducedEdges(c.computeInduced)
	c.registrations = append(c.registrations, registration{strategy: s, filter: f})
}

// Strategies returns the names of the registered strategies in registration order.
func (c *Controller) Strategies() []string {
	names := make([]string, len(c.registrations))
	for i, r := range c.registrations {
		names[i] = r.strategy.Name()
	}
	return names
}

// Stats returns the statistics of the most recent run.
func (c *Controller) Stats() Stats {
	s := c.stats
	s.Disqualified = append([]string(nil), c.stats.Disqualified...)
	return s
}

// Name implements strategy.Strategy.
func (c *Controller) Name() string { return Name }

// SafelyInterruptible implements strategy.Strategy: the controller only ever
// returns complete results.
func (c *Controller) SafelyInterruptible() bool { return true }

// SetComputeInducedEdges implements strategy.Strategy and forwards the flag to
// every registered strategy.
func (c *Controller) SetComputeInducedEdges(enabled bool) {
	c.computeInduced = enabled
	for _, r := range c.registrations {
		r.strategy.SetComputeInducedEdges(enabled)
	}
}

// Clone implements strategy.Strategy. Registered strategies are cloned; filters
// are shared. The clone's random source restarts from the configured seed.
func (c *Controller) Clone() strategy.Strategy {
	out := &Controller{
		registrations:       make([]registration, len(c.registrations)),
		decisionRounds:      c.decisionRounds,
		iterationCount:      c.iterationCount,
		nonImprovementLimit: c.nonImprovementLimit,
		computeInduced:      c.computeInduced,
		seed:                c.seed,
		rand:                rng.FromSeed(c.seed),
		logger:              c.logger,
		preprocess:          c.preprocess,
		progress:            c.progress,
		metrics:             c.metrics,
	}
	for i, r := range c.registrations {
		out.registrations[i] = registration{strategy: r.strategy.Clone(), filter: r.filter}
	}
	return out
}

// ComputeDecomposition implements strategy.Strategy. in.MaxBagSize becomes the
// run's upper bound and the callback installed by WithProgress is used.
// A best result that still exceeds in.MaxBagSize is reported as a failure.
func (c *Controller) ComputeDecomposition(ctx context.Context, in strategy.Input) (*decomposition.Decomposition, error) {
	d, err := c.Run(ctx, Request{
		Graph:        in.Graph,
		Preprocessed: in.Preprocessed,
		Operations:   in.Operations,
		UpperBound:   in.MaxBagSize,
	})
	if err != nil || d == nil || !strategy.Fits(d, in) {
		return nil, err
	}
	return d, nil
}

// Decompose runs the controller on g with the given operations and callback.
func (c *Controller) Decompose(ctx context.Context, g graph.View, ops []manipulation.Operation, progress ProgressFunc) (*decomposition.Decomposition, error) {
	return c.Run(ctx, Request{Graph: g, Operations: ops, Progress: progress})
}
