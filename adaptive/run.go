package adaptive

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/internal/logging"
	"github.com/katalvlaran/treewidth/manipulation"
	"github.com/katalvlaran/treewidth/preprocess"
	"github.com/katalvlaran/treewidth/strategy"
)

// Stats describes one run.
type Stats struct {
	RunID string

	// Rounds is the number of tournament rounds that completed.
	Rounds int

	// TournamentCalls and RefinementAttempts count strategy attempts per phase.
	TournamentCalls    int
	RefinementAttempts int

	// Improvements counts strict improvements of the retained best.
	Improvements int

	// Selected is the name of the strategy chosen for refinement, empty when
	// refinement did not run.
	Selected string

	// Disqualified lists disqualified strategies in disqualification order.
	Disqualified []string

	// BestWidth is the width of the returned decomposition, -1 when none.
	BestWidth int

	// Cancelled reports that the context ended the run.
	Cancelled bool
}

// unset marks a strategy that has not produced a result yet.
const unset = math.MaxInt

// run is the state of one controller run.
type run struct {
	c        *Controller
	req      Request
	pre      *preprocess.Graph
	log      logrus.FieldLogger
	progress ProgressFunc

	disqualified []bool
	minimal      []int
	total        []int

	best      *decomposition.Decomposition
	bestWidth int

	stats Stats
}

// Run executes filter, tournament, selection and refinement on req.
//
// Returns the best decomposition found (nil when no strategy produced one).
// Cancellation is not an error.
func (c *Controller) Run(ctx context.Context, req Request) (*decomposition.Decomposition, error) {
	if req.Graph == nil {
		return nil, ErrNilGraph
	}
	if len(c.registrations) == 0 {
		return nil, ErrNoStrategies
	}

	start := time.Now()
	id := uuid.NewString()
	log := c.logger
	if log == nil {
		log = logging.Logger(ctx)
	}
	log = log.WithField("run", id)
	ctx = logging.WithLogger(ctx, log)

	r := &run{
		c:            c,
		req:          req,
		log:          log,
		progress:     req.Progress,
		disqualified: make([]bool, len(c.registrations)),
		minimal:      make([]int, len(c.registrations)),
		total:        make([]int, len(c.registrations)),
		bestWidth:    -1,
		stats:        Stats{RunID: id, BestWidth: -1},
	}
	if r.progress == nil {
		r.progress = c.progress
	}
	for i := range r.minimal {
		r.minimal[i] = unset
	}
	defer func() {
		r.stats.Cancelled = ctx.Err() != nil
		c.stats = r.stats
		c.metrics.runDuration.Observe(time.Since(start).Seconds())
	}()

	r.pre = req.Preprocessed
	if r.pre == nil {
		pre, err := c.preprocess(ctx, req.Graph)
		if err != nil {
			if ctx.Err() != nil {
				log.Debug("cancelled during preprocessing")
				return nil, nil
			}
			return nil, errors.Wrap(err, "adaptive: preprocess")
		}
		r.pre = pre
	}

	r.filter()
	r.tournament(ctx)
	if done(ctx) {
		log.WithField("width", r.bestWidth).Info("cancelled")
		return r.best, nil
	}

	sel, ok := r.selectStrategy()
	if !ok {
		log.Debug("no qualified strategy left; skipping refinement")
		return r.best, nil
	}
	r.stats.Selected = c.registrations[sel].strategy.Name()
	r.refine(ctx, sel)

	log.WithFields(logrus.Fields{
		"width":    r.bestWidth,
		"strategy": r.stats.Selected,
	}).Debug("run finished")
	return r.best, nil
}

// done polls ctx without blocking.
func done(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func (r *run) filter() {
	for i, reg := range r.c.registrations {
		if reg.filter != nil && !reg.filter(r.req.Graph, r.pre) {
			r.disqualify(i, "filter")
		}
	}
}

func (r *run) disqualify(i int, reason string) {
	if r.disqualified[i] {
		return
	}
	r.disqualified[i] = true
	name := r.c.registrations[i].strategy.Name()
	r.stats.Disqualified = append(r.stats.Disqualified, name)
	r.c.metrics.Disqualified(name).Inc()
	r.log.WithFields(logrus.Fields{"strategy": name, "reason": reason}).Debug("disqualified")
}

func (r *run) tournament(ctx context.Context) {
	for round := 0; round < r.c.decisionRounds; round++ {
		for i, reg := range r.c.registrations {
			if r.disqualified[i] {
				continue
			}
			if done(ctx) {
				// A partial round never disqualifies anyone.
				return
			}
			r.stats.TournamentCalls++
			d := r.call(ctx, reg.strategy, phaseTournament, r.req.UpperBound)
			if d == nil {
				continue
			}
			w := d.Width()
			r.total[i] += w
			if w < r.minimal[i] {
				r.minimal[i] = w
			}
			r.offer(d, w, reg.strategy.Name(), phaseTournament)
		}
		r.stats.Rounds++
		r.c.metrics.Rounds().Inc()
		r.log.WithField("round", round+1).Debug("round complete")
		r.prune()
	}
}

// prune disqualifies strategies whose minimal width exceeds 1.5× the best
// minimal width among the still-qualified ones.
func (r *run) prune() {
	optimum := unset
	for i := range r.c.registrations {
		if !r.disqualified[i] && r.minimal[i] < optimum {
			optimum = r.minimal[i]
		}
	}
	if optimum == unset {
		return
	}
	if optimum < 1 {
		optimum = 1
	}
	limit := disqualificationRatio * float64(optimum)
	for i := range r.c.registrations {
		if r.disqualified[i] {
			continue
		}
		if r.minimal[i] == unset || float64(r.minimal[i]) > limit {
			r.disqualify(i, "width")
		}
	}
}

// selectStrategy returns the never-disqualified strategy with the smallest
// accumulated width, breaking ties at random.
func (r *run) selectStrategy() (int, bool) {
	var pool []int
	bestTotal := unset
	for i := range r.c.registrations {
		if r.disqualified[i] {
			continue
		}
		switch {
		case r.total[i] < bestTotal:
			bestTotal = r.total[i]
			pool = append(pool[:0], i)
		case r.total[i] == bestTotal:
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		return 0, false
	}
	if len(pool) == 1 {
		return pool[0], true
	}
	return pool[r.c.rand.Intn(len(pool))], true
}

func (r *run) refine(ctx context.Context, sel int) {
	s := r.c.registrations[sel].strategy
	budgeted, isBudgeted := s.(strategy.Budgeted)
	limit := r.c.nonImprovementLimit

	bound := r.req.UpperBound
	if r.best != nil {
		bound = r.bestWidth - 1
		if bound < 1 {
			return
		}
	}

	remaining := r.c.iterationCount // 0: no budget
	if remaining == 0 {
		remaining = -1
	}
	nonImproving := 0

	for remaining != 0 {
		if done(ctx) {
			return
		}

		var (
			d    *decomposition.Decomposition
			used = 1
		)
		if isBudgeted {
			attempts := remaining
			if limit >= 0 && (attempts < 0 || attempts > limit+1-nonImproving) {
				attempts = limit + 1 - nonImproving
			}
			if attempts < 0 {
				attempts = 1
			}
			d, used = r.callBudgeted(ctx, budgeted, bound, attempts)
		} else {
			d = r.call(ctx, s, phaseRefinement, bound)
		}
		r.stats.RefinementAttempts += used
		if remaining > 0 {
			remaining -= used
			if remaining < 0 {
				remaining = 0
			}
		}

		if d != nil && (r.best == nil || d.Width() < r.bestWidth) {
			r.offer(d, d.Width(), s.Name(), phaseRefinement)
			nonImproving = 0
			bound = r.bestWidth - 1
			if bound < 1 {
				return
			}
			continue
		}

		nonImproving += used
		if limit >= 0 && nonImproving > limit {
			r.log.WithField("attempts", nonImproving).Debug("non-improvement limit reached")
			return
		}
	}
}

// call runs one strategy attempt and returns its result, or nil when the
// attempt failed or must be discarded.
func (r *run) call(ctx context.Context, s strategy.Strategy, phase string, bound int) *decomposition.Decomposition {
	d, err := s.ComputeDecomposition(ctx, r.input(bound))
	return r.accept(ctx, s, phase, d, err)
}

func (r *run) callBudgeted(ctx context.Context, s strategy.Budgeted, bound, attempts int) (*decomposition.Decomposition, int) {
	d, used, err := s.ComputeBudgeted(ctx, r.input(bound), attempts)
	if used < 1 {
		used = 1
	}
	return r.accept(ctx, s, phaseRefinement, d, err), used
}

func (r *run) input(bound int) strategy.Input {
	return strategy.Input{
		Graph:        r.req.Graph,
		Preprocessed: r.pre,
		Operations:   manipulation.CloneAll(r.req.Operations),
		MaxBagSize:   bound,
	}
}

func (r *run) accept(ctx context.Context, s strategy.Strategy, phase string, d *decomposition.Decomposition, err error) *decomposition.Decomposition {
	name := s.Name()
	switch {
	case err != nil:
		r.c.metrics.Calls(name, phase, outcomeError).Inc()
		r.log.WithError(err).WithField("strategy", name).Warn("strategy failed")
		return nil
	case d == nil:
		r.c.metrics.Calls(name, phase, outcomeFailed).Inc()
		return nil
	case ctx.Err() != nil && !s.SafelyInterruptible():
		r.c.metrics.Calls(name, phase, outcomeDiscarded).Inc()
		r.log.WithField("strategy", name).Debug("discarding interrupted result")
		return nil
	}
	r.c.metrics.Calls(name, phase, outcomeResult).Inc()
	return d
}

// offer retains d when it strictly improves the best width.
func (r *run) offer(d *decomposition.Decomposition, w int, name, phase string) {
	if r.best != nil && w >= r.bestWidth {
		return
	}
	r.best = d
	r.bestWidth = w
	r.stats.BestWidth = w
	r.stats.Improvements++
	r.c.metrics.Improvements(phase).Inc()
	r.c.metrics.BestWidth().Set(float64(w))
	r.log.WithFields(logrus.Fields{
		"strategy": name,
		"phase":    phase,
		"width":    w,
	}).Info("improved decomposition")
	if r.progress != nil {
		r.progress(r.req.Graph, d, decomposition.WidthFitness(w))
	}
}
