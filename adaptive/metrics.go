package adaptive

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Phase labels.
const (
	phaseTournament = "tournament"
	phaseRefinement = "refinement"
)

// Call outcomes.
const (
	outcomeResult    = "result"
	outcomeFailed    = "failed"
	outcomeError     = "error"
	outcomeDiscarded = "discarded"
)

// Metrics groups the controller's Prometheus collectors.
type Metrics struct {
	rounds       prometheus.Counter
	calls        *prometheus.CounterVec
	disqualified *prometheus.CounterVec
	improvements *prometheus.CounterVec
	bestWidth    prometheus.Gauge
	runDuration  prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg yields unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		rounds: f.NewCounter(prometheus.CounterOpts{
			Name: "treewidth_adaptive_tournament_rounds_total",
			Help: "Completed tournament rounds",
		}),
		calls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "treewidth_adaptive_strategy_calls_total",
			Help: "Strategy invocations by phase and outcome",
		}, []string{"strategy", "phase", "outcome"}),
		disqualified: f.NewCounterVec(prometheus.CounterOpts{
			Name: "treewidth_adaptive_disqualifications_total",
			Help: "Strategies dropped before selection",
		}, []string{"strategy"}),
		improvements: f.NewCounterVec(prometheus.CounterOpts{
			Name: "treewidth_adaptive_improvements_total",
			Help: "Times the retained best decomposition improved",
		}, []string{"phase"}),
		bestWidth: f.NewGauge(prometheus.GaugeOpts{
			Name: "treewidth_adaptive_best_width",
			Help: "Width of the best decomposition of the most recent run",
		}),
		runDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "treewidth_adaptive_run_duration_seconds",
			Help:    "Wall time of one controller run",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60, 600},
		}),
	}
}

// defaultMetrics lives in the default registry and is shared by every
// controller built without WithMetrics.
var defaultMetrics = NewMetrics(prometheus.DefaultRegisterer)

// Rounds returns the completed-rounds counter.
func (m *Metrics) Rounds() prometheus.Counter { return m.rounds }

// Calls returns the strategy-call counter for one label set.
func (m *Metrics) Calls(strategy, phase, outcome string) prometheus.Counter {
	return m.calls.WithLabelValues(strategy, phase, outcome)
}

// Disqualified returns the disqualification counter of one strategy.
func (m *Metrics) Disqualified(strategy string) prometheus.Counter {
	return m.disqualified.WithLabelValues(strategy)
}

// Improvements returns the improvement counter of one phase.
func (m *Metrics) Improvements(phase string) prometheus.Counter {
	return m.improvements.WithLabelValues(phase)
}

// BestWidth returns the best-width gauge.
func (m *Metrics) BestWidth() prometheus.Gauge { return m.bestWidth }
