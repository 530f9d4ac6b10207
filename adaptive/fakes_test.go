package adaptive_test

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/treewidth/builder"
	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/strategy"
)

// scripted returns decompositions of pre-set widths, one per call. The last
// width repeats. A width of 0 means the call fails.
type scripted struct {
	name          string
	widths        []int
	interruptible bool

	// cancel fires during call number cancelAt (1-based).
	cancel   context.CancelFunc
	cancelAt int

	// loose strategies ignore MaxBagSize.
	loose bool

	calls   int
	bounds  []int
	induced bool
}

func newScripted(name string, widths ...int) *scripted {
	return &scripted{name: name, widths: widths}
}

func (s *scripted) Name() string              { return s.name }
func (s *scripted) SafelyInterruptible() bool { return s.interruptible }
func (s *scripted) SetComputeInducedEdges(b bool) {
	s.induced = b
}

func (s *scripted) Clone() strategy.Strategy {
	return &scripted{
		name:          s.name,
		widths:        append([]int(nil), s.widths...),
		interruptible: s.interruptible,
		loose:         s.loose,
		induced:       s.induced,
	}
}

func (s *scripted) ComputeDecomposition(_ context.Context, in strategy.Input) (*decomposition.Decomposition, error) {
	w := s.widths[len(s.widths)-1]
	if s.calls < len(s.widths) {
		w = s.widths[s.calls]
	}
	s.calls++
	s.bounds = append(s.bounds, in.MaxBagSize)
	if s.cancel != nil && s.calls == s.cancelAt {
		s.cancel()
	}
	if w <= 0 || (!s.loose && in.MaxBagSize > 0 && w > in.MaxBagSize) {
		return nil, nil
	}
	return ofWidth(w), nil
}

// batched is a scripted strategy that also runs attempts in batches.
type batched struct {
	*scripted
	budgets []int
}

func (b *batched) Clone() strategy.Strategy {
	return &batched{scripted: b.scripted.Clone().(*scripted)}
}

func (b *batched) ComputeBudgeted(ctx context.Context, in strategy.Input, attempts int) (*decomposition.Decomposition, int, error) {
	b.budgets = append(b.budgets, attempts)
	for i := 0; i < attempts; i++ {
		d, err := b.ComputeDecomposition(ctx, in)
		if err != nil || d != nil {
			return d, i + 1, err
		}
	}
	return nil, attempts, nil
}

// emptyBag returns a single node with an empty bag, a width-0 result.
type emptyBag struct {
	*scripted
}

func (e emptyBag) ComputeDecomposition(_ context.Context, in strategy.Input) (*decomposition.Decomposition, error) {
	e.calls++
	e.bounds = append(e.bounds, in.MaxBagSize)
	return ofWidth(0), nil
}

// ofWidth returns a single-node decomposition whose bag is {1..w}.
func ofWidth(w int) *decomposition.Decomposition {
	d := decomposition.New()
	bag := make([]graph.Vertex, w)
	for i := range bag {
		bag[i] = graph.Vertex(i + 1)
	}
	d.SetBag(d.InsertRoot(), bag)
	return d
}

func path(n int) *graph.Graph {
	return builder.MustBuild(builder.Path(n))
}

// gapped reports vertex 2 of a two-vertex graph as vertex 5.
type gapped struct {
	graph.View
}

func (gapped) Vertices() []graph.Vertex { return []graph.Vertex{1, 5} }

func value(c prometheus.Collector) float64 {
	ch := make(chan prometheus.Metric, 1)
	c.Collect(ch)
	m := &dto.Metric{}
	if err := (<-ch).Write(m); err != nil {
		panic(err)
	}
	if m.Gauge != nil {
		return m.GetGauge().GetValue()
	}
	return m.GetCounter().GetValue()
}
