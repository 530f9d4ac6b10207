package elimination

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/internal/logging"
	"github.com/katalvlaran/treewidth/internal/rng"
	"github.com/katalvlaran/treewidth/manipulation"
	"github.com/katalvlaran/treewidth/preprocess"
	"github.com/katalvlaran/treewidth/strategy"
	"github.com/katalvlaran/treewidth/tree"
)

// Option configures a BucketElimination.
type Option func(b *BucketElimination)

// WithSeed seeds tie-breaking. Seed 0 maps to rng.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(b *BucketElimination) { b.seed = seed }
}

// WithCompression toggles merging subset bags after construction (default on).
func WithCompression(enabled bool) Option {
	return func(b *BucketElimination) { b.compress = enabled }
}

// WithInducedEdges toggles computing induced hyperedges (default on).
func WithInducedEdges(enabled bool) Option {
	return func(b *BucketElimination) { b.computeInduced = enabled }
}

// BucketElimination is a strategy that eliminates vertices in the order chosen
// by an Ordering and links each bag to the bag of its earliest-eliminated
// neighbour. Disconnected graphs yield one tree: every component is attached
// below the root.
//
// It aborts as soon as one bag exceeds Input.MaxBagSize. It is not safely
// interruptible: cancellation makes it return nil.
type BucketElimination struct {
	ordering       Ordering
	seed           int64
	rand           *rand.Rand
	compress       bool
	computeInduced bool
}

// NewBucketElimination returns a strategy using the given ordering.
func NewBucketElimination(o Ordering, opts ...Option) *BucketElimination {
	b := &BucketElimination{
		ordering:       o,
		compress:       true,
		computeInduced: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.rand = rng.FromSeed(b.seed)
	return b
}

// Ordering returns the configured ordering.
func (b *BucketElimination) Ordering() Ordering { return b.ordering }

// Name implements strategy.Strategy.
func (b *BucketElimination) Name() string { return "bucket-elimination/" + b.ordering.String() }

// SafelyInterruptible implements strategy.Strategy.
func (*BucketElimination) SafelyInterruptible() bool { return false }

// SetComputeInducedEdges implements strategy.Strategy.
func (b *BucketElimination) SetComputeInducedEdges(enabled bool) { b.computeInduced = enabled }

// Clone implements strategy.Strategy. The clone restarts tie-breaking from the seed.
func (b *BucketElimination) Clone() strategy.Strategy {
	return &BucketElimination{
		ordering:       b.ordering,
		seed:           b.seed,
		rand:           rng.FromSeed(b.seed),
		compress:       b.compress,
		computeInduced: b.computeInduced,
	}
}

// ComputeDecomposition implements strategy.Strategy.
func (b *BucketElimination) ComputeDecomposition(ctx context.Context, in strategy.Input) (*decomposition.Decomposition, error) {
	d, _, err := b.ComputeBudgeted(ctx, in, 1)
	return d, err
}

// ComputeBudgeted implements strategy.Budgeted. Every attempt continues the
// tie-breaking stream, so attempts differ for orderings with random ties.
func (b *BucketElimination) ComputeBudgeted(ctx context.Context, in strategy.Input, attempts int) (*decomposition.Decomposition, int, error) {
	if in.Graph == nil {
		return nil, 0, strategy.ErrNoGraph
	}
	pre := in.Preprocessed
	if pre == nil {
		var err error
		if pre, err = preprocess.Prepare(ctx, in.Graph); err != nil {
			if ctx.Err() != nil {
				return nil, 0, nil
			}
			return nil, 0, err
		}
	}

	log := logging.Logger(ctx).WithField("strategy", b.Name())
	for i := 0; i < attempts; i++ {
		select {
		case <-ctx.Done():
			return nil, i, nil
		default:
		}

		ops := in.Operations
		if i < attempts-1 {
			ops = manipulation.CloneAll(in.Operations)
		}
		d, err := b.attempt(ctx, in.Graph, pre, ops, in.MaxBagSize)
		if err != nil {
			return nil, i + 1, err
		}
		if d != nil && strategy.Fits(d, in) {
			log.WithField("attempt", i+1).WithField("width", d.Width()).Debug("decomposition found")
			return d, i + 1, nil
		}
	}
	return nil, attempts, nil
}

// attempt runs one elimination. It returns nil without error when a bag
// exceeds maxBag or ctx is cancelled mid-way.
func (b *BucketElimination) attempt(ctx context.Context, g graph.View, pre *preprocess.Graph, ops []manipulation.Operation, maxBag int) (*decomposition.Decomposition, error) {
	n := pre.VertexCount()
	d := decomposition.New()
	if n == 0 {
		d.InsertRoot()
		return b.finish(g, d, ops)
	}

	eg := newEliminationGraph(pre)
	pick := newPicker(b.ordering, eg, b.rand)

	order := make([]graph.Vertex, 0, n)
	pos := make([]int, n+1)
	bags := make([][]graph.Vertex, n+1)
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil, nil
		default:
		}

		v := pick()
		nb := eg.eliminate(v)
		if maxBag > 0 && len(nb)+1 > maxBag {
			return nil, nil
		}
		bags[v] = append(nb, v)
		pos[v] = i
		order = append(order, v)
	}

	// Later-eliminated vertices get their nodes first, so parents exist.
	nodeOf := make([]tree.VertexID, n+1)
	root := tree.None
	for i := n - 1; i >= 0; i-- {
		v := order[i]
		parent, first := graph.Vertex(0), n
		for _, u := range bags[v] {
			if u != v && pos[u] < first {
				parent, first = u, pos[u]
			}
		}
		switch {
		case root == tree.None:
			root = d.InsertRoot()
			nodeOf[v] = root
		case parent == 0:
			nodeOf[v] = d.AddChild(root)
		default:
			nodeOf[v] = d.AddChild(nodeOf[parent])
		}
		d.SetBag(nodeOf[v], bags[v])
	}

	if b.compress {
		if err := manipulation.NewCompression().Apply(g, d); err != nil {
			return nil, err
		}
	}
	return b.finish(g, d, ops)
}

// finish applies the caller's operations and annotations.
func (b *BucketElimination) finish(g graph.View, d *decomposition.Decomposition, ops []manipulation.Operation) (*decomposition.Decomposition, error) {
	if err := manipulation.Apply(ops, g, d); err != nil {
		return nil, err
	}
	if b.computeInduced {
		d.ComputeInducedHyperedges(g)
	}
	return d, nil
}
