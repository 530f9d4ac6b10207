package manipulation

import (
	"fmt"

	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/graph"
)

// LimitChildCount caps the number of children per node. Excess children of a
// node v move under a new child of v that carries a copy of v's bag, so the
// width is unchanged. With limit 2 the result is binary.
type LimitChildCount struct {
	limit int
}

// NewLimitChildCount returns the operation for the given limit (at least 2).
func NewLimitChildCount(limit int) (*LimitChildCount, error) {
	if limit < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	return &LimitChildCount{limit: limit}, nil
}

// Limit returns the configured limit.
func (o *LimitChildCount) Limit() int { return o.limit }

// Name implements Operation.
func (*LimitChildCount) Name() string { return "limit-child-count" }

// Capabilities implements Operation.
func (*LimitChildCount) Capabilities() Capabilities {
	return Capabilities{Local: true, CreatesTreeNodes: true}
}

// Clone implements Operation.
func (o *LimitChildCount) Clone() Operation { return &LimitChildCount{limit: o.limit} }

// Apply implements Operation.
func (o *LimitChildCount) Apply(_ graph.View, d *decomposition.Decomposition) error {
	if d == nil {
		return ErrNilDecomposition
	}
	work := d.Vertices()
	for len(work) > 0 {
		v := work[len(work)-1]
		work = work[:len(work)-1]
		if d.ChildCount(v) <= o.limit {
			continue
		}

		children := d.Children(v)
		n := d.AddChild(v)
		d.SetBag(n, d.Bag(v))
		for _, c := range children[o.limit-1:] {
			d.SetParent(c, n)
		}
		work = append(work, n)
	}
	return nil
}

// MaxChildCount returns the largest child count in d.
func MaxChildCount(d *decomposition.Decomposition) int {
	best := 0
	for _, v := range d.Vertices() {
		if c := d.ChildCount(v); c > best {
			best = c
		}
	}
	return best
}
