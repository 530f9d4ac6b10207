package manipulation

import (
	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/graph"
)

// InducedSubgraphLabel is the label name written by InducedSubgraphLabeling.
const InducedSubgraphLabel = "induced-subgraph"

// InducedSubgraphLabeling records, under InducedSubgraphLabel, the ids of the
// hyperedges each bag fully contains. The value stored per node is a
// []graph.EdgeID. Nodes with no induced hyperedge get no label.
type InducedSubgraphLabeling struct{}

// NewInducedSubgraphLabeling returns the labeling operation.
func NewInducedSubgraphLabeling() *InducedSubgraphLabeling {
	return &InducedSubgraphLabeling{}
}

// Name implements Operation.
func (*InducedSubgraphLabeling) Name() string { return "induced-subgraph-labeling" }

// Capabilities implements Operation.
func (*InducedSubgraphLabeling) Capabilities() Capabilities {
	return Capabilities{Local: true, CreatesLocationDependentLabels: true}
}

// Clone implements Operation.
func (*InducedSubgraphLabeling) Clone() Operation { return &InducedSubgraphLabeling{} }

// Apply implements Operation.
func (*InducedSubgraphLabeling) Apply(g graph.View, d *decomposition.Decomposition) error {
	if d == nil {
		return ErrNilDecomposition
	}
	d.RemoveLabels(InducedSubgraphLabel)
	edges := g.Hyperedges()
	for _, v := range d.Vertices() {
		var ids []graph.EdgeID
		for _, e := range edges {
			inside := true
			for _, x := range e.Vertices {
				if !d.BagContains(v, x) {
					inside = false
					break
				}
			}
			if inside {
				ids = append(ids, e.ID)
			}
		}
		if len(ids) > 0 {
			d.SetLabel(InducedSubgraphLabel, v, ids)
		}
	}
	return nil
}
