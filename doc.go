// Package treewidth computes tree decompositions of small width for graphs
// and hypergraphs.
//
// What is in the box?
//
//	graph/         - mutable hypergraph with stable vertex and edge ids
//	tree/          - rooted tree of integer node ids with cheap edits
//	decomposition/ - bags on top of tree/, width and fitness
//	preprocess/    - adjacency, degrees, connected components and a width lower bound
//	manipulation/  - post-processing operations: compression, child limit, induced edges
//	elimination/   - elimination-ordering heuristics (min-fill, min-degree, ...)
//	strategy/      - the Strategy contract shared by every heuristic
//	adaptive/      - tournament controller that selects and refines a strategy
//	verify/        - checks the three decomposition conditions
//	format/        - PACE .gr / .hgr readers and .td writer
//	builder/       - deterministic graph families for tests and benchmarks
//	config/        - YAML + environment configuration
//
// The command line front end lives in cmd/treewidth.
//
// Quick start:
//
//	g := builder.MustBuild(builder.Grid(4, 4))
//	ctrl := adaptive.New(adaptive.WithIterationCount(10))
//	ctrl.Register(elimination.NewBucketElimination(elimination.MinFill), nil)
//	d, err := ctrl.Decompose(ctx, g, nil, nil)
package treewidth
