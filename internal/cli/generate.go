package cli

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/treewidth/builder"
	"github.com/katalvlaran/treewidth/format"
)

// ErrUnknownFamily is returned for a graph family generate does not know.
var ErrUnknownFamily = errors.New("treewidth: unknown graph family")

type family struct {
	args  int
	build func(ints []int, floats []float64) builder.Constructor
	usage string
}

var families = map[string]family{
	"path":      {1, func(n []int, _ []float64) builder.Constructor { return builder.Path(n[0]) }, "path N"},
	"cycle":     {1, func(n []int, _ []float64) builder.Constructor { return builder.Cycle(n[0]) }, "cycle N"},
	"star":      {1, func(n []int, _ []float64) builder.Constructor { return builder.Star(n[0]) }, "star N"},
	"wheel":     {1, func(n []int, _ []float64) builder.Constructor { return builder.Wheel(n[0]) }, "wheel N"},
	"complete":  {1, func(n []int, _ []float64) builder.Constructor { return builder.Complete(n[0]) }, "complete N"},
	"bipartite": {2, func(n []int, _ []float64) builder.Constructor { return builder.CompleteBipartite(n[0], n[1]) }, "bipartite A B"},
	"grid":      {2, func(n []int, _ []float64) builder.Constructor { return builder.Grid(n[0], n[1]) }, "grid ROWS COLS"},
	"random":    {2, func(n []int, p []float64) builder.Constructor { return builder.RandomSparse(n[0], p[1]) }, "random N P"},
	"hyper":     {3, func(n []int, _ []float64) builder.Constructor { return builder.RandomHypergraph(n[0], n[1], n[2]) }, "hyper N M K"},
}

func newGenerateCommand(stdout io.Writer) *cobra.Command {
	var (
		seed int64
		hgr  bool
	)
	cmd := &cobra.Command{
		Use:   "generate FAMILY [PARAMS...]",
		Short: "Write a generated graph in .gr (or .hgr) format",
		Long: "Families: path N, cycle N, star N, wheel N, complete N, bipartite A B,\n" +
			"grid ROWS COLS, random N P, hyper N M K.",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			con, err := parseFamily(args[0], args[1:])
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(nil, []builder.Option{builder.WithSeed(seed)}, con)
			if err != nil {
				return err
			}
			if hgr {
				return format.WriteHgr(stdout, g)
			}
			return format.WriteGr(stdout, g)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for random and hyper")
	cmd.Flags().BoolVar(&hgr, "hgr", false, "write .hgr instead of .gr")
	return cmd
}

func parseFamily(name string, params []string) (builder.Constructor, error) {
	f, ok := families[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFamily, "%q", name)
	}
	if len(params) != f.args {
		return nil, errors.Errorf("treewidth: usage: generate %s", f.usage)
	}
	ints := make([]int, len(params))
	floats := make([]float64, len(params))
	for i, p := range params {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "treewidth: parameter %d of %s", i+1, name)
		}
		floats[i] = v
		ints[i] = int(v)
	}
	return f.build(ints, floats), nil
}
