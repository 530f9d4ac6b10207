// Package cli implements the treewidth command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/treewidth/adaptive"
	"github.com/katalvlaran/treewidth/config"
	"github.com/katalvlaran/treewidth/decomposition"
	"github.com/katalvlaran/treewidth/format"
	"github.com/katalvlaran/treewidth/graph"
	"github.com/katalvlaran/treewidth/internal/logging"
	"github.com/katalvlaran/treewidth/verify"
)

// ErrNoDecomposition is returned when the search ends without any result.
var ErrNoDecomposition = errors.New("treewidth: no decomposition found")

// Input formats.
const (
	formatAuto = "auto"
	formatGr   = "gr"
	formatHgr  = "hgr"
)

// Output formats.
const (
	outputTd    = "td"
	outputHuman = "human"
	outputWidth = "width"
)

type options struct {
	input      string
	output     string
	format     string
	outFormat  string
	configPath string
	metricsOut string
	logFormat  string

	seed                int64
	rounds              int
	iterations          int
	nonImprovementLimit int
	timeout             time.Duration
	strategies          []string

	printProgress bool
	verify        bool
	widthOnly     bool
	verbose       bool
}

// Execute runs the command with the process arguments and exits non-zero on
// failure.
func Execute(ctx context.Context, version string) {
	cmd := NewRootCommand(ctx, os.Stdin, os.Stdout, os.Stderr)
	cmd.Version = version
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the treewidth command bound to the given streams.
func NewRootCommand(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "treewidth [flags]",
		Short: "Compute a tree decomposition of small width for a PACE .gr or .hgr graph",
		Long: "treewidth runs a tournament between decomposition heuristics, keeps the\n" +
			"most promising one, refines it and writes the best decomposition in PACE .td format.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(ctx, cmd.Flags(), o, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	bindFlags(cmd.Flags(), o)
	cmd.AddCommand(newGenerateCommand(stdout))
	return cmd
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.input, "input", "i", "", "input graph file (default stdin)")
	fs.StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
	fs.StringVar(&o.format, "format", formatAuto, "input format: auto, gr or hgr")
	fs.StringVar(&o.outFormat, "output-format", outputTd, "output format: td, human or width")
	fs.StringVarP(&o.configPath, "config", "c", "", "YAML configuration file")
	fs.StringVar(&o.metricsOut, "metrics-out", "", "write Prometheus metrics to this file after the run")
	fs.StringVar(&o.logFormat, "log-format", "text", "log format: text or json")

	fs.Int64Var(&o.seed, "seed", 0, "random seed")
	fs.IntVar(&o.rounds, "rounds", adaptive.DefaultDecisionRounds, "tournament decision rounds")
	fs.IntVar(&o.iterations, "iterations", adaptive.DefaultIterationCount, "refinement iterations (0 = until the patience limit or timeout)")
	fs.IntVar(&o.nonImprovementLimit, "non-improvement-limit", adaptive.Unlimited, "stop refinement after this many consecutive failures (-1 = unlimited)")
	fs.DurationVar(&o.timeout, "timeout", 0, "stop the search after this long and keep the best result (0 = none)")
	fs.StringSliceVar(&o.strategies, "strategy", nil, "strategies to register: trivial, min-fill, min-degree, max-cardinality, natural, random")

	fs.BoolVar(&o.printProgress, "print-progress", false, "print every improvement to stderr")
	fs.BoolVar(&o.verify, "verify", false, "verify the decomposition before writing it")
	fs.BoolVar(&o.widthOnly, "width", false, "print only the width (same as --output-format width)")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")
}

func run(ctx context.Context, fs *pflag.FlagSet, o *options, stdin io.Reader, stdout, stderr io.Writer) error {
	if o.widthOnly {
		o.outFormat = outputWidth
	}
	switch o.outFormat {
	case outputTd, outputHuman, outputWidth:
	default:
		return errors.Errorf("treewidth: unknown output format %q", o.outFormat)
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(fs, o, &cfg); err != nil {
		return err
	}

	logger := newLogger(cfg, o, stderr)
	ctx = logging.WithLogger(ctx, logger)

	g, err := readGraph(o, stdin)
	if err != nil {
		return err
	}
	logger.WithFields(log.Fields{"vertices": g.VertexCount(), "edges": g.EdgeCount()}).Debug("graph loaded")

	if cfg.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Search.Timeout)
		defer cancel()
	}

	ctrl := adaptive.New(append(cfg.ControllerOptions(), adaptive.WithLogger(logger))...)
	if err := cfg.Register(ctrl); err != nil {
		return err
	}
	ops, err := cfg.BuildOperations()
	if err != nil {
		return err
	}

	var progress adaptive.ProgressFunc
	if o.printProgress {
		start := time.Now()
		progress = func(_ graph.View, d *decomposition.Decomposition, _ decomposition.Fitness) {
			fmt.Fprintf(stderr, "c width %d after %s\n", d.Width(), time.Since(start).Round(time.Millisecond))
		}
	}

	d, err := ctrl.Decompose(ctx, g, ops, progress)
	if err != nil {
		return err
	}
	if d == nil {
		return ErrNoDecomposition
	}
	st := ctrl.Stats()
	logger.WithFields(log.Fields{
		"run":       st.RunID,
		"width":     st.BestWidth,
		"selected":  st.Selected,
		"rounds":    st.Rounds,
		"refined":   st.RefinementAttempts,
		"cancelled": st.Cancelled,
	}).Info("search finished")

	if o.verify {
		if err := verify.Check(g, d); err != nil {
			return err
		}
		logger.Debug("decomposition verified")
	}

	if err := writeResult(o, stdout, g, d); err != nil {
		return err
	}

	if o.metricsOut != "" {
		if err := prometheus.WriteToTextfile(o.metricsOut, prometheus.DefaultGatherer); err != nil {
			return errors.Wrap(err, "treewidth: write metrics")
		}
	}
	return nil
}

// applyFlags overrides configuration values with flags set on the command line.
func applyFlags(fs *pflag.FlagSet, o *options, cfg *config.Config) error {
	if fs.Changed("seed") {
		cfg.Search.Seed = o.seed
	}
	if fs.Changed("rounds") {
		cfg.Search.DecisionRounds = o.rounds
	}
	if fs.Changed("iterations") {
		cfg.Search.Iterations = o.iterations
	}
	if fs.Changed("non-improvement-limit") {
		cfg.Search.NonImprovementLimit = o.nonImprovementLimit
	}
	if fs.Changed("timeout") {
		cfg.Search.Timeout = o.timeout
	}
	if fs.Changed("strategy") {
		cfg.Strategies = cfg.Strategies[:0:0]
		for _, name := range o.strategies {
			cfg.Strategies = append(cfg.Strategies, config.StrategyConfig{Name: strings.TrimSpace(name)})
		}
	}
	if o.verbose {
		cfg.LogLevel = log.DebugLevel.String()
	}
	return cfg.Validate()
}

func newLogger(cfg config.Config, o *options, stderr io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetLevel(cfg.Level())
	if o.logFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
	return logger
}

func readGraph(o *options, stdin io.Reader) (*graph.Graph, error) {
	r := stdin
	if o.input != "" && o.input != "-" {
		f, err := os.Open(o.input)
		if err != nil {
			return nil, errors.Wrap(err, "treewidth: open input")
		}
		defer f.Close()
		r = f
	}

	kind := o.format
	if kind == formatAuto {
		kind = formatGr
		if strings.EqualFold(filepath.Ext(o.input), ".hgr") {
			kind = formatHgr
		}
	}
	switch kind {
	case formatGr:
		return format.ParseGr(r)
	case formatHgr:
		return format.ParseHgr(r)
	default:
		return nil, errors.Errorf("treewidth: unknown format %q", o.format)
	}
}

func writeResult(o *options, stdout io.Writer, g graph.View, d *decomposition.Decomposition) error {
	w := stdout
	if o.output != "" && o.output != "-" {
		f, err := os.Create(o.output)
		if err != nil {
			return errors.Wrap(err, "treewidth: create output")
		}
		defer f.Close()
		w = f
	}
	switch o.outFormat {
	case outputWidth:
		return format.WriteWidth(w, d)
	case outputHuman:
		return format.WriteHuman(w, g, d)
	default:
		return format.WriteTd(w, g, d)
	}
}
