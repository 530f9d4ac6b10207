// Package config loads the YAML run configuration of the treewidth command
// and turns it into controller options, strategies and operations.
//
// Precedence, lowest first: Default(), the YAML file, TREEWIDTH_* environment
// variables, command-line flags (applied by the caller).
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/treewidth/adaptive"
	"github.com/katalvlaran/treewidth/elimination"
	"github.com/katalvlaran/treewidth/manipulation"
	"github.com/katalvlaran/treewidth/strategy"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// TrivialStrategy names the single-bag strategy in strategy lists.
const TrivialStrategy = "trivial"

// Config is the top-level run configuration.
type Config struct {
	// Search contains controller settings.
	Search SearchConfig `yaml:"search"`

	// Strategies lists the competing strategies in registration order.
	Strategies []StrategyConfig `yaml:"strategies"`

	// Operations contains the manipulations applied to every result.
	Operations OperationsConfig `yaml:"operations"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
}

// SearchConfig contains controller settings.
type SearchConfig struct {
	DecisionRounds      int           `yaml:"decision_rounds"`
	Iterations          int           `yaml:"iterations"`
	NonImprovementLimit int           `yaml:"non_improvement_limit"`
	Seed                int64         `yaml:"seed"`
	ComputeInducedEdges bool          `yaml:"compute_induced_edges"`
	Timeout             time.Duration `yaml:"timeout"`
}

// StrategyConfig describes one registered strategy and its filter.
type StrategyConfig struct {
	// Name is "trivial" or an elimination ordering name such as "min-fill".
	Name string `yaml:"name"`

	// Compression merges subset bags after elimination (default true).
	Compression *bool `yaml:"compression,omitempty"`

	// MaxVertices and MaxDegree admit only graphs up to the given size; 0 disables.
	MaxVertices int `yaml:"max_vertices,omitempty"`
	MaxDegree   int `yaml:"max_degree,omitempty"`

	// Connected admits only connected graphs.
	Connected bool `yaml:"connected,omitempty"`
}

// OperationsConfig selects manipulation operations.
type OperationsConfig struct {
	// LimitChildCount bounds the children per node; 0 disables, otherwise >= 2.
	LimitChildCount int `yaml:"limit_child_count"`

	// InducedSubgraphLabels labels every node with its induced hyperedges.
	InducedSubgraphLabels bool `yaml:"induced_subgraph_labels"`
}

// Default returns the built-in configuration: one decision round, one
// refinement iteration, no patience limit and the min-fill and min-degree
// heuristics.
func Default() Config {
	return Config{
		Search: SearchConfig{
			DecisionRounds:      adaptive.DefaultDecisionRounds,
			Iterations:          adaptive.DefaultIterationCount,
			NonImprovementLimit: adaptive.Unlimited,
			ComputeInducedEdges: true,
		},
		Strategies: []StrategyConfig{
			{Name: elimination.MinFill.String()},
			{Name: elimination.MinDegree.String()},
		},
		LogLevel: "info",
	}
}

// Load returns Default() overlaid with the file at path (if path is not empty)
// and the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "config: read")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "config: parse %s", path)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overlays TREEWIDTH_SEED, TREEWIDTH_ROUNDS, TREEWIDTH_ITERATIONS,
// TREEWIDTH_NON_IMPROVEMENT_LIMIT, TREEWIDTH_TIMEOUT and TREEWIDTH_LOG_LEVEL.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"TREEWIDTH_ROUNDS", &c.Search.DecisionRounds},
		{"TREEWIDTH_ITERATIONS", &c.Search.Iterations},
		{"TREEWIDTH_NON_IMPROVEMENT_LIMIT", &c.Search.NonImprovementLimit},
	}
	for _, e := range ints {
		if v, ok := lookup(e.key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return errors.Wrapf(err, "config: %s", e.key)
			}
			*e.dst = n
		}
	}
	if v, ok := lookup("TREEWIDTH_SEED"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return errors.Wrap(err, "config: TREEWIDTH_SEED")
		}
		c.Search.Seed = n
	}
	if v, ok := lookup("TREEWIDTH_TIMEOUT"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrap(err, "config: TREEWIDTH_TIMEOUT")
		}
		c.Search.Timeout = d
	}
	if v, ok := lookup("TREEWIDTH_LOG_LEVEL"); ok {
		c.LogLevel = strings.TrimSpace(v)
	}
	return nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if c.Search.DecisionRounds < 1 {
		return errors.Wrap(ErrInvalid, "decision_rounds must be >= 1")
	}
	if c.Search.Iterations < 0 {
		return errors.Wrap(ErrInvalid, "iterations must be >= 0")
	}
	if c.Search.NonImprovementLimit < adaptive.Unlimited {
		return errors.Wrap(ErrInvalid, "non_improvement_limit must be >= -1")
	}
	if c.Search.Timeout < 0 {
		return errors.Wrap(ErrInvalid, "timeout must be >= 0")
	}
	if len(c.Strategies) == 0 {
		return errors.Wrap(ErrInvalid, "at least one strategy is required")
	}
	for i, s := range c.Strategies {
		if s.MaxVertices < 0 || s.MaxDegree < 0 {
			return errors.Wrapf(ErrInvalid, "strategies[%d]: filter bounds must be >= 0", i)
		}
		if s.Name == TrivialStrategy {
			continue
		}
		if _, err := elimination.ParseOrdering(s.Name); err != nil {
			return errors.Wrapf(ErrInvalid, "strategies[%d]: %v", i, err)
		}
	}
	if l := c.Operations.LimitChildCount; l != 0 && l < 2 {
		return errors.Wrap(ErrInvalid, "limit_child_count must be 0 or >= 2")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	return nil
}

// ControllerOptions maps the search settings to controller options.
func (c Config) ControllerOptions() []adaptive.Option {
	return []adaptive.Option{
		adaptive.WithDecisionRounds(c.Search.DecisionRounds),
		adaptive.WithIterationCount(c.Search.Iterations),
		adaptive.WithNonImprovementLimit(c.Search.NonImprovementLimit),
		adaptive.WithSeed(c.Search.Seed),
		adaptive.WithComputeInducedEdges(c.Search.ComputeInducedEdges),
	}
}

// Register builds every configured strategy and registers it with ctrl.
// Strategy i is seeded with the search seed plus i.
func (c Config) Register(ctrl *adaptive.Controller) error {
	for i, sc := range c.Strategies {
		s, err := sc.build(c.Search.Seed + int64(i))
		if err != nil {
			return errors.Wrapf(err, "config: strategies[%d]", i)
		}
		ctrl.Register(s, sc.filter())
	}
	return nil
}

func (sc StrategyConfig) build(seed int64) (strategy.Strategy, error) {
	if sc.Name == TrivialStrategy {
		return elimination.NewTrivial(), nil
	}
	o, err := elimination.ParseOrdering(sc.Name)
	if err != nil {
		return nil, err
	}
	compress := sc.Compression == nil || *sc.Compression
	return elimination.NewBucketElimination(o,
		elimination.WithSeed(seed),
		elimination.WithCompression(compress),
	), nil
}

func (sc StrategyConfig) filter() strategy.Filter {
	var fs []strategy.Filter
	if sc.MaxVertices > 0 {
		fs = append(fs, strategy.MaxVertices(sc.MaxVertices))
	}
	if sc.MaxDegree > 0 {
		fs = append(fs, strategy.MaxDegree(sc.MaxDegree))
	}
	if sc.Connected {
		fs = append(fs, strategy.Connected())
	}
	if len(fs) == 0 {
		return nil
	}
	return strategy.All(fs...)
}

// BuildOperations builds the configured manipulation operations.
func (c Config) BuildOperations() ([]manipulation.Operation, error) {
	var ops []manipulation.Operation
	if c.Operations.LimitChildCount != 0 {
		op, err := manipulation.NewLimitChildCount(c.Operations.LimitChildCount)
		if err != nil {
			return nil, errors.Wrap(err, "config: limit_child_count")
		}
		ops = append(ops, op)
	}
	if c.Operations.InducedSubgraphLabels {
		ops = append(ops, manipulation.NewInducedSubgraphLabeling())
	}
	return ops, nil
}

// Level returns the parsed log level, Info when unset or invalid.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
