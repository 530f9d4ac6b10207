package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treewidth/adaptive"
	"github.com/katalvlaran/treewidth/config"
	"github.com/katalvlaran/treewidth/internal/logging"
	"github.com/katalvlaran/treewidth/manipulation"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "treewidth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, adaptive.DefaultDecisionRounds, cfg.Search.DecisionRounds)
	assert.Equal(t, adaptive.Unlimited, cfg.Search.NonImprovementLimit)
	assert.True(t, cfg.Search.ComputeInducedEdges)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
search:
  decision_rounds: 3
  iterations: 0
  non_improvement_limit: 25
  seed: 42
  timeout: 30s
strategies:
  - name: min-fill
  - name: random
    compression: false
    max_vertices: 500
  - name: trivial
    connected: true
operations:
  limit_child_count: 2
  induced_subgraph_labels: true
log_level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Search.DecisionRounds)
	assert.Equal(t, 0, cfg.Search.Iterations)
	assert.Equal(t, 25, cfg.Search.NonImprovementLimit)
	assert.Equal(t, int64(42), cfg.Search.Seed)
	assert.Equal(t, 30*time.Second, cfg.Search.Timeout)
	assert.True(t, cfg.Search.ComputeInducedEdges, "unset keys keep defaults")
	require.Len(t, cfg.Strategies, 3)
	require.NotNil(t, cfg.Strategies[1].Compression)
	assert.False(t, *cfg.Strategies[1].Compression)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())

	ctrl := adaptive.New(append(cfg.ControllerOptions(), adaptive.WithLogger(logging.Discard()))...)
	require.NoError(t, cfg.Register(ctrl))
	assert.Equal(t, []string{"bucket-elimination/min-fill", "bucket-elimination/random", "trivial"}, ctrl.Strategies())

	ops, err := cfg.BuildOperations()
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.IsType(t, &manipulation.LimitChildCount{}, ops[0])
	assert.IsType(t, &manipulation.InducedSubgraphLabeling{}, ops[1])
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TREEWIDTH_SEED", "7")
	t.Setenv("TREEWIDTH_ROUNDS", "4")
	t.Setenv("TREEWIDTH_TIMEOUT", "1m")
	t.Setenv("TREEWIDTH_LOG_LEVEL", "warn")

	cfg, err := config.Load(writeFile(t, "search:\n  seed: 1\n  decision_rounds: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Search.Seed, "environment overrides the file")
	assert.Equal(t, 4, cfg.Search.DecisionRounds)
	assert.Equal(t, time.Minute, cfg.Search.Timeout)
	assert.Equal(t, logrus.WarnLevel, cfg.Level())

	t.Setenv("TREEWIDTH_ITERATIONS", "many")
	_, err = config.Load("")
	require.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "search: [1, 2"))
	require.Error(t, err)

	invalid := map[string]string{
		"rounds":     "search:\n  decision_rounds: 0\n",
		"iterations": "search:\n  iterations: -1\n",
		"patience":   "search:\n  non_improvement_limit: -2\n",
		"strategy":   "strategies:\n  - name: best-first\n",
		"none":       "strategies: []\n",
		"filter":     "strategies:\n  - name: trivial\n    max_degree: -1\n",
		"limit":      "operations:\n  limit_child_count: 1\n",
		"level":      "log_level: loud\n",
	}
	for name, body := range invalid {
		_, err := config.Load(writeFile(t, body))
		require.ErrorIs(t, err, config.ErrInvalid, name)
	}
}
