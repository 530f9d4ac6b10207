package logging_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/treewidth/internal/logging"
)

func TestLogger_FallsBackToStandard(t *testing.T) {
	assert.Same(t, logrus.StandardLogger(), logging.Logger(context.Background()))
}

func TestLogger_FromContext(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ctx := logging.WithLogger(context.Background(), logger.WithField("run", "x"))

	logging.Logger(ctx).Info("hello")

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "hello", entry.Message)
		assert.Equal(t, "x", entry.Data["run"])
	}
}

func TestDiscard(t *testing.T) {
	l := logging.Discard()
	l.Error("dropped")
	assert.NotNil(t, l)
}
