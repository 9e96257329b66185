package log_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tytanic-dev/tytanic/pkg/log"
)

func newTestLogger(buf *bytes.Buffer, level log.Level) log.Logger {
	formatter := log.NewPrettyFormatter()
	formatter.DisableColors = true
	formatter.DisableTimestamp = true

	return log.New(log.WithOutput(buf), log.WithLevel(level), log.WithFormatter(formatter))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected log.Level
		wantErr  bool
	}{
		{input: "info", expected: log.InfoLevel},
		{input: "DEBUG", expected: log.DebugLevel},
		{input: "trace", expected: log.TraceLevel},
		{input: "stdout", expected: log.StdoutLevel},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			level, err := log.ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLevelLogrusRoundTrip(t *testing.T) {
	t.Parallel()

	for _, level := range log.AllLevels {
		assert.Equal(t, level, log.FromLogrusLevel(level.ToLogrusLevel()))
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := newTestLogger(&buf, log.InfoLevel)
	logger.Debugf("hidden %d", 1)
	logger.WithField(log.FieldKeyTest, "foo/bar").Infof("matched")

	assert.Equal(t, "INFO  matched test=foo/bar\n", buf.String())
}

func TestLoggerSetLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := newTestLogger(&buf, log.InfoLevel)
	require.NoError(t, logger.SetLevel("trace"))
	assert.Equal(t, log.TraceLevel, logger.Level())

	logger.WithField(log.FieldKeyPrefix, "suite").Tracef("visiting %s", "tests")
	assert.Equal(t, "TRACE [suite] visiting tests\n", buf.String())

	require.Error(t, logger.SetLevel("loud"))
}

func TestLoggerContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := newTestLogger(&buf, log.InfoLevel)
	ctx := log.ContextWithLogger(context.Background(), logger)

	assert.Same(t, logger, log.LoggerFromContext(ctx))
	assert.Same(t, log.Default(), log.LoggerFromContext(context.Background()))
}
