package flags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tytanic-dev/tytanic/cli/flags"
)

func TestPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix   flags.Prefix
		name     string
		expected string
	}{
		{prefix: nil, name: "log-level", expected: "LOG_LEVEL"},
		{prefix: flags.Prefix{flags.TtPrefix}, name: "log-level", expected: "TT_LOG_LEVEL"},
		{prefix: flags.Prefix{flags.TtPrefix}.Append("list"), name: "no-skip", expected: "TT_LIST_NO_SKIP"},
		{prefix: flags.Prefix{"list"}.Prepend(flags.TtPrefix), name: "format", expected: "TT_LIST_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.prefix.EnvVar(tt.name))
		})
	}
}

func TestEnvVarsWithTtPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"TT_WORKING_DIR", "TT_NO_COLOR"}, flags.EnvVarsWithTtPrefix("working-dir", "no-color"))
}
