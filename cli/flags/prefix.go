// Package flags provides helpers shared by the flag definitions of all commands.
package flags

import (
	"strings"
)

// TtPrefix is prepended to the environment variables of all flags.
const TtPrefix = "TT"

// Prefix is a list of name parts joined in front of flag names and environment variables.
type Prefix []string

// Prepend returns a new prefix with val in front.
func (prefix Prefix) Prepend(val string) Prefix {
	return append([]string{val}, prefix...)
}

// Append returns a new prefix with val at the end.
func (prefix Prefix) Append(val string) Prefix {
	return append(prefix[:len(prefix):len(prefix)], val)
}

// EnvVar returns the environment variable for the flag name, e.g. `TT_LOG_LEVEL` for `log-level`.
func (prefix Prefix) EnvVar(name string) string {
	name = strings.Join(append(prefix[:len(prefix):len(prefix)], name), "_")

	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// EnvVars returns the environment variables for the given flag names.
func (prefix Prefix) EnvVars(names ...string) []string {
	envVars := make([]string, len(names))

	for i := range names {
		envVars[i] = prefix.EnvVar(names[i])
	}

	return envVars
}

// EnvVarsWithTtPrefix returns the `TT_` environment variables for the given flag names.
func EnvVarsWithTtPrefix(names ...string) []string {
	return Prefix{TtPrefix}.EnvVars(names...)
}
