// Package log provides a leveled logger with structured logging support.
package log

var (
	// std is the name of the default logger.
	std = New(WithFormatter(NewPrettyFormatter()))
)

// Default returns the logger used when a context carries none.
// Tests should build their own logger with New instead.
func Default() Logger {
	return std
}
