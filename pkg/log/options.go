package log

import (
	"io"
)

// Option configures a logger.
type Option func(logger *logger)

// WithLevel sets the minimum level that is written.
func WithLevel(level Level) Option {
	return func(logger *logger) {
		logger.Logger.SetLevel(level.ToLogrusLevel())
	}
}

// WithOutput sets the writer log entries go to.
func WithOutput(output io.Writer) Option {
	return func(logger *logger) {
		logger.Logger.SetOutput(output)
	}
}

// WithFormatter sets the entry formatter.
func WithFormatter(formatter Formatter) Option {
	return func(logger *logger) {
		logger.Logger.SetFormatter(&fromLogrusFormatter{Formatter: formatter})
	}
}
