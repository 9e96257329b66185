// Package options provides the set of options that configure a tytanic run.
package options

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/telemetry"
	"github.com/tytanic-dev/tytanic/internal/vfs"
	"github.com/tytanic-dev/tytanic/pkg/log"
)

const ContextKey ctxKey = iota

const defaultLogLevel = log.InfoLevel

type ctxKey byte

// Options represents options that configure the behavior of the tt program.
type Options struct {
	// Writer receives command output.
	Writer io.Writer
	// ErrWriter receives logs and diagnostics.
	ErrWriter io.Writer
	// Logger is the logger configured from the global flags.
	Logger log.Logger
	// FS is the filesystem projects are read from.
	FS vfs.FS
	// Telemetry configures traces and metrics.
	Telemetry *telemetry.Options
	// WorkingDir is the directory the project is searched from. Defaults to the current directory.
	WorkingDir string
	// LogLevelStr is the raw value of --log-level.
	LogLevelStr string
	// LogLevel is the parsed log level.
	LogLevel log.Level
	// MaxWorkers bounds the number of tests filtered concurrently. Zero uses the project setting.
	MaxWorkers int
	// NoColor disables colored output.
	NoColor bool
}

// NewOptions creates options writing to stdout and stderr.
func NewOptions() *Options {
	return NewOptionsWithWriters(os.Stdout, os.Stderr)
}

// NewOptionsWithWriters creates options with reasonable defaults writing to the given writers.
func NewOptionsWithWriters(stdout, stderr io.Writer) *Options {
	formatter := log.NewPrettyFormatter()

	return &Options{
		Writer:      stdout,
		ErrWriter:   stderr,
		Logger:      log.New(log.WithOutput(stderr), log.WithLevel(defaultLogLevel), log.WithFormatter(formatter)),
		FS:          vfs.NewOSFS(),
		Telemetry:   &telemetry.Options{},
		LogLevelStr: defaultLogLevel.String(),
		LogLevel:    defaultLogLevel,
	}
}

// OptionsFromContext tries to retrieve options from context, otherwise, returns its own instance.
func (opts *Options) OptionsFromContext(ctx context.Context) *Options {
	if val := ctx.Value(ContextKey); val != nil {
		if opts, ok := val.(*Options); ok {
			return opts
		}
	}

	return opts
}

// Clone returns a copy of the options. The logger is cloned, the writers and the filesystem are shared.
func (opts *Options) Clone() *Options {
	cloned := *opts
	cloned.Logger = opts.Logger.Clone()

	if opts.Telemetry != nil {
		telemetryOpts := *opts.Telemetry
		cloned.Telemetry = &telemetryOpts
	}

	return &cloned
}

// Setup resolves the working directory and applies the log settings. It is called once the
// global flags were parsed.
func (opts *Options) Setup() error {
	level, err := log.ParseLevel(opts.LogLevelStr)
	if err != nil {
		return err
	}

	opts.LogLevel = level

	formatter := log.NewPrettyFormatter()
	formatter.DisableColors = !opts.UseColor(opts.ErrWriter)

	opts.Logger.SetOptions(
		log.WithLevel(level),
		log.WithOutput(opts.ErrWriter),
		log.WithFormatter(formatter),
	)

	if opts.WorkingDir == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return errors.WithStackTrace(err)
		}

		opts.WorkingDir = currentDir
	}

	if !filepath.IsAbs(opts.WorkingDir) {
		workingDir, err := filepath.Abs(opts.WorkingDir)
		if err != nil {
			return errors.WithStackTrace(err)
		}

		opts.WorkingDir = workingDir
	}

	if opts.MaxWorkers < 0 {
		return errors.Errorf("max workers must not be negative, got %d", opts.MaxWorkers)
	}

	if opts.Telemetry != nil {
		return opts.Telemetry.Validate()
	}

	return nil
}

// UseColor reports whether output written to w should be colored. Colors are used only for
// terminals and never when NoColor is set.
func (opts *Options) UseColor(w io.Writer) bool {
	if opts.NoColor {
		return false
	}

	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
