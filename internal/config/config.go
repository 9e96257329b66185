// Package config loads the project configuration of a tytanic project from its tytanic.hcl file.
package config

import (
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/vfs"
)

const (
	// ConfigFileName is the name of the project configuration file, its directory is the project root.
	ConfigFileName = "tytanic.hcl"

	// DefaultTestsDir is the tests root relative to the project root if none is configured.
	DefaultTestsDir = "tests"
)

// Config is the structure of tytanic.hcl.
//
//	tests          = "tests"
//	template       = "template.typ"
//	default_filter = "!skip()"
//	max_workers    = 4
type Config struct {
	// Tests is the tests root, relative to the project root.
	Tests string `hcl:"tests,optional"`
	// Template is the project template, relative to the project root. Empty if the project has none.
	Template string `hcl:"template,optional"`
	// DefaultFilter is the test set expression used when none is given on the command line.
	DefaultFilter string `hcl:"default_filter,optional"`
	// MaxWorkers bounds the number of tests filtered concurrently, zero means the number of CPUs.
	MaxWorkers int `hcl:"max_workers,optional"`
}

// Default returns the configuration of a project without a tytanic.hcl file.
func Default() *Config {
	return &Config{
		Tests: DefaultTestsDir,
	}
}

// Parse decodes the configuration in data. Filename is only used in error messages and
// must have the .hcl extension.
func Parse(filename string, data []byte) (*Config, error) {
	cfg := Default()

	if err := hclsimple.Decode(filename, data, nil, cfg); err != nil {
		return nil, errors.New(NewDecodeError(filename, err))
	}

	if cfg.Tests == "" {
		cfg.Tests = DefaultTestsDir
	}

	if err := cfg.Validate(filename); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfig reads and decodes the configuration file at path.
func LoadConfig(fs vfs.FS, path string) (*Config, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, errors.New(NewFileReadError(path, err))
	}

	return Parse(path, data)
}

// Validate checks the decoded values.
func (cfg *Config) Validate(filename string) error {
	if filepath.IsAbs(cfg.Tests) {
		return errors.New(NewInvalidValueError(filename, "tests", "must be relative to the project root"))
	}

	if cfg.Template != "" && filepath.IsAbs(cfg.Template) {
		return errors.New(NewInvalidValueError(filename, "template", "must be relative to the project root"))
	}

	if cfg.MaxWorkers < 0 {
		return errors.New(NewInvalidValueError(filename, "max_workers", "must not be negative"))
	}

	return nil
}
