// Package project resolves the layout of a tytanic project: its root, its configuration and
// the paths of its tests.
package project

import (
	"context"
	"path/filepath"

	"github.com/tytanic-dev/tytanic/internal/config"
	"github.com/tytanic-dev/tytanic/internal/test"
	"github.com/tytanic-dev/tytanic/internal/vfs"
	"github.com/tytanic-dev/tytanic/pkg/log"
)

// Project is a tytanic project rooted at the directory containing tytanic.hcl.
type Project struct {
	fs         vfs.FS
	config     *config.Config
	root       string
	configPath string
}

// New creates a project rooted at root with the given configuration.
func New(fs vfs.FS, root string, cfg *config.Config) *Project {
	return &Project{
		fs:     fs,
		root:   filepath.Clean(root),
		config: cfg,
	}
}

// Discover finds the project containing workingDir. Without a tytanic.hcl in workingDir or
// any parent, workingDir is the project root and the default configuration is used.
func Discover(ctx context.Context, fs vfs.FS, workingDir string) (*Project, error) {
	configPath, err := config.FindConfigFile(ctx, fs, workingDir)
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		log.LoggerFromContext(ctx).Debugf("Using %s as project root with default config", workingDir)
		return New(fs, workingDir, config.Default()), nil
	}

	cfg, err := config.LoadConfig(fs, configPath)
	if err != nil {
		return nil, err
	}

	project := New(fs, filepath.Dir(configPath), cfg)
	project.configPath = configPath

	return project, nil
}

// FS returns the filesystem the project lives on.
func (p *Project) FS() vfs.FS {
	return p.fs
}

// Root returns the project root directory.
func (p *Project) Root() string {
	return p.root
}

// Config returns the project configuration.
func (p *Project) Config() *config.Config {
	return p.config
}

// ConfigPath returns the path of tytanic.hcl, or an empty string if the project has none.
func (p *Project) ConfigPath() string {
	return p.configPath
}

// TestsRoot returns the directory containing the unit tests.
func (p *Project) TestsRoot() string {
	return filepath.Join(p.root, p.config.Tests)
}

// TemplatePath returns the path of the project template, if one is configured.
func (p *Project) TemplatePath() (string, bool) {
	if p.config.Template == "" {
		return "", false
	}

	return filepath.Join(p.root, p.config.Template), true
}

// UnitDir returns the directory of the unit test with the given identifier.
func (p *Project) UnitDir(id string) string {
	return filepath.Join(p.TestsRoot(), filepath.FromSlash(id))
}

// UnitScript returns the path of the test script of a unit test.
func (p *Project) UnitScript(id string) string {
	return filepath.Join(p.UnitDir(id), test.ScriptName)
}

// RefScript returns the path of the reference script of an ephemeral unit test.
func (p *Project) RefScript(id string) string {
	return filepath.Join(p.UnitDir(id), test.RefScript)
}

// RefDir returns the directory holding the references of a persistent unit test.
func (p *Project) RefDir(id string) string {
	return filepath.Join(p.UnitDir(id), test.RefName)
}
