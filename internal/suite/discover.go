package suite

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tytanic-dev/tytanic/internal/errors"
	"github.com/tytanic-dev/tytanic/internal/project"
	"github.com/tytanic-dev/tytanic/internal/test"
	"github.com/tytanic-dev/tytanic/internal/vfs"
	"github.com/tytanic-dev/tytanic/pkg/log"
)

// Discover returns all tests of the project sorted by identifier.
//
// Every directory below the tests root that contains a test script is a unit test. Reserved
// directories such as `ref` and directories whose names are not valid identifier fragments
// are not descended into. Errors for single tests do not stop discovery, they are returned
// together once every directory was visited.
func Discover(ctx context.Context, p *project.Project) (test.Tests, error) {
	logger := log.LoggerFromContext(ctx).WithField(log.FieldKeyPrefix, "discover")

	var (
		tests test.Tests
		errs  *errors.MultiError
	)

	if tmpl, ok := p.TemplatePath(); ok {
		exists, err := vfs.FileExists(p.FS(), tmpl)
		if err != nil {
			return nil, errors.New(err)
		}

		if exists {
			logger.Tracef("Found template %s", tmpl)
			tests = append(tests, test.NewTemplate(tmpl))
		} else {
			logger.Warnf("Configured template %s does not exist", tmpl)
		}
	}

	root := p.TestsRoot()

	isDir, err := vfs.IsDir(p.FS(), root)
	if err != nil {
		return nil, errors.New(err)
	}

	if !isDir {
		logger.Debugf("Tests root %s does not exist", root)
		return tests.Sort(), nil
	}

	err = vfs.Walk(p.FS(), root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() || path == root {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		name := info.Name()
		if test.IsReservedFragment(name) || !test.IsValidFragment(name) {
			logger.Tracef("Skipping directory %s", path)
			return vfs.SkipDir
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		unit, err := loadUnit(p, filepath.ToSlash(rel))
		if err != nil {
			errs = errs.Append(err)
			return nil
		}

		if unit != nil {
			logger.Tracef("Found %s test %s", unit.RefKind(), unit.ID())
			tests = append(tests, unit)
		}

		return nil
	})
	if err != nil {
		return nil, errors.New(err)
	}

	logger.Debugf("Discovered %d tests in %s", len(tests), root)

	return tests.Sort(), errs.ErrorOrNil()
}

// loadUnit loads the unit test with the given identifier. It returns nil if the directory
// does not contain a test script.
func loadUnit(p *project.Project, id string) (*test.Test, error) {
	script := p.UnitScript(id)

	exists, err := vfs.FileExists(p.FS(), script)
	if err != nil || !exists {
		return nil, err
	}

	refKind := test.CompileOnly

	if ok, err := vfs.FileExists(p.FS(), p.RefScript(id)); err != nil {
		return nil, err
	} else if ok {
		refKind = test.Ephemeral
	} else if ok, err := vfs.IsDir(p.FS(), p.RefDir(id)); err != nil {
		return nil, err
	} else if ok {
		refKind = test.Persistent
	}

	source, err := vfs.ReadFile(p.FS(), script)
	if err != nil {
		return nil, err
	}

	annotations, err := test.ParseAnnotations(string(source))
	if err != nil {
		return nil, errors.New(InvalidTestError{ID: id, Path: script, Err: err})
	}

	return test.NewUnit(id, refKind).
		WithPath(p.UnitDir(id)).
		WithAnnotations(annotations...), nil
}

// InvalidTestError is returned for a test whose script could not be interpreted.
type InvalidTestError struct {
	Err  error
	ID   string
	Path string
}

func (e InvalidTestError) Error() string {
	return "invalid test " + e.ID + " (" + e.Path + "): " + e.Err.Error()
}

func (e InvalidTestError) Unwrap() error {
	return e.Err
}
