// Package vfs provides a virtual filesystem abstraction for testing and production use.
// It wraps afero so that project and test discovery can run against an in-memory tree.
package vfs

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FS is the filesystem interface used throughout the codebase.
type FS = afero.Fs

// NewOSFS returns a filesystem backed by the real operating system filesystem.
func NewOSFS() FS {
	return afero.NewOsFs()
}

// NewMemMapFS returns an in-memory filesystem for testing purposes.
func NewMemMapFS() FS {
	return afero.NewMemMapFs()
}

// FileExists checks if a path exists using the given filesystem.
// Returns (true, nil) if the file exists, (false, nil) if it does not exist,
// and (false, error) for other errors (e.g., permission denied).
func FileExists(fs FS, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// IsDir reports whether path exists and is a directory.
func IsDir(fs FS, path string) (bool, error) {
	ok, err := afero.IsDir(fs, path)
	if os.IsNotExist(err) {
		return false, nil
	}

	return ok, err
}

// WriteFile writes data to a file on the given filesystem, creating parent directories.
func WriteFile(fs FS, filename string, data []byte, perm os.FileMode) error {
	if err := fs.MkdirAll(filepath.Dir(filename), os.ModePerm); err != nil {
		return err
	}

	return afero.WriteFile(fs, filename, data, perm)
}

// ReadFile reads the contents of a file from the given filesystem.
func ReadFile(fs FS, filename string) ([]byte, error) {
	return afero.ReadFile(fs, filename)
}

// Walk walks the file tree rooted at root in lexical order.
func Walk(fs FS, root string, walkFn filepath.WalkFunc) error {
	return afero.Walk(fs, root, walkFn)
}

// FindUp looks for name in dir and each of its parents and returns the directory that contains it.
// The second return value is false if no directory up to the filesystem root contains name.
func FindUp(fs FS, dir, name string) (string, bool, error) {
	dir = filepath.Clean(dir)

	for {
		ok, err := FileExists(fs, filepath.Join(dir, name))
		if err != nil {
			return "", false, err
		}

		if ok {
			return dir, true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}

		dir = parent
	}
}

// SkipDir is returned from a walk function to skip the current directory.
var SkipDir = fs.SkipDir
