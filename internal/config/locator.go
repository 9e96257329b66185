package config

import (
	"context"
	"path/filepath"

	"github.com/tytanic-dev/tytanic/internal/vfs"
	"github.com/tytanic-dev/tytanic/pkg/log"
)

// FindConfigFile searches for tytanic.hcl in dir and its parents.
//
// Returns the path of the first config file found, or an empty string if there is none.
// Only returns an error for filesystem access failures.
func FindConfigFile(ctx context.Context, fs vfs.FS, dir string) (string, error) {
	logger := log.LoggerFromContext(ctx)

	root, ok, err := vfs.FindUp(fs, dir, ConfigFileName)
	if err != nil {
		return "", err
	}

	if !ok {
		logger.Debugf("No %s found in %s or any parent directory", ConfigFileName, dir)
		return "", nil
	}

	path := filepath.Join(root, ConfigFileName)
	logger.Debugf("Found project config %s", path)

	return path, nil
}
