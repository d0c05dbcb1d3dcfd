// File: internal/finder/finder.go
// Brief: Filesystem discovery of fern.yaml leaves.

// Package finder walks a directory tree and reports every fern.yaml marker
// file in it. Conventionally ignored directories (VCS internals, dependency
// and build output dirs, hidden directories) are pruned. Symlinked
// directories are not followed; a symlink named fern.yaml still counts as a
// leaf because it is opened, not traversed.
package finder

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kubekattle/fern/internal/leaf"
)

var prunedDirs = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	"node_modules": {},
	"target":       {},
	"bin":          {},
	"dist":         {},
	"vendor":       {},
}

// Find returns the paths of all marker files at or below root, in lexical
// walk order. An unreadable subdirectory is logged and skipped; only an
// unreadable root aborts the walk. A tree with no marker files yields an
// empty result and no error.
func Find(root string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			logger.Warn("skipping unreadable path",
				zap.String("path", path),
				zap.Error(walkErr))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if _, pruned := prunedDirs[name]; pruned {
				return fs.SkipDir
			}
			if strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() == leaf.MarkerFileName {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return found, nil
}
