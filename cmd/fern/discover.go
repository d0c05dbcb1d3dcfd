package main

import (
	"go.uber.org/zap"

	"github.com/kubekattle/fern/internal/finder"
	"github.com/kubekattle/fern/internal/leaf"
)

// discoverLeaves walks root and parses every marker file it finds. Malformed
// leaves are warned about and excluded; they never abort the walk.
func discoverLeaves(root string, logger *zap.Logger) ([]*leaf.Leaf, error) {
	paths, err := finder.Find(root, logger)
	if err != nil {
		return nil, err
	}
	leaves := make([]*leaf.Leaf, 0, len(paths))
	for _, path := range paths {
		l, err := leaf.Load(path)
		if err != nil {
			logger.Warn("skipping malformed leaf",
				zap.String("path", path),
				zap.Error(err))
			continue
		}
		leaves = append(leaves, l)
	}
	return leaves, nil
}
