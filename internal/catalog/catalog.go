// Package catalog aggregates task names across discovered leaves.
package catalog

import (
	"sort"

	"github.com/kubekattle/fern/internal/leaf"
)

// Tasks returns the deduplicated union of task names across all leaves,
// sorted. Which leaf contributed which name is deliberately not retained;
// the catalog exists only for listing.
func Tasks(leaves []*leaf.Leaf) []string {
	seen := make(map[string]struct{})
	for _, l := range leaves {
		for name := range l.Tasks {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
