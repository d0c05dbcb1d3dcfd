package seed

import (
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/kubekattle/fern/internal/leaf"
)

// Render serializes the named template in marker-file form.
func Render(cfg *Config, name string) ([]byte, error) {
	tpl, ok := cfg.Seeds[name]
	if !ok {
		return nil, &UnknownSeedError{Name: name}
	}
	return leaf.Marshal(tpl)
}

// Seed writes the named template as dir/fern.yaml and returns the written
// path. An existing marker file is never overwritten unless force is set;
// the refusal leaves the file untouched.
func Seed(cfg *Config, name, dir string, force bool) (string, error) {
	data, err := Render(cfg, name)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, leaf.MarkerFileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", &LeafExistsError{Path: path}
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// RenderDiff produces a unified diff between an existing marker file and what
// the named template would write, for previewing an overwrite.
func RenderDiff(cfg *Config, name string, existing []byte) (string, error) {
	rendered, err := Render(cfg, name)
	if err != nil {
		return "", err
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(rendered)),
		FromFile: leaf.MarkerFileName,
		ToFile:   "seed:" + name,
		Context:  3,
	})
}
