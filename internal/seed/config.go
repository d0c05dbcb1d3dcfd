// File: internal/seed/config.go
// Brief: Global seeds-config resolution and loading.

// Package seed bootstraps new fern.yaml files from named templates in the
// per-user config. The config is loaded lazily: only the seed operation reads
// it, so a broken config file can never break run, list, or leaves.
package seed

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/kubekattle/fern/internal/leaf"
)

const (
	// ConfigPathEnv overrides the config file location when set.
	ConfigPathEnv = "FERN_CONFIG"
	// DefaultConfigName is the config file name in the user's home dir.
	DefaultConfigName = ".fern.config.yaml"
)

// Config is the parsed global settings file. Read-only after load.
type Config struct {
	// Seeds maps template name to a marker-file-shaped task set.
	Seeds map[string]leaf.TaskSet `yaml:"seeds"`
}

// ResolveConfigPath returns the config file location: the FERN_CONFIG
// environment variable when set, otherwise ~/.fern.config.yaml.
func ResolveConfigPath() (string, error) {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return path, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigName), nil
}

// LoadConfig reads and parses the config at path. A missing file is a
// *NoConfigError; unparsable contents are a *ConfigParseError.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NoConfigError{Path: path}
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, &ConfigParseError{Path: path, Err: err}
	}
	return &cfg, nil
}
