package seed

import "fmt"

// NoConfigError reports a missing global config file. Only the seed operation
// ever sees it.
type NoConfigError struct {
	Path string
}

func (e *NoConfigError) Error() string {
	return fmt.Sprintf("config file at %s does not exist", e.Path)
}

// ConfigParseError reports a config file that exists but cannot be parsed.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("unable to read configuration %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }

// UnknownSeedError reports a template name absent from the config.
type UnknownSeedError struct {
	Name string
}

func (e *UnknownSeedError) Error() string {
	return fmt.Sprintf("did not find %q in config", e.Name)
}

// LeafExistsError reports a refusal to overwrite an existing marker file.
type LeafExistsError struct {
	Path string
}

func (e *LeafExistsError) Error() string {
	return fmt.Sprintf("%s already exists, refusing to overwrite", e.Path)
}
