package leaf

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Steps is the ordered command sequence for one task. Marker files may spell a
// single command as a plain scalar or several as a sequence; both normalize to
// this one shape at parse time.
type Steps []string

// UnmarshalYAML accepts either a single string scalar or a non-empty sequence
// of string scalars. Everything else (mapping, number, null, empty sequence)
// is an error.
func (s *Steps) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("expected a command string, got %s (line %d)", value.Tag, value.Line)
		}
		*s = Steps{value.Value}
		return nil
	case yaml.SequenceNode:
		if len(value.Content) == 0 {
			return fmt.Errorf("command list is empty (line %d)", value.Line)
		}
		out := make(Steps, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("expected a command string, got %s (line %d)", item.Tag, item.Line)
			}
			out = append(out, item.Value)
		}
		*s = out
		return nil
	default:
		return fmt.Errorf("expected a command string or list of command strings (line %d)", value.Line)
	}
}

// MarshalYAML writes a one-command sequence back as a plain scalar so seeded
// files keep the shorthand form.
func (s Steps) MarshalYAML() (interface{}, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}
