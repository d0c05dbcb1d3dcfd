// File: internal/leaf/leaf.go
// Brief: Marker-file model and parser.

// Package leaf reads fern.yaml marker files. A marker file is a single YAML
// mapping from task names to one or more shell command strings. Any string key
// is a valid task name; there is no fixed schema. Duplicate task names within
// one file are rejected as malformed rather than resolved last-wins.
package leaf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// MarkerFileName is the per-directory file fern looks for.
const MarkerFileName = "fern.yaml"

// Leaf is one discovered marker file: the file itself plus the directory its
// commands run in.
type Leaf struct {
	// Path is the marker file path as reported by the walk.
	Path string
	// Dir is the directory containing the marker file; commands for this
	// leaf execute with Dir as their working directory.
	Dir string
	// Tasks maps task name to its command sequence.
	Tasks TaskSet
}

// Load reads and parses the marker file at path. Parse failures come back as a
// *MalformedError carrying the path; a missing file surfaces as the underlying
// fs error.
func Load(path string) (*Leaf, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tasks, err := Parse(raw)
	if err != nil {
		return nil, &MalformedError{Path: path, Err: err}
	}
	return &Leaf{
		Path:  path,
		Dir:   filepath.Dir(path),
		Tasks: tasks,
	}, nil
}

// Parse decodes the raw bytes of one marker file. An empty or null document is
// a leaf with no tasks, not an error.
func Parse(raw []byte) (TaskSet, error) {
	var tasks TaskSet
	if err := yaml.Unmarshal(raw, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = TaskSet{}
	}
	return tasks, nil
}

// MalformedError marks a marker file whose contents could not be parsed. The
// walk treats these as warnings: a broken leaf is excluded from listing and
// dispatch without aborting the run.
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed %s at %s: %v", MarkerFileName, e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// TaskSet maps task name to its command sequence. Every present task has at
// least one command.
type TaskSet map[string]Steps

// UnmarshalYAML decodes the top-level mapping, rejecting anything that is not
// a mapping of string keys and reporting errors against the offending key.
func (t *TaskSet) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("expected a mapping of task names to commands (line %d)", value.Line)
	}
	out := make(TaskSet, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valNode := value.Content[i+1]
		var name string
		if err := keyNode.Decode(&name); err != nil {
			return fmt.Errorf("task name on line %d is not a string", keyNode.Line)
		}
		if _, dup := out[name]; dup {
			return fmt.Errorf("task %q is defined twice", name)
		}
		var steps Steps
		if err := valNode.Decode(&steps); err != nil {
			return fmt.Errorf("task %q: %w", name, err)
		}
		// A null value never reaches the Steps unmarshaler; it decodes to a
		// nil sequence, which would let a task with no commands slip through.
		if len(steps) == 0 {
			return fmt.Errorf("task %q has no commands (line %d)", name, valNode.Line)
		}
		out[name] = steps
	}
	*t = out
	return nil
}

// Names returns the task names in sorted order.
func (t TaskSet) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the set defines the named task.
func (t TaskSet) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// Marshal serializes a task set in the marker-file convention: one-command
// tasks collapse back to a plain scalar, multi-command tasks stay a sequence.
func Marshal(tasks TaskSet) ([]byte, error) {
	return yaml.Marshal(tasks)
}
