package dispatch

import (
	"errors"
	"fmt"
)

// NoMatchError reports a requested task that no discovered leaf defines.
type NoMatchError struct {
	Task string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("did not find task %q in any fern.yaml file", e.Task)
}

// LaunchError reports a command that could not be started at all: the
// executable was missing, or the command line could not be split into words.
// Distinct from ExitError so diagnostics can tell "not installed" apart from
// "ran and failed".
type LaunchError struct {
	Command string
	Dir     string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("unable to run %q in %s: %v", e.Command, e.Dir, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExitError reports a command that launched and exited non-zero. Code is the
// child's exact exit code and becomes fern's own exit code.
type ExitError struct {
	Command string
	Dir     string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q in %s failed with exit code %d", e.Command, e.Dir, e.Code)
}

// ExitCode maps a dispatch result to the process exit code: 0 on success, the
// child's code on ExitError, 2 when no leaf defines the task, 1 for
// everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var noMatch *NoMatchError
	if errors.As(err, &noMatch) {
		return 2
	}
	return 1
}
