// File: internal/dispatch/dispatch.go
// Brief: Sequential task execution across matching leaves.

// Package dispatch runs a named task in every leaf that defines it. Execution
// is strictly sequential, in lexicographic leaf order, with the leaf's own
// directory as each command's working directory. The first failure of any
// kind halts the entire dispatch: remaining commands in the failing leaf and
// all later leaves never run.
package dispatch

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sort"

	"github.com/fatih/color"
	shellwords "github.com/mattn/go-shellwords"
	"go.uber.org/zap"

	"github.com/kubekattle/fern/internal/leaf"
)

// Options tune dispatch output. Zero value inherits the process streams.
type Options struct {
	// Quiet suppresses the per-leaf banner lines.
	Quiet bool
	// Out receives banner lines; defaults to os.Stdout. Child processes
	// always inherit the real process streams so their output is live.
	Out    io.Writer
	Logger *zap.Logger
}

// Run executes the named task in every leaf defining it. Returns
// *NoMatchError when nothing under the walked root defines the task,
// *LaunchError when a command cannot be started, and *ExitError carrying the
// child's exact exit code when a command runs and fails.
func Run(ctx context.Context, task string, leaves []*leaf.Leaf, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	matching := make([]*leaf.Leaf, 0, len(leaves))
	for _, l := range leaves {
		if l.Tasks.Has(task) {
			matching = append(matching, l)
		}
	}
	if len(matching) == 0 {
		return &NoMatchError{Task: task}
	}
	sort.Slice(matching, func(i, j int) bool { return matching[i].Dir < matching[j].Dir })

	banner := color.New(color.FgGreen, color.Bold)
	for _, l := range matching {
		if !opts.Quiet {
			banner.Fprintf(out, "Running %s from within %s\n", task, l.Dir)
		}
		logger.Debug("dispatching leaf",
			zap.String("task", task),
			zap.String("dir", l.Dir),
			zap.Int("commands", len(l.Tasks[task])))
		if err := runSteps(ctx, l.Dir, l.Tasks[task]); err != nil {
			return err
		}
	}
	return nil
}

func runSteps(ctx context.Context, dir string, steps leaf.Steps) error {
	for _, command := range steps {
		words, err := shellwords.Parse(command)
		if err != nil {
			return &LaunchError{Command: command, Dir: dir, Err: err}
		}
		if len(words) == 0 {
			return &LaunchError{Command: command, Dir: dir, Err: errors.New("empty command")}
		}
		cmd := exec.CommandContext(ctx, words[0], words[1:]...)
		cmd.Dir = dir
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return &ExitError{Command: command, Dir: dir, Code: exitErr.ExitCode()}
			}
			return &LaunchError{Command: command, Dir: dir, Err: err}
		}
	}
	return nil
}
