package dispatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/kubekattle/fern/internal/leaf"
)

func leafIn(t *testing.T, dir string, tasks leaf.TaskSet) *leaf.Leaf {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	return &leaf.Leaf{
		Path:  filepath.Join(dir, leaf.MarkerFileName),
		Dir:   dir,
		Tasks: tasks,
	}
}

func TestRunNoMatchingLeaf(t *testing.T) {
	l := leafIn(t, t.TempDir(), leaf.TaskSet{"fmt": {"true"}})
	err := Run(context.Background(), "deploy", []*leaf.Leaf{l}, Options{Quiet: true})
	var noMatch *NoMatchError
	if !errors.As(err, &noMatch) {
		t.Fatalf("expected *NoMatchError, got %T: %v", err, err)
	}
	if noMatch.Task != "deploy" {
		t.Fatalf("expected error to carry task name, got %q", noMatch.Task)
	}
	if code := ExitCode(err); code != 2 {
		t.Fatalf("expected the distinct no-match exit code 2, got %d", code)
	}
}

func TestRunNoLeavesAtAll(t *testing.T) {
	err := Run(context.Background(), "test", nil, Options{Quiet: true})
	var noMatch *NoMatchError
	if !errors.As(err, &noMatch) {
		t.Fatalf("expected *NoMatchError, got %T: %v", err, err)
	}
}

func TestRunUsesLeafDirAsWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	l := leafIn(t, dir, leaf.TaskSet{"touch": {"touch ran.txt"}})
	if err := Run(context.Background(), "touch", []*leaf.Leaf{l}, Options{Quiet: true}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ran.txt")); err != nil {
		t.Fatalf("expected ran.txt in the leaf directory: %v", err)
	}
}

func TestRunVisitsAllMatchingLeavesInStableOrder(t *testing.T) {
	root := t.TempDir()
	log := filepath.Join(root, "order.log")
	var leaves []*leaf.Leaf
	// Built in reverse to prove the dispatcher sorts by directory.
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		dir := filepath.Join(root, name)
		cmd := fmt.Sprintf("sh -c \"echo %s >> %s\"", name, log)
		leaves = append(leaves, leafIn(t, dir, leaf.TaskSet{"test": {cmd}}))
	}
	if err := Run(context.Background(), "test", leaves, Options{Quiet: true}); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, err := os.ReadFile(log)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	want := "alpha\nbravo\ncharlie\n"
	if string(got) != want {
		t.Fatalf("expected leaves visited in order %q, got %q", want, got)
	}
}

func TestRunFailFastWithinLeaf(t *testing.T) {
	dir := t.TempDir()
	l := leafIn(t, dir, leaf.TaskSet{"test": {
		"sh -c \"exit 3\"",
		"touch never.txt",
	}})
	err := Run(context.Background(), "test", []*leaf.Leaf{l}, Options{Quiet: true})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T: %v", err, err)
	}
	if exitErr.Code != 3 {
		t.Fatalf("expected exit code 3 to propagate, got %d", exitErr.Code)
	}
	if code := ExitCode(err); code != 3 {
		t.Fatalf("ExitCode: expected 3, got %d", code)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "never.txt")); !os.IsNotExist(statErr) {
		t.Fatalf("second command must not run after the first fails")
	}
}

func TestRunFailFastAcrossLeaves(t *testing.T) {
	root := t.TempDir()
	first := leafIn(t, filepath.Join(root, "a"), leaf.TaskSet{"test": {"false"}})
	second := leafIn(t, filepath.Join(root, "b"), leaf.TaskSet{"test": {"touch never.txt"}})
	err := Run(context.Background(), "test", []*leaf.Leaf{second, first}, Options{Quiet: true})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T: %v", err, err)
	}
	if _, statErr := os.Stat(filepath.Join(second.Dir, "never.txt")); !os.IsNotExist(statErr) {
		t.Fatalf("later leaf must not run after an earlier one fails")
	}
}

func TestRunMissingExecutableIsALaunchError(t *testing.T) {
	l := leafIn(t, t.TempDir(), leaf.TaskSet{"test": {"definitely-not-a-real-binary-xyz --flag"}})
	err := Run(context.Background(), "test", []*leaf.Leaf{l}, Options{Quiet: true})
	var launchErr *LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("expected *LaunchError, got %T: %v", err, err)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Fatalf("expected the error chain to contain exec.ErrNotFound, got: %v", err)
	}
}

func TestRunBannerNamesTaskAndDir(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	l := leafIn(t, dir, leaf.TaskSet{"fmt": {"true"}})
	var out bytes.Buffer
	if err := Run(context.Background(), "fmt", []*leaf.Leaf{l}, Options{Out: &out}); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := fmt.Sprintf("Running fmt from within %s\n", dir)
	if out.String() != want {
		t.Fatalf("expected banner %q, got %q", want, out.String())
	}
}

func TestRunQuietSuppressesBanner(t *testing.T) {
	l := leafIn(t, t.TempDir(), leaf.TaskSet{"fmt": {"true"}})
	var out bytes.Buffer
	if err := Run(context.Background(), "fmt", []*leaf.Leaf{l}, Options{Quiet: true, Out: &out}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no banner output, got %q", out.String())
	}
}
