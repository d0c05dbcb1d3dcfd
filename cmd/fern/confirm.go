// File: cmd/fern/confirm.go
// Brief: Shared confirmation prompt for destructive operations.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// confirmAction prompts on out and blocks for a "yes" on in. Anything else,
// including EOF or context cancellation, aborts.
func confirmAction(ctx context.Context, in io.Reader, out io.Writer, prompt string) error {
	if out == nil {
		return errors.New("confirmation output is nil")
	}
	fmt.Fprint(out, strings.TrimSpace(prompt)+" ")

	reader := bufio.NewReader(in)
	readResult := make(chan struct {
		line string
		err  error
	}, 1)
	go func() {
		line, err := reader.ReadString('\n')
		readResult <- struct {
			line string
			err  error
		}{line: line, err: err}
	}()

	var line string
	var err error
	select {
	case <-ctx.Done():
		fmt.Fprintln(out)
		return ctx.Err()
	case res := <-readResult:
		line, err = res.line, res.err
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(line), "yes") {
		return errors.New("aborted")
	}
	return nil
}
