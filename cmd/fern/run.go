// File: cmd/fern/run.go
// Brief: CLI command wiring for 'run'.

package main

import (
	"github.com/spf13/cobra"

	"github.com/kubekattle/fern/internal/dispatch"
	"github.com/kubekattle/fern/internal/leaf"
	"github.com/kubekattle/fern/internal/logging"
)

func newRunCommand(logLevel *string) *cobra.Command {
	var here bool
	var quiet bool
	cmd := &cobra.Command{
		Use:   "run <task>",
		Short: "Run a task in every leaf that defines it",
		Long: `Runs the named task sequentially in every fern.yaml leaf under the current
directory that defines it, each with the leaf's directory as working
directory. The first failing command aborts the whole run and its exit code
becomes fern's exit code.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(*logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			var leaves []*leaf.Leaf
			if here {
				l, err := leaf.Load(leaf.MarkerFileName)
				if err != nil {
					return err
				}
				leaves = []*leaf.Leaf{l}
			} else {
				leaves, err = discoverLeaves(".", logger)
				if err != nil {
					return err
				}
			}
			return dispatch.Run(cmd.Context(), args[0], leaves, dispatch.Options{
				Quiet:  quiet,
				Out:    cmd.OutOrStdout(),
				Logger: logger,
			})
		},
	}
	cmd.Flags().BoolVar(&here, "here", false, "Only run the task from ./fern.yaml, without walking the tree")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the per-leaf banner lines")
	return cmd
}
