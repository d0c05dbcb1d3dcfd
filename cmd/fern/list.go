package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kubekattle/fern/internal/catalog"
	"github.com/kubekattle/fern/internal/logging"
)

func newListCommand(logLevel *string) *cobra.Command {
	var porcelain bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every task name defined in any leaf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(*logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			leaves, err := discoverLeaves(".", logger)
			if err != nil {
				return err
			}
			names := catalog.Tasks(leaves)
			out := cmd.OutOrStdout()
			if porcelain {
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			}
			color.New(color.Bold).Fprintln(out, "Available commands are:")
			for _, name := range names {
				fmt.Fprintf(out, "  * %s\n", name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&porcelain, "porcelain", "p", false, "Machine-readable output, one task per line")
	return cmd
}
