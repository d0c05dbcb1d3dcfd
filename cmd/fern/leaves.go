package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kubekattle/fern/internal/finder"
	"github.com/kubekattle/fern/internal/logging"
)

func newLeavesCommand(logLevel *string) *cobra.Command {
	var porcelain bool
	cmd := &cobra.Command{
		Use:   "leaves",
		Short: "List all discovered fern.yaml files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(*logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			paths, err := finder.Find(".", logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if porcelain {
				for _, path := range paths {
					fmt.Fprintln(out, path)
				}
				return nil
			}
			color.New(color.Bold).Fprintln(out, "Considering leaves:")
			for _, path := range paths {
				fmt.Fprintf(out, "  * %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&porcelain, "porcelain", "p", false, "Machine-readable output, one path per line")
	return cmd
}
