// File: cmd/fern/seed.go
// Brief: CLI command wiring for 'seed'.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kubekattle/fern/internal/leaf"
	"github.com/kubekattle/fern/internal/seed"
)

func newSeedCommand() *cobra.Command {
	var force bool
	var showDiff bool
	cmd := &cobra.Command{
		Use:   "seed <template>",
		Short: "Create a fern.yaml here from a named template",
		Long: `Creates a new fern.yaml in the current directory from the named template in
the global config (` + seed.ConfigPathEnv + ` or ~/` + seed.DefaultConfigName + `). The config
is only read by this command; other commands never touch it. An existing
fern.yaml is not overwritten without --force or an interactive confirmation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			configPath, err := seed.ResolveConfigPath()
			if err != nil {
				return err
			}
			cfg, err := seed.LoadConfig(configPath)
			if err != nil {
				return err
			}

			existing, readErr := os.ReadFile(leaf.MarkerFileName)
			if showDiff {
				if readErr != nil {
					return fmt.Errorf("--diff needs an existing %s: %w", leaf.MarkerFileName, readErr)
				}
				diff, err := seed.RenderDiff(cfg, name, existing)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), diff)
				return nil
			}

			if readErr == nil && !force {
				if !term.IsTerminal(int(os.Stdin.Fd())) {
					return &seed.LeafExistsError{Path: leaf.MarkerFileName}
				}
				prompt := fmt.Sprintf("%s already exists. Overwrite with template %q? (yes/no)", leaf.MarkerFileName, name)
				if err := confirmAction(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), prompt); err != nil {
					return err
				}
				force = true
			}

			if _, err := seed.Seed(cfg, name, ".", force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created new %s file for %s\n", leaf.MarkerFileName, name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing fern.yaml without asking")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show what would change in the existing fern.yaml, without writing")
	return cmd
}
