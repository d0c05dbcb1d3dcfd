// main.go bootstraps fern: it builds the root Cobra command and executes it
// with a signal-aware context so an interrupt reaches the foregrounded child.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kubekattle/fern/internal/dispatch"
	"github.com/kubekattle/fern/internal/seed"
	"github.com/kubekattle/fern/internal/version"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	handleError(err)
	if err != nil {
		os.Exit(dispatch.ExitCode(err))
	}
}

func newRootCommand() *cobra.Command {
	logLevel := "info"
	cmd := &cobra.Command{
		Use:   "fern",
		Short: "Run tasks defined in fern.yaml files across a repository",
		Long: strings.TrimSpace(`
fern walks the current directory tree for fern.yaml files ("leaves"), each
mapping task names to one or more shell commands, and runs the requested task
in every leaf that defines it.`),
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level for fern output (debug, info, warn, error)")

	runCmd := newRunCommand(&logLevel)
	listCmd := newListCommand(&logLevel)
	leavesCmd := newLeavesCommand(&logLevel)
	seedCmd := newSeedCommand()
	cmd.AddCommand(
		runCmd,
		listCmd,
		leavesCmd,
		seedCmd,
		newEnvCommand(),
		newVersionCommand(),
	)
	bindViper(cmd, runCmd, listCmd, leavesCmd, seedCmd)
	return cmd
}

// bindViper layers FERN_* environment variables and global config keys under
// any flag the user did not set explicitly. All commands share one viper
// instance, so flags with the same name (list's and leaves' --porcelain) share
// one key: FERN_PORCELAIN applies to both. Keep same-named flags same-meaning.
func bindViper(commands ...*cobra.Command) {
	if len(commands) == 0 {
		return
	}
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("FERN")
	v.AutomaticEnv()
	if path, err := seed.ResolveConfigPath(); err == nil {
		v.SetConfigFile(path)
	}

	cobra.OnInitialize(func() {
		for _, cmd := range commands {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				cobra.CheckErr(err)
			}
			if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
				cobra.CheckErr(err)
			}
		}
		// Best-effort: a missing or broken config must never break commands
		// that don't need it. The seed command does its own strict load.
		_ = v.ReadInConfig()
		for _, cmd := range commands {
			for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
				fs.VisitAll(func(f *pflag.Flag) {
					if f.Changed {
						return
					}
					if !v.IsSet(f.Name) {
						return
					}
					val := fmt.Sprintf("%v", v.Get(f.Name))
					if val != "" {
						_ = f.Value.Set(val)
					}
				})
			}
		}
	})
}

func handleError(err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	var noMatch *dispatch.NoMatchError
	var noConfig *seed.NoConfigError
	switch {
	case errors.As(err, &noMatch):
		message = fmt.Sprintf("%s\nHint: run 'fern list' to see the tasks defined under this directory.", err)
	case errors.As(err, &noConfig):
		message = fmt.Sprintf("%s\nHint: create it, or point %s at your seeds config.", err, seed.ConfigPathEnv)
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}
