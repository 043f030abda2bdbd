package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/init-project/internal/config"
	"github.com/jakoblorz/init-project/internal/filesystem"
	"github.com/jakoblorz/init-project/internal/output"
	"github.com/jakoblorz/init-project/internal/provision"
	"github.com/jakoblorz/init-project/internal/tui/create"
)

// globals holds persistent flag values and the config they load.
type globals struct {
	configFile string
	verbose    bool
	cfg        *config.Config
}

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, runner provision.Runner, prompter Prompter) *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "init-project",
		Short: "Create Express, React and Next.js starter projects",
		Long: `A CLI tool for creating projects with predefined configurations.

Supported archetypes are an Express backend with MongoDB or PostgreSQL,
a React app and a Next.js app, both styled with CSS Modules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.SetupLoggingTo(cmd.ErrOrStderr(), g.verbose)

			cfg, err := config.NewLoader().Load(g.configFile)
			if err != nil {
				return err
			}
			if cfg.File != "" {
				output.Debug("loaded config", "file", cfg.File)
			}
			g.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show what the tool does, then the usage.
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), RenderInfo())
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/init-project/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(NewInitCommand(fs, runner, prompter, g))
	rootCmd.AddCommand(NewInfoCommand())

	return rootCmd
}

// Execute runs the root command against the real filesystem, processes and terminal.
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	runner := provision.NewOSRunner()

	rootCmd := NewRootCommand(fs, runner, create.NewFlow())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), RenderError(err))
		return err
	}

	return nil
}
