package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/init-project/internal/filesystem"
	"github.com/jakoblorz/init-project/internal/models"
	"github.com/jakoblorz/init-project/internal/output"
	"github.com/jakoblorz/init-project/internal/provision"
	"github.com/jakoblorz/init-project/internal/scaffold"
	"github.com/jakoblorz/init-project/internal/tui/create"
)

// Prompter collects the options a flag set leaves open. A nil result
// means the user aborted.
type Prompter interface {
	Run(prefill models.Options) (*models.Options, error)
}

// InitCommand handles the init command
type InitCommand struct {
	fs       filesystem.FileSystem
	runner   provision.Runner
	prompter Prompter
	globals  *globals

	name          string
	projectType   string
	typescript    bool
	lint          bool
	db            string
	docker        bool
	dryRun        bool
	skipPreflight bool
}

// NewInitCommand creates a new init command
func NewInitCommand(fs filesystem.FileSystem, runner provision.Runner, prompter Prompter, g *globals) *cobra.Command {
	cmd := &InitCommand{fs: fs, runner: runner, prompter: prompter, globals: g}

	cobraCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new project",
		Long: `Create a new project in a new directory below the current one.

Options not given as flags are asked for interactively. When both --name
and --type are given no prompt is shown and config defaults fill the rest.`,
		Example: `  init-project init
  init-project init --name api --type backend --db postgresql --docker
  init-project init --name web --type nextjs --typescript --dry-run`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.name, "name", "", "project name, also the directory name")
	cobraCmd.Flags().StringVar(&cmd.projectType, "type", "", "project type (backend, react, nextjs)")
	cobraCmd.Flags().BoolVar(&cmd.typescript, "typescript", false, "use TypeScript")
	cobraCmd.Flags().BoolVar(&cmd.lint, "lint", false, "configure ESLint and Prettier")
	cobraCmd.Flags().StringVar(&cmd.db, "db", "", "database for backend projects (mongodb, postgresql)")
	cobraCmd.Flags().BoolVar(&cmd.docker, "docker", false, "add Docker files to backend projects")
	cobraCmd.Flags().BoolVar(&cmd.dryRun, "dry-run", false, "print the plan without creating anything")
	cobraCmd.Flags().BoolVar(&cmd.skipPreflight, "skip-preflight", false, "do not check for npm, npx and node first")

	return cobraCmd
}

// Run executes the init command
func (c *InitCommand) Run(cmd *cobra.Command, args []string) error {
	prefill, err := c.prefill(cmd)
	if err != nil {
		return err
	}

	opts := prefill
	if prefill.Name == "" || prefill.Type == "" {
		result, err := c.prompter.Run(prefill)
		if err != nil {
			return fmt.Errorf("failed to run prompts: %w", err)
		}
		if result == nil {
			output.Info("aborted, nothing was created")
			return nil
		}
		opts = *result
	}

	cfg := c.globals.cfg
	dispatcher := scaffold.NewDispatcher(c.fs, c.runner, scaffold.Settings{
		NPM:           cfg.Tools.NPM,
		NPX:           cfg.Tools.NPX,
		SkipPreflight: c.skipPreflight || !cfg.Preflight.Enabled,
		MinNode:       cfg.Preflight.MinNode,
		DryRun:        c.dryRun,
	})

	outcome, err := dispatcher.Create(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if outcome.DryRun {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), create.RenderPlan(outcome.Plan))
		return nil
	}

	tree, err := scaffold.ListProject(c.fs, outcome.Result.Root)
	if err != nil {
		// The project exists at this point; a missing layout is cosmetic.
		output.Warn("could not list project", "err", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), create.RenderSuccess(outcome, tree))

	return nil
}

// prefill merges config defaults with explicitly set flags.
func (c *InitCommand) prefill(cmd *cobra.Command) (models.Options, error) {
	opts := c.globals.cfg.DefaultOptions()
	flags := cmd.Flags()

	opts.Name = c.name
	if c.name != "" {
		if err := models.ValidateName(c.name); err != nil {
			return opts, err
		}
	}

	if c.projectType != "" {
		pt, err := models.ParseProjectType(c.projectType)
		if err != nil {
			return opts, err
		}
		opts.Type = pt
	}

	if flags.Changed("typescript") {
		opts.TypeScript = c.typescript
	}
	if flags.Changed("lint") {
		opts.LintAndPrettier = c.lint
	}
	if flags.Changed("db") {
		db, err := models.ParseDatabase(c.db)
		if err != nil {
			return opts, err
		}
		opts.DB = db
	}
	if flags.Changed("docker") {
		opts.Docker = c.docker
	}

	return opts, nil
}
