// Package scaffold turns an option set into a project on disk: it owns the
// target directory check, runs the preflight and executes the plan.
package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/init-project/internal/archetype"
	"github.com/jakoblorz/init-project/internal/filesystem"
	"github.com/jakoblorz/init-project/internal/models"
	"github.com/jakoblorz/init-project/internal/output"
	"github.com/jakoblorz/init-project/internal/plan"
	"github.com/jakoblorz/init-project/internal/provision"
)

// Settings tune a Dispatcher.
type Settings struct {
	NPM           string
	NPX           string
	SkipPreflight bool
	MinNode       string
	DryRun        bool
}

// Outcome is what Create produced. Result is nil for dry runs and for
// failures detected before execution started.
type Outcome struct {
	Options models.Options
	Plan    *plan.Plan
	Result  *Result
	DryRun  bool
}

// Dispatcher selects the orchestrator for an option set and runs its plan.
type Dispatcher struct {
	fs       filesystem.FileSystem
	runner   provision.Runner
	settings Settings
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(fs filesystem.FileSystem, runner provision.Runner, settings Settings) *Dispatcher {
	return &Dispatcher{fs: fs, runner: runner, settings: settings}
}

// Create generates the project described by opts in the current directory.
//
// The target directory is checked exactly once, before anything else runs.
// Any failure after that aborts the remaining steps and leaves what was
// already written in place.
func (d *Dispatcher) Create(ctx context.Context, opts models.Options) (*Outcome, error) {
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, &PreconditionError{Message: err.Error(), Cause: err}
	}

	workDir, err := d.fs.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	root := filepath.Join(workDir, opts.Name)
	if d.fs.Exists(root) {
		return nil, &PreconditionError{
			Message: fmt.Sprintf("directory %s already exists", opts.Name),
			Hint:    "choose another project name or remove the directory",
			Cause:   ErrTargetExists,
		}
	}

	if !d.settings.DryRun && !d.settings.SkipPreflight {
		pf := NewPreflight(d.runner, d.settings.MinNode, d.tools()...)
		if err := pf.Check(ctx); err != nil {
			return nil, err
		}
	}

	orchestrator, err := archetype.For(opts.Type)
	if err != nil {
		return nil, err
	}

	p, err := orchestrator.Plan(archetype.Env{
		WorkDir: workDir,
		NPM:     d.settings.NPM,
		NPX:     d.settings.NPX,
	}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to plan %s project: %w", opts.Type, err)
	}

	outcome := &Outcome{Options: opts, Plan: p, DryRun: d.settings.DryRun}
	if d.settings.DryRun {
		output.Debug("dry run, skipping execution", "steps", len(p.Steps))
		return outcome, nil
	}

	output.Info("creating project", "name", opts.Name, "type", opts.Type, "root", root)
	res, err := NewExecutor(d.fs, d.runner).Execute(ctx, p)
	outcome.Result = res
	if err != nil {
		return outcome, err
	}

	return outcome, nil
}

func (d *Dispatcher) tools() []string {
	npm, npx := d.settings.NPM, d.settings.NPX
	if npm == "" {
		npm = "npm"
	}
	if npx == "" {
		npx = "npx"
	}
	return []string{npm, npx, "node"}
}
