package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/jakoblorz/init-project/internal/filesystem"
	"github.com/jakoblorz/init-project/internal/output"
	"github.com/jakoblorz/init-project/internal/plan"
	"github.com/jakoblorz/init-project/internal/provision"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

// Result records what an execution actually applied, in order.
type Result struct {
	Root     string
	Dirs     []string
	Files    []plan.WriteFile
	Removed  []string
	Commands []plan.RunCommand
	Patched  []string
}

// Executor applies plan steps strictly in order. The first failing step
// aborts the run; nothing is rolled back.
type Executor struct {
	fs     filesystem.FileSystem
	runner provision.Runner
}

// NewExecutor creates a new Executor
func NewExecutor(fs filesystem.FileSystem, runner provision.Runner) *Executor {
	return &Executor{fs: fs, runner: runner}
}

// Execute runs every step of p. The returned Result is valid even on error
// and lists the steps that completed.
func (e *Executor) Execute(ctx context.Context, p *plan.Plan) (*Result, error) {
	res := &Result{Root: p.RootPath()}

	for i, step := range p.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if err := e.apply(ctx, p, step, res); err != nil {
			output.Debug("step failed", "index", i, "step", step.String())
			return res, err
		}
	}

	return res, nil
}

func (e *Executor) apply(ctx context.Context, p *plan.Plan, step plan.Step, res *Result) error {
	switch s := step.(type) {
	case plan.MakeDir:
		output.Debug("creating directory", "path", s.Path)
		if err := e.fs.MkdirAll(p.Abs(s.Path), dirPerm); err != nil {
			return &FilesystemError{Op: "create directory", Path: s.Path, Cause: err}
		}
		res.Dirs = append(res.Dirs, s.Path)

	case plan.WriteFile:
		output.Debug("writing file", "path", s.Path, "bytes", len(s.Content))
		if err := e.fs.WriteFile(p.Abs(s.Path), []byte(s.Content), filePerm); err != nil {
			return &FilesystemError{Op: "write", Path: s.Path, Cause: err}
		}
		res.Files = append(res.Files, s)

	case plan.RemoveFile:
		output.Debug("removing file", "path", s.Path)
		if err := e.fs.Remove(p.Abs(s.Path)); err != nil {
			return &FilesystemError{Op: "remove", Path: s.Path, Cause: err}
		}
		res.Removed = append(res.Removed, s.Path)

	case plan.RemoveMatching:
		matches, err := e.fs.Glob(p.Abs(s.Pattern))
		if err != nil {
			return &FilesystemError{Op: "match", Path: s.Pattern, Cause: err}
		}
		for _, m := range matches {
			rel, err := filepath.Rel(p.WorkDir, m)
			if err != nil {
				rel = m
			}
			output.Debug("removing file", "path", rel)
			if err := e.fs.Remove(m); err != nil {
				return &FilesystemError{Op: "remove", Path: rel, Cause: err}
			}
			res.Removed = append(res.Removed, rel)
		}

	case plan.RunCommand:
		output.Info("running", "cmd", s.CommandLine(), "dir", s.Dir)
		cmd := provision.Command{Name: s.Name, Args: s.Args, Dir: p.Abs(s.Dir)}
		if err := e.runner.Run(ctx, cmd); err != nil {
			return &ProvisioningError{Command: s.CommandLine(), Dir: s.Dir, Cause: err}
		}
		res.Commands = append(res.Commands, s)

	case plan.PatchJSON:
		output.Info("patching", "path", s.Path, "ops", s.Patch.String())
		if err := e.patch(p.Abs(s.Path), s); err != nil {
			return &FilesystemError{Op: "patch", Path: s.Path, Cause: err}
		}
		res.Patched = append(res.Patched, s.Path)

	default:
		return fmt.Errorf("unknown plan step %T", step)
	}

	return nil
}

func (e *Executor) patch(path string, s plan.PatchJSON) error {
	data, err := e.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	patched, err := s.Patch.Apply(data)
	if err != nil {
		return err
	}

	if err := e.fs.WriteFile(path, patched, filePerm); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
