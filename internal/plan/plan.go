// Package plan describes a project generation as an ordered list of steps.
// A plan is data only; internal/scaffold executes it.
package plan

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/init-project/internal/manifest"
	"github.com/jakoblorz/init-project/internal/models"
)

// Step is one unit of work. The set of step types is closed.
type Step interface {
	fmt.Stringer
	isStep()
}

// MakeDir creates a directory and any missing parents.
type MakeDir struct {
	Path string
}

// WriteFile writes Content to Path, replacing any existing file.
type WriteFile struct {
	Path        string
	Content     string
	Description string
}

// RemoveFile deletes a file the scaffolding tool is expected to have produced.
// A missing file is an error.
type RemoveFile struct {
	Path string
}

// RemoveMatching deletes every file matching a glob. No match is fine.
type RemoveMatching struct {
	Pattern string
}

// RunCommand runs an external program in Dir and waits for it.
type RunCommand struct {
	Name string
	Args []string
	Dir  string
}

// PatchJSON applies a scoped manifest patch to the file at Path.
type PatchJSON struct {
	Path  string
	Patch manifest.Patch
}

func (MakeDir) isStep()        {}
func (WriteFile) isStep()      {}
func (RemoveFile) isStep()     {}
func (RemoveMatching) isStep() {}
func (RunCommand) isStep()     {}
func (PatchJSON) isStep()      {}

func (s MakeDir) String() string        { return "mkdir " + s.Path }
func (s WriteFile) String() string      { return "write " + s.Path }
func (s RemoveFile) String() string     { return "remove " + s.Path }
func (s RemoveMatching) String() string { return "remove " + s.Pattern }
func (s PatchJSON) String() string      { return fmt.Sprintf("patch %s (%s)", s.Path, s.Patch) }

func (s RunCommand) String() string {
	return fmt.Sprintf("run %s (in %s)", s.CommandLine(), s.Dir)
}

// CommandLine renders the command as it would be typed.
func (s RunCommand) CommandLine() string {
	return strings.Join(append([]string{s.Name}, s.Args...), " ")
}

// Plan is the full, ordered recipe for one project.
// Step paths and command directories are relative to WorkDir.
type Plan struct {
	WorkDir string
	Root    string
	Type    models.ProjectType
	Steps   []Step
}

// New creates an empty plan for a project named root inside workDir.
func New(workDir, root string, pt models.ProjectType) *Plan {
	return &Plan{WorkDir: workDir, Root: root, Type: pt}
}

// RootPath is the absolute path of the project directory.
func (p *Plan) RootPath() string {
	return filepath.Join(p.WorkDir, p.Root)
}

// Abs resolves a plan-relative path against WorkDir.
func (p *Plan) Abs(rel string) string {
	return filepath.Join(p.WorkDir, rel)
}

// InRoot joins elem onto the project root, relative to WorkDir.
func (p *Plan) InRoot(elem ...string) string {
	return filepath.Join(append([]string{p.Root}, elem...)...)
}

func (p *Plan) add(s Step) *Plan {
	p.Steps = append(p.Steps, s)
	return p
}

// MakeDirs appends one MakeDir per project-relative directory.
func (p *Plan) MakeDirs(dirs ...string) *Plan {
	for _, d := range dirs {
		p.add(MakeDir{Path: p.InRoot(d)})
	}
	return p
}

// Write appends a WriteFile for a project-relative path.
func (p *Plan) Write(rel, content, description string) *Plan {
	return p.add(WriteFile{Path: p.InRoot(rel), Content: content, Description: description})
}

// Remove appends a RemoveFile for a project-relative path.
func (p *Plan) Remove(rel string) *Plan {
	return p.add(RemoveFile{Path: p.InRoot(rel)})
}

// RemoveMatching appends a RemoveMatching for a project-relative glob.
func (p *Plan) RemoveMatching(pattern string) *Plan {
	return p.add(RemoveMatching{Pattern: p.InRoot(pattern)})
}

// Run appends a command executed inside the project root.
func (p *Plan) Run(name string, args ...string) *Plan {
	return p.add(RunCommand{Name: name, Args: args, Dir: p.Root})
}

// RunInWorkDir appends a command executed in WorkDir, used for tools that
// create the project directory themselves.
func (p *Plan) RunInWorkDir(name string, args ...string) *Plan {
	return p.add(RunCommand{Name: name, Args: args, Dir: "."})
}

// PatchManifest appends a patch of the project's package.json.
func (p *Plan) PatchManifest(ops ...manifest.Op) *Plan {
	return p.add(PatchJSON{Path: p.InRoot(manifest.FileName), Patch: manifest.Patch(ops)})
}

// Dirs lists every MakeDir path in order.
func (p *Plan) Dirs() []string {
	var out []string
	for _, s := range p.Steps {
		if d, ok := s.(MakeDir); ok {
			out = append(out, d.Path)
		}
	}
	return out
}

// Files lists every WriteFile step in order.
func (p *Plan) Files() []WriteFile {
	var out []WriteFile
	for _, s := range p.Steps {
		if f, ok := s.(WriteFile); ok {
			out = append(out, f)
		}
	}
	return out
}

// File returns the WriteFile step for path, if any.
func (p *Plan) File(path string) (WriteFile, bool) {
	for _, f := range p.Files() {
		if f.Path == path {
			return f, true
		}
	}
	return WriteFile{}, false
}

// Commands lists every RunCommand step in order.
func (p *Plan) Commands() []RunCommand {
	var out []RunCommand
	for _, s := range p.Steps {
		if c, ok := s.(RunCommand); ok {
			out = append(out, c)
		}
	}
	return out
}

// Patches lists every PatchJSON step in order.
func (p *Plan) Patches() []PatchJSON {
	var out []PatchJSON
	for _, s := range p.Steps {
		if pj, ok := s.(PatchJSON); ok {
			out = append(out, pj)
		}
	}
	return out
}
