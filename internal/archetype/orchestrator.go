// Package archetype turns an option set into the generation plan of one
// project archetype. Planning is pure: nothing here touches disk or spawns
// processes.
package archetype

import (
	"fmt"

	"github.com/jakoblorz/init-project/internal/models"
	"github.com/jakoblorz/init-project/internal/plan"
	"github.com/jakoblorz/init-project/internal/templates"
)

// Env is the process state captured once per invocation.
type Env struct {
	// WorkDir is the directory the project is created in.
	WorkDir string

	// NPM and NPX are the package manager programs to invoke.
	NPM string
	NPX string
}

// DefaultEnv returns an Env using npm and npx from PATH.
func DefaultEnv(workDir string) Env {
	return Env{WorkDir: workDir, NPM: "npm", NPX: "npx"}
}

func (e Env) npm() string {
	if e.NPM == "" {
		return "npm"
	}
	return e.NPM
}

func (e Env) npx() string {
	if e.NPX == "" {
		return "npx"
	}
	return e.NPX
}

// Orchestrator computes the ordered plan for one archetype.
type Orchestrator interface {
	Plan(env Env, opts models.Options) (*plan.Plan, error)
}

// For returns the orchestrator responsible for pt.
func For(pt models.ProjectType) (Orchestrator, error) {
	switch pt {
	case models.ProjectTypeBackend:
		return Backend{}, nil
	case models.ProjectTypeReact:
		return React{}, nil
	case models.ProjectTypeNextJS:
		return NextJS{}, nil
	default:
		return nil, fmt.Errorf("unsupported project type: %q", pt)
	}
}

func checkOptions(pt models.ProjectType, opts models.Options) error {
	if opts.Type != pt {
		return fmt.Errorf("%s orchestrator cannot plan %q projects", pt, opts.Type)
	}
	return opts.Validate()
}

// writeAll renders kinds in order and appends a WriteFile for each.
func writeAll(p *plan.Plan, opts models.Options, kinds ...templates.Kind) error {
	for _, kind := range kinds {
		art, err := templates.Render(kind, opts)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", kind, err)
		}
		p.Write(art.Path, art.Content, art.Description)
	}
	return nil
}

// devInstall builds "install <pkgs...> --save-dev" arguments.
func devInstall(pkgs ...string) []string {
	return append(append([]string{"install"}, pkgs...), "--save-dev")
}

func install(pkgs ...string) []string {
	return append([]string{"install"}, pkgs...)
}

// typedLintPlugins is the parser/plugin pair added to lint setups of typed projects.
var typedLintPlugins = []string{"@typescript-eslint/eslint-plugin", "@typescript-eslint/parser"}
