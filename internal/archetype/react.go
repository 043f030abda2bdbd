package archetype

import (
	"github.com/jakoblorz/init-project/internal/manifest"
	"github.com/jakoblorz/init-project/internal/models"
	"github.com/jakoblorz/init-project/internal/plan"
	"github.com/jakoblorz/init-project/internal/templates"
)

// ReactDirs are created under src/ once create-react-app has run.
var ReactDirs = []string{
	"src/components",
	"src/pages",
	"src/hooks",
	"src/utils",
	"src/services",
	"src/assets",
	"src/styles",
}

// reactBoilerplate is create-react-app output replaced by our own files.
var reactBoilerplate = []string{"src/App.css", "src/logo.svg"}

var frontendLintDeps = []string{"eslint-config-prettier", "eslint-plugin-prettier", "prettier"}

var reactLintScripts = []manifest.Entry{
	{Key: "lint", Value: "eslint src --ext .js,.jsx,.ts,.tsx"},
	{Key: "lint:fix", Value: "eslint src --ext .js,.jsx,.ts,.tsx --fix"},
	{Key: "format", Value: `prettier --write "src/**/*.{js,jsx,ts,tsx,css,md}"`},
}

// React plans create-react-app based projects.
type React struct{}

func (React) Plan(env Env, opts models.Options) (*plan.Plan, error) {
	if err := checkOptions(models.ProjectTypeReact, opts); err != nil {
		return nil, err
	}

	p := plan.New(env.WorkDir, opts.Name, models.ProjectTypeReact)

	args := []string{"create-react-app", opts.Name}
	if opts.TypeScript {
		args = append(args, "--template", "typescript")
	}
	p.RunInWorkDir(env.npx(), args...)

	for _, f := range reactBoilerplate {
		p.Remove(f)
	}
	p.MakeDirs(ReactDirs...)

	if err := writeAll(p, opts,
		templates.ReactGlobalStyles,
		templates.ReactButtonStyles,
		templates.ReactButton,
		templates.ReactApp,
		templates.ReactIndex,
		templates.ReactReadme,
	); err != nil {
		return nil, err
	}

	if opts.LintAndPrettier {
		if err := writeAll(p, opts, templates.ReactPrettier); err != nil {
			return nil, err
		}
		p.Run(env.npm(), devInstall(frontendLintPackages(opts.TypeScript)...)...)
		p.PatchManifest(manifest.Set(manifest.Scripts, reactLintScripts...))
		if err := writeAll(p, opts, templates.ReactESLint); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func frontendLintPackages(typescript bool) []string {
	pkgs := append([]string{}, frontendLintDeps...)
	if typescript {
		pkgs = append(pkgs, typedLintPlugins...)
	}
	return pkgs
}
