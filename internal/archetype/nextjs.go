package archetype

import (
	"github.com/jakoblorz/init-project/internal/manifest"
	"github.com/jakoblorz/init-project/internal/models"
	"github.com/jakoblorz/init-project/internal/plan"
	"github.com/jakoblorz/init-project/internal/templates"
)

// NextDirs are created at the project root once create-next-app has run.
var NextDirs = []string{"components", "hooks", "utils", "services"}

// UtilityFrameworkPackages are never allowed in a Next.js manifest.
var UtilityFrameworkPackages = []string{"tailwindcss", "postcss", "autoprefixer"}

var utilityFrameworkConfigs = []string{"tailwind.config.*", "postcss.config.*"}

var nextLintScripts = []manifest.Entry{
	{Key: "lint", Value: "next lint"},
	{Key: "format", Value: `prettier --write "**/*.{js,jsx,ts,tsx,css,md}"`},
}

// NextJS plans create-next-app based projects using the app router.
type NextJS struct{}

func (NextJS) Plan(env Env, opts models.Options) (*plan.Plan, error) {
	if err := checkOptions(models.ProjectTypeNextJS, opts); err != nil {
		return nil, err
	}

	p := plan.New(env.WorkDir, opts.Name, models.ProjectTypeNextJS)

	lang := "--javascript"
	if opts.TypeScript {
		lang = "--typescript"
	}
	p.RunInWorkDir(env.npx(), "create-next-app", opts.Name, lang,
		"--eslint", "--no-tailwind", "--no-src-dir", "--app",
		"--import-alias", "@/*", "--use-npm")

	p.MakeDirs(NextDirs...)
	for _, pattern := range utilityFrameworkConfigs {
		p.RemoveMatching(pattern)
	}

	if err := writeAll(p, opts, templates.NextGlobalStyles); err != nil {
		return nil, err
	}
	p.MakeDirs("components/Button")
	if err := writeAll(p, opts,
		templates.NextButtonStyles,
		templates.NextButton,
		templates.NextButtonIndex,
		templates.NextPage,
		templates.NextPageStyles,
		templates.NextReadme,
	); err != nil {
		return nil, err
	}

	if opts.LintAndPrettier {
		if err := writeAll(p, opts, templates.NextPrettier); err != nil {
			return nil, err
		}
		p.Run(env.npm(), devInstall(frontendLintPackages(opts.TypeScript)...)...)
		p.PatchManifest(manifest.Set(manifest.Scripts, nextLintScripts...))
		if err := writeAll(p, opts, templates.NextESLint); err != nil {
			return nil, err
		}
	}

	p.PatchManifest(
		manifest.Delete(manifest.Dependencies, UtilityFrameworkPackages...),
		manifest.Delete(manifest.DevDependencies, UtilityFrameworkPackages...),
	)
	p.Run(env.npm(), "install")

	return p, nil
}
