package archetype

import (
	"github.com/jakoblorz/init-project/internal/manifest"
	"github.com/jakoblorz/init-project/internal/models"
	"github.com/jakoblorz/init-project/internal/plan"
	"github.com/jakoblorz/init-project/internal/templates"
)

// BackendDirs are created under the project root before any file is written.
var BackendDirs = []string{
	"src",
	"src/routes",
	"src/controllers",
	"src/models",
	"src/middleware",
	"src/utils",
	"src/config",
}

// BackendFixedKinds are emitted for every backend, whatever the options.
var BackendFixedKinds = []templates.Kind{
	templates.BackendEnv,
	templates.BackendEnvExample,
	templates.BackendGitignore,
	templates.BackendReadme,
	templates.BackendDatabase,
	templates.BackendPingRoute,
	templates.BackendPingController,
	templates.BackendErrorHandler,
	templates.BackendLogger,
	templates.BackendApp,
	templates.BackendIndex,
}

var (
	backendRuntimeDeps = []string{"express", "dotenv", "cors", "helmet"}
	backendDevDeps     = []string{"jest", "nodemon"}
	backendTypedDeps   = []string{
		"typescript", "ts-node", "ts-node-dev",
		"@types/node", "@types/express", "@types/cors", "@types/helmet",
	}
	backendLintDeps = []string{"eslint", "prettier", "eslint-config-prettier", "eslint-plugin-prettier"}
)

func backendDBDeps(db models.Database) []string {
	switch db {
	case models.DatabasePostgreSQL:
		return []string{"pg", "pg-hstore", "sequelize"}
	default:
		return []string{"mongoose"}
	}
}

func backendScripts(typescript bool) []manifest.Entry {
	if typescript {
		return []manifest.Entry{
			{Key: "start", Value: "node dist/index.js"},
			{Key: "dev", Value: "ts-node-dev --respawn index.ts"},
			{Key: "build", Value: "tsc"},
			{Key: "test", Value: "jest"},
		}
	}
	return []manifest.Entry{
		{Key: "start", Value: "node index.js"},
		{Key: "dev", Value: "nodemon index.js"},
		{Key: "build", Value: `echo "No build step needed"`},
		{Key: "test", Value: "jest"},
	}
}

var backendDockerScripts = []manifest.Entry{
	{Key: "db:up", Value: "docker compose -f docker-compose.db.yml up -d"},
	{Key: "db:down", Value: "docker compose -f docker-compose.db.yml down"},
	{Key: "dev:local", Value: "npm run db:up && npm run dev"},
}

// Backend plans Express API projects.
type Backend struct{}

func (Backend) Plan(env Env, opts models.Options) (*plan.Plan, error) {
	if err := checkOptions(models.ProjectTypeBackend, opts); err != nil {
		return nil, err
	}

	p := plan.New(env.WorkDir, opts.Name, models.ProjectTypeBackend)
	p.MakeDirs(BackendDirs...)

	if err := writeAll(p, opts, BackendFixedKinds...); err != nil {
		return nil, err
	}

	p.Run(env.npm(), "init", "-y")
	p.PatchManifest(manifest.ReplaceSection(manifest.Scripts, backendScripts(opts.TypeScript)...))
	if opts.Docker {
		p.PatchManifest(manifest.Set(manifest.Scripts, backendDockerScripts...))
	}

	p.Run(env.npm(), install(backendRuntimeDeps...)...)
	p.Run(env.npm(), devInstall(backendDevDeps...)...)
	p.Run(env.npm(), install(backendDBDeps(opts.DB)...)...)

	if opts.TypeScript {
		p.Run(env.npm(), devInstall(backendTypedDeps...)...)
		if err := writeAll(p, opts, templates.BackendTSConfig); err != nil {
			return nil, err
		}
	}

	if opts.LintAndPrettier {
		p.Run(env.npm(), devInstall(backendLintDeps...)...)
		if opts.TypeScript {
			p.Run(env.npm(), devInstall(typedLintPlugins...)...)
		}
		if err := writeAll(p, opts, templates.BackendESLint, templates.BackendPrettier); err != nil {
			return nil, err
		}
	}

	if opts.Docker {
		if err := writeAll(p, opts,
			templates.BackendDockerfile,
			templates.BackendDockerfileDev,
			templates.BackendCompose,
			templates.BackendComposeDB,
		); err != nil {
			return nil, err
		}
	}

	return p, nil
}
