package scaffold

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/init-project/internal/filesystem"
	"github.com/jakoblorz/init-project/internal/manifest"
	"github.com/jakoblorz/init-project/internal/models"
	"github.com/jakoblorz/init-project/internal/provision"
)

func newTestDispatcher(settings Settings) (*Dispatcher, *filesystem.MockFileSystem, *provision.MockRunner) {
	mfs := filesystem.NewMockFileSystem()
	runner := provision.NewMockRunner()
	emulateTools(mfs, runner)
	return NewDispatcher(mfs, runner, settings), mfs, runner
}

func TestDispatcher_Backend(t *testing.T) {
	d, mfs, runner := newTestDispatcher(Settings{})

	out, err := d.Create(context.Background(), models.Options{
		Name:            "svc",
		Type:            models.ProjectTypeBackend,
		LintAndPrettier: true,
		DB:              models.DatabasePostgreSQL,
		Docker:          true,
	})
	require.NoError(t, err)
	require.False(t, out.DryRun)
	require.NotNil(t, out.Result)

	for _, path := range []string{
		".env", ".env.example", "src/config/database.js", "src/app.js", "index.js",
		".eslintrc.js", ".prettierrc", "Dockerfile", "docker-compose.db.yml",
	} {
		require.True(t, mfs.Exists("/workspace/svc/"+path), path)
	}

	data, err := mfs.ReadFile("/workspace/svc/package.json")
	require.NoError(t, err)
	require.True(t, manifest.Has(data, manifest.Scripts, "db:up"))
	require.True(t, manifest.Has(data, manifest.Scripts, "dev"))

	require.Contains(t, runner.CommandLines(), "npm install pg pg-hstore sequelize")
	for _, c := range runner.Commands() {
		require.Equal(t, "/workspace/svc", c.Dir)
	}
}

func TestDispatcher_React(t *testing.T) {
	d, mfs, runner := newTestDispatcher(Settings{})

	_, err := d.Create(context.Background(), models.Options{
		Name:            "app",
		Type:            models.ProjectTypeReact,
		TypeScript:      true,
		LintAndPrettier: true,
	})
	require.NoError(t, err)

	require.Equal(t, provision.Command{
		Name: "npx",
		Args: []string{"create-react-app", "app", "--template", "typescript"},
		Dir:  "/workspace",
	}, runner.Commands()[0])

	require.False(t, mfs.Exists("/workspace/app/src/App.css"))
	require.False(t, mfs.Exists("/workspace/app/src/logo.svg"))
	require.True(t, mfs.Exists("/workspace/app/src/App.tsx"))
	require.True(t, mfs.IsDir("/workspace/app/src/hooks"))

	data, err := mfs.ReadFile("/workspace/app/package.json")
	require.NoError(t, err)
	require.True(t, manifest.Has(data, manifest.Scripts, "lint"))
	require.True(t, manifest.Has(data, manifest.Scripts, "start"))
}

func TestDispatcher_NextJSStripsUtilityFramework(t *testing.T) {
	d, mfs, runner := newTestDispatcher(Settings{})

	out, err := d.Create(context.Background(), models.Options{Name: "web", Type: models.ProjectTypeNextJS})
	require.NoError(t, err)

	require.False(t, mfs.Exists("/workspace/web/tailwind.config.js"))
	require.False(t, mfs.Exists("/workspace/web/postcss.config.mjs"))
	require.ElementsMatch(t, []string{"web/tailwind.config.js", "web/postcss.config.mjs"}, out.Result.Removed)

	data, err := mfs.ReadFile("/workspace/web/package.json")
	require.NoError(t, err)
	for _, pkg := range []string{"tailwindcss", "postcss", "autoprefixer"} {
		require.False(t, manifest.Has(data, manifest.Dependencies, pkg), pkg)
		require.False(t, manifest.Has(data, manifest.DevDependencies, pkg), pkg)
	}
	require.True(t, manifest.Has(data, manifest.Dependencies, "next"))

	lines := runner.CommandLines()
	require.Equal(t, "npm install", lines[len(lines)-1])
}

func TestDispatcher_TargetExistsTouchesNothing(t *testing.T) {
	d, mfs, runner := newTestDispatcher(Settings{})
	mfs.AddFile("/workspace/svc/keep.txt", []byte("mine\n"))
	before := mfs.Paths()

	out, err := d.Create(context.Background(), models.Options{
		Name: "svc", Type: models.ProjectTypeBackend, DB: models.DatabaseMongoDB,
	})
	require.ErrorIs(t, err, ErrTargetExists)
	require.Nil(t, out)

	var pre *PreconditionError
	require.ErrorAs(t, err, &pre)
	require.NotEmpty(t, pre.Hint)

	require.Equal(t, before, mfs.Paths())
	require.Empty(t, runner.Commands())
}

func TestDispatcher_InvalidOptions(t *testing.T) {
	d, mfs, runner := newTestDispatcher(Settings{})
	before := mfs.Paths()

	_, err := d.Create(context.Background(), models.Options{Name: "Bad Name", Type: models.ProjectTypeReact})
	var pre *PreconditionError
	require.ErrorAs(t, err, &pre)

	_, err = d.Create(context.Background(), models.Options{Name: "svc", Type: models.ProjectTypeBackend})
	require.ErrorAs(t, err, &pre)

	require.Equal(t, before, mfs.Paths())
	require.Empty(t, runner.Commands())
}

func TestDispatcher_NormalizesFrontendOptions(t *testing.T) {
	d, mfs, _ := newTestDispatcher(Settings{DryRun: true})

	out, err := d.Create(context.Background(), models.Options{
		Name: "app", Type: models.ProjectTypeReact, DB: models.DatabaseMongoDB, Docker: true,
	})
	require.NoError(t, err)
	require.Empty(t, out.Options.DB)
	require.False(t, out.Options.Docker)
	require.False(t, mfs.Exists("/workspace/app"))
}

func TestDispatcher_DryRunPlansOnly(t *testing.T) {
	d, mfs, runner := newTestDispatcher(Settings{DryRun: true})
	runner.RemovePath("npx")
	before := mfs.Paths()

	out, err := d.Create(context.Background(), models.Options{Name: "web", Type: models.ProjectTypeNextJS})
	require.NoError(t, err)
	require.True(t, out.DryRun)
	require.Nil(t, out.Result)
	require.NotEmpty(t, out.Plan.Steps)

	require.Equal(t, before, mfs.Paths())
	require.Empty(t, runner.Commands())
}

func TestDispatcher_PreflightBlocksExecution(t *testing.T) {
	d, mfs, runner := newTestDispatcher(Settings{})
	runner.RemovePath("npx")

	_, err := d.Create(context.Background(), models.Options{Name: "app", Type: models.ProjectTypeReact})
	require.ErrorIs(t, err, ErrPreflight)
	require.False(t, mfs.Exists("/workspace/app"))
	require.Empty(t, runner.Commands())
}

func TestDispatcher_SkipPreflight(t *testing.T) {
	d, _, runner := newTestDispatcher(Settings{SkipPreflight: true})
	runner.SetOutput("node --version", "v10.0.0")

	_, err := d.Create(context.Background(), models.Options{Name: "app", Type: models.ProjectTypeReact})
	require.NoError(t, err)
}

func TestDispatcher_ConfiguredTools(t *testing.T) {
	d, _, runner := newTestDispatcher(Settings{NPM: "pnpm", NPX: "pnpx", SkipPreflight: true})

	_, err := d.Create(context.Background(), models.Options{Name: "web", Type: models.ProjectTypeNextJS})
	require.NoError(t, err)

	cmds := runner.Commands()
	require.Equal(t, "pnpx", cmds[0].Name)
	require.Equal(t, "pnpm", cmds[len(cmds)-1].Name)
}

func TestDispatcher_FailureKeepsPartialOutput(t *testing.T) {
	d, mfs, runner := newTestDispatcher(Settings{})
	runner.FailWithExit(provision.Command{Name: "npm", Args: []string{"install", "express", "dotenv", "cors", "helmet"}}, 1)

	out, err := d.Create(context.Background(), models.Options{
		Name: "svc", Type: models.ProjectTypeBackend, DB: models.DatabaseMongoDB,
	})
	var provErr *ProvisioningError
	require.ErrorAs(t, err, &provErr)

	require.NotNil(t, out)
	require.NotNil(t, out.Result)
	require.True(t, mfs.Exists("/workspace/svc/src/app.js"))
	require.NotContains(t, runner.CommandLines(), "npm install mongoose")
}
