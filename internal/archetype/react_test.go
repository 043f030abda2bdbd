package archetype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/init-project/internal/models"
	"github.com/jakoblorz/init-project/internal/plan"
)

func TestReact_Plain(t *testing.T) {
	p, err := React{}.Plan(testEnv, models.Options{Name: "app", Type: models.ProjectTypeReact})
	require.NoError(t, err)

	require.Equal(t, plan.RunCommand{Name: "npx", Args: []string{"create-react-app", "app"}, Dir: "."}, p.Steps[0])
	require.Equal(t, plan.RemoveFile{Path: "app/src/App.css"}, p.Steps[1])
	require.Equal(t, plan.RemoveFile{Path: "app/src/logo.svg"}, p.Steps[2])

	require.Equal(t, []string{
		"app/src/components", "app/src/pages", "app/src/hooks", "app/src/utils",
		"app/src/services", "app/src/assets", "app/src/styles",
	}, p.Dirs())

	require.Equal(t, []string{
		"src/styles/globals.css",
		"src/components/Button.module.css",
		"src/components/Button.jsx",
		"src/App.js",
		"src/index.js",
		"README.md",
	}, relFiles(p))

	require.Len(t, p.Commands(), 1)
	require.Empty(t, p.Patches())
}

func TestReact_TypedLint(t *testing.T) {
	p, err := React{}.Plan(testEnv, models.Options{
		Name: "app", Type: models.ProjectTypeReact, TypeScript: true, LintAndPrettier: true,
	})
	require.NoError(t, err)

	require.Equal(t, []string{
		"npx create-react-app app --template typescript",
		"npm install eslint-config-prettier eslint-plugin-prettier prettier @typescript-eslint/eslint-plugin @typescript-eslint/parser --save-dev",
	}, commandLines(p))
	require.Equal(t, "app", p.Commands()[1].Dir)

	require.Equal(t, []string{
		"src/styles/globals.css",
		"src/components/Button.module.css",
		"src/components/Button.tsx",
		"src/App.tsx",
		"src/index.tsx",
		"README.md",
		".prettierrc",
		".eslintrc.js",
	}, relFiles(p))

	data := applyPatches(t, p, `{"name":"app","scripts":{"start":"react-scripts start","test":"react-scripts test"}}`)
	require.Equal(t, []string{"start", "test", "lint", "lint:fix", "format"}, scriptKeys(t, data))

	eslint, _ := p.File("app/.eslintrc.js")
	require.Contains(t, eslint.Content, "'react-app'")
	require.Contains(t, eslint.Content, "plugin:@typescript-eslint/recommended")
}

func TestReact_LintOrdering(t *testing.T) {
	p, err := React{}.Plan(testEnv, models.Options{Name: "app", Type: models.ProjectTypeReact, LintAndPrettier: true})
	require.NoError(t, err)

	var tail []string
	for _, s := range p.Steps[len(p.Steps)-4:] {
		tail = append(tail, strings.SplitN(s.String(), " ", 2)[0]+" "+lastPathElem(s))
	}
	require.Equal(t, []string{"write .prettierrc", "run npm", "patch package.json", "write .eslintrc.js"}, tail)
}

func TestReact_ScaffoldRunsFirst(t *testing.T) {
	for _, ts := range []bool{false, true} {
		p, err := React{}.Plan(testEnv, models.Options{Name: "app", Type: models.ProjectTypeReact, TypeScript: ts})
		require.NoError(t, err)
		_, ok := p.Steps[0].(plan.RunCommand)
		require.True(t, ok, "create-react-app must run before anything else")
	}
}

func lastPathElem(s plan.Step) string {
	switch st := s.(type) {
	case plan.WriteFile:
		return st.Path[strings.LastIndex(st.Path, "/")+1:]
	case plan.PatchJSON:
		return st.Path[strings.LastIndex(st.Path, "/")+1:]
	case plan.RunCommand:
		return st.Name
	default:
		return s.String()
	}
}
