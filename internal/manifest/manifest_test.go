package manifest

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

const npmInit = `{
  "name": "svc",
  "version": "1.0.0",
  "description": "",
  "main": "index.js",
  "scripts": {
    "test": "echo \"Error: no test specified\" && exit 1"
  },
  "keywords": [],
  "author": "",
  "license": "ISC"
}
`

const nextManifest = `{
  "name": "web",
  "version": "0.1.0",
  "private": true,
  "scripts": {"dev": "next dev", "build": "next build", "start": "next start", "lint": "next lint"},
  "dependencies": {"next": "14.2.3", "react": "^18", "react-dom": "^18", "tailwindcss": "^3.4.1"},
  "devDependencies": {"@types/node": "^20", "postcss": "^8", "autoprefixer": "^10", "eslint": "^8"}
}`

func TestPatch_ReplaceSection(t *testing.T) {
	patch := Patch{ReplaceSection(Scripts,
		Entry{"start", "node index.js"},
		Entry{"dev", "nodemon index.js"},
		Entry{"build", `echo "No build step needed"`},
		Entry{"test", "jest"},
	)}

	out, err := patch.Apply([]byte(npmInit))
	require.NoError(t, err)

	scripts, err := Read(out, Scripts)
	require.NoError(t, err)
	require.Equal(t, []Entry{
		{"start", "node index.js"},
		{"dev", "nodemon index.js"},
		{"build", `echo "No build step needed"`},
		{"test", "jest"},
	}, scripts)

	snaps.MatchSnapshot(t, string(out))
}

func TestPatch_SetKeepsExistingEntries(t *testing.T) {
	patch := Patch{Set(Scripts,
		Entry{"lint", "eslint src --ext .js,.jsx,.ts,.tsx"},
		Entry{"format", `prettier --write "src/**/*.{js,jsx,ts,tsx,css,md}"`},
	)}

	in := []byte(`{"name":"app","scripts":{"start":"react-scripts start","test":"react-scripts test"}}`)
	out, err := patch.Apply(in)
	require.NoError(t, err)

	scripts, err := Read(out, Scripts)
	require.NoError(t, err)
	require.Equal(t, []Entry{
		{"start", "react-scripts start"},
		{"test", "react-scripts test"},
		{"lint", "eslint src --ext .js,.jsx,.ts,.tsx"},
		{"format", `prettier --write "src/**/*.{js,jsx,ts,tsx,css,md}"`},
	}, scripts)
}

func TestPatch_SetOverwritesInPlace(t *testing.T) {
	in := []byte(`{"scripts":{"dev":"next dev","lint":"eslint","start":"next start"}}`)
	out, err := Patch{Set(Scripts, Entry{"lint", "next lint"})}.Apply(in)
	require.NoError(t, err)

	scripts, err := Read(out, Scripts)
	require.NoError(t, err)
	require.Equal(t, []Entry{{"dev", "next dev"}, {"lint", "next lint"}, {"start", "next start"}}, scripts)
}

func TestPatch_DeleteStripsUtilityFramework(t *testing.T) {
	patch := Patch{
		Delete(Dependencies, "tailwindcss", "postcss", "autoprefixer"),
		Delete(DevDependencies, "tailwindcss", "postcss", "autoprefixer"),
	}

	out, err := patch.Apply([]byte(nextManifest))
	require.NoError(t, err)

	for _, section := range []Section{Dependencies, DevDependencies} {
		for _, key := range []string{"tailwindcss", "postcss", "autoprefixer"} {
			require.False(t, Has(out, section, key), "%s.%s should be gone", section, key)
		}
	}
	require.True(t, Has(out, Dependencies, "next"))
	require.True(t, Has(out, DevDependencies, "@types/node"))
	require.True(t, Has(out, DevDependencies, "eslint"))

	snaps.MatchSnapshot(t, string(out))
}

func TestPatch_DeleteMissingIsNoop(t *testing.T) {
	in := []byte(`{"name":"web","dependencies":{"next":"14.2.3"}}`)
	out, err := Patch{
		Delete(Dependencies, "tailwindcss"),
		Delete(DevDependencies, "postcss"),
	}.Apply(in)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"name\": \"web\",\n  \"dependencies\": {\n    \"next\": \"14.2.3\"\n  }\n}\n", string(out))
}

func TestPatch_PreservesUnrelatedKeys(t *testing.T) {
	out, err := Patch{ReplaceSection(Scripts, Entry{"start", "node index.js"})}.Apply([]byte(npmInit))
	require.NoError(t, err)

	require.Contains(t, string(out), `"license": "ISC"`)
	require.Contains(t, string(out), `"keywords": []`)
	require.Contains(t, string(out), `"main": "index.js"`)
}

func TestPatch_ScopedKeys(t *testing.T) {
	in := []byte(`{"devDependencies":{"@typescript-eslint/parser":"^7","prettier":"^3"}}`)
	require.True(t, Has(in, DevDependencies, "@typescript-eslint/parser"))

	out, err := Patch{Delete(DevDependencies, "@typescript-eslint/parser")}.Apply(in)
	require.NoError(t, err)
	require.False(t, Has(out, DevDependencies, "@typescript-eslint/parser"))
	require.True(t, Has(out, DevDependencies, "prettier"))
}

func TestPatch_RejectsOtherSections(t *testing.T) {
	_, err := Patch{Set(Section("name"), Entry{"x", "y"})}.Apply([]byte(npmInit))
	require.Error(t, err)
}

func TestPatch_RejectsInvalidJSON(t *testing.T) {
	_, err := Patch{}.Apply([]byte(`{"name":`))
	require.Error(t, err)

	_, err = Patch{}.Apply([]byte(`["not", "an", "object"]`))
	require.Error(t, err)
}

func TestPatch_String(t *testing.T) {
	patch := Patch{
		Set(Scripts, Entry{"lint", "next lint"}, Entry{"format", "prettier"}),
		Delete(Dependencies, "tailwindcss"),
	}
	require.Equal(t, "set scripts [lint, format]; delete dependencies [tailwindcss]", patch.String())
}
