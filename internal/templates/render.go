// Package templates holds the embedded content of every generated file and
// renders it for a given option set. Rendering is pure and never touches disk.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sort"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/adrg/frontmatter"

	"github.com/jakoblorz/init-project/internal/models"
)

//go:embed files
var files embed.FS

// Artifact is a rendered file, addressed relative to the project root.
type Artifact struct {
	Kind        Kind
	Path        string
	Content     string
	Description string
}

// Data is what templates see. Optional fields are zero for archetypes that do
// not use them.
type Data struct {
	Name       string
	TypeScript bool
	Lint       bool
	DB         string
	Docker     bool
}

type matter struct {
	Description string `yaml:"description"`
}

// Cell is one entry of the content table: a kind rendered under one variant
// of the option subset it depends on.
type Cell struct {
	Kind    Kind
	Variant string
	File    string
}

// Render produces the artifact for kind under opts.
func Render(kind Kind, opts models.Options) (*Artifact, error) {
	entry, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown template kind: %s", kind)
	}
	if entry.Archetype != opts.Type {
		return nil, fmt.Errorf("template kind %s does not belong to %s projects", kind, opts.Type)
	}

	variant, err := selectVariant(entry.Axis, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to select variant for %s: %w", kind, err)
	}

	file := cellFile(entry.File, variant)
	body, desc, err := load(file)
	if err != nil {
		return nil, err
	}

	content, err := execute(file, body, Data{
		Name:       opts.Name,
		TypeScript: opts.TypeScript,
		Lint:       opts.LintAndPrettier,
		DB:         opts.DB.String(),
		Docker:     opts.Docker,
	})
	if err != nil {
		return nil, err
	}

	if entry.Description != "" {
		desc = entry.Description
	}

	return &Artifact{
		Kind:        kind,
		Path:        PathFor(kind, opts),
		Content:     content,
		Description: desc,
	}, nil
}

// PathFor returns the project-relative path kind is written to under opts.
func PathFor(kind Kind, opts models.Options) string {
	entry := kinds[kind]
	if opts.TypeScript {
		return entry.Path + entry.Typed
	}
	return entry.Path + entry.Plain
}

// Cells enumerates the whole content table.
func Cells() []Cell {
	var cells []Cell
	for kind, entry := range kinds {
		for _, variant := range variantsOf(entry.Axis) {
			cells = append(cells, Cell{Kind: kind, Variant: variant, File: cellFile(entry.File, variant)})
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Kind != cells[j].Kind {
			return cells[i].Kind < cells[j].Kind
		}
		return cells[i].Variant < cells[j].Variant
	})
	return cells
}

func selectVariant(a axis, opts models.Options) (string, error) {
	lang := "js"
	if opts.TypeScript {
		lang = "ts"
	}

	switch a {
	case axisNone:
		return "", nil
	case axisLang:
		return lang, nil
	case axisDB:
		if !opts.DB.IsValid() {
			return "", fmt.Errorf("invalid database: %q", opts.DB)
		}
		return opts.DB.Slug(), nil
	case axisDBLang:
		if !opts.DB.IsValid() {
			return "", fmt.Errorf("invalid database: %q", opts.DB)
		}
		return opts.DB.Slug() + "." + lang, nil
	default:
		return "", fmt.Errorf("unknown axis: %d", a)
	}
}

func variantsOf(a axis) []string {
	langs := []string{"js", "ts"}
	var dbs []string
	for _, db := range models.Databases() {
		dbs = append(dbs, db.Slug())
	}

	switch a {
	case axisLang:
		return langs
	case axisDB:
		return dbs
	case axisDBLang:
		var out []string
		for _, db := range dbs {
			for _, lang := range langs {
				out = append(out, db+"."+lang)
			}
		}
		return out
	default:
		return []string{""}
	}
}

func cellFile(stem, variant string) string {
	if variant == "" {
		return path.Join("files", stem+".tmpl")
	}
	return path.Join("files", stem+"."+variant+".tmpl")
}

// load reads a template file and splits off its front matter.
func load(file string) ([]byte, string, error) {
	data, err := files.ReadFile(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read template %s: %w", file, err)
	}

	var m matter
	rest, err := frontmatter.Parse(bytes.NewReader(data), &m)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse frontmatter of %s: %w", file, err)
	}

	return bytes.TrimLeft(rest, "\r\n"), m.Description, nil
}

func execute(name string, body []byte, data Data) (string, error) {
	tmpl, err := template.New(path.Base(name)).
		Delims("[[", "]]").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

func sortKinds(ks []Kind) {
	sort.Slice(ks, func(i, j int) bool { return ks[i] < ks[j] })
}
