// Package create collects a project's options through huh prompts.
package create

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"

	"github.com/jakoblorz/init-project/internal/models"
	"github.com/jakoblorz/init-project/internal/tui"
)

// Flow asks for whatever the prefilled options leave open.
type Flow struct {
	theme *huh.Theme
}

// NewFlow constructs a Flow with the shared prompt theme.
func NewFlow() *Flow {
	return &Flow{theme: tui.NewHuhTheme()}
}

// Run prompts for the project type when prefill has none, then for the
// remaining options starting from prefill's values. A nil result means the
// user aborted.
func (f *Flow) Run(prefill models.Options) (*models.Options, error) {
	opts := prefill

	if !opts.Type.IsValid() {
		pt, err := f.selectType()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, nil
			}
			return nil, err
		}
		opts.Type = pt
	}

	if err := f.details(&opts).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	normalized := opts.Normalize()
	if err := normalized.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &normalized, nil
}

func (f *Flow) selectType() (models.ProjectType, error) {
	var pt models.ProjectType

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Select.Filter.SetEnabled(false)
	keyMap.Select.Submit.SetKeys("enter", " ")
	keyMap.Select.Submit.SetHelp("space/enter", "continue")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.ProjectType]().
				Options(typeOptions()...).
				Value(&pt),
		).
			Title("Project Type").
			Description("What kind of project do you want to create?"),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		return "", err
	}
	return pt, nil
}

// details builds the form for name, language, lint and the backend-only
// database and docker questions.
func (f *Flow) details(opts *models.Options) *huh.Form {
	common := []huh.Field{}
	if opts.Name == "" {
		common = append(common, huh.NewInput().
			Title("Project name").
			Placeholder("my-app").
			Value(&opts.Name).
			Validate(models.ValidateName))
	}
	common = append(common,
		huh.NewConfirm().
			Title("Use TypeScript?").
			Value(&opts.TypeScript),
		huh.NewConfirm().
			Title("Configure ESLint and Prettier?").
			Value(&opts.LintAndPrettier),
	)

	groups := []*huh.Group{
		huh.NewGroup(common...).
			Title(opts.Type.Label()).
			Description("Basic project settings."),
	}

	if opts.Type == models.ProjectTypeBackend {
		if !opts.DB.IsValid() {
			opts.DB = models.DatabaseMongoDB
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[models.Database]().
				Title("Database").
				Options(databaseOptions()...).
				Value(&opts.DB),
			huh.NewConfirm().
				Title("Include Docker?").
				Value(&opts.Docker),
		).
			Title("Backend").
			Description("Persistence and container setup."))
	}

	return huh.NewForm(groups...).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())
}

func typeOptions() []huh.Option[models.ProjectType] {
	opts := make([]huh.Option[models.ProjectType], 0, len(models.ProjectTypes()))
	for _, pt := range models.ProjectTypes() {
		opts = append(opts, huh.NewOption(pt.Label(), pt))
	}
	return opts
}

func databaseOptions() []huh.Option[models.Database] {
	opts := make([]huh.Option[models.Database], 0, len(models.Databases()))
	for _, db := range models.Databases() {
		opts = append(opts, huh.NewOption(db.String(), db))
	}
	return opts
}
