package create

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/init-project/internal/models"
	"github.com/jakoblorz/init-project/internal/plan"
	"github.com/jakoblorz/init-project/internal/scaffold"
	"github.com/jakoblorz/init-project/internal/tui"
)

// RenderSuccess renders a summary after a project was generated.
func RenderSuccess(outcome *scaffold.Outcome, tree []scaffold.Entry) string {
	var b strings.Builder
	opts := outcome.Options

	b.WriteString(tui.SuccessStyle.Render(fmt.Sprintf("✓ %s project %s created", opts.Type.Label(), opts.Name)))
	b.WriteString("\n\n")

	if outcome.Result != nil && len(outcome.Result.Files) > 0 {
		b.WriteString(tui.HeaderStyle.Render("Files"))
		b.WriteString("\n")
		for _, f := range outcome.Result.Files {
			rel := strings.TrimPrefix(f.Path, outcome.Plan.Root+"/")
			b.WriteString("  " + tui.PathStyle.Render(rel))
			if f.Description != "" {
				b.WriteString("  " + tui.DescStyle.Render(f.Description))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(tree) > 0 {
		b.WriteString(tui.HeaderStyle.Render("Layout"))
		b.WriteString("\n")
		for _, line := range strings.Split(strings.TrimRight(scaffold.RenderTree(tree), "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(tui.HeaderStyle.Render("Next steps"))
	b.WriteString("\n")
	for _, cmd := range NextSteps(opts) {
		b.WriteString("  " + tui.CommandStyle.Render(cmd) + "\n")
	}

	return b.String()
}

// RenderPlan lists the steps a dry run would apply.
func RenderPlan(p *plan.Plan) string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(fmt.Sprintf("Plan for %s (%s)", p.Root, p.Type.Label())))
	b.WriteString("\n")
	for i, step := range p.Steps {
		b.WriteString(fmt.Sprintf("%3d. %s\n", i+1, step))
		if wf, ok := step.(plan.WriteFile); ok && wf.Description != "" {
			b.WriteString("     " + tui.DescStyle.Render(wf.Description) + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(tui.SubtleStyle.Render("dry run: nothing was written"))
	b.WriteString("\n")

	return b.String()
}

// NextSteps are the commands that start the generated project.
func NextSteps(opts models.Options) []string {
	steps := []string{"cd " + opts.Name}
	switch opts.Type {
	case models.ProjectTypeBackend:
		if opts.Docker {
			steps = append(steps, "npm run db:up")
		}
		steps = append(steps, "npm run dev")
	case models.ProjectTypeReact:
		steps = append(steps, "npm start")
	case models.ProjectTypeNextJS:
		steps = append(steps, "npm run dev")
	}
	return steps
}
