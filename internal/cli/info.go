package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/init-project/internal/tui"
)

// NewInfoCommand creates a new info command
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show information about the tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), RenderInfo())
			return nil
		},
	}
}

// RenderInfo describes the tool and the supported archetypes.
func RenderInfo() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("=== init-project ==="))
	b.WriteString("\n")
	b.WriteString("A tool for creating projects with predefined configurations.\n\n")
	b.WriteString("Supported project types:\n")
	b.WriteString("  - Backend (Express) with MongoDB or PostgreSQL\n")
	b.WriteString("  - Frontend (React) with CSS Modules\n")
	b.WriteString("  - Frontend (Next.js) with CSS Modules\n\n")
	b.WriteString("To create a new project, run:\n")
	b.WriteString("  " + tui.CommandStyle.Render("init-project init"))
	b.WriteString("\n")

	return b.String()
}
