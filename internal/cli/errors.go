package cli

import (
	"errors"

	"github.com/jakoblorz/init-project/internal/scaffold"
	"github.com/jakoblorz/init-project/internal/tui"
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// RenderError formats err for the terminal, showing a precondition's hint
// on its own line.
func RenderError(err error) string {
	var pre *scaffold.PreconditionError
	if errors.As(err, &pre) && pre.Hint != "" {
		return tui.ErrorStyle.Render("✗ "+pre.Message) + "\n  " + tui.HintStyle.Render(pre.Hint)
	}
	return tui.ErrorStyle.Render("✗ " + err.Error())
}
