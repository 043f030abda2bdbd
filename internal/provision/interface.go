package provision

import (
	"context"
	"fmt"
	"strings"
)

// Command is one external program invocation.
// Dir is an absolute directory, or empty for the current one.
type Command struct {
	Name string
	Args []string
	Dir  string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner provides an abstraction over external processes for testability.
//
// Run blocks until the process exits. Output is streamed to the terminal
// rather than captured, so callers only ever observe the exit status.
type Runner interface {
	// Run executes cmd with inherited stdio. A non-zero exit yields *ExitError.
	Run(ctx context.Context, cmd Command) error

	// Output executes cmd and returns its trimmed stdout.
	Output(ctx context.Context, cmd Command) (string, error)

	// LookPath resolves a program name the way the shell would.
	LookPath(name string) (string, error)
}

// ExitError reports a process that ran but exited non-zero.
type ExitError struct {
	Command Command
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}
