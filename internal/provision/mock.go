package provision

import (
	"context"
	"fmt"
	"sync"
)

// MockRunner implements Runner for testing. It records every command and
// never spawns a process.
type MockRunner struct {
	mu       sync.Mutex
	commands []Command
	outputs  map[string]string
	paths    map[string]string

	// RunFunc, if set, is called for every Run after recording; tests use it
	// to emulate the side effects of the real tools (e.g. writing package.json).
	RunFunc func(cmd Command) error

	// Hooks for testing error scenarios, keyed by Command.String()
	RunErrors    map[string]error
	OutputErrors map[string]error
}

// NewMockRunner creates a MockRunner that resolves npm, npx and node.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		outputs: map[string]string{"node --version": "v20.11.1"},
		paths: map[string]string{
			"npm":  "/usr/bin/npm",
			"npx":  "/usr/bin/npx",
			"node": "/usr/bin/node",
		},
		RunErrors:    make(map[string]error),
		OutputErrors: make(map[string]error),
	}
}

func (m *MockRunner) Run(ctx context.Context, cmd Command) error {
	m.mu.Lock()
	m.commands = append(m.commands, cmd)
	err := m.RunErrors[cmd.String()]
	hook := m.RunFunc
	m.mu.Unlock()

	if err != nil {
		return err
	}
	if hook != nil {
		return hook(cmd)
	}
	return ctx.Err()
}

func (m *MockRunner) Output(ctx context.Context, cmd Command) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.OutputErrors[cmd.String()]; err != nil {
		return "", err
	}
	out, ok := m.outputs[cmd.String()]
	if !ok {
		return "", fmt.Errorf("no output configured for %q", cmd.String())
	}
	return out, nil
}

func (m *MockRunner) LookPath(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p, ok := m.paths[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

// SetOutput configures what Output returns for a command line.
func (m *MockRunner) SetOutput(commandLine, output string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outputs[commandLine] = output
}

// RemovePath makes LookPath fail for name.
func (m *MockRunner) RemovePath(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.paths, name)
}

// FailWithExit makes Run return a non-zero ExitError for the given command line.
func (m *MockRunner) FailWithExit(cmd Command, code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RunErrors[cmd.String()] = &ExitError{Command: cmd, Code: code}
}

// Commands returns every command passed to Run, in order.
func (m *MockRunner) Commands() []Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Command, len(m.commands))
	copy(out, m.commands)
	return out
}

// CommandLines returns Commands rendered as strings.
func (m *MockRunner) CommandLines() []string {
	cmds := m.Commands()
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.String()
	}
	return out
}
