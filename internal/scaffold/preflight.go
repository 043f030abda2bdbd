package scaffold

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/jakoblorz/init-project/internal/provision"
)

// DefaultMinNode is the oldest Node.js release the generated projects support.
const DefaultMinNode = "v14.0.0"

// Preflight verifies that the external tools a plan needs are installed.
type Preflight struct {
	runner  provision.Runner
	tools   []string
	minNode string
}

// NewPreflight creates a Preflight requiring tools and node >= minNode.
func NewPreflight(runner provision.Runner, minNode string, tools ...string) *Preflight {
	if minNode == "" {
		minNode = DefaultMinNode
	}
	return &Preflight{runner: runner, tools: tools, minNode: canonicalVersion(minNode)}
}

// Check returns a *PreconditionError wrapping ErrPreflight on the first problem.
func (p *Preflight) Check(ctx context.Context) error {
	for _, tool := range p.tools {
		if _, err := p.runner.LookPath(tool); err != nil {
			return &PreconditionError{
				Message: fmt.Sprintf("%s is not installed or not on PATH", tool),
				Hint:    "install Node.js from https://nodejs.org or pass --skip-preflight",
				Cause:   fmt.Errorf("%w: %v", ErrPreflight, err),
			}
		}
	}

	if !semver.IsValid(p.minNode) {
		return &PreconditionError{
			Message: fmt.Sprintf("invalid minimum node version %q", p.minNode),
			Cause:   ErrPreflight,
		}
	}

	out, err := p.runner.Output(ctx, provision.Command{Name: "node", Args: []string{"--version"}})
	if err != nil {
		return &PreconditionError{
			Message: "could not determine the installed node version",
			Cause:   fmt.Errorf("%w: %v", ErrPreflight, err),
		}
	}

	version := canonicalVersion(out)
	if !semver.IsValid(version) {
		return &PreconditionError{
			Message: fmt.Sprintf("unrecognized node version %q", out),
			Cause:   ErrPreflight,
		}
	}
	if semver.Compare(version, p.minNode) < 0 {
		return &PreconditionError{
			Message: fmt.Sprintf("node %s is too old, %s or newer is required", version, p.minNode),
			Hint:    "upgrade Node.js or pass --skip-preflight",
			Cause:   ErrPreflight,
		}
	}

	return nil
}

func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
