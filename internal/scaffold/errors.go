package scaffold

import (
	"errors"
	"fmt"
)

// Sentinel errors for known conditions.
var (
	// ErrTargetExists indicates the project directory is already present.
	ErrTargetExists = errors.New("target directory already exists")

	// ErrPreflight indicates a required tool is missing or too old.
	ErrPreflight = errors.New("preflight check failed")
)

// PreconditionError is raised before any mutation. Nothing on disk was touched.
type PreconditionError struct {
	Message string
	Hint    string
	Cause   error
}

func (e *PreconditionError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Hint)
	}
	return e.Message
}

func (e *PreconditionError) Unwrap() error {
	return e.Cause
}

// FilesystemError reports a failed directory, write or removal step.
// Steps applied before it are left in place.
type FilesystemError struct {
	Op    string
	Path  string
	Cause error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *FilesystemError) Unwrap() error {
	return e.Cause
}

// ProvisioningError reports an external command that failed or exited non-zero.
type ProvisioningError struct {
	Command string
	Dir     string
	Cause   error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("provisioning step %q failed: %v", e.Command, e.Cause)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Cause
}
