package models

import (
	"fmt"
	"regexp"
)

// maxNameLength mirrors the npm package name limit.
const maxNameLength = 214

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Options is the validated option set a project is generated from.
// It is read-only configuration: nothing downstream mutates it.
type Options struct {
	// Name is the project name; it also names the target directory.
	Name string `json:"name"`

	// Type selects the archetype.
	Type ProjectType `json:"projectType"`

	// TypeScript selects the typed language variant.
	TypeScript bool `json:"typescript"`

	// LintAndPrettier enables ESLint and Prettier configuration.
	LintAndPrettier bool `json:"lintAndPrettier"`

	// DB is the backend database. Empty for non-backend types.
	DB Database `json:"db,omitempty"`

	// Docker enables container artifacts. Backend only.
	Docker bool `json:"docker,omitempty"`
}

// ValidateName checks that name can be used both as a directory and as an npm package name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("project name %q is too long (max %d characters)", name, maxNameLength)
	}
	if name == "." || name == ".." || name == "node_modules" {
		return fmt.Errorf("project name %q is reserved", name)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: use lowercase letters, digits, '.', '_' or '-', starting with a letter or digit", name)
	}
	return nil
}

// Validate checks that the option set is complete and internally consistent.
func (o Options) Validate() error {
	if err := ValidateName(o.Name); err != nil {
		return err
	}
	if !o.Type.IsValid() {
		return fmt.Errorf("invalid project type: %q", o.Type)
	}
	if o.Type == ProjectTypeBackend && !o.DB.IsValid() {
		return fmt.Errorf("backend projects require a database (MongoDB or PostgreSQL), got %q", o.DB)
	}
	return nil
}

// Normalize returns a copy with backend-only fields cleared for other archetypes.
func (o Options) Normalize() Options {
	if o.Type != ProjectTypeBackend {
		o.DB = ""
		o.Docker = false
	}
	return o
}

// IsBackend reports whether the options describe a backend project.
func (o Options) IsBackend() bool {
	return o.Type == ProjectTypeBackend
}
