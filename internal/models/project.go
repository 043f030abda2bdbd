package models

import (
	"fmt"
	"strings"
)

// ProjectType represents the archetype of the generated project.
type ProjectType string

const (
	ProjectTypeBackend ProjectType = "backend"
	ProjectTypeReact   ProjectType = "react"
	ProjectTypeNextJS  ProjectType = "nextjs"
)

// ProjectTypes returns all supported project types in prompt order.
func ProjectTypes() []ProjectType {
	return []ProjectType{ProjectTypeBackend, ProjectTypeReact, ProjectTypeNextJS}
}

// IsValid checks if the project type is supported
func (p ProjectType) IsValid() bool {
	switch p {
	case ProjectTypeBackend, ProjectTypeReact, ProjectTypeNextJS:
		return true
	default:
		return false
	}
}

// String returns the string representation of ProjectType
func (p ProjectType) String() string {
	return string(p)
}

// Label returns the human readable name shown in prompts and summaries.
func (p ProjectType) Label() string {
	switch p {
	case ProjectTypeBackend:
		return "Backend (Express)"
	case ProjectTypeReact:
		return "Frontend (React)"
	case ProjectTypeNextJS:
		return "Frontend (Next.js)"
	default:
		return string(p)
	}
}

// ParseProjectType parses a string into a ProjectType.
// Matching is case-insensitive and accepts "next" / "next.js" for nextjs.
func ParseProjectType(s string) (ProjectType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "next", "next.js":
		normalized = string(ProjectTypeNextJS)
	case "express":
		normalized = string(ProjectTypeBackend)
	}

	pt := ProjectType(normalized)
	if !pt.IsValid() {
		return "", fmt.Errorf("invalid project type: %s (must be backend, react, or nextjs)", s)
	}
	return pt, nil
}

// Database represents the database a backend project connects to.
type Database string

const (
	DatabaseMongoDB    Database = "MongoDB"
	DatabasePostgreSQL Database = "PostgreSQL"
)

// Databases returns all supported databases in prompt order.
func Databases() []Database {
	return []Database{DatabaseMongoDB, DatabasePostgreSQL}
}

// IsValid checks if the database is supported
func (d Database) IsValid() bool {
	switch d {
	case DatabaseMongoDB, DatabasePostgreSQL:
		return true
	default:
		return false
	}
}

// String returns the string representation of Database
func (d Database) String() string {
	return string(d)
}

// Slug is the lowercase identifier used in template variants.
func (d Database) Slug() string {
	return strings.ToLower(string(d))
}

// ParseDatabase parses a string into a Database (case-insensitive).
func ParseDatabase(s string) (Database, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mongodb", "mongo":
		return DatabaseMongoDB, nil
	case "postgresql", "postgres", "pg":
		return DatabasePostgreSQL, nil
	default:
		return "", fmt.Errorf("invalid database: %s (must be MongoDB or PostgreSQL)", s)
	}
}
