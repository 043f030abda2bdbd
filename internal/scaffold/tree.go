package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/jakoblorz/init-project/internal/filesystem"
)

// alwaysSkipped are never listed, with or without a .gitignore.
var alwaysSkipped = map[string]struct{}{
	".git":         {},
	"node_modules": {},
}

// Entry is one path of a generated project, relative to its root.
type Entry struct {
	Path  string
	IsDir bool
}

// ListProject walks root and returns every entry not ignored by the
// project's own .gitignore, in lexical order.
func ListProject(fsys filesystem.FileSystem, root string) ([]Entry, error) {
	ignore, err := loadGitIgnore(fsys, root)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	err = fsys.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if _, skip := alwaysSkipped[d.Name()]; skip && d.IsDir() {
			return filepath.SkipDir
		}

		if ignore != nil {
			if match := ignore.Relative(rel, d.IsDir()); match != nil && match.Ignore() {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		entries = append(entries, Entry{Path: rel, IsDir: d.IsDir()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	return entries, nil
}

func loadGitIgnore(fsys filesystem.FileSystem, root string) (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(root, ".gitignore")
	if !fsys.Exists(ignorePath) {
		return nil, nil
	}

	data, err := fsys.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), root, nil), nil
}

// RenderTree draws entries as an indented tree.
func RenderTree(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		depth := strings.Count(e.Path, "/")
		name := filepath.Base(e.Path)
		if e.IsDir {
			name += "/"
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(name)
		b.WriteString("\n")
	}
	return b.String()
}
