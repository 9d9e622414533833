// Package adapter contains filesystem and parsing adapters for the paradigm CLI.
package adapter

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/mouse-blink/paradigm/internal/model"
)

// skipDirNames are directory names that are never descended into, regardless
// of user-supplied exclusions. They cover common dependency, build, cache and
// VCS folders.
var skipDirNames = map[string]struct{}{
	"node_modules":     {},
	"bower_components": {},
	".git":             {},
	"dist":             {},
	"build":            {},
	"out":              {},
	"coverage":         {},
	".next":            {},
	".nuxt":            {},
	".cache":           {},
	".turbo":           {},
	".vercel":          {},
	".parcel-cache":    {},
	".yarn":            {},
	".svn":             {},
	".hg":              {},
}

const (
	tsExt  = ".ts"
	tsxExt = ".tsx"

	// Ambient declaration files carry no implementation and are always skipped.
	declarationSuffix = ".d.ts"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer needs
// when scanning user projects. It hides direct `os` access so the workflow
// logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ListFiles enumerates TypeScript source files under root, applying the
	// built-in skip-list and the user-supplied exclusions. The returned paths
	// are absolute and sorted. Unreadable directories contribute no entries.
	ListFiles(root m.Path, excludes []string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so callers can check existence or
	// distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the local
// filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be wired
// into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ListFiles walks the tree rooted at root and collects candidate source files.
func (a *LocalSourceFSAdapter) ListFiles(root m.Path, excludes []string) ([]m.Path, error) {
	rootStr, err := filepath.Abs(string(root))
	if err != nil {
		return nil, err
	}

	var files []string

	err = filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Permission errors and races are treated as "nothing here".
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		rel, relErr := filepath.Rel(rootStr, path)
		if relErr != nil {
			return nil
		}

		if info.IsDir() {
			if path == rootStr {
				return nil
			}

			if _, skip := skipDirNames[info.Name()]; skip {
				return filepath.SkipDir
			}

			if matchesExclusion(rel, excludes) {
				return filepath.SkipDir
			}

			return nil
		}

		if !isSourceFile(info.Name()) {
			return nil
		}

		if matchesExclusion(rel, excludes) {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)

	paths := make([]m.Path, 0, len(files))
	for _, f := range files {
		paths = append(paths, m.Path(f))
	}

	return paths, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// isSourceFile reports whether name is a recognized TypeScript source file.
// Ambient declaration files (*.d.ts) are excluded regardless of other filters.
func isSourceFile(name string) bool {
	if strings.HasSuffix(name, declarationSuffix) {
		return false
	}

	return strings.HasSuffix(name, tsExt) || strings.HasSuffix(name, tsxExt)
}

// matchesExclusion reports whether the slash-separated relative path matches
// any user exclusion. A plain entry is a substring test; an entry containing
// glob metacharacters is matched with doublestar instead.
func matchesExclusion(rel string, excludes []string) bool {
	if len(excludes) == 0 {
		return false
	}

	slashRel := filepath.ToSlash(rel)

	for _, pattern := range excludes {
		if pattern == "" {
			continue
		}

		if strings.ContainsAny(pattern, "*?[{") {
			if matched, err := doublestar.Match(pattern, slashRel); err == nil && matched {
				return true
			}

			continue
		}

		if strings.Contains(slashRel, pattern) {
			return true
		}
	}

	return false
}
