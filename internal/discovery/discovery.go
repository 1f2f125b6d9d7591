// Package discovery lists the source files a split request covers.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Filter selects files by extension and ignore patterns. Directory
// traversal is non-recursive: each matched file becomes one engine call.
type Filter struct {
	extensions     map[string]bool
	ignorePatterns []compiledPattern
}

// NewFilter compiles a filter. Empty extensions accept every file that no
// ignore pattern rejects.
func NewFilter(extensions []string, ignorePatterns []string) (*Filter, error) {
	f := &Filter{extensions: make(map[string]bool, len(extensions))}

	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		f.extensions[ext] = true
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		f.ignorePatterns = append(f.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}
	return f, nil
}

// Matches reports whether a file name passes the filter.
func (f *Filter) Matches(name string) bool {
	base := filepath.Base(name)
	for _, p := range f.ignorePatterns {
		if p.glob.Match(base) || p.glob.Match(filepath.ToSlash(name)) {
			return false
		}
	}
	if len(f.extensions) == 0 {
		return true
	}
	return f.extensions[filepath.Ext(name)]
}

// ListDir returns the matching regular files directly inside dir, sorted
// for deterministic batch order.
func (f *Filter) ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !f.Matches(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(files)
	return files, nil
}
