package source

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// supported extensions for Discover, in match order.
var judgmentExts = map[string]bool{
	".txt":  true,
	".html": true,
	".htm":  true,
	".pdf":  true,
}

// Discover expands glob patterns to judgment files. Supports both
// single-level wildcards (*) and recursive wildcards (**). Plain
// directory paths are walked recursively. Results are deduplicated
// and sorted.
func Discover(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, pattern := range patterns {
		if !containsGlob(pattern) {
			found, err := CollectFiles(pattern)
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				add(f)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if judgmentExts[strings.ToLower(filepath.Ext(m))] {
				add(m)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// CollectFiles walks a directory recursively and returns all judgment
// files inside it, sorted. A path to a single file is returned as-is.
func CollectFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if judgmentExts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}
