// Package discovery finds source files across a project root and watches
// them for changes.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/archlane/semindex/pkg/lang"
)

// DefaultPatterns matches every extension lang.DetectLanguage recognises.
var DefaultPatterns = []string{
	"**/*.ts", "**/*.tsx", "**/*.mts", "**/*.cts",
	"**/*.js", "**/*.jsx", "**/*.mjs", "**/*.cjs",
	"**/*.py", "**/*.pyi",
	"**/*.rs",
}

// Walk expands patterns (doublestar glob syntax) rooted at root and returns
// every matching file whose language lang.DetectLanguage recognises. Paths
// with any component named "node_modules", "target" or "__pycache__", or
// starting with ".", are skipped.
func Walk(root string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	fsys := os.DirFS(root)
	seen := make(map[string]struct{})
	var out []string

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("discovery: glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if isIgnored(m) {
				continue
			}
			if lang.DetectLanguage(m) == lang.LanguageUnknown {
				continue
			}
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, filepath.Join(root, m))
		}
	}

	return out, nil
}

func isIgnored(relPath string) bool {
	for _, part := range splitPath(relPath) {
		if part == "node_modules" || part == "target" || part == "__pycache__" {
			return true
		}
		if len(part) > 1 && part[0] == '.' {
			return true
		}
	}
	return false
}

// splitPath splits a doublestar relative path (always '/'-joined) into
// its components.
func splitPath(p string) []string {
	var parts []string
	start := 0
	slash := filepath.ToSlash(p)
	for i := 0; i < len(slash); i++ {
		if slash[i] == '/' {
			parts = append(parts, slash[start:i])
			start = i + 1
		}
	}
	parts = append(parts, slash[start:])
	return parts
}
