package domain

import (
	"path/filepath"
	"strings"
)

// ResolveWithin lexically resolves path against root. It returns the cleaned
// absolute path and its slash-separated form relative to root, or ok=false
// when the path lands outside root. An empty path resolves to root itself.
func ResolveWithin(root, path string) (abs string, rel string, ok bool) {
	root = filepath.Clean(root)
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = "."
	}

	if filepath.IsAbs(trimmed) {
		abs = filepath.Clean(trimmed)
	} else {
		abs = filepath.Join(root, trimmed)
	}

	relPath, err := filepath.Rel(root, abs)
	if err != nil || escapesRoot(relPath) {
		return "", "", false
	}

	return abs, filepath.ToSlash(relPath), true
}

// Within reports whether candidate is root or lies beneath it.
func Within(root, candidate string) bool {
	relPath, err := filepath.Rel(filepath.Clean(root), filepath.Clean(candidate))
	if err != nil {
		return false
	}
	return !escapesRoot(relPath)
}

func escapesRoot(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
