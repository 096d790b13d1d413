package workspace

import (
	"fmt"
	"path"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnoreSet hides entries from listings and snapshots. A pattern matches
// either the entry name or its slash-separated workspace-relative path.
type IgnoreSet struct {
	patterns []string
}

func NewIgnoreSet(patterns []string) (IgnoreSet, error) {
	valid := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return IgnoreSet{}, fmt.Errorf("invalid ignore pattern %q", pattern)
		}
		valid = append(valid, pattern)
	}
	return IgnoreSet{patterns: valid}, nil
}

func (s IgnoreSet) Match(rel string) bool {
	name := path.Base(rel)
	for _, pattern := range s.patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
