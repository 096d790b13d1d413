// Package suggest finds the closest known name for a mistyped one.
package suggest

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Closest returns the option that best matches input. Options are tried as
// subsequence matches of input first, then input as a subsequence of each
// option's surroundings (e.g. "react-app" still suggests "react").
func Closest(input string, options []string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" || len(options) == 0 {
		return "", false
	}

	lowered := make([]string, len(options))
	for i, option := range options {
		lowered[i] = strings.ToLower(option)
	}

	if matches := fuzzy.Find(needle, lowered); len(matches) > 0 {
		return options[matches[0].Index], true
	}

	best, bestScore := -1, 0
	for i, option := range lowered {
		matches := fuzzy.Find(option, []string{needle})
		if len(matches) == 0 {
			continue
		}
		if best == -1 || matches[0].Score > bestScore {
			best, bestScore = i, matches[0].Score
		}
	}
	if best == -1 {
		return "", false
	}
	return options[best], true
}

// Hint formats a "did you mean" clause, or lists the options when nothing
// is close.
func Hint(input string, options []string) string {
	if match, ok := Closest(input, options); ok {
		return "did you mean " + match + "?"
	}
	return "expected one of: " + strings.Join(options, ", ")
}
