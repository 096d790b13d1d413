package workspace

import (
	"strings"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	diffContextLines = 2
	maxDiffLines     = 200
)

// lineDiff returns the changed lines of an edit with a little surrounding
// context. Unchanged stretches further away are dropped.
func lineDiff(before, after string) []domain.DiffLine {
	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(beforeChars, afterChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []domain.DiffLine
	for _, diff := range diffs {
		op := domain.DiffContext
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			op = domain.DiffAdded
		case diffmatchpatch.DiffDelete:
			op = domain.DiffRemoved
		}

		chunk := strings.Split(diff.Text, "\n")
		if len(chunk) > 0 && chunk[len(chunk)-1] == "" {
			chunk = chunk[:len(chunk)-1]
		}
		for _, text := range chunk {
			lines = append(lines, domain.DiffLine{Op: op, Text: text})
		}
	}

	return trimContext(lines)
}

func trimContext(lines []domain.DiffLine) []domain.DiffLine {
	keep := make([]bool, len(lines))
	for i, line := range lines {
		if line.Op == domain.DiffContext {
			continue
		}
		for j := max(0, i-diffContextLines); j <= min(len(lines)-1, i+diffContextLines); j++ {
			keep[j] = true
		}
	}

	out := make([]domain.DiffLine, 0, len(lines))
	for i, line := range lines {
		if keep[i] {
			out = append(out, line)
		}
		if len(out) == maxDiffLines {
			break
		}
	}
	return out
}
