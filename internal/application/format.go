package application

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bnema/coda-cli/internal/domain"
	humanize "github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
)

func formatListing(rel string, entries []domain.DirEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("%s is empty", rel)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d entries):", rel, len(entries))
	for _, entry := range entries {
		if entry.Type == domain.EntryDirectory {
			fmt.Fprintf(&b, "\n  %s/", entry.Name)
			continue
		}
		fmt.Fprintf(&b, "\n  %s (%s)", entry.Name, humanize.Bytes(uint64(entry.Size)))
	}
	return b.String()
}

func formatCommand(result domain.CommandResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "$ %s\nexit code %d after %s", result.Command, result.ExitCode, result.Duration.Round(time.Millisecond))
	writeStream(&b, "stdout", result.Stdout, result.StdoutTruncated)
	writeStream(&b, "stderr", result.Stderr, result.StderrTruncated)
	return b.String()
}

func writeStream(b *strings.Builder, name, text string, truncated bool) {
	text = strings.TrimRight(validText(text), "\n")
	if text == "" {
		return
	}
	fmt.Fprintf(b, "\n%s:\n%s", name, text)
	if truncated {
		fmt.Fprintf(b, "\n... (%s truncated)", name)
	}
}

func formatEdit(edit domain.FileEdit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "updated %s", edit.Path)
	if edit.Matches > 1 {
		fmt.Fprintf(&b, " (replaced the first of %d matches)", edit.Matches)
	}
	for _, line := range edit.Diff {
		fmt.Fprintf(&b, "\n%s%s", line.Op, line.Text)
	}
	return b.String()
}

func formatScaffold(result domain.ScaffoldResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "scaffolded %s project in %s/ (%d files)", result.Template, result.Dir, len(result.Files))
	for _, file := range result.Files {
		fmt.Fprintf(&b, "\n  %s", file)
	}
	return b.String()
}

func formatRead(rel, content string) string {
	lines := strings.Count(content, "\n")
	if content != "" && !strings.HasSuffix(content, "\n") {
		lines++
	}
	size := humanize.Bytes(uint64(len(content)))
	if !utf8.ValidString(content) {
		return fmt.Sprintf("%s (%d lines, %s, not valid UTF-8; invalid bytes shown as %s):\n%s", rel, lines, size, replacementChar, validText(content))
	}
	return fmt.Sprintf("%s (%d lines, %s):\n%s", rel, lines, size, content)
}

const replacementChar = "\uFFFD"

// validText keeps transcript content encodable.
func validText(text string) string {
	return strings.ToValidUTF8(text, replacementChar)
}

// summarize is the one-line console label of an approved or pending action.
func summarize(intent domain.Intent) string {
	if len(intent.Input) == 0 {
		return ""
	}
	input := gjson.ParseBytes(intent.Input)
	for _, key := range []string{"path", "command", "name"} {
		if value := input.Get(key); value.Type == gjson.String && value.Str != "" {
			return value.Str
		}
	}
	return ""
}
