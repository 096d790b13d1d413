package console

import (
	"fmt"
	"strings"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const maxDetailLines = 12

func (s styles) renderThought(text string) string {
	return renderLines(s.thought, "… "+strings.TrimSpace(text))
}

func (s styles) renderAction(kind domain.ActionKind, summary string) string {
	line := s.action.Render("▶ " + kind.String())
	if summary = strings.TrimSpace(summary); summary != "" {
		line += " " + s.target.Render(summary)
	}
	return line
}

func (s styles) renderResult(result domain.ActionResult) string {
	if !result.OK() {
		head := s.failure.Render(fmt.Sprintf("✗ %s (%s)", result.Action, result.Failure.Kind))
		detail := clip(result.Failure.Message, maxDetailLines)
		if detail == "" {
			return head
		}
		return head + "\n" + renderLines(s.detail, indent(detail))
	}

	head := s.success.Render("✔ " + firstLine(result.Output))
	rest := clip(afterFirstLine(result.Output), maxDetailLines)
	if rest == "" {
		return head
	}
	return head + "\n" + renderLines(s.detail, indent(rest))
}

func (s styles) renderNotice(text string) string {
	return renderLines(s.notice, "ⓘ "+strings.TrimSpace(text))
}

// renderLines styles each line on its own; lipgloss pads a multi-line block
// to its widest line.
func renderLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

func firstLine(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

func afterFirstLine(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return strings.Trim(text[i+1:], "\n")
	}
	return ""
}

// clip keeps the first max lines and reports how many were dropped.
func clip(text string, max int) string {
	text = strings.Trim(text, "\n")
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= max {
		return text
	}
	dropped := len(lines) - max
	return strings.Join(lines[:max], "\n") + fmt.Sprintf("\n… %d more lines", dropped)
}

func indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
