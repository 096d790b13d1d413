// Package session renders saved sessions for the session commands.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type RenderOptions struct {
	Now time.Time
	// StaleAfter marks sessions untouched for longer; zero disables it.
	StaleAfter time.Duration
	// MaxLines caps each transcript message; zero shows everything.
	MaxLines int
}

// RenderList renders session summaries, most recent first as given.
func RenderList(summaries []domain.SessionSummary, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderList(summaries, opts, s)
	})
}

// RenderTranscript renders one session with its messages.
func RenderTranscript(session *domain.Session, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderTranscript(session, opts, s)
	})
}

func renderList(summaries []domain.SessionSummary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Saved Sessions"),
		s.header.Render(fmt.Sprintf("sessions: %d", len(summaries))),
	}

	if len(summaries) == 0 {
		lines = append(lines, s.empty.Render("No saved sessions."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, summary := range summaries {
		lines = append(lines, s.section.Render(renderSummary(summary, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSummary(summary domain.SessionSummary, opts RenderOptions, s styles) string {
	meta := fmt.Sprintf("%s · %s · %s", shortKey(summary.Key), plural(summary.Messages, "message"), updatedLabel(summary.UpdatedAt, opts.Now))
	detail := lipgloss.NewStyle().Foreground(ageColor(summary.UpdatedAt, opts.Now)).Render(meta)

	if isStale(summary.UpdatedAt, opts) {
		detail += " " + s.warning.Render("[stale]")
	}

	return lipgloss.JoinVertical(lipgloss.Left, s.root.Render(summary.Root), detail)
}

func renderTranscript(session *domain.Session, opts RenderOptions, s styles) string {
	messages := session.Transcript.Messages()
	lines := []string{
		s.title.Render(session.Root),
		s.header.Render(fmt.Sprintf("session %s · %s · %s", shortKey(session.Key), plural(len(messages), "message"), updatedLabel(session.UpdatedAt, opts.Now))),
	}

	if len(messages) == 0 {
		lines = append(lines, s.empty.Render("Transcript is empty."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, msg := range messages {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			roleLabel(msg.Role, s),
			s.body.Render(clipLines(msg.Content, opts.MaxLines)),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func roleLabel(role domain.Role, s styles) string {
	switch role {
	case domain.RoleUser:
		return s.user.Render("user")
	case domain.RoleAssistant:
		return s.assistant.Render("assistant")
	default:
		return s.tool.Render("tool result")
	}
}

func clipLines(content string, max int) string {
	content = strings.TrimRight(content, "\n")
	if max <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= max {
		return content
	}
	return strings.Join(lines[:max], "\n") + fmt.Sprintf("\n… %s hidden", plural(len(lines)-max, "line"))
}

func shortKey(key string) string {
	if len(key) > 12 {
		return key[:12]
	}
	return key
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func updatedLabel(updatedAt, now time.Time) string {
	if updatedAt.IsZero() {
		return "never updated"
	}
	if now.IsZero() {
		return "updated " + updatedAt.Format(time.RFC3339)
	}
	return "updated " + humanize.RelTime(updatedAt, now, "ago", "from now")
}

func isStale(updatedAt time.Time, opts RenderOptions) bool {
	if opts.StaleAfter <= 0 || opts.Now.IsZero() || updatedAt.IsZero() {
		return false
	}
	return opts.Now.Sub(updatedAt) > opts.StaleAfter
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// 240 (faded) at min, 255 (bright) at max on the greyscale ramp.
	baseColor := 240.0
	targetColor := 255.0
	return lipgloss.Color(fmt.Sprintf("%d", int(baseColor+(targetColor-baseColor)*normalized)))
}

// ageColor fades from bright for just-updated sessions to grey after a week.
func ageColor(updatedAt, now time.Time) lipgloss.Color {
	if now.IsZero() || updatedAt.IsZero() || updatedAt.After(now) {
		return lipgloss.Color("255")
	}

	window := 7 * 24 * time.Hour
	return interpolateColor(window.Seconds()-now.Sub(updatedAt).Seconds(), 0, window.Seconds())
}
