package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	thought lipgloss.Style
	action  lipgloss.Style
	target  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	detail  lipgloss.Style
	notice  lipgloss.Style
	prompt  lipgloss.Style
	spinner lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		thought: r.NewStyle().Faint(true).Italic(true),
		action:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		target:  r.NewStyle().Foreground(lipgloss.Color("252")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		detail:  r.NewStyle().Foreground(lipgloss.Color("245")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("214")),
		prompt:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		spinner: r.NewStyle().Foreground(lipgloss.Color("69")),
	}
}
