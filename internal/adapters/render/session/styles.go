package session

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	root      lipgloss.Style
	detail    lipgloss.Style
	warning   lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
	tool      lipgloss.Style
	body      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		root:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		user:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		assistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		tool:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		body:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(2),
	}
}
