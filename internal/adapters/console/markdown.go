package console

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown formats model output for a terminal. It falls back to the
// raw text when glamour cannot render it.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = 100
	}

	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	out, err := md.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
