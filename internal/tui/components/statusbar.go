package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/fburn/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the latest message on the right, in red when it reports an error.
func RenderStatusBar(width int, hints, message string, isErr bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	msgColor := t.Green
	if isErr {
		msgColor = t.Red
	}
	left := " " + hints
	right := ""
	if message != "" {
		right = lipgloss.NewStyle().Foreground(msgColor).Background(t.Surface).Render(message) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
