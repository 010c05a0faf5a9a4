package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/fburn/internal/model"
	"github.com/theirongolddev/fburn/internal/tui/theme"
)

// fraction turns a 0-100 percentage into the 0-1 range a bar can draw.
func fraction(percent float64) float64 {
	switch {
	case percent <= 0:
		return 0
	case percent >= 100:
		return 1
	default:
		return percent / 100
	}
}

// ProgressBar renders a solid bar followed by the unclamped percentage.
func ProgressBar(percent float64, width int, color lipgloss.Color) string {
	t := theme.Active

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	return bar.ViewAs(fraction(percent)) + " " + pctStyle.Render(fmt.Sprintf("%5.1f%%", percent))
}

// BudgetBar colors budget usage by alert level.
func BudgetBar(percent float64, level model.AlertLevel, width int) string {
	return ProgressBar(percent, width, theme.Active.Alert(level))
}

// GoalColor picks a goal bar color: green when done, accent otherwise.
func GoalColor(percent float64) lipgloss.Color {
	if percent >= 100 {
		return theme.Active.Green
	}
	return theme.Active.Accent
}
