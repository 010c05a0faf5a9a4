package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fburn/internal/cli"
	"github.com/theirongolddev/fburn/internal/goals"
	"github.com/theirongolddev/fburn/internal/tui/components"
	"github.com/theirongolddev/fburn/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// updateSavingsKeys moves the goal cursor. ok is false when the key is not
// a list key.
func (a App) updateSavingsKeys(key string) (tea.Model, tea.Cmd, bool) {
	last := len(a.dash.Goals) - 1
	switch key {
	case "j", "down":
		a.goalCursor = clamp(a.goalCursor+1, 0, last)
	case "k", "up":
		a.goalCursor = clamp(a.goalCursor-1, 0, last)
	case "g":
		a.goalCursor = 0
	case "G":
		a.goalCursor = max(last, 0)
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) renderSavingsTab(cw int) string {
	t := theme.Active
	stats := a.dash.Stats
	sum := a.dash.GoalTotals
	var b strings.Builder

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Savings", Value: cli.FormatMoney(stats.CurrentSavings), Note: "of " + cli.FormatMoney(stats.SavingsGoalTotal) + " target"},
		{Label: "Goals", Value: fmt.Sprintf("%d", sum.Count), Note: fmt.Sprintf("%d completed", sum.CompletedCount), Color: t.Accent},
		{Label: "Saved in goals", Value: cli.FormatMoney(sum.TotalSaved), Note: cli.FormatPercent(sum.ProgressPercent) + " overall"},
	}, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard("Savings Goal",
		components.ProgressBar(stats.SavingsProgress, innerW-8, components.GoalColor(stats.SavingsProgress)), cw))
	b.WriteString("\n")

	if len(a.dash.Goals) == 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim).Render("No goals yet. Press n to create one")
		b.WriteString(components.ContentCard("Goals", dim, cw))
		return b.String()
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	lateStyle := lipgloss.NewStyle().Foreground(t.Red)

	today := a.dash.Today
	var body strings.Builder
	for i, g := range a.dash.Goals {
		pct := goals.ProgressPercent(g)
		marker, style := "  ", titleStyle
		if i == a.goalCursor {
			marker, style = "▸ ", selStyle
		}

		due := cli.FormatDays(goals.DaysRemaining(g, today))
		dueStyle := mutedStyle
		switch {
		case goals.IsCompleted(g):
			due = "completed"
		case goals.IsOverdue(g, today):
			dueStyle = lateStyle
		}

		body.WriteString(style.Render(marker+g.Title) +
			mutedStyle.Render(fmt.Sprintf("  %s · %s · due %s (", cli.Label(g.Category), cli.Label(string(g.Priority)), cli.FormatDate(g.TargetDate))) +
			dueStyle.Render(due) + mutedStyle.Render(")"))
		body.WriteString("\n  ")
		body.WriteString(components.ProgressBar(pct, innerW-10, components.GoalColor(pct)))
		body.WriteString(mutedStyle.Render(fmt.Sprintf("\n  %s of %s, %s to go",
			cli.FormatMoney(g.CurrentAmount), cli.FormatMoney(g.TargetAmount), cli.FormatMoney(goals.Remaining(g)))))
		if i < len(a.dash.Goals)-1 {
			body.WriteString("\n\n")
		}
	}
	b.WriteString(components.ContentCard("Goals", body.String(), cw))

	return b.String()
}
