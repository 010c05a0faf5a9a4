package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fburn/internal/cli"
	"github.com/theirongolddev/fburn/internal/session"
	"github.com/theirongolddev/fburn/internal/tui/components"
	"github.com/theirongolddev/fburn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderRewardsTab(cw int) string {
	t := theme.Active
	r := a.dash.Rewards
	var b strings.Builder

	into := r.Points % session.PointsPerLevel
	toNext := session.PointsPerLevel - into

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Level", Value: fmt.Sprintf("%d", r.Level), Color: t.Yellow},
		{Label: "Points", Value: cli.FormatNumber(int64(r.Points)), Note: fmt.Sprintf("%d to level %d", toNext, r.Level+1)},
		{Label: "Per expense", Value: fmt.Sprintf("+%d", session.PointsPerExpense), Note: "for each one you log"},
	}, cw))
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	pct := float64(into) * 100 / session.PointsPerLevel
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Progress to Level %d", r.Level+1),
		components.ProgressBar(pct, innerW-8, t.Yellow),
		cw,
	))
	b.WriteString("\n")

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	logged := 0
	for _, e := range a.sess.Expenses() {
		if !e.Auto {
			logged++
		}
	}
	body := keyStyle.Render("a") + mutedStyle.Render(fmt.Sprintf(
		"  log an expense to earn %d points. Every %d points is a new level.\n",
		session.PointsPerExpense, session.PointsPerLevel)) +
		mutedStyle.Render(fmt.Sprintf("   You have logged %d expense(s) this session.", logged))
	b.WriteString(components.ContentCard("How to Earn", body, cw))

	return b.String()
}
