package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fburn/internal/cli"
	"github.com/theirongolddev/fburn/internal/metrics"
	"github.com/theirongolddev/fburn/internal/model"
	"github.com/theirongolddev/fburn/internal/tui/components"
	"github.com/theirongolddev/fburn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTipsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Potential savings", Value: cli.FormatMoney(a.dash.Savings) + "/mo", Color: t.Green},
		{Label: "Tips", Value: fmt.Sprintf("%d", len(a.dash.Tips)), Note: "ranked by your spending"},
	}, cw))
	b.WriteString("\n")

	spend := metrics.TotalsByCategory(a.dash.Categories)

	innerW := components.CardInnerWidth(cw)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Width(innerW)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var tipsBody strings.Builder
	for i, tip := range a.dash.Tips {
		catStyle := lipgloss.NewStyle().Foreground(t.Category(tip.Category)).Bold(true)
		spent := cli.FormatMoney(spend[tip.Category])
		tipsBody.WriteString(catStyle.Render(cli.CategoryLabel(tip.Category)))
		tipsBody.WriteString(mutedStyle.Render(fmt.Sprintf("  spent %s · save %s/mo · %s",
			spent, cli.FormatMoney(tip.PotentialSavings), cli.Label(string(tip.Difficulty)))))
		tipsBody.WriteString("\n")
		tipsBody.WriteString(textStyle.Render(tip.Suggestion))
		if i < len(a.dash.Tips)-1 {
			tipsBody.WriteString("\n\n")
		}
	}
	b.WriteString(components.ContentCard("Saving Tips", tipsBody.String(), cw))
	b.WriteString("\n")

	if len(a.dash.Insights) > 0 {
		widths := components.LayoutRow(cw, len(a.dash.Insights))
		if a.isCompactLayout() {
			for i := range widths {
				widths[i] = cw
			}
		}
		cards := make([]string, len(a.dash.Insights))
		for i, in := range a.dash.Insights {
			body := lipgloss.NewStyle().Foreground(t.TextPrimary).Width(components.CardInnerWidth(widths[i])).Render(in.Message)
			cards[i] = components.AlertCard(in.Title, body, widths[i], insightColor(in.Kind))
		}
		if a.isCompactLayout() {
			b.WriteString(strings.Join(cards, "\n"))
		} else {
			b.WriteString(components.CardRow(cards))
		}
	}

	return b.String()
}

func insightColor(k model.InsightKind) lipgloss.Color {
	if k == model.InsightPrediction {
		return theme.Active.Blue
	}
	return theme.Active.Magenta
}
