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
	"github.com/shopspring/decimal"
)

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	stats := a.dash.Stats
	var b strings.Builder

	// Row 1: Metric cards
	alertColor := t.Alert(stats.Alert)
	cards := []components.Metric{
		{Label: "Budget", Value: cli.FormatMoney(stats.MonthlyBudget), Note: "this month"},
		{Label: "Spent", Value: cli.FormatMoney(stats.TotalSpent), Note: cli.FormatPercent(stats.BudgetUsedPercent) + " used", Color: alertColor},
		{Label: "Remaining", Value: cli.FormatMoney(stats.BudgetRemaining), Note: cli.FormatMoney(stats.DailyBudgetRemaining) + "/day left"},
		{Label: "Savings", Value: cli.FormatMoney(stats.CurrentSavings), Note: cli.FormatPercent(stats.SavingsProgress) + " of " + cli.FormatMoneyShort(stats.SavingsGoalTotal)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Alert banner
	if heading, body := cli.AlertMessage(stats.Alert, stats.BudgetUsedPercent); heading != "" {
		headStyle := lipgloss.NewStyle().Foreground(alertColor).Bold(true)
		b.WriteString(components.AlertCard("", headStyle.Render(heading)+" "+body, cw, alertColor))
		b.WriteString("\n")
	}

	// Row 3: Budget bar + forecast
	innerW := components.CardInnerWidth(cw)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var budget strings.Builder
	budget.WriteString(components.BudgetBar(stats.BudgetUsedPercent, stats.Alert, innerW-8))
	budget.WriteString("\n")
	fmt.Fprintf(&budget, "%s %s   %s %s   %s %s",
		labelStyle.Render("Projected:"), valueStyle.Render(cli.FormatMoney(stats.ProjectedSpend)),
		labelStyle.Render("Last month:"), valueStyle.Render(cli.FormatMoney(stats.LastPeriodSpent)),
		labelStyle.Render("Change:"), lipgloss.NewStyle().Foreground(deltaColor(stats.MonthOverMonth)).Render(cli.FormatDelta(stats.MonthOverMonth)),
	)
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Budget · %d days left", stats.DaysLeft),
		budget.String(),
		cw,
	))
	b.WriteString("\n")

	// Row 4: Categories + daily spend
	halves := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		halves = []int{cw, cw}
	}
	catCard := components.ContentCard("Spending by Category",
		categoryChart(a.dash.Categories, components.CardInnerWidth(halves[0])), halves[0])

	peak := decimal.Zero
	for _, d := range a.daily {
		peak = decimal.Max(peak, d.Amount)
	}
	dailyCard := components.ContentCard(
		fmt.Sprintf("Daily Spend (%dd)", len(a.daily)),
		components.ColumnChart(metrics.Amounts(a.daily), chartDateLabels(a.daily), t.Blue, 6, cli.FormatMoneyShort(peak)),
		halves[1],
	)

	if a.isCompactLayout() {
		b.WriteString(catCard)
		b.WriteString("\n")
		b.WriteString(dailyCard)
	} else {
		b.WriteString(components.CardRow([]string{catCard, dailyCard}))
	}
	b.WriteString("\n")

	// Row 5: Recent expenses
	title := "Recent Expenses  " + components.Sparkline(metrics.Amounts(a.daily), t.Accent)
	b.WriteString(components.ContentCard(title, recentList(a.dash.Recent, innerW), cw))

	return b.String()
}

func categoryChart(totals []model.CategoryTotal, w int) string {
	if len(totals) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("No expenses yet")
	}
	bars := make([]components.HBar, len(totals))
	for i, ct := range totals {
		bars[i] = components.HBar{
			Label: cli.CategoryLabel(ct.Category),
			Value: ct.Amount.InexactFloat64(),
			Text:  fmt.Sprintf("%s %5.1f%%", cli.FormatMoney(ct.Amount), ct.SharePercent),
			Color: theme.Active.Category(ct.Category),
		}
	}
	return components.HBarChart(bars, w)
}

func recentList(expenses []model.Expense, w int) string {
	t := theme.Active
	if len(expenses) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No expenses yet. Press a to add one")
	}

	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	descW := w - 6 - 2 - 14 - 2 - 10
	if descW < 10 {
		descW = 10
	}

	lines := make([]string, len(expenses))
	for i, e := range expenses {
		cat := lipgloss.NewStyle().Foreground(t.Category(e.Category)).Render(fmt.Sprintf("%-14s", cli.CategoryLabel(e.Category)))
		lines[i] = dateStyle.Render(fmt.Sprintf("%-6s", cli.FormatShortDate(e.Date))) + "  " +
			descStyle.Render(fmt.Sprintf("%-*s", descW, truncStr(e.Description, descW))) + "  " +
			cat + "  " +
			amtStyle.Render(fmt.Sprintf("%10s", cli.FormatMoney(e.Amount)))
	}
	return strings.Join(lines, "\n")
}

func deltaColor(d model.Delta) lipgloss.Color {
	switch d.Direction {
	case model.Increase:
		return theme.Active.Red
	case model.Decrease:
		return theme.Active.Green
	default:
		return theme.Active.TextMuted
	}
}
