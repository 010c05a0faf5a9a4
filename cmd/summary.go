package cmd

import (
	"fmt"

	"github.com/theirongolddev/fburn/internal/cli"
	"github.com/theirongolddev/fburn/internal/metrics"
	"github.com/theirongolddev/fburn/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Budget summary with alerts and savings progress",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	st, err := loadSession()
	if err != nil {
		return err
	}
	dash := st.sess.Dashboard(st.daysLeft)
	stats := dash.Stats

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET  %s  %s left",
		cli.FormatShortDate(dash.Today), cli.FormatDays(stats.DaysLeft))))
	fmt.Println()

	if title, body := cli.AlertMessage(stats.Alert, stats.BudgetUsedPercent); title != "" && !flagQuiet {
		fmt.Println(cli.RenderSection(title))
		fmt.Printf("  %s\n\n", body)
	}

	rows := [][]string{
		{"Monthly Budget", cli.FormatMoney(stats.MonthlyBudget)},
		{"Spent", cli.FormatMoney(stats.TotalSpent)},
		{"Remaining", cli.FormatMoney(stats.BudgetRemaining)},
		{"Used", cli.FormatPercent(stats.BudgetUsedPercent)},
		{"---"},
		{"Days Left", cli.FormatNumber(int64(stats.DaysLeft))},
		{"Daily Budget", cli.FormatMoney(stats.DailyBudgetRemaining) + "/day"},
		{"Projected Spend", cli.FormatMoney(stats.ProjectedSpend)},
		{"---"},
		{"Last Period", cli.FormatMoney(stats.LastPeriodSpent)},
		{"vs Last Period", fmt.Sprintf("%s (%s)", cli.FormatDelta(stats.MonthOverMonth), stats.MonthOverMonth.Direction)},
		{"---"},
		{"Savings", fmt.Sprintf("%s of %s", cli.FormatMoney(stats.CurrentSavings), cli.FormatMoney(stats.SavingsGoalTotal))},
		{"Savings Progress", cli.FormatPercent(stats.SavingsProgress)},
		{"Rewards", fmt.Sprintf("%s pts  (level %d)", cli.FormatNumber(int64(dash.Rewards.Points)), dash.Rewards.Level)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderBudgetBar(stats.BudgetUsedPercent, stats.Alert, 40))

	week := metrics.DailySpend(st.sess.Expenses(), dash.Today.AddDate(0, 0, -6), dash.Today)
	fmt.Printf("  Last 7 days  %s\n", cli.RenderSparkline(metrics.Amounts(week)))

	if stats.Alert == model.AlertSafe && stats.BudgetRemaining.IsPositive() {
		hint("On track: %s left to spend.", cli.FormatMoney(stats.BudgetRemaining))
	}
	fmt.Println()
	return nil
}
