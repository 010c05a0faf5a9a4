package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/fburn/internal/cli"
	"github.com/theirongolddev/fburn/internal/metrics"

	"github.com/spf13/cobra"
)

// maxDailyDays caps --days at one leap year.
const maxDailyDays = 366

var flagDailyDays int

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily spending table",
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().IntVarP(&flagDailyDays, "days", "n", 14, "Number of days to show")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	if err := checkDailyDays(flagDailyDays); err != nil {
		return err
	}
	st, err := loadSession()
	if err != nil {
		return err
	}

	today := st.sess.Today()
	days := metrics.DailySpend(st.sess.Expenses(), today.AddDate(0, 0, -(flagDailyDays-1)), today)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY SPENDING  Last %dd", flagDailyDays)))
	fmt.Println()

	// Most recent first, like the expense list.
	rows := make([][]string, 0, len(days))
	for i := len(days) - 1; i >= 0; i-- {
		d := days[i]
		rows = append(rows, []string{
			cli.FormatDate(d.Date),
			cli.FormatDayOfWeek(d.Date.Weekday()),
			cli.FormatNumber(int64(d.Count)),
			cli.FormatMoney(d.Amount),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Items", "Spent"},
		Rows:    rows,
	}))
	fmt.Printf("\n  %s\n\n", cli.RenderSparkline(metrics.Amounts(days)))
	return nil
}

func checkDailyDays(n int) error {
	switch {
	case n < 1:
		return errors.New("--days must be at least 1")
	case n > maxDailyDays:
		return fmt.Errorf("--days must be at most %d", maxDailyDays)
	}
	return nil
}
