package cmd

import (
	"fmt"

	"github.com/theirongolddev/fburn/internal/cli"
	"github.com/theirongolddev/fburn/internal/tui/theme"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "Spending breakdown by category",
	RunE:    runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	st, err := loadSession()
	if err != nil {
		return err
	}

	totals := st.sess.CategoryTotals()
	if len(totals) == 0 {
		fmt.Println("\n  No expenses to break down.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING BY CATEGORY"))
	fmt.Println()

	rows := make([][]string, 0, len(totals)+2)
	for _, ct := range totals {
		rows = append(rows, []string{
			cli.CategoryLabel(ct.Category),
			cli.FormatNumber(int64(ct.Count)),
			cli.FormatMoney(ct.Amount),
			cli.FormatPercent(ct.SharePercent),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Items", "Spent", "Share"},
		Rows:    rows,
	}))
	fmt.Println()

	peak := totals[0].Amount.InexactFloat64()
	for _, ct := range totals {
		fmt.Println(cli.RenderHorizontalBar(
			cli.CategoryLabel(ct.Category),
			ct.Amount.InexactFloat64(), peak, 30,
			theme.Active.Category(ct.Category),
		))
	}
	fmt.Println()
	return nil
}
