package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/fburn/internal/cli"
	"github.com/theirongolddev/fburn/internal/ledger"
	"github.com/theirongolddev/fburn/internal/model"
	"github.com/theirongolddev/fburn/internal/session"

	"github.com/spf13/cobra"
)

var (
	flagExpenseAdd   []string
	flagExpenseLimit int
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "List recent expenses, optionally adding new ones first",
	Example: `  fburn expenses
  fburn expenses --add "12.50:Lunch:food" --add "30:Concert:entertainment:2024-09-10"`,
	RunE: runExpenses,
}

func init() {
	expensesCmd.Flags().StringArrayVarP(&flagExpenseAdd, "add", "a", nil, "Add an expense: amount:description:category[:YYYY-MM-DD]")
	expensesCmd.Flags().IntVarP(&flagExpenseLimit, "limit", "l", 20, "Number of expenses to list")
	rootCmd.AddCommand(expensesCmd)
}

// parseExpenseSpec reads "amount:description:category[:date]". The
// description may itself contain colons.
func parseExpenseSpec(spec string) (ledger.ExpenseInput, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 {
		return ledger.ExpenseInput{}, fmt.Errorf("%q: want amount:description:category[:date]", spec)
	}

	amount, err := model.ParseAmount(parts[0])
	if err != nil {
		return ledger.ExpenseInput{}, err
	}

	var date time.Time
	rest := parts[1:]
	if len(rest) >= 3 {
		if d, err := model.ParseDate(rest[len(rest)-1]); err == nil {
			date = d
			rest = rest[:len(rest)-1]
		}
	}

	cat, err := model.ParseCategory(rest[len(rest)-1])
	if err != nil {
		return ledger.ExpenseInput{}, err
	}

	return ledger.ExpenseInput{
		Amount:      amount,
		Description: strings.Join(rest[:len(rest)-1], ":"),
		Category:    cat,
		Date:        date,
	}, nil
}

func runExpenses(_ *cobra.Command, _ []string) error {
	st, err := loadSession()
	if err != nil {
		return err
	}

	for _, spec := range flagExpenseAdd {
		in, err := parseExpenseSpec(spec)
		if err != nil {
			return err
		}
		e, err := st.sess.AddExpense(in)
		if err != nil {
			return err
		}
		hint("Added #%d %s %s (+%d pts)", e.ID, cli.FormatMoney(e.Amount), e.Description, session.PointsPerExpense)
	}

	recent := st.sess.ListRecent(flagExpenseLimit)
	if len(recent) == 0 {
		fmt.Println("\n  No expenses yet.")
		hint("Add one with: fburn expenses --add 12.50:Lunch:food")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENSES  %d of %d", len(recent), len(st.sess.Expenses()))))
	fmt.Println()

	rows := make([][]string, 0, len(recent))
	for _, e := range recent {
		src := "manual"
		if e.Auto {
			src = "auto"
		}
		rows = append(rows, []string{
			fmt.Sprintf("#%d", e.ID),
			cli.FormatDate(e.Date),
			truncate(e.Description, 28),
			cli.CategoryLabel(e.Category),
			cli.FormatMoney(e.Amount),
			src,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Description", "Category", "Amount", "Source"},
		Rows:    rows,
	}))

	fmt.Printf("\n  Total spent this period: %s\n\n", cli.FormatMoney(st.sess.TotalSpent()))
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
