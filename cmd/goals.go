package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/fburn/internal/cli"
	"github.com/theirongolddev/fburn/internal/goals"
	"github.com/theirongolddev/fburn/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagGoalCreate  []string
	flagGoalDeposit []string
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Savings goals and progress",
	Example: `  fburn goals --create "Spring break:600:2025-03-10:travel:high"
  fburn goals --deposit 1:50`,
	RunE: runGoals,
}

func init() {
	goalsCmd.Flags().StringArrayVar(&flagGoalCreate, "create", nil, "Create a goal: title:target:YYYY-MM-DD[:category[:priority]]")
	goalsCmd.Flags().StringArrayVar(&flagGoalDeposit, "deposit", nil, "Deposit into a goal: id:amount")
	rootCmd.AddCommand(goalsCmd)
}

func parseGoalSpec(spec string) (goals.GoalInput, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 || len(parts) > 5 {
		return goals.GoalInput{}, fmt.Errorf("%q: want title:target:date[:category[:priority]]", spec)
	}
	target, err := model.ParseAmount(parts[1])
	if err != nil {
		return goals.GoalInput{}, err
	}
	in := goals.GoalInput{Title: parts[0], TargetAmount: target, TargetDate: parts[2]}
	if len(parts) > 3 {
		in.Category = parts[3]
	}
	if len(parts) > 4 {
		in.Priority = parts[4]
	}
	return in, nil
}

func parseDepositSpec(spec string) (int, decimal.Decimal, error) {
	idStr, amtStr, ok := strings.Cut(spec, ":")
	if !ok {
		return 0, decimal.Zero, fmt.Errorf("%q: want id:amount", spec)
	}
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(idStr), "#"))
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("%q: goal id must be a number", spec)
	}
	amount, err := model.ParseAmount(amtStr)
	if err != nil {
		return 0, decimal.Zero, err
	}
	return id, amount, nil
}

func runGoals(_ *cobra.Command, _ []string) error {
	st, err := loadSession()
	if err != nil {
		return err
	}

	for _, spec := range flagGoalCreate {
		in, err := parseGoalSpec(spec)
		if err != nil {
			return err
		}
		g, err := st.sess.CreateGoal(in)
		if err != nil {
			return err
		}
		hint("Created goal #%d %s", g.ID, g.Title)
	}
	for _, spec := range flagGoalDeposit {
		id, amount, err := parseDepositSpec(spec)
		if err != nil {
			return err
		}
		g, err := st.sess.Deposit(id, amount)
		if err != nil {
			return err
		}
		hint("Deposited %s into #%d, now %s", cli.FormatMoney(amount), g.ID, cli.FormatMoney(g.CurrentAmount))
	}

	list := st.sess.Goals()
	if len(list) == 0 {
		fmt.Println("\n  No savings goals yet.")
		hint(`Create one with: fburn goals --create "Laptop:900:2025-01-15"`)
		return nil
	}

	today := st.sess.Today()
	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS GOALS"))
	fmt.Println()

	rows := make([][]string, 0, len(list))
	for _, g := range list {
		status := cli.FormatDays(goals.DaysRemaining(g, today))
		if goals.IsCompleted(g) {
			status = "completed"
		}
		rows = append(rows, []string{
			fmt.Sprintf("#%d %s", g.ID, truncate(g.Title, 22)),
			cli.Label(string(g.Priority)),
			cli.FormatMoney(g.CurrentAmount),
			cli.FormatMoney(g.TargetAmount),
			cli.FormatPercent(goals.ProgressPercent(g)),
			status,
		})
	}

	sum := st.sess.GoalSummary()
	rows = append(rows,
		[]string{"---"},
		[]string{
			fmt.Sprintf("%d goals, %d done", sum.Count, sum.CompletedCount), "",
			cli.FormatMoney(sum.TotalSaved),
			cli.FormatMoney(sum.TotalTarget),
			cli.FormatPercent(sum.ProgressPercent),
			"",
		},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Goal", "Priority", "Saved", "Target", "Progress", "Due"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderProgressBar(sum.ProgressPercent, 40))
	if sum.Remaining.IsPositive() {
		fmt.Printf("  %s left to reach all goals\n", cli.FormatMoney(sum.Remaining))
	}
	fmt.Println()
	return nil
}
