package cmd

import (
	"fmt"

	"github.com/theirongolddev/fburn/internal/cli"
	"github.com/theirongolddev/fburn/internal/tips"

	"github.com/spf13/cobra"
)

var flagTipsRanked bool

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Savings tips and spending insights",
	RunE:  runTips,
}

func init() {
	tipsCmd.Flags().BoolVarP(&flagTipsRanked, "ranked", "r", false, "Order tips by how much you spend in their category")
	rootCmd.AddCommand(tipsCmd)
}

func runTips(_ *cobra.Command, _ []string) error {
	st, err := loadSession()
	if err != nil {
		return err
	}

	list := st.sess.Tips()
	if flagTipsRanked {
		list = st.sess.RankedTips()
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS TIPS"))
	fmt.Println()

	rows := make([][]string, 0, len(list))
	for _, t := range list {
		rows = append(rows, []string{
			t.Suggestion,
			cli.CategoryLabel(t.Category),
			cli.Label(string(t.Difficulty)),
			cli.FormatMoneyShort(t.PotentialSavings) + "/mo",
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Tip", "Category", "Effort", "Saves"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Potential savings: %s/month\n\n", cli.FormatMoneyShort(tips.TotalPotentialSavings(list)))

	for _, in := range st.sess.Insights() {
		fmt.Println(cli.RenderSection(in.Title))
		fmt.Printf("  %s\n\n", in.Message)
	}
	return nil
}
