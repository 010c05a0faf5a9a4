package cmd

import (
	"fmt"

	"github.com/theirongolddev/fburn/internal/cli"
	"github.com/theirongolddev/fburn/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := configPath()
	fmt.Println(cli.RenderKV("Config file", path))
	if config.ExistsAt(path) {
		fmt.Println(cli.RenderKV("Status", "loaded"))
	} else {
		fmt.Println(cli.RenderKV("Status", "using defaults (no config file)"))
	}
	fmt.Println()

	fmt.Println(cli.RenderSection("[General]"))
	fmt.Println(cli.RenderKV("Demo data", fmt.Sprintf("%v", cfg.General.Seed)))
	fmt.Println(cli.RenderKV("Recent expenses", fmt.Sprintf("%d", cfg.General.RecentCount)))
	fmt.Println(cli.RenderKV("Starting points", cli.FormatNumber(int64(cfg.General.StartingPoints))))
	fmt.Println(cli.RenderKV("Log", cfg.General.LogLevel+" / "+cfg.General.LogFormat))
	fmt.Println()

	b := cfg.Budget
	fmt.Println(cli.RenderSection("[Budget]"))
	fmt.Println(cli.RenderKV("Monthly budget", cli.FormatMoney(b.MonthlyBudget)))
	fmt.Println(cli.RenderKV("Spent to date", cli.FormatMoney(b.SpentToDate)))
	fmt.Println(cli.RenderKV("Last period", cli.FormatMoney(b.LastPeriodSpent)))
	fmt.Println(cli.RenderKV("Savings", fmt.Sprintf("%s of %s", cli.FormatMoney(b.CurrentSavings), cli.FormatMoney(b.SavingsGoal))))
	fmt.Println(cli.RenderKV("Period", fmt.Sprintf("%d days, %d left", b.PeriodDays, b.DaysLeft)))
	fmt.Println()

	fmt.Println(cli.RenderSection("[Appearance]"))
	fmt.Println(cli.RenderKV("Theme", cfg.Appearance.Theme))
	fmt.Println()

	if len(cfg.Goals) > 0 {
		fmt.Println(cli.RenderSection("[Goals]"))
		for _, g := range cfg.Goals {
			fmt.Println(cli.RenderKV(g.Title, fmt.Sprintf("%s by %s", cli.FormatMoney(g.Target), g.Date)))
		}
		fmt.Println()
	}
	if len(cfg.Tips) > 0 {
		fmt.Println(cli.RenderKV("Extra tips", fmt.Sprintf("%d", len(cfg.Tips))))
		fmt.Println()
	}

	hint("Run `fburn setup` to reconfigure.")
	return nil
}
