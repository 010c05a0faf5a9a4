package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/fburn/internal/config"
	"github.com/theirongolddev/fburn/internal/model"
	"github.com/theirongolddev/fburn/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues are the wizard's string-typed form bindings.
type setupValues struct {
	budget      string
	spent       string
	savingsGoal string
	savings     string
	daysLeft    string
	theme       string
	seed        bool
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, err := loadConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	v := setupValues{
		budget:      cfg.Budget.MonthlyBudget.String(),
		spent:       cfg.Budget.SpentToDate.String(),
		savingsGoal: cfg.Budget.SavingsGoal.String(),
		savings:     cfg.Budget.CurrentSavings.String(),
		daysLeft:    strconv.Itoa(cfg.Budget.DaysLeft),
		theme:       cfg.Appearance.Theme,
		seed:        cfg.General.Seed,
	}

	if err := newSetupForm(&v, cfg.Budget.PeriodDays).Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	if err := v.apply(&cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := configPath()
	if err := config.SaveTo(path, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", path)
	hint("Run `fburn setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func newSetupForm(v *setupValues, periodDays int) *huh.Form {
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themes = append(themes, huh.NewOption(t.Name, t.Name))
	}
	nonNegative := func(s string) error {
		_, err := parseSetupAmount(s)
		return err
	}
	days := func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > periodDays {
			return fmt.Errorf("enter a whole number between 0 and %d", periodDays)
		}
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to fburn").
				Description("Set your monthly budget and savings target.\nEverything can be changed later in the config file."),
			huh.NewInput().Title("Monthly budget").Value(&v.budget).Validate(nonNegative),
			huh.NewInput().Title("Spent so far this month").Value(&v.spent).Validate(nonNegative),
			huh.NewInput().Title("Days left in the month").Value(&v.daysLeft).Validate(days),
		),
		huh.NewGroup(
			huh.NewInput().Title("Savings goal").Value(&v.savingsGoal).Validate(nonNegative),
			huh.NewInput().Title("Saved so far").Value(&v.savings).Validate(nonNegative),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Color theme").Options(themes...).Value(&v.theme),
			huh.NewConfirm().Title("Start with demo expenses?").Value(&v.seed),
		),
	).WithTheme(huh.ThemeDracula())
}

// apply copies the wizard answers into cfg.
func (v setupValues) apply(cfg *config.Config) error {
	var err error
	if cfg.Budget.MonthlyBudget, err = parseSetupAmount(v.budget); err != nil {
		return fmt.Errorf("monthly budget: %w", err)
	}
	if cfg.Budget.SpentToDate, err = parseSetupAmount(v.spent); err != nil {
		return fmt.Errorf("spent to date: %w", err)
	}
	if cfg.Budget.SavingsGoal, err = parseSetupAmount(v.savingsGoal); err != nil {
		return fmt.Errorf("savings goal: %w", err)
	}
	if cfg.Budget.CurrentSavings, err = parseSetupAmount(v.savings); err != nil {
		return fmt.Errorf("current savings: %w", err)
	}
	if cfg.Budget.DaysLeft, err = strconv.Atoi(v.daysLeft); err != nil {
		return fmt.Errorf("days left: %w", err)
	}
	cfg.Appearance.Theme = v.theme
	cfg.General.Seed = v.seed
	return nil
}

// parseSetupAmount is ParseAmount that also accepts zero.
func parseSetupAmount(s string) (decimal.Decimal, error) {
	if d, err := decimal.NewFromString(strings.TrimSpace(s)); err == nil && d.IsZero() {
		return decimal.Zero, nil
	}
	return model.ParseAmount(s)
}
