// Package cmd implements the fburn CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/theirongolddev/fburn/internal/config"
	"github.com/theirongolddev/fburn/internal/logging"
	"github.com/theirongolddev/fburn/internal/model"
	"github.com/theirongolddev/fburn/internal/session"
	"github.com/theirongolddev/fburn/internal/tips"
	"github.com/theirongolddev/fburn/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagBudget    string
	flagDaysLeft  int
	flagToday     string
	flagNoSeed    bool
	flagQuiet     bool
	flagLogLevel  string
	flagLogFormat string
	flagConfig    string
)

var rootCmd = &cobra.Command{
	Use:           "fburn",
	Short:         "Student budget and savings metrics",
	Long:          "Track spending against a monthly budget, watch savings goals, and get tips to spend less.",
	RunE:          runSummary,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBudget, "budget", "b", "", "Monthly budget override (e.g. 800 or 750.50)")
	rootCmd.PersistentFlags().IntVar(&flagDaysLeft, "days-left", -1, "Days left in the budget period (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "Treat this date (YYYY-MM-DD) as today")
	rootCmd.PersistentFlags().BoolVar(&flagNoSeed, "no-seed", false, "Start with an empty ledger instead of demo data")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress hints and alerts")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file path")
}

// logOutput receives log records. The TUI swaps it out because the alt
// screen owns the terminal.
var logOutput io.Writer = os.Stderr

// appState is everything a command needs for one run.
type appState struct {
	cfg      config.Config
	sess     *session.Session
	daysLeft int
	logger   *slog.Logger
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.ConfigPath()
}

func loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}
	return config.LoadFrom(configPath())
}

// loadSession is the shared setup path used by all commands: config, then
// logging, then a session built from both.
func loadSession() (*appState, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level, format := cfg.General.LogLevel, cfg.General.LogFormat
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	if flagLogFormat != "" {
		format = flagLogFormat
	}
	logger, err := logging.Setup(logOutput, level, format)
	if err != nil {
		return nil, err
	}
	theme.SetActive(cfg.Appearance.Theme)

	if flagBudget != "" {
		b, err := model.ParseAmount(flagBudget)
		if err != nil {
			return nil, fmt.Errorf("--budget: %w", err)
		}
		cfg.Budget.MonthlyBudget = b
	}

	now := time.Now
	if flagToday != "" {
		today, err := model.ParseDate(flagToday)
		if err != nil {
			return nil, fmt.Errorf("--today: %w", err)
		}
		now = func() time.Time { return today }
	}

	extra, err := cfg.TipList()
	if err != nil {
		return nil, err
	}
	catalog, err := tips.NewCatalog(extra...)
	if err != nil {
		return nil, fmt.Errorf("tips: %w", err)
	}

	opts := []session.Option{
		session.WithClock(now),
		session.WithLogger(logger.With("component", "session")),
		session.WithCatalog(catalog),
		session.WithRecentCount(cfg.General.RecentCount),
		session.WithSeed(nil, cfg.GoalInputs()),
	}

	var sess *session.Session
	if cfg.General.Seed && !flagNoSeed {
		opts = append(opts, session.WithPoints(cfg.General.StartingPoints))
		sess, err = session.Seeded(cfg.BudgetModel(), cfg.Budget.SpentToDate, opts...)
	} else {
		sess, err = session.New(cfg.BudgetModel(), opts...)
	}
	if err != nil {
		return nil, err
	}

	goalsList := sess.Goals()
	for i, g := range cfg.Goals {
		if g.Saved.IsPositive() {
			if _, err := sess.Deposit(goalsList[i].ID, g.Saved); err != nil {
				return nil, err
			}
		}
	}

	daysLeft := cfg.Budget.DaysLeft
	if flagDaysLeft >= 0 {
		daysLeft = flagDaysLeft
	}

	logger.Debug("loaded",
		"config", configPath(),
		"seeded", cfg.General.Seed && !flagNoSeed,
		"days_left", daysLeft,
	)
	return &appState{cfg: cfg, sess: sess, daysLeft: daysLeft, logger: logger}, nil
}

func hint(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Printf("  "+format+"\n", args...)
}
