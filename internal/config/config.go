// Package config loads and saves the fburn TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/theirongolddev/fburn/internal/goals"
	"github.com/theirongolddev/fburn/internal/model"
	"github.com/theirongolddev/fburn/internal/tui/theme"
)

// Environment variables read after the optional .env file.
const (
	EnvConfigPath    = "FBURN_CONFIG"
	EnvMonthlyBudget = "FBURN_MONTHLY_BUDGET"
	EnvSavingsGoal   = "FBURN_SAVINGS_GOAL"
)

// Config holds all fburn configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Budget     BudgetConfig     `toml:"budget"`
	Appearance AppearanceConfig `toml:"appearance"`
	Goals      []GoalSeed       `toml:"goals,omitempty"`
	Tips       []TipSeed        `toml:"tips,omitempty"`
}

// GeneralConfig holds session and logging preferences.
type GeneralConfig struct {
	Seed           bool   `toml:"seed"`
	RecentCount    int    `toml:"recent_count"`
	StartingPoints int    `toml:"starting_points"`
	LogLevel       string `toml:"log_level"`
	LogFormat      string `toml:"log_format"`
}

// BudgetConfig holds the period's targets. Amounts accept TOML numbers or
// strings; Save writes strings so no precision is lost.
type BudgetConfig struct {
	MonthlyBudget   decimal.Decimal `toml:"monthly_budget"`
	SavingsGoal     decimal.Decimal `toml:"savings_goal"`
	CurrentSavings  decimal.Decimal `toml:"current_savings"`
	LastPeriodSpent decimal.Decimal `toml:"last_period_spent"`
	SpentToDate     decimal.Decimal `toml:"spent_to_date"`
	PeriodDays      int             `toml:"period_days"`
	DaysLeft        int             `toml:"days_left"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// GoalSeed is a savings goal created at session start.
type GoalSeed struct {
	Title    string          `toml:"title"`
	Target   decimal.Decimal `toml:"target"`
	Date     string          `toml:"date"`
	Category string          `toml:"category,omitempty"`
	Priority string          `toml:"priority,omitempty"`
	Saved    decimal.Decimal `toml:"saved"`
}

// TipSeed is an extra savings tip appended to the built-in ones.
type TipSeed struct {
	Category   string          `toml:"category"`
	Suggestion string          `toml:"suggestion"`
	Savings    decimal.Decimal `toml:"savings"`
	Difficulty string          `toml:"difficulty,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Seed:           true,
			RecentCount:    5,
			StartingPoints: 1250,
			LogLevel:       "warn",
			LogFormat:      "text",
		},
		Budget: BudgetConfig{
			MonthlyBudget:   decimal.NewFromInt(800),
			SavingsGoal:     decimal.NewFromInt(1000),
			CurrentSavings:  decimal.NewFromInt(350),
			LastPeriodSpent: decimal.NewFromInt(580),
			SpentToDate:     decimal.NewFromInt(542),
			PeriodDays:      30,
			DaysLeft:        18,
		},
		Appearance: AppearanceConfig{
			Theme: theme.FlexokiDark.Name,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fburn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fburn")
}

// ConfigPath returns the full path to the config file. FBURN_CONFIG wins
// over the XDG location.
func ConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadDotEnv loads .env files from the working directory and the config
// directory. Missing files are skipped and variables already set in the
// process environment are kept.
func LoadDotEnv() error {
	for _, p := range []string{".env", filepath.Join(ConfigDir(), ".env")} {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads the config file at ConfigPath.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config file at path, returning defaults if it doesn't
// exist, then applies environment overrides and validates the result.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from flag, env, or XDG dir
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	overrides := []struct {
		key string
		dst *decimal.Decimal
	}{
		{EnvMonthlyBudget, &cfg.Budget.MonthlyBudget},
		{EnvSavingsGoal, &cfg.Budget.SavingsGoal},
	}
	for _, o := range overrides {
		raw, ok := os.LookupEnv(o.key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		d, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", o.key, raw)
		}
		*o.dst = d
	}
	return nil
}

// Validate rejects negative amounts, unknown themes, and malformed seeds.
func (c Config) Validate() error {
	amounts := []struct {
		field string
		v     decimal.Decimal
	}{
		{"monthly_budget", c.Budget.MonthlyBudget},
		{"savings_goal", c.Budget.SavingsGoal},
		{"current_savings", c.Budget.CurrentSavings},
		{"last_period_spent", c.Budget.LastPeriodSpent},
		{"spent_to_date", c.Budget.SpentToDate},
	}
	for _, a := range amounts {
		if a.v.IsNegative() {
			return model.NewValidationError(a.field, "must not be negative, got %s", a.v.String())
		}
	}
	if c.Budget.PeriodDays < 0 {
		return model.NewValidationError("period_days", "must not be negative, got %d", c.Budget.PeriodDays)
	}
	if c.General.RecentCount < 0 {
		return model.NewValidationError("recent_count", "must not be negative, got %d", c.General.RecentCount)
	}
	if c.Appearance.Theme != "" {
		if _, ok := theme.Lookup(c.Appearance.Theme); !ok {
			return model.NewValidationError("theme", "unknown theme %q (have %s)",
				c.Appearance.Theme, strings.Join(theme.Names(), ", "))
		}
	}
	for i, g := range c.Goals {
		if _, err := goals.ValidateInput(g.Input()); err != nil {
			return fmt.Errorf("goal %d: %w", i+1, err)
		}
		if g.Saved.IsNegative() {
			return fmt.Errorf("goal %d: %w", i+1, model.NewValidationError("saved", "must not be negative"))
		}
	}
	if _, err := c.TipList(); err != nil {
		return err
	}
	return nil
}

// BudgetModel converts the budget section into the domain type.
func (c Config) BudgetModel() model.BudgetConfig {
	return model.BudgetConfig{
		MonthlyBudget:    c.Budget.MonthlyBudget,
		SavingsGoalTotal: c.Budget.SavingsGoal,
		CurrentSavings:   c.Budget.CurrentSavings,
		LastPeriodSpent:  c.Budget.LastPeriodSpent,
		PeriodDays:       c.Budget.PeriodDays,
	}
}

// Input converts a goal seed to tracker input.
func (g GoalSeed) Input() goals.GoalInput {
	return goals.GoalInput{
		Title:        g.Title,
		TargetAmount: g.Target,
		TargetDate:   g.Date,
		Category:     g.Category,
		Priority:     g.Priority,
	}
}

// GoalInputs returns the goal seeds as tracker input.
func (c Config) GoalInputs() []goals.GoalInput {
	out := make([]goals.GoalInput, len(c.Goals))
	for i, g := range c.Goals {
		out[i] = g.Input()
	}
	return out
}

// TipList parses the tip seeds.
func (c Config) TipList() ([]model.Tip, error) {
	out := make([]model.Tip, 0, len(c.Tips))
	for i, t := range c.Tips {
		cat, err := model.ParseCategory(t.Category)
		if err != nil {
			return nil, fmt.Errorf("tip %d: %w", i+1, err)
		}
		diff, err := model.ParseDifficulty(t.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("tip %d: %w", i+1, err)
		}
		out = append(out, model.Tip{
			Category:         cat,
			Suggestion:       t.Suggestion,
			PotentialSavings: t.Savings,
			Difficulty:       diff,
		})
	}
	return out, nil
}

// Save writes the config to ConfigPath.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user-chosen config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists at ConfigPath.
func Exists() bool {
	return ExistsAt(ConfigPath())
}

// ExistsAt returns true if a config file exists at path.
func ExistsAt(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
