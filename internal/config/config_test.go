package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/fburn/internal/model"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvMonthlyBudget, "")
	t.Setenv(EnvSavingsGoal, "")
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ConfigPath(); got != filepath.Join(dir, "fburn", "config.toml") {
		t.Fatalf("ConfigPath = %q", got)
	}
	if !cfg.Budget.MonthlyBudget.Equal(decimal.NewFromInt(800)) {
		t.Errorf("monthly budget = %s, want 800", cfg.Budget.MonthlyBudget)
	}
	if !cfg.Budget.SpentToDate.Equal(decimal.NewFromInt(542)) {
		t.Errorf("spent to date = %s, want 542", cfg.Budget.SpentToDate)
	}
	if cfg.Budget.DaysLeft != 18 || cfg.Budget.PeriodDays != 30 {
		t.Errorf("days = %d/%d, want 18/30", cfg.Budget.DaysLeft, cfg.Budget.PeriodDays)
	}
	if !cfg.General.Seed {
		t.Error("seed should default to true")
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("theme = %q", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	cfg.Budget.MonthlyBudget = decimal.RequireFromString("1234.56")
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Goals = []GoalSeed{{
		Title: "Spring break", Target: decimal.NewFromInt(600), Date: "2025-03-10", Priority: "high",
	}}
	cfg.Tips = []TipSeed{{
		Category: "utilities", Suggestion: "Air-dry laundry", Savings: decimal.NewFromInt(8),
	}}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Budget.MonthlyBudget.Equal(cfg.Budget.MonthlyBudget) {
		t.Errorf("monthly budget = %s, want 1234.56", got.Budget.MonthlyBudget)
	}
	if got.Appearance.Theme != "tokyo-night" {
		t.Errorf("theme = %q", got.Appearance.Theme)
	}
	if len(got.Goals) != 1 || got.Goals[0].Title != "Spring break" {
		t.Fatalf("goals = %+v", got.Goals)
	}
	tips, err := got.TipList()
	if err != nil || len(tips) != 1 || tips[0].Category != model.CategoryUtilities {
		t.Fatalf("tips = %+v, err %v", tips, err)
	}
	if tips[0].Difficulty != model.DifficultyEasy {
		t.Errorf("difficulty = %q, want easy", tips[0].Difficulty)
	}
}

func TestLoadAcceptsNumbers(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, `
[budget]
monthly_budget = 950
savings_goal = 1200.5
days_left = 10

[[goals]]
title = "Laptop"
target = 900
date = "2025-01-15"
`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Budget.MonthlyBudget.Equal(decimal.NewFromInt(950)) {
		t.Errorf("monthly budget = %s", cfg.Budget.MonthlyBudget)
	}
	if !cfg.Budget.SavingsGoal.Equal(decimal.RequireFromString("1200.5")) {
		t.Errorf("savings goal = %s", cfg.Budget.SavingsGoal)
	}
	if cfg.Budget.DaysLeft != 10 {
		t.Errorf("days left = %d", cfg.Budget.DaysLeft)
	}
	// Keys not in the file keep their defaults.
	if !cfg.Budget.CurrentSavings.Equal(decimal.NewFromInt(350)) {
		t.Errorf("current savings = %s", cfg.Budget.CurrentSavings)
	}
	in := cfg.GoalInputs()
	if len(in) != 1 || !in[0].TargetAmount.Equal(decimal.NewFromInt(900)) {
		t.Errorf("goal inputs = %+v", in)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvMonthlyBudget, "650")
	t.Setenv(EnvSavingsGoal, "2000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Budget.MonthlyBudget.Equal(decimal.NewFromInt(650)) {
		t.Errorf("monthly budget = %s, want 650", cfg.Budget.MonthlyBudget)
	}
	if got := cfg.BudgetModel().SavingsGoalTotal; !got.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("savings goal = %s, want 2000", got)
	}

	t.Setenv(EnvMonthlyBudget, "lots")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric override")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	t.Chdir(t.TempDir())
	writeFile(t, filepath.Join(dir, "fburn", ".env"), "FBURN_SAVINGS_GOAL=1500\n")
	os.Unsetenv(EnvSavingsGoal)

	if err := LoadDotEnv(); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Budget.SavingsGoal.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("savings goal = %s, want 1500", cfg.Budget.SavingsGoal)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative budget", func(c *Config) { c.Budget.MonthlyBudget = decimal.NewFromInt(-1) }, "monthly_budget"},
		{"unknown theme", func(c *Config) { c.Appearance.Theme = "neon" }, "theme"},
		{"bad goal date", func(c *Config) {
			c.Goals = []GoalSeed{{Title: "x", Target: decimal.NewFromInt(1), Date: "someday"}}
		}, "goal 1"},
		{"bad tip category", func(c *Config) {
			c.Tips = []TipSeed{{Category: "pets", Suggestion: "x", Savings: decimal.NewFromInt(1)}}
		}, "tip 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
