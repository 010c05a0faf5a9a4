package session

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/fburn/internal/goals"
	"github.com/theirongolddev/fburn/internal/ledger"
	"github.com/theirongolddev/fburn/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var testToday = time.Date(2024, 9, 13, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testToday }

func testBudget() model.BudgetConfig {
	return model.BudgetConfig{
		MonthlyBudget:    dec("800"),
		SavingsGoalTotal: dec("1000"),
		CurrentSavings:   dec("350"),
		LastPeriodSpent:  dec("580"),
		PeriodDays:       30,
	}
}

func seeded(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s, err := Seeded(testBudget(), dec("542"), append([]Option{WithClock(fixedClock)}, opts...)...)
	require.NoError(t, err)
	return s
}

func TestSeededSession(t *testing.T) {
	s := seeded(t)

	assert.Equal(t, "542", s.TotalSpent().String())
	all := s.Expenses()
	require.Len(t, all, 8)
	assert.Equal(t, "Grocery shopping", all[0].Description)
	assert.Equal(t, time.Date(2024, 9, 12, 0, 0, 0, 0, time.UTC), all[0].Date)
	assert.Equal(t, "Laundry", all[7].Description)
	for _, e := range all {
		assert.True(t, e.Auto, e.Description)
	}

	r := s.Rewards()
	assert.Equal(t, 1250, r.Points)
	assert.Equal(t, 3, r.Level)
}

func TestDashboardSnapshot(t *testing.T) {
	d := seeded(t).Dashboard(18)

	assert.Equal(t, "258", d.Stats.BudgetRemaining.String())
	assert.InDelta(t, 67.75, d.Stats.BudgetUsedPercent, 1e-9)
	assert.Equal(t, model.AlertSafe, d.Stats.Alert)
	assert.InDelta(t, 35.0, d.Stats.SavingsProgress, 1e-9)
	assert.Equal(t, model.Decrease, d.Stats.MonthOverMonth.Direction)

	require.Len(t, d.Recent, DefaultRecentCount)
	assert.Equal(t, "Grocery shopping", d.Recent[0].Description)

	require.NotEmpty(t, d.Categories)
	assert.Equal(t, model.CategoryFood, d.Categories[0].Category)
	assert.Equal(t, "130", d.Categories[0].Amount.String())

	require.Len(t, d.Tips, 3)
	assert.Equal(t, model.CategoryFood, d.Tips[0].Category)
	assert.Equal(t, model.CategoryEntertainment, d.Tips[1].Category)
	assert.Equal(t, "140", d.Savings.String())
	assert.Len(t, d.Insights, 2)
	assert.Equal(t, testToday.Truncate(24*time.Hour), d.Today)
}

func TestAddExpenseAwardsPoints(t *testing.T) {
	s := seeded(t)

	e, err := s.AddExpense(ledger.ExpenseInput{Amount: dec("12.50"), Description: "Lunch", Category: model.CategoryFood})
	require.NoError(t, err)
	assert.Equal(t, 9, e.ID)
	assert.Equal(t, time.Date(2024, 9, 13, 0, 0, 0, 0, time.UTC), e.Date)
	assert.Equal(t, "554.5", s.TotalSpent().String())
	assert.Equal(t, 1260, s.Rewards().Points)

	_, err = s.AddExpense(ledger.ExpenseInput{Amount: dec("5"), Description: "Import", Category: model.CategoryOther, Auto: true})
	require.NoError(t, err)
	assert.Equal(t, 1260, s.Rewards().Points)

	_, err = s.AddExpense(ledger.ExpenseInput{Amount: dec("5"), Category: model.CategoryOther})
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Equal(t, 1260, s.Rewards().Points)
}

func TestDangerAlert(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := New(testBudget(), WithClock(fixedClock), WithLogger(logger), WithSpentToDate(dec("750")))
	require.NoError(t, err)
	assert.Zero(t, len(s.Expenses()))

	d := s.Dashboard(18)
	assert.InDelta(t, 93.75, d.Stats.BudgetUsedPercent, 1e-9)
	assert.Equal(t, model.AlertDanger, d.Stats.Alert)
	assert.Contains(t, buf.String(), "budget alert")
	assert.Empty(t, d.Categories)
}

func TestOversizedSpendStaysInDanger(t *testing.T) {
	s, err := New(testBudget(), WithClock(fixedClock), WithSpentToDate(dec("1e400")))
	require.NoError(t, err)

	stats := s.Stats(18)
	assert.Equal(t, model.AlertDanger, stats.Alert)
	assert.Greater(t, stats.BudgetUsedPercent, 100.0)
	assert.True(t, stats.BudgetRemaining.IsNegative())

	_, err = model.ParseAmount("1e400")
	assert.ErrorIs(t, err, model.ErrValidation)
	_, err = s.AddExpense(ledger.ExpenseInput{Amount: dec("1e400"), Description: "Typo", Category: model.CategoryOther})
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Empty(t, s.Expenses())
}

func TestGoalsThroughSession(t *testing.T) {
	s, err := New(testBudget(), WithClock(fixedClock), WithSeed(nil, []goals.GoalInput{
		{Title: "Emergency fund", TargetAmount: dec("1000"), TargetDate: "2024-12-31", Priority: "high"},
	}))
	require.NoError(t, err)

	g, err := s.Deposit(1, dec("350"))
	require.NoError(t, err)
	assert.Equal(t, "350", g.CurrentAmount.String())

	g, err = s.Deposit(1, dec("700"))
	require.NoError(t, err)
	assert.True(t, goals.IsCompleted(g))

	_, err = s.Deposit(7, dec("1"))
	assert.ErrorIs(t, err, model.ErrNotFound)

	g2, err := s.CreateGoal(goals.GoalInput{Title: "Concert", TargetAmount: dec("120"), TargetDate: "2024-11-01"})
	require.NoError(t, err)
	assert.Equal(t, 2, g2.ID)

	sum := s.GoalSummary()
	assert.Equal(t, 2, sum.Count)
	assert.Equal(t, 1, sum.CompletedCount)
	assert.Equal(t, "1050", sum.TotalSaved.String())
}

func TestBadSeedFails(t *testing.T) {
	_, err := New(testBudget(), WithSeed([]ledger.ExpenseInput{{Amount: dec("-1"), Description: "x", Category: model.CategoryFood}}, nil))
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = New(testBudget(), WithSeed(nil, []goals.GoalInput{{Title: "x", TargetAmount: dec("1"), TargetDate: "nope"}}))
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestLevel(t *testing.T) {
	assert.Equal(t, 1, Level(0))
	assert.Equal(t, 1, Level(499))
	assert.Equal(t, 2, Level(500))
	assert.Equal(t, 3, Level(1250))
	assert.Equal(t, 1, Level(-10))
}
