// Package metrics derives budget figures from ledger totals and targets.
//
// Every function is pure. A zero or negative denominator yields 0 rather
// than an error or a non-finite value, so a dashboard can always render.
// Percentages are returned unrounded.
package metrics

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/fburn/internal/model"
)

// Alert thresholds, inclusive lower bounds in percent.
const (
	WarningThreshold = 75.0
	DangerThreshold  = 90.0
)

var hundred = decimal.NewFromInt(100)

// Percent returns part/whole*100, or 0 when whole is not positive. The
// ratio is taken in decimal; results beyond float64 range saturate.
func Percent(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	p := part.Mul(hundred).Div(whole).InexactFloat64()
	switch {
	case math.IsInf(p, 1):
		return math.MaxFloat64
	case math.IsInf(p, -1):
		return -math.MaxFloat64
	}
	return p
}

// BudgetRemaining returns budget - spent. Overspend is negative.
func BudgetRemaining(budget, spent decimal.Decimal) decimal.Decimal {
	return budget.Sub(spent)
}

// BudgetUsedPercent returns how much of the budget has been spent.
func BudgetUsedPercent(spent, budget decimal.Decimal) float64 {
	return Percent(spent, budget)
}

// Level classifies a budget-used percentage.
func Level(percent float64) model.AlertLevel {
	switch {
	case percent >= DangerThreshold:
		return model.AlertDanger
	case percent >= WarningThreshold:
		return model.AlertWarning
	default:
		return model.AlertSafe
	}
}

// SavingsProgress returns current savings as a percentage of the goal.
func SavingsProgress(current, goal decimal.Decimal) float64 {
	return Percent(current, goal)
}

// DailyBudgetRemaining spreads the remaining budget over daysLeft.
func DailyBudgetRemaining(remaining decimal.Decimal, daysLeft int) decimal.Decimal {
	if daysLeft <= 0 {
		return decimal.Zero
	}
	return remaining.Div(decimal.NewFromInt(int64(daysLeft)))
}

// MonthOverMonthDelta compares this period's spend to the last one.
func MonthOverMonthDelta(spent, lastPeriod decimal.Decimal) model.Delta {
	diff := spent.Sub(lastPeriod)
	d := model.Delta{Amount: diff}
	switch diff.Sign() {
	case 1:
		d.Direction = model.Increase
	case -1:
		d.Direction = model.Decrease
	}
	return d
}

// ProjectedSpend extrapolates the current burn rate over the full period.
func ProjectedSpend(spent decimal.Decimal, daysElapsed, periodDays int) decimal.Decimal {
	if daysElapsed <= 0 || periodDays <= 0 {
		return decimal.Zero
	}
	return spent.Mul(decimal.NewFromInt(int64(periodDays))).Div(decimal.NewFromInt(int64(daysElapsed)))
}

// Inputs bundles what Compute needs.
type Inputs struct {
	Budget     model.BudgetConfig
	TotalSpent decimal.Decimal
	DaysLeft   int
}

// Compute folds every budget metric into one snapshot.
func Compute(in Inputs) model.BudgetStats {
	cfg := in.Budget
	remaining := BudgetRemaining(cfg.MonthlyBudget, in.TotalSpent)
	used := BudgetUsedPercent(in.TotalSpent, cfg.MonthlyBudget)

	return model.BudgetStats{
		MonthlyBudget:        cfg.MonthlyBudget,
		TotalSpent:           in.TotalSpent,
		BudgetRemaining:      remaining,
		BudgetUsedPercent:    used,
		Alert:                Level(used),
		DaysLeft:             in.DaysLeft,
		DailyBudgetRemaining: DailyBudgetRemaining(remaining, in.DaysLeft),
		ProjectedSpend:       ProjectedSpend(in.TotalSpent, cfg.PeriodDays-in.DaysLeft, cfg.PeriodDays),
		LastPeriodSpent:      cfg.LastPeriodSpent,
		MonthOverMonth:       MonthOverMonthDelta(in.TotalSpent, cfg.LastPeriodSpent),
		CurrentSavings:       cfg.CurrentSavings,
		SavingsGoalTotal:     cfg.SavingsGoalTotal,
		SavingsProgress:      SavingsProgress(cfg.CurrentSavings, cfg.SavingsGoalTotal),
	}
}
