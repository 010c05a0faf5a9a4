package model

import "github.com/shopspring/decimal"

// AlertLevel classifies how much of the budget has been consumed.
type AlertLevel string

const (
	AlertSafe    AlertLevel = "safe"
	AlertWarning AlertLevel = "warning"
	AlertDanger  AlertLevel = "danger"
)

// BudgetConfig holds the per-session targets.
type BudgetConfig struct {
	MonthlyBudget    decimal.Decimal
	SavingsGoalTotal decimal.Decimal
	CurrentSavings   decimal.Decimal
	LastPeriodSpent  decimal.Decimal
	PeriodDays       int
}

// Direction frames a period-over-period change.
type Direction int

const (
	Unchanged Direction = iota
	Increase
	Decrease
)

func (d Direction) String() string {
	switch d {
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	default:
		return "unchanged"
	}
}

// Delta is the signed change between the current and previous period.
type Delta struct {
	Amount    decimal.Decimal // current - previous
	Direction Direction
}

// BudgetStats holds budget tracking and forecast data.
type BudgetStats struct {
	MonthlyBudget        decimal.Decimal
	TotalSpent           decimal.Decimal
	BudgetRemaining      decimal.Decimal
	BudgetUsedPercent    float64
	Alert                AlertLevel
	DaysLeft             int
	DailyBudgetRemaining decimal.Decimal
	ProjectedSpend       decimal.Decimal
	LastPeriodSpent      decimal.Decimal
	MonthOverMonth       Delta
	CurrentSavings       decimal.Decimal
	SavingsGoalTotal     decimal.Decimal
	SavingsProgress      float64
}
