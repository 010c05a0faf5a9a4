package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Priority ranks a savings goal.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists every priority from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriority validates a priority name. An empty string means medium.
func ParsePriority(s string) (Priority, error) {
	p := Priority(normalize(s))
	switch p {
	case "":
		return PriorityMedium, nil
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	}
	return "", NewValidationError("priority", "unknown priority %q", s)
}

// DefaultGoalCategory tags goals created without a category.
const DefaultGoalCategory = "general"

// Goal is a named savings target.
type Goal struct {
	ID            int
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	Category      string
	Priority      Priority
}

// GoalSummary folds the whole goal set.
type GoalSummary struct {
	Count           int
	CompletedCount  int
	TotalSaved      decimal.Decimal
	TotalTarget     decimal.Decimal
	Remaining       decimal.Decimal // TotalTarget - TotalSaved, may be negative
	ProgressPercent float64
}
