package session

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/fburn/internal/ledger"
	"github.com/theirongolddev/fburn/internal/model"
)

// DefaultStartingPoints puts a fresh seeded session at level 3.
const DefaultStartingPoints = 1250

// PointsPerExpense is awarded for each user-entered expense.
const PointsPerExpense = 10

// PointsPerLevel is the width of one reward level.
const PointsPerLevel = 500

type fixture struct {
	amount   int64
	desc     string
	category model.Category
	daysAgo  int
}

// Newest first, as they appear in the recent list.
var fixtures = []fixture{
	{45, "Grocery shopping", model.CategoryFood, 1},
	{120, "Textbooks", model.CategoryEducation, 2},
	{25, "Coffee & snacks", model.CategoryFood, 3},
	{80, "Phone bill", model.CategoryUtilities, 4},
	{15, "Bus pass", model.CategoryTransport, 5},
	{60, "Dinner out", model.CategoryFood, 6},
	{35, "Netflix subscription", model.CategoryEntertainment, 7},
	{22, "Laundry", model.CategoryUtilities, 8},
}

// FixtureExpenses returns the demo expenses dated in the days before today,
// oldest first so that inserting them in order leaves the newest at the head.
func FixtureExpenses(today time.Time) []ledger.ExpenseInput {
	day := model.DateOf(today)
	out := make([]ledger.ExpenseInput, 0, len(fixtures))
	for i := len(fixtures) - 1; i >= 0; i-- {
		f := fixtures[i]
		out = append(out, ledger.ExpenseInput{
			Amount:      decimal.NewFromInt(f.amount),
			Description: f.desc,
			Category:    f.category,
			Date:        day.AddDate(0, 0, -f.daysAgo),
			Auto:        true,
		})
	}
	return out
}
