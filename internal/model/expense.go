// Package model defines domain types for fburn budgets, expenses, and goals.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is one of the fixed expense categories.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryEducation     Category = "education"
	CategoryTransport     Category = "transport"
	CategoryUtilities     Category = "utilities"
	CategoryEntertainment Category = "entertainment"
	CategoryOther         Category = "other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryEducation,
	CategoryTransport,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryOther,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Index returns the display position of c, or -1 if c is unknown.
func (c Category) Index() int {
	for i, known := range Categories {
		if known == c {
			return i
		}
	}
	return -1
}

// ParseCategory validates a user-supplied category name.
func ParseCategory(s string) (Category, error) {
	c := Category(normalize(s))
	if !c.Valid() {
		return "", NewValidationError("category", "unknown category %q", s)
	}
	return c, nil
}

// Expense is a single ledger record. Records are values; the ledger hands
// out copies so callers cannot mutate its state.
type Expense struct {
	ID          int
	Amount      decimal.Decimal
	Description string
	Category    Category
	Date        time.Time
	Auto        bool // seeded or imported rather than entered by the user
}

// CategoryTotal is the aggregated spend for one category.
type CategoryTotal struct {
	Category     Category
	Amount       decimal.Decimal
	Count        int
	SharePercent float64
}

// DailySpend is the itemized spend of one calendar day.
type DailySpend struct {
	Date   time.Time
	Amount decimal.Decimal
	Count  int
}
