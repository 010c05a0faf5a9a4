// Package ledger holds the ordered expense records of a session.
package ledger

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/fburn/internal/model"
)

const maxDescriptionLen = 200

// ExpenseInput is what a caller supplies to AddExpense.
type ExpenseInput struct {
	Amount      decimal.Decimal
	Description string
	Category    model.Category
	Date        time.Time // zero means today
	Auto        bool
}

// Ledger is an append-only, most-recent-first sequence of expenses.
// It is not safe for concurrent use; a session owns exactly one.
type Ledger struct {
	records []model.Expense
	lastID  int
	total   decimal.Decimal
	now     func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the clock used for the default expense date.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// New returns an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now, total: decimal.Zero}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Validate checks an input without touching the ledger.
func Validate(in ExpenseInput) error {
	if err := model.CheckAmount("amount", in.Amount); err != nil {
		return err
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return model.NewValidationError("description", "description is required")
	}
	if utf8.RuneCountInString(desc) > maxDescriptionLen {
		return model.NewValidationError("description", "too long (max %d characters)", maxDescriptionLen)
	}
	if !in.Category.Valid() {
		return model.NewValidationError("category", "unknown category %q", in.Category)
	}
	return nil
}

// AddExpense validates in, assigns the next id, and inserts the record at
// the head of the ledger.
func (l *Ledger) AddExpense(in ExpenseInput) (model.Expense, error) {
	if err := Validate(in); err != nil {
		return model.Expense{}, err
	}

	date := in.Date
	if date.IsZero() {
		date = l.now()
	}

	l.lastID++
	e := model.Expense{
		ID:          l.lastID,
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
		Date:        model.DateOf(date),
		Auto:        in.Auto,
	}
	l.records = slices.Insert(l.records, 0, e)
	l.total = l.total.Add(e.Amount)
	return e, nil
}

// ListRecent returns up to n records, most recent first.
func (l *Ledger) ListRecent(n int) []model.Expense {
	if n <= 0 {
		return []model.Expense{}
	}
	if n > len(l.records) {
		n = len(l.records)
	}
	return slices.Clone(l.records[:n])
}

// All returns every record, most recent first.
func (l *Ledger) All() []model.Expense {
	return slices.Clone(l.records)
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// TotalSpent returns the opening total plus the running sum of all amounts.
func (l *Ledger) TotalSpent() decimal.Decimal {
	return l.total
}

// ItemizedTotal sums the amounts of the records alone.
func (l *Ledger) ItemizedTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range l.records {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// ReconcileTo sets the opening total so TotalSpent equals spent given the
// records already held. The opening total covers spend recorded before the
// itemized history began; no record is created for it. When spent is below
// the itemized sum the opening total is zero.
func (l *Ledger) ReconcileTo(spent decimal.Decimal) {
	itemized := l.ItemizedTotal()
	opening := spent.Sub(itemized)
	if !opening.IsPositive() {
		opening = decimal.Zero
	}
	l.total = itemized.Add(opening)
}

// AggregateByCategory sums amounts per category. Categories without
// expenses are absent. Map iteration order is unspecified.
func (l *Ledger) AggregateByCategory() map[model.Category]decimal.Decimal {
	totals := make(map[model.Category]decimal.Decimal)
	for _, e := range l.records {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}
