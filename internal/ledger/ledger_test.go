package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/fburn/internal/model"
)

var fixedNow = time.Date(2024, 9, 13, 15, 4, 5, 0, time.UTC)

func newTestLedger() *Ledger {
	return New(WithClock(func() time.Time { return fixedNow }))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddExpenseAssignsIDsAndPrepends(t *testing.T) {
	l := newTestLedger()

	first, err := l.AddExpense(ExpenseInput{Amount: dec("45"), Description: "Grocery shopping", Category: model.CategoryFood})
	require.NoError(t, err)
	second, err := l.AddExpense(ExpenseInput{Amount: dec("120"), Description: "Textbooks", Category: model.CategoryEducation})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	recent := l.ListRecent(10)
	require.Len(t, recent, 2)
	assert.Equal(t, "Textbooks", recent[0].Description)
	assert.Equal(t, "Grocery shopping", recent[1].Description)
}

func TestAddExpenseIncreasesTotalByExactAmount(t *testing.T) {
	l := newTestLedger()
	amounts := []string{"0.10", "0.20", "19.99", "1000", "0.01"}

	for _, a := range amounts {
		before := l.TotalSpent()
		beforeLen := l.Len()
		_, err := l.AddExpense(ExpenseInput{Amount: dec(a), Description: "x", Category: model.CategoryOther})
		require.NoError(t, err)
		assert.True(t, l.TotalSpent().Equal(before.Add(dec(a))), "after adding %s total=%s", a, l.TotalSpent())
		assert.Equal(t, beforeLen+1, l.Len())
	}
	assert.Equal(t, "1020.3", l.TotalSpent().String())
}

func TestAddExpenseValidation(t *testing.T) {
	l := newTestLedger()
	cases := []struct {
		name string
		in   ExpenseInput
	}{
		{"zero amount", ExpenseInput{Amount: decimal.Zero, Description: "x", Category: model.CategoryFood}},
		{"negative amount", ExpenseInput{Amount: dec("-3"), Description: "x", Category: model.CategoryFood}},
		{"blank description", ExpenseInput{Amount: dec("3"), Description: "   ", Category: model.CategoryFood}},
		{"unknown category", ExpenseInput{Amount: dec("3"), Description: "x", Category: "pets"}},
		{"oversized amount", ExpenseInput{Amount: dec("1e400"), Description: "x", Category: model.CategoryFood}},
		{"description too long", ExpenseInput{Amount: dec("3"), Description: strings.Repeat("a", 201), Category: model.CategoryFood}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.AddExpense(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrValidation)
		})
	}
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.TotalSpent().IsZero())

	// A failed insert must not consume an id.
	e, err := l.AddExpense(ExpenseInput{Amount: dec("1"), Description: "ok", Category: model.CategoryFood})
	require.NoError(t, err)
	assert.Equal(t, 1, e.ID)
}

func TestDescriptionLimitCountsCharacters(t *testing.T) {
	l := newTestLedger()
	desc := strings.Repeat("é", maxDescriptionLen)
	e, err := l.AddExpense(ExpenseInput{Amount: dec("4.50"), Description: desc, Category: model.CategoryFood})
	require.NoError(t, err)
	assert.Equal(t, desc, e.Description)

	_, err = l.AddExpense(ExpenseInput{Amount: dec("4.50"), Description: desc + "é", Category: model.CategoryFood})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestAddExpenseDefaultsDateToToday(t *testing.T) {
	l := newTestLedger()

	e, err := l.AddExpense(ExpenseInput{Amount: dec("5"), Description: "Coffee", Category: model.CategoryFood})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 9, 13, 0, 0, 0, 0, time.UTC), e.Date)
	assert.False(t, e.Auto)

	given := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	e, err = l.AddExpense(ExpenseInput{Amount: dec("5"), Description: "Bus", Category: model.CategoryTransport, Date: given, Auto: true})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), e.Date)
	assert.True(t, e.Auto)
}

func TestListRecentBounds(t *testing.T) {
	l := newTestLedger()
	for i := 0; i < 3; i++ {
		_, err := l.AddExpense(ExpenseInput{Amount: dec("1"), Description: "x", Category: model.CategoryOther})
		require.NoError(t, err)
	}

	assert.Len(t, l.ListRecent(2), 2)
	assert.Len(t, l.ListRecent(5), 3)
	assert.Empty(t, l.ListRecent(0))
	assert.Empty(t, l.ListRecent(-1))
	assert.Equal(t, 3, l.ListRecent(1)[0].ID)

	// Returned slices are copies.
	got := l.ListRecent(1)
	got[0].Description = "mutated"
	assert.Equal(t, "x", l.ListRecent(1)[0].Description)
}

func TestAggregateByCategory(t *testing.T) {
	l := newTestLedger()
	assert.Empty(t, l.AggregateByCategory())

	inputs := []ExpenseInput{
		{Amount: dec("45"), Description: "Grocery shopping", Category: model.CategoryFood},
		{Amount: dec("120"), Description: "Textbooks", Category: model.CategoryEducation},
		{Amount: dec("25"), Description: "Coffee & snacks", Category: model.CategoryFood},
		{Amount: dec("80"), Description: "Phone bill", Category: model.CategoryUtilities},
	}
	for _, in := range inputs {
		_, err := l.AddExpense(in)
		require.NoError(t, err)
	}

	totals := l.AggregateByCategory()
	require.Len(t, totals, 3)
	assert.Equal(t, "70", totals[model.CategoryFood].String())
	assert.Equal(t, "120", totals[model.CategoryEducation].String())
	assert.Equal(t, "80", totals[model.CategoryUtilities].String())
	_, hasTransport := totals[model.CategoryTransport]
	assert.False(t, hasTransport)

	sum := decimal.Zero
	for _, v := range totals {
		sum = sum.Add(v)
	}
	assert.True(t, sum.Equal(l.TotalSpent()))
}

func TestReconcileTo(t *testing.T) {
	l := newTestLedger()
	l.ReconcileTo(dec("140"))
	assert.Equal(t, "140", l.TotalSpent().String())
	assert.Zero(t, l.Len())
	l.ReconcileTo(decimal.Zero)

	for _, a := range []string{"250", "152"} {
		_, err := l.AddExpense(ExpenseInput{Amount: dec(a), Description: "x", Category: model.CategoryOther})
		require.NoError(t, err)
	}

	l.ReconcileTo(dec("542"))
	assert.Equal(t, "542", l.TotalSpent().String())
	assert.Equal(t, "402", l.ItemizedTotal().String())

	// Spend below the itemized sum leaves no opening total.
	l.ReconcileTo(dec("100"))
	assert.Equal(t, "402", l.TotalSpent().String())
	l.ReconcileTo(dec("-5"))
	assert.Equal(t, "402", l.TotalSpent().String())

	_, err := l.AddExpense(ExpenseInput{Amount: dec("8"), Description: "x", Category: model.CategoryOther})
	require.NoError(t, err)
	assert.Equal(t, "410", l.TotalSpent().String())
}
