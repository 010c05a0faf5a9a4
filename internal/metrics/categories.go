package metrics

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/fburn/internal/model"
)

// CategoryTotals aggregates expenses per category, sorted by amount
// descending with ties broken by category display order. Each entry carries
// its share of the itemized total.
func CategoryTotals(expenses []model.Expense) []model.CategoryTotal {
	byCat := make(map[model.Category]*model.CategoryTotal)
	total := decimal.Zero

	for _, e := range expenses {
		ct, ok := byCat[e.Category]
		if !ok {
			ct = &model.CategoryTotal{Category: e.Category}
			byCat[e.Category] = ct
		}
		ct.Amount = ct.Amount.Add(e.Amount)
		ct.Count++
		total = total.Add(e.Amount)
	}

	totals := make([]model.CategoryTotal, 0, len(byCat))
	for _, ct := range byCat {
		ct.SharePercent = Percent(ct.Amount, total)
		totals = append(totals, *ct)
	}
	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Amount.Cmp(totals[j].Amount); c != 0 {
			return c > 0
		}
		return totals[i].Category.Index() < totals[j].Category.Index()
	})

	return totals
}

// TotalsByCategory converts CategoryTotals into a lookup map.
func TotalsByCategory(totals []model.CategoryTotal) map[model.Category]decimal.Decimal {
	m := make(map[model.Category]decimal.Decimal, len(totals))
	for _, ct := range totals {
		m[ct.Category] = ct.Amount
	}
	return m
}
