package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/fburn/internal/model"
)

// DailySpend buckets expenses by calendar day between since and until
// inclusive, oldest first. Days without expenses are present with zero
// spend so charts show the gaps.
func DailySpend(expenses []model.Expense, since, until time.Time) []model.DailySpend {
	start, end := model.DateOf(since), model.DateOf(until)
	if end.Before(start) {
		return []model.DailySpend{}
	}

	dayMap := make(map[string]*model.DailySpend)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dayMap[day.Format(model.DateLayout)] = &model.DailySpend{Date: day, Amount: decimal.Zero}
	}

	for _, e := range expenses {
		ds, ok := dayMap[model.DateOf(e.Date).Format(model.DateLayout)]
		if !ok {
			continue
		}
		ds.Amount = ds.Amount.Add(e.Amount)
		ds.Count++
	}

	days := make([]model.DailySpend, 0, len(dayMap))
	for _, ds := range dayMap {
		days = append(days, *ds)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}

// Amounts extracts the daily amounts as floats for sparklines.
func Amounts(days []model.DailySpend) []float64 {
	out := make([]float64, len(days))
	for i, d := range days {
		out[i] = d.Amount.InexactFloat64()
	}
	return out
}
