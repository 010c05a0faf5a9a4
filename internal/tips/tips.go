// Package tips holds the static savings tips and insights shown next to the
// budget, and orders them against current category spend.
package tips

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/fburn/internal/model"
)

// DefaultTips returns the built-in tips in display order.
func DefaultTips() []model.Tip {
	return []model.Tip{
		{
			Category:         model.CategoryFood,
			Suggestion:       "Cook 4 more meals at home this week",
			PotentialSavings: decimal.NewFromInt(80),
			Difficulty:       model.DifficultyEasy,
		},
		{
			Category:         model.CategoryTransport,
			Suggestion:       "Get a monthly bus pass instead of daily tickets",
			PotentialSavings: decimal.NewFromInt(25),
			Difficulty:       model.DifficultyEasy,
		},
		{
			Category:         model.CategoryEntertainment,
			Suggestion:       "Share streaming subscriptions with 2 friends",
			PotentialSavings: decimal.NewFromInt(35),
			Difficulty:       model.DifficultyMedium,
		},
	}
}

// DefaultInsights returns the built-in narrative insights.
func DefaultInsights() []model.Insight {
	return []model.Insight{
		{
			Kind:    model.InsightPrediction,
			Title:   "Spending prediction",
			Message: "Your spending typically increases by 15% during exam season. Consider budgeting an extra $120 for December finals.",
		},
		{
			Kind:    model.InsightComparison,
			Title:   "Peer comparison",
			Message: "You're spending 40% more on food than similar students. Try meal prep on Sundays to save $60/month.",
		},
	}
}

// Catalog is an immutable set of tips and insights.
type Catalog struct {
	tips     []model.Tip
	insights []model.Insight
}

// NewCatalog builds a catalog from the defaults followed by extra tips.
// Extra tips with an unknown category or a non-positive saving are
// rejected.
func NewCatalog(extra ...model.Tip) (*Catalog, error) {
	c := &Catalog{
		tips:     DefaultTips(),
		insights: DefaultInsights(),
	}
	for _, tip := range extra {
		tip, err := normalize(tip)
		if err != nil {
			return nil, err
		}
		c.tips = append(c.tips, tip)
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, _ := NewCatalog()
	return c
}

func normalize(tip model.Tip) (model.Tip, error) {
	if !tip.Category.Valid() {
		return tip, model.NewValidationError("category", "unknown category %q", tip.Category)
	}
	if strings.TrimSpace(tip.Suggestion) == "" {
		return tip, model.NewValidationError("suggestion", "suggestion is required")
	}
	if !tip.PotentialSavings.IsPositive() {
		return tip, model.NewValidationError("savings", "must be greater than zero, got %s", tip.PotentialSavings.String())
	}
	d, err := model.ParseDifficulty(string(tip.Difficulty))
	if err != nil {
		return tip, err
	}
	tip.Difficulty = d
	tip.Suggestion = strings.TrimSpace(tip.Suggestion)
	return tip, nil
}

// Len returns the number of tips.
func (c *Catalog) Len() int { return len(c.tips) }

// SelectTips returns every tip in catalog order. Category totals do not
// filter the result.
func (c *Catalog) SelectTips(_ map[model.Category]decimal.Decimal) []model.Tip {
	return slices.Clone(c.tips)
}

// RankTips orders tips by how much is spent in their category, highest
// first. Tips in equally funded categories keep catalog order.
func (c *Catalog) RankTips(totals map[model.Category]decimal.Decimal) []model.Tip {
	out := slices.Clone(c.tips)
	slices.SortStableFunc(out, func(a, b model.Tip) int {
		return totals[b.Category].Cmp(totals[a.Category])
	})
	return out
}

// Insights returns the catalog's insights.
func (c *Catalog) Insights() []model.Insight {
	return slices.Clone(c.insights)
}

// TotalPotentialSavings sums the monthly savings of tips.
func TotalPotentialSavings(tips []model.Tip) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range tips {
		sum = sum.Add(t.PotentialSavings)
	}
	return sum
}
