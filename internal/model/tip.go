package model

import "github.com/shopspring/decimal"

// Difficulty tags how hard a tip is to act on.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a difficulty name. An empty string means easy.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(normalize(s))
	switch d {
	case "":
		return DifficultyEasy, nil
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	}
	return "", NewValidationError("difficulty", "unknown difficulty %q", s)
}

// Tip is a static spending-reduction suggestion tied to a category.
type Tip struct {
	Category         Category
	Suggestion       string
	PotentialSavings decimal.Decimal // per month
	Difficulty       Difficulty
}

// InsightKind groups static insights.
type InsightKind string

const (
	InsightPrediction InsightKind = "prediction"
	InsightComparison InsightKind = "comparison"
)

// Insight is a fixed narrative hint shown next to the tips.
type Insight struct {
	Kind    InsightKind
	Title   string
	Message string
}

// Rewards tracks the engagement points earned in a session.
type Rewards struct {
	Points int
	Level  int
}
