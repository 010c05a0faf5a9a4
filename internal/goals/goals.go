// Package goals tracks savings goals: creation, deposits, and progress.
package goals

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/fburn/internal/metrics"
	"github.com/theirongolddev/fburn/internal/model"
)

const maxTitleLen = 100

// GoalInput is the raw form of a new goal, as typed by a user or read from
// the config file.
type GoalInput struct {
	Title        string
	TargetAmount decimal.Decimal
	TargetDate   string // YYYY-MM-DD
	Category     string // empty means model.DefaultGoalCategory
	Priority     string // empty means medium
}

// Tracker owns the goal set of a session. It is not safe for concurrent use.
type Tracker struct {
	goals  []model.Goal
	lastID int
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// ValidateInput parses and checks in, returning the goal it describes with
// a zero id and zero current amount.
func ValidateInput(in GoalInput) (model.Goal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Goal{}, model.NewValidationError("title", "title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return model.Goal{}, model.NewValidationError("title", "too long (max %d characters)", maxTitleLen)
	}
	if err := model.CheckAmount("target", in.TargetAmount); err != nil {
		return model.Goal{}, err
	}
	date, err := model.ParseDate(in.TargetDate)
	if err != nil {
		return model.Goal{}, err
	}
	prio, err := model.ParsePriority(in.Priority)
	if err != nil {
		return model.Goal{}, err
	}
	cat := strings.ToLower(strings.TrimSpace(in.Category))
	if cat == "" {
		cat = model.DefaultGoalCategory
	}

	return model.Goal{
		Title:         title,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    date,
		Category:      cat,
		Priority:      prio,
	}, nil
}

// CreateGoal validates in and appends a new goal with current amount 0.
func (t *Tracker) CreateGoal(in GoalInput) (model.Goal, error) {
	g, err := ValidateInput(in)
	if err != nil {
		return model.Goal{}, err
	}
	t.lastID++
	g.ID = t.lastID
	t.goals = append(t.goals, g)
	return g, nil
}

// Deposit adds amount to the goal's current amount. Deposits past the
// target are kept as-is.
func (t *Tracker) Deposit(id int, amount decimal.Decimal) (model.Goal, error) {
	i := t.index(id)
	if i < 0 {
		return model.Goal{}, &model.NotFoundError{Kind: "goal", ID: id}
	}
	if err := model.CheckAmount("amount", amount); err != nil {
		return model.Goal{}, err
	}
	t.goals[i].CurrentAmount = t.goals[i].CurrentAmount.Add(amount)
	return t.goals[i], nil
}

// Get returns the goal with the given id.
func (t *Tracker) Get(id int) (model.Goal, error) {
	i := t.index(id)
	if i < 0 {
		return model.Goal{}, &model.NotFoundError{Kind: "goal", ID: id}
	}
	return t.goals[i], nil
}

// List returns all goals in creation order.
func (t *Tracker) List() []model.Goal {
	out := make([]model.Goal, len(t.goals))
	copy(out, t.goals)
	return out
}

// Len returns the number of goals.
func (t *Tracker) Len() int { return len(t.goals) }

func (t *Tracker) index(id int) int {
	for i := range t.goals {
		if t.goals[i].ID == id {
			return i
		}
	}
	return -1
}

// Summary aggregates every goal.
func (t *Tracker) Summary() model.GoalSummary {
	s := model.GoalSummary{
		Count:       len(t.goals),
		TotalSaved:  decimal.Zero,
		TotalTarget: decimal.Zero,
	}
	for _, g := range t.goals {
		s.TotalSaved = s.TotalSaved.Add(g.CurrentAmount)
		s.TotalTarget = s.TotalTarget.Add(g.TargetAmount)
		if IsCompleted(g) {
			s.CompletedCount++
		}
	}
	s.Remaining = s.TotalTarget.Sub(s.TotalSaved)
	s.ProgressPercent = metrics.Percent(s.TotalSaved, s.TotalTarget)
	return s
}

// ProgressPercent returns current/target*100, uncapped.
func ProgressPercent(g model.Goal) float64 {
	return metrics.Percent(g.CurrentAmount, g.TargetAmount)
}

// IsCompleted reports whether the goal has reached its target.
func IsCompleted(g model.Goal) bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// DaysRemaining returns the whole days until the target date, rounded up.
// Negative values mean the date has passed.
func DaysRemaining(g model.Goal, today time.Time) int {
	diff := g.TargetDate.Sub(model.DateOf(today))
	return int(math.Ceil(diff.Hours() / 24))
}

// IsOverdue reports an unfinished goal whose target date has passed.
func IsOverdue(g model.Goal, today time.Time) bool {
	return !IsCompleted(g) && DaysRemaining(g, today) < 0
}

// Remaining returns how much is still needed, never below zero.
func Remaining(g model.Goal) decimal.Decimal {
	r := g.TargetAmount.Sub(g.CurrentAmount)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}
