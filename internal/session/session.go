// Package session ties a ledger, a goal tracker, and a tip catalog to one
// budget for the lifetime of a process.
//
// A Session has a single owner. It holds no locks; a caller sharing one
// across goroutines must serialize access.
package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/fburn/internal/goals"
	"github.com/theirongolddev/fburn/internal/ledger"
	"github.com/theirongolddev/fburn/internal/logging"
	"github.com/theirongolddev/fburn/internal/metrics"
	"github.com/theirongolddev/fburn/internal/model"
	"github.com/theirongolddev/fburn/internal/tips"
)

// DefaultRecentCount is how many expenses a dashboard lists.
const DefaultRecentCount = 5

// Session is the in-memory state of one run.
type Session struct {
	budget  model.BudgetConfig
	ledger  *ledger.Ledger
	goals   *goals.Tracker
	catalog *tips.Catalog
	points  int
	recent  int

	now    func() time.Time
	logger *slog.Logger
}

type options struct {
	now         func() time.Time
	logger      *slog.Logger
	catalog     *tips.Catalog
	expenses    []ledger.ExpenseInput
	goals       []goals.GoalInput
	spentToDate decimal.Decimal
	points      int
	recent      int
}

// Option configures a Session.
type Option func(*options)

// WithClock sets the clock used for default dates and day counts.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCatalog replaces the built-in tip catalog.
func WithCatalog(c *tips.Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithSeed preloads expenses and goals. Seeded expenses earn no points.
func WithSeed(expenses []ledger.ExpenseInput, gs []goals.GoalInput) Option {
	return func(o *options) {
		o.expenses = append(o.expenses, expenses...)
		o.goals = append(o.goals, gs...)
	}
}

// WithSpentToDate sets the total already spent this period. Whatever the
// seeded expenses do not account for becomes the ledger's opening total.
func WithSpentToDate(d decimal.Decimal) Option {
	return func(o *options) { o.spentToDate = d }
}

// WithPoints sets the starting reward points.
func WithPoints(n int) Option {
	return func(o *options) { o.points = n }
}

// WithRecentCount sets how many expenses Dashboard lists.
func WithRecentCount(n int) Option {
	return func(o *options) { o.recent = n }
}

// New builds a session for budget. Seed data is validated like user input.
func New(budget model.BudgetConfig, opts ...Option) (*Session, error) {
	o := options{
		now:    time.Now,
		recent: DefaultRecentCount,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}
	if o.catalog == nil {
		o.catalog = tips.Default()
	}
	if o.points < 0 {
		o.points = 0
	}

	s := &Session{
		budget:  budget,
		ledger:  ledger.New(ledger.WithClock(o.now)),
		goals:   goals.NewTracker(),
		catalog: o.catalog,
		points:  o.points,
		recent:  o.recent,
		now:     o.now,
		logger:  o.logger,
	}

	for i, in := range o.expenses {
		in.Auto = true
		if _, err := s.ledger.AddExpense(in); err != nil {
			return nil, fmt.Errorf("seed expense %d: %w", i+1, err)
		}
	}
	s.ledger.ReconcileTo(o.spentToDate)
	for i, in := range o.goals {
		if _, err := s.goals.CreateGoal(in); err != nil {
			return nil, fmt.Errorf("seed goal %d: %w", i+1, err)
		}
	}

	s.logger.Debug("session started",
		"expenses", s.ledger.Len(),
		"goals", s.goals.Len(),
		"spent", s.ledger.TotalSpent().String(),
	)
	return s, nil
}

// Seeded builds a session with the demo expenses, spent-to-date and points.
func Seeded(budget model.BudgetConfig, spentToDate decimal.Decimal, opts ...Option) (*Session, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	base := []Option{
		WithSeed(FixtureExpenses(o.now()), nil),
		WithSpentToDate(spentToDate),
		WithPoints(DefaultStartingPoints),
	}
	return New(budget, append(base, opts...)...)
}

// Today returns the session's current date.
func (s *Session) Today() time.Time {
	return model.DateOf(s.now())
}

// Budget returns the budget the session was built with.
func (s *Session) Budget() model.BudgetConfig {
	return s.budget
}

// AddExpense records an expense. User-entered expenses earn points.
func (s *Session) AddExpense(in ledger.ExpenseInput) (model.Expense, error) {
	e, err := s.ledger.AddExpense(in)
	if err != nil {
		return model.Expense{}, fmt.Errorf("add expense: %w", err)
	}
	if !e.Auto {
		s.points += PointsPerExpense
	}
	s.logger.Debug("expense added",
		"id", e.ID,
		"amount", e.Amount.String(),
		"category", string(e.Category),
		"total", s.ledger.TotalSpent().String(),
	)
	return e, nil
}

// CreateGoal adds a savings goal.
func (s *Session) CreateGoal(in goals.GoalInput) (model.Goal, error) {
	g, err := s.goals.CreateGoal(in)
	if err != nil {
		return model.Goal{}, fmt.Errorf("create goal: %w", err)
	}
	s.logger.Debug("goal created", "id", g.ID, "target", g.TargetAmount.String())
	return g, nil
}

// Deposit adds money to a goal.
func (s *Session) Deposit(id int, amount decimal.Decimal) (model.Goal, error) {
	g, err := s.goals.Deposit(id, amount)
	if err != nil {
		return model.Goal{}, fmt.Errorf("deposit: %w", err)
	}
	s.logger.Debug("deposit", "goal", g.ID, "amount", amount.String(), "current", g.CurrentAmount.String())
	if goals.IsCompleted(g) {
		s.logger.Info("goal completed", "goal", g.ID, "title", g.Title)
	}
	return g, nil
}

// ListRecent returns up to n expenses, most recent first.
func (s *Session) ListRecent(n int) []model.Expense {
	return s.ledger.ListRecent(n)
}

// Expenses returns every expense, most recent first.
func (s *Session) Expenses() []model.Expense {
	return s.ledger.All()
}

// TotalSpent returns the period's spend including the opening total.
func (s *Session) TotalSpent() decimal.Decimal {
	return s.ledger.TotalSpent()
}

// AggregateByCategory sums expenses per category.
func (s *Session) AggregateByCategory() map[model.Category]decimal.Decimal {
	return s.ledger.AggregateByCategory()
}

// CategoryTotals returns the category breakdown, largest first.
func (s *Session) CategoryTotals() []model.CategoryTotal {
	return metrics.CategoryTotals(s.ledger.All())
}

// Goals returns every goal in creation order.
func (s *Session) Goals() []model.Goal {
	return s.goals.List()
}

// Goal returns one goal by id.
func (s *Session) Goal(id int) (model.Goal, error) {
	return s.goals.Get(id)
}

// GoalSummary aggregates all goals.
func (s *Session) GoalSummary() model.GoalSummary {
	return s.goals.Summary()
}

// Tips returns the catalog in its own order.
func (s *Session) Tips() []model.Tip {
	return s.catalog.SelectTips(s.ledger.AggregateByCategory())
}

// RankedTips returns tips ordered by current category spend.
func (s *Session) RankedTips() []model.Tip {
	return s.catalog.RankTips(s.ledger.AggregateByCategory())
}

// Insights returns the catalog insights.
func (s *Session) Insights() []model.Insight {
	return s.catalog.Insights()
}

// Rewards returns the current points and level.
func (s *Session) Rewards() model.Rewards {
	return model.Rewards{Points: s.points, Level: Level(s.points)}
}

// Level maps reward points to a level, starting at 1 with one level per
// PointsPerLevel points.
func Level(points int) int {
	if points < 0 {
		points = 0
	}
	return 1 + points/PointsPerLevel
}

// Stats computes the budget snapshot for daysLeft days remaining.
func (s *Session) Stats(daysLeft int) model.BudgetStats {
	return metrics.Compute(metrics.Inputs{
		Budget:     s.budget,
		TotalSpent: s.ledger.TotalSpent(),
		DaysLeft:   daysLeft,
	})
}

// Dashboard is a full point-in-time view of a session.
type Dashboard struct {
	Today      time.Time
	Stats      model.BudgetStats
	Categories []model.CategoryTotal
	Goals      []model.Goal
	GoalTotals model.GoalSummary
	Recent     []model.Expense
	Tips       []model.Tip
	Insights   []model.Insight
	Savings    decimal.Decimal // potential monthly savings across Tips
	Rewards    model.Rewards
}

// Dashboard computes every view at once.
func (s *Session) Dashboard(daysLeft int) Dashboard {
	ranked := s.RankedTips()
	d := Dashboard{
		Today:      s.Today(),
		Stats:      s.Stats(daysLeft),
		Categories: s.CategoryTotals(),
		Goals:      s.goals.List(),
		GoalTotals: s.goals.Summary(),
		Recent:     s.ledger.ListRecent(s.recent),
		Tips:       ranked,
		Insights:   s.catalog.Insights(),
		Savings:    tips.TotalPotentialSavings(ranked),
		Rewards:    s.Rewards(),
	}
	if d.Stats.Alert != model.AlertSafe {
		s.logger.Info("budget alert",
			"level", string(d.Stats.Alert),
			"used_percent", d.Stats.BudgetUsedPercent,
		)
	}
	return d
}
