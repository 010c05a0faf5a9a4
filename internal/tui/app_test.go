package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"
	"github.com/theirongolddev/fburn/internal/config"
	"github.com/theirongolddev/fburn/internal/model"
	"github.com/theirongolddev/fburn/internal/session"
	"github.com/theirongolddev/fburn/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

var testToday = time.Date(2024, 9, 13, 10, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestApp(t *testing.T, cfgPath string) App {
	t.Helper()
	sess, err := session.Seeded(
		config.DefaultConfig().BudgetModel(),
		decimal.NewFromInt(542),
		session.WithClock(func() time.Time { return testToday }),
	)
	if err != nil {
		t.Fatalf("Seeded: %v", err)
	}
	a := NewApp(sess, 18, cfgPath)
	return send(t, a, tea.WindowSizeMsg{Width: 130, Height: 50})
}

func send(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	app, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T", m)
	}
	return app
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewAppComputesDashboard(t *testing.T) {
	a := newTestApp(t, "")

	if got := a.dash.Stats.TotalSpent.String(); got != "542" {
		t.Errorf("total spent = %s, want 542", got)
	}
	if a.dash.Stats.Alert != model.AlertSafe {
		t.Errorf("alert = %s, want safe", a.dash.Stats.Alert)
	}
	if len(a.daily) != chartDays {
		t.Errorf("daily series has %d days, want %d", len(a.daily), chartDays)
	}
	if !a.daily[len(a.daily)-1].Date.Equal(model.DateOf(testToday)) {
		t.Errorf("daily series should end today, got %v", a.daily[len(a.daily)-1].Date)
	}
}

func TestTabKeys(t *testing.T) {
	a := newTestApp(t, "")

	for _, tc := range []struct {
		key  string
		want int
	}{
		{"e", tabExpenses},
		{"t", tabTips},
		{"s", tabSavings},
		{"r", tabRewards},
		{"d", tabDashboard},
	} {
		a = send(t, a, keyRunes(tc.key))
		if a.activeTab != tc.want {
			t.Errorf("key %q -> tab %d, want %d", tc.key, a.activeTab, tc.want)
		}
	}

	a = send(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.activeTab != tabRewards {
		t.Errorf("left from dashboard -> %d, want wraparound to rewards", a.activeTab)
	}
	a = send(t, a, tea.KeyMsg{Type: tea.KeyRight})
	if a.activeTab != tabDashboard {
		t.Errorf("right from rewards -> %d, want dashboard", a.activeTab)
	}
}

func TestHelpToggle(t *testing.T) {
	a := newTestApp(t, "")
	a = send(t, a, keyRunes("?"))
	if !a.showHelp {
		t.Fatal("? should open help")
	}
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("help view missing title")
	}
	a = send(t, a, keyRunes("e"))
	if a.showHelp || a.activeTab != tabDashboard {
		t.Error("any key should only dismiss help")
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	a := newTestApp(t, "")
	want := map[int]string{
		tabDashboard: "Spending by Category",
		tabExpenses:  "Grocery shopping",
		tabTips:      "Saving Tips",
		tabSavings:   "Savings Goal",
		tabRewards:   "Progress to Level 4",
	}
	for tab, s := range want {
		a.activeTab = tab
		view := a.View()
		if !strings.Contains(view, s) {
			t.Errorf("tab %d view missing %q", tab, s)
		}
		if got := lipgloss.Height(view); got != a.height {
			t.Errorf("tab %d view height = %d, want %d", tab, got, a.height)
		}
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := newTestApp(t, "")
	a = send(t, a, tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(a.View(), "Terminal too narrow") {
		t.Error("narrow terminal should show a warning")
	}
}

func TestExpenseCursorClamps(t *testing.T) {
	a := newTestApp(t, "")
	a = send(t, a, keyRunes("e"))

	a = send(t, a, keyRunes("k"))
	if a.expState.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after k at top", a.expState.cursor)
	}
	a = send(t, a, keyRunes("G"))
	if a.expState.cursor != 7 {
		t.Errorf("cursor = %d, want 7 after G", a.expState.cursor)
	}
	a = send(t, a, keyRunes("j"))
	if a.expState.cursor != 7 {
		t.Errorf("cursor = %d, want 7 after j at bottom", a.expState.cursor)
	}
}

func TestExpenseSearch(t *testing.T) {
	a := newTestApp(t, "")
	a = send(t, a, keyRunes("e"))
	a = send(t, a, keyRunes("/"))
	if !a.expState.searching {
		t.Fatal("/ should start search")
	}
	// Tab keys are typed into the search box while searching
	a = send(t, a, keyRunes("food"))
	if a.activeTab != tabExpenses {
		t.Fatal("typing should not switch tabs")
	}
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.expState.query != "food" {
		t.Fatalf("query = %q, want food", a.expState.query)
	}
	got := a.searchFilteredExpenses()
	if len(got) != 3 {
		t.Fatalf("food search matched %d expenses, want 3", len(got))
	}

	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.expState.query != "" || len(a.searchFilteredExpenses()) != 8 {
		t.Error("esc should clear the search")
	}
}

func TestFilterExpenses(t *testing.T) {
	expenses := []model.Expense{
		{Description: "Coffee & snacks", Category: model.CategoryFood},
		{Description: "Bus pass", Category: model.CategoryTransport},
	}
	if got := filterExpenses(expenses, "  COFFEE "); len(got) != 1 {
		t.Errorf("case-insensitive match returned %d", len(got))
	}
	if got := filterExpenses(expenses, "transport"); len(got) != 1 || got[0].Description != "Bus pass" {
		t.Errorf("category match = %v", got)
	}
	if got := filterExpenses(expenses, ""); len(got) != 2 {
		t.Errorf("empty query returned %d", len(got))
	}
}

func TestApplyExpenseForm(t *testing.T) {
	a := newTestApp(t, "")

	note, err := applyForm(a.sess, formExpense, formValues{
		amount:      "12.50",
		description: "Pizza",
		category:    "food",
	})
	if err != nil {
		t.Fatalf("applyForm: %v", err)
	}
	if !strings.Contains(note, "$12.50") || !strings.Contains(note, "+10 points") {
		t.Errorf("note = %q", note)
	}

	a.recompute()
	if got := a.dash.Stats.TotalSpent.String(); got != "554.5" {
		t.Errorf("total spent = %s, want 554.5", got)
	}
	if a.dash.Rewards.Points != session.DefaultStartingPoints+session.PointsPerExpense {
		t.Errorf("points = %d", a.dash.Rewards.Points)
	}
	if a.dash.Recent[0].Description != "Pizza" {
		t.Errorf("newest expense = %q, want Pizza", a.dash.Recent[0].Description)
	}
	if !a.dash.Recent[0].Date.Equal(model.DateOf(testToday)) {
		t.Errorf("blank date should default to today, got %v", a.dash.Recent[0].Date)
	}
}

func TestApplyFormErrors(t *testing.T) {
	a := newTestApp(t, "")

	if _, err := applyForm(a.sess, formExpense, formValues{amount: "-3", description: "x", category: "food"}); !model.IsValidation(err) {
		t.Errorf("negative amount: err = %v, want validation error", err)
	}
	if _, err := applyForm(a.sess, formExpense, formValues{amount: "3", description: "x", category: "rent"}); !model.IsValidation(err) {
		t.Errorf("unknown category: err = %v, want validation error", err)
	}
	if _, err := applyForm(a.sess, formDeposit, formValues{goalID: 99, deposit: "10"}); !model.IsNotFound(err) {
		t.Errorf("missing goal: err = %v, want not found", err)
	}
	if _, err := applyForm(a.sess, formNone, formValues{}); err == nil {
		t.Error("formNone should not apply")
	}
}

func TestApplyGoalAndDeposit(t *testing.T) {
	a := newTestApp(t, "")

	if _, err := applyForm(a.sess, formGoal, formValues{
		title:    "Laptop",
		target:   "1000",
		goalDate: "2024-12-31",
		priority: "high",
	}); err != nil {
		t.Fatalf("create goal: %v", err)
	}
	a.recompute()
	if len(a.dash.Goals) != 1 || a.dash.Goals[0].Category != model.DefaultGoalCategory {
		t.Fatalf("goals = %+v", a.dash.Goals)
	}
	id := a.dash.Goals[0].ID

	note, err := applyForm(a.sess, formDeposit, formValues{goalID: id, deposit: "250"})
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if !strings.Contains(note, "25.0%") {
		t.Errorf("note = %q, want progress", note)
	}

	note, err = applyForm(a.sess, formDeposit, formValues{goalID: id, deposit: "750"})
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if note != "Goal reached: Laptop!" {
		t.Errorf("note = %q", note)
	}
}

func TestDepositWithoutGoals(t *testing.T) {
	a := newTestApp(t, "")
	a = send(t, a, keyRunes("+"))
	if a.form != nil {
		t.Fatal("deposit form should not open without goals")
	}
	if !a.isErr || !strings.Contains(a.status, "No goals") {
		t.Errorf("status = %q (err=%v)", a.status, a.isErr)
	}
}

func TestFormOpensAndCancels(t *testing.T) {
	a := newTestApp(t, "")
	a = send(t, a, keyRunes("a"))
	if a.form == nil || a.formKind != formExpense {
		t.Fatal("a should open the expense form")
	}
	if !strings.Contains(a.View(), "Add Expense") {
		t.Error("form view missing title")
	}
	// Tab keys go to the form while it is open
	a = send(t, a, keyRunes("s"))
	if a.activeTab != tabDashboard {
		t.Error("keys should not reach the tabs while a form is open")
	}
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.form != nil || a.status != "Cancelled" {
		t.Errorf("esc should cancel the form, status=%q", a.status)
	}
}

func TestCycleThemeSavesConfig(t *testing.T) {
	defer theme.SetActive(theme.Active.Name)
	theme.SetActive("flexoki-dark")

	path := filepath.Join(t.TempDir(), "config.toml")
	a := newTestApp(t, path)
	a = send(t, a, keyRunes("T"))

	if theme.Active.Name == "flexoki-dark" {
		t.Error("T should switch to the next theme")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Appearance.Theme != theme.Active.Name {
		t.Errorf("saved theme = %q, want %q", cfg.Appearance.Theme, theme.Active.Name)
	}
	if a.isErr {
		t.Errorf("status = %q", a.status)
	}
}

func TestChartDateLabels(t *testing.T) {
	days := make([]model.DailySpend, 5)
	start := time.Date(2024, 8, 29, 0, 0, 0, 0, time.UTC)
	for i := range days {
		days[i].Date = start.AddDate(0, 0, i)
	}
	got := chartDateLabels(days)
	want := []string{"Aug", "", "31", "Sep", "2"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("labels = %q, want %q", got, want)
			break
		}
	}
}
