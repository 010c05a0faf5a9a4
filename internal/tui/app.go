// Package tui provides the interactive Bubble Tea dashboard for fburn.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/fburn/internal/config"
	"github.com/theirongolddev/fburn/internal/metrics"
	"github.com/theirongolddev/fburn/internal/model"
	"github.com/theirongolddev/fburn/internal/session"
	"github.com/theirongolddev/fburn/internal/tui/components"
	"github.com/theirongolddev/fburn/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabDashboard = iota
	tabExpenses
	tabTips
	tabSavings
	tabRewards
)

// App is the root Bubble Tea model.
type App struct {
	// Data
	sess     *session.Session
	cfgPath  string
	daysLeft int

	// Pre-computed after every change
	dash  session.Dashboard
	daily []model.DailySpend

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Modal entry form (huh); values live on the heap so copies of App
	// keep pointing at the fields the form writes to.
	form     *huh.Form
	formKind formKind
	vals     *formValues

	// Per-tab state
	expState   expensesState
	goalCursor int

	// Status bar message from the last action
	status string
	isErr  bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 160

	chartDays        = 14
	scrollOverhead   = 8 // header + status bar + card chrome around lists
	minContentHeight = 5
)

// NewApp creates a new TUI app model over an existing session. cfgPath is
// where theme changes are persisted; empty disables saving.
func NewApp(sess *session.Session, daysLeft int, cfgPath string) App {
	a := App{
		sess:     sess,
		cfgPath:  cfgPath,
		daysLeft: daysLeft,
		vals:     &formValues{},
		expState: expensesState{searchInput: newSearchInput()},
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

func (a *App) recompute() {
	a.dash = a.sess.Dashboard(a.daysLeft)
	today := a.dash.Today
	a.daily = metrics.DailySpend(a.sess.Expenses(), today.AddDate(0, 0, -(chartDays-1)), today)

	if n := len(a.searchFilteredExpenses()); a.expState.cursor >= n {
		a.expState.cursor = max(n-1, 0)
	}
	if n := len(a.dash.Goals); a.goalCursor >= n {
		a.goalCursor = max(n-1, 0)
	}
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.isErr = isErr
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.form != nil || a.expState.searching {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Entry forms intercept all keys
		if a.form != nil {
			if key == "esc" {
				a.closeForm()
				a.setStatus("Cancelled", false)
				return a, nil
			}
			return a.updateForm(msg)
		}

		// Expenses search mode intercepts all keys when active
		if a.activeTab == tabExpenses && a.expState.searching {
			return a.updateExpensesSearch(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch a.activeTab {
		case tabExpenses:
			if m, cmd, ok := a.updateExpensesKeys(key); ok {
				return m, cmd
			}
		case tabSavings:
			if m, cmd, ok := a.updateSavingsKeys(key); ok {
				return m, cmd
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "a":
			return a.openForm(formExpense)
		case "n":
			return a.openForm(formGoal)
		case "+":
			return a.openForm(formDeposit)
		case "T":
			a.cycleTheme()
			return a, nil
		case "left", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		// Tab navigation
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}
	if a.expState.searching {
		var cmd tea.Cmd
		a.expState.searchInput, cmd = a.expState.searchInput.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		a.moveCursor(1)
	case tea.MouseButtonLeft:
		// The tab bar is the first line
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// moveCursor scrolls the list of the active tab by delta rows.
func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case tabExpenses:
		n := len(a.searchFilteredExpenses())
		a.expState.cursor = clamp(a.expState.cursor+delta, 0, n-1)
	case tabSavings:
		a.goalCursor = clamp(a.goalCursor+delta, 0, len(a.dash.Goals)-1)
	}
}

func (a *App) cycleTheme() {
	names := theme.Names()
	next := names[0]
	for i, n := range names {
		if n == theme.Active.Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	theme.SetActive(next)

	if a.cfgPath == "" {
		a.setStatus("Theme: "+next, false)
		return
	}
	// Persist to config (best-effort)
	cfg, err := config.LoadFrom(a.cfgPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	cfg.Appearance.Theme = next
	if err := config.SaveTo(a.cfgPath, cfg); err != nil {
		a.setStatus("Theme: "+next+" (not saved)", true)
		return
	}
	a.setStatus("Theme: "+next, false)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	if a.form != nil {
		return a.viewForm()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  fburn needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

type binding struct{ key, desc string }

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	writeSection := func(b *strings.Builder, title string, binds []binding) {
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n")
		for _, bind := range binds {
			fmt.Fprintf(b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	writeSection(&b, "Navigation", []binding{
		{"d e t s r", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move through lists"},
		{"g G", "First / Last item"},
	})
	b.WriteString("\n")
	writeSection(&b, "Actions", []binding{
		{"a", "Add expense"},
		{"n", "New savings goal"},
		{"+", "Deposit into a goal"},
		{"/", "Search expenses"},
		{"T", "Cycle theme"},
		{"Esc", "Cancel form / clear search"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	})
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + date/budget pill
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pillAccent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	pill := pillStyle.Render(" ") +
		pillAccent.Render(a.dash.Today.Format("Mon Jan 2")) +
		pillStyle.Render(" │ ") +
		pillAccent.Render(fmt.Sprintf("%d days left", a.dash.Stats.DaysLeft)) +
		pillStyle.Render(" ")
	pillRow := lipgloss.NewStyle().Background(t.Surface).Width(w).Render(pill)

	header := components.RenderTabBar(a.activeTab, w) + "\n" + pillRow

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.hints(), a.status, a.isErr)

	// 3. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case tabTips:
		content = a.renderTipsTab(cw)
	case tabSavings:
		content = a.renderSavingsTab(cw)
	case tabRewards:
		content = a.renderRewardsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when the terminal is wider than the content
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) hints() string {
	switch {
	case a.activeTab == tabExpenses && a.expState.searching:
		return "[enter] apply  [esc] cancel"
	case a.activeTab == tabExpenses:
		return "[a] add  [/] search  [j/k] move  [?] help  [q] quit"
	case a.activeTab == tabSavings:
		return "[n] new goal  [+] deposit  [j/k] move  [?] help  [q] quit"
	default:
		return "[a] add expense  [n] new goal  [?] help  [q] quit"
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// chartDateLabels labels a chronological day series: the month on the
// first day and on month boundaries, the day number every other column.
func chartDateLabels(days []model.DailySpend) []string {
	labels := make([]string, len(days))
	prev := time.Month(0)
	for i, d := range days {
		switch {
		case i == 0 || d.Date.Month() != prev:
			labels[i] = d.Date.Format("Jan")
		case i%2 == 0 || i == len(days)-1:
			labels[i] = fmt.Sprintf("%d", d.Date.Day())
		}
		prev = d.Date.Month()
	}
	return labels
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

// ─── Expense Search ─────────────────────────────────────────────

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "description or category"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

// updateExpensesSearch handles key events while in search mode.
func (a App) updateExpensesSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.expState.query = strings.TrimSpace(a.expState.searchInput.Value())
		a.expState.searching = false
		a.expState.searchInput.Blur()
		a.expState.cursor = 0
		return a, nil

	case "esc":
		a.expState.searching = false
		a.expState.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.expState.searchInput, cmd = a.expState.searchInput.Update(msg)
	return a, cmd
}

// searchFilteredExpenses returns expenses matching the current query.
func (a App) searchFilteredExpenses() []model.Expense {
	return filterExpenses(a.sess.Expenses(), a.expState.query)
}

// filterExpenses keeps expenses whose description or category contains
// query, ignoring case.
func filterExpenses(expenses []model.Expense, query string) []model.Expense {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return expenses
	}
	var out []model.Expense
	for _, e := range expenses {
		if strings.Contains(strings.ToLower(e.Description), q) ||
			strings.Contains(string(e.Category), q) {
			out = append(out, e)
		}
	}
	return out
}
