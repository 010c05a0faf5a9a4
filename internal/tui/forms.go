package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/fburn/internal/cli"
	"github.com/theirongolddev/fburn/internal/goals"
	"github.com/theirongolddev/fburn/internal/ledger"
	"github.com/theirongolddev/fburn/internal/model"
	"github.com/theirongolddev/fburn/internal/session"
	"github.com/theirongolddev/fburn/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type formKind int

const (
	formNone formKind = iota
	formExpense
	formGoal
	formDeposit
)

// formValues holds everything the entry forms bind to.
type formValues struct {
	// expense
	amount      string
	description string
	category    string
	date        string

	// goal
	title        string
	target       string
	goalDate     string
	goalCategory string
	priority     string

	// deposit
	goalID  int
	deposit string
}

func validAmount(s string) error {
	_, err := model.ParseAmount(s)
	return err
}

func validOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := model.ParseDate(s)
	return err
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func newExpenseForm(v *formValues) *huh.Form {
	options := make([]huh.Option[string], len(model.Categories))
	for i, c := range model.Categories {
		options[i] = huh.NewOption(cli.CategoryLabel(c), string(c))
	}
	if v.category == "" {
		v.category = string(model.CategoryFood)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Value(&v.amount).
				Validate(validAmount),
			huh.NewInput().
				Title("Description").
				Placeholder("Lunch at the cafeteria").
				CharLimit(80).
				Value(&v.description).
				Validate(required("description")),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&v.category),
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, blank for today").
				Value(&v.date).
				Validate(validOptionalDate),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(true)
}

func newGoalForm(v *formValues) *huh.Form {
	if v.priority == "" {
		v.priority = string(model.PriorityMedium)
	}
	prios := make([]huh.Option[string], len(model.Priorities))
	for i, p := range model.Priorities {
		prios[i] = huh.NewOption(cli.Label(string(p)), string(p))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal").
				Placeholder("New laptop").
				CharLimit(100).
				Value(&v.title).
				Validate(required("title")),
			huh.NewInput().
				Title("Target amount").
				Placeholder("1200").
				Value(&v.target).
				Validate(validAmount),
			huh.NewInput().
				Title("Target date").
				Description("YYYY-MM-DD").
				Value(&v.goalDate).
				Validate(func(s string) error {
					_, err := model.ParseDate(s)
					return err
				}),
			huh.NewInput().
				Title("Category").
				Placeholder(model.DefaultGoalCategory).
				Value(&v.goalCategory),
			huh.NewSelect[string]().
				Title("Priority").
				Options(prios...).
				Value(&v.priority),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(true)
}

func newDepositForm(v *formValues, gs []model.Goal) *huh.Form {
	options := make([]huh.Option[int], len(gs))
	for i, g := range gs {
		label := fmt.Sprintf("%s (%s of %s)", g.Title,
			cli.FormatMoney(g.CurrentAmount), cli.FormatMoney(g.TargetAmount))
		options[i] = huh.NewOption(label, g.ID)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Goal").
				Options(options...).
				Value(&v.goalID),
			huh.NewInput().
				Title("Amount").
				Placeholder("50").
				Value(&v.deposit).
				Validate(validAmount),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(true)
}

func (a App) openForm(kind formKind) (tea.Model, tea.Cmd) {
	*a.vals = formValues{}

	switch kind {
	case formExpense:
		a.form = newExpenseForm(a.vals)
	case formGoal:
		a.form = newGoalForm(a.vals)
	case formDeposit:
		if len(a.dash.Goals) == 0 {
			a.setStatus("No goals yet. Press n to create one", true)
			return a, nil
		}
		a.vals.goalID = a.dash.Goals[a.goalCursor].ID
		a.form = newDepositForm(a.vals, a.dash.Goals)
	default:
		return a, nil
	}

	a.formKind = kind
	a.form = a.form.WithWidth(a.formWidth())
	return a, a.form.Init()
}

func (a *App) closeForm() {
	a.form = nil
	a.formKind = formNone
}

func (a App) formWidth() int {
	return min(max(a.width-8, 40), 72)
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		kind := a.formKind
		a.closeForm()
		note, err := applyForm(a.sess, kind, *a.vals)
		if err != nil {
			a.setStatus(err.Error(), true)
		} else {
			a.setStatus(note, false)
		}
		a.recompute()
		return a, nil

	case huh.StateAborted:
		a.closeForm()
		a.setStatus("Cancelled", false)
		return a, nil
	}

	return a, cmd
}

// applyForm turns completed form values into a session change and returns
// the confirmation to show.
func applyForm(sess *session.Session, kind formKind, v formValues) (string, error) {
	switch kind {
	case formExpense:
		amount, err := model.ParseAmount(v.amount)
		if err != nil {
			return "", err
		}
		cat, err := model.ParseCategory(v.category)
		if err != nil {
			return "", err
		}
		in := ledger.ExpenseInput{Amount: amount, Description: v.description, Category: cat}
		if strings.TrimSpace(v.date) != "" {
			if in.Date, err = model.ParseDate(v.date); err != nil {
				return "", err
			}
		}
		e, err := sess.AddExpense(in)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added %s for %s (+%d points)",
			cli.FormatMoney(e.Amount), e.Description, session.PointsPerExpense), nil

	case formGoal:
		target, err := model.ParseAmount(v.target)
		if err != nil {
			return "", err
		}
		g, err := sess.CreateGoal(goals.GoalInput{
			Title:        v.title,
			TargetAmount: target,
			TargetDate:   v.goalDate,
			Category:     v.goalCategory,
			Priority:     v.priority,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Created goal %q, %s by %s",
			g.Title, cli.FormatMoney(g.TargetAmount), cli.FormatDate(g.TargetDate)), nil

	case formDeposit:
		amount, err := model.ParseAmount(v.deposit)
		if err != nil {
			return "", err
		}
		g, err := sess.Deposit(v.goalID, amount)
		if err != nil {
			return "", err
		}
		if goals.IsCompleted(g) {
			return fmt.Sprintf("Goal reached: %s!", g.Title), nil
		}
		return fmt.Sprintf("Saved %s toward %s (%s)",
			cli.FormatMoney(amount), g.Title, cli.FormatPercent(goals.ProgressPercent(g))), nil
	}
	return "", errors.New("no form to apply")
}

func (a App) viewForm() string {
	t := theme.Active

	title := map[formKind]string{
		formExpense: "◈ Add Expense",
		formGoal:    "◈ New Savings Goal",
		formDeposit: "◈ Deposit",
	}[a.formKind]

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	body := titleStyle.Render(title) + "\n\n" + a.form.View() + "\n" + dimStyle.Render("esc to cancel")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}
