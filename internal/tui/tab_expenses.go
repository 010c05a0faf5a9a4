package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fburn/internal/cli"
	"github.com/theirongolddev/fburn/internal/model"
	"github.com/theirongolddev/fburn/internal/tui/components"
	"github.com/theirongolddev/fburn/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// expensesState tracks the expenses tab state.
type expensesState struct {
	cursor      int
	searching   bool
	searchInput textinput.Model
	query       string
}

// updateExpensesKeys handles list keys on the expenses tab. ok is false when
// the key is not one of them.
func (a App) updateExpensesKeys(key string) (tea.Model, tea.Cmd, bool) {
	filtered := a.searchFilteredExpenses()

	switch key {
	case "/":
		a.expState.searching = true
		a.expState.searchInput = newSearchInput()
		a.expState.searchInput.SetValue(a.expState.query)
		return a, a.expState.searchInput.Focus(), true
	case "esc":
		a.expState.query = ""
		a.expState.cursor = 0
		return a, nil, true
	case "j", "down":
		a.expState.cursor = clamp(a.expState.cursor+1, 0, len(filtered)-1)
		return a, nil, true
	case "k", "up":
		a.expState.cursor = clamp(a.expState.cursor-1, 0, len(filtered)-1)
		return a, nil, true
	case "g":
		a.expState.cursor = 0
		return a, nil, true
	case "G":
		a.expState.cursor = max(len(filtered)-1, 0)
		return a, nil, true
	}
	return a, nil, false
}

func (a App) renderExpensesTab(cw, h int) string {
	t := theme.Active
	expenses := a.searchFilteredExpenses()
	innerW := components.CardInnerWidth(cw)

	var b strings.Builder

	// Search line
	switch {
	case a.expState.searching:
		b.WriteString(a.expState.searchInput.View())
		b.WriteString("\n")
	case a.expState.query != "":
		queryStyle := lipgloss.NewStyle().Foreground(t.Accent)
		dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		b.WriteString(queryStyle.Render("/ "+a.expState.query) +
			dimStyle.Render(fmt.Sprintf("  %d match(es), esc to clear", len(expenses))))
		b.WriteString("\n")
	}

	if len(expenses) == 0 {
		msg := "No expenses yet. Press a to add one"
		if a.expState.query != "" {
			msg = "No expenses match the search"
		}
		b.WriteString(components.ContentCard("Expenses", lipgloss.NewStyle().Foreground(t.TextDim).Render(msg), cw))
		return b.String()
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	descW := innerW - 4 - 2 - 10 - 2 - 14 - 2 - 10 - 2 - 6
	if descW < 10 {
		descW = 10
	}
	row := func(id, date, desc, cat, amt, src string) string {
		return fmt.Sprintf("%4s  %-10s  %-*s  %-14s  %10s  %-6s",
			id, date, descW, truncStr(desc, descW), cat, amt, src)
	}

	// Visible window keeps the cursor on screen
	visible := h - scrollOverhead
	if a.expState.searching || a.expState.query != "" {
		visible--
	}
	if visible < 1 {
		visible = 1
	}
	offset := 0
	if a.expState.cursor >= visible {
		offset = a.expState.cursor - visible + 1
	}
	end := min(offset+visible, len(expenses))

	var body strings.Builder
	body.WriteString(headerStyle.Render(row("ID", "Date", "Description", "Category", "Amount", "Source")))
	body.WriteString("\n")
	for i := offset; i < end; i++ {
		e := expenses[i]
		src := "you"
		if e.Auto {
			src = "seed"
		}
		line := row(fmt.Sprintf("%d", e.ID), cli.FormatDate(e.Date), e.Description,
			cli.CategoryLabel(e.Category), cli.FormatMoney(e.Amount), src)
		if i == a.expState.cursor {
			body.WriteString(selStyle.Render(line))
		} else {
			body.WriteString(rowStyle.Render(line))
		}
		if i < end-1 {
			body.WriteString("\n")
		}
	}
	if len(expenses) > visible {
		body.WriteString("\n")
		body.WriteString(dimStyle.Render(fmt.Sprintf("%d-%d of %d", offset+1, end, len(expenses))))
	}

	title := fmt.Sprintf("Expenses (%d) · %s itemized", len(expenses), cli.FormatMoney(sumAmounts(expenses)))
	b.WriteString(components.ContentCard(title, body.String(), cw))
	return b.String()
}

func sumAmounts(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
