package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/fburn/internal/model"
	"github.com/theirongolddev/fburn/internal/tui/theme"
)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Active.TextPrimary).Align(lipgloss.Center)
}

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Active.Accent)
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.TextPrimary)
}

func mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.TextMuted)
}

func dimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.TextDim)
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle().Render(title))
}

// RenderSection renders a muted section heading.
func RenderSection(title string) string {
	return "  " + headerStyle().Render(title)
}

// RenderKV renders an aligned label/value line.
func RenderKV(label, value string) string {
	return fmt.Sprintf("  %s %s", mutedStyle().Render(fmt.Sprintf("%-18s", label)), valueStyle().Render(value))
}

func columnWidths(t Table, numCols int) []int {
	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
		return widths
	}
	for i, h := range t.Headers {
		if w := lipgloss.Width(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	return widths
}

func rule(left, mid, right string, widths []int) string {
	var b strings.Builder
	b.WriteString(dimStyle().Render(left))
	for i, w := range widths {
		b.WriteString(dimStyle().Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(dimStyle().Render(mid))
		}
	}
	b.WriteString(dimStyle().Render(right))
	b.WriteString("\n")
	return b.String()
}

func pad(cell string, w int, left bool) string {
	gap := w - lipgloss.Width(cell)
	if gap < 0 {
		gap = 0
	}
	if left {
		return " " + cell + strings.Repeat(" ", gap) + " "
	}
	return " " + strings.Repeat(" ", gap) + cell + " "
}

// RenderTable renders a bordered table with headers and rows. The first
// column is left-aligned and the rest right-aligned. A row holding the
// single cell "---" renders as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	widths := columnWidths(t, numCols)

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(RenderSection(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮", widths))

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle().Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle().Render(pad(h, widths[i], true)))
			if i < numCols-1 {
				b.WriteString(dimStyle().Render("│"))
			}
		}
		b.WriteString(dimStyle().Render("│"))
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤", widths))
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤", widths))
			continue
		}

		b.WriteString(dimStyle().Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(valueStyle().Render(pad(cell, widths[i], i == 0)))
			if i < numCols-1 {
				b.WriteString(dimStyle().Render("│"))
			}
		}
		b.WriteString(dimStyle().Render("│"))
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯", widths))
	return b.String()
}

// barCells returns how many of width cells a percentage fills, clamped to
// the bar.
func barCells(percent float64, width int) int {
	if width <= 0 || percent <= 0 {
		return 0
	}
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return filled
}

// RenderProgressBar renders a plain progress bar followed by the percentage.
// Values above 100 fill the bar and print as-is.
func RenderProgressBar(percent float64, width int) string {
	filled := barCells(percent, width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", mutedStyle().Render(bar), FormatPercent(percent))
}

// RenderBudgetBar renders budget usage colored by alert level.
func RenderBudgetBar(percent float64, level model.AlertLevel, width int) string {
	filled := barCells(percent, width)
	fill := lipgloss.NewStyle().Foreground(theme.Active.Alert(level))
	return fmt.Sprintf("%s%s %s",
		fill.Render(strings.Repeat("█", filled)),
		dimStyle().Render(strings.Repeat("░", width-filled)),
		fill.Render(FormatPercent(percent)),
	)
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

// RenderHorizontalBar renders one labeled bar of a bar chart.
func RenderHorizontalBar(label string, value, maxValue float64, maxWidth int, color lipgloss.Color) string {
	barLen := 0
	if maxValue > 0 {
		barLen = int(value / maxValue * float64(maxWidth))
	}
	if barLen < 0 {
		barLen = 0
	}
	if barLen > maxWidth {
		barLen = maxWidth
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
	return fmt.Sprintf("  %-14s %s", label, bar)
}
