package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/fburn/internal/tui/theme"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		idx = max(0, min(idx, len(sparkBlocks)-1))
		buf.WriteRune(sparkBlocks[idx])
	}
	return lipgloss.NewStyle().Foreground(color).Render(buf.String())
}

// HBar is one row of a horizontal bar chart.
type HBar struct {
	Label string
	Value float64
	Text  string // shown after the bar
	Color lipgloss.Color
}

// HBarChart renders labeled horizontal bars scaled to the largest value.
func HBarChart(bars []HBar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active

	labelW, textW := 0, 0
	peak := 0.0
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
		textW = max(textW, lipgloss.Width(b.Text))
		peak = math.Max(peak, b.Value)
	}
	barMax := width - labelW - textW - 3
	if barMax < 4 {
		barMax = 4
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	lines := make([]string, len(bars))
	for i, b := range bars {
		n := 0
		if peak > 0 {
			n = int(b.Value / peak * float64(barMax))
		}
		n = max(0, min(n, barMax))
		bar := lipgloss.NewStyle().Foreground(b.Color).Render(strings.Repeat("█", n))
		lines[i] = labelStyle.Render(fmt.Sprintf("%-*s", labelW, b.Label)) + " " +
			bar + strings.Repeat(" ", barMax-n) + " " +
			textStyle.Render(fmt.Sprintf("%*s", textW, b.Text))
	}
	return strings.Join(lines, "\n")
}

// ColumnChart renders values as vertical columns height rows tall, with the
// peak value labeled on the axis and one label per column underneath.
func ColumnChart(values []float64, labels []string, color lipgloss.Color, height int, peakLabel string) string {
	if len(values) == 0 || height < 1 {
		return ""
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	axisW := max(lipgloss.Width(peakLabel), 1)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	barStyle := lipgloss.NewStyle().Foreground(color)
	colW := 3

	var b strings.Builder
	for row := height; row >= 1; row-- {
		label := ""
		if row == height {
			label = peakLabel
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", axisW, label)))
		top := peak * float64(row) / float64(height)
		bottom := peak * float64(row-1) / float64(height)
		for _, v := range values {
			cell := "  "
			switch {
			case v >= top:
				cell = "██"
			case v > bottom:
				idx := int((v - bottom) / (top - bottom) * float64(len(sparkBlocks)))
				idx = max(0, min(idx, len(sparkBlocks)-1))
				cell = strings.Repeat(string(sparkBlocks[idx]), 2)
			}
			b.WriteString(barStyle.Render(cell) + " ")
		}
		b.WriteString("\n")
	}
	b.WriteString(axisStyle.Render(strings.Repeat(" ", axisW) + "└" + strings.Repeat("─", len(values)*colW)))

	if len(labels) == len(values) {
		b.WriteString("\n" + strings.Repeat(" ", axisW+1))
		for _, l := range labels {
			r := []rune(l)
			if len(r) > colW {
				r = r[:colW]
			}
			b.WriteString(axisStyle.Render(fmt.Sprintf("%-*s", colW, string(r))))
		}
	}
	return b.String()
}
