package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/fburn/internal/model"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "By Category",
		Headers: []string{"Category", "Spent"},
		Rows: [][]string{
			{"Food", "$130.00"},
			{"Education", "$120.00"},
			{"---"},
			{"Total", "$250.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "By Category") {
		t.Errorf("title line = %q", lines[0])
	}
	if want := "╭" + strings.Repeat("─", 11) + "┬" + strings.Repeat("─", 9) + "╮"; lines[1] != want {
		t.Errorf("top border = %q, want %q", lines[1], want)
	}
	if lines[2] != "│ Category  │ Spent   │" {
		t.Errorf("header = %q", lines[2])
	}
	if lines[4] != "│ Food      │ $130.00 │" {
		t.Errorf("row = %q", lines[4])
	}
	if !strings.HasPrefix(lines[6], "├") {
		t.Errorf("separator = %q", lines[6])
	}
	width := lipgloss.Width(lines[1])
	for i, l := range lines[1:] {
		if lipgloss.Width(l) != width {
			t.Errorf("line %d width %d, want %d: %q", i+1, lipgloss.Width(l), width, l)
		}
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("empty table rendered %q", got)
	}
}

func TestRenderBudgetBarClamps(t *testing.T) {
	out := RenderBudgetBar(150, model.AlertDanger, 10)
	if strings.Count(out, "█") != 10 || strings.Contains(out, "░") {
		t.Errorf("overspent bar = %q", out)
	}
	if !strings.HasSuffix(out, "150.0%") {
		t.Errorf("bar should keep the real percentage: %q", out)
	}

	half := RenderBudgetBar(50, model.AlertSafe, 10)
	if strings.Count(half, "█") != 5 || strings.Count(half, "░") != 5 {
		t.Errorf("half bar = %q", half)
	}
}

func TestRenderProgressBar(t *testing.T) {
	out := RenderProgressBar(35, 20)
	if out != "["+strings.Repeat("█", 7)+strings.Repeat("░", 13)+"] 35.0%" {
		t.Errorf("progress = %q", out)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]float64{0, 120, 60, 0}); got != "▁█▄▁" {
		t.Errorf("sparkline = %q", got)
	}
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty sparkline = %q", got)
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	out := RenderHorizontalBar("Food", 65, 130, 10, lipgloss.Color("1"))
	if !strings.Contains(out, "Food") || strings.Count(out, "█") != 5 {
		t.Errorf("bar = %q", out)
	}
	if got := RenderHorizontalBar("None", 5, 0, 10, lipgloss.Color("1")); strings.Contains(got, "█") {
		t.Errorf("zero max should draw no bar: %q", got)
	}
}
