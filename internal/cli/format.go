// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/fburn/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// FormatMoney formats an amount as dollars with cents and thousands
// separators. e.g., 1234.5 -> "$1,234.50", -12.5 -> "-$12.50"
func FormatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + FormatMoney(d.Neg())
	}
	fixed := d.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return "$" + fixed
	}
	return "$" + FormatNumber(n) + "." + cents
}

// FormatMoneyShort drops the cents when the amount is whole.
func FormatMoneyShort(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		s := FormatMoney(d)
		return strings.TrimSuffix(s, ".00")
	}
	return FormatMoney(d)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a percentage (already scaled to 0-100) with one
// decimal place.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatDelta formats a period-over-period change with an explicit sign.
func FormatDelta(d model.Delta) string {
	switch d.Direction {
	case model.Increase:
		return "+" + FormatMoney(d.Amount)
	case model.Decrease:
		return "-" + FormatMoney(d.Amount.Abs())
	default:
		return FormatMoney(decimal.Zero)
	}
}

// FormatDays describes a day count relative to today.
func FormatDays(n int) string {
	switch {
	case n == 0:
		return "today"
	case n == 1:
		return "1 day"
	case n == -1:
		return "1 day overdue"
	case n < 0:
		return fmt.Sprintf("%d days overdue", -n)
	default:
		return fmt.Sprintf("%d days", n)
	}
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(model.DateLayout)
}

// FormatShortDate renders a date as "Sep 12".
func FormatShortDate(t time.Time) string {
	return t.Format("Jan 2")
}

// CategoryLabel returns the display name of a category.
func CategoryLabel(c model.Category) string {
	return titleCaser.String(string(c))
}

// Label title-cases an arbitrary enum value such as a priority.
func Label(s string) string {
	return titleCaser.String(s)
}

// FormatDayOfWeek returns a 3-letter day abbreviation.
func FormatDayOfWeek(d time.Weekday) string {
	return d.String()[:3]
}

// AlertMessage returns the heading and body shown when budget usage
// crosses a threshold. Safe usage has no message.
func AlertMessage(level model.AlertLevel, percent float64) (string, string) {
	used := fmt.Sprintf("You've used %.1f%% of your monthly budget.", percent)
	switch level {
	case model.AlertDanger:
		return "Budget Alert!", used + " Consider reducing spending."
	case model.AlertWarning:
		return "Budget Warning", used + " Keep an eye on your expenses."
	default:
		return "", ""
	}
}
