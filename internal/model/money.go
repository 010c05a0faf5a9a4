package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted on input and shown on output.
const DateLayout = "2006-01-02"

// MaxAmount bounds any single amount, expense, target or deposit.
var MaxAmount = decimal.NewFromInt(1_000_000_000)

// CheckAmount rejects amounts that are not positive or exceed MaxAmount.
func CheckAmount(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return NewValidationError(field, "must be greater than zero, got %s", d.String())
	}
	if d.GreaterThan(MaxAmount) {
		return NewValidationError(field, "must be at most %s", MaxAmount.String())
	}
	return nil
}

// ParseAmount parses a positive decimal amount.
//
// Both dot (12.34) and comma (12,34) decimal separators are accepted. A
// leading currency sign is ignored. Empty, non-numeric, zero, negative and
// oversized input is rejected with a ValidationError.
func ParseAmount(s string) (decimal.Decimal, error) {
	raw := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero, NewValidationError("amount", "amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, NewValidationError("amount", "%q is not a number", raw)
	}
	if err := CheckAmount("amount", d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, NewValidationError("date", "date is required")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, NewValidationError("date", "%q is not a YYYY-MM-DD date", s)
	}
	return t, nil
}

// DateOf truncates t to its calendar date in t's own location, returned as
// midnight UTC so dates compare and subtract cleanly.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
