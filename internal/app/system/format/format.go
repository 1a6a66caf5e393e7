// Package format renders numbers, money and backend date strings for
// display. Values the backend sends that do not parse are shown unchanged.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Money formats an amount with grouping and two decimals: 1234.5 → "1,234.50".
func Money(d decimal.Decimal) string {
	return printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// Int formats a count with grouping: 12345 → "12,345".
func Int[N ~int | ~int32 | ~int64](n N) string {
	return printer.Sprint(number.Decimal(int64(n)))
}

// Percent formats a 0..100 value: 12.5 → "12.5%".
func Percent(d decimal.Decimal) string {
	return printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2))) + "%"
}

// Date shows a YYYY-MM-DD (or longer ISO) value as "Jan 2, 2006".
func Date(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 10 {
		if t, err := time.Parse(time.DateOnly, s[:10]); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return s
}

// DateTime shows an ISO timestamp as "Jan 2, 2006 15:04".
func DateTime(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006 15:04")
		}
	}
	return Date(s)
}

// Month shows YYYY-MM as "January 2006".
func Month(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01", s); err == nil {
		return t.Format("January 2006")
	}
	return s
}

// InputDateTime converts a backend timestamp to the value a
// datetime-local input expects (YYYY-MM-DDTHH:MM).
func InputDateTime(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02T15:04")
		}
	}
	return s
}

// Fallback returns s, or "—" when s is blank.
func Fallback(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
