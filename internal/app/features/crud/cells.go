package crud

import (
	"strconv"
	"strings"

	"github.com/dalemusser/hotelhub/internal/app/system/format"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/shopspring/decimal"
)

// Cell is a formatted value ready for a template.
type Cell struct {
	Text    string
	Raw     string
	Badge   bool
	Class   string
	Href    string
	Numeric bool
}

func display(kind Kind, raw string) Cell {
	raw = strings.TrimSpace(raw)
	c := Cell{Raw: raw, Text: raw}
	switch kind {
	case KindMoney:
		c.Numeric = true
		if d, err := decimal.NewFromString(raw); err == nil {
			c.Text = format.Money(d)
		}
	case KindPercent:
		c.Numeric = true
		if d, err := decimal.NewFromString(raw); err == nil {
			c.Text = format.Percent(d)
		}
	case KindInteger:
		c.Numeric = true
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			c.Text = format.Int(n)
		}
	case KindNumber:
		c.Numeric = true
	case KindDate:
		c.Text = format.Date(raw)
	case KindDateTime:
		c.Text = format.DateTime(raw)
	case KindMonth:
		c.Text = format.Month(raw)
	case KindStatus, KindSelect:
		if raw != "" {
			c.Badge = kind == KindStatus
			c.Class = status.BadgeClass(raw)
			c.Text = status.Label(raw)
		}
	}
	c.Text = format.Fallback(c.Text)
	return c
}

// exportValue is the spreadsheet cell for a raw value: numbers stay
// numeric so they can be summed.
func exportValue(kind Kind, raw string) any {
	raw = strings.TrimSpace(raw)
	switch kind {
	case KindMoney, KindPercent, KindNumber:
		if d, err := decimal.NewFromString(raw); err == nil {
			return d.InexactFloat64()
		}
	case KindInteger:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	case KindStatus, KindSelect:
		return status.Label(raw)
	}
	return raw
}

// inputValue converts a raw backend value to what an <input> expects.
func inputValue(kind Kind, raw string) string {
	switch kind {
	case KindDate:
		if len(raw) >= 10 {
			return raw[:10]
		}
	case KindDateTime:
		return format.InputDateTime(raw)
	case KindMonth:
		if len(raw) >= 7 {
			return raw[:7]
		}
	case KindClock:
		if len(raw) >= 5 {
			return raw[:5]
		}
	}
	return raw
}

// Int64 and Dec are Value helpers for definitions.
func Int64(n int64) string { return strconv.FormatInt(n, 10) }

func Dec(d decimal.Decimal) string { return d.String() }
