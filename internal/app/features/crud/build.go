package crud

import (
	"strconv"
	"strings"

	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/shopspring/decimal"
)

// Helpers for Definition.Build. Inputs reaching Build have passed
// validation, so these only fail on values validation lets through blank.

// ParseDecimal parses a numeric input. Blank is zero.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// ParseInt parses an integer input. Blank is zero.
func ParseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

// Canonical returns the stored spelling of an enum value, or v trimmed
// when it is not a member.
func Canonical(enum, v string) string {
	e, ok := status.Lookup(enum)
	if !ok {
		return strings.TrimSpace(v)
	}
	if c, member := e.Canonical(v); member {
		return c
	}
	return strings.TrimSpace(v)
}

// Trim is strings.TrimSpace, for symmetry in Build funcs.
func Trim(s string) string { return strings.TrimSpace(s) }

// RefInput renders a reference id for a form input. 0 means no
// reference and shows blank.
func RefInput(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

// IntInput renders a quantity for a form input. A zero is blank only on a
// create draft (recordID 0); a stored record shows "0".
func IntInput(n, recordID int64) string {
	if n == 0 && recordID == 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

// DecInput is IntInput for decimals.
func DecInput(d decimal.Decimal, recordID int64) string {
	if d.IsZero() && recordID == 0 {
		return ""
	}
	return d.String()
}
