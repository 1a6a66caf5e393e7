// Package status maps record status values to badge categories and holds the
// enum sets each resource's status field is constrained to.
package status

import "strings"

// Category is the presentation class of a status badge.
type Category string

const (
	Success Category = "success"
	Warning Category = "warning"
	Error   Category = "error"
	Info    Category = "info"
	Neutral Category = "neutral"
)

var categories = map[string]Category{
	"PAID":      Success,
	"COMPLETED": Success,
	"APPROVED":  Success,
	"RESOLVED":  Success,
	"ACTIVE":    Success,

	"PENDING":        Warning,
	"ASSIGNED":       Warning,
	"SCHEDULED":      Warning,
	"SUBMITTED":      Warning,
	"DRAFT":          Warning,
	"NEW":            Warning,
	"REVIEWED":       Warning,
	"IN_MAINTENANCE": Warning,

	"UNPAID":    Error,
	"CANCELLED": Error,
	"REJECTED":  Error,
	"RETIRED":   Error,
	"INACTIVE":  Error,

	"IN_PROGRESS": Info,
}

// Badge returns the category for a status value. Matching ignores case and
// surrounding space. Unknown values are Neutral so a missing mapping shows up
// as an uncoloured badge instead of borrowing another status's colour.
func Badge(value string) Category {
	if c, ok := categories[normalize(value)]; ok {
		return c
	}
	return Neutral
}

// Class returns the CSS class used for a category's badge.
func Class(c Category) string {
	switch c {
	case Success, Warning, Error, Info:
		return "badge badge-" + string(c)
	default:
		return "badge badge-neutral"
	}
}

// BadgeClass is Class(Badge(value)).
func BadgeClass(value string) string { return Class(Badge(value)) }

// Label turns an enum value into display text: IN_PROGRESS → "In progress".
func Label(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	v = strings.ToLower(strings.ReplaceAll(v, "_", " "))
	return strings.ToUpper(v[:1]) + v[1:]
}

func normalize(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}
