package inputval

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/go-playground/validator/v10"
)

func registerRules(v *validator.Validate) {
	must(v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fieldString(fl)) != ""
	}))
	must(v.RegisterValidation("number", func(fl validator.FieldLevel) bool {
		_, ok := fieldFloat(fl)
		return ok
	}))
	must(v.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		return IsInteger(fieldString(fl))
	}))
	must(v.RegisterValidation("minnum", func(fl validator.FieldLevel) bool {
		n, ok := fieldFloat(fl)
		lim, err := strconv.ParseFloat(fl.Param(), 64)
		return ok && err == nil && n >= lim
	}))
	must(v.RegisterValidation("maxnum", func(fl validator.FieldLevel) bool {
		n, ok := fieldFloat(fl)
		lim, err := strconv.ParseFloat(fl.Param(), 64)
		return ok && err == nil && n <= lim
	}))
	must(v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return IsDate(fieldString(fl))
	}))
	must(v.RegisterValidation("isodatetime", func(fl validator.FieldLevel) bool {
		return IsDateTime(fieldString(fl))
	}))
	must(v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		return IsYearMonth(fieldString(fl))
	}))
	must(v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return IsClock(fieldString(fl))
	}))
	must(v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := status.Lookup(fl.Param())
		return ok && e.Contains(fieldString(fl))
	}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func fieldString(fl validator.FieldLevel) string {
	f := fl.Field()
	if f.Kind() == reflect.String {
		return f.String()
	}
	return ""
}

// fieldFloat reads a numeric value from a string or number field.
func fieldFloat(fl validator.FieldLevel) (float64, bool) {
	f := fl.Field()
	switch f.Kind() {
	case reflect.String:
		return ParseNumber(f.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(f.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(f.Uint()), true
	case reflect.Float32, reflect.Float64:
		n := f.Float()
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	}
	return 0, false
}

// ParseNumber parses a finite decimal number. NaN and infinities are rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// IsInteger reports whether s is a base-10 integer.
func IsInteger(s string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil
}

// IsDate reports whether s is a calendar date in YYYY-MM-DD form.
func IsDate(s string) bool {
	_, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	return err == nil
}

// IsDateTime accepts RFC 3339 timestamps and the datetime-local input format.
func IsDateTime(s string) bool {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// IsYearMonth reports whether s is a month in YYYY-MM form.
func IsYearMonth(s string) bool {
	_, err := time.Parse("2006-01", strings.TrimSpace(s))
	return err == nil
}

// IsClock reports whether s is a 24-hour HH:MM time.
func IsClock(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// ParseID parses a route identifier. Only positive integers are valid.
func ParseID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func enumList(name string) string {
	e, ok := status.Lookup(name)
	if !ok {
		return name
	}
	labels := e.Values()
	return strings.Join(labels, ", ")
}
