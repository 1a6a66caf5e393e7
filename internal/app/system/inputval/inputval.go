// Package inputval validates form input structs before anything is sent to
// the backend. Rules are declared with `validate:"..."` struct tags and
// messages use the field's `label:"..."` tag.
package inputval

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string // form field name (the `form` tag, else the Go field name)
	Label   string
	Tag     string
	Message string
}

// Result collects the errors of one Validate call.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool { return r != nil && len(r.Errors) > 0 }

// First returns the first message, or "".
func (r *Result) First() string {
	if !r.HasErrors() {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every message with "; ".
func (r *Result) All() string {
	if !r.HasErrors() {
		return ""
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// Fields maps each failing form field to its first message, for inline
// display next to inputs.
func (r *Result) Fields() map[string]string {
	out := map[string]string{}
	if r == nil {
		return out
	}
	for _, e := range r.Errors {
		if _, seen := out[e.Field]; !seen {
			out[e.Field] = e.Message
		}
	}
	return out
}

var (
	once     sync.Once
	validate *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if l := f.Tag.Get("label"); l != "" {
				return l
			}
			return f.Name
		})
		registerRules(v)
		validate = v
	})
	return validate
}

// Validate runs the struct's validation tags. It never performs I/O.
func Validate(v any) *Result {
	res := &Result{}
	err := engine().Struct(v)
	if err == nil {
		return res
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		res.Errors = append(res.Errors, FieldError{Message: err.Error()})
		return res
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, fe := range verrs {
		res.Errors = append(res.Errors, FieldError{
			Field:   formName(t, fe.StructField()),
			Label:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return res
}

func formName(t reflect.Type, field string) string {
	if t.Kind() != reflect.Struct {
		return field
	}
	f, ok := t.FieldByName(field)
	if !ok {
		return field
	}
	if name, _, _ := strings.Cut(f.Tag.Get("form"), ","); name != "" && name != "-" {
		return name
	}
	return field
}

func message(fe validator.FieldError) string {
	label := fe.Field()
	p := fe.Param()
	switch fe.Tag() {
	case "required", "notblank":
		return label + " is required."
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", label, p)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, p)
	case "email":
		return "A valid email address is required."
	case "number":
		return label + " must be a number."
	case "integer":
		return label + " must be a whole number."
	case "minnum":
		return fmt.Sprintf("%s must be at least %s.", label, p)
	case "maxnum":
		return fmt.Sprintf("%s must be at most %s.", label, p)
	case "isodate":
		return label + " must be a date (YYYY-MM-DD)."
	case "isodatetime":
		return label + " must be a date and time."
	case "yearmonth":
		return label + " must be a month (YYYY-MM)."
	case "clock":
		return label + " must be a time (HH:MM)."
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.ReplaceAll(p, " ", ", "))
	case "enum":
		return fmt.Sprintf("%s must be one of: %s.", label, enumList(p))
	default:
		return label + " is invalid."
	}
}
