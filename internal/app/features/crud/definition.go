// Package crud is the shared list and detail/edit controller every hotel
// resource page is built from. A resource describes itself once with a
// Definition; the Controller supplies paging, filtering, validation, the
// backend round trips, notices and the activity log.
package crud

import (
	"fmt"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
)

// Kind says how a value is entered and shown.
type Kind string

const (
	KindText     Kind = "text"
	KindTextArea Kind = "textarea"
	KindEmail    Kind = "email"
	KindNumber   Kind = "number"
	KindInteger  Kind = "integer"
	KindMoney    Kind = "money"
	KindPercent  Kind = "percent"
	KindDate     Kind = "date"
	KindDateTime Kind = "datetime-local"
	KindMonth    Kind = "month"
	KindClock    Kind = "time"
	KindSelect   Kind = "select" // options from a status enum set
	KindStatus   Kind = "status" // badge; options from the resource's status enum
)

// InputType is the HTML input type for k.
func (k Kind) InputType() string {
	switch k {
	case KindNumber, KindInteger, KindMoney, KindPercent:
		return "number"
	case KindEmail, KindDate, KindDateTime, KindMonth, KindClock:
		return string(k)
	default:
		return "text"
	}
}

// Filter is one list filter control. Its Key is both the query parameter
// on the dashboard URL and the backend filter field.
type Filter struct {
	Key   string
	Label string
	Kind  Kind
	Enum  string // for KindSelect and KindStatus
}

// Column is one list column. Value returns the raw backend value; the
// Kind decides how it is displayed and exported.
type Column[T any] struct {
	Label string
	Kind  Kind
	Value func(T) string
	Link  bool // links to the detail page
}

// Field is one row of the detail page.
type Field[T any] struct {
	Label string
	Kind  Kind
	Value func(T) string
}

// FormField is one input of the edit and create forms. Name must match the
// form tag of the input struct's field.
type FormField struct {
	Name     string
	Label    string
	Kind     Kind
	Enum     string
	Required bool
	Help     string
	// CreateOnly fields are shown on the create form only (references
	// such as guestId that cannot change afterwards).
	CreateOnly bool
}

// ChildTable is a nested list shown on the detail page, such as a folio's
// charges.
type ChildTable[T any] struct {
	Title   string
	Headers []string
	Rows    func(T) [][]string
	Footer  func(T) []string
	Empty   string
}

// UpdateMode selects how edits are sent.
type UpdateMode int

const (
	// UpdatePut sends the whole record.
	UpdatePut UpdateMode = iota
	// UpdatePatch sends a merge patch of the changed fields only.
	UpdatePatch
)

// Definition describes one resource. T is the backend record and In the
// form input struct, tagged for go-playground/form and validator.
type Definition[T any, In any] struct {
	// Key is the URL segment the resource is mounted under ("folios").
	Key      string
	Singular string
	Plural   string

	Resource *backend.Resource[T]

	Filters  []Filter
	Columns  []Column[T]
	Fields   []Field[T]
	Children *ChildTable[T]
	Form     []FormField

	// StatusEnum names the status set in the status registry; empty when
	// the resource has no status endpoint.
	StatusEnum string
	StatusOf   func(T) string

	ID    func(T) int64
	Title func(T) string

	// ToInput prefills the form from a record (zero T for create).
	ToInput func(T) In
	// Build applies a validated input onto the original record (zero T for
	// create) and returns the record to send.
	Build func(in In, original T) (T, error)

	Update      UpdateMode
	AllowCreate bool
	AllowEdit   bool
}

func (d Definition[T, In]) check() error {
	switch {
	case d.Key == "":
		return fmt.Errorf("crud: definition without Key")
	case d.Resource == nil:
		return fmt.Errorf("crud: %s: nil Resource", d.Key)
	case d.ID == nil:
		return fmt.Errorf("crud: %s: nil ID func", d.Key)
	case (d.AllowEdit || d.AllowCreate) && (d.ToInput == nil || d.Build == nil):
		return fmt.Errorf("crud: %s: editable without ToInput/Build", d.Key)
	case d.StatusEnum != "" && d.StatusOf == nil:
		return fmt.Errorf("crud: %s: StatusEnum without StatusOf", d.Key)
	}
	if d.StatusEnum != "" {
		if _, ok := status.Lookup(d.StatusEnum); !ok {
			return fmt.Errorf("crud: %s: unknown status enum %q", d.Key, d.StatusEnum)
		}
	}
	for _, f := range d.Filters {
		if (f.Kind == KindSelect || f.Kind == KindStatus) && f.Enum == "" {
			return fmt.Errorf("crud: %s: select filter %q without Enum", d.Key, f.Key)
		}
	}
	return nil
}

func (d Definition[T, In]) filterKeys() []string {
	keys := make([]string, len(d.Filters))
	for i, f := range d.Filters {
		keys[i] = f.Key
	}
	return keys
}

func (d Definition[T, In]) base() string { return "/" + d.Key }

func (d Definition[T, In]) detailHref(id int64) string {
	return fmt.Sprintf("/%s/%d", d.Key, id)
}

func (d Definition[T, In]) titleOf(v T) string {
	if d.Title != nil {
		if t := d.Title(v); t != "" {
			return t
		}
	}
	return fmt.Sprintf("%s #%d", d.Singular, d.ID(v))
}
