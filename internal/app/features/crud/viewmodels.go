package crud

import (
	"net/url"
	"time"

	"github.com/dalemusser/hotelhub/internal/app/store/audit"
	"github.com/dalemusser/hotelhub/internal/app/system/format"
	"github.com/dalemusser/hotelhub/internal/app/system/paging"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/dalemusser/hotelhub/internal/app/system/viewdata"
)

type filterVM struct {
	Key      string
	Label    string
	Type     string
	Value    string
	IsSelect bool
	Options  []status.Option
}

type headerVM struct {
	Label   string
	Numeric bool
}

type rowVM struct {
	ID     int64
	Href   string
	Cells  []Cell
	Status *statusVM
}

// statusVM is the badge with its change dropdown.
type statusVM struct {
	Action   string
	Return   string
	Current  string
	Label    string
	Class    string
	Options  []status.Option
	Editable bool
}

type listData struct {
	viewdata.BaseVM

	Key      string
	Singular string
	Plural   string
	BasePath string

	Filters    []filterVM
	HasFilters bool
	Size       int
	ResetHref  string
	ExportHref string
	NewHref    string

	Headers   []headerVM
	HasStatus bool
	Colspan   int
	Rows      []rowVM
	Pager     paging.Pager
	Query     paging.Query
	Failed    bool
}

type fieldVM struct {
	Label string
	Cell  Cell
}

type childVM struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  []string
	Empty   string
}

type historyVM struct {
	When    string
	Actor   string
	Action  string
	Details string
}

type viewData struct {
	viewdata.BaseVM

	Key         string
	Singular    string
	ID          int64
	RecordTitle string
	Fields      []fieldVM
	Child       *childVM
	Status      *statusVM
	EditHref    string
	History     []historyVM
	Partial     bool

	// Record is the backend's record exactly as received.
	Record any
}

type inputVM struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Step     string
	Help     string
	Error    string
	Required bool
	TextArea bool
	IsSelect bool
	Options  []status.Option
}

type editData struct {
	viewdata.BaseVM

	Key        string
	Singular   string
	ID         int64
	Creating   bool
	Action     string
	CancelHref string
	Inputs     []inputVM
}

func (c *Controller[T, In]) statusVM(v T, ret string) *statusVM {
	if c.def.StatusEnum == "" {
		return nil
	}
	cur := c.def.StatusOf(v)
	enum := status.MustLookup(c.def.StatusEnum)
	return &statusVM{
		Action:   c.def.detailHref(c.def.ID(v)) + "/status",
		Return:   ret,
		Current:  cur,
		Label:    format.Fallback(status.Label(cur)),
		Class:    status.BadgeClass(cur),
		Options:  enum.Options(cur),
		Editable: true,
	}
}

func (c *Controller[T, In]) filterVMs(q paging.Query) []filterVM {
	out := make([]filterVM, 0, len(c.def.Filters))
	for _, f := range c.def.Filters {
		vm := filterVM{Key: f.Key, Label: f.Label, Type: f.Kind.InputType(), Value: q.Filter(f.Key)}
		if f.Kind == KindSelect || f.Kind == KindStatus {
			vm.IsSelect = true
			vm.Options = status.MustLookup(f.Enum).Options(vm.Value)
		}
		out = append(out, vm)
	}
	return out
}

func (c *Controller[T, In]) rows(items []T, ret string) []rowVM {
	rows := make([]rowVM, 0, len(items))
	for _, it := range items {
		id := c.def.ID(it)
		row := rowVM{ID: id, Href: c.def.detailHref(id), Status: c.statusVM(it, ret)}
		for _, col := range c.def.Columns {
			cell := display(col.Kind, col.Value(it))
			if col.Link {
				cell.Href = row.Href
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	return rows
}

func (c *Controller[T, In]) headers() []headerVM {
	out := make([]headerVM, len(c.def.Columns))
	for i, col := range c.def.Columns {
		out[i] = headerVM{Label: col.Label, Numeric: display(col.Kind, "").Numeric}
	}
	return out
}

func (c *Controller[T, In]) fields(v T) []fieldVM {
	out := make([]fieldVM, 0, len(c.def.Fields))
	for _, f := range c.def.Fields {
		out = append(out, fieldVM{Label: f.Label, Cell: display(f.Kind, f.Value(v))})
	}
	return out
}

func (c *Controller[T, In]) child(v T) *childVM {
	ct := c.def.Children
	if ct == nil {
		return nil
	}
	vm := &childVM{Title: ct.Title, Headers: ct.Headers, Rows: ct.Rows(v), Empty: ct.Empty}
	if ct.Footer != nil {
		vm.Footer = ct.Footer(v)
	}
	if vm.Empty == "" {
		vm.Empty = "None."
	}
	return vm
}

// inputs builds form controls from vals. errs maps form names to messages.
func (c *Controller[T, In]) inputs(vals url.Values, errs map[string]string, creating bool) []inputVM {
	out := make([]inputVM, 0, len(c.def.Form))
	for _, f := range c.def.Form {
		if f.CreateOnly && !creating {
			continue
		}
		in := inputVM{
			Name:     f.Name,
			Label:    f.Label,
			Type:     f.Kind.InputType(),
			Value:    inputValue(f.Kind, vals.Get(f.Name)),
			Help:     f.Help,
			Error:    errs[f.Name],
			Required: f.Required,
			TextArea: f.Kind == KindTextArea,
		}
		switch f.Kind {
		case KindMoney, KindPercent:
			in.Step = "0.01"
		case KindInteger:
			in.Step = "1"
		case KindNumber:
			in.Step = "any"
		case KindSelect, KindStatus:
			in.IsSelect = true
			in.Options = status.MustLookup(f.Enum).Options(in.Value)
		}
		out = append(out, in)
	}
	return out
}

func historyVMs(events []audit.Event) []historyVM {
	out := make([]historyVM, 0, len(events))
	for _, e := range events {
		h := historyVM{
			When:   format.DateTime(e.Timestamp.Format(time.RFC3339)),
			Actor:  format.Fallback(e.Actor),
			Action: status.Label(e.EventType),
		}
		switch e.EventType {
		case audit.EventStatusChanged:
			h.Details = status.Label(e.Details["from"]) + " → " + status.Label(e.Details["to"])
		case audit.EventRecordPatched:
			h.Details = e.Details["fields"]
		case audit.EventWriteRejected:
			h.Details = "HTTP " + e.Details["status"]
			if e.FailureReason != "" {
				h.Details += ": " + e.FailureReason
			}
		}
		out = append(out, h)
	}
	return out
}
