// Package folios mounts guest bills and their charges.
package folios

import (
	"errors"
	"fmt"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/format"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Input is the folio form. Charges are posted by the backend's billing
// flow and are not editable here.
type Input struct {
	GuestID    string `form:"guestId" validate:"omitempty,integer,minnum=1" label:"Guest id"`
	RoomNumber string `form:"roomNumber" validate:"notblank,max=10" label:"Room"`
	Status     string `form:"status" validate:"notblank,enum=folio" label:"Status"`
}

// errGuestRequired is shown on the create form as is.
var errGuestRequired = errors.New("Guest id is required for a new folio.")

// total prefers the backend's figure and falls back to summing charges.
func total(f models.Folio) string {
	if f.Total.IsZero() && len(f.Charges) > 0 {
		return f.ChargesTotal().String()
	}
	return f.Total.String()
}

// Charges is the detail page's charge table.
func Charges() *crud.ChildTable[models.Folio] {
	return &crud.ChildTable[models.Folio]{
		Title:   "Charges",
		Headers: []string{"Posted", "Description", "Amount"},
		Rows: func(f models.Folio) [][]string {
			rows := make([][]string, 0, len(f.Charges))
			for _, ch := range f.Charges {
				rows = append(rows, []string{format.DateTime(ch.PostedAt), ch.Description, format.Money(ch.Amount)})
			}
			return rows
		},
		Footer: func(f models.Folio) []string {
			if len(f.Charges) == 0 {
				return nil
			}
			return []string{"", "Total", format.Money(f.ChargesTotal())}
		},
		Empty: "No charges posted.",
	}
}

// Definition describes /folios. Edits are merge patches so the charge list
// is never sent back.
func Definition(c *backend.Client) crud.Definition[models.Folio, Input] {
	room := func(f models.Folio) string { return f.RoomNumber }
	guest := func(f models.Folio) string { return f.GuestName }
	opened := func(f models.Folio) string { return f.OpenedAt }

	return crud.Definition[models.Folio, Input]{
		Key:      "folios",
		Singular: "Folio",
		Plural:   "Folios",
		Resource: backend.NewResource[models.Folio](c, "folios", backend.StatusPatchQuery),
		Filters: []crud.Filter{
			{Key: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.FolioStatus},
			{Key: "roomNumber", Label: "Room", Kind: crud.KindText},
			{Key: "guestName", Label: "Guest", Kind: crud.KindText},
		},
		Columns: []crud.Column[models.Folio]{
			{Label: "Room", Kind: crud.KindText, Value: room, Link: true},
			{Label: "Guest", Kind: crud.KindText, Value: guest},
			{Label: "Opened", Kind: crud.KindDateTime, Value: opened},
			{Label: "Total", Kind: crud.KindMoney, Value: total},
		},
		Fields: []crud.Field[models.Folio]{
			{Label: "Guest", Kind: crud.KindText, Value: guest},
			{Label: "Room", Kind: crud.KindText, Value: room},
			{Label: "Opened", Kind: crud.KindDateTime, Value: opened},
			{Label: "Total", Kind: crud.KindMoney, Value: total},
		},
		Children: Charges(),
		Form: []crud.FormField{
			{Name: "guestId", Label: "Guest id", Kind: crud.KindInteger, CreateOnly: true, Help: "The guest the folio is opened for."},
			{Name: "roomNumber", Label: "Room", Kind: crud.KindText, Required: true},
			{Name: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.FolioStatus, Required: true},
		},
		StatusEnum: status.FolioStatus,
		StatusOf:   func(f models.Folio) string { return f.Status },
		ID:         func(f models.Folio) int64 { return f.ID },
		Title: func(f models.Folio) string {
			if f.RoomNumber == "" {
				return ""
			}
			return fmt.Sprintf("Folio #%d · room %s", f.ID, f.RoomNumber)
		},
		ToInput: func(f models.Folio) Input {
			in := Input{GuestID: crud.RefInput(f.GuestID), RoomNumber: f.RoomNumber, Status: f.Status}
			if in.Status == "" {
				in.Status = "UNPAID"
			}
			return in
		},
		Build: func(in Input, f models.Folio) (models.Folio, error) {
			if f.ID == 0 {
				gid, err := crud.ParseInt(in.GuestID)
				if err != nil {
					return f, err
				}
				if gid == 0 {
					return f, errGuestRequired
				}
				f.GuestID = gid
			}
			f.RoomNumber = crud.Trim(in.RoomNumber)
			f.Status = crud.Canonical(status.FolioStatus, in.Status)
			return f, nil
		},
		Update:      crud.UpdatePatch,
		AllowCreate: true,
		AllowEdit:   true,
	}
}

// Routes mounts the folio pages.
func Routes(c *backend.Client, deps crud.Deps, sm *auth.SessionManager) chi.Router {
	return crud.MustNew(Definition(c), deps).Routes(sm)
}
