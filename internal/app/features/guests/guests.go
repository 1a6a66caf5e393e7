// Package guests mounts the guest register.
package guests

import (
	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Input is the guest form.
type Input struct {
	FirstName   string `form:"firstName" validate:"notblank,max=60" label:"First name"`
	LastName    string `form:"lastName" validate:"notblank,max=60" label:"Last name"`
	Email       string `form:"email" validate:"omitempty,email,max=120" label:"Email"`
	Phone       string `form:"phone" validate:"max=30" label:"Phone"`
	Nationality string `form:"nationality" validate:"max=60" label:"Nationality"`
	DateOfBirth string `form:"dateOfBirth" validate:"omitempty,isodate" label:"Date of birth"`
}

// Definition describes /guests.
func Definition(c *backend.Client) crud.Definition[models.Guest, Input] {
	name := func(g models.Guest) string { return g.FullName() }
	email := func(g models.Guest) string { return g.Email }
	phone := func(g models.Guest) string { return g.Phone }
	nationality := func(g models.Guest) string { return g.Nationality }
	dob := func(g models.Guest) string { return g.DateOfBirth }

	return crud.Definition[models.Guest, Input]{
		Key:      "guests",
		Singular: "Guest",
		Plural:   "Guests",
		Resource: backend.NewResource[models.Guest](c, "guests", backend.StatusPatchQuery),
		Filters: []crud.Filter{
			{Key: "lastName", Label: "Last name", Kind: crud.KindText},
			{Key: "email", Label: "Email", Kind: crud.KindText},
			{Key: "nationality", Label: "Nationality", Kind: crud.KindText},
		},
		Columns: []crud.Column[models.Guest]{
			{Label: "Name", Kind: crud.KindText, Value: name, Link: true},
			{Label: "Email", Kind: crud.KindEmail, Value: email},
			{Label: "Phone", Kind: crud.KindText, Value: phone},
			{Label: "Nationality", Kind: crud.KindText, Value: nationality},
		},
		Fields: []crud.Field[models.Guest]{
			{Label: "Name", Kind: crud.KindText, Value: name},
			{Label: "Email", Kind: crud.KindEmail, Value: email},
			{Label: "Phone", Kind: crud.KindText, Value: phone},
			{Label: "Nationality", Kind: crud.KindText, Value: nationality},
			{Label: "Date of birth", Kind: crud.KindDate, Value: dob},
		},
		Form: []crud.FormField{
			{Name: "firstName", Label: "First name", Kind: crud.KindText, Required: true},
			{Name: "lastName", Label: "Last name", Kind: crud.KindText, Required: true},
			{Name: "email", Label: "Email", Kind: crud.KindEmail},
			{Name: "phone", Label: "Phone", Kind: crud.KindText},
			{Name: "nationality", Label: "Nationality", Kind: crud.KindText},
			{Name: "dateOfBirth", Label: "Date of birth", Kind: crud.KindDate},
		},
		ID:    func(g models.Guest) int64 { return g.ID },
		Title: name,
		ToInput: func(g models.Guest) Input {
			return Input{
				FirstName:   g.FirstName,
				LastName:    g.LastName,
				Email:       g.Email,
				Phone:       g.Phone,
				Nationality: g.Nationality,
				DateOfBirth: g.DateOfBirth,
			}
		},
		Build: func(in Input, g models.Guest) (models.Guest, error) {
			g.FirstName = crud.Trim(in.FirstName)
			g.LastName = crud.Trim(in.LastName)
			g.Email = crud.Trim(in.Email)
			g.Phone = crud.Trim(in.Phone)
			g.Nationality = crud.Trim(in.Nationality)
			g.DateOfBirth = crud.Trim(in.DateOfBirth)
			return g, nil
		},
		Update:      crud.UpdatePut,
		AllowCreate: true,
		AllowEdit:   true,
	}
}

// Routes mounts the guest pages.
func Routes(c *backend.Client, deps crud.Deps, sm *auth.SessionManager) chi.Router {
	return crud.MustNew(Definition(c), deps).Routes(sm)
}
