// Package customers mounts loyalty programme members.
package customers

import (
	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Input is the customer form.
type Input struct {
	FirstName      string `form:"firstName" validate:"notblank,max=60" label:"First name"`
	LastName       string `form:"lastName" validate:"notblank,max=60" label:"Last name"`
	Email          string `form:"email" validate:"required,email,max=120" label:"Email"`
	Phone          string `form:"phone" validate:"max=30" label:"Phone"`
	LoyaltyLevelID string `form:"loyaltyLevelId" validate:"omitempty,integer,minnum=1" label:"Loyalty level id"`
	Points         string `form:"points" validate:"omitempty,integer,minnum=0" label:"Points"`
}

// Definition describes /customers.
func Definition(c *backend.Client) crud.Definition[models.Customer, Input] {
	name := func(cu models.Customer) string { return cu.FullName() }
	level := func(cu models.Customer) string { return cu.LoyaltyLevelName }
	points := func(cu models.Customer) string { return crud.Int64(cu.Points) }

	return crud.Definition[models.Customer, Input]{
		Key:      "customers",
		Singular: "Customer",
		Plural:   "Customers",
		Resource: backend.NewResource[models.Customer](c, "customers", backend.StatusPatchQuery),
		Filters: []crud.Filter{
			{Key: "lastName", Label: "Last name", Kind: crud.KindText},
			{Key: "email", Label: "Email", Kind: crud.KindText},
			{Key: "loyaltyLevelId", Label: "Loyalty level id", Kind: crud.KindInteger},
		},
		Columns: []crud.Column[models.Customer]{
			{Label: "Name", Kind: crud.KindText, Value: name, Link: true},
			{Label: "Email", Kind: crud.KindEmail, Value: func(cu models.Customer) string { return cu.Email }},
			{Label: "Loyalty level", Kind: crud.KindText, Value: level},
			{Label: "Points", Kind: crud.KindInteger, Value: points},
		},
		Fields: []crud.Field[models.Customer]{
			{Label: "Name", Kind: crud.KindText, Value: name},
			{Label: "Email", Kind: crud.KindEmail, Value: func(cu models.Customer) string { return cu.Email }},
			{Label: "Phone", Kind: crud.KindText, Value: func(cu models.Customer) string { return cu.Phone }},
			{Label: "Loyalty level", Kind: crud.KindText, Value: level},
			{Label: "Points", Kind: crud.KindInteger, Value: points},
		},
		Form: []crud.FormField{
			{Name: "firstName", Label: "First name", Kind: crud.KindText, Required: true},
			{Name: "lastName", Label: "Last name", Kind: crud.KindText, Required: true},
			{Name: "email", Label: "Email", Kind: crud.KindEmail, Required: true},
			{Name: "phone", Label: "Phone", Kind: crud.KindText},
			{Name: "loyaltyLevelId", Label: "Loyalty level id", Kind: crud.KindInteger, Help: "See Loyalty levels for ids."},
			{Name: "points", Label: "Points", Kind: crud.KindInteger},
		},
		ID:    func(cu models.Customer) int64 { return cu.ID },
		Title: name,
		ToInput: func(cu models.Customer) Input {
			return Input{
				FirstName:      cu.FirstName,
				LastName:       cu.LastName,
				Email:          cu.Email,
				Phone:          cu.Phone,
				LoyaltyLevelID: crud.RefInput(cu.LoyaltyLevelID),
				Points:         crud.IntInput(cu.Points, cu.ID),
			}
		},
		Build: func(in Input, cu models.Customer) (models.Customer, error) {
			levelID, err := crud.ParseInt(in.LoyaltyLevelID)
			if err != nil {
				return cu, err
			}
			pts, err := crud.ParseInt(in.Points)
			if err != nil {
				return cu, err
			}
			if levelID != cu.LoyaltyLevelID {
				// The backend fills in the new name.
				cu.LoyaltyLevelName = ""
			}
			cu.FirstName = crud.Trim(in.FirstName)
			cu.LastName = crud.Trim(in.LastName)
			cu.Email = crud.Trim(in.Email)
			cu.Phone = crud.Trim(in.Phone)
			cu.LoyaltyLevelID = levelID
			cu.Points = pts
			return cu, nil
		},
		Update:      crud.UpdatePut,
		AllowCreate: true,
		AllowEdit:   true,
	}
}

// Routes mounts the customer pages.
func Routes(c *backend.Client, deps crud.Deps, sm *auth.SessionManager) chi.Router {
	return crud.MustNew(Definition(c), deps).Routes(sm)
}
