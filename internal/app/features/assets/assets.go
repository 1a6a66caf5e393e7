// Package assets mounts hotel equipment and property.
package assets

import (
	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

type Input struct {
	Name         string `form:"name" validate:"notblank,max=80" label:"Name"`
	Category     string `form:"category" validate:"max=40" label:"Category"`
	Location     string `form:"location" validate:"max=80" label:"Location"`
	PurchaseDate string `form:"purchaseDate" validate:"omitempty,isodate" label:"Purchase date"`
	Value        string `form:"value" validate:"omitempty,number,minnum=0" label:"Value"`
	Status       string `form:"status" validate:"notblank,enum=asset" label:"Status"`
}

func Definition(c *backend.Client) crud.Definition[models.Asset, Input] {
	name := func(a models.Asset) string { return a.Name }
	category := func(a models.Asset) string { return a.Category }
	location := func(a models.Asset) string { return a.Location }
	purchased := func(a models.Asset) string { return a.PurchaseDate }
	value := func(a models.Asset) string { return crud.Dec(a.Value) }

	return crud.Definition[models.Asset, Input]{
		Key:      "assets",
		Singular: "Asset",
		Plural:   "Assets",
		Resource: backend.NewResource[models.Asset](c, "assets", backend.StatusPatchQuery),
		Filters: []crud.Filter{
			{Key: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.AssetStatus},
			{Key: "category", Label: "Category", Kind: crud.KindText},
			{Key: "location", Label: "Location", Kind: crud.KindText},
		},
		Columns: []crud.Column[models.Asset]{
			{Label: "Name", Kind: crud.KindText, Value: name, Link: true},
			{Label: "Category", Kind: crud.KindText, Value: category},
			{Label: "Location", Kind: crud.KindText, Value: location},
			{Label: "Value", Kind: crud.KindMoney, Value: value},
		},
		Fields: []crud.Field[models.Asset]{
			{Label: "Name", Kind: crud.KindText, Value: name},
			{Label: "Category", Kind: crud.KindText, Value: category},
			{Label: "Location", Kind: crud.KindText, Value: location},
			{Label: "Purchased", Kind: crud.KindDate, Value: purchased},
			{Label: "Value", Kind: crud.KindMoney, Value: value},
		},
		Form: []crud.FormField{
			{Name: "name", Label: "Name", Kind: crud.KindText, Required: true},
			{Name: "category", Label: "Category", Kind: crud.KindText},
			{Name: "location", Label: "Location", Kind: crud.KindText},
			{Name: "purchaseDate", Label: "Purchase date", Kind: crud.KindDate},
			{Name: "value", Label: "Value", Kind: crud.KindMoney},
			{Name: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.AssetStatus, Required: true},
		},
		StatusEnum: status.AssetStatus,
		StatusOf:   func(a models.Asset) string { return a.Status },
		ID:         func(a models.Asset) int64 { return a.ID },
		Title:      name,
		ToInput: func(a models.Asset) Input {
			in := Input{
				Name:         a.Name,
				Category:     a.Category,
				Location:     a.Location,
				PurchaseDate: a.PurchaseDate,
				Value:        crud.DecInput(a.Value, a.ID),
				Status:       a.Status,
			}
			if in.Status == "" {
				in.Status = "ACTIVE"
			}
			return in
		},
		Build: func(in Input, a models.Asset) (models.Asset, error) {
			v, err := crud.ParseDecimal(in.Value)
			if err != nil {
				return a, err
			}
			a.Name = crud.Trim(in.Name)
			a.Category = crud.Trim(in.Category)
			a.Location = crud.Trim(in.Location)
			a.PurchaseDate = crud.Trim(in.PurchaseDate)
			a.Value = v
			a.Status = crud.Canonical(status.AssetStatus, in.Status)
			return a, nil
		},
		Update:      crud.UpdatePut,
		AllowCreate: true,
		AllowEdit:   true,
	}
}

func Routes(c *backend.Client, deps crud.Deps, sm *auth.SessionManager) chi.Router {
	return crud.MustNew(Definition(c), deps).Routes(sm)
}
