// Package services mounts the catalogue of services sold to guests.
package services

import (
	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Input is the service form.
type Input struct {
	Name        string `form:"name" validate:"notblank,max=80" label:"Name"`
	Category    string `form:"category" validate:"max=40" label:"Category"`
	Description string `form:"description" validate:"max=2000" label:"Description"`
	Price       string `form:"price" validate:"notblank,number,minnum=0" label:"Price"`
	Status      string `form:"status" validate:"notblank,enum=service" label:"Status"`
}

// Definition describes /services.
func Definition(c *backend.Client) crud.Definition[models.Service, Input] {
	name := func(s models.Service) string { return s.Name }
	category := func(s models.Service) string { return s.Category }
	price := func(s models.Service) string { return crud.Dec(s.Price) }

	return crud.Definition[models.Service, Input]{
		Key:      "services",
		Singular: "Service",
		Plural:   "Services",
		Resource: backend.NewResource[models.Service](c, "services", backend.StatusPatchQuery),
		Filters: []crud.Filter{
			{Key: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.ServiceStatus},
			{Key: "category", Label: "Category", Kind: crud.KindText},
			{Key: "name", Label: "Name", Kind: crud.KindText},
		},
		Columns: []crud.Column[models.Service]{
			{Label: "Name", Kind: crud.KindText, Value: name, Link: true},
			{Label: "Category", Kind: crud.KindText, Value: category},
			{Label: "Price", Kind: crud.KindMoney, Value: price},
		},
		Fields: []crud.Field[models.Service]{
			{Label: "Name", Kind: crud.KindText, Value: name},
			{Label: "Category", Kind: crud.KindText, Value: category},
			{Label: "Price", Kind: crud.KindMoney, Value: price},
			{Label: "Description", Kind: crud.KindTextArea, Value: func(s models.Service) string { return s.Description }},
		},
		Form: []crud.FormField{
			{Name: "name", Label: "Name", Kind: crud.KindText, Required: true},
			{Name: "category", Label: "Category", Kind: crud.KindText},
			{Name: "description", Label: "Description", Kind: crud.KindTextArea},
			{Name: "price", Label: "Price", Kind: crud.KindMoney, Required: true},
			{Name: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.ServiceStatus, Required: true},
		},
		StatusEnum: status.ServiceStatus,
		StatusOf:   func(s models.Service) string { return s.Status },
		ID:         func(s models.Service) int64 { return s.ID },
		Title:      name,
		ToInput: func(s models.Service) Input {
			in := Input{
				Name:        s.Name,
				Category:    s.Category,
				Description: s.Description,
				Price:       crud.DecInput(s.Price, s.ID),
				Status:      s.Status,
			}
			if in.Status == "" {
				in.Status = "ACTIVE"
			}
			return in
		},
		Build: func(in Input, s models.Service) (models.Service, error) {
			p, err := crud.ParseDecimal(in.Price)
			if err != nil {
				return s, err
			}
			s.Name = crud.Trim(in.Name)
			s.Category = crud.Trim(in.Category)
			s.Description = crud.Trim(in.Description)
			s.Price = p
			s.Status = crud.Canonical(status.ServiceStatus, in.Status)
			return s, nil
		},
		Update:      crud.UpdatePut,
		AllowCreate: true,
		AllowEdit:   true,
	}
}

// Routes mounts the service pages.
func Routes(c *backend.Client, deps crud.Deps, sm *auth.SessionManager) chi.Router {
	return crud.MustNew(Definition(c), deps).Routes(sm)
}
