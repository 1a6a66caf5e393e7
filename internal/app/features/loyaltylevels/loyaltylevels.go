// Package loyaltylevels mounts the loyalty programme tiers.
package loyaltylevels

import (
	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Input is the tier form. DiscountPercent is 0..100, not a fraction.
type Input struct {
	Name            string `form:"name" validate:"notblank,max=60" label:"Name"`
	MinPoints       string `form:"minPoints" validate:"notblank,integer,minnum=0" label:"Minimum points"`
	DiscountPercent string `form:"discountPercent" validate:"notblank,number,minnum=0,maxnum=100" label:"Discount"`
	Benefits        string `form:"benefits" validate:"max=2000" label:"Benefits"`
}

// Definition describes /loyalty-levels.
func Definition(c *backend.Client) crud.Definition[models.LoyaltyLevel, Input] {
	name := func(l models.LoyaltyLevel) string { return l.Name }
	minPoints := func(l models.LoyaltyLevel) string { return crud.Int64(l.MinPoints) }
	discount := func(l models.LoyaltyLevel) string { return crud.Dec(l.DiscountPercent) }

	return crud.Definition[models.LoyaltyLevel, Input]{
		Key:      "loyalty-levels",
		Singular: "Loyalty level",
		Plural:   "Loyalty levels",
		Resource: backend.NewResource[models.LoyaltyLevel](c, "loyalty-levels", backend.StatusPatchQuery),
		Filters: []crud.Filter{
			{Key: "name", Label: "Name", Kind: crud.KindText},
		},
		Columns: []crud.Column[models.LoyaltyLevel]{
			{Label: "Name", Kind: crud.KindText, Value: name, Link: true},
			{Label: "Minimum points", Kind: crud.KindInteger, Value: minPoints},
			{Label: "Discount", Kind: crud.KindPercent, Value: discount},
		},
		Fields: []crud.Field[models.LoyaltyLevel]{
			{Label: "Name", Kind: crud.KindText, Value: name},
			{Label: "Minimum points", Kind: crud.KindInteger, Value: minPoints},
			{Label: "Discount", Kind: crud.KindPercent, Value: discount},
			{Label: "Benefits", Kind: crud.KindTextArea, Value: func(l models.LoyaltyLevel) string { return l.Benefits }},
		},
		Form: []crud.FormField{
			{Name: "name", Label: "Name", Kind: crud.KindText, Required: true},
			{Name: "minPoints", Label: "Minimum points", Kind: crud.KindInteger, Required: true},
			{Name: "discountPercent", Label: "Discount (%)", Kind: crud.KindPercent, Required: true},
			{Name: "benefits", Label: "Benefits", Kind: crud.KindTextArea},
		},
		ID:    func(l models.LoyaltyLevel) int64 { return l.ID },
		Title: name,
		ToInput: func(l models.LoyaltyLevel) Input {
			return Input{
				Name:            l.Name,
				MinPoints:       crud.IntInput(l.MinPoints, l.ID),
				DiscountPercent: crud.DecInput(l.DiscountPercent, l.ID),
				Benefits:        l.Benefits,
			}
		},
		Build: func(in Input, l models.LoyaltyLevel) (models.LoyaltyLevel, error) {
			pts, err := crud.ParseInt(in.MinPoints)
			if err != nil {
				return l, err
			}
			pct, err := crud.ParseDecimal(in.DiscountPercent)
			if err != nil {
				return l, err
			}
			l.Name = crud.Trim(in.Name)
			l.MinPoints = pts
			l.DiscountPercent = pct
			l.Benefits = crud.Trim(in.Benefits)
			return l, nil
		},
		Update:      crud.UpdatePut,
		AllowCreate: true,
		AllowEdit:   true,
	}
}

// Routes mounts the loyalty level pages.
func Routes(c *backend.Client, deps crud.Deps, sm *auth.SessionManager) chi.Router {
	return crud.MustNew(Definition(c), deps).Routes(sm)
}
