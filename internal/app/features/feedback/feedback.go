// Package feedback mounts guest ratings and comments.
package feedback

import (
	"strconv"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

type Input struct {
	GuestID string `form:"guestId" validate:"omitempty,integer,minnum=1" label:"Guest id"`
	Rating  string `form:"rating" validate:"notblank,integer,minnum=1,maxnum=5" label:"Rating"`
	Comment string `form:"comment" validate:"max=2000" label:"Comment"`
	Status  string `form:"status" validate:"notblank,enum=feedback" label:"Status"`
}

func rating(f models.Feedback) string {
	if f.Rating == 0 {
		return ""
	}
	return strconv.Itoa(f.Rating)
}

func Definition(c *backend.Client) crud.Definition[models.Feedback, Input] {
	guest := func(f models.Feedback) string { return f.GuestName }
	comment := func(f models.Feedback) string { return f.Comment }
	created := func(f models.Feedback) string { return f.CreatedAt }

	return crud.Definition[models.Feedback, Input]{
		Key:      "feedback",
		Singular: "Feedback",
		Plural:   "Feedback",
		Resource: backend.NewResource[models.Feedback](c, "feedback", backend.StatusPatchQuery),
		Filters: []crud.Filter{
			{Key: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.FeedbackStatus},
			{Key: "rating", Label: "Rating", Kind: crud.KindInteger},
			{Key: "guestName", Label: "Guest", Kind: crud.KindText},
		},
		Columns: []crud.Column[models.Feedback]{
			{Label: "Guest", Kind: crud.KindText, Value: guest, Link: true},
			{Label: "Rating", Kind: crud.KindInteger, Value: rating},
			{Label: "Comment", Kind: crud.KindText, Value: comment},
			{Label: "Received", Kind: crud.KindDateTime, Value: created},
		},
		Fields: []crud.Field[models.Feedback]{
			{Label: "Guest", Kind: crud.KindText, Value: guest},
			{Label: "Rating", Kind: crud.KindInteger, Value: rating},
			{Label: "Comment", Kind: crud.KindTextArea, Value: comment},
			{Label: "Received", Kind: crud.KindDateTime, Value: created},
		},
		Form: []crud.FormField{
			{Name: "guestId", Label: "Guest id", Kind: crud.KindInteger, CreateOnly: true},
			{Name: "rating", Label: "Rating", Kind: crud.KindInteger, Required: true, Help: "1 to 5"},
			{Name: "comment", Label: "Comment", Kind: crud.KindTextArea},
			{Name: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.FeedbackStatus, Required: true},
		},
		StatusEnum: status.FeedbackStatus,
		StatusOf:   func(f models.Feedback) string { return f.Status },
		ID:         func(f models.Feedback) int64 { return f.ID },
		ToInput: func(f models.Feedback) Input {
			in := Input{GuestID: crud.RefInput(f.GuestID), Rating: rating(f), Comment: f.Comment, Status: f.Status}
			if in.Status == "" {
				in.Status = "NEW"
			}
			return in
		},
		Build: func(in Input, f models.Feedback) (models.Feedback, error) {
			if f.ID == 0 {
				gid, err := crud.ParseInt(in.GuestID)
				if err != nil {
					return f, err
				}
				f.GuestID = gid
			}
			r, err := strconv.Atoi(crud.Trim(in.Rating))
			if err != nil {
				return f, err
			}
			f.Rating = r
			f.Comment = crud.Trim(in.Comment)
			f.Status = crud.Canonical(status.FeedbackStatus, in.Status)
			return f, nil
		},
		Update:      crud.UpdatePatch,
		AllowCreate: true,
		AllowEdit:   true,
	}
}

func Routes(c *backend.Client, deps crud.Deps, sm *auth.SessionManager) chi.Router {
	return crud.MustNew(Definition(c), deps).Routes(sm)
}
