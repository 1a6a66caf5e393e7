// Package housekeepingrequests mounts room cleaning and servicing requests.
package housekeepingrequests

import (
	"strings"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Input is the request form.
type Input struct {
	RoomNumber      string `form:"roomNumber" validate:"notblank,max=10" label:"Room"`
	RequestType     string `form:"requestType" validate:"notblank,max=40" label:"Request type"`
	Notes           string `form:"notes" validate:"max=1000" label:"Notes"`
	AssignedStaffID string `form:"assignedStaffId" validate:"omitempty,integer,minnum=1" label:"Assigned staff id"`
	Status          string `form:"status" validate:"notblank,enum=housekeeping_request" label:"Status"`
}

// Definition describes /housekeeping-requests. The backend takes status
// changes as a raw PUT body on this resource.
func Definition(c *backend.Client) crud.Definition[models.HousekeepingRequest, Input] {
	room := func(h models.HousekeepingRequest) string { return h.RoomNumber }
	kind := func(h models.HousekeepingRequest) string { return h.RequestType }
	staff := func(h models.HousekeepingRequest) string { return h.AssignedStaffName }
	requested := func(h models.HousekeepingRequest) string { return h.RequestedAt }

	return crud.Definition[models.HousekeepingRequest, Input]{
		Key:      "housekeeping-requests",
		Singular: "Housekeeping request",
		Plural:   "Housekeeping requests",
		Resource: backend.NewResource[models.HousekeepingRequest](c, "housekeeping-requests", backend.StatusPutBody),
		Filters: []crud.Filter{
			{Key: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.HousekeepingRequestStatus},
			{Key: "roomNumber", Label: "Room", Kind: crud.KindText},
			{Key: "requestType", Label: "Type", Kind: crud.KindText},
		},
		Columns: []crud.Column[models.HousekeepingRequest]{
			{Label: "Room", Kind: crud.KindText, Value: room, Link: true},
			{Label: "Type", Kind: crud.KindText, Value: kind},
			{Label: "Assigned to", Kind: crud.KindText, Value: staff},
			{Label: "Requested", Kind: crud.KindDateTime, Value: requested},
		},
		Fields: []crud.Field[models.HousekeepingRequest]{
			{Label: "Room", Kind: crud.KindText, Value: room},
			{Label: "Type", Kind: crud.KindText, Value: kind},
			{Label: "Notes", Kind: crud.KindTextArea, Value: func(h models.HousekeepingRequest) string { return h.Notes }},
			{Label: "Assigned to", Kind: crud.KindText, Value: staff},
			{Label: "Requested", Kind: crud.KindDateTime, Value: requested},
		},
		Form: []crud.FormField{
			{Name: "roomNumber", Label: "Room", Kind: crud.KindText, Required: true},
			{Name: "requestType", Label: "Request type", Kind: crud.KindText, Required: true, Help: "CLEANING, TURNDOWN, LINEN, ..."},
			{Name: "notes", Label: "Notes", Kind: crud.KindTextArea},
			{Name: "assignedStaffId", Label: "Assigned staff id", Kind: crud.KindInteger},
			{Name: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.HousekeepingRequestStatus, Required: true},
		},
		StatusEnum: status.HousekeepingRequestStatus,
		StatusOf:   func(h models.HousekeepingRequest) string { return h.Status },
		ID:         func(h models.HousekeepingRequest) int64 { return h.ID },
		ToInput: func(h models.HousekeepingRequest) Input {
			in := Input{
				RoomNumber:      h.RoomNumber,
				RequestType:     h.RequestType,
				Notes:           h.Notes,
				AssignedStaffID: crud.RefInput(h.AssignedStaffID),
				Status:          h.Status,
			}
			if in.Status == "" {
				in.Status = "PENDING"
			}
			return in
		},
		Build: func(in Input, h models.HousekeepingRequest) (models.HousekeepingRequest, error) {
			staffID, err := crud.ParseInt(in.AssignedStaffID)
			if err != nil {
				return h, err
			}
			if staffID != h.AssignedStaffID {
				h.AssignedStaffName = ""
			}
			h.RoomNumber = crud.Trim(in.RoomNumber)
			h.RequestType = strings.ToUpper(crud.Trim(in.RequestType))
			h.Notes = crud.Trim(in.Notes)
			h.AssignedStaffID = staffID
			h.Status = crud.Canonical(status.HousekeepingRequestStatus, in.Status)
			return h, nil
		},
		Update:      crud.UpdatePut,
		AllowCreate: true,
		AllowEdit:   true,
	}
}

// Routes mounts the housekeeping request pages.
func Routes(c *backend.Client, deps crud.Deps, sm *auth.SessionManager) chi.Router {
	return crud.MustNew(Definition(c), deps).Routes(sm)
}
