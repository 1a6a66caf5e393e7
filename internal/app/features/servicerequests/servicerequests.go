// Package servicerequests mounts guest orders for services.
package servicerequests

import (
	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Input is the request form. Service and guest are fixed once the request
// exists.
type Input struct {
	ServiceID   string `form:"serviceId" validate:"omitempty,integer,minnum=1" label:"Service id"`
	GuestID     string `form:"guestId" validate:"omitempty,integer,minnum=1" label:"Guest id"`
	RoomNumber  string `form:"roomNumber" validate:"notblank,max=10" label:"Room"`
	RequestedAt string `form:"requestedAt" validate:"omitempty,isodatetime" label:"Requested at"`
	Notes       string `form:"notes" validate:"max=1000" label:"Notes"`
	Status      string `form:"status" validate:"notblank,enum=service_request" label:"Status"`
}

// Definition describes /service-requests.
func Definition(c *backend.Client) crud.Definition[models.ServiceRequest, Input] {
	service := func(s models.ServiceRequest) string { return s.ServiceName }
	guest := func(s models.ServiceRequest) string { return s.GuestName }
	room := func(s models.ServiceRequest) string { return s.RoomNumber }
	requested := func(s models.ServiceRequest) string { return s.RequestedAt }

	return crud.Definition[models.ServiceRequest, Input]{
		Key:      "service-requests",
		Singular: "Service request",
		Plural:   "Service requests",
		Resource: backend.NewResource[models.ServiceRequest](c, "service-requests", backend.StatusPatchQuery),
		Filters: []crud.Filter{
			{Key: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.ServiceRequestStatus},
			{Key: "roomNumber", Label: "Room", Kind: crud.KindText},
			{Key: "serviceName", Label: "Service", Kind: crud.KindText},
		},
		Columns: []crud.Column[models.ServiceRequest]{
			{Label: "Service", Kind: crud.KindText, Value: service, Link: true},
			{Label: "Guest", Kind: crud.KindText, Value: guest},
			{Label: "Room", Kind: crud.KindText, Value: room},
			{Label: "Requested", Kind: crud.KindDateTime, Value: requested},
		},
		Fields: []crud.Field[models.ServiceRequest]{
			{Label: "Service", Kind: crud.KindText, Value: service},
			{Label: "Guest", Kind: crud.KindText, Value: guest},
			{Label: "Room", Kind: crud.KindText, Value: room},
			{Label: "Requested", Kind: crud.KindDateTime, Value: requested},
			{Label: "Notes", Kind: crud.KindTextArea, Value: func(s models.ServiceRequest) string { return s.Notes }},
		},
		Form: []crud.FormField{
			{Name: "serviceId", Label: "Service id", Kind: crud.KindInteger, CreateOnly: true},
			{Name: "guestId", Label: "Guest id", Kind: crud.KindInteger, CreateOnly: true},
			{Name: "roomNumber", Label: "Room", Kind: crud.KindText, Required: true},
			{Name: "requestedAt", Label: "Requested at", Kind: crud.KindDateTime},
			{Name: "notes", Label: "Notes", Kind: crud.KindTextArea},
			{Name: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.ServiceRequestStatus, Required: true},
		},
		StatusEnum: status.ServiceRequestStatus,
		StatusOf:   func(s models.ServiceRequest) string { return s.Status },
		ID:         func(s models.ServiceRequest) int64 { return s.ID },
		ToInput: func(s models.ServiceRequest) Input {
			in := Input{
				ServiceID:   crud.RefInput(s.ServiceID),
				GuestID:     crud.RefInput(s.GuestID),
				RoomNumber:  s.RoomNumber,
				RequestedAt: s.RequestedAt,
				Notes:       s.Notes,
				Status:      s.Status,
			}
			if in.Status == "" {
				in.Status = "PENDING"
			}
			return in
		},
		Build: func(in Input, s models.ServiceRequest) (models.ServiceRequest, error) {
			if s.ID == 0 {
				sid, err := crud.ParseInt(in.ServiceID)
				if err != nil {
					return s, err
				}
				gid, err := crud.ParseInt(in.GuestID)
				if err != nil {
					return s, err
				}
				s.ServiceID, s.GuestID = sid, gid
			}
			s.RoomNumber = crud.Trim(in.RoomNumber)
			s.RequestedAt = crud.Trim(in.RequestedAt)
			s.Notes = crud.Trim(in.Notes)
			s.Status = crud.Canonical(status.ServiceRequestStatus, in.Status)
			return s, nil
		},
		Update:      crud.UpdatePatch,
		AllowCreate: true,
		AllowEdit:   true,
	}
}

// Routes mounts the service request pages.
func Routes(c *backend.Client, deps crud.Deps, sm *auth.SessionManager) chi.Router {
	return crud.MustNew(Definition(c), deps).Routes(sm)
}
