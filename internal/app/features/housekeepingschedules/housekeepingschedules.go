// Package housekeepingschedules mounts planned cleaning slots.
package housekeepingschedules

import (
	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

type Input struct {
	RoomNumber    string `form:"roomNumber" validate:"notblank,max=10" label:"Room"`
	StaffID       string `form:"staffId" validate:"omitempty,integer,minnum=1" label:"Staff id"`
	ScheduledDate string `form:"scheduledDate" validate:"notblank,isodate" label:"Date"`
	Shift         string `form:"shift" validate:"notblank,enum=shift" label:"Shift"`
	Status        string `form:"status" validate:"notblank,enum=housekeeping_schedule" label:"Status"`
}

func Definition(c *backend.Client) crud.Definition[models.HousekeepingSchedule, Input] {
	room := func(h models.HousekeepingSchedule) string { return h.RoomNumber }
	staff := func(h models.HousekeepingSchedule) string { return h.StaffName }
	date := func(h models.HousekeepingSchedule) string { return h.ScheduledDate }
	shift := func(h models.HousekeepingSchedule) string { return h.Shift }

	return crud.Definition[models.HousekeepingSchedule, Input]{
		Key:      "housekeeping-schedules",
		Singular: "Housekeeping schedule",
		Plural:   "Housekeeping schedules",
		Resource: backend.NewResource[models.HousekeepingSchedule](c, "housekeeping-schedules", backend.StatusPatchQuery),
		Filters: []crud.Filter{
			{Key: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.HousekeepingScheduleStatus},
			{Key: "scheduledDate", Label: "Date", Kind: crud.KindDate},
			{Key: "shift", Label: "Shift", Kind: crud.KindSelect, Enum: status.ShiftName},
			{Key: "roomNumber", Label: "Room", Kind: crud.KindText},
		},
		Columns: []crud.Column[models.HousekeepingSchedule]{
			{Label: "Room", Kind: crud.KindText, Value: room, Link: true},
			{Label: "Date", Kind: crud.KindDate, Value: date},
			{Label: "Shift", Kind: crud.KindSelect, Value: shift},
			{Label: "Staff", Kind: crud.KindText, Value: staff},
		},
		Fields: []crud.Field[models.HousekeepingSchedule]{
			{Label: "Room", Kind: crud.KindText, Value: room},
			{Label: "Date", Kind: crud.KindDate, Value: date},
			{Label: "Shift", Kind: crud.KindSelect, Value: shift},
			{Label: "Staff", Kind: crud.KindText, Value: staff},
		},
		Form: []crud.FormField{
			{Name: "roomNumber", Label: "Room", Kind: crud.KindText, Required: true},
			{Name: "staffId", Label: "Staff id", Kind: crud.KindInteger},
			{Name: "scheduledDate", Label: "Date", Kind: crud.KindDate, Required: true},
			{Name: "shift", Label: "Shift", Kind: crud.KindSelect, Enum: status.ShiftName, Required: true},
			{Name: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.HousekeepingScheduleStatus, Required: true},
		},
		StatusEnum: status.HousekeepingScheduleStatus,
		StatusOf:   func(h models.HousekeepingSchedule) string { return h.Status },
		ID:         func(h models.HousekeepingSchedule) int64 { return h.ID },
		ToInput: func(h models.HousekeepingSchedule) Input {
			in := Input{
				RoomNumber:    h.RoomNumber,
				StaffID:       crud.RefInput(h.StaffID),
				ScheduledDate: h.ScheduledDate,
				Shift:         h.Shift,
				Status:        h.Status,
			}
			if in.Status == "" {
				in.Status = "SCHEDULED"
			}
			return in
		},
		Build: func(in Input, h models.HousekeepingSchedule) (models.HousekeepingSchedule, error) {
			staffID, err := crud.ParseInt(in.StaffID)
			if err != nil {
				return h, err
			}
			if staffID != h.StaffID {
				h.StaffName = ""
			}
			h.RoomNumber = crud.Trim(in.RoomNumber)
			h.StaffID = staffID
			h.ScheduledDate = crud.Trim(in.ScheduledDate)
			h.Shift = crud.Canonical(status.ShiftName, in.Shift)
			h.Status = crud.Canonical(status.HousekeepingScheduleStatus, in.Status)
			return h, nil
		},
		Update:      crud.UpdatePut,
		AllowCreate: true,
		AllowEdit:   true,
	}
}

func Routes(c *backend.Client, deps crud.Deps, sm *auth.SessionManager) chi.Router {
	return crud.MustNew(Definition(c), deps).Routes(sm)
}
