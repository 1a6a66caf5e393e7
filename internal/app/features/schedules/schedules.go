// Package schedules mounts staff work shifts.
package schedules

import (
	"errors"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

type Input struct {
	EmployeeID string `form:"employeeId" validate:"omitempty,integer,minnum=1" label:"Employee id"`
	Role       string `form:"role" validate:"max=40" label:"Role"`
	ShiftDate  string `form:"shiftDate" validate:"notblank,isodate" label:"Date"`
	StartTime  string `form:"startTime" validate:"notblank,clock" label:"Start"`
	EndTime    string `form:"endTime" validate:"notblank,clock" label:"End"`
	Status     string `form:"status" validate:"notblank,enum=schedule" label:"Status"`
}

// errEndBeforeStart is shown on the form as is. Overnight shifts are
// entered as two schedules.
var errEndBeforeStart = errors.New("End must be after start.")

func Definition(c *backend.Client) crud.Definition[models.Schedule, Input] {
	employee := func(s models.Schedule) string { return s.EmployeeName }
	role := func(s models.Schedule) string { return s.Role }
	date := func(s models.Schedule) string { return s.ShiftDate }
	hours := func(s models.Schedule) string {
		if s.StartTime == "" && s.EndTime == "" {
			return ""
		}
		return s.StartTime + "–" + s.EndTime
	}

	return crud.Definition[models.Schedule, Input]{
		Key:      "schedules",
		Singular: "Schedule",
		Plural:   "Schedules",
		Resource: backend.NewResource[models.Schedule](c, "schedules", backend.StatusPatchQuery),
		Filters: []crud.Filter{
			{Key: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.ScheduleStatus},
			{Key: "shiftDate", Label: "Date", Kind: crud.KindDate},
			{Key: "employeeName", Label: "Employee", Kind: crud.KindText},
		},
		Columns: []crud.Column[models.Schedule]{
			{Label: "Employee", Kind: crud.KindText, Value: employee, Link: true},
			{Label: "Role", Kind: crud.KindText, Value: role},
			{Label: "Date", Kind: crud.KindDate, Value: date},
			{Label: "Hours", Kind: crud.KindText, Value: hours},
		},
		Fields: []crud.Field[models.Schedule]{
			{Label: "Employee", Kind: crud.KindText, Value: employee},
			{Label: "Role", Kind: crud.KindText, Value: role},
			{Label: "Date", Kind: crud.KindDate, Value: date},
			{Label: "Hours", Kind: crud.KindText, Value: hours},
		},
		Form: []crud.FormField{
			{Name: "employeeId", Label: "Employee id", Kind: crud.KindInteger, CreateOnly: true},
			{Name: "role", Label: "Role", Kind: crud.KindText},
			{Name: "shiftDate", Label: "Date", Kind: crud.KindDate, Required: true},
			{Name: "startTime", Label: "Start", Kind: crud.KindClock, Required: true},
			{Name: "endTime", Label: "End", Kind: crud.KindClock, Required: true},
			{Name: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.ScheduleStatus, Required: true},
		},
		StatusEnum: status.ScheduleStatus,
		StatusOf:   func(s models.Schedule) string { return s.Status },
		ID:         func(s models.Schedule) int64 { return s.ID },
		ToInput: func(s models.Schedule) Input {
			in := Input{
				EmployeeID: crud.RefInput(s.EmployeeID),
				Role:       s.Role,
				ShiftDate:  s.ShiftDate,
				StartTime:  s.StartTime,
				EndTime:    s.EndTime,
				Status:     s.Status,
			}
			if in.Status == "" {
				in.Status = "SCHEDULED"
			}
			return in
		},
		Build: func(in Input, s models.Schedule) (models.Schedule, error) {
			start, end := crud.Trim(in.StartTime), crud.Trim(in.EndTime)
			// HH:MM compares correctly as text.
			if end <= start {
				return s, errEndBeforeStart
			}
			if s.ID == 0 {
				eid, err := crud.ParseInt(in.EmployeeID)
				if err != nil {
					return s, err
				}
				s.EmployeeID = eid
			}
			s.Role = crud.Trim(in.Role)
			s.ShiftDate = crud.Trim(in.ShiftDate)
			s.StartTime, s.EndTime = start, end
			s.Status = crud.Canonical(status.ScheduleStatus, in.Status)
			return s, nil
		},
		Update:      crud.UpdatePut,
		AllowCreate: true,
		AllowEdit:   true,
	}
}

func Routes(c *backend.Client, deps crud.Deps, sm *auth.SessionManager) chi.Router {
	return crud.MustNew(Definition(c), deps).Routes(sm)
}
