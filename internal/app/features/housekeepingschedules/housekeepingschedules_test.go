package housekeepingschedules

import (
	"testing"

	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/inputval"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/dalemusser/hotelhub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionIsValid(t *testing.T) {
	_, err := crud.New(Definition(testutil.NewBackend(t).Client()), crud.Deps{})
	require.NoError(t, err)
}

func TestInputValidation(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want string
	}{
		{"ok", Input{RoomNumber: "204", ScheduledDate: "2024-05-03", Shift: "MORNING", Status: "SCHEDULED"}, ""},
		{"missing date", Input{RoomNumber: "204", Shift: "MORNING", Status: "SCHEDULED"}, "Date is required."},
		{"unknown shift", Input{RoomNumber: "204", ScheduledDate: "2024-05-03", Shift: "EVENING", Status: "SCHEDULED"}, "Shift must be one of: MORNING, AFTERNOON, NIGHT."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inputval.Validate(tt.in).First())
		})
	}
}

func TestBuild(t *testing.T) {
	def := Definition(testutil.NewBackend(t).Client())
	orig := models.HousekeepingSchedule{ID: 8, RoomNumber: "204", StaffID: 4, StaffName: "Kim", ScheduledDate: "2024-05-03", Shift: "MORNING", Status: "SCHEDULED"}

	kept, err := def.Build(Input{RoomNumber: "204", StaffID: "4", ScheduledDate: "2024-05-04", Shift: "night", Status: "in_progress"}, orig)
	require.NoError(t, err)
	assert.Equal(t, "Kim", kept.StaffName)
	assert.Equal(t, "NIGHT", kept.Shift)
	assert.Equal(t, "IN_PROGRESS", kept.Status)
	assert.Equal(t, "2024-05-04", kept.ScheduledDate)

	moved, err := def.Build(Input{RoomNumber: "204", StaffID: "9", ScheduledDate: "2024-05-04", Shift: "NIGHT", Status: "SCHEDULED"}, orig)
	require.NoError(t, err)
	assert.Empty(t, moved.StaffName)
}

func TestEditFormOfStoredScheduleValidates(t *testing.T) {
	def := Definition(testutil.NewBackend(t).Client())
	in := def.ToInput(models.HousekeepingSchedule{ID: 9, RoomNumber: "204", ScheduledDate: "2024-05-03", Shift: "MORNING"})
	assert.Empty(t, inputval.Validate(in).First())
}
