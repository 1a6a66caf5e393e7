package feedback

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
		{"ok", Input{GuestID: "7", Rating: "4", Status: "NEW"}, ""},
		{"missing rating", Input{Status: "NEW"}, "Rating is required."},
		{"rating too high", Input{Rating: "6", Status: "NEW"}, "Rating must be at most 5."},
		{"rating too low", Input{Rating: "0", Status: "NEW"}, "Rating must be at least 1."},
		{"fractional rating", Input{Rating: "4.5", Status: "NEW"}, "Rating must be a whole number."},
		{"unknown status", Input{Rating: "4", Status: "OPEN"}, "Status must be one of: NEW, REVIEWED, RESOLVED."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inputval.Validate(tt.in).First())
		})
	}
}

func TestBuild_GuestFixedAfterCreate(t *testing.T) {
	def := Definition(testutil.NewBackend(t).Client())

	created, err := def.Build(Input{GuestID: "7", Rating: "5", Status: "new"}, models.Feedback{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.GuestID)
	assert.Equal(t, 5, created.Rating)
	assert.Equal(t, "NEW", created.Status)

	edited, err := def.Build(Input{GuestID: "99", Rating: "3", Status: "RESOLVED"}, models.Feedback{ID: 1, GuestID: 7, GuestName: "Ana Souza"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), edited.GuestID)
	assert.Equal(t, "Ana Souza", edited.GuestName)
	assert.Equal(t, 3, edited.Rating)
}

func TestEditFormOfStoredFeedbackValidates(t *testing.T) {
	def := Definition(testutil.NewBackend(t).Client())
	in := def.ToInput(models.Feedback{ID: 12, Rating: 4, Status: "REVIEWED"})
	assert.Equal(t, "4", in.Rating)
	assert.Empty(t, inputval.Validate(in).First())
}
