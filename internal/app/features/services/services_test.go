package services

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
		{"ok", Input{Name: "Laundry", Price: "15", Status: "ACTIVE"}, ""},
		{"missing price", Input{Name: "Laundry", Status: "ACTIVE"}, "Price is required."},
		{"negative price", Input{Name: "Laundry", Price: "-0.01", Status: "ACTIVE"}, "Price must be at least 0."},
		{"unknown status", Input{Name: "Laundry", Price: "15", Status: "PAUSED"}, "Status must be one of: ACTIVE, INACTIVE."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inputval.Validate(tt.in).First())
		})
	}
}

func TestBuild(t *testing.T) {
	def := Definition(testutil.NewBackend(t).Client())
	s, err := def.Build(Input{Name: "Laundry", Price: "15.00", Status: "inactive"}, models.Service{ID: 2})
	require.NoError(t, err)
	assert.Equal(t, "15", s.Price.String())
	assert.Equal(t, "INACTIVE", s.Status)
}

func TestEditFormOfFreeServiceValidates(t *testing.T) {
	def := Definition(testutil.NewBackend(t).Client())
	in := def.ToInput(models.Service{ID: 2, Name: "Wi-Fi", Status: "ACTIVE"})
	assert.Equal(t, "0", in.Price)
	assert.Empty(t, inputval.Validate(in).First())
}
