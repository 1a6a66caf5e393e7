package folios

import (
	"testing"

	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/inputval"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/dalemusser/hotelhub/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionIsValid(t *testing.T) {
	_, err := crud.New(Definition(testutil.NewBackend(t).Client()), crud.Deps{})
	require.NoError(t, err)
}

func TestCharges(t *testing.T) {
	ct := Charges()
	f := testutil.SampleFolio(3)

	rows := ct.Rows(f)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"May 1, 2024 22:00", "Room night", "150.00"}, rows[0])
	assert.Equal(t, []string{"", "Total", "180.50"}, ct.Footer(f))

	assert.Empty(t, ct.Rows(models.Folio{}))
	assert.Nil(t, ct.Footer(models.Folio{}))
}

func TestTotalFallsBackToCharges(t *testing.T) {
	f := testutil.SampleFolio(3)
	f.Total = decimal.Zero
	assert.Equal(t, "180.5", total(f))

	assert.Equal(t, "0", total(models.Folio{}))
}

func TestInputValidation(t *testing.T) {
	assert.False(t, inputval.Validate(Input{RoomNumber: "204", Status: "paid"}).HasErrors())
	assert.Equal(t, "Room is required.", inputval.Validate(Input{Status: "PAID"}).First())
	assert.Contains(t, inputval.Validate(Input{RoomNumber: "204", Status: "OPEN"}).First(), "Status must be one of")
	assert.Equal(t, "Guest id must be a whole number.",
		inputval.Validate(Input{GuestID: "x1", RoomNumber: "1", Status: "PAID"}).First())
}

func TestBuild(t *testing.T) {
	def := Definition(testutil.NewBackend(t).Client())

	_, err := def.Build(Input{RoomNumber: "101", Status: "UNPAID"}, models.Folio{})
	assert.ErrorIs(t, err, errGuestRequired)

	created, err := def.Build(Input{GuestID: "7", RoomNumber: " 101 ", Status: "unpaid"}, models.Folio{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.GuestID)
	assert.Equal(t, "101", created.RoomNumber)
	assert.Equal(t, "UNPAID", created.Status)

	// Editing keeps the guest and the charges.
	orig := testutil.SampleFolio(3)
	edited, err := def.Build(Input{GuestID: "99", RoomNumber: "305", Status: "PAID"}, orig)
	require.NoError(t, err)
	assert.Equal(t, orig.GuestID, edited.GuestID)
	assert.Len(t, edited.Charges, 2)
	assert.Equal(t, "PAID", edited.Status)
}

func TestEditFormOfStoredFolioValidates(t *testing.T) {
	def := Definition(testutil.NewBackend(t).Client())
	assert.Empty(t, inputval.Validate(def.ToInput(testutil.SampleFolio(6))).First())
}
