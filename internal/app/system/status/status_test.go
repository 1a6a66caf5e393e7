package status_test

import (
	"testing"

	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadge(t *testing.T) {
	tests := []struct {
		value string
		want  status.Category
	}{
		{"PAID", status.Success},
		{"COMPLETED", status.Success},
		{"APPROVED", status.Success},
		{"RESOLVED", status.Success},
		{"ACTIVE", status.Success},
		{"PENDING", status.Warning},
		{"ASSIGNED", status.Warning},
		{"SCHEDULED", status.Warning},
		{"IN_MAINTENANCE", status.Warning},
		{"UNPAID", status.Error},
		{"CANCELLED", status.Error},
		{"REJECTED", status.Error},
		{"IN_PROGRESS", status.Info},
		{" paid ", status.Success},
		{"in_progress", status.Info},
		{"", status.Neutral},
		{"ON_HOLD", status.Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Badge(tt.value))
		})
	}
}

func TestClass(t *testing.T) {
	assert.Equal(t, "badge badge-success", status.BadgeClass("PAID"))
	assert.Equal(t, "badge badge-info", status.BadgeClass("IN_PROGRESS"))
	assert.Equal(t, "badge badge-neutral", status.BadgeClass("WHATEVER"))
	assert.Equal(t, "badge badge-neutral", status.Class(status.Category("bogus")))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "In progress", status.Label("IN_PROGRESS"))
	assert.Equal(t, "Paid", status.Label("PAID"))
	assert.Equal(t, "", status.Label("  "))
}

func TestEveryRegisteredValueHasAColour(t *testing.T) {
	for _, name := range status.Names() {
		if name == status.ShiftName {
			continue
		}
		e := status.MustLookup(name)
		for _, v := range e.Values() {
			assert.NotEqual(t, status.Neutral, status.Badge(v), "%s value %s", name, v)
		}
	}
}

func TestEnum(t *testing.T) {
	e, ok := status.Lookup(status.FolioStatus)
	require.True(t, ok)

	assert.Equal(t, []string{"PAID", "PENDING", "UNPAID"}, e.Values())
	assert.True(t, e.Contains("paid"))
	assert.False(t, e.Contains("COMPLETED"))
	assert.False(t, e.Contains(""))

	v, ok := e.Canonical(" unpaid")
	assert.True(t, ok)
	assert.Equal(t, "UNPAID", v)

	opts := e.Options("PENDING")
	require.Len(t, opts, 3)
	assert.False(t, opts[0].Selected)
	assert.True(t, opts[1].Selected)
	assert.Equal(t, "Pending", opts[1].Label)
}

func TestNewEnum_DropsDuplicatesAndBlanks(t *testing.T) {
	e := status.NewEnum("x", "a", "A", "", "b")
	assert.Equal(t, []string{"A", "B"}, e.Values())
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := status.Lookup("nope")
	assert.False(t, ok)
	assert.Panics(t, func() { status.MustLookup("nope") })
}
