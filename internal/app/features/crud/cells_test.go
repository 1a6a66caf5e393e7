package crud

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		kind  Kind
		raw   string
		text  string
		badge bool
	}{
		{KindMoney, "1234.5", "1,234.50", false},
		{KindMoney, "not money", "not money", false},
		{KindInteger, "12000", "12,000", false},
		{KindPercent, "12.5", "12.5%", false},
		{KindDate, "2024-05-01", "May 1, 2024", false},
		{KindDateTime, "2024-05-01T14:00:00Z", "May 1, 2024 14:00", false},
		{KindMonth, "2024-04", "April 2024", false},
		{KindStatus, "IN_PROGRESS", "In progress", true},
		{KindSelect, "MORNING", "Morning", false},
		{KindText, "", "—", false},
		{KindStatus, "", "—", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.raw, func(t *testing.T) {
			c := display(tt.kind, tt.raw)
			assert.Equal(t, tt.text, c.Text)
			assert.Equal(t, tt.badge, c.Badge)
		})
	}
	assert.Equal(t, "badge badge-info", display(KindStatus, "IN_PROGRESS").Class)
}

func TestExportValue(t *testing.T) {
	assert.Equal(t, 180.5, exportValue(KindMoney, "180.50"))
	assert.Equal(t, int64(42), exportValue(KindInteger, "42"))
	assert.Equal(t, "Unpaid", exportValue(KindStatus, "UNPAID"))
	assert.Equal(t, "2024-05-01", exportValue(KindDate, "2024-05-01"))
	assert.Equal(t, "n/a", exportValue(KindMoney, "n/a"))
}

func TestInputValue(t *testing.T) {
	assert.Equal(t, "2024-05-01", inputValue(KindDate, "2024-05-01T00:00:00Z"))
	assert.Equal(t, "2024-05-01T14:00", inputValue(KindDateTime, "2024-05-01T14:00:00Z"))
	assert.Equal(t, "2024-04", inputValue(KindMonth, "2024-04-01"))
	assert.Equal(t, "07:45", inputValue(KindClock, "07:45:00"))
	assert.Equal(t, "204", inputValue(KindText, "204"))
}

func TestKindInputType(t *testing.T) {
	assert.Equal(t, "number", KindMoney.InputType())
	assert.Equal(t, "date", KindDate.InputType())
	assert.Equal(t, "datetime-local", KindDateTime.InputType())
	assert.Equal(t, "time", KindClock.InputType())
	assert.Equal(t, "text", KindStatus.InputType())
}

func TestBuildHelpers(t *testing.T) {
	d, err := ParseDecimal(" 12.50 ")
	assert.NoError(t, err)
	assert.Equal(t, "12.5", d.String())

	d, err = ParseDecimal("")
	assert.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseDecimal("x")
	assert.Error(t, err)

	n, err := ParseInt("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), n)

	assert.Equal(t, "IN_PROGRESS", Canonical("housekeeping_request", "in_progress"))
	assert.Equal(t, "whatever", Canonical("housekeeping_request", " whatever "))
	assert.Equal(t, "", DecInput(d.Sub(d), 0))
}

func TestFormInputs_ZeroOnStoredRecord(t *testing.T) {
	zero := decimal.Zero
	assert.Equal(t, "0", DecInput(zero, 4), "stored record keeps its zero")
	assert.Equal(t, "", DecInput(zero, 0), "create draft starts blank")
	assert.Equal(t, "12.5", DecInput(decimal.RequireFromString("12.50"), 0))

	assert.Equal(t, "0", IntInput(0, 4))
	assert.Equal(t, "", IntInput(0, 0))
	assert.Equal(t, "7", IntInput(7, 0))

	assert.Equal(t, "", RefInput(0))
	assert.Equal(t, "9", RefInput(9))

	assert.Equal(t, "0", Int64(0))
}
