package format_test

import (
	"testing"

	"github.com/dalemusser/hotelhub/internal/app/system/format"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "1,234.50", format.Money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "0.00", format.Money(decimal.Zero))
	assert.Equal(t, "-12.35", format.Money(decimal.RequireFromString("-12.345")))
}

func TestInt(t *testing.T) {
	assert.Equal(t, "12,345", format.Int(12345))
	assert.Equal(t, "7", format.Int(int64(7)))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.5%", format.Percent(decimal.RequireFromString("12.5")))
	assert.Equal(t, "10%", format.Percent(decimal.NewFromInt(10)))
}

func TestDates(t *testing.T) {
	assert.Equal(t, "Feb 29, 2024", format.Date("2024-02-29"))
	assert.Equal(t, "Feb 29, 2024", format.Date("2024-02-29T10:00:00"))
	assert.Equal(t, "not a date", format.Date("not a date"))

	assert.Equal(t, "Mar 1, 2024 10:30", format.DateTime("2024-03-01T10:30:00Z"))
	assert.Equal(t, "Mar 1, 2024 10:30", format.DateTime("2024-03-01T10:30:15"))
	assert.Equal(t, "Mar 1, 2024", format.DateTime("2024-03-01"))

	assert.Equal(t, "December 2024", format.Month("2024-12"))
	assert.Equal(t, "2024-03-01T10:30", format.InputDateTime("2024-03-01T10:30:15"))
	assert.Equal(t, "—", format.Fallback(" "))
}
