package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234.567", "$1,234.57"},
		{"0", "$0.00"},
		{"110729.5", "$110,729.50"},
		{"1000000", "$1,000,000.00"},
		{"-12.5", "-$12.50"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "12.35%", FormatPercentage(decimal.NewFromFloat(12.3456)))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "3.60%", FormatRate(decimal.RequireFromString("0.036")))
	assert.Equal(t, "-0.06%", FormatRate(decimal.RequireFromString("-0.0006")))
}

func TestMoneyCell(t *testing.T) {
	assert.Equal(t, "110500.00", moneyCell(decimal.RequireFromString("110499.99999999999999961")))
	assert.Equal(t, "1234.57", moneyCell(decimal.RequireFromString("1234.565")))
	assert.Equal(t, "-12.50", moneyCell(decimal.RequireFromString("-12.5")))
	assert.Equal(t, "0.00", moneyCell(decimal.Zero))
}
