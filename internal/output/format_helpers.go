package output

import (
	"strconv"
	"strings"

	"github.com/rpgo/dividend-projector/internal/domain"
	dec "github.com/rpgo/dividend-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as USD with grouping, e.g. $1,234.57.
func FormatCurrency(amount decimal.Decimal) string {
	return dec.NewMoneyFromDecimal(amount).Format()
}

// moneyCell renders an amount rounded to the currency minor unit without symbol
// or grouping, for machine-readable output.
func moneyCell(amount decimal.Decimal) string {
	return dec.NewMoneyFromDecimal(amount).Round().String()
}

// FormatPercentage formats a value already in percent units with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.036) as a percentage (3.60%).
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// yearLabel prefers the calendar year and falls back to the period index.
func yearLabel(yr domain.YearlyResult) string {
	if yr.CalendarYear != 0 {
		return intToString(yr.CalendarYear)
	}
	return "Year " + intToString(yr.PeriodIndex)
}

// escapeCell keeps scenario names from breaking markdown tables.
func escapeCell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }
