package decimal

import (
	"github.com/shopspring/decimal"
)

// RootPrecision is the number of decimal places kept by Root and Sqrt.
// Intermediate logarithms carry rootGuardDigits more.
const RootPrecision = 20

const rootGuardDigits = 10

var (
	one     = decimal.NewFromInt(1)
	half    = decimal.RequireFromString("0.5")
	hundred = decimal.NewFromInt(100)
)

// GrowthFactor returns 1 + rate.
func GrowthFactor(rate decimal.Decimal) decimal.Decimal {
	return one.Add(rate)
}

// Root returns the n-th root of a positive value as exp(ln(d)/n), rounded
// to RootPrecision places. Zero, negative values and n <= 0 yield zero.
func Root(d decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 || !d.IsPositive() {
		return decimal.Zero
	}
	if n == 1 {
		return d
	}
	prec := int32(RootPrecision + rootGuardDigits)
	ln, err := d.Ln(prec)
	if err != nil {
		return decimal.Zero
	}
	r, err := ln.DivRound(decimal.NewFromInt(int64(n)), prec).ExpTaylor(prec)
	if err != nil {
		return decimal.Zero
	}
	return r.Round(RootPrecision)
}

// Sqrt returns the square root of a non-negative value, rounded to RootPrecision places.
func Sqrt(d decimal.Decimal) decimal.Decimal {
	if !d.IsPositive() {
		return decimal.Zero
	}
	r, err := d.PowWithPrecision(half, RootPrecision+rootGuardDigits)
	if err != nil {
		return decimal.Zero
	}
	return r.Round(RootPrecision)
}

// PeriodicRate converts an annual rate into the equivalent compound rate for
// one of periodsPerYear sub-periods: (1+annual)^(1/periodsPerYear) - 1.
func PeriodicRate(annual decimal.Decimal, periodsPerYear int) decimal.Decimal {
	return Root(GrowthFactor(annual), periodsPerYear).Sub(one)
}

// Percent expresses part/whole in percent units; zero when whole is zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// AnnualizedRate returns the geometric mean rate (end/start)^(1/years) - 1.
// ok is false when the ratio is undefined (non-positive start or end, or no years).
func AnnualizedRate(start, end decimal.Decimal, years int) (rate decimal.Decimal, ok bool) {
	if years <= 0 || !start.IsPositive() || !end.IsPositive() {
		return decimal.Zero, false
	}
	ratio := end.DivRound(start, RootPrecision+rootGuardDigits)
	return Root(ratio, years).Sub(one), true
}
