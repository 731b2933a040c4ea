package decimal

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a Money value carries no currency code.
const DefaultCurrency = money.USD

// Money is an amount tagged with an ISO 4217 currency code.
type Money struct {
	decimal.Decimal
	Currency string
}

// NewMoneyFromDecimal creates a new Money instance in the default currency.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) code() string {
	if m.Currency == "" {
		return DefaultCurrency
	}
	return m.Currency
}

// Round rounds the amount to the currency's minor unit, half away from zero.
func (m Money) Round() Money {
	return Money{Decimal: m.Decimal.Round(m.fraction()), Currency: m.Currency}
}

func (m Money) fraction() int32 {
	cur := money.GetCurrency(m.code())
	if cur == nil {
		return 2
	}
	return int32(cur.Fraction)
}

// String returns the plain rounded amount with the currency's minor-unit digits.
func (m Money) String() string {
	return m.Round().Decimal.StringFixed(m.fraction())
}

// Format renders the amount with symbol and thousands grouping, e.g. $1,234.56.
func (m Money) Format() string {
	code := m.code()
	if money.GetCurrency(code) == nil {
		return m.String() + " " + code
	}
	minor := m.Round().Decimal.Shift(m.fraction()).IntPart()
	return money.New(minor, code).Display()
}
