package domain

import (
	"github.com/shopspring/decimal"
)

// YearlyResult is the portfolio state for a single projected year.
type YearlyResult struct {
	PeriodIndex  int `json:"period_index"`
	CalendarYear int `json:"calendar_year,omitempty"`

	OpeningValue  decimal.Decimal `json:"opening_value"`
	DividendYield decimal.Decimal `json:"dividend_yield"`

	GrossDividend decimal.Decimal `json:"gross_dividend"`
	NetDividend   decimal.Decimal `json:"net_dividend"`
	TaxPaid       decimal.Decimal `json:"tax_paid"`
	FeesPaid      decimal.Decimal `json:"fees_paid"`

	ContributionAdded     decimal.Decimal `json:"contribution_added"`
	UnitsOrValuePurchased decimal.Decimal `json:"units_or_value_purchased"`
	ClosingValue          decimal.Decimal `json:"closing_value"`

	// Percent units (12.5 == 12.5%), relative to the principal.
	PeriodReturnPct     decimal.Decimal `json:"period_return_pct"`
	CumulativeReturnPct decimal.Decimal `json:"cumulative_return_pct"`

	TotalContributions  decimal.Decimal `json:"total_contributions"`
	CumulativeDividends decimal.Decimal `json:"cumulative_dividends"`

	// Only populated when units are tracked.
	UnitPrice decimal.Decimal `json:"unit_price,omitempty"`
	Units     decimal.Decimal `json:"units,omitempty"`
}

// ScenarioSummary provides a summary of key metrics for a projection scenario
type ScenarioSummary struct {
	Name               string               `json:"name"`
	Fund               string               `json:"fund,omitempty"`
	Parameters         ProjectionParameters `json:"parameters"`
	Projection         []YearlyResult       `json:"projection"`
	InitialValue       decimal.Decimal      `json:"initial_value"`
	FinalValue         decimal.Decimal      `json:"final_value"`
	TotalContributions decimal.Decimal      `json:"total_contributions"`
	TotalGrossDividend decimal.Decimal      `json:"total_gross_dividend"`
	TotalNetDividend   decimal.Decimal      `json:"total_net_dividend"`
	TotalTaxPaid       decimal.Decimal      `json:"total_tax_paid"`
	TotalFeesPaid      decimal.Decimal      `json:"total_fees_paid"`
	FinalYearIncome    decimal.Decimal      `json:"final_year_income"` // net dividend of the last year
	CAGR               decimal.Decimal      `json:"cagr"`              // fraction
	NetGrowthRate      decimal.Decimal      `json:"net_growth_rate"`   // fraction, after tax and fee drag
	Degenerate         bool                 `json:"degenerate"`
	Warnings           []string             `json:"warnings,omitempty"`
}

// ScenarioComparison provides a comparison of all scenarios
type ScenarioComparison struct {
	Scenarios     []ScenarioSummary `json:"scenarios"`
	BestForValue  string            `json:"best_for_value"`
	BestForIncome string            `json:"best_for_income"`
	Assumptions   []string          `json:"assumptions"`
}

// Final returns the last yearly result, or nil for an empty projection.
func (s *ScenarioSummary) Final() *YearlyResult {
	if len(s.Projection) == 0 {
		return nil
	}
	return &s.Projection[len(s.Projection)-1]
}
