package calculation

import (
	"fmt"

	"github.com/rpgo/dividend-projector/internal/domain"
	dec "github.com/rpgo/dividend-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// CAGR is the constant annual rate turning principal into final over years.
// It returns zero when the rate is undefined (no principal, non-positive final value).
func CAGR(principal, final decimal.Decimal, years int) decimal.Decimal {
	rate, _ := dec.AnnualizedRate(principal, final, years)
	return rate
}

// NetGrowthRate approximates the first-year growth of the compounding base
// after tax and fee drag: price growth + reinvested net yield - expense ratio.
func NetGrowthRate(p domain.ProjectionParameters) decimal.Decimal {
	rate := p.PriceGrowthRate.Sub(p.ExpenseRatio)
	if p.ReinvestDividends {
		rate = rate.Add(p.DividendYield.Mul(one.Sub(p.DividendTaxRate)))
	}
	return rate
}

// IsDegenerate reports whether the portfolio cannot grow on its own.
func IsDegenerate(p domain.ProjectionParameters) bool {
	return !NetGrowthRate(p).IsPositive()
}

// Summarize folds a projection into scenario totals and flags.
func Summarize(name string, p domain.ProjectionParameters, projection []domain.YearlyResult) domain.ScenarioSummary {
	summary := domain.ScenarioSummary{
		Name:          name,
		Parameters:    p,
		Projection:    projection,
		InitialValue:  p.Principal,
		FinalValue:    p.Principal,
		NetGrowthRate: NetGrowthRate(p),
	}
	for _, yr := range projection {
		summary.TotalContributions = summary.TotalContributions.Add(yr.ContributionAdded)
		summary.TotalGrossDividend = summary.TotalGrossDividend.Add(yr.GrossDividend)
		summary.TotalNetDividend = summary.TotalNetDividend.Add(yr.NetDividend)
		summary.TotalTaxPaid = summary.TotalTaxPaid.Add(yr.TaxPaid)
		summary.TotalFeesPaid = summary.TotalFeesPaid.Add(yr.FeesPaid)
	}
	if final := summary.Final(); final != nil {
		summary.FinalValue = final.ClosingValue
		summary.FinalYearIncome = final.NetDividend
	}
	summary.CAGR = CAGR(p.Principal, summary.FinalValue, len(projection))

	if IsDegenerate(p) {
		summary.Degenerate = true
		summary.Warnings = append(summary.Warnings, fmt.Sprintf(
			"net growth rate %s%% is not positive after tax and fees; the portfolio only grows through contributions",
			summary.NetGrowthRate.Mul(decimal.NewFromInt(100)).StringFixed(2)))
	}
	if !p.ReinvestDividends && p.DividendYield.IsPositive() {
		summary.Warnings = append(summary.Warnings, "dividends are paid out and excluded from compounding")
	}
	if p.Principal.IsZero() {
		summary.Warnings = append(summary.Warnings, "principal is zero; return percentages and CAGR are reported as zero")
	}
	return summary
}
