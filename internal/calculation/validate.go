package calculation

import (
	"slices"

	"github.com/rpgo/dividend-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxHorizonYears caps the projection length.
const MaxHorizonYears = 150

var minusOne = decimal.NewFromInt(-1)

// ValidateParameters rejects parameter sets the engine cannot project.
// It never adjusts the input; every failure wraps domain.ErrInvalidConfiguration.
func ValidateParameters(p domain.ProjectionParameters) error {
	if p.HorizonYears <= 0 {
		return domain.NewValidationError("horizon_years", "must be positive, got %d", p.HorizonYears)
	}
	if p.HorizonYears > MaxHorizonYears {
		return domain.NewValidationError("horizon_years", "must be at most %d, got %d", MaxHorizonYears, p.HorizonYears)
	}
	if p.Principal.IsNegative() {
		return domain.NewValidationError("principal", "cannot be negative")
	}
	if p.PeriodicContribution.IsNegative() {
		return domain.NewValidationError("periodic_contribution", "cannot be negative")
	}
	if p.DividendYield.IsNegative() {
		return domain.NewValidationError("dividend_yield", "cannot be negative")
	}
	if p.ExpenseRatio.IsNegative() || p.ExpenseRatio.GreaterThanOrEqual(one) {
		return domain.NewValidationError("expense_ratio", "must be in [0, 1), got %s", p.ExpenseRatio)
	}
	if p.DividendTaxRate.IsNegative() || p.DividendTaxRate.GreaterThanOrEqual(one) {
		return domain.NewValidationError("dividend_tax_rate", "must be in [0, 1), got %s", p.DividendTaxRate)
	}
	if p.PriceGrowthRate.LessThanOrEqual(minusOne) {
		return domain.NewValidationError("price_growth_rate", "must be greater than -100%%, got %s", p.PriceGrowthRate)
	}
	if p.DividendGrowthRate.LessThanOrEqual(minusOne) {
		return domain.NewValidationError("dividend_growth_rate", "must be greater than -100%%, got %s", p.DividendGrowthRate)
	}
	if p.ContributionFrequency == 0 {
		if !p.PeriodicContribution.IsZero() {
			return domain.NewValidationError("contribution_frequency", "is required when periodic_contribution is set")
		}
	} else if !slices.Contains(domain.SupportedContributionFrequencies, p.ContributionFrequency) {
		return domain.NewValidationError("contribution_frequency", "must be one of %v, got %d",
			domain.SupportedContributionFrequencies, p.ContributionFrequency)
	}
	if p.TrackUnits && !p.UnitPrice.IsPositive() {
		return domain.NewValidationError("unit_price", "must be positive when units are tracked")
	}
	switch p.EffectiveProfile() {
	case domain.ProfileAnnual, domain.ProfileMonthly:
	default:
		return domain.NewValidationError("profile", "unknown compounding profile %q", p.Profile)
	}
	switch p.EffectiveConvention() {
	case domain.ReinvestAtPeriodEnd, domain.ReinvestAtMidPeriodGeometric:
	default:
		return domain.NewValidationError("convention", "unknown reinvestment price convention %q", p.Convention)
	}
	return nil
}
