package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// CompoundingProfile selects how finely the engine steps through each year.
type CompoundingProfile string

const (
	// ProfileAnnual applies growth, dividends and contributions once per year.
	ProfileAnnual CompoundingProfile = "annual"
	// ProfileMonthly runs 12 monthly sub-steps per year.
	ProfileMonthly CompoundingProfile = "monthly"
)

// ReinvestmentPriceConvention selects the unit price new cash buys at when
// units are tracked explicitly.
type ReinvestmentPriceConvention string

const (
	// ReinvestAtPeriodEnd buys at the period-end price.
	ReinvestAtPeriodEnd ReinvestmentPriceConvention = "end_of_period"
	// ReinvestAtMidPeriodGeometric buys at startPrice * sqrt(1+growth).
	ReinvestAtMidPeriodGeometric ReinvestmentPriceConvention = "mid_period_geometric"
)

// SupportedContributionFrequencies lists the accepted contribution periods per year.
var SupportedContributionFrequencies = []int{1, 4, 12, 26, 52}

// ProjectionParameters is the full input of a single projection run.
// Rates are fractions (0.05 == 5%).
type ProjectionParameters struct {
	Principal             decimal.Decimal             `yaml:"principal" json:"principal"`
	UnitPrice             decimal.Decimal             `yaml:"unit_price" json:"unit_price"`
	HorizonYears          int                         `yaml:"horizon_years" json:"horizon_years"`
	PriceGrowthRate       decimal.Decimal             `yaml:"price_growth_rate" json:"price_growth_rate"`
	DividendYield         decimal.Decimal             `yaml:"dividend_yield" json:"dividend_yield"`
	DividendGrowthRate    decimal.Decimal             `yaml:"dividend_growth_rate" json:"dividend_growth_rate"`
	DividendTaxRate       decimal.Decimal             `yaml:"dividend_tax_rate" json:"dividend_tax_rate"`
	ExpenseRatio          decimal.Decimal             `yaml:"expense_ratio" json:"expense_ratio"`
	PeriodicContribution  decimal.Decimal             `yaml:"periodic_contribution" json:"periodic_contribution"`
	ContributionFrequency int                         `yaml:"contribution_frequency" json:"contribution_frequency"`
	ReinvestDividends     bool                        `yaml:"reinvest_dividends" json:"reinvest_dividends"`
	StartingCalendarYear  int                         `yaml:"starting_calendar_year,omitempty" json:"starting_calendar_year,omitempty"`
	Profile               CompoundingProfile          `yaml:"profile,omitempty" json:"profile,omitempty"`
	Convention            ReinvestmentPriceConvention `yaml:"convention,omitempty" json:"convention,omitempty"`
	TrackUnits            bool                        `yaml:"track_units" json:"track_units"`
}

// EffectiveProfile returns the configured profile, defaulting to annual.
func (p ProjectionParameters) EffectiveProfile() CompoundingProfile {
	if p.Profile == "" {
		return ProfileAnnual
	}
	return p.Profile
}

// EffectiveConvention returns the configured convention, defaulting to end of period.
func (p ProjectionParameters) EffectiveConvention() ReinvestmentPriceConvention {
	if p.Convention == "" {
		return ReinvestAtPeriodEnd
	}
	return p.Convention
}

// AnnualContribution is the total contributed over one year.
func (p ProjectionParameters) AnnualContribution() decimal.Decimal {
	return p.PeriodicContribution.Mul(decimal.NewFromInt(int64(p.ContributionFrequency)))
}

// ParseCompoundingProfile accepts the canonical names plus a few synonyms.
func ParseCompoundingProfile(s string) (CompoundingProfile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "annual", "annual_direct", "yearly":
		return ProfileAnnual, nil
	case "monthly", "monthly_stepped":
		return ProfileMonthly, nil
	}
	return "", fmt.Errorf("unknown compounding profile %q", s)
}

// ParseReinvestmentPriceConvention accepts the canonical names plus short forms.
func ParseReinvestmentPriceConvention(s string) (ReinvestmentPriceConvention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "end", "end_of_period":
		return ReinvestAtPeriodEnd, nil
	case "mid", "mid_period", "mid_period_geometric":
		return ReinvestAtMidPeriodGeometric, nil
	}
	return "", fmt.Errorf("unknown reinvestment price convention %q", s)
}

// UnmarshalYAML normalizes synonyms so config files can say "monthly_stepped".
func (c *CompoundingProfile) UnmarshalYAML(value *yaml.Node) error {
	p, err := ParseCompoundingProfile(value.Value)
	if err != nil {
		return err
	}
	*c = p
	return nil
}

// UnmarshalYAML normalizes synonyms such as "mid".
func (c *ReinvestmentPriceConvention) UnmarshalYAML(value *yaml.Node) error {
	rc, err := ParseReinvestmentPriceConvention(value.Value)
	if err != nil {
		return err
	}
	*c = rc
	return nil
}

// UnmarshalText lets JSON request bodies use the same synonyms.
func (c *CompoundingProfile) UnmarshalText(text []byte) error {
	p, err := ParseCompoundingProfile(string(text))
	if err != nil {
		return err
	}
	*c = p
	return nil
}

func (c *ReinvestmentPriceConvention) UnmarshalText(text []byte) error {
	rc, err := ParseReinvestmentPriceConvention(string(text))
	if err != nil {
		return err
	}
	*c = rc
	return nil
}
