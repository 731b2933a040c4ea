package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/dividend-projector/internal/domain"
	"github.com/rpgo/dividend-projector/pkg/dateutil"
)

// decimalFlags maps flag names to the parameter fields they set.
var decimalFlags = []struct {
	name  string
	usage string
	field func(*domain.ProjectionParameters) *decimal.Decimal
}{
	{"principal", "starting capital", func(p *domain.ProjectionParameters) *decimal.Decimal { return &p.Principal }},
	{"unit-price", "starting unit price (required with --track-units)", func(p *domain.ProjectionParameters) *decimal.Decimal { return &p.UnitPrice }},
	{"growth", "annual price growth rate, e.g. 0.075", func(p *domain.ProjectionParameters) *decimal.Decimal { return &p.PriceGrowthRate }},
	{"yield", "starting dividend yield, e.g. 0.036", func(p *domain.ProjectionParameters) *decimal.Decimal { return &p.DividendYield }},
	{"dividend-growth", "annual growth of the dividend yield", func(p *domain.ProjectionParameters) *decimal.Decimal { return &p.DividendGrowthRate }},
	{"tax", "dividend tax rate in [0, 1)", func(p *domain.ProjectionParameters) *decimal.Decimal { return &p.DividendTaxRate }},
	{"expense", "annual expense ratio, e.g. 0.0006", func(p *domain.ProjectionParameters) *decimal.Decimal { return &p.ExpenseRatio }},
	{"contribution", "amount contributed each period", func(p *domain.ProjectionParameters) *decimal.Decimal { return &p.PeriodicContribution }},
}

func newProjectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a single scenario from flags",
		Example: `  divproj project --principal 100000 --unit-price 26 --years 30 \
    --growth 0.075 --yield 0.036 --dividend-growth 0.11 --tax 0.15 --expense 0.0006
  divproj project --fund SCHD --principal 50000 --years 20 --contribution 500 --frequency 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := scenarioFromFlags(cmd)
			if err != nil {
				return err
			}
			results, err := a.engine.RunScenarios(cmd.Context(), &domain.Configuration{Scenarios: []domain.Scenario{scenario}})
			if err != nil {
				return err
			}
			return a.emit(cmd, results)
		},
	}
	for _, f := range decimalFlags {
		cmd.Flags().String(f.name, "0", f.usage)
	}
	cmd.Flags().String("name", "projection", "scenario name")
	cmd.Flags().String("fund", "", "fund ticker whose catalog figures fill unset rates")
	cmd.Flags().IntP("years", "y", 30, "projection horizon in years")
	cmd.Flags().Int("frequency", 12, "contributions per year (1, 4, 12, 26, 52)")
	cmd.Flags().Bool("reinvest", true, "reinvest net dividends")
	cmd.Flags().Int("start-year", 0, "calendar year of the first period (default: current year)")
	cmd.Flags().String("profile", "annual", "compounding profile: annual or monthly")
	cmd.Flags().String("convention", "end_of_period", "unit purchase price: end_of_period or mid_period_geometric")
	cmd.Flags().Bool("track-units", false, "track units and unit price explicitly")
	addReportFlags(cmd)
	return cmd
}

func scenarioFromFlags(cmd *cobra.Command) (domain.Scenario, error) {
	var p domain.ProjectionParameters
	flags := cmd.Flags()
	for _, f := range decimalFlags {
		raw, _ := flags.GetString(f.name)
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.Scenario{}, fmt.Errorf("invalid --%s %q: %w", f.name, raw, err)
		}
		*f.field(&p) = d
	}
	p.HorizonYears, _ = flags.GetInt("years")
	p.ContributionFrequency, _ = flags.GetInt("frequency")
	if p.PeriodicContribution.IsZero() && !flags.Changed("frequency") {
		p.ContributionFrequency = 0
	}
	p.ReinvestDividends, _ = flags.GetBool("reinvest")
	p.TrackUnits, _ = flags.GetBool("track-units")
	p.StartingCalendarYear, _ = flags.GetInt("start-year")
	if !flags.Changed("start-year") {
		p.StartingCalendarYear = dateutil.CurrentYear()
	}

	profile, _ := flags.GetString("profile")
	var err error
	if p.Profile, err = domain.ParseCompoundingProfile(profile); err != nil {
		return domain.Scenario{}, err
	}
	convention, _ := flags.GetString("convention")
	if p.Convention, err = domain.ParseReinvestmentPriceConvention(convention); err != nil {
		return domain.Scenario{}, err
	}

	name, _ := flags.GetString("name")
	fund, _ := flags.GetString("fund")
	return domain.Scenario{Name: name, Fund: fund, Parameters: p}, nil
}
