package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/dividend-projector/internal/calculation"
	"github.com/rpgo/dividend-projector/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct {
	// Catalog resolves fund references during validation. Nil skips
	// parameter checks for scenarios that name a fund.
	Catalog *calculation.FundCatalog
}

// NewInputParser creates a new input parser backed by the bundled fund catalog
func NewInputParser() *InputParser {
	catalog, err := calculation.DefaultFundCatalog()
	if err != nil {
		return &InputParser{}
	}
	return &InputParser{Catalog: catalog}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a scenario document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		key := strings.ToLower(scenario.Name)
		if seen[key] {
			return fmt.Errorf("duplicate scenario name %q", scenario.Name)
		}
		seen[key] = true
	}

	return nil
}

func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("scenario name is required")
	}

	params := scenario.Parameters
	if scenario.Fund != "" {
		if ip.Catalog == nil {
			return nil
		}
		resolved, err := ip.Catalog.Apply(scenario.Fund, params)
		if err != nil {
			return err
		}
		params = resolved
	}
	return calculation.ValidateParameters(params)
}

// CreateExampleConfiguration creates an example configuration for testing
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	base := domain.ProjectionParameters{
		Principal:             decimal.NewFromInt(100000),
		UnitPrice:             decimal.NewFromInt(26),
		HorizonYears:          30,
		PriceGrowthRate:       decimal.NewFromFloat(0.075),
		DividendYield:         decimal.NewFromFloat(0.036),
		DividendGrowthRate:    decimal.NewFromFloat(0.11),
		DividendTaxRate:       decimal.NewFromFloat(0.15),
		ExpenseRatio:          decimal.NewFromFloat(0.0006),
		PeriodicContribution:  decimal.NewFromInt(500),
		ContributionFrequency: 12,
		ReinvestDividends:     true,
		StartingCalendarYear:  2025,
	}

	monthly := base
	monthly.Profile = domain.ProfileMonthly

	units := base
	units.TrackUnits = true
	units.Convention = domain.ReinvestAtMidPeriodGeometric

	payout := base
	payout.ReinvestDividends = false

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "Dividend Growth (annual)", Parameters: base},
			{Name: "Dividend Growth (monthly)", Parameters: monthly},
			{Name: "Dividend Growth (units, mid-year buys)", Parameters: units},
			{Name: "Dividend Income (no DRIP)", Parameters: payout},
			{
				Name: "High Yield VYM",
				Fund: "VYM",
				Parameters: domain.ProjectionParameters{
					Principal:             decimal.NewFromInt(100000),
					HorizonYears:          30,
					DividendTaxRate:       decimal.NewFromFloat(0.15),
					PeriodicContribution:  decimal.NewFromInt(500),
					ContributionFrequency: 12,
					ReinvestDividends:     true,
					StartingCalendarYear:  2025,
					TrackUnits:            true,
				},
			},
		},
	}
}
