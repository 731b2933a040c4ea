package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/dividend-projector/internal/calculation"
	"github.com/rpgo/dividend-projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
	assert.NotNil(t, parser.Catalog)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "scenarios:\n" +
		"  - name: \"SCHD baseline\"\n" +
		"    parameters:\n" +
		"      principal: 100000\n" +
		"      unit_price: 26\n" +
		"      horizon_years: 30\n" +
		"      price_growth_rate: 0.075\n" +
		"      dividend_yield: 0.036\n" +
		"      dividend_growth_rate: 0.11\n" +
		"      dividend_tax_rate: 0.15\n" +
		"      expense_ratio: 0.0006\n" +
		"      periodic_contribution: 500\n" +
		"      contribution_frequency: 12\n" +
		"      reinvest_dividends: true\n" +
		"      profile: monthly_stepped\n" +
		"      convention: mid\n" +
		"      track_units: true\n" +
		"  - name: \"VYM from catalog\"\n" +
		"    fund: vym\n" +
		"    parameters:\n" +
		"      principal: 50000\n" +
		"      horizon_years: 10\n" +
		"      reinvest_dividends: true\n"

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, testConfig))
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 2)

	p := config.Scenarios[0].Parameters
	assert.Equal(t, "SCHD baseline", config.Scenarios[0].Name)
	assert.True(t, p.Principal.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, "0.075", p.PriceGrowthRate.String())
	assert.Equal(t, "0.0006", p.ExpenseRatio.String())
	assert.Equal(t, 30, p.HorizonYears)
	assert.Equal(t, 12, p.ContributionFrequency)
	assert.Equal(t, domain.ProfileMonthly, p.Profile)
	assert.Equal(t, domain.ReinvestAtMidPeriodGeometric, p.Convention)
	assert.True(t, p.TrackUnits)
	assert.True(t, p.ReinvestDividends)

	assert.Equal(t, "vym", config.Scenarios[1].Fund)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile("nonexistent.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeTemp(t, "scenarios: [\n  - name: broken"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_UnknownProfile(t *testing.T) {
	content := "scenarios:\n  - name: x\n    parameters:\n      horizon_years: 1\n      profile: weekly\n"
	_, err := NewInputParser().LoadFromFile(writeTemp(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown compounding profile")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	content := "scenarios:\n  - name: taxed out\n    parameters:\n      horizon_years: 5\n      dividend_tax_rate: 1\n"
	_, err := NewInputParser().LoadFromFile(writeTemp(t, content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))
}

func TestValidateConfiguration(t *testing.T) {
	valid := domain.ProjectionParameters{HorizonYears: 5, Principal: decimal.NewFromInt(1000)}

	tests := []struct {
		name    string
		config  domain.Configuration
		wantErr string
	}{
		{
			name:    "no scenarios",
			config:  domain.Configuration{},
			wantErr: "no scenarios provided",
		},
		{
			name:    "missing name",
			config:  domain.Configuration{Scenarios: []domain.Scenario{{Parameters: valid}}},
			wantErr: "scenario name is required",
		},
		{
			name: "duplicate names",
			config: domain.Configuration{Scenarios: []domain.Scenario{
				{Name: "Base", Parameters: valid},
				{Name: "base", Parameters: valid},
			}},
			wantErr: "duplicate scenario name",
		},
		{
			name:    "unknown fund",
			config:  domain.Configuration{Scenarios: []domain.Scenario{{Name: "x", Fund: "NOPE", Parameters: valid}}},
			wantErr: "not found",
		},
		{
			name: "fund resolves but horizon missing",
			config: domain.Configuration{Scenarios: []domain.Scenario{
				{Name: "x", Fund: "SCHD"},
			}},
			wantErr: "horizon_years",
		},
		{
			name:   "valid",
			config: domain.Configuration{Scenarios: []domain.Scenario{{Name: "ok", Parameters: valid}}},
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateConfiguration(&tt.config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfiguration_NoCatalogSkipsFundScenarios(t *testing.T) {
	parser := &InputParser{}
	config := &domain.Configuration{Scenarios: []domain.Scenario{{Name: "x", Fund: "ANY"}}}
	assert.NoError(t, parser.ValidateConfiguration(config))
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	require.NotEmpty(t, config.Scenarios)
	require.NoError(t, parser.ValidateConfiguration(config))

	// The example must survive a YAML round trip through the parser.
	data, err := yaml.Marshal(config)
	require.NoError(t, err)
	parsed, err := parser.Parse(data)
	require.NoError(t, err)
	assert.Len(t, parsed.Scenarios, len(config.Scenarios))

	// Every example scenario projects cleanly.
	engine := calculation.NewCalculationEngineWithCatalog(parser.Catalog)
	for i := range config.Scenarios {
		params, err := engine.ResolveParameters(&config.Scenarios[i])
		require.NoError(t, err)
		_, err = calculation.Project(params)
		assert.NoError(t, err, config.Scenarios[i].Name)
	}
}
