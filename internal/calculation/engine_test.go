package calculation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rpgo/dividend-projector/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comparisonConfig() *domain.Configuration {
	income := domain.ProjectionParameters{
		Principal:         d("100000"),
		HorizonYears:      10,
		PriceGrowthRate:   d("0.02"),
		DividendYield:     d("0.07"),
		DividendTaxRate:   d("0.15"),
		ReinvestDividends: true,
	}
	growth := income
	growth.PriceGrowthRate = d("0.09")
	growth.DividendYield = d("0.01")

	return &domain.Configuration{Scenarios: []domain.Scenario{
		{Name: "income", Parameters: income},
		{Name: "growth", Parameters: growth},
		{Name: "schd", Fund: "SCHD", Parameters: domain.ProjectionParameters{
			Principal:         d("100000"),
			HorizonYears:      10,
			ReinvestDividends: true,
			TrackUnits:        true,
		}},
	}}
}

func TestCalculationEngine_RunScenarios(t *testing.T) {
	engine := NewCalculationEngine()
	require.NotNil(t, engine.Catalog)

	comparison, err := engine.RunScenarios(context.Background(), comparisonConfig())
	require.NoError(t, err)
	require.Len(t, comparison.Scenarios, 3)

	for i, name := range []string{"income", "growth", "schd"} {
		assert.Equal(t, name, comparison.Scenarios[i].Name, "order preserved")
		assert.Len(t, comparison.Scenarios[i].Projection, 10)
	}
	assert.Equal(t, "SCHD", comparison.Scenarios[2].Fund)
	assert.Equal(t, "26", comparison.Scenarios[2].Parameters.UnitPrice.String())

	bestValue, bestIncome := comparison.Scenarios[0], comparison.Scenarios[0]
	for _, s := range comparison.Scenarios[1:] {
		if s.FinalValue.GreaterThan(bestValue.FinalValue) {
			bestValue = s
		}
		if s.FinalYearIncome.GreaterThan(bestIncome.FinalYearIncome) {
			bestIncome = s
		}
	}
	assert.Equal(t, bestValue.Name, comparison.BestForValue)
	assert.Equal(t, bestIncome.Name, comparison.BestForIncome)
	assert.NotEmpty(t, comparison.Assumptions)
}

func TestCalculationEngine_RunScenariosMatchesProject(t *testing.T) {
	engine := NewCalculationEngine()
	engine.MaxConcurrency = 1
	config := comparisonConfig()

	comparison, err := engine.RunScenarios(context.Background(), config)
	require.NoError(t, err)

	direct, err := Project(config.Scenarios[0].Parameters)
	require.NoError(t, err)
	assert.Equal(t, direct, comparison.Scenarios[0].Projection)
}

func TestCalculationEngine_RunScenariosErrors(t *testing.T) {
	engine := NewCalculationEngine()

	_, err := engine.RunScenarios(context.Background(), &domain.Configuration{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenarios provided")

	config := comparisonConfig()
	config.Scenarios[1].Parameters.HorizonYears = 0
	_, err = engine.RunScenarios(context.Background(), config)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), `scenario "growth"`)

	config = comparisonConfig()
	config.Scenarios[2].Fund = "NOPE"
	_, err = engine.RunScenarios(context.Background(), config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCalculationEngine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCalculationEngine().RunScenario(ctx, &comparisonConfig().Scenarios[0])
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculationEngine_NoCatalog(t *testing.T) {
	engine := NewCalculationEngineWithCatalog(nil)
	_, err := engine.ResolveParameters(&domain.Scenario{Name: "x", Fund: "SCHD"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fund catalog")

	p, err := engine.ResolveParameters(&domain.Scenario{Name: "plain", Parameters: concreteParams()})
	require.NoError(t, err)
	assert.Equal(t, concreteParams(), p)
}

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.record("DEBUG", format, args...) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.record("INFO", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.record("WARN", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.record("ERROR", format, args...) }

func (r *recordingLogger) record(level, format string, args ...any) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func TestCalculationEngine_Logging(t *testing.T) {
	engine := NewCalculationEngine()
	rec := &recordingLogger{}
	engine.SetLogger(rec)
	engine.Debug = true

	p := concreteParams()
	p.ReinvestDividends = false
	_, err := engine.RunScenario(context.Background(), &domain.Scenario{Name: "payout", Parameters: p})
	require.NoError(t, err)

	var warn, info, debug int
	for _, line := range rec.lines {
		switch {
		case strings.HasPrefix(line, "WARN"):
			warn++
		case strings.HasPrefix(line, "INFO"):
			info++
		case strings.HasPrefix(line, "DEBUG"):
			debug++
		}
	}
	assert.Equal(t, 1, warn)
	assert.Equal(t, 1, info)
	assert.Equal(t, 3, debug)

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestRankScenarios(t *testing.T) {
	summaries := []domain.ScenarioSummary{
		{Name: "a", FinalValue: d("100"), FinalYearIncome: d("9")},
		{Name: "b", FinalValue: d("300"), FinalYearIncome: d("5")},
		{Name: "c", FinalValue: d("300"), FinalYearIncome: d("9")},
	}
	value, income := rankScenarios(summaries)
	assert.Equal(t, "b", value, "ties keep the earlier scenario")
	assert.Equal(t, "a", income)

	value, income = rankScenarios(nil)
	assert.Empty(t, value)
	assert.Empty(t, income)
}
