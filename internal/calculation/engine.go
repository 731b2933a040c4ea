package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/dividend-projector/internal/domain"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxConcurrency bounds how many scenarios are projected at once.
const DefaultMaxConcurrency = 8

// CalculationEngine orchestrates projections for one or many scenarios.
type CalculationEngine struct {
	Catalog        *FundCatalog
	MaxConcurrency int
	Debug          bool // Enable debug output for detailed calculations
	Logger         Logger
}

// NewCalculationEngine creates an engine backed by the bundled fund catalog.
func NewCalculationEngine() *CalculationEngine {
	engine := &CalculationEngine{
		MaxConcurrency: DefaultMaxConcurrency,
		Logger:         NopLogger{},
	}
	catalog, err := DefaultFundCatalog()
	if err != nil {
		// Log error but don't fail - scenarios without a fund still run
		engine.Logger.Warnf("Failed to load bundled fund catalog: %v", err)
		return engine
	}
	engine.Catalog = catalog
	return engine
}

// NewCalculationEngineWithCatalog creates an engine using the given catalog.
func NewCalculationEngineWithCatalog(catalog *FundCatalog) *CalculationEngine {
	return &CalculationEngine{
		Catalog:        catalog,
		MaxConcurrency: DefaultMaxConcurrency,
		Logger:         NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ResolveParameters merges catalog figures into the scenario parameters.
func (ce *CalculationEngine) ResolveParameters(scenario *domain.Scenario) (domain.ProjectionParameters, error) {
	if scenario.Fund == "" {
		return scenario.Parameters, nil
	}
	if ce.Catalog == nil {
		return scenario.Parameters, fmt.Errorf("scenario %q references fund %s but no fund catalog is loaded", scenario.Name, scenario.Fund)
	}
	return ce.Catalog.Apply(scenario.Fund, scenario.Parameters)
}

// RunScenario projects a single scenario and summarizes it.
func (ce *CalculationEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params, err := ce.ResolveParameters(scenario)
	if err != nil {
		return nil, err
	}

	projection, err := Project(params)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	summary := Summarize(scenario.Name, params, projection)
	summary.Fund = scenario.Fund
	for _, w := range summary.Warnings {
		ce.Logger.Warnf("scenario %q: %s", scenario.Name, w)
	}
	if ce.Debug {
		ce.logProjection(&summary)
	}
	ce.Logger.Infof("scenario %q projected %d years: final value %s, CAGR %s%%",
		scenario.Name, len(projection), summary.FinalValue.StringFixed(2), summary.CAGR.Shift(2).StringFixed(2))
	return &summary, nil
}

// RunScenarios projects every scenario concurrently and returns a comparison.
// Scenario order in the result matches the configuration.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}
	summaries := make([]domain.ScenarioSummary, len(config.Scenarios))

	g, gctx := errgroup.WithContext(ctx)
	limit := ce.MaxConcurrency
	if limit <= 0 {
		limit = DefaultMaxConcurrency
	}
	g.SetLimit(limit)

	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		g.Go(func() error {
			summary, err := ce.RunScenario(gctx, scenario)
			if err != nil {
				return fmt.Errorf("RunScenario failed: %w", err)
			}
			summaries[i] = *summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	comparison := &domain.ScenarioComparison{
		Scenarios:   summaries,
		Assumptions: config.GenerateAssumptions(),
	}
	comparison.BestForValue, comparison.BestForIncome = rankScenarios(summaries)
	return comparison, nil
}

// rankScenarios picks the scenario with the highest final value and the one
// with the highest final-year net dividend. Ties keep the earlier scenario.
func rankScenarios(summaries []domain.ScenarioSummary) (bestValue, bestIncome string) {
	if len(summaries) == 0 {
		return "", ""
	}
	v, inc := 0, 0
	for i := 1; i < len(summaries); i++ {
		if summaries[i].FinalValue.GreaterThan(summaries[v].FinalValue) {
			v = i
		}
		if summaries[i].FinalYearIncome.GreaterThan(summaries[inc].FinalYearIncome) {
			inc = i
		}
	}
	return summaries[v].Name, summaries[inc].Name
}

func (ce *CalculationEngine) logProjection(summary *domain.ScenarioSummary) {
	ce.Logger.Debugf("PROJECTION BREAKDOWN: %s", summary.Name)
	ce.Logger.Debugf("==========================================")
	for _, yr := range summary.Projection {
		ce.Logger.Debugf("Year %2d: open $%s  gross div $%s  tax $%s  fees $%s  contrib $%s  close $%s",
			yr.PeriodIndex,
			yr.OpeningValue.StringFixed(2),
			yr.GrossDividend.StringFixed(2),
			yr.TaxPaid.StringFixed(2),
			yr.FeesPaid.StringFixed(2),
			yr.ContributionAdded.StringFixed(2),
			yr.ClosingValue.StringFixed(2))
	}
}
