package output

import (
	"github.com/rpgo/dividend-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenarios.
type Recommendation struct {
	BestValue       string
	FinalValue      decimal.Decimal
	ValueLead       decimal.Decimal // over the runner-up
	ValueLeadPct    decimal.Decimal
	BestIncome      string
	FinalYearIncome decimal.Decimal
}

// AnalyzeScenarios picks the scenario with the highest final value and the
// one with the highest final-year net dividend. Ties keep the earlier scenario.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	best, runnerUp := -1, -1
	income := 0
	for i, sc := range results.Scenarios {
		switch {
		case best < 0 || sc.FinalValue.GreaterThan(results.Scenarios[best].FinalValue):
			runnerUp, best = best, i
		case runnerUp < 0 || sc.FinalValue.GreaterThan(results.Scenarios[runnerUp].FinalValue):
			runnerUp = i
		}
		if sc.FinalYearIncome.GreaterThan(results.Scenarios[income].FinalYearIncome) {
			income = i
		}
	}

	top := results.Scenarios[best]
	rec := Recommendation{
		BestValue:       top.Name,
		FinalValue:      top.FinalValue,
		BestIncome:      results.Scenarios[income].Name,
		FinalYearIncome: results.Scenarios[income].FinalYearIncome,
	}
	if runnerUp >= 0 {
		second := results.Scenarios[runnerUp].FinalValue
		rec.ValueLead = top.FinalValue.Sub(second)
		if !second.IsZero() {
			rec.ValueLeadPct = rec.ValueLead.Div(second).Mul(decimalHundred)
		}
	}
	return rec
}
