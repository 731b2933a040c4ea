package output

import "github.com/rpgo/dividend-projector/internal/domain"

// DefaultAssumptions lists key modeling assumptions rendered when a comparison
// carries none of its own.
var DefaultAssumptions = []string{
	"Dividend yield compounds multiplicatively on the rate each year",
	"Fees are charged on opening value and deducted at period end",
	"Dividend tax is withheld before reinvestment",
	"Prices, yields and growth rates are constant assumptions, not forecasts",
}

func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return DefaultAssumptions
}
