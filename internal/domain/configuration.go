package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scenario is one named what-if projection. Fund, when set, names an entry
// in the fund catalog whose figures fill the zero-valued rate fields.
type Scenario struct {
	Name       string               `yaml:"name" json:"name"`
	Fund       string               `yaml:"fund,omitempty" json:"fund,omitempty"`
	Parameters ProjectionParameters `yaml:"parameters" json:"parameters"`
}

// Configuration is the top-level scenario file.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// GenerateAssumptions lists the modeling conventions in force for a set of scenarios.
func (c *Configuration) GenerateAssumptions() []string {
	out := []string{
		"Dividend yield compounds multiplicatively on the rate each year",
		"Fees are charged on opening value and deducted at period end",
		"Dividend tax is withheld before reinvestment",
	}
	seen := map[string]bool{}
	for _, sc := range c.Scenarios {
		p := sc.Parameters
		var line string
		if p.TrackUnits {
			line = fmt.Sprintf("%s: %s compounding, units bought at %s price",
				sc.Name, p.EffectiveProfile(), strings.ReplaceAll(string(p.EffectiveConvention()), "_", " "))
		} else {
			line = fmt.Sprintf("%s: %s compounding, cash added at start of period", sc.Name, p.EffectiveProfile())
		}
		if !seen[line] {
			seen[line] = true
			out = append(out, line)
		}
	}
	return out
}

// Fund is one named instrument from the reference dataset. Rates are fractions.
type Fund struct {
	Ticker         string          `json:"ticker"`
	Name           string          `json:"name"`
	AvgReturn      decimal.Decimal `json:"avg_return"`
	DividendYield  decimal.Decimal `json:"dividend_yield"`
	DividendGrowth decimal.Decimal `json:"dividend_growth"`
	ExpenseRatio   decimal.Decimal `json:"expense_ratio"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
}
