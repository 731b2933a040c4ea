package calculation

import (
	"github.com/rpgo/dividend-projector/internal/domain"
	dec "github.com/rpgo/dividend-projector/pkg/decimal"
	"github.com/rpgo/dividend-projector/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// stateScale is the number of decimal places the fold state (value, price,
// units, yield) is rounded to after every step.
const stateScale = 20

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// Ordering conventions, fixed per profile:
//
//   - value tracking, annual: contributions and reinvested dividends are added
//     at the start of the year and grow for the full year.
//   - value tracking, monthly: each month grows first, then that month's cash
//     is added at month end.
//   - unit tracking (either profile): the price grows first and cash buys
//     units at the period-end price or at the geometric mid-period price
//     startPrice*sqrt(1+growth).
//
// In every case fees are opening value * expense ratio, deducted once at year
// end; with unit tracking they are paid by selling units at the year-end price
// and the closing value is always units * price.

// projectionState is threaded through the fold; each period returns a new value.
type projectionState struct {
	value         decimal.Decimal
	price         decimal.Decimal
	units         decimal.Decimal
	yield         decimal.Decimal
	contributions decimal.Decimal
	dividends     decimal.Decimal
}

// periodFlows accumulates the money movements of one year.
type periodFlows struct {
	gross        decimal.Decimal
	tax          decimal.Decimal
	net          decimal.Decimal
	contribution decimal.Decimal
	purchased    decimal.Decimal
}

func (f periodFlows) add(o periodFlows) periodFlows {
	return periodFlows{
		gross:        f.gross.Add(o.gross),
		tax:          f.tax.Add(o.tax),
		net:          f.net.Add(o.net),
		contribution: f.contribution.Add(o.contribution),
		purchased:    f.purchased.Add(o.purchased),
	}
}

// growthStep describes one compounding sub-period.
type growthStep struct {
	factor    decimal.Decimal // 1 + growth over the sub-period
	midFactor decimal.Decimal // sqrt(factor), used by the mid-period convention
	cashFirst bool            // value tracking only: add cash before growth
}

// projector holds the per-run constants derived from the parameters.
type projector struct {
	params     domain.ProjectionParameters
	convention domain.ReinvestmentPriceConvention
	step       growthStep
	// monthly profile only
	monthlyContribution decimal.Decimal
}

func newProjector(p domain.ProjectionParameters) *projector {
	pr := &projector{params: p, convention: p.EffectiveConvention()}
	switch p.EffectiveProfile() {
	case domain.ProfileMonthly:
		factor := dec.GrowthFactor(dec.PeriodicRate(p.PriceGrowthRate, 12))
		pr.step = growthStep{factor: factor, midFactor: dec.Sqrt(factor)}
		if dateutil.IsSubMonthly(p.ContributionFrequency) {
			pr.monthlyContribution = p.AnnualContribution().Div(twelve)
		}
	default:
		factor := dec.GrowthFactor(p.PriceGrowthRate)
		pr.step = growthStep{factor: factor, midFactor: dec.Sqrt(factor), cashFirst: true}
	}
	return pr
}

// Project runs the projection and returns one result per year.
// Parameters are validated first; nothing is computed for an invalid set.
func Project(params domain.ProjectionParameters) ([]domain.YearlyResult, error) {
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}
	pr := newProjector(params)

	state := projectionState{
		value: params.Principal,
		yield: params.DividendYield,
	}
	if params.TrackUnits {
		state.price = params.UnitPrice
		state.units = params.Principal.Div(params.UnitPrice)
	}

	results := make([]domain.YearlyResult, 0, params.HorizonYears)
	for t := 1; t <= params.HorizonYears; t++ {
		var result domain.YearlyResult
		state, result = pr.period(state, t)
		results = append(results, result)
	}
	return results, nil
}

// period advances the state by one year.
func (pr *projector) period(s projectionState, t int) (projectionState, domain.YearlyResult) {
	p := pr.params
	opening := s.value
	fees := opening.Mul(p.ExpenseRatio)

	var flows periodFlows
	next := s
	if p.EffectiveProfile() == domain.ProfileMonthly {
		monthlyYield := s.yield.Div(twelve)
		for month := 1; month <= 12; month++ {
			contribution := pr.monthlyContribution
			if !dateutil.IsSubMonthly(p.ContributionFrequency) {
				n := dateutil.ContributionsInMonth(month, p.ContributionFrequency)
				contribution = p.PeriodicContribution.Mul(decimal.NewFromInt(int64(n)))
			}
			var f periodFlows
			next, f = pr.subStep(next, monthlyYield, contribution)
			flows = flows.add(f)
		}
	} else {
		next, flows = pr.subStep(next, s.yield, p.AnnualContribution())
	}

	if p.TrackUnits {
		if fees.IsPositive() {
			next.units = next.units.Sub(fees.Div(next.price))
		}
		next.value = next.units.Mul(next.price)
	} else {
		next.value = next.value.Sub(fees).Round(stateScale)
	}
	next.yield = s.yield.Mul(dec.GrowthFactor(p.DividendGrowthRate)).Round(stateScale)
	next.contributions = s.contributions.Add(flows.contribution)
	next.dividends = s.dividends.Add(flows.net)

	result := domain.YearlyResult{
		PeriodIndex:           t,
		CalendarYear:          dateutil.CalendarYear(p.StartingCalendarYear, t),
		OpeningValue:          opening,
		DividendYield:         s.yield,
		GrossDividend:         flows.gross,
		NetDividend:           flows.net,
		TaxPaid:               flows.tax,
		FeesPaid:              fees,
		ContributionAdded:     flows.contribution,
		UnitsOrValuePurchased: flows.purchased,
		ClosingValue:          next.value,
		PeriodReturnPct:       dec.Percent(next.value.Sub(opening), p.Principal),
		CumulativeReturnPct:   dec.Percent(next.value.Sub(p.Principal), p.Principal),
		TotalContributions:    next.contributions,
		CumulativeDividends:   next.dividends,
	}
	if p.TrackUnits {
		result.UnitPrice = next.price
		result.Units = next.units
	}
	return next, result
}

// subStep pays dividends on the running value at the given yield, then
// grows the position and invests the cash for one compounding step.
func (pr *projector) subStep(s projectionState, yield, contribution decimal.Decimal) (projectionState, periodFlows) {
	p := pr.params
	// A value driven below zero by fees earns nothing.
	gross := decimal.Max(s.value, decimal.Zero).Mul(yield)
	tax := gross.Mul(p.DividendTaxRate)
	net := decimal.Max(gross.Sub(tax), decimal.Zero)

	cash := contribution
	if p.ReinvestDividends {
		cash = cash.Add(net)
	}

	next, purchased := pr.invest(s, cash)
	return next, periodFlows{gross: gross, tax: tax, net: net, contribution: contribution, purchased: purchased}
}

// invest applies one growth step and adds cash according to the ordering
// convention. It returns the new state and the units (unit tracking) or
// value (value tracking) purchased.
func (pr *projector) invest(s projectionState, cash decimal.Decimal) (projectionState, decimal.Decimal) {
	g := pr.step
	if !pr.params.TrackUnits {
		if g.cashFirst {
			s.value = s.value.Add(cash).Mul(g.factor)
		} else {
			s.value = s.value.Mul(g.factor).Add(cash)
		}
		s.value = s.value.Round(stateScale)
		return s, cash
	}

	endPrice := s.price.Mul(g.factor).Round(stateScale)
	ref := endPrice
	if pr.convention == domain.ReinvestAtMidPeriodGeometric {
		ref = s.price.Mul(g.midFactor).Round(stateScale)
	}
	bought := decimal.Zero
	if ref.IsPositive() && cash.IsPositive() {
		bought = cash.Div(ref)
	}
	s.units = s.units.Add(bought)
	s.price = endPrice
	s.value = s.units.Mul(endPrice)
	return s, bought
}
