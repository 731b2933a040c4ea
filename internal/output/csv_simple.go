package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/dividend-projector/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Fund", "Profile", "Convention", "TrackUnits", "Years", "InitialValue", "FinalValue", "TotalContributions", "TotalGrossDividend", "TotalTaxPaid", "TotalNetDividend", "TotalFeesPaid", "FinalYearIncome", "CAGRPct", "NetGrowthRatePct", "Degenerate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		p := sc.Parameters
		row := []string{
			sc.Name,
			sc.Fund,
			string(p.EffectiveProfile()),
			string(p.EffectiveConvention()),
			boolToString(p.TrackUnits),
			intToString(len(sc.Projection)),
			moneyCell(sc.InitialValue),
			moneyCell(sc.FinalValue),
			moneyCell(sc.TotalContributions),
			moneyCell(sc.TotalGrossDividend),
			moneyCell(sc.TotalTaxPaid),
			moneyCell(sc.TotalNetDividend),
			moneyCell(sc.TotalFeesPaid),
			moneyCell(sc.FinalYearIncome),
			sc.CAGR.Mul(decimalHundred).StringFixed(4),
			sc.NetGrowthRate.Mul(decimalHundred).StringFixed(4),
			boolToString(sc.Degenerate),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
