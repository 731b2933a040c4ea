package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/dividend-projector/internal/domain"
	"github.com/rpgo/dividend-projector/pkg/dateutil"
)

// CSVDetailedExporter provides raw annual projection detail per scenario/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Period", "CalendarYear", "PeriodEnd", "OpeningValue", "DividendYield", "GrossDividend", "TaxPaid", "NetDividend", "FeesPaid", "Contribution", "Purchased", "ClosingValue", "UnitPrice", "Units", "PeriodReturnPct", "CumulativeReturnPct", "TotalContributions", "CumulativeDividends"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		start := sc.Parameters.StartingCalendarYear
		for _, yr := range sc.Projection {
			calendarYear, periodEnd := "", ""
			if start != 0 {
				calendarYear = intToString(yr.CalendarYear)
				periodEnd = dateutil.PeriodEnd(start, yr.PeriodIndex).Format("2006-01-02")
			}
			row := []string{
				sc.Name,
				intToString(yr.PeriodIndex),
				calendarYear,
				periodEnd,
				moneyCell(yr.OpeningValue),
				yr.DividendYield.StringFixed(6),
				moneyCell(yr.GrossDividend),
				moneyCell(yr.TaxPaid),
				moneyCell(yr.NetDividend),
				moneyCell(yr.FeesPaid),
				moneyCell(yr.ContributionAdded),
				yr.UnitsOrValuePurchased.StringFixed(6),
				moneyCell(yr.ClosingValue),
				yr.UnitPrice.StringFixed(4),
				yr.Units.StringFixed(6),
				yr.PeriodReturnPct.StringFixed(4),
				yr.CumulativeReturnPct.StringFixed(4),
				moneyCell(yr.TotalContributions),
				moneyCell(yr.CumulativeDividends),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
