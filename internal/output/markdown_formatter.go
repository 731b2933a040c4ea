package output

import (
	"bytes"
	"text/template"

	"github.com/rpgo/dividend-projector/internal/domain"
)

// MarkdownFormatter renders the comparison as a markdown document.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

const reportMarkdownTemplate = `# Dividend Projection Report

## Scenario Summary

| Scenario | Years | Final Value | Contributions | Net Dividends | Taxes | Fees | Final-Year Income | CAGR |
|:---|---:|---:|---:|---:|---:|---:|---:|---:|
{{- range .Scenarios }}
| {{ esc .Name }}{{ if .Fund }} ({{ .Fund }}){{ end }} | {{ len .Projection }} | {{ curr .FinalValue }} | {{ curr .TotalContributions }} | {{ curr .TotalNetDividend }} | {{ curr .TotalTaxPaid }} | {{ curr .TotalFeesPaid }} | {{ curr .FinalYearIncome }} | {{ rate .CAGR }} |
{{- end }}
{{ with .Recommendation }}{{ if .BestValue }}
**Best for value:** {{ esc .BestValue }} at {{ curr .FinalValue }}{{ if .ValueLead.IsPositive }}, {{ curr .ValueLead }} ({{ pct .ValueLeadPct }}) ahead of the runner-up{{ end }}

**Best for income:** {{ esc .BestIncome }} at {{ curr .FinalYearIncome }} in the final year
{{ end }}{{ end }}
{{- range .Scenarios }}

## {{ .Name }}

Net growth rate {{ rate .NetGrowthRate }}, {{ .Parameters.EffectiveProfile }} compounding{{ if .Parameters.TrackUnits }}, units at {{ .Parameters.EffectiveConvention }} price{{ end }}, dividends {{ if .Parameters.ReinvestDividends }}reinvested{{ else }}paid out{{ end }}.
{{- range .Warnings }}

> Warning: {{ . }}
{{- end }}

| Year | Opening | Yield | Gross Dividend | Tax | Net Dividend | Fees | Contribution | Closing | Return | Cumulative |
|:---|---:|---:|---:|---:|---:|---:|---:|---:|---:|---:|
{{- range .Projection }}
| {{ label . }} | {{ curr .OpeningValue }} | {{ rate .DividendYield }} | {{ curr .GrossDividend }} | {{ curr .TaxPaid }} | {{ curr .NetDividend }} | {{ curr .FeesPaid }} | {{ curr .ContributionAdded }} | {{ curr .ClosingValue }} | {{ pct .PeriodReturnPct }} | {{ pct .CumulativeReturnPct }} |
{{- end }}
{{- end }}

## Key Assumptions
{{ range .Assumptions }}
- {{ . }}
{{- end }}
`

var markdownTemplate = template.Must(template.New("markdown").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"rate":  FormatRate,
	"label": yearLabel,
	"esc":   escapeCell,
}).Parse(reportMarkdownTemplate))

type reportView struct {
	*domain.ScenarioComparison
	Recommendation Recommendation
	Assumptions    []string
}

func newReportView(results *domain.ScenarioComparison) reportView {
	return reportView{
		ScenarioComparison: results,
		Recommendation:     AnalyzeScenarios(results),
		Assumptions:        assumptionsFor(results),
	}
}

func (m MarkdownFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, newReportView(results)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
