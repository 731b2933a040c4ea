package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/dividend-projector/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with summary and per-year tables.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"rate":  FormatRate,
	"label": yearLabel,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, newReportView(results)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
