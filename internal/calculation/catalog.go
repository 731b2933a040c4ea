package calculation

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rpgo/dividend-projector/internal/domain"
	"github.com/shopspring/decimal"
)

//go:embed data/funds.csv
var defaultFundData []byte

// ErrFundNotFound is returned when a ticker is not in the catalog.
var ErrFundNotFound = errors.New("fund not found")

var catalogColumns = []string{"ticker", "name", "avg_return", "dividend_yield", "dividend_growth", "expense_ratio", "unit_price"}

// CatalogStatistics summarizes the reference dataset.
type CatalogStatistics struct {
	Count             int             `json:"count"`
	MeanReturn        decimal.Decimal `json:"mean_return"`
	MeanDividendYield decimal.Decimal `json:"mean_dividend_yield"`
	MinDividendYield  decimal.Decimal `json:"min_dividend_yield"`
	MaxDividendYield  decimal.Decimal `json:"max_dividend_yield"`
}

// FundCatalog is the read-only table of named instruments.
type FundCatalog struct {
	Source string
	funds  map[string]domain.Fund
}

// DefaultFundCatalog returns the catalog bundled with the binary.
func DefaultFundCatalog() (*FundCatalog, error) {
	return ParseFundCatalog(bytes.NewReader(defaultFundData), "embedded")
}

// LoadFundCatalog loads a catalog CSV from disk. An empty path yields the bundled catalog.
func LoadFundCatalog(path string) (*FundCatalog, error) {
	if path == "" {
		return DefaultFundCatalog()
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()
	return ParseFundCatalog(file, path)
}

// ParseFundCatalog reads the CSV layout
// ticker,name,avg_return,dividend_yield,dividend_growth,expense_ratio,unit_price.
// Rows that fail to parse are skipped; a catalog without rows is an error.
func ParseFundCatalog(r io.Reader, source string) (*FundCatalog, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV %s: %w", source, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("insufficient data in %s", source)
	}

	header := records[0]
	if len(header) != len(catalogColumns) {
		return nil, fmt.Errorf("expected %d columns in %s, got %d", len(catalogColumns), source, len(header))
	}
	for i, col := range header {
		if strings.ToLower(strings.Trim(strings.TrimSpace(col), `"`)) != catalogColumns[i] {
			return nil, fmt.Errorf("unexpected column %q at position %d in %s", col, i+1, source)
		}
	}

	catalog := &FundCatalog{Source: source, funds: make(map[string]domain.Fund)}
	for _, row := range records[1:] {
		fund, err := parseFundRow(row)
		if err != nil {
			continue
		}
		catalog.funds[fund.Ticker] = fund
	}
	if len(catalog.funds) == 0 {
		return nil, fmt.Errorf("no valid funds found in %s", source)
	}
	return catalog, nil
}

func parseFundRow(row []string) (domain.Fund, error) {
	if len(row) != len(catalogColumns) {
		return domain.Fund{}, fmt.Errorf("expected %d fields, got %d", len(catalogColumns), len(row))
	}
	ticker := strings.ToUpper(strings.TrimSpace(row[0]))
	if ticker == "" {
		return domain.Fund{}, fmt.Errorf("missing ticker")
	}
	values := make([]decimal.Decimal, 0, 5)
	for i := 2; i < len(row); i++ {
		v, err := decimal.NewFromString(strings.TrimSpace(row[i]))
		if err != nil {
			return domain.Fund{}, fmt.Errorf("%s: invalid %s: %w", ticker, catalogColumns[i], err)
		}
		values = append(values, v)
	}
	return domain.Fund{
		Ticker:         ticker,
		Name:           strings.TrimSpace(row[1]),
		AvgReturn:      values[0],
		DividendYield:  values[1],
		DividendGrowth: values[2],
		ExpenseRatio:   values[3],
		UnitPrice:      values[4],
	}, nil
}

// Lookup returns the fund for a ticker (case-insensitive).
func (fc *FundCatalog) Lookup(ticker string) (domain.Fund, error) {
	fund, ok := fc.funds[strings.ToUpper(strings.TrimSpace(ticker))]
	if !ok {
		return domain.Fund{}, fmt.Errorf("%w: %s in catalog %s", ErrFundNotFound, ticker, fc.Source)
	}
	return fund, nil
}

// Tickers returns all tickers in sorted order.
func (fc *FundCatalog) Tickers() []string {
	out := make([]string, 0, len(fc.funds))
	for t := range fc.funds {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Funds returns every fund sorted by ticker.
func (fc *FundCatalog) Funds() []domain.Fund {
	out := make([]domain.Fund, 0, len(fc.funds))
	for _, t := range fc.Tickers() {
		out = append(out, fc.funds[t])
	}
	return out
}

// Apply fills the zero-valued rate and price fields of p from the fund.
// Explicitly set values always win.
func (fc *FundCatalog) Apply(ticker string, p domain.ProjectionParameters) (domain.ProjectionParameters, error) {
	fund, err := fc.Lookup(ticker)
	if err != nil {
		return p, err
	}
	if p.PriceGrowthRate.IsZero() {
		p.PriceGrowthRate = fund.AvgReturn
	}
	if p.DividendYield.IsZero() {
		p.DividendYield = fund.DividendYield
	}
	if p.DividendGrowthRate.IsZero() {
		p.DividendGrowthRate = fund.DividendGrowth
	}
	if p.ExpenseRatio.IsZero() {
		p.ExpenseRatio = fund.ExpenseRatio
	}
	if p.UnitPrice.IsZero() {
		p.UnitPrice = fund.UnitPrice
	}
	return p, nil
}

// Statistics computes summary figures across the catalog.
func (fc *FundCatalog) Statistics() CatalogStatistics {
	funds := fc.Funds()
	if len(funds) == 0 {
		return CatalogStatistics{}
	}
	var sumReturn, sumYield decimal.Decimal
	minYield, maxYield := funds[0].DividendYield, funds[0].DividendYield
	for _, f := range funds {
		sumReturn = sumReturn.Add(f.AvgReturn)
		sumYield = sumYield.Add(f.DividendYield)
		minYield = decimal.Min(minYield, f.DividendYield)
		maxYield = decimal.Max(maxYield, f.DividendYield)
	}
	n := decimal.NewFromInt(int64(len(funds)))
	return CatalogStatistics{
		Count:             len(funds),
		MeanReturn:        sumReturn.Div(n),
		MeanDividendYield: sumYield.Div(n),
		MinDividendYield:  minYield,
		MaxDividendYield:  maxYield,
	}
}
