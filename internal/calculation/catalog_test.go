package calculation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/dividend-projector/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFundCatalog(t *testing.T) {
	catalog, err := DefaultFundCatalog()
	require.NoError(t, err)
	assert.Equal(t, "embedded", catalog.Source)
	assert.Equal(t, []string{"DGRO", "HDV", "JEPI", "SCHD", "SPY", "VIG", "VYM"}, catalog.Tickers())

	schd, err := catalog.Lookup("schd")
	require.NoError(t, err)
	assert.Equal(t, "0.075", schd.AvgReturn.String())
	assert.Equal(t, "0.036", schd.DividendYield.String())
	assert.Equal(t, "0.0006", schd.ExpenseRatio.String())
	assert.Equal(t, "26", schd.UnitPrice.String())
}

func TestFundCatalog_LookupMissing(t *testing.T) {
	catalog, err := DefaultFundCatalog()
	require.NoError(t, err)
	_, err = catalog.Lookup("NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestParseFundCatalog(t *testing.T) {
	data := `ticker,name,avg_return,dividend_yield,dividend_growth,expense_ratio,unit_price
aaa,Alpha Fund,0.05,0.02,0.03,0.001,10
BBB,Beta Fund,0.07,0.04,0.05,0.002,20
CCC,Broken Fund,abc,0.04,0.05,0.002,20
,No Ticker,0.07,0.04,0.05,0.002,20
`
	catalog, err := ParseFundCatalog(strings.NewReader(data), "test")
	require.NoError(t, err)
	assert.Equal(t, []string{"AAA", "BBB"}, catalog.Tickers())

	stats := catalog.Statistics()
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, "0.06", stats.MeanReturn.String())
	assert.Equal(t, "0.03", stats.MeanDividendYield.String())
	assert.Equal(t, "0.02", stats.MinDividendYield.String())
	assert.Equal(t, "0.04", stats.MaxDividendYield.String())

	funds := catalog.Funds()
	require.Len(t, funds, 2)
	assert.Equal(t, "Alpha Fund", funds[0].Name)
}

func TestParseFundCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty", "", "insufficient data"},
		{"header only", "ticker,name,avg_return,dividend_yield,dividend_growth,expense_ratio,unit_price\n", "insufficient data"},
		{"wrong column count", "ticker,name\nA,B\n", "expected 7 columns"},
		{"wrong column name", "ticker,name,return,dividend_yield,dividend_growth,expense_ratio,unit_price\nA,B,1,1,1,1,1\n", "unexpected column"},
		{"no valid rows", "ticker,name,avg_return,dividend_yield,dividend_growth,expense_ratio,unit_price\nA,B,x,1,1,1,1\n", "no valid funds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFundCatalog(strings.NewReader(tt.data), "test")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFundCatalog(t *testing.T) {
	t.Run("empty path uses bundled data", func(t *testing.T) {
		catalog, err := LoadFundCatalog("")
		require.NoError(t, err)
		assert.Equal(t, "embedded", catalog.Source)
	})

	t.Run("file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "funds.csv")
		content := "ticker,name,avg_return,dividend_yield,dividend_growth,expense_ratio,unit_price\nXYZ,Example,0.06,0.03,0.02,0.001,42\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		catalog, err := LoadFundCatalog(path)
		require.NoError(t, err)
		assert.Equal(t, path, catalog.Source)
		assert.Equal(t, []string{"XYZ"}, catalog.Tickers())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFundCatalog(filepath.Join(t.TempDir(), "missing.csv"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open file")
	})
}

func TestFundCatalog_Apply(t *testing.T) {
	catalog, err := DefaultFundCatalog()
	require.NoError(t, err)

	p := domain.ProjectionParameters{
		Principal:     d("5000"),
		HorizonYears:  10,
		DividendYield: d("0.05"),
	}
	applied, err := catalog.Apply("SCHD", p)
	require.NoError(t, err)
	assert.Equal(t, "0.075", applied.PriceGrowthRate.String())
	assert.Equal(t, "0.05", applied.DividendYield.String(), "explicit value wins")
	assert.Equal(t, "0.11", applied.DividendGrowthRate.String())
	assert.Equal(t, "0.0006", applied.ExpenseRatio.String())
	assert.Equal(t, "26", applied.UnitPrice.String())
	assert.Equal(t, "5000", applied.Principal.String())

	_, err = catalog.Apply("NOPE", p)
	assert.Error(t, err)
}
