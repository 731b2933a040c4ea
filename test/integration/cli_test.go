package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/dividend-projector/internal/calculation"
	"github.com/rpgo/dividend-projector/internal/output"
)

func decimalFromInt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestOutputGeneration(t *testing.T) {
	cfg := loadScenarios(t)
	results, err := calculation.NewCalculationEngine().RunScenarios(t.Context(), cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range []string{"console", "markdown", "csv", "detailed-csv", "json", "html"} {
		t.Run(format, func(t *testing.T) {
			paths, err := output.GenerateReport(results, format, dir)
			require.NoError(t, err)
			require.Len(t, paths, 1)
			info, err := os.Stat(paths[0])
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}

	paths, err := output.GenerateReport(results, "all", filepath.Join(dir, "all"))
	require.NoError(t, err)
	assert.Len(t, paths, 5)
}

func TestSavedConfigurationReloads(t *testing.T) {
	cfg := loadScenarios(t)
	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, path))

	reloaded := loadScenariosFrom(t, path)
	engine := calculation.NewCalculationEngine()
	want, err := engine.RunScenarios(t.Context(), cfg)
	require.NoError(t, err)
	got, err := engine.RunScenarios(t.Context(), reloaded)
	require.NoError(t, err)

	for i := range want.Scenarios {
		assert.True(t, want.Scenarios[i].FinalValue.Equal(got.Scenarios[i].FinalValue), want.Scenarios[i].Name)
	}
}
