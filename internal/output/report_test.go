package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/dividend-projector/internal/config"
	"github.com/rpgo/dividend-projector/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixClock(t *testing.T) {
	t.Helper()
	now = func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })
}

func TestGenerateReport(t *testing.T) {
	fixClock(t)
	dir := filepath.Join(t.TempDir(), "reports")

	paths, err := GenerateReport(buildTestComparison(t), "csv-summary", dir)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "dividend_projection_20250314_092653_csv.csv"), paths[0])

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Scenario,Fund,"))
}

func TestGenerateReport_All(t *testing.T) {
	fixClock(t)
	dir := t.TempDir()

	paths, err := GenerateReport(buildTestComparison(t), "all", dir)
	require.NoError(t, err)
	require.Len(t, paths, 5)
	exts := map[string]bool{}
	for _, p := range paths {
		_, err := os.Stat(p)
		require.NoError(t, err)
		exts[filepath.Ext(p)] = true
	}
	assert.Equal(t, map[string]bool{".md": true, ".csv": true, ".json": true, ".html": true}, exts)
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := GenerateReport(&domain.ScenarioComparison{}, "definitely-not-a-format", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "Try one of:")
	assert.Contains(t, err.Error(), "markdown")

	err = WriteReport(&bytes.Buffer{}, &domain.ScenarioComparison{}, "pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, buildTestComparison(t), "json"))
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
}

func TestSaveConfiguration(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	for _, name := range []string{"scenarios.yaml", "scenarios.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, SaveConfiguration(cfg, path))

			loaded, err := parser.LoadFromFile(path)
			require.NoError(t, err)
			require.Len(t, loaded.Scenarios, len(cfg.Scenarios))
			for i := range cfg.Scenarios {
				assert.Equal(t, cfg.Scenarios[i].Name, loaded.Scenarios[i].Name)
				assert.True(t, cfg.Scenarios[i].Parameters.Principal.Equal(loaded.Scenarios[i].Parameters.Principal))
				assert.Equal(t, cfg.Scenarios[i].Parameters.EffectiveProfile(), loaded.Scenarios[i].Parameters.EffectiveProfile())
			}
		})
	}
}
