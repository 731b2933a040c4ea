package output

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpgo/dividend-projector/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes the comparison to a timestamped file in dir and
// returns the paths written. Format "all" writes every file-oriented format.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, name := range []string{"markdown", "csv", "detailed-csv", "json", "html"} {
			path, err := WriteFormatted(GetFormatterByName(name), results, dir, extensions[name])
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupportedFormat(format)
	}
	path, err := WriteFormatted(f, results, dir, extensions[f.Name()])
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// WriteReport formats the comparison and streams it to w.
func WriteReport(w io.Writer, results *domain.ScenarioComparison, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupportedFormat(format)
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// SaveConfiguration writes a scenario file; .json paths get JSON, anything else YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	var (
		b   []byte
		err error
	)
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		b, err = json.MarshalIndent(config, "", "  ")
	} else {
		b, err = yaml.Marshal(config)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
