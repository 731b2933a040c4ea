package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/dividend-projector/internal/domain"
	"github.com/rpgo/dividend-projector/internal/output"
)

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "output format: "+fmt.Sprint(output.AvailableFormatterNames())+" or all (default from settings)")
	cmd.Flags().StringP("output-dir", "o", "", "write report files to this directory instead of stdout")
}

// emit writes the comparison to stdout, or to files when --output-dir is set.
func (a *app) emit(cmd *cobra.Command, results *domain.ScenarioComparison) error {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = a.settings.Output.Format
	}
	dir, _ := cmd.Flags().GetString("output-dir")

	if dir == "" && output.NormalizeFormatName(format) != "all" {
		return output.WriteReport(cmd.OutOrStdout(), results, format)
	}
	if dir == "" {
		dir = a.settings.Output.Directory
	}
	paths, err := output.GenerateReport(results, format, dir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		a.logger.Info("report written", "path", p)
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
