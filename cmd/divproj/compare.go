package main

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/dividend-projector/internal/config"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [scenarios.yaml]",
		Short: "Project and compare every scenario in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := &config.InputParser{Catalog: a.engine.Catalog}
			cfg, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Info("loaded scenarios", "file", args[0], "count", len(cfg.Scenarios))
			results, err := a.engine.RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return a.emit(cmd, results)
		},
	}
	addReportFlags(cmd)
	return cmd
}
