// Command divproj projects dividend portfolio growth from the command line
// or serves projections over HTTP.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/dividend-projector/internal/calculation"
	"github.com/rpgo/dividend-projector/internal/config"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries what PersistentPreRunE loads for the subcommands.
type app struct {
	settings *config.Settings
	logger   *slog.Logger
	engine   *calculation.CalculationEngine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "divproj",
		Short: "Dividend portfolio projection engine",
		Long: `divproj projects the growth of a dividend-paying portfolio year by year:
price growth, dividend yield growth, dividend tax, fund fees, periodic
contributions and optional dividend reinvestment.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().String("config", "", "settings file path (default: ./divproj.yaml)")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "", "log format override (text, json)")
	root.PersistentFlags().String("funds", "", "fund catalog CSV (default: bundled catalog)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newProjectCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newExampleCmd())
	root.AddCommand(newFundsCmd(a))
	root.AddCommand(newServeCmd(a))
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	configFile, _ := cmd.Flags().GetString("config")
	settings, err := config.LoadSettings(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		settings.Logging.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		settings.Logging.Format = v
	}
	if v, _ := cmd.Flags().GetString("funds"); v != "" {
		settings.Data.FundCatalog = v
	}
	a.settings = settings
	a.logger = calculation.NewSlogLogger(cmd.ErrOrStderr(), settings.Logging.Level, settings.Logging.Format)

	catalog, err := calculation.LoadFundCatalog(settings.Data.FundCatalog)
	if err != nil {
		return fmt.Errorf("failed to load fund catalog: %w", err)
	}
	a.engine = calculation.NewCalculationEngineWithCatalog(catalog)
	a.engine.MaxConcurrency = settings.Engine.MaxConcurrency
	a.engine.Debug = settings.Engine.Debug
	a.engine.SetLogger(calculation.SlogLogger{L: a.logger})
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Skip settings and catalog loading.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "divproj %s\n", version)
	fmt.Fprintf(w, "  commit:  %s\n", commit)
	fmt.Fprintf(w, "  built:   %s\n", date)
}
