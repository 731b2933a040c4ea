package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/dividend-projector/internal/domain"
	"github.com/rpgo/dividend-projector/internal/output"
)

var hundred = decimal.NewFromInt(100)

func newFundsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "funds [ticker]",
		Short: "List the fund catalog or show one fund",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := a.engine.Catalog
			funds := catalog.Funds()
			if len(args) == 1 {
				fund, err := catalog.Lookup(args[0])
				if err != nil {
					return err
				}
				funds = []domain.Fund{fund}
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(funds)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TICKER\tNAME\tRETURN\tYIELD\tDIV GROWTH\tEXPENSE\tPRICE")
			for _, f := range funds {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					f.Ticker, f.Name,
					output.FormatRate(f.AvgReturn),
					output.FormatRate(f.DividendYield),
					output.FormatRate(f.DividendGrowth),
					f.ExpenseRatio.Mul(hundred).StringFixed(3)+"%",
					output.FormatCurrency(f.UnitPrice))
			}
			if len(args) == 0 {
				stats := catalog.Statistics()
				fmt.Fprintf(tw, "\n%d funds\tmean return %s\tmean yield %s\n", stats.Count,
					output.FormatRate(stats.MeanReturn), output.FormatRate(stats.MeanDividendYield))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Bool("json", false, "print JSON instead of a table")
	return cmd
}
