package main

import (
	"fmt"

	"github.com/rpgo/mortgage-calculator/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newScheduleCmd(a *app) *cobra.Command {
	var format, outFile string
	var compare bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compute the full amortization schedule",
		Long: `Compute the payment amount and the payment-by-payment amortization schedule.

With --output the schedule is exported to a file instead of printed; the csv
format writes the same seven columns shown in the console table.`,
		Example: `  mortgage schedule --frequency 'Accelerated Bi-Weekly'
  mortgage schedule --config loan.yaml --format csv --output schedule.csv
  mortgage schedule --config loan.yaml --compare`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.setup(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			engine := a.engine()

			if compare {
				comparison, err := engine.RunScenarios(cmd.Context(), cfg.AllLoans())
				if err != nil {
					return err
				}
				_, err = out.Write(output.FormatComparison(comparison))
				return err
			}

			if !cmd.Flags().Changed("format") && cfg.Output.Format != "" {
				format = cfg.Output.Format
			}
			if !cmd.Flags().Changed("output") && cfg.Output.File != "" {
				outFile = cfg.Output.File
			}

			result, err := engine.Recalculate(cfg.Loan)
			if err != nil {
				return err
			}

			if outFile == "" {
				return output.GenerateReport(out, result, format)
			}
			written, err := output.ExportSchedule(result, format, outFile)
			if err != nil {
				return err
			}
			a.logger.Info("schedule exported", zap.String("op", "schedule"), zap.String("file", written), zap.Int("rows", len(result.Schedule)))
			fmt.Fprintf(out, "Schedule saved to %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, summary, csv, detailed-csv, json")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "export the schedule to this file")
	cmd.Flags().BoolVar(&compare, "compare", false, "compare the loan against every scenario in the input file")
	return cmd
}
