package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	"github.com/rpgo/mortgage-calculator/internal/output"
	"github.com/rpgo/mortgage-calculator/internal/rates"
	"github.com/spf13/cobra"
)

func newRatesCmd(a *app) *cobra.Command {
	var (
		sourceNames []string
		files       []string
		lender      string
		selectRow   int
		format      string
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Fetch Canadian bank mortgage rates, lowest first",
		Long: `Fetch published mortgage rates from bank websites and list them lowest rate first.

--select N applies row N's rate, term and amortization to the loan and prints
the resulting schedule. --file parses saved copies of rate pages instead of
fetching them; --lender says which bank the files came from.`,
		Example: `  mortgage rates
  mortgage rates --source rbc --select 0 --principal '$450,000'
  mortgage rates --file mortgages.json --lender BMO`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.setup(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			var sources []rates.Source
			if len(files) > 0 {
				if _, ok := rates.ParserFor(lender); !ok {
					return fmt.Errorf("--lender must be BMO or RBC when using --file")
				}
				for _, f := range files {
					sources = append(sources, &rates.FileSource{Lender: lender, Path: f})
				}
			} else {
				sources, err = rates.SourcesByName(sourceNames, &http.Client{Timeout: timeout})
				if err != nil {
					return err
				}
			}

			records, err := rates.NewHarvester(a.logger, sources...).Harvest(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := out.Write(output.FormatRateTable(records)); err != nil {
				return err
			}
			if selectRow < 0 {
				return nil
			}

			complete := make([]domain.RateRecord, 0, len(records))
			for _, r := range records {
				if r.Complete() {
					complete = append(complete, r)
				}
			}
			if selectRow >= len(complete) {
				return fmt.Errorf("--select %d is out of range (0-%d)", selectRow, len(complete)-1)
			}
			loan, _ := complete[selectRow].ApplyTo(cfg.Loan)
			if loan.Name == "" {
				loan.Name = fmt.Sprintf("%s %s", *complete[selectRow].Lender, output.FormatPercentage(*complete[selectRow].RatePercent))
			}

			result, err := a.engine().Recalculate(loan)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			return output.GenerateReport(out, result, format)
		},
	}

	cmd.Flags().StringSliceVar(&sourceNames, "source", []string{"bmo", "rbc"}, "banks to fetch rates from")
	cmd.Flags().StringSliceVar(&files, "file", nil, "parse a saved rate page instead of fetching")
	cmd.Flags().StringVar(&lender, "lender", "", "bank the --file pages belong to (BMO, RBC)")
	cmd.Flags().IntVar(&selectRow, "select", -1, "apply this rate row to the loan and print its schedule")
	cmd.Flags().StringVarP(&format, "format", "f", "summary", "report format for --select")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP timeout per bank")
	return cmd
}
