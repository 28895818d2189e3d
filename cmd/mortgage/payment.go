package main

import (
	"fmt"

	"github.com/rpgo/mortgage-calculator/internal/calculation"
	"github.com/rpgo/mortgage-calculator/internal/domain"
	"github.com/rpgo/mortgage-calculator/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPaymentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "payment",
		Short: "Print the periodic payment amount for a loan",
		Example: `  mortgage payment --principal '$200,000' --rate 4.00% --amortization 30 --frequency Monthly
  mortgage payment --frequency 'Accelerated Weekly'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.setup(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			var payment domain.PaymentAmount
			p, frequency, err := calculation.ParseLoanInput(cfg.Loan)
			if err == nil {
				compute := calculation.StandardPayment
				if frequency.IsAccelerated() {
					compute = calculation.AcceleratedPayment
				}
				payment, err = compute(p.Principal, p.AmortizationYears, p.AnnualRatePercent, p.PaymentsPerYear)
			}
			if err != nil {
				a.logger.Warn("payment calculation failed", zap.String("op", "payment"), zap.Error(err))
				fmt.Fprintf(out, "Payment amount: %s\n", calculation.DataErrorDisplay)
				return err
			}

			fmt.Fprintf(out, "Payment amount: %s (%s)\n", output.FormatCurrency(payment), frequency.Label())
			return nil
		},
	}
}
