package main

import (
	"fmt"
	"os"

	calc "github.com/rpgo/mortgage-calculator/internal/calculation"
	"github.com/rpgo/mortgage-calculator/internal/config"
	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// Prints the configured loan under every payment frequency, one CSV line each.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: compare_frequencies <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	engine := calc.NewCalculationEngine()
	fmt.Println("Frequency,Payment,PaymentsMade,Scheduled,TotalInterest,FinalBalance,InterestSaved")
	for _, f := range domain.Frequencies() {
		loan := cfg.Loan
		loan.Frequency = f.Label()
		res, err := engine.Recalculate(loan)
		if err != nil {
			fmt.Printf("%s,%s,,,,,\n", f.Label(), calc.DataErrorDisplay)
			continue
		}
		saved := ""
		if res.Summary.InterestSaved != nil {
			saved = res.Summary.InterestSaved.StringFixed(2)
		}
		s := res.Summary
		fmt.Printf("%s,%s,%d,%d,%s,%s,%s\n", f.Label(), res.Payment.StringFixed(2), s.PaymentsMade, s.ScheduledPayments,
			s.TotalInterest.StringFixed(2), s.FinalBalance.StringFixed(2), saved)
	}
}
