package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// ConsoleFormatter prints the loan summary followed by the full amortization table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(result *domain.AmortizationResult) ([]byte, error) {
	var buf bytes.Buffer
	writeSummary(&buf, result)
	fmt.Fprintln(&buf)
	writeTable(&buf, ScheduleHeaders, ScheduleTableRows(result.Schedule))
	return buf.Bytes(), nil
}

// SummaryFormatter prints only the payment amount and totals.
type SummaryFormatter struct{}

func (s SummaryFormatter) Name() string      { return "summary" }
func (s SummaryFormatter) Extension() string { return "txt" }

func (s SummaryFormatter) Format(result *domain.AmortizationResult) ([]byte, error) {
	var buf bytes.Buffer
	writeSummary(&buf, result)
	return buf.Bytes(), nil
}

func writeSummary(buf *bytes.Buffer, result *domain.AmortizationResult) {
	title := "AMORTIZATION SCHEDULE"
	if result.Input.Name != "" {
		title += ": " + result.Input.Name
	}
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	p := result.Parameters
	fmt.Fprintf(buf, "Principal:           %s\n", FormatCurrency(p.Principal))
	fmt.Fprintf(buf, "Interest Rate:       %s\n", FormatPercentage(p.AnnualRatePercent))
	fmt.Fprintf(buf, "Amortization:        %s\n", formatYears(p.AmortizationYears))
	fmt.Fprintf(buf, "Payment Frequency:   %s (%d per year)\n", result.Frequency.Label(), p.PaymentsPerYear)
	if result.Term.Years > 0 {
		fmt.Fprintf(buf, "Term:                %s %s", formatYears(result.Term.Years), result.Term.Type)
		if result.Term.EndDate != nil {
			fmt.Fprintf(buf, " (ends %s)", result.Term.EndDate.Format("2006-01-02"))
		}
		fmt.Fprintln(buf)
	}
	fmt.Fprintf(buf, "Payment Amount:      %s\n", FormatCurrency(result.Payment))
	fmt.Fprintln(buf, strings.Repeat("-", 50))

	s := result.Summary
	fmt.Fprintf(buf, "Payments:            %d of %d scheduled\n", s.PaymentsMade, s.ScheduledPayments)
	fmt.Fprintf(buf, "Total Paid:          %s\n", FormatCurrency(s.TotalPaid))
	fmt.Fprintf(buf, "Total Interest:      %s\n", FormatCurrency(s.TotalInterest))
	fmt.Fprintf(buf, "Final Balance:       %s\n", FormatCurrency(s.FinalBalance))
	if s.PaidOffEarly {
		fmt.Fprintf(buf, "Paid off early:      %d payments ahead of schedule\n", s.ScheduledPayments-s.PaymentsMade)
	}
	if s.PayoffDate != nil {
		fmt.Fprintf(buf, "Final Payment Date:  %s\n", s.PayoffDate.Format("2006-01-02"))
	}
	if s.InterestSaved != nil && s.StandardPayment != nil {
		fmt.Fprintf(buf, "Regular %s payment %s; accelerated saves %s interest\n",
			result.Frequency.Standard().Label(), FormatCurrency(*s.StandardPayment), FormatCurrency(*s.InterestSaved))
	}
}

// writeTable right-aligns every column to its widest cell
func writeTable(buf *bytes.Buffer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%*s", widths[i], cell)
		}
		fmt.Fprintln(buf, strings.Join(parts, "  "))
	}
	line(headers)
	total := 2 * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	fmt.Fprintln(buf, strings.Repeat("-", total))
	for _, row := range rows {
		line(row)
	}
}

// FormatRateTable renders harvested bank rates as a console table, skipping
// incomplete records. Rows are numbered from 0 so they can be selected.
func FormatRateTable(records []domain.RateRecord) []byte {
	var buf bytes.Buffer
	rows := RateTableRows(records)
	numbered := make([][]string, 0, len(rows))
	for i, row := range rows {
		numbered = append(numbered, append([]string{intToString(i)}, row...))
	}
	writeTable(&buf, append([]string{"#"}, BankRateHeaders...), numbered)
	return buf.Bytes()
}

// FormatComparison renders one summary line per scenario and flags the cheapest.
func FormatComparison(comparison *domain.ScenarioComparison) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SCENARIO COMPARISON")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	rows := make([][]string, 0, len(comparison.Results))
	for i, r := range comparison.Results {
		name := r.Input.Name
		if name == "" {
			name = fmt.Sprintf("Scenario %d", i+1)
		}
		rows = append(rows, []string{
			name,
			r.Frequency.Label(),
			FormatCurrency(r.Payment),
			intToString(r.Summary.PaymentsMade),
			FormatCurrency(r.Summary.TotalInterest),
		})
	}
	writeTable(&buf, []string{"Scenario", "Frequency", "Payment", "Payments", "Total Interest"}, rows)
	if best, ok := comparison.LowestTotalInterest(); ok && len(comparison.Results) > 1 {
		fmt.Fprintln(&buf)
		name := best.Input.Name
		if name == "" {
			name = best.Frequency.Label()
		}
		fmt.Fprintf(&buf, "Lowest total interest: %s (%s)\n", name, FormatCurrency(best.Summary.TotalInterest))
	}
	return buf.Bytes()
}
