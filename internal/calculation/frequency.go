package calculation

import "github.com/rpgo/mortgage-calculator/internal/domain"

// ResolveFrequency maps a payment frequency label to the number of payments per year.
// Unknown labels and non-string values report false.
func ResolveFrequency(label any) (int, bool) {
	s, ok := label.(string)
	if !ok {
		return 0, false
	}
	f, ok := domain.ParseFrequency(s)
	if !ok {
		return 0, false
	}
	return f.PaymentsPerYear(), true
}
