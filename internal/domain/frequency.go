package domain

// PaymentFrequency enumerates the payment cadences a mortgage can be scheduled on
type PaymentFrequency int

const (
	FrequencyUnknown PaymentFrequency = iota
	Monthly
	BiWeekly
	Weekly
	AcceleratedBiWeekly
	AcceleratedWeekly
)

type frequencyInfo struct {
	label           string
	paymentsPerYear int
	accelerated     bool
}

var frequencyTable = map[PaymentFrequency]frequencyInfo{
	Monthly:             {label: "Monthly", paymentsPerYear: 12},
	BiWeekly:            {label: "Bi-Weekly", paymentsPerYear: 26},
	Weekly:              {label: "Weekly", paymentsPerYear: 52},
	AcceleratedBiWeekly: {label: "Accelerated Bi-Weekly", paymentsPerYear: 26, accelerated: true},
	AcceleratedWeekly:   {label: "Accelerated Weekly", paymentsPerYear: 52, accelerated: true},
}

// Frequencies lists every known frequency in display order
func Frequencies() []PaymentFrequency {
	return []PaymentFrequency{Monthly, BiWeekly, Weekly, AcceleratedBiWeekly, AcceleratedWeekly}
}

// FrequencyLabels returns the human-readable labels in display order
func FrequencyLabels() []string {
	labels := make([]string, 0, len(frequencyTable))
	for _, f := range Frequencies() {
		labels = append(labels, f.Label())
	}
	return labels
}

// ParseFrequency maps an exact label such as "Accelerated Weekly" to its frequency.
func ParseFrequency(label string) (PaymentFrequency, bool) {
	for f, info := range frequencyTable {
		if info.label == label {
			return f, true
		}
	}
	return FrequencyUnknown, false
}

// PaymentsPerYear returns the number of payments in a calendar year, or 0 when unknown
func (f PaymentFrequency) PaymentsPerYear() int {
	return frequencyTable[f].paymentsPerYear
}

// IsAccelerated reports whether the frequency collects the monthly-equivalent amount more often
func (f PaymentFrequency) IsAccelerated() bool {
	return frequencyTable[f].accelerated
}

// Label returns the human-readable label
func (f PaymentFrequency) Label() string {
	if info, ok := frequencyTable[f]; ok {
		return info.label
	}
	return "Unknown"
}

// Standard returns the non-accelerated frequency with the same payment count.
func (f PaymentFrequency) Standard() PaymentFrequency {
	switch f {
	case AcceleratedBiWeekly:
		return BiWeekly
	case AcceleratedWeekly:
		return Weekly
	}
	return f
}

// PeriodStep returns the calendar offset between two consecutive payments
// as (months, days).
func (f PaymentFrequency) PeriodStep() (months int, days int) {
	switch f.PaymentsPerYear() {
	case 12:
		return 1, 0
	case 26:
		return 0, 14
	case 52:
		return 0, 7
	}
	return 0, 0
}

func (f PaymentFrequency) String() string { return f.Label() }

// MarshalText keeps JSON output readable
func (f PaymentFrequency) MarshalText() ([]byte, error) {
	return []byte(f.Label()), nil
}
