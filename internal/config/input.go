package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	money "github.com/rpgo/mortgage-calculator/pkg/decimal"
	"github.com/rpgo/mortgage-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Term and amortization choices offered to the user
var (
	TermYearChoices         = []int{1, 2, 3, 5, 7, 10}
	AmortizationYearChoices = []int{10, 15, 20, 25, 30, 35}
	TermTypes               = []string{"Closed", "Open"}
)

// InputParser handles parsing of loan input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.ValidateLoanInput(&config.Loan); err != nil {
		return fmt.Errorf("loan validation failed: %w", err)
	}

	for i, scenario := range config.Scenarios {
		if err := ip.ValidateLoanInput(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	switch config.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", config.Logging.Format)
	}

	return nil
}

// ValidateLoanInput checks that raw loan input can be turned into loan parameters.
// A zero interest rate passes here; the payment calculation reports it.
func (ip *InputParser) ValidateLoanInput(input *domain.LoanInput) error {
	if strings.TrimSpace(input.Principal) == "" {
		return fmt.Errorf("principal is required")
	}
	principal, err := money.ParseMoneyInput(input.Principal)
	if err != nil {
		return fmt.Errorf("principal %q is not an amount", input.Principal)
	}
	if !principal.IsPositive() {
		return fmt.Errorf("principal must be positive")
	}

	if strings.TrimSpace(input.InterestRate) == "" {
		return fmt.Errorf("interest rate is required")
	}
	rate, err := money.ParsePercentInput(input.InterestRate)
	if err != nil {
		return fmt.Errorf("interest rate %q is not a percentage", input.InterestRate)
	}
	if rate.LessThan(decimal.Zero) {
		return fmt.Errorf("interest rate cannot be negative")
	}

	years, err := strconv.Atoi(strings.TrimSpace(input.Amortization))
	if err != nil {
		return fmt.Errorf("amortization %q is not a whole number of years", input.Amortization)
	}
	if years <= 0 {
		return fmt.Errorf("amortization years must be positive")
	}

	if _, ok := domain.ParseFrequency(input.Frequency); !ok {
		return fmt.Errorf("payment frequency must be one of %s", strings.Join(domain.FrequencyLabels(), ", "))
	}

	if input.TermYears < 0 {
		return fmt.Errorf("term years cannot be negative")
	}
	if input.TermYears > years {
		return fmt.Errorf("term of %d years exceeds the %d year amortization", input.TermYears, years)
	}
	if input.TermType != "" && input.TermType != "Closed" && input.TermType != "Open" {
		return fmt.Errorf("term type must be 'Closed' or 'Open'")
	}

	if _, err := dateutil.ParseDate(input.FirstPaymentDate); err != nil {
		return fmt.Errorf("first payment date: %w", err)
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Loan: domain.LoanInput{
			Name:             "30 year fixed",
			Principal:        "$200,000",
			InterestRate:     "4.00%",
			Amortization:     "30",
			Frequency:        domain.Monthly.Label(),
			TermYears:        5,
			TermType:         "Closed",
			FirstPaymentDate: "2025-01-01",
		},
		Scenarios: []domain.LoanInput{
			{
				Name:             "Accelerated bi-weekly",
				Principal:        "$200,000",
				InterestRate:     "4.00%",
				Amortization:     "30",
				Frequency:        domain.AcceleratedBiWeekly.Label(),
				TermYears:        5,
				TermType:         "Closed",
				FirstPaymentDate: "2025-01-03",
			},
			{
				Name:         "Accelerated weekly",
				Principal:    "$200,000",
				InterestRate: "4.00%",
				Amortization: "30",
				Frequency:    domain.AcceleratedWeekly.Label(),
				TermYears:    5,
				TermType:     "Closed",
			},
		},
		Output: domain.OutputSettings{
			Format: "console",
		},
		Logging: domain.LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
