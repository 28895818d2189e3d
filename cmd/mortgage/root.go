package main

import (
	"fmt"

	"github.com/rpgo/mortgage-calculator/internal/calculation"
	"github.com/rpgo/mortgage-calculator/internal/config"
	"github.com/rpgo/mortgage-calculator/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the flags shared by every subcommand
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	loan       domain.LoanInput

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "mortgage",
		Short:         "Mortgage payment and amortization schedule calculator",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "loan input file (YAML)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format override (console, json)")

	pf.StringVar(&a.loan.Principal, "principal", "$200,000", "principal amount to borrow")
	pf.StringVar(&a.loan.InterestRate, "rate", "4.00%", "annual interest rate")
	pf.StringVar(&a.loan.Amortization, "amortization", "30", "amortization period in years")
	pf.StringVar(&a.loan.Frequency, "frequency", domain.Monthly.Label(), "payment frequency")
	pf.IntVar(&a.loan.TermYears, "term-years", 5, "mortgage term in years")
	pf.StringVar(&a.loan.TermType, "term-type", "Closed", "mortgage term type (Closed, Open)")
	pf.StringVar(&a.loan.FirstPaymentDate, "first-payment", "", "date of the first payment (YYYY-MM-DD)")
	pf.StringVar(&a.loan.Name, "name", "", "label for the loan in reports")

	root.AddCommand(
		newPaymentCmd(a),
		newScheduleCmd(a),
		newRatesCmd(a),
		newExampleConfigCmd(),
	)
	return root
}

// setup loads the optional input file, builds the logger and merges explicit
// flags over the file's loan. Without a file the flag values (or defaults) are used.
func (a *app) setup(cmd *cobra.Command) (*domain.Configuration, error) {
	cfg := &domain.Configuration{Loan: a.loan}
	if a.configPath != "" {
		loaded, err := config.NewInputParser().LoadFromFile(a.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		overrideLoan(cmd, &cfg.Loan, a.loan)
	}

	logging := cfg.Logging
	if a.logFormat != "" {
		logging.Format = a.logFormat
	}
	logger, err := initializeLogger(logging, a.logLevel)
	if err != nil {
		return nil, err
	}
	a.logger = logger
	return cfg, nil
}

func (a *app) engine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(calculation.NewZapLogger(a.logger))
	return engine
}

func overrideLoan(cmd *cobra.Command, loan *domain.LoanInput, flags domain.LoanInput) {
	changed := cmd.Flags().Changed
	if changed("principal") {
		loan.Principal = flags.Principal
	}
	if changed("rate") {
		loan.InterestRate = flags.InterestRate
	}
	if changed("amortization") {
		loan.Amortization = flags.Amortization
	}
	if changed("frequency") {
		loan.Frequency = flags.Frequency
	}
	if changed("term-years") {
		loan.TermYears = flags.TermYears
	}
	if changed("term-type") {
		loan.TermType = flags.TermType
	}
	if changed("first-payment") {
		loan.FirstPaymentDate = flags.FirstPaymentDate
	}
	if changed("name") {
		loan.Name = flags.Name
	}
}

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig domain.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "warn"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "console"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	return zapConfig.Build()
}
