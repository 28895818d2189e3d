package domain

// Configuration is the content of a loan input file
type Configuration struct {
	Loan      LoanInput      `yaml:"loan" json:"loan"`
	Scenarios []LoanInput    `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`
	Output    OutputSettings `yaml:"output,omitempty" json:"output,omitempty"`
	Logging   LoggingConfig  `yaml:"logging,omitempty" json:"logging,omitempty"`
}

// OutputSettings selects how a schedule is rendered and where it is written
type OutputSettings struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// LoggingConfig configures the zap logger built by the CLI
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty" json:"level,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// AllLoans returns the primary loan followed by any extra scenarios
func (c *Configuration) AllLoans() []LoanInput {
	loans := make([]LoanInput, 0, len(c.Scenarios)+1)
	loans = append(loans, c.Loan)
	return append(loans, c.Scenarios...)
}
