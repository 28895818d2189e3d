package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders result with the named formatter and writes it to w.
func GenerateReport(w io.Writer, result *domain.AmortizationResult, format string) error {
	f, err := lookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(result)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ExportSchedule renders result with the named formatter into filename and returns the path written.
func ExportSchedule(result *domain.AmortizationResult, format, filename string) (string, error) {
	f, err := lookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, result, filename)
}

func lookupFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveConfiguration writes a loan input file as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
