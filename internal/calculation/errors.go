package calculation

import (
	"errors"
	"fmt"
)

// DataErrorDisplay is what a payment field shows when the computation failed
const DataErrorDisplay = "DATA ERROR!"

var (
	// ErrInputConversion means a value could not be converted to the numeric type required
	ErrInputConversion = errors.New("input conversion failed")
	// ErrNonPositiveFrequency means payments per year was zero or negative
	ErrNonPositiveFrequency = errors.New("payments per year must be positive")
	// ErrZeroDenominator means the annuity denominator vanished, which happens for a zero periodic rate
	ErrZeroDenominator = errors.New("zero or degenerate payment formula denominator")
	// ErrUnsupportedAccelerated means an accelerated payment was requested for a frequency other than 26 or 52
	ErrUnsupportedAccelerated = errors.New("accelerated payments are only defined for 26 or 52 payments per year")
	// ErrScheduleTooLong means the loan has more periods than a schedule is projected over
	ErrScheduleTooLong = errors.New("too many payment periods to project")
	// ErrUnknownFrequency means a frequency label did not match any known frequency
	ErrUnknownFrequency = errors.New("unknown payment frequency")
)

// DataError reports a computation that could not complete because of invalid
// or degenerate input. Use errors.Is against the Err* sentinels to find the cause.
type DataError struct {
	Op  string
	Err error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s %s: %v", DataErrorDisplay, e.Op, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

func newDataError(op string, err error) error {
	var de *DataError
	if errors.As(err, &de) {
		return err
	}
	return &DataError{Op: op, Err: err}
}

// IsDataError reports whether err came from a failed computation
func IsDataError(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}
