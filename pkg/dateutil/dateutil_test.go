package dateutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLeapYearCalculation tests leap year determination
func TestLeapYearCalculation(t *testing.T) {
	tests := []struct {
		year     int
		expected bool
	}{
		{2000, true},  // Divisible by 400
		{1900, false}, // Divisible by 100 but not 400
		{2004, true},
		{2001, false},
		{2024, true},
		{2025, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("Year_%d", tt.year), func(t *testing.T) {
			result := IsLeapYear(tt.year)
			assert.Equal(t, tt.expected, result,
				"Year %d: Expected %t, got %t", tt.year, tt.expected, result)
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 30, DaysInMonth(2025, time.April))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-01")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *d)

	d, err = ParseDate("  ")
	assert.NoError(t, err)
	assert.Nil(t, d)

	_, err = ParseDate("03/01/2025")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
}

// TestDateArithmetic tests date arithmetic functions
func TestDateArithmetic(t *testing.T) {
	baseDate := time.Date(2025, 6, 15, 12, 30, 45, 0, time.UTC)

	futureDate := AddYears(baseDate, 5)
	assert.Equal(t, time.Date(2030, 6, 15, 12, 30, 45, 0, time.UTC), futureDate, "AddYears should add 5 years correctly")

	monthDate := AddMonths(baseDate, 18) // 1.5 years
	assert.Equal(t, time.Date(2026, 12, 15, 12, 30, 45, 0, time.UTC), monthDate, "AddMonths should add 18 months correctly")

	back := AddMonths(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), -13)
	assert.Equal(t, time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC), back)

	assert.Equal(t, time.Date(2025, 6, 29, 12, 30, 45, 0, time.UTC), AddDays(baseDate, 14))
}

func TestAddMonths_ClampsMonthEnd(t *testing.T) {
	jan31 := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), AddMonths(jan31, 1))
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), AddMonths(jan31, 13))

	leapDay := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), AddYears(leapDay, 1))
}

func TestPaymentDate(t *testing.T) {
	first := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	// monthly payments stay anchored on the 31st where the month allows it
	assert.Equal(t, first, PaymentDate(first, 0, 1, 0))
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), PaymentDate(first, 1, 1, 0))
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), PaymentDate(first, 2, 1, 0))

	// bi-weekly
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), PaymentDate(first, 2, 0, 14))
}
