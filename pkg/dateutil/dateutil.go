package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the layout accepted for dates in loan input files and flags
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date in UTC. An empty string yields nil.
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return &t, nil
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	}
	return 31
}

// AddYears adds a specified number of years to a date, clamping Feb 29 to Feb 28
func AddYears(date time.Time, years int) time.Time {
	return AddMonths(date, years*12)
}

// AddMonths adds months to a date. The day is clamped to the last day of the
// target month, so Jan 31 + 1 month is Feb 28 (or 29), not Mar 3.
func AddMonths(date time.Time, months int) time.Time {
	total := int(date.Month()) - 1 + months
	year := date.Year() + total/12
	monthIndex := total % 12
	if monthIndex < 0 {
		monthIndex += 12
		year--
	}
	month := time.Month(monthIndex + 1)
	day := date.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// AddDays adds a number of calendar days
func AddDays(date time.Time, days int) time.Time {
	return date.AddDate(0, 0, days)
}

// PaymentDate returns the due date of the payment that is `index` periods after
// first, where one period is `months` months plus `days` days. Dates are
// computed from the anchor rather than chained, so month-end anchors do not drift.
func PaymentDate(first time.Time, index, months, days int) time.Time {
	return AddDays(AddMonths(first, index*months), index*days)
}
