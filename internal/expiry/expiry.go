package expiry

import (
	"fmt"
	"time"
)

// FormatMMYYYY renders an expiry month and year as "MM/YYYY", the format the
// acquiring bank expects on the wire.
func FormatMMYYYY(month, year int) string {
	return fmt.Sprintf("%02d/%d", month, year)
}

// ValidMonthYear reports whether month and year form a syntactically valid
// MM/YYYY expiry: month 01..12, four-digit year.
func ValidMonthYear(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 1000 && year <= 9999
}

// IsExpired reports whether the (year, month) expiry is strictly before the
// calendar month of 'at'. A card expiring in the current month is still valid.
func IsExpired(month, year int, at time.Time) bool {
	if year != at.Year() {
		return year < at.Year()
	}
	return time.Month(month) < at.Month()
}
