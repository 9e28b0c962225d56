package expiry

import (
	"testing"
	"time"
)

func TestFormatMMYYYY(t *testing.T) {
	if got := FormatMMYYYY(4, 2027); got != "04/2027" {
		t.Fatalf("FormatMMYYYY got %s want %s", got, "04/2027")
	}
	if got := FormatMMYYYY(12, 2030); got != "12/2030" {
		t.Fatalf("FormatMMYYYY got %s want %s", got, "12/2030")
	}
}

func TestValidMonthYear(t *testing.T) {
	cases := []struct {
		month, year int
		ok          bool
	}{
		{1, 2027, true}, {12, 2027, true}, {6, 1000, true}, {6, 9999, true},
		{0, 2027, false}, {13, 2027, false}, {-1, 2027, false},
		{6, 0, false}, {6, 999, false}, {6, 10000, false}, {6, 27, false},
	}
	for _, c := range cases {
		if got := ValidMonthYear(c.month, c.year); got != c.ok {
			t.Fatalf("ValidMonthYear(%d, %d) got %v want %v", c.month, c.year, got, c.ok)
		}
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2027, time.June, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		month, year int
		expired     bool
	}{
		{"previous month", 5, 2027, true},
		{"previous year same month", 6, 2026, true},
		{"previous year later month", 12, 2026, true},
		{"current month", 6, 2027, false},
		{"next month", 7, 2027, false},
		{"next year earlier month", 1, 2028, false},
	}
	for _, c := range cases {
		if got := IsExpired(c.month, c.year, now); got != c.expired {
			t.Fatalf("%s: IsExpired(%d, %d) got %v want %v", c.name, c.month, c.year, got, c.expired)
		}
	}
}
