package model

import (
	"strings"
	"time"
)

// All is the month and day selection that disables filtering.
const All = "all"

// Filter is the city, month and day selection for one session iteration.
// Month and Day hold lower-case English names or All.
type Filter struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// IsAll reports whether the filter keeps every trip.
func (f Filter) IsAll() bool {
	return isAll(f.Month) && isAll(f.Day)
}

// Matches reports whether the trip's start time falls in the selected month and day.
// Unrecognised month or day names match nothing.
func (f Filter) Matches(t Trip) bool {
	if !isAll(f.Month) {
		m, ok := ParseMonth(f.Month)
		if !ok || t.StartTime.Month() != m {
			return false
		}
	}
	if !isAll(f.Day) {
		d, ok := ParseWeekday(f.Day)
		if !ok || t.StartTime.Weekday() != d {
			return false
		}
	}
	return true
}

// String returns a short human-readable description of the filter.
func (f Filter) String() string {
	month := f.Month
	if isAll(month) {
		month = "all months"
	}
	day := f.Day
	if isAll(day) {
		day = "all days"
	}
	return f.City + ", " + month + ", " + day
}

func isAll(s string) bool {
	return s == "" || strings.EqualFold(s, All)
}

// ParseMonth converts an English month name to a time.Month, ignoring case.
func ParseMonth(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, true
		}
	}
	return 0, false
}

// ParseWeekday converts an English weekday name to a time.Weekday, ignoring case.
func ParseWeekday(name string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, true
		}
	}
	return 0, false
}
