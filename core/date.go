package core

import (
	"fmt"
	"time"
)

// Date is a calendar date in the google.type.Date wire form. Each component
// may independently be zero, meaning "unspecified": a birthday without a
// year is {Year: 0, Month: 2, Day: 15}, an anniversary month is
// {Year: 2024, Month: 6, Day: 0}. Zero components are real values and
// survive a JSON round trip, which is why none of the fields use omitempty.
type Date struct {
	Year  int32 `json:"year"`
	Month int32 `json:"month"`
	Day   int32 `json:"day"`
}

// DateOf returns the Date with the given components.
func DateOf(year, month, day int32) Date {
	return Date{Year: year, Month: month, Day: day}
}

// NewDate returns the complete Date on which t falls, in t's location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: int32(y), Month: int32(m), Day: int32(d)}
}

// IsZero reports whether all components are unspecified.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Complete reports whether all components are specified.
func (d Date) Complete() bool {
	return d.Year != 0 && d.Month != 0 && d.Day != 0
}

// In returns the time.Time at midnight of d in the given location. It is
// only meaningful for complete dates.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, loc)
}

// Before reports whether d occurs before other, comparing components in
// order. Unspecified components compare as zero.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// String renders a complete date as RFC 3339 full-date (2024-06-01) and
// falls back to an explicit component form for partial dates.
func (d Date) String() string {
	if d.Complete() {
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("date(year=%d, month=%d, day=%d)", d.Year, d.Month, d.Day)
}
