// Package calendar provides Gregorian and Julian calendar dates and the
// Easter computations built on them.
//
// Years use astronomical numbering throughout: year 1 BC is 0, year 2 BC
// is -1, and so on.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Representable year bounds for Date and JulianDate.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

var (
	// ErrInvalidDate is returned when a year/month/day triple does not name
	// a day in the target calendar.
	ErrInvalidDate = errors.New("invalid date")

	// ErrOutOfRange is returned when a date falls outside [MinYear, MaxYear].
	ErrOutOfRange = errors.New("date out of range")
)

// Date is a day on the proleptic Gregorian calendar. The zero value is not
// a valid date; use NewDate or DateOf.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the Gregorian date for year, month and day.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if !yearInRange(year) {
		return Date{}, fmt.Errorf("gregorian year %d: %w", year, ErrOutOfRange)
	}
	if month < time.January || month > time.December || day < 1 || day > daysIn(year, month) {
		return Date{}, fmt.Errorf("gregorian date (y/m/d) %d/%d/%d: %w", year, int(month), day, ErrInvalidDate)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustDate is like NewDate but panics on error. Intended for fixtures.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today returns the current date in loc. A nil loc means UTC.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(time.Now().In(loc))
}

func (d Date) Year() int { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int { return d.day }
func (d Date) IsZero() bool { return d == Date{} }
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n days; n may be negative.
func (d Date) AddDays(n int) (Date, error) {
	r := DateOf(d.Time().AddDate(0, 0, n))
	if !yearInRange(r.year) {
		return Date{}, fmt.Errorf("%s plus %d days: %w", d, n, ErrOutOfRange)
	}
	return r, nil
}

// Compare returns -1, 0 or +1 as d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	default:
		return cmpInt(d.day, other.day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool { return d.Compare(other) == 0 }

// MonthName returns the English name of d's month.
func (d Date) MonthName() string {
	return MonthName(d.month)
}

// Formatted renders d as "day MonthName year", e.g. "20 April 2025".
func (d Date) Formatted() string {
	return FormatDate(d.day, d.month, d.year)
}

// String renders d as an ISO 8601 calendar date.
func (d Date) String() string {
	return formatISO(d.year, d.month, d.day)
}

// MarshalText implements encoding.TextMarshaler using the ISO form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for the ISO form.
func (d *Date) UnmarshalText(text []byte) error {
	y, m, day, err := parseISO(string(text))
	if err != nil {
		return err
	}
	parsed, err := NewDate(y, m, day)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDate parses an ISO 8601 calendar date such as "2025-04-20",
// "-0999-02-19" or "+12345-01-01".
func ParseDate(s string) (Date, error) {
	var d Date
	if err := d.UnmarshalText([]byte(s)); err != nil {
		return Date{}, err
	}
	return d, nil
}

// IsGregorianLeapYear reports whether year has a February 29 on the
// Gregorian calendar.
func IsGregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsGregorianLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func yearInRange(year int) bool {
	return year >= MinYear && year <= MaxYear
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
