package calendar

import (
	"fmt"
	"time"
)

// JulianDate is a day on the Julian calendar.
//
// It accepts every date a Gregorian Date accepts, plus February 29 in
// years divisible by 100 but not by 400. Those years are leap under the
// Julian "every fourth year" rule but not under the Gregorian rule, so
// JulianDate(1700, 2, 29) exists even though Date(1700, 2, 29) does not.
//
// For BC dates use astronomical numbering: 29 February 1001 BC is
// NewJulianDate(-1000, 2, 29).
type JulianDate struct {
	year  int
	month time.Month
	day   int
}

// NewJulianDate returns the Julian date for year, month and day, or an
// error wrapping ErrInvalidDate if the triple names no Julian day.
func NewJulianDate(year int, month time.Month, day int) (JulianDate, error) {
	if !IsValidJulianDate(year, month, day) {
		return JulianDate{}, fmt.Errorf("julian date (y/m/d) %d/%d/%d: %w", year, int(month), day, ErrInvalidDate)
	}
	return JulianDate{year: year, month: month, day: day}, nil
}

// mustJulianDate is like NewJulianDate but panics on error. Used for fixtures.
func mustJulianDate(year int, month time.Month, day int) JulianDate {
	j, err := NewJulianDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return j
}

// IsValidJulianDate reports whether year/month/day names a day on the
// Julian calendar within the representable year range.
func IsValidJulianDate(year int, month time.Month, day int) bool {
	if !yearInRange(year) {
		return false
	}
	if isSkippedLeapDay(year, month, day) {
		return true
	}
	return month >= time.January && month <= time.December && day >= 1 && day <= daysIn(year, month)
}

// IsJulianLeapYear reports whether year has a February 29 on the Julian
// calendar.
func IsJulianLeapYear(year int) bool {
	return year%4 == 0
}

// isJulianOnlyLeapYear reports whether year is leap on the Julian calendar
// but not on the Gregorian one.
func isJulianOnlyLeapYear(year int) bool {
	return year%100 == 0 && year%400 != 0
}

// isSkippedLeapDay reports whether the date is a February 29 that the
// Gregorian calendar skips.
func isSkippedLeapDay(year int, month time.Month, day int) bool {
	return month == time.February && day == 29 && isJulianOnlyLeapYear(year)
}

func (j JulianDate) Year() int { return j.year }
func (j JulianDate) Month() time.Month { return j.month }
func (j JulianDate) Day() int { return j.day }

// MonthName returns the English name of j's month.
func (j JulianDate) MonthName() string {
	return MonthName(j.month)
}

// Formatted renders j as "day MonthName year", e.g. "29 February 1900".
func (j JulianDate) Formatted() string {
	return FormatDate(j.day, j.month, j.year)
}

// String renders j in ISO 8601 form. The result is a Julian calendar
// date and must not be read as a Gregorian one.
func (j JulianDate) String() string {
	return formatISO(j.year, j.month, j.day)
}

// MarshalText implements encoding.TextMarshaler.
func (j JulianDate) MarshalText() ([]byte, error) {
	return []byte(j.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *JulianDate) UnmarshalText(text []byte) error {
	y, m, d, err := parseISO(string(text))
	if err != nil {
		return err
	}
	parsed, err := NewJulianDate(y, m, d)
	if err != nil {
		return err
	}
	*j = parsed
	return nil
}

// Equal reports whether j and other are the same Julian day.
func (j JulianDate) Equal(other JulianDate) bool {
	return j == other
}

// SecularDifference returns the number of days the Julian calendar lags
// the Gregorian calendar in j's year, counted from March 1 (when the
// Gregorian calendar drops its century leap days). It is negative in early
// years, where the Julian calendar runs ahead.
func (j JulianDate) SecularDifference() int {
	return secularDifference(j.year)
}

func secularDifference(year int) int {
	return floorDiv(year, 100) - floorDiv(year, 400) - 2
}

// conversionCase classifies a Julian date by how ToGregorian must treat it.
type conversionCase int

const (
	// ordinaryDay converts with the year's secular difference.
	ordinaryDay conversionCase = iota

	// beforeSkippedLeapDay is January 1 to February 28 of a Julian-only leap
	// year. The Gregorian calendar has not yet dropped this year's leap
	// day, so the lag is one day less than the secular difference.
	beforeSkippedLeapDay

	// skippedLeapDay is February 29 of a Julian-only leap year. There is no
	// Gregorian February 29 to start from, so conversion starts from
	// February 28 and applies the unadjusted secular difference.
	skippedLeapDay
)

func (c conversionCase) String() string {
	switch c {
	case ordinaryDay:
		return "ordinary day"
	case beforeSkippedLeapDay:
		return "before skipped leap day"
	case skippedLeapDay:
		return "skipped leap day"
	default:
		return fmt.Sprintf("conversionCase(%d)", int(c))
	}
}

func (j JulianDate) conversionCase() conversionCase {
	if !isJulianOnlyLeapYear(j.year) {
		return ordinaryDay
	}
	switch {
	case j.month == time.January, j.month == time.February && j.day <= 28:
		return beforeSkippedLeapDay
	case j.month == time.February && j.day == 29:
		return skippedLeapDay
	default:
		return ordinaryDay
	}
}

// ToGregorian returns the Gregorian date of the same day. It fails with
// ErrOutOfRange when that date lies outside the representable years.
func (j JulianDate) ToGregorian() (Date, error) {
	offset := j.SecularDifference()
	day := j.day

	switch j.conversionCase() {
	case beforeSkippedLeapDay:
		offset--
	case skippedLeapDay:
		day = 28
	case ordinaryDay:
	}

	start, err := NewDate(j.year, j.month, day)
	if err != nil {
		return Date{}, fmt.Errorf("convert julian %s: %w", j, err)
	}
	g, err := start.AddDays(offset)
	if err != nil {
		return Date{}, fmt.Errorf("convert julian %s: %w", j, err)
	}
	return g, nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a modulo b with the sign of b.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
