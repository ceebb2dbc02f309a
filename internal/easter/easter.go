// Package easter answers "when is Easter in year N" the way a reader
// expects: Julian-only before the Gregorian reform, both traditions after
// it, with the result phrased relative to today.
package easter

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/zapponejosh/easter-api/internal/calendar"
)

// Defaults for Calculator.
const (
	// DefaultEarliestYear is the first year with an Easter. The crucifixion
	// is dated between AD 26 and AD 37.
	DefaultEarliestYear = 26

	// DefaultGregorianStartYear is the first full year of the Gregorian
	// calendar. Earlier years only get a Julian Easter.
	DefaultGregorianStartYear = calendar.GregorianReformYear

	// MaxYearDigits bounds the length of a year typed by a user.
	MaxYearDigits = 8
)

var (
	// ErrInvalidYear is returned when a year is not 1 to 8 decimal digits.
	ErrInvalidYear = errors.New("invalid year")

	// ErrBeforeFirstEaster is returned for years before the earliest year.
	ErrBeforeFirstEaster = errors.New("year precedes the first easter")
)

var yearRe = regexp.MustCompile(`^[0-9]{1,8}$`)

// ParseYear parses a year typed by a user. Only plain decimal digits are
// accepted, at most MaxYearDigits of them.
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !yearRe.MatchString(s) {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidYear)
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidYear)
	}
	return year, nil
}

// Calculator computes Easter results within configured year bounds.
type Calculator struct {
	EarliestYear       int
	GregorianStartYear int
}

// NewCalculator returns a Calculator with the default bounds.
func NewCalculator() *Calculator {
	return &Calculator{
		EarliestYear:       DefaultEarliestYear,
		GregorianStartYear: DefaultGregorianStartYear,
	}
}

// Result holds the Easter dates of one year.
//
// Western and EasternGregorian are zero when JulianOnly is set.
type Result struct {
	Year             int
	JulianOnly       bool
	Western          calendar.Date
	EasternJulian    calendar.JulianDate
	EasternGregorian calendar.Date
	SameDay          bool
}

// Compute returns the Easter dates for year.
func (c *Calculator) Compute(year int) (*Result, error) {
	if year < c.EarliestYear {
		return nil, fmt.Errorf("year %d: %w", year, ErrBeforeFirstEaster)
	}

	julian, err := calendar.EasternEaster(year)
	if err != nil {
		return nil, err
	}
	result := &Result{Year: year, EasternJulian: julian}

	if year < c.GregorianStartYear {
		result.JulianOnly = true
		return result, nil
	}

	result.Western, err = calendar.WesternEaster(year)
	if err != nil {
		return nil, err
	}
	result.EasternGregorian, err = julian.ToGregorian()
	if err != nil {
		return nil, err
	}
	result.SameDay = result.Western.Equal(result.EasternGregorian)

	return result, nil
}

// ComputeRange returns results for every year from start to end inclusive.
func (c *Calculator) ComputeRange(start, end int) ([]*Result, error) {
	if start > end {
		return nil, fmt.Errorf("start year %d after end year %d", start, end)
	}
	results := make([]*Result, 0, end-start+1)
	for year := start; year <= end; year++ {
		r, err := c.Compute(year)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
