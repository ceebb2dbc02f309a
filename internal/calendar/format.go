package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name of month. Ordinals outside 1-12 are
// rendered the way time.Month.String renders them.
func MonthName(month time.Month) string {
	if month < time.January || month > time.December {
		return month.String()
	}
	return monthNames[month-1]
}

// FormatDate renders a date as "day MonthName year", e.g. "3 April 2017".
// Spelling the month out avoids day/month order confusion.
func FormatDate(day int, month time.Month, year int) string {
	return fmt.Sprintf("%d %s %d", day, MonthName(month), year)
}

// formatISO renders an ISO 8601 calendar date.
func formatISO(year int, month time.Month, day int) string {
	return fmt.Sprintf("%s-%02d-%02d", formatISOYear(year), int(month), day)
}

// formatISOYear pads years to four digits and gives years beyond four
// digits the explicit sign of the ISO 8601 expanded form.
func formatISOYear(year int) string {
	switch {
	case year < 0:
		return fmt.Sprintf("-%04d", -year)
	case year > 9999:
		return fmt.Sprintf("+%d", year)
	default:
		return fmt.Sprintf("%04d", year)
	}
}

var isoDateRe = regexp.MustCompile(`^([+-]?[0-9]{4,9})-([0-9]{2})-([0-9]{2})$`)

// parseISO splits an ISO 8601 calendar date into its fields without
// checking that they form a valid date. The year must be written exactly
// as formatISO writes it, so "-0000", "12345" and "+2025" are rejected.
func parseISO(s string) (int, time.Month, int, error) {
	matches := isoDateRe.FindStringSubmatch(s)
	if len(matches) != 4 {
		return 0, 0, 0, fmt.Errorf("invalid date format %q, use YYYY-MM-DD: %w", s, ErrInvalidDate)
	}
	year, err := strconv.Atoi(matches[1])
	if err != nil || formatISOYear(year) != matches[1] {
		return 0, 0, 0, fmt.Errorf("invalid year %q: %w", matches[1], ErrInvalidDate)
	}
	month, _ := strconv.Atoi(matches[2])
	day, _ := strconv.Atoi(matches[3])
	return year, time.Month(month), day, nil
}
