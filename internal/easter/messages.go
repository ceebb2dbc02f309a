package easter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zapponejosh/easter-api/internal/calendar"
)

// InvalidInputMessage is shown when the input is not a year.
const InvalidInputMessage = "Invalid input. Must contain digits representing a positive integral number."

// TooEarlyMessage explains why years before earliest have no Easter.
func TooEarlyMessage(earliest int) string {
	return "It is estimated that Jesus was crucified between AD 26 and AD 37. Before that, no Easter existed.\n" +
		fmt.Sprintf("This application returns results for years starting with AD %d.", earliest)
}

// LengthLimitMessage is shown when input is cut to limit characters.
func LengthLimitMessage(limit int) string {
	return fmt.Sprintf("Input field is limited to %d characters.", limit)
}

// Summary renders r for a reader on the given day, switching between
// "is" and "was" and flagging an Easter that falls today.
func (r *Result) Summary(today calendar.Date) string {
	if r.JulianOnly {
		return fmt.Sprintf("Easter date was %s (Julian date).", r.EasternJulian.Formatted())
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Western Easter %s on %s (Gregorian date).", tense(r.Western, today), r.Western.Formatted())
	if r.Western.Equal(today) {
		b.WriteString(" Today.")
	}

	fmt.Fprintf(&b, "\nEastern Easter %s on %s (Julian date). That is %s (Gregorian date).",
		tense(r.EasternGregorian, today), r.EasternJulian.Formatted(), r.EasternGregorian.Formatted())
	if r.EasternGregorian.Equal(today) {
		b.WriteString(" Today.")
	}

	if r.SameDay {
		if r.Western.Before(today) {
			b.WriteString("\nBoth Easters were celebrated on the same day.")
		} else {
			b.WriteString("\nBoth Easters are celebrated on the same day.")
		}
	}

	return b.String()
}

func tense(d, today calendar.Date) string {
	if d.Before(today) {
		return "was"
	}
	return "is"
}

// Describe parses input, computes the result and renders it for today.
// Every failure is turned into the message a user should see.
func (c *Calculator) Describe(input string, today calendar.Date) string {
	year, err := ParseYear(input)
	if err != nil {
		return UserMessage(err, c.EarliestYear)
	}
	r, err := c.Compute(year)
	if err != nil {
		return UserMessage(err, c.EarliestYear)
	}
	return r.Summary(today)
}

// UserMessage maps an error from ParseYear or Compute to display text.
func UserMessage(err error, earliest int) string {
	switch {
	case errors.Is(err, ErrInvalidYear):
		return InvalidInputMessage
	case errors.Is(err, ErrBeforeFirstEaster):
		return TooEarlyMessage(earliest)
	default:
		return fmt.Sprintf("Easter date cannot be computed: %v", err)
	}
}
