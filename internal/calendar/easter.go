package calendar

import (
	"fmt"
	"time"
)

// GregorianReformYear is the first full year of the Gregorian calendar
// (introduced October 1582). Western Easter is only meaningful from here on.
const GregorianReformYear = 1583

// WesternEaster returns the date of Easter Sunday on the Gregorian calendar
// for the given year.
//
// It uses the anonymous Gregorian algorithm (Meeus/Jones/Butcher). Division
// and modulus round toward negative infinity, which matches the published
// algorithm for non-negative years and keeps it total for negative
// (proleptic) ones.
func WesternEaster(year int) (Date, error) {
	// See: https://en.wikipedia.org/wiki/Computus#Anonymous_Gregorian_algorithm
	a := floorMod(year, 19)
	b := floorDiv(year, 100)
	c := floorMod(year, 100)
	d := floorDiv(b, 4)
	e := floorMod(b, 4)
	f := floorDiv(b+8, 25)
	g := floorDiv(b-f+1, 3)
	h := floorMod(19*a+b-d-g+15, 30)
	i := c / 4
	k := c % 4
	l := floorMod(32+2*e+2*i-h-k, 7)
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	easter, err := NewDate(year, time.Month(month), day)
	if err != nil {
		return Date{}, fmt.Errorf("western easter %d: %w", year, err)
	}
	return easter, nil
}

// EasternEaster returns the date of Easter Sunday on the Julian calendar,
// as computed by the Orthodox churches, for the given year. Convert the
// result with ToGregorian to get the civil date.
//
// It uses Meeus's Julian algorithm.
func EasternEaster(year int) (JulianDate, error) {
	a := floorMod(year, 4)
	b := floorMod(year, 7)
	c := floorMod(year, 19)
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month := (d + e + 114) / 31
	day := ((d + e + 114) % 31) + 1

	easter, err := NewJulianDate(year, time.Month(month), day)
	if err != nil {
		return JulianDate{}, fmt.Errorf("eastern easter %d: %w", year, err)
	}
	return easter, nil
}
