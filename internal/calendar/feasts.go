package calendar

import (
	"fmt"
	"strings"
)

// Tradition selects which Easter computation a feast is anchored to.
type Tradition string

const (
	// Western is the Gregorian computus used by the Catholic and
	// Protestant churches.
	Western Tradition = "western"

	// Eastern is the Julian computus used by the Orthodox churches.
	Eastern Tradition = "eastern"
)

// ParseTradition parses "western" or "eastern", ignoring case.
func ParseTradition(s string) (Tradition, error) {
	switch t := Tradition(strings.ToLower(strings.TrimSpace(s))); t {
	case Western, Eastern:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tradition %q, want western or eastern", s)
	}
}

// Easter-relative offsets in days.
const (
	DaysFromEasterToCleanMonday  = -48
	DaysFromEasterToAshWednesday = -46
	DaysFromEasterToPalmSunday   = -7
	DaysFromEasterToGoodFriday   = -2
	DaysFromEasterToAscension    = 39
	DaysFromEasterToPentecost    = 49
)

// Feast is a movable feast on the Gregorian calendar.
type Feast struct {
	Name string `json:"name"`
	Date Date   `json:"date"`
}

type feastOffset struct {
	name   string
	offset int
}

var westernFeasts = []feastOffset{
	{"Ash Wednesday", DaysFromEasterToAshWednesday},
	{"Palm Sunday", DaysFromEasterToPalmSunday},
	{"Good Friday", DaysFromEasterToGoodFriday},
	{"Easter Sunday", 0},
	{"Ascension", DaysFromEasterToAscension},
	{"Pentecost", DaysFromEasterToPentecost},
}

var easternFeasts = []feastOffset{
	{"Clean Monday", DaysFromEasterToCleanMonday},
	{"Palm Sunday", DaysFromEasterToPalmSunday},
	{"Good Friday", DaysFromEasterToGoodFriday},
	{"Easter Sunday", 0},
	{"Ascension", DaysFromEasterToAscension},
	{"Pentecost", DaysFromEasterToPentecost},
}

// EasterOf returns the Gregorian date of Easter in the given tradition.
func EasterOf(tradition Tradition, year int) (Date, error) {
	switch tradition {
	case Western:
		return WesternEaster(year)
	case Eastern:
		julian, err := EasternEaster(year)
		if err != nil {
			return Date{}, err
		}
		return julian.ToGregorian()
	default:
		return Date{}, fmt.Errorf("unknown tradition %q", tradition)
	}
}

// Feasts returns the movable feasts of the given tradition and year in
// chronological order, all on the Gregorian calendar.
func Feasts(tradition Tradition, year int) ([]Feast, error) {
	easter, err := EasterOf(tradition, year)
	if err != nil {
		return nil, err
	}

	offsets := westernFeasts
	if tradition == Eastern {
		offsets = easternFeasts
	}

	feasts := make([]Feast, 0, len(offsets))
	for _, f := range offsets {
		date, err := easter.AddDays(f.offset)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", f.name, year, err)
		}
		feasts = append(feasts, Feast{Name: f.name, Date: date})
	}
	return feasts, nil
}
