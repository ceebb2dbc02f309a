package calendar

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewDate(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		wantErr error
	}{
		{"ordinary day", 2025, time.April, 20, nil},
		{"gregorian leap day", 2024, time.February, 29, nil},
		{"leap day in 400-year", 2000, time.February, 29, nil},
		{"no leap day in 100-year", 1900, time.February, 29, ErrInvalidDate},
		{"no leap day in common year", 2023, time.February, 29, ErrInvalidDate},
		{"april 31", 2025, time.April, 31, ErrInvalidDate},
		{"day zero", 2025, time.April, 0, ErrInvalidDate},
		{"month 13", 2025, 13, 1, ErrInvalidDate},
		{"month zero", 2025, 0, 1, ErrInvalidDate},
		{"year zero", 0, time.February, 29, nil},
		{"bc year", -1000, time.February, 28, nil},
		{"max year", MaxYear, time.December, 31, nil},
		{"beyond max year", MaxYear + 1, time.January, 1, ErrOutOfRange},
		{"beyond min year", MinYear - 1, time.January, 1, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDate(tt.year, tt.month, tt.day)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewDate(%d, %d, %d) error = %v, want %v", tt.year, tt.month, tt.day, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDate(%d, %d, %d) error = %v", tt.year, tt.month, tt.day, err)
			}
			if d.Year() != tt.year || d.Month() != tt.month || d.Day() != tt.day {
				t.Errorf("NewDate() = %v, want %d/%d/%d", d, tt.year, tt.month, tt.day)
			}
		})
	}
}

func TestDate_AddDays(t *testing.T) {
	tests := []struct {
		name  string
		start Date
		days  int
		want  Date
	}{
		{"same month", MustDate(2025, time.April, 7), 13, MustDate(2025, time.April, 20)},
		{"across month", MustDate(1900, time.February, 28), 13, MustDate(1900, time.March, 13)},
		{"across year", MustDate(1899, time.December, 31), 12, MustDate(1900, time.January, 12)},
		{"negative", MustDate(4, time.January, 1), -2, MustDate(3, time.December, 30)},
		{"across year zero", MustDate(1, time.January, 1), -1, MustDate(0, time.December, 31)},
		{"zero", MustDate(2025, time.April, 20), 0, MustDate(2025, time.April, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddDays(tt.days)
			if err != nil {
				t.Fatalf("AddDays(%d) error = %v", tt.days, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("%v.AddDays(%d) = %v, want %v", tt.start, tt.days, got, tt.want)
			}
		})
	}
}

func TestDate_AddDays_OutOfRange(t *testing.T) {
	_, err := MustDate(MaxYear, time.December, 31).AddDays(1)
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("AddDays() past MaxYear error = %v, want ErrOutOfRange", err)
	}

	_, err = MustDate(MinYear, time.January, 1).AddDays(-1)
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("AddDays() before MinYear error = %v, want ErrOutOfRange", err)
	}
}

func TestDate_Compare(t *testing.T) {
	a := MustDate(2024, time.March, 31)
	b := MustDate(2024, time.May, 5)

	if !a.Before(b) || a.After(b) || a.Equal(b) {
		t.Errorf("%v vs %v: Before=%v After=%v Equal=%v", a, b, a.Before(b), a.After(b), a.Equal(b))
	}
	if b.Compare(a) != 1 {
		t.Errorf("Compare() = %d, want 1", b.Compare(a))
	}
	if a.Compare(MustDate(2024, time.March, 31)) != 0 {
		t.Error("Compare() of equal dates should be 0")
	}
	if !MustDate(-1, time.December, 31).Before(MustDate(0, time.January, 1)) {
		t.Error("year -1 should sort before year 0")
	}
}

func TestDate_Formatting(t *testing.T) {
	tests := []struct {
		date          Date
		wantFormatted string
		wantISO       string
	}{
		{MustDate(2025, time.April, 20), "20 April 2025", "2025-04-20"},
		{MustDate(1583, time.April, 10), "10 April 1583", "1583-04-10"},
		{MustDate(33, time.January, 1), "1 January 33", "0033-01-01"},
		{MustDate(-1000, time.February, 19), "19 February -1000", "-1000-02-19"},
		{MustDate(-5, time.December, 9), "9 December -5", "-0005-12-09"},
		{MustDate(0, time.March, 1), "1 March 0", "0000-03-01"},
		{MustDate(12345, time.January, 1), "1 January 12345", "+12345-01-01"},
		{MustDate(-12345, time.January, 1), "1 January -12345", "-12345-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.wantISO, func(t *testing.T) {
			if got := tt.date.Formatted(); got != tt.wantFormatted {
				t.Errorf("Formatted() = %q, want %q", got, tt.wantFormatted)
			}
			if got := tt.date.String(); got != tt.wantISO {
				t.Errorf("String() = %q, want %q", got, tt.wantISO)
			}
			parsed, err := ParseDate(tt.wantISO)
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.wantISO, err)
			}
			if !parsed.Equal(tt.date) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.wantISO, parsed, tt.date)
			}
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	invalid := []string{
		"", "2025-4-20", "20-04-2025", "1900-02-29", "2025-13-01", "abcd-ef-gh",
		"-0000-01-01",   // signed zero year
		"12345-01-01",   // expanded year without sign
		"+2025-04-20",   // sign on a four-digit year
		"+000012-01-01", // padded expanded year
		"-00005-12-09",  // padded negative year
	}
	for _, s := range invalid {
		if _, err := ParseDate(s); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", s, err)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	payload := struct {
		Easter Date `json:"easter"`
	}{MustDate(2025, time.April, 20)}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(data), `{"easter":"2025-04-20"}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestDate_Weekday(t *testing.T) {
	if got := MustDate(2025, time.April, 20).Weekday(); got != time.Sunday {
		t.Errorf("Weekday() = %v, want Sunday", got)
	}
}

func TestDateOf(t *testing.T) {
	athens := time.FixedZone("EET", 2*60*60)
	ts := time.Date(2025, time.April, 19, 23, 30, 0, 0, time.UTC).In(athens)

	if got, want := DateOf(ts), MustDate(2025, time.April, 20); !got.Equal(want) {
		t.Errorf("DateOf() = %v, want %v", got, want)
	}
}

func TestIsGregorianLeapYear(t *testing.T) {
	tests := map[int]bool{
		2024: true, 2023: false, 2000: true, 1900: false,
		0: true, -100: false, -400: true, -4: true,
	}
	for year, want := range tests {
		if got := IsGregorianLeapYear(year); got != want {
			t.Errorf("IsGregorianLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(time.January); got != "January" {
		t.Errorf("MonthName(1) = %q, want January", got)
	}
	if got := MonthName(time.December); got != "December" {
		t.Errorf("MonthName(12) = %q, want December", got)
	}
	if got := MonthName(13); got != "%!Month(13)" {
		t.Errorf("MonthName(13) = %q, want %q", got, "%!Month(13)")
	}
}
