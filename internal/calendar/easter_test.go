package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestWesternEaster(t *testing.T) {
	tests := []struct {
		year int
		want Date
	}{
		{1583, MustDate(1583, time.April, 10)},
		{1818, MustDate(1818, time.March, 22)},
		{1943, MustDate(1943, time.April, 25)},
		{2000, MustDate(2000, time.April, 23)},
		{2017, MustDate(2017, time.April, 16)},
		{2024, MustDate(2024, time.March, 31)},
		{2025, MustDate(2025, time.April, 20)},
		{2026, MustDate(2026, time.April, 5)},
		{2285, MustDate(2285, time.March, 22)},
	}

	for _, tt := range tests {
		got, err := WesternEaster(tt.year)
		if err != nil {
			t.Fatalf("WesternEaster(%d) error = %v", tt.year, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("WesternEaster(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestWesternEaster_SundayInSpring(t *testing.T) {
	for year := GregorianReformYear; year <= 4099; year++ {
		easter, err := WesternEaster(year)
		if err != nil {
			t.Fatalf("WesternEaster(%d) error = %v", year, err)
		}
		if easter.Month() != time.March && easter.Month() != time.April {
			t.Errorf("WesternEaster(%d) = %v, not in March or April", year, easter)
		}
		if easter.Before(MustDate(year, time.March, 22)) || easter.After(MustDate(year, time.April, 25)) {
			t.Errorf("WesternEaster(%d) = %v, outside 22 March - 25 April", year, easter)
		}
		if easter.Weekday() != time.Sunday {
			t.Errorf("WesternEaster(%d) = %v is a %v", year, easter, easter.Weekday())
		}
	}
}

func TestWesternEaster_OutOfRange(t *testing.T) {
	if _, err := WesternEaster(MaxYear + 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("WesternEaster(MaxYear+1) error = %v, want ErrOutOfRange", err)
	}
}

func TestEasternEaster(t *testing.T) {
	tests := []struct {
		year          int
		wantJulian    JulianDate
		wantGregorian Date
	}{
		{1900, mustJulianDate(1900, time.April, 9), MustDate(1900, time.April, 22)},
		{2017, mustJulianDate(2017, time.April, 3), MustDate(2017, time.April, 16)},
		{2023, mustJulianDate(2023, time.April, 3), MustDate(2023, time.April, 16)},
		{2024, mustJulianDate(2024, time.April, 22), MustDate(2024, time.May, 5)},
		{2025, mustJulianDate(2025, time.April, 7), MustDate(2025, time.April, 20)},
	}

	for _, tt := range tests {
		got, err := EasternEaster(tt.year)
		if err != nil {
			t.Fatalf("EasternEaster(%d) error = %v", tt.year, err)
		}
		if !got.Equal(tt.wantJulian) {
			t.Errorf("EasternEaster(%d) = %v, want %v", tt.year, got, tt.wantJulian)
		}
		g, err := got.ToGregorian()
		if err != nil {
			t.Fatalf("ToGregorian() error = %v", err)
		}
		if !g.Equal(tt.wantGregorian) {
			t.Errorf("EasternEaster(%d).ToGregorian() = %v, want %v", tt.year, g, tt.wantGregorian)
		}
	}
}

func TestEasternEaster_SundayInSpring(t *testing.T) {
	for year := -500; year <= 4099; year++ {
		easter, err := EasternEaster(year)
		if err != nil {
			t.Fatalf("EasternEaster(%d) error = %v", year, err)
		}
		if easter.Month() != time.March && easter.Month() != time.April {
			t.Errorf("EasternEaster(%d) = %v, not in March or April", year, easter)
		}
		g, err := easter.ToGregorian()
		if err != nil {
			t.Fatalf("EasternEaster(%d).ToGregorian() error = %v", year, err)
		}
		if g.Weekday() != time.Sunday {
			t.Errorf("EasternEaster(%d) = %v (gregorian %v) is a %v", year, easter, g, g.Weekday())
		}
	}
}

func TestEastersCoincide(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2017, true},
		{2025, true},
		{2024, false},
		{2026, false},
	}

	for _, tt := range tests {
		western, err := WesternEaster(tt.year)
		if err != nil {
			t.Fatalf("WesternEaster(%d) error = %v", tt.year, err)
		}
		eastern, err := EasterOf(Eastern, tt.year)
		if err != nil {
			t.Fatalf("EasterOf(Eastern, %d) error = %v", tt.year, err)
		}
		if got := western.Equal(eastern); got != tt.want {
			t.Errorf("%d: western %v, eastern %v, coincide = %v, want %v", tt.year, western, eastern, got, tt.want)
		}
	}
}

func TestEaster_Idempotent(t *testing.T) {
	for _, year := range []int{1583, 1900, 2000, 2025, 4099} {
		w1, _ := WesternEaster(year)
		w2, _ := WesternEaster(year)
		if w1 != w2 {
			t.Errorf("WesternEaster(%d) not idempotent: %v != %v", year, w1, w2)
		}
		e1, _ := EasternEaster(year)
		e2, _ := EasternEaster(year)
		if e1 != e2 {
			t.Errorf("EasternEaster(%d) not idempotent: %v != %v", year, e1, e2)
		}
	}
}

func BenchmarkWesternEaster(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = WesternEaster(1583 + i%2500)
	}
}

func BenchmarkEasternEasterToGregorian(b *testing.B) {
	for i := 0; i < b.N; i++ {
		j, _ := EasternEaster(1583 + i%2500)
		_, _ = j.ToGregorian()
	}
}
