package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/zapponejosh/easter-api/internal/calendar"
	"github.com/zapponejosh/easter-api/internal/easter"
)

func TestReadYear(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantErr  error
		wantEcho string
	}{
		{"simple", "2025\r", "2025", nil, "2025\n"},
		{"backspace", "20266\x7f\r", "2026", nil, "20266\b \b\n"},
		{"control chars ignored", "20\x1b25\r", "2025", nil, "2025\n"},
		{"ctrl-c", "20\x03", "", io.EOF, "20"},
		{"ctrl-d on empty line", "\x04", "", io.EOF, ""},
		{"input ends", "20", "", io.EOF, "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var echo bytes.Buffer
			got, err := readYear(strings.NewReader(tt.input), &echo, easter.MaxYearDigits)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("readYear() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("readYear() = %q, want %q", got, tt.want)
			}
			if echo.String() != tt.wantEcho {
				t.Errorf("echo = %q, want %q", echo.String(), tt.wantEcho)
			}
		})
	}
}

func TestReadYear_LengthLimit(t *testing.T) {
	var echo bytes.Buffer
	got, err := readYear(strings.NewReader("1234567890\r"), &echo, 8)
	if err != nil {
		t.Fatalf("readYear() error = %v", err)
	}
	if got != "12345678" {
		t.Errorf("readYear() = %q, want %q", got, "12345678")
	}
	if n := strings.Count(echo.String(), easter.LengthLimitMessage(8)); n != 2 {
		t.Errorf("limit notice shown %d times, want 2: %q", n, echo.String())
	}
}

func TestBatch(t *testing.T) {
	calc := easter.NewCalculator()
	today := func() calendar.Date { return calendar.MustDate(2026, 10, 19) }

	var out bytes.Buffer
	if err := batch(strings.NewReader("2025\n\n  abc \n20\n"), &out, calc, today); err != nil {
		t.Fatalf("batch() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Western Easter was on 20 April 2025 (Gregorian date).",
		"Both Easters were celebrated on the same day.",
		easter.InvalidInputMessage,
		"This application returns results for years starting with AD 26.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestNewlineWriter(t *testing.T) {
	var buf bytes.Buffer
	n, err := newlineWriter{&buf}.Write([]byte("a\nb\n"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 4 {
		t.Errorf("Write() = %d, want 4", n)
	}
	if buf.String() != "a\r\nb\r\n" {
		t.Errorf("output = %q, want %q", buf.String(), "a\r\nb\r\n")
	}
}
