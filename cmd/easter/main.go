// Command easter prints the Western and Eastern Easter dates for a year.
//
// Usage:
//
//	easter -year 2025
//	easter 2025 2026
//	echo 2025 | easter
//	easter              (interactive prompt on a terminal)
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"golang.org/x/term"

	"github.com/zapponejosh/easter-api/internal/calendar"
	"github.com/zapponejosh/easter-api/internal/easter"
)

const prompt = "Enter the year: "

func main() {
	year := flag.String("year", "", "Year to compute (1 to 8 digits)")
	tz := flag.String("tz", "Local", "IANA time zone used to decide whether an Easter has passed")
	earliest := flag.Int("earliest", easter.DefaultEarliestYear, "First year with an Easter")
	gregorianStart := flag.Int("gregorian-start", easter.DefaultGregorianStartYear, "First year Western Easter is reported")
	flag.Parse()

	loc, err := time.LoadLocation(*tz)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown time zone %q: %v\n", *tz, err)
		os.Exit(2)
	}

	calc := &easter.Calculator{
		EarliestYear:       *earliest,
		GregorianStartYear: *gregorianStart,
	}
	today := func() calendar.Date { return calendar.Today(loc) }

	inputs := flag.Args()
	if *year != "" {
		inputs = append([]string{*year}, inputs...)
	}

	switch {
	case len(inputs) > 0:
		for _, in := range inputs {
			fmt.Println(calc.Describe(in, today()))
		}
	case term.IsTerminal(int(os.Stdin.Fd())):
		if err := interactive(calc, today); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := batch(os.Stdin, os.Stdout, calc, today); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// batch describes one year per non-empty input line.
func batch(r io.Reader, w io.Writer, calc *easter.Calculator, today func() calendar.Date) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fmt.Fprintln(w, calc.Describe(line, today()))
	}
	return scanner.Err()
}

// interactive prompts for years until the input ends or the user quits.
func interactive(calc *easter.Calculator, today func() calendar.Date) error {
	fd := int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("set raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	// Raw mode disables output post-processing.
	out := newlineWriter{os.Stdout}
	in := bufio.NewReader(os.Stdin)

	for {
		fmt.Fprint(out, prompt)
		line, err := readYear(in, out, easter.MaxYearDigits)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		fmt.Fprintln(out, calc.Describe(line, today()))
		fmt.Fprintln(out)
	}
}

// readYear reads one line of at most limit characters from a terminal in
// raw mode, echoing to w. Extra characters are dropped with a notice.
// Ctrl+C and Ctrl+D on an empty line return io.EOF.
func readYear(r io.RuneReader, w io.Writer, limit int) (string, error) {
	var buf []rune

	for {
		char, _, err := r.ReadRune()
		if err != nil {
			return "", err
		}

		switch char {
		case '\n', '\r':
			fmt.Fprintln(w)
			return string(buf), nil
		case 127, 8: // Backspace or Delete
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				fmt.Fprint(w, "\b \b")
			}
		case 3: // Ctrl+C
			return "", io.EOF
		case 4: // Ctrl+D
			if len(buf) == 0 {
				return "", io.EOF
			}
		default:
			if char < 32 || char > 126 {
				continue
			}
			if len(buf) >= limit {
				fmt.Fprintf(w, "\n%s\n%s%s", easter.LengthLimitMessage(limit), prompt, string(buf))
				continue
			}
			buf = append(buf, char)
			fmt.Fprint(w, string(char))
		}
	}
}

// newlineWriter translates "\n" to "\r\n" for a terminal in raw mode.
type newlineWriter struct {
	w io.Writer
}

func (n newlineWriter) Write(p []byte) (int, error) {
	s := strings.ReplaceAll(string(p), "\n", "\r\n")
	if _, err := io.WriteString(n.w, s); err != nil {
		return 0, err
	}
	return len(p), nil
}
