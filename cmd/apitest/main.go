// Command apitest runs a smoke suite against a running Easter API server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/zapponejosh/easter-api/internal/api"
)

// envelope is api.Response with the payload left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *api.ErrorInfo  `json:"error,omitempty"`
}

// =============================================================================
// Fixtures
// =============================================================================

type easterFixture struct {
	year             int
	western          string
	easternGregorian string
}

var easterFixtures = []easterFixture{
	{1818, "1818-03-22", "1818-04-26"},
	{1943, "1943-04-25", "1943-04-25"},
	{2000, "2000-04-23", "2000-04-30"},
	{2024, "2024-03-31", "2024-05-05"},
	{2025, "2025-04-20", "2025-04-20"},
	{2026, "2026-04-05", "2026-04-12"},
	{2285, "2285-03-22", "2285-04-26"},
}

type conversionFixture struct {
	julian    string
	gregorian string
}

var conversionFixtures = []conversionFixture{
	{"1582/10/5", "1582-10-15"},
	{"1900/2/28", "1900-03-12"},
	{"1900/2/29", "1900-03-13"},
	{"2000/2/29", "2000-03-13"},
	{"-4712/1/1", "-4713-11-24"},
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Easter API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	tr.testHealth()
	tr.testEasterDates()
	tr.testEasterRange()
	tr.testFeasts()
	tr.testJulianConversion()
	tr.testErrorCases()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health map[string]string
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health["status"] == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health["status"]))
	}
}

func (tr *TestRunner) testEasterDates() {
	tr.printSection("Easter Dates")

	for _, f := range easterFixtures {
		name := fmt.Sprintf("Easter %d", f.year)

		var data api.EasterResponse
		if err := tr.getData(fmt.Sprintf("/api/v1/easter/%d", f.year), &data); err != nil {
			tr.recordError(name, err.Error())
			continue
		}

		switch {
		case data.Western == nil || data.Western.Date != f.western:
			tr.recordError(name, fmt.Sprintf("western = %+v, want %s", data.Western, f.western))
		case data.Eastern.Gregorian == nil || data.Eastern.Gregorian.Date != f.easternGregorian:
			tr.recordError(name, fmt.Sprintf("eastern = %+v, want %s", data.Eastern.Gregorian, f.easternGregorian))
		case data.SameDay != (f.western == f.easternGregorian):
			tr.recordError(name, fmt.Sprintf("same_day = %v", data.SameDay))
		default:
			tr.recordSuccess(fmt.Sprintf("%s: western %s, eastern %s (Julian %s)",
				name, data.Western.Formatted, data.Eastern.Gregorian.Formatted, data.Eastern.Julian.Formatted))
		}

		if tr.verbose {
			tr.printSummaryText(data.Summary)
		}
	}

	var early api.EasterResponse
	if err := tr.getData("/api/v1/easter/1000", &early); err != nil {
		tr.recordError("Easter 1000", err.Error())
	} else if !early.JulianOnly || early.Western != nil {
		tr.recordError("Easter 1000", "expected a Julian-only result")
	} else {
		tr.recordSuccess(fmt.Sprintf("Easter 1000 is Julian only: %s", early.Eastern.Julian.Formatted))
	}
}

func (tr *TestRunner) testEasterRange() {
	tr.printSection("Easter Range (2020-2030)")

	var data api.RangeResponse
	if err := tr.getData("/api/v1/easter?start=2020&end=2030", &data); err != nil {
		tr.recordError("Range", err.Error())
		return
	}

	if data.Count != 11 {
		tr.recordError("Range", fmt.Sprintf("count = %d, want 11", data.Count))
		return
	}

	same := 0
	for _, r := range data.Results {
		if r.SameDay {
			same++
		}
	}
	tr.recordSuccess(fmt.Sprintf("Range returned %d years, %d with a shared Easter", data.Count, same))
}

func (tr *TestRunner) testFeasts() {
	tr.printSection("Movable Feasts 2025")

	for _, tradition := range []string{"western", "eastern"} {
		var data api.FeastsResponse
		if err := tr.getData("/api/v1/easter/2025/feasts?tradition="+tradition, &data); err != nil {
			tr.recordError(tradition+" feasts", err.Error())
			continue
		}
		if len(data.Feasts) == 0 {
			tr.recordError(tradition+" feasts", "no feasts returned")
			continue
		}

		tr.recordSuccess(fmt.Sprintf("%s: %d feasts", tradition, len(data.Feasts)))
		if tr.verbose {
			for _, f := range data.Feasts {
				fmt.Printf("      - %-14s %s (%s)\n", f.Name, f.Formatted, f.Weekday)
			}
		}
	}
}

func (tr *TestRunner) testJulianConversion() {
	tr.printSection("Julian to Gregorian")

	for _, f := range conversionFixtures {
		var data api.ConversionResponse
		if err := tr.getData("/api/v1/julian/"+f.julian, &data); err != nil {
			tr.recordError(f.julian, err.Error())
			continue
		}

		if data.Gregorian == nil || data.Gregorian.Date != f.gregorian {
			tr.recordError(f.julian, fmt.Sprintf("gregorian = %+v, want %s", data.Gregorian, f.gregorian))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s (Julian) = %s (Gregorian), difference %d days",
			data.Julian.Formatted, data.Gregorian.Formatted, data.SecularDifference))
	}
}

func (tr *TestRunner) testErrorCases() {
	tr.printSection("Error Cases")

	cases := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"Non-numeric year", "/api/v1/easter/abc", http.StatusBadRequest, api.CodeBadRequest},
		{"Year before first Easter", "/api/v1/easter/20", http.StatusUnprocessableEntity, api.CodeBeforeFirstEaster},
		{"Missing range end", "/api/v1/easter?start=2025", http.StatusBadRequest, api.CodeBadRequest},
		{"Unknown tradition", "/api/v1/easter/2025/feasts?tradition=coptic", http.StatusBadRequest, api.CodeBadRequest},
		{"Invalid Julian date", "/api/v1/julian/2001/2/29", http.StatusBadRequest, api.CodeInvalidDate},
		{"Unknown route", "/api/v1/lectionary", http.StatusNotFound, api.CodeNotFound},
	}

	for _, c := range cases {
		status, env, err := tr.fetch(c.path)
		if err != nil {
			tr.recordError(c.name, err.Error())
			continue
		}
		if status != c.status || env.Error == nil || env.Error.Code != c.code {
			tr.recordError(c.name, fmt.Sprintf("got %d %+v, want %d %s", status, env.Error, c.status, c.code))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s rejected (%d %s)", c.name, status, c.code))
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

// fetch performs a GET and decodes the envelope regardless of status.
func (tr *TestRunner) fetch(path string) (int, *envelope, error) {
	resp, err := tr.client.Get(tr.baseURL + path)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read error: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("parse error: %w", err)
	}
	return resp.StatusCode, &env, nil
}

// getData performs a GET that must succeed and decodes its data into target.
func (tr *TestRunner) getData(path string, target interface{}) error {
	_, env, err := tr.fetch(path)
	if err != nil {
		return err
	}

	if !env.Success {
		errMsg := "unknown error"
		if env.Error != nil {
			errMsg = env.Error.Message
		}
		return fmt.Errorf("API error: %s", errMsg)
	}

	return json.Unmarshal(env.Data, target)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) printSummaryText(summary string) {
	for _, line := range strings.Split(summary, "\n") {
		fmt.Printf("      %s\n", line)
	}
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
		return
	}

	fmt.Println("All tests passed! ✓")
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output (show summaries and feast lists)")
	flag.Parse()

	// Check if server is reachable
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *verbose)
	runner.Run()

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
