package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Conversion is the response for the convert endpoints and the date part
// of /today.
type Conversion struct {
	Standard struct {
		Date    string `json:"date"`
		Weekday string `json:"weekday"`
	} `json:"standard"`
	Tredeco struct {
		Year    int    `json:"year"`
		Kind    string `json:"kind"`
		Weekday string `json:"weekday"`
		Label   string `json:"label"`
	} `json:"tredeco"`
}

// Today is the response for /today.
type Today struct {
	Conversion
	Location struct {
		Source string `json:"source"`
		Label  string `json:"label"`
	} `json:"location"`
	Astronomy *struct {
		Sunrise       *time.Time `json:"sunrise"`
		Sunset        *time.Time `json:"sunset"`
		Moonrise      *time.Time `json:"moonrise"`
		Moonset       *time.Time `json:"moonset"`
		MoonPhaseName string     `json:"moon_phase_name"`
	} `json:"astronomy"`
}

// Year is the response for /years/{year}.
type Year struct {
	Year   int  `json:"year"`
	Leap   bool `json:"leap"`
	Months []struct {
		Name string `json:"name"`
	} `json:"months"`
	Intercalary []struct {
		Label string `json:"label"`
	} `json:"intercalary"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL, apiKey string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Tredeco API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	tr.testHealth()
	tr.testToday()
	tr.testStandardConversions()
	tr.testTredecoConversions()
	tr.testYears()
	tr.testAstronomy()
	tr.testErrorCodes()
	tr.testSavedLocation()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	resp, err := tr.get("/health")
	if err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	var health HealthResponse
	if err := json.Unmarshal(resp.Data, &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testToday() {
	tr.printSection("Today")

	resp, err := tr.get("/api/v1/today")
	if err != nil {
		tr.recordError("Today", err.Error())
		return
	}

	var data Today
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		tr.recordError("Today", err.Error())
		return
	}

	if data.Astronomy == nil {
		tr.recordError("Today", "missing astronomy")
		return
	}

	tr.recordSuccess(fmt.Sprintf("Today (%s): %s at %s, %s",
		data.Standard.Date, data.Tredeco.Label, data.Location.Label, data.Astronomy.MoonPhaseName))
	if tr.verbose && data.Astronomy.Sunrise != nil && data.Astronomy.Sunset != nil {
		fmt.Printf("    Sunrise: %s  Sunset: %s\n",
			data.Astronomy.Sunrise.Format(time.Kitchen), data.Astronomy.Sunset.Format(time.Kitchen))
	}
	if tr.verbose {
		fmt.Printf("    Moonrise: %s  Moonset: %s\n",
			clock(data.Astronomy.Moonrise), clock(data.Astronomy.Moonset))
	}
}

// clock formats t as a wall-clock time, or "none".
func clock(t *time.Time) string {
	if t == nil {
		return "none"
	}
	return t.Format(time.Kitchen)
}

func (tr *TestRunner) testStandardConversions() {
	tr.printSection("Standard -> Tredeco")

	testCases := []struct {
		date        string
		want        string
		description string
	}{
		{"2024-03-01", "1 Primo 2024", "First day of the year"},
		{"2024-03-28", "28 Primo 2024", "Last day of the first month"},
		{"2024-03-29", "1 Secundo 2024", "Second month"},
		{"2024-01-15", "13 Duodeco 2023", "January belongs to the previous year"},
		{"2024-02-27", "28 Tredeco 2023", "Last month day of 2023"},
		{"2024-02-28", "Nilo 2023", "Nilo"},
		{"2024-02-29", "Bix 2023", "Bix in a leap year"},
		{"2025-02-28", "Nilo 2024", "Nilo without Bix"},
		{"2000-02-29", "Bix 1999", "Century leap year"},
	}

	for _, tc := range testCases {
		tr.checkConversion("/api/v1/convert/standard/"+tc.date, tc.date, tc.want, tc.description)
	}
}

func (tr *TestRunner) testTredecoConversions() {
	tr.printSection("Tredeco -> Standard")

	testCases := []struct {
		path        string
		wantDate    string
		want        string
		description string
	}{
		{"2024/0/1", "2024-03-01", "1 Primo 2024", "Month index"},
		{"2024/primo/1", "2024-03-01", "1 Primo 2024", "Month name"},
		{"2024/12/28", "2025-02-27", "28 Tredeco 2024", "Last month day"},
		{"2024/13/1", "2025-02-28", "Nilo 2024", "Nilo selector"},
		{"2023/14/1", "2024-02-29", "Bix 2023", "Bix selector"},
		{"2023/bix/1", "2024-02-29", "Bix 2023", "Bix by name"},
	}

	for _, tc := range testCases {
		tr.checkConversion("/api/v1/convert/tredeco/"+tc.path, tc.wantDate, tc.want, tc.description)
	}
}

func (tr *TestRunner) checkConversion(path, wantDate, want, description string) {
	resp, err := tr.get(path)
	if err != nil {
		tr.recordError(path, err.Error())
		return
	}

	var data Conversion
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		tr.recordError(path, err.Error())
		return
	}

	if data.Standard.Date != wantDate || data.Tredeco.Label != want {
		tr.recordError(path, fmt.Sprintf("Expected %s = %s, got %s = %s",
			wantDate, want, data.Standard.Date, data.Tredeco.Label))
		return
	}

	tr.recordSuccess(fmt.Sprintf("%s = %s, %s (%s)",
		data.Standard.Date, data.Tredeco.Label, data.Tredeco.Weekday, description))
}

func (tr *TestRunner) testYears() {
	tr.printSection("Year Tables")

	testCases := []struct {
		year        int
		leap        bool
		intercalary int
	}{
		{2023, true, 2},
		{2024, false, 1},
		{2099, false, 1},
	}

	for _, tc := range testCases {
		resp, err := tr.get(fmt.Sprintf("/api/v1/years/%d", tc.year))
		if err != nil {
			tr.recordError(fmt.Sprint(tc.year), err.Error())
			continue
		}

		var data Year
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			tr.recordError(fmt.Sprint(tc.year), err.Error())
			continue
		}

		if data.Leap != tc.leap || len(data.Months) != 13 || len(data.Intercalary) != tc.intercalary {
			tr.recordError(fmt.Sprint(tc.year), fmt.Sprintf("leap=%v months=%d intercalary=%d",
				data.Leap, len(data.Months), len(data.Intercalary)))
			continue
		}

		tr.recordSuccess(fmt.Sprintf("%d: leap=%v, %d intercalary day(s)", tc.year, data.Leap, len(data.Intercalary)))
	}
}

func (tr *TestRunner) testAstronomy() {
	tr.printSection("Astronomy")

	for _, query := range []string{"", "?city=krakow", "?lat=69.65&lon=18.96"} {
		path := "/api/v1/astronomy/2024-06-21" + query
		if _, err := tr.get(path); err != nil {
			tr.recordError(path, err.Error())
			continue
		}
		tr.recordSuccess("Astronomy " + path)
	}
}

func (tr *TestRunner) testErrorCodes() {
	tr.printSection("Error Codes")

	testCases := []struct {
		path string
		code string
	}{
		{"/api/v1/convert/standard/invalid", "INVALID_ARGUMENT"},
		{"/api/v1/convert/tredeco/2024/14/1", "NO_BIX"},
		{"/api/v1/convert/tredeco/2024/5/29", "INVALID_DAY"},
		{"/api/v1/convert/tredeco/2024/13/2", "INVALID_DAY"},
		{"/api/v1/convert/tredeco/2024/15/1", "INVALID_MONTH"},
		{"/api/v1/years/0", "OUT_OF_RANGE"},
		{"/api/v1/astronomy/2024-06-21?city=atlantis", "UNKNOWN_CITY"},
	}

	for _, tc := range testCases {
		resp, status, err := tr.do(http.MethodGet, tc.path, nil)
		if err != nil {
			tr.recordError(tc.path, err.Error())
			continue
		}
		if status != http.StatusBadRequest || resp.Error == nil || resp.Error.Code != tc.code {
			tr.recordError(tc.path, fmt.Sprintf("Expected 400 %s, got %d %+v", tc.code, status, resp.Error))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s -> %s", tc.path, tc.code))
	}
}

func (tr *TestRunner) testSavedLocation() {
	tr.printSection("Saved Location")

	_, status, err := tr.do(http.MethodPut, "/api/v1/location", map[string]string{"city": "gdansk"})
	if err != nil {
		tr.recordError("PUT location", err.Error())
		return
	}
	if status == http.StatusUnauthorized {
		tr.recordError("PUT location", "unauthorized; pass -key")
		return
	}
	if status != http.StatusOK {
		tr.recordError("PUT location", fmt.Sprintf("HTTP %d", status))
		return
	}
	tr.recordSuccess("Saved Gdańsk")

	resp, status, err := tr.do(http.MethodGet, "/api/v1/today", nil)
	if err != nil || status != http.StatusOK {
		tr.recordError("Today (saved)", fmt.Sprintf("HTTP %d %v", status, err))
	} else {
		var data Today
		if err := json.Unmarshal(resp.Data, &data); err != nil || data.Location.Source != "saved" {
			tr.recordError("Today (saved)", fmt.Sprintf("location %+v %v", data.Location, err))
		} else {
			tr.recordSuccess("Today uses the saved location")
		}
	}

	if _, status, err := tr.do(http.MethodDelete, "/api/v1/location", nil); err != nil || status != http.StatusOK {
		tr.recordError("DELETE location", fmt.Sprintf("HTTP %d %v", status, err))
		return
	}
	tr.recordSuccess("Deleted saved location")

	if _, status, _ := tr.do(http.MethodGet, "/api/v1/location", nil); status != http.StatusNotFound {
		tr.recordError("GET location", fmt.Sprintf("Expected 404 after delete, got %d", status))
		return
	}
	tr.recordSuccess("Location gone after delete")
}

// =============================================================================
// Helper Methods
// =============================================================================

func (tr *TestRunner) get(path string) (*APIResponse, error) {
	resp, status, err := tr.do(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	if !resp.Success {
		errMsg := "unknown error"
		if resp.Error != nil {
			errMsg = resp.Error.Message
		}
		return nil, fmt.Errorf("API error (HTTP %d): %s", status, errMsg)
	}

	return resp, nil
}

// do sends a request with the runner's API key and decodes the envelope.
func (tr *TestRunner) do(method, path string, body any) (*APIResponse, int, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal error: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, tr.baseURL+path, bodyReader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if tr.apiKey != "" {
		req.Header.Set("X-API-Key", tr.apiKey)
	}

	httpResp, err := tr.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, httpResp.StatusCode, fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return nil, httpResp.StatusCode, fmt.Errorf("parse error: %w", err)
	}

	return &apiResp, httpResp.StatusCode, nil
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
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
	}

	if tr.errorCount == 0 {
		fmt.Println("All tests passed! ✓")
	} else {
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	apiKey := flag.String("key", os.Getenv("API_KEY"), "API key for the saved-location endpoints")
	verbose := flag.Bool("v", false, "Verbose output (show sunrise and sunset)")
	flag.Parse()

	// Check if server is reachable
	client := &http.Client{Timeout: 2 * time.Second}
	if _, err := client.Get(*baseURL + "/health"); err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}

	runner := NewTestRunner(*baseURL, *apiKey, *verbose)
	runner.Run()

	// Exit with error code if tests failed
	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
