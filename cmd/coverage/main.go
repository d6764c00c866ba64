// Command coverage walks every standard day in a range of years and checks
// that the Tredeco conversion round-trips and that every Tredeco year is
// covered exactly once. With -url it also checks a running API agrees with
// the local engine.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/zapponejosh/tredeco-api/internal/tredeco"
)

// APIResponse matches the API response structure
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// conversion is the part of the API's conversion view checked here.
type conversion struct {
	Tredeco struct {
		Label string `json:"label"`
	} `json:"tredeco"`
}

// TestResult holds the result for a single date
type TestResult struct {
	Date    string `json:"date"`
	Tredeco string `json:"tredeco"`
	Kind    string `json:"kind"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// dayKey identifies a Tredeco day for overlap detection.
type dayKey struct {
	year  int
	month int
	day   int
}

func main() {
	baseURL := flag.String("url", "", "Base URL of a running API to compare against (optional)")
	startYear := flag.Int("start", 2024, "Start year")
	years := flag.Int("years", 4, "Number of years to test")
	verbose := flag.Bool("v", false, "Verbose output (show each date)")
	outputFile := flag.String("o", "", "Output results to JSON file")
	flag.Parse()

	endYear := *startYear + *years - 1

	fmt.Println("================================================================")
	fmt.Println("Tredeco - Full Coverage Test")
	fmt.Println("================================================================")
	fmt.Printf("Date Range:  %d-01-01 to %d-12-31\n", *startYear, endYear)
	fmt.Printf("Total Years: %d\n", *years)

	var client *http.Client
	if *baseURL != "" {
		fmt.Printf("Base URL:    %s\n", *baseURL)
		client = &http.Client{Timeout: 5 * time.Second}
		if _, err := client.Get(*baseURL + "/health"); err != nil {
			fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
			fmt.Println("Make sure the API server is running.")
			os.Exit(1)
		}
	}
	fmt.Println()

	results, seen := testAllDates(*startYear, endYear, *verbose, func(dateStr string) (string, error) {
		if client == nil {
			return "", nil
		}
		return remoteLabel(client, *baseURL, dateStr)
	})

	analysis := analyzeResults(results)
	analysis.Partition = checkPartition(seen, *startYear, endYear-1)

	printSummary(analysis, *startYear, endYear)
	printPartition(analysis)
	printAllFailures(analysis)

	if *outputFile != "" {
		saveResults(*outputFile, analysis)
	}

	if analysis.TotalFailed > 0 || len(analysis.Partition) > 0 {
		os.Exit(1)
	}
}

// testAllDates converts every day from January 1 of startYear to December
// 31 of endYear. remote, when it returns a non-empty label, must agree with
// the local conversion. seen counts how often each Tredeco day was produced.
func testAllDates(startYear, endYear int, verbose bool, remote func(string) (string, error)) ([]TestResult, map[dayKey]int) {
	var results []TestResult
	seen := make(map[dayKey]int)

	current := time.Date(startYear, 1, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(endYear, 12, 31, 0, 0, 0, 0, time.UTC)

	for !current.After(last) {
		result := testDate(current, remote)
		results = append(results, result)

		if d, err := tredeco.StandardToTredeco(current); err == nil {
			m, day := d.Selector()
			seen[dayKey{d.Year(), m, day}]++
		}

		if verbose {
			status := "✓"
			if !result.Success {
				status = "✗"
			}
			fmt.Printf("  %s %s: %s\n", status, result.Date, result.Tredeco)
			if !result.Success {
				fmt.Printf("      Error: %s\n", result.Error)
			}
		}

		current = current.AddDate(0, 0, 1)
	}

	return results, seen
}

func testDate(date time.Time, remote func(string) (string, error)) TestResult {
	result := TestResult{Date: date.Format("2006-01-02")}

	d, err := tredeco.StandardToTredeco(date)
	if err != nil {
		result.Error = fmt.Sprintf("Conversion error: %v", err)
		return result
	}
	result.Tredeco = d.String()
	result.Kind = d.Kind().String()

	back, err := tredeco.ToStandard(d)
	if err != nil {
		result.Error = fmt.Sprintf("Reverse conversion error: %v", err)
		return result
	}
	if !back.Equal(date) {
		result.Error = fmt.Sprintf("Round trip returned %s", back.Format("2006-01-02"))
		return result
	}

	if remote != nil {
		label, err := remote(result.Date)
		if err != nil {
			result.Error = err.Error()
			return result
		}
		if label != "" && label != result.Tredeco {
			result.Error = fmt.Sprintf("API returned %q", label)
			return result
		}
	}

	result.Success = true
	return result
}

func remoteLabel(client *http.Client, baseURL, dateStr string) (string, error) {
	url := fmt.Sprintf("%s/api/v1/convert/standard/%s", baseURL, dateStr)
	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}
	if !apiResp.Success {
		errMsg := "Unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return "", errors.New(errMsg)
	}

	var conv conversion
	if err := json.Unmarshal(apiResp.Data, &conv); err != nil {
		return "", fmt.Errorf("data parse error: %w", err)
	}
	return conv.Tredeco.Label, nil
}

// checkPartition reports gaps and overlaps in the Tredeco years fully
// covered by the walk.
func checkPartition(seen map[dayKey]int, firstYear, lastYear int) []string {
	var problems []string

	for year := firstYear; year <= lastYear; year++ {
		for m := 0; m < tredeco.MonthsPerYear; m++ {
			for day := 1; day <= tredeco.DaysPerMonth; day++ {
				problems = appendCount(problems, seen[dayKey{year, m, day}],
					fmt.Sprintf("%d %s %d", day, tredeco.Month(m), year))
			}
		}
		problems = appendCount(problems, seen[dayKey{year, tredeco.SelectorNilo, 1}],
			fmt.Sprintf("Nilo %d", year))

		bix := seen[dayKey{year, tredeco.SelectorBix, 1}]
		if tredeco.IsLeapYear(year) {
			problems = appendCount(problems, bix, fmt.Sprintf("Bix %d", year))
		} else if bix > 0 {
			problems = append(problems, fmt.Sprintf("Bix %d: present in a non-leap year", year))
		}
	}

	return problems
}

func appendCount(problems []string, n int, label string) []string {
	switch {
	case n == 0:
		return append(problems, label+": gap")
	case n > 1:
		return append(problems, fmt.Sprintf("%s: overlap (%d standard days)", label, n))
	}
	return problems
}

// Analysis holds the analyzed results
type Analysis struct {
	TotalDays    int                `json:"total_days"`
	TotalSuccess int                `json:"total_success"`
	TotalFailed  int                `json:"total_failed"`
	ByYear       map[int]*YearStats `json:"by_year"`
	ByKind       map[string]int     `json:"by_kind"`
	AllFailures  []TestResult       `json:"failures"`
	Partition    []string           `json:"partition_problems"`
}

type YearStats struct {
	Year        int `json:"year"`
	TotalDays   int `json:"total_days"`
	SuccessDays int `json:"success_days"`
	FailedDays  int `json:"failed_days"`
}

func analyzeResults(results []TestResult) *Analysis {
	analysis := &Analysis{
		ByYear: make(map[int]*YearStats),
		ByKind: make(map[string]int),
	}

	for _, r := range results {
		analysis.TotalDays++

		date, _ := time.Parse("2006-01-02", r.Date)
		year := date.Year()

		if _, ok := analysis.ByYear[year]; !ok {
			analysis.ByYear[year] = &YearStats{Year: year}
		}
		analysis.ByYear[year].TotalDays++

		if r.Kind != "" {
			analysis.ByKind[r.Kind]++
		}

		if r.Success {
			analysis.TotalSuccess++
			analysis.ByYear[year].SuccessDays++
		} else {
			analysis.TotalFailed++
			analysis.ByYear[year].FailedDays++
			analysis.AllFailures = append(analysis.AllFailures, r)
		}
	}

	return analysis
}

func printSummary(analysis *Analysis, startYear, endYear int) {
	fmt.Println("================================================================")
	fmt.Println("SUMMARY")
	fmt.Println("================================================================")
	fmt.Printf("Total Days Tested: %d\n", analysis.TotalDays)
	fmt.Printf("Successful:        %d (%.1f%%)\n", analysis.TotalSuccess,
		float64(analysis.TotalSuccess)/float64(analysis.TotalDays)*100)
	fmt.Printf("Failed:            %d (%.1f%%)\n", analysis.TotalFailed,
		float64(analysis.TotalFailed)/float64(analysis.TotalDays)*100)
	fmt.Println()

	fmt.Println("By Kind:")
	kinds := make([]string, 0, len(analysis.ByKind))
	for k := range analysis.ByKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Printf("  %-7s %d\n", k, analysis.ByKind[k])
	}
	fmt.Println()

	fmt.Println("By Year:")
	for year := startYear; year <= endYear; year++ {
		if stats, ok := analysis.ByYear[year]; ok {
			status := "✓"
			if stats.FailedDays > 0 {
				status = "✗"
			}
			fmt.Printf("  %s %d: %d/%d days (%.1f%% success)\n",
				status, year, stats.SuccessDays, stats.TotalDays,
				float64(stats.SuccessDays)/float64(stats.TotalDays)*100)
		}
	}
	fmt.Println()
}

func printPartition(analysis *Analysis) {
	fmt.Println("================================================================")
	fmt.Println("PARTITION")
	fmt.Println("================================================================")
	if len(analysis.Partition) == 0 {
		fmt.Println("Every Tredeco day maps to exactly one standard day.")
		fmt.Println()
		return
	}
	for _, p := range analysis.Partition {
		fmt.Printf("  - %s\n", p)
	}
	fmt.Println()
}

func printAllFailures(analysis *Analysis) {
	if analysis.TotalFailed == 0 {
		fmt.Println("No failures!")
		return
	}

	if analysis.TotalFailed > 50 {
		fmt.Printf("(Showing first 50 of %d failures)\n\n", analysis.TotalFailed)
	}

	fmt.Println("================================================================")
	fmt.Println("ALL FAILURES (Date | Tredeco | Error)")
	fmt.Println("================================================================")

	for i, f := range analysis.AllFailures {
		if i >= 50 {
			break
		}
		fmt.Printf("  %s | %s | %s\n", f.Date, f.Tredeco, f.Error)
	}
	fmt.Println()
}

func saveResults(filename string, analysis *Analysis) {
	output := struct {
		GeneratedAt string `json:"generated_at"`
		SuccessRate string `json:"success_rate"`
		*Analysis
	}{
		GeneratedAt: time.Now().Format(time.RFC3339),
		SuccessRate: fmt.Sprintf("%.2f%%", float64(analysis.TotalSuccess)/float64(analysis.TotalDays)*100),
		Analysis:    analysis,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling results: %v\n", err)
		return
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		return
	}

	fmt.Printf("Results saved to: %s\n", filename)
}
