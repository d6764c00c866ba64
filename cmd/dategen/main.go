package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/zapponejosh/tredeco-api/internal/astronomy"
	"github.com/zapponejosh/tredeco-api/internal/tredeco"
)

// This script prints the Tredeco year table: where every month starts and
// ends on the standard calendar, the intercalary days and the weekday
// headers shared by every month grid.

func main() {
	year := flag.Int("year", 2025, "Tredeco year to print")
	count := flag.Int("years", 1, "Number of consecutive years")
	grid := flag.Bool("grid", false, "Also print the month grid")
	flag.Parse()

	if *count < 1 {
		fmt.Fprintln(os.Stderr, "-years must be at least 1")
		os.Exit(2)
	}

	for y := *year; y < *year+*count; y++ {
		printYear(tredeco.NewYearGrid(y), *grid)
	}
}

func printYear(g tredeco.YearGrid, withGrid bool) {
	leap := ""
	if g.Leap {
		leap = " (leap, has Bix)"
	}

	fmt.Printf("=== Tredeco Year %d%s ===\n\n", g.Year, leap)

	fmt.Println("Key Dates:")
	fmt.Printf("  Year Start:      %s (%s)\n", formatDate(g.Start), g.StartWeekday)
	fmt.Printf("  Year End:        %s\n", formatDate(g.End))
	fmt.Printf("  March Equinox:   %s UTC\n", astronomy.MarchEquinox(g.Start.Year()).Format("2006-01-02 15:04"))
	fmt.Printf("  Length:          %d days\n", tredeco.YearLength(g.Year))
	fmt.Println()

	fmt.Println("Months:")
	for _, m := range g.Months {
		fmt.Printf("  %2d %-8s %s - %s\n", int(m.Month), m.Month, formatDate(m.Start), formatDate(m.End))
	}
	fmt.Println()

	fmt.Println("Intercalary Days:")
	for _, d := range g.Intercalary {
		fmt.Printf("  %-10s %s (%s)\n", d.Date, formatDate(d.Standard), d.Standard.Weekday())
	}
	fmt.Println()

	if withGrid {
		fmt.Println("Every month:")
		fmt.Print(formatGrid(g))
		fmt.Println()
	}
}

// formatGrid renders the shared 4x7 month grid under its weekday headers.
func formatGrid(g tredeco.YearGrid) string {
	var b strings.Builder

	headers := make([]string, len(g.Headers))
	for i, wd := range g.Headers {
		headers[i] = fmt.Sprintf("%3s", wd.Short())
	}
	b.WriteString("  " + strings.Join(headers, " ") + "\n")

	for _, week := range g.Months[0].Weeks {
		cells := make([]string, len(week))
		for i, day := range week {
			cells[i] = fmt.Sprintf("%3d", day)
		}
		b.WriteString("  " + strings.Join(cells, " ") + "\n")
	}

	return b.String()
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
