// Command convert converts one date between the standard and Tredeco
// calendars.
//
// Usage:
//
//	go run ./cmd/convert -date 2024-02-29
//	go run ./cmd/convert -tredeco "2023 bix 1"
//	go run ./cmd/convert -tredeco "2024 Primo 1"
//
// Without flags it converts today's date.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/zapponejosh/tredeco-api/internal/tredeco"
)

func main() {
	date := flag.String("date", "", "Standard date (YYYY-MM-DD) to convert to Tredeco")
	selector := flag.String("tredeco", "", `Tredeco date "year month day" to convert to standard; month is 0-14 or a name`)
	flag.Parse()

	if err := run(os.Stdout, *date, *selector, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, date, selector string, now time.Time) error {
	switch {
	case date != "" && selector != "":
		return errors.New("use -date or -tredeco, not both")

	case selector != "":
		fields := strings.Fields(selector)
		if len(fields) != 3 {
			return fmt.Errorf("-tredeco wants \"year month day\", got %q", selector)
		}
		year, month, day, err := tredeco.ParseSelector(fields[0], fields[1], fields[2])
		if err != nil {
			return err
		}
		t, err := tredeco.TredecoToStandard(year, month, day)
		if err != nil {
			return err
		}
		return printDate(w, t)

	case date != "":
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			return fmt.Errorf("%w: date %q: use YYYY-MM-DD", tredeco.ErrInvalidArgument, date)
		}
		return printDate(w, t)
	}

	return printDate(w, now)
}

func printDate(w io.Writer, t time.Time) error {
	d, err := tredeco.StandardToTredeco(t)
	if err != nil {
		return err
	}

	weekday := t.Weekday().String()
	if md, ok := d.(tredeco.MonthDay); ok {
		weekday = md.Weekday().String()
	}

	fmt.Fprintf(w, "Standard: %s (%s)\n", t.Format("2006-01-02"), t.Weekday())
	fmt.Fprintf(w, "Tredeco:  %s (%s)\n", d, weekday)
	if doy, ok := tredeco.DayOfYearFromTredecoDate(d); ok {
		fmt.Fprintf(w, "Day:      %d of %d\n", doy, tredeco.YearLength(d.Year()))
	}
	return nil
}
