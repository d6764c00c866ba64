package tredeco

import (
	"fmt"
	"strconv"
	"time"
)

// Weekday is a Monday-first day of the week, Monday = 0 through Sunday = 6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayNames and WeekdayShortNames are indexed by Weekday.
var (
	WeekdayNames = [7]string{
		"Monday",
		"Tuesday",
		"Wednesday",
		"Thursday",
		"Friday",
		"Saturday",
		"Sunday",
	}
	WeekdayShortNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
)

func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return WeekdayNames[w]
}

// Short returns the three letter abbreviation.
func (w Weekday) Short() string {
	if !w.Valid() {
		return w.String()
	}
	return WeekdayShortNames[w]
}

// FromStandardWeekday converts a Sunday-first time.Weekday.
func FromStandardWeekday(wd time.Weekday) Weekday {
	return Weekday((int(wd) + 6) % 7)
}

// StartWeekdayOfMarch1st returns the weekday of March 1 of the given
// standard year, which is the first day of the Tredeco year of the same
// number. Every month of that year shares this alignment.
func StartWeekdayOfMarch1st(tredecoYear int) Weekday {
	return FromStandardWeekday(YearStart(tredecoYear).Weekday())
}

// WeekdayIndex returns the weekday of in-month day tredecoDay for a year
// whose March 1 falls on startWeekday.
//
// Months are exactly four weeks long, so the result depends only on the
// day's position modulo 7. Days past 28 are accepted and keep cycling.
func WeekdayIndex(tredecoDay, startWeekday int) (Weekday, error) {
	if tredecoDay < 1 {
		return 0, fmt.Errorf("%w: tredeco day %d must be at least 1", ErrOutOfRange, tredecoDay)
	}
	if startWeekday < 0 || startWeekday > 6 {
		return 0, fmt.Errorf("%w: start weekday %d must be in 0-6", ErrOutOfRange, startWeekday)
	}
	return Weekday((startWeekday + (tredecoDay-1)%7) % 7), nil
}

// WeekdayName is WeekdayIndex mapped through WeekdayNames.
func WeekdayName(tredecoDay, startWeekday int) (string, error) {
	wd, err := WeekdayIndex(tredecoDay, startWeekday)
	if err != nil {
		return "", err
	}
	return WeekdayNames[wd], nil
}
