// Package tredeco converts between the standard (Gregorian) calendar and the
// Tredeco calendar: 13 months of 28 days followed by the intercalary day
// Nilo and, in leap years, Bix.
//
// A Tredeco year Y runs from March 1 of standard year Y through the last
// day of February of Y+1, so the intercalary days always land at the end of
// February. All functions are pure: none reads the clock, and callers pass
// "today" in explicitly.
package tredeco

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const hoursPerDay = 24

// IsLeapYear reports whether Tredeco year tredecoYear has a Bix, which is
// the case when the standard year holding its last February is leap.
func IsLeapYear(tredecoYear int) bool {
	return isStandardLeapYear(tredecoYear + 1)
}

func isStandardLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// YearStart returns March 1 of the standard year, midnight UTC.
func YearStart(tredecoYear int) time.Time {
	return time.Date(tredecoYear, time.March, 1, 0, 0, 0, 0, time.UTC)
}

// YearLength is 366 for leap years and 365 otherwise.
func YearLength(tredecoYear int) int {
	if IsLeapYear(tredecoYear) {
		return DaysInMonths + 2
	}
	return DaysInMonths + 1
}

// StandardToTredeco converts the calendar date of t, read in t's own
// location, into a Tredeco date. The time of day is ignored.
func StandardToTredeco(t time.Time) (Date, error) {
	y, m, d := t.Date()

	// January and February belong to the Tredeco year that started the
	// previous March.
	year := y
	if m < time.March {
		year = y - 1
	}

	// Both ends are UTC midnights, so the difference is a whole number of days.
	civil := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dayOfYear := int(civil.Sub(YearStart(year)).Hours()/hoursPerDay) + 1

	if length := YearLength(year); dayOfYear < 1 || dayOfYear > length {
		return nil, fmt.Errorf("%w: day %d of tredeco year %d outside 1-%d",
			ErrInvariant, dayOfYear, year, length)
	}

	switch dayOfYear {
	case DaysInMonths + 1:
		return NewNilo(year), nil
	case DaysInMonths + 2:
		return Bix{year: year}, nil
	}

	zeroBased := dayOfYear - 1
	return MonthDay{
		year:  year,
		month: Month(zeroBased / DaysPerMonth),
		day:   zeroBased%DaysPerMonth + 1,
	}, nil
}

// TredecoToStandard returns the standard date, midnight UTC, of the day
// selected by monthIndex and day in Tredeco year year. Month indexes 0-12
// select the named months, SelectorNilo (13) selects Nilo and SelectorBix
// (14) selects Bix; the intercalary days only accept day 1.
func TredecoToStandard(year, monthIndex, day int) (time.Time, error) {
	var offset int

	switch {
	case monthIndex >= 0 && monthIndex < MonthsPerYear:
		if day < 1 || day > DaysPerMonth {
			return time.Time{}, fmt.Errorf("%w: day %d of %s must be in 1-%d",
				errDayOutOfRange, day, Month(monthIndex), DaysPerMonth)
		}
		offset = monthIndex*DaysPerMonth + (day - 1)

	case monthIndex == SelectorNilo:
		if day != 1 {
			return time.Time{}, fmt.Errorf("%w: nilo has only day 1, got %d", ErrInvalidDay, day)
		}
		offset = DaysInMonths

	case monthIndex == SelectorBix:
		if day != 1 {
			return time.Time{}, fmt.Errorf("%w: bix has only day 1, got %d", ErrInvalidDay, day)
		}
		if !IsLeapYear(year) {
			return time.Time{}, fmt.Errorf("%w: tredeco year %d is not a leap year", ErrNoBix, year)
		}
		offset = DaysInMonths + 1

	default:
		return time.Time{}, fmt.Errorf("%w: index %d, use 0-12, %d (Nilo) or %d (Bix)",
			ErrInvalidMonth, monthIndex, SelectorNilo, SelectorBix)
	}

	return YearStart(year).AddDate(0, 0, offset), nil
}

// ToStandard converts a Date back into its standard date.
func ToStandard(d Date) (time.Time, error) {
	month, day := d.Selector()
	return TredecoToStandard(d.Year(), month, day)
}

// ParseSelector parses textual year, month and day values into the
// arguments of TredecoToStandard. Year and day must be integers; month may
// be an integer index or a month name, "Nilo" or "Bix". Only the syntax is
// checked here.
func ParseSelector(year, month, day string) (int, int, int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: year %q is not an integer", ErrInvalidArgument, year)
	}
	d, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: day %q is not an integer", ErrInvalidArgument, day)
	}
	m, err := parseSelectorMonth(month)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: month %q: %w", ErrInvalidArgument, month, err)
	}
	return y, m, d, nil
}
