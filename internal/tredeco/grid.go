package tredeco

import "time"

// WeeksPerMonth is the number of grid rows in every month.
const WeeksPerMonth = DaysPerMonth / 7

// YearGrid is the layout of a whole Tredeco year as a wall calendar shows
// it: one 4x7 block per month, with the columns headed by the weekday of
// day 1, followed by the intercalary days.
type YearGrid struct {
	Year         int
	Leap         bool
	StartWeekday Weekday
	Start        time.Time // March 1, standard calendar
	End          time.Time // last day of the following February

	// Headers[i] is the weekday of every day in column i.
	Headers [7]Weekday

	Months      [MonthsPerYear]MonthGrid
	Intercalary []IntercalaryDay
}

// MonthGrid is one month of a YearGrid.
type MonthGrid struct {
	Month Month
	Start time.Time
	End   time.Time

	// Weeks[r][c] is the day number at row r, column c.
	Weeks [WeeksPerMonth][7]int
}

// IntercalaryDay pairs Nilo or Bix with its standard date.
type IntercalaryDay struct {
	Date     Date
	Standard time.Time
}

// NewYearGrid lays out Tredeco year year.
func NewYearGrid(year int) YearGrid {
	start := YearStart(year)
	sw := StartWeekdayOfMarch1st(year)

	g := YearGrid{
		Year:         year,
		Leap:         IsLeapYear(year),
		StartWeekday: sw,
		Start:        start,
		End:          start.AddDate(0, 0, YearLength(year)-1),
	}

	for c := range g.Headers {
		g.Headers[c] = Weekday((int(sw) + c) % 7)
	}

	for m := range g.Months {
		mg := MonthGrid{
			Month: Month(m),
			Start: start.AddDate(0, 0, m*DaysPerMonth),
			End:   start.AddDate(0, 0, m*DaysPerMonth+DaysPerMonth-1),
		}
		for r := range mg.Weeks {
			for c := range mg.Weeks[r] {
				mg.Weeks[r][c] = r*7 + c + 1
			}
		}
		g.Months[m] = mg
	}

	g.Intercalary = append(g.Intercalary, IntercalaryDay{
		Date:     NewNilo(year),
		Standard: start.AddDate(0, 0, DaysInMonths),
	})
	if g.Leap {
		g.Intercalary = append(g.Intercalary, IntercalaryDay{
			Date:     Bix{year: year},
			Standard: start.AddDate(0, 0, DaysInMonths+1),
		})
	}
	return g
}

// contains reports whether t falls within the grid's year.
func (g YearGrid) contains(t time.Time) bool {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !day.Before(g.Start) && !day.After(g.End)
}
