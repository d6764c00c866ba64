package tredeco

import (
	"fmt"
	"strconv"
)

// Kind distinguishes the three shapes a Date can take.
type Kind int

const (
	KindMonthDay Kind = iota
	KindNilo
	KindBix
)

func (k Kind) String() string {
	switch k {
	case KindMonthDay:
		return "normal"
	case KindNilo:
		return "nilo"
	case KindBix:
		return "bix"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Date is a day of the Tredeco calendar. It is implemented only by
// MonthDay, Nilo and Bix; a type switch over those three is exhaustive.
type Date interface {
	// Year is the Tredeco year, named after the standard year of its March 1.
	Year() int

	Kind() Kind

	// Selector returns the month index and day that TredecoToStandard
	// accepts for this date.
	Selector() (monthIndex, day int)

	String() string

	tredecoDate()
}

// MonthDay is a day within one of the 13 named months.
type MonthDay struct {
	year  int
	month Month
	day   int
}

// NewMonthDay validates month and day and returns the date.
func NewMonthDay(year int, month Month, day int) (MonthDay, error) {
	if !month.Valid() {
		return MonthDay{}, fmt.Errorf("%w: month %d must be in 0-12", ErrInvalidMonth, int(month))
	}
	if day < 1 || day > DaysPerMonth {
		return MonthDay{}, fmt.Errorf("%w: day %d must be in 1-%d", errDayOutOfRange, day, DaysPerMonth)
	}
	return MonthDay{year: year, month: month, day: day}, nil
}

func (d MonthDay) Year() int    { return d.year }
func (d MonthDay) Month() Month { return d.month }
func (d MonthDay) Day() int     { return d.day }
func (d MonthDay) Kind() Kind   { return KindMonthDay }

func (d MonthDay) Selector() (int, int) {
	return int(d.month), d.day
}

// Weekday returns the weekday of d under the fixed year grid.
func (d MonthDay) Weekday() Weekday {
	return Weekday((int(StartWeekdayOfMarch1st(d.year)) + (d.day-1)%7) % 7)
}

func (d MonthDay) String() string {
	return fmt.Sprintf("%d %s %d", d.day, d.month, d.year)
}

func (MonthDay) tredecoDate() {}

// Nilo is the 365th day of every Tredeco year.
type Nilo struct {
	year int
}

func NewNilo(year int) Nilo { return Nilo{year: year} }

func (d Nilo) Year() int  { return d.year }
func (d Nilo) Kind() Kind { return KindNilo }

func (d Nilo) Selector() (int, int) {
	return SelectorNilo, 1
}

func (d Nilo) String() string {
	return "Nilo " + strconv.Itoa(d.year)
}

func (Nilo) tredecoDate() {}

// Bix is the 366th day, present only in leap years.
type Bix struct {
	year int
}

// NewBix returns ErrNoBix when year is not a leap year.
func NewBix(year int) (Bix, error) {
	if !IsLeapYear(year) {
		return Bix{}, fmt.Errorf("%w: tredeco year %d is not a leap year", ErrNoBix, year)
	}
	return Bix{year: year}, nil
}

func (d Bix) Year() int  { return d.year }
func (d Bix) Kind() Kind { return KindBix }

func (d Bix) Selector() (int, int) {
	return SelectorBix, 1
}

func (d Bix) String() string {
	return "Bix " + strconv.Itoa(d.year)
}

func (Bix) tredecoDate() {}

// DayOfYearFromTredecoDate returns month*28 + day for dates in a named
// month. Intercalary days sit outside the month grid and report false.
func DayOfYearFromTredecoDate(d Date) (int, bool) {
	md, ok := d.(MonthDay)
	if !ok {
		return 0, false
	}
	return int(md.month)*DaysPerMonth + md.day, true
}
