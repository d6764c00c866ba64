package tredeco

import (
	"fmt"
	"strconv"
	"strings"
)

// Calendar geometry constants.
const (
	// DaysPerMonth is the fixed length of every Tredeco month (4 weeks).
	DaysPerMonth = 28

	// MonthsPerYear is the number of named months in a Tredeco year.
	MonthsPerYear = 13

	// DaysInMonths is the number of days covered by the named months.
	DaysInMonths = DaysPerMonth * MonthsPerYear

	// SelectorNilo and SelectorBix extend the 0-12 month index range so
	// that a single integer can select any day of a Tredeco year.
	SelectorNilo = MonthsPerYear
	SelectorBix  = MonthsPerYear + 1
)

// Month is the ordinal of a named Tredeco month, Primo = 0 through Tredeco = 12.
type Month int

const (
	Primo Month = iota
	Secundo
	Terzo
	Quarto
	Quinto
	Sexto
	Septo
	Octo
	Nono
	Decimo
	Undeco
	Duodeco
	Tredeco
)

// MonthNames holds the display name of every month, indexed by Month.
var MonthNames = [MonthsPerYear]string{
	"Primo",
	"Secundo",
	"Terzo",
	"Quarto",
	"Quinto",
	"Sexto",
	"Septo",
	"Octo",
	"Nono",
	"Decimo",
	"Undeco",
	"Duodeco",
	"Tredeco",
}

// Valid reports whether m names one of the 13 months.
func (m Month) Valid() bool {
	return m >= Primo && m <= Tredeco
}

func (m Month) String() string {
	if !m.Valid() {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return MonthNames[m]
}

// ParseMonth parses a month name in any letter case.
func ParseMonth(name string) (Month, error) {
	name = strings.TrimSpace(name)
	for i, n := range MonthNames {
		if strings.EqualFold(n, name) {
			return Month(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown month %q", ErrInvalidMonth, name)
}

// parseSelectorMonth accepts a numeric month index or a name, including
// the intercalary names "Nilo" and "Bix".
func parseSelectorMonth(val string) (int, error) {
	val = strings.TrimSpace(val)
	if n, err := strconv.Atoi(val); err == nil {
		return n, nil
	}
	switch {
	case strings.EqualFold(val, "nilo"):
		return SelectorNilo, nil
	case strings.EqualFold(val, "bix"):
		return SelectorBix, nil
	}
	m, err := ParseMonth(val)
	if err != nil {
		return 0, err
	}
	return int(m), nil
}
