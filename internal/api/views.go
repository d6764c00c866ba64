package api

import (
	"time"

	"github.com/zapponejosh/tredeco-api/internal/tredeco"
)

// dateLayout is the standard date format used in paths and responses.
const dateLayout = "2006-01-02"

// TredecoView is the JSON form of a Tredeco date.
type TredecoView struct {
	Year       int     `json:"year"`
	Kind       string  `json:"kind"`
	Month      *string `json:"month"`
	MonthIndex *int    `json:"month_index"`
	Day        int     `json:"day"`
	DayOfYear  *int    `json:"day_of_year"`
	Weekday    string  `json:"weekday"`
	Label      string  `json:"label"`
}

// StandardView is the JSON form of a standard calendar date.
type StandardView struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

// ConversionView pairs the two calendars' views of one day.
type ConversionView struct {
	Standard StandardView `json:"standard"`
	Tredeco  TredecoView  `json:"tredeco"`
}

// newTredecoView describes d. standard must be the same day; intercalary
// days take their weekday from it since they have none of their own.
func newTredecoView(d tredeco.Date, standard time.Time) TredecoView {
	v := TredecoView{
		Year:  d.Year(),
		Kind:  d.Kind().String(),
		Label: d.String(),
	}

	_, v.Day = d.Selector()

	if md, ok := d.(tredeco.MonthDay); ok {
		name := md.Month().String()
		idx := int(md.Month())
		doy, _ := tredeco.DayOfYearFromTredecoDate(md)
		v.Month = &name
		v.MonthIndex = &idx
		v.DayOfYear = &doy
		v.Weekday = md.Weekday().String()
	} else {
		v.Weekday = standard.Weekday().String()
	}

	return v
}

func newStandardView(t time.Time) StandardView {
	return StandardView{
		Date:    t.Format(dateLayout),
		Weekday: t.Weekday().String(),
	}
}

// convert builds the conversion view for the calendar date of t.
func convert(t time.Time) (ConversionView, error) {
	d, err := tredeco.StandardToTredeco(t)
	if err != nil {
		return ConversionView{}, err
	}
	return ConversionView{
		Standard: newStandardView(t),
		Tredeco:  newTredecoView(d, t),
	}, nil
}

// YearView is the JSON form of a year grid.
type YearView struct {
	Year         int               `json:"year"`
	Leap         bool              `json:"leap"`
	Start        string            `json:"start"`
	End          string            `json:"end"`
	StartWeekday string            `json:"start_weekday"`
	Headers      []string          `json:"headers"`
	Months       []MonthView       `json:"months"`
	Intercalary  []IntercalaryView `json:"intercalary"`
}

// MonthView is one month of a YearView.
type MonthView struct {
	Index int                           `json:"index"`
	Name  string                        `json:"name"`
	Start string                        `json:"start"`
	End   string                        `json:"end"`
	Weeks [tredeco.WeeksPerMonth][7]int `json:"weeks"`
}

// IntercalaryView is Nilo or Bix with its standard date.
type IntercalaryView struct {
	Kind     string       `json:"kind"`
	Label    string       `json:"label"`
	Standard StandardView `json:"standard"`
}

func newYearView(g tredeco.YearGrid) YearView {
	v := YearView{
		Year:         g.Year,
		Leap:         g.Leap,
		Start:        g.Start.Format(dateLayout),
		End:          g.End.Format(dateLayout),
		StartWeekday: g.StartWeekday.String(),
		Headers:      make([]string, len(g.Headers)),
		Months:       make([]MonthView, len(g.Months)),
		Intercalary:  make([]IntercalaryView, len(g.Intercalary)),
	}

	for i, wd := range g.Headers {
		v.Headers[i] = wd.Short()
	}
	for i, m := range g.Months {
		v.Months[i] = MonthView{
			Index: int(m.Month),
			Name:  m.Month.String(),
			Start: m.Start.Format(dateLayout),
			End:   m.End.Format(dateLayout),
			Weeks: m.Weeks,
		}
	}
	for i, d := range g.Intercalary {
		v.Intercalary[i] = IntercalaryView{
			Kind:     d.Date.Kind().String(),
			Label:    d.Date.String(),
			Standard: newStandardView(d.Standard),
		}
	}

	return v
}
