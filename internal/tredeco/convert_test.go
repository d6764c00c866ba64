package tredeco

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2023, true},  // 2024 is leap
		{2024, false}, // 2025 is not
		{1899, false}, // 1900 divisible by 100, not by 400
		{1999, true},  // 2000 divisible by 400
		{2099, false}, // 2100
		{2027, true},  // 2028
		{-1, true},    // standard year 0 is leap
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestIsLeapYear_MatchesStandardRule(t *testing.T) {
	for y := 1600; y <= 2400; y++ {
		next := y + 1
		want := next%4 == 0 && (next%100 != 0 || next%400 == 0)
		if got := IsLeapYear(y); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", y, got, want)
		}
		// The standard library agrees on the length of February.
		febDays := time.Date(next, time.March, 0, 0, 0, 0, 0, time.UTC).Day()
		if (febDays == 29) != want {
			t.Errorf("year %d: February of %d has %d days, leap = %v", y, next, febDays, want)
		}
	}
}

func TestStandardToTredeco(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
		kind Kind
	}{
		{"march 1 starts the year", date(2024, time.March, 1), "1 Primo 2024", KindMonthDay},
		{"day 28 ends primo", date(2024, time.March, 28), "28 Primo 2024", KindMonthDay},
		{"day 29 starts secundo", date(2024, time.March, 29), "1 Secundo 2024", KindMonthDay},
		{"january belongs to previous year", date(2024, time.January, 15), "13 Duodeco 2023", KindMonthDay},
		{"last named day", date(2024, time.February, 27), "28 Tredeco 2023", KindMonthDay},
		{"feb 28 of a leap standard year is nilo", date(2024, time.February, 28), "Nilo 2023", KindNilo},
		{"feb 29 is bix", date(2024, time.February, 29), "Bix 2023", KindBix},
		{"feb 28 of a common year is nilo", date(2025, time.February, 28), "Nilo 2024", KindNilo},
		{"year 2000 leap day", date(2000, time.February, 29), "Bix 1999", KindBix},
		{"1900 has no leap day", date(1900, time.March, 1), "1 Primo 1900", KindMonthDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StandardToTredeco(tt.in)
			if err != nil {
				t.Fatalf("StandardToTredeco() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("StandardToTredeco() = %s, want %s", got, tt.want)
			}
			if got.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", got.Kind(), tt.kind)
			}
		})
	}
}

func TestStandardToTredeco_IgnoresTimeOfDay(t *testing.T) {
	// The calendar date is read in the value's own location.
	east := time.FixedZone("UTC+14", 14*60*60)
	west := time.FixedZone("UTC-12", -12*60*60)

	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, time.March, 1, 0, 0, 0, 0, east), "1 Primo 2024"},
		{time.Date(2024, time.March, 1, 23, 59, 59, 999, west), "1 Primo 2024"},
		{time.Date(2024, time.February, 29, 23, 59, 0, 0, east), "Bix 2023"},
		{time.Date(2024, time.March, 1, 12, 0, 0, 0, time.Local), "1 Primo 2024"},
	}

	for _, tt := range tests {
		got, err := StandardToTredeco(tt.in)
		if err != nil {
			t.Fatalf("StandardToTredeco(%v) error = %v", tt.in, err)
		}
		if got.String() != tt.want {
			t.Errorf("StandardToTredeco(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTredecoToStandard(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             time.Time
	}{
		{"primo 1", 2024, 0, 1, date(2024, time.March, 1)},
		{"secundo 1", 2024, int(Secundo), 1, date(2024, time.March, 29)},
		{"tredeco 28", 2024, int(Tredeco), 28, date(2025, time.February, 27)},
		{"nilo of common year", 2024, SelectorNilo, 1, date(2025, time.February, 28)},
		{"nilo of leap year", 2023, SelectorNilo, 1, date(2024, time.February, 28)},
		{"bix of leap year", 2023, SelectorBix, 1, date(2024, time.February, 29)},
		{"negative year", -1, 0, 1, date(-1, time.March, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TredecoToStandard(tt.year, tt.month, tt.day)
			if err != nil {
				t.Fatalf("TredecoToStandard() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("TredecoToStandard() = %s, want %s", got.Format(time.DateOnly), tt.want.Format(time.DateOnly))
			}
		})
	}
}

func TestTredecoToStandard_Bix(t *testing.T) {
	// 2024 is not leap (2025 is a common year).
	if _, err := TredecoToStandard(2024, SelectorBix, 1); !errors.Is(err, ErrNoBix) {
		t.Errorf("TredecoToStandard(2024, Bix) error = %v, want ErrNoBix", err)
	}

	got, err := TredecoToStandard(2023, SelectorBix, 1)
	if err != nil {
		t.Fatalf("TredecoToStandard(2023, Bix) error = %v", err)
	}
	if want := YearStart(2023).AddDate(0, 0, 365); !got.Equal(want) {
		t.Errorf("TredecoToStandard(2023, Bix) = %v, want %v", got, want)
	}
}

func TestTredecoToStandard_Errors(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             []error
	}{
		{"day 29", 2024, 5, 29, []error{ErrInvalidDay, ErrOutOfRange}},
		{"day 0", 2024, 0, 0, []error{ErrInvalidDay, ErrOutOfRange}},
		{"nilo day 2", 2024, SelectorNilo, 2, []error{ErrInvalidDay}},
		{"bix day 2 in leap year", 2023, SelectorBix, 2, []error{ErrInvalidDay}},
		{"bix day checked before leap", 2024, SelectorBix, 2, []error{ErrInvalidDay}},
		{"bix in common year", 2024, SelectorBix, 1, []error{ErrNoBix}},
		{"month 15", 2024, 15, 1, []error{ErrInvalidMonth}},
		{"month -1", 2024, -1, 1, []error{ErrInvalidMonth}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TredecoToStandard(tt.year, tt.month, tt.day)
			if err == nil {
				t.Fatal("TredecoToStandard() error = nil, want error")
			}
			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("TredecoToStandard() error = %v, want %v", err, want)
				}
			}
			if tt.name == "bix day checked before leap" && errors.Is(err, ErrNoBix) {
				t.Errorf("TredecoToStandard() error = %v, day must be rejected first", err)
			}
		})
	}
}

// Every standard day converts to a Tredeco date and back to itself.
func TestRoundTrip(t *testing.T) {
	start := date(1899, time.January, 1)
	end := date(2101, time.December, 31)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		td, err := StandardToTredeco(d)
		if err != nil {
			t.Fatalf("StandardToTredeco(%s) error = %v", d.Format(time.DateOnly), err)
		}
		back, err := ToStandard(td)
		if err != nil {
			t.Fatalf("ToStandard(%s) error = %v", td, err)
		}
		if !back.Equal(d) {
			t.Fatalf("round trip %s -> %s -> %s", d.Format(time.DateOnly), td, back.Format(time.DateOnly))
		}
	}
}

// The selectors of one year cover its standard days exactly once.
func TestYearPartition(t *testing.T) {
	for _, year := range []int{1899, 1999, 2022, 2023, 2024, 2099} {
		seen := make(map[time.Time]string)

		add := func(month, day int) {
			got, err := TredecoToStandard(year, month, day)
			if err != nil {
				t.Fatalf("TredecoToStandard(%d, %d, %d) error = %v", year, month, day, err)
			}
			key := Month(month).String()
			if prev, ok := seen[got]; ok {
				t.Errorf("year %d: %s day %d overlaps %s", year, key, day, prev)
			}
			seen[got] = key
		}

		for m := 0; m < MonthsPerYear; m++ {
			for d := 1; d <= DaysPerMonth; d++ {
				add(m, d)
			}
		}
		add(SelectorNilo, 1)
		if IsLeapYear(year) {
			add(SelectorBix, 1)
		}

		if len(seen) != YearLength(year) {
			t.Errorf("year %d: %d distinct days, want %d", year, len(seen), YearLength(year))
		}

		// No gaps: every day from March 1 to the end of February is present.
		first := YearStart(year)
		next := YearStart(year + 1)
		for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
			if _, ok := seen[d]; !ok {
				t.Errorf("year %d: %s not covered", year, d.Format(time.DateOnly))
			}
		}
	}
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day string
		wantY, wantM     int
		wantD            int
		wantErr          error
	}{
		{"numeric", "2024", "5", "12", 2024, 5, 12, nil},
		{"month name", "2024", "quinto", "12", 2024, int(Quinto), 12, nil},
		{"nilo", "2023", "Nilo", "1", 2023, SelectorNilo, 1, nil},
		{"bix", "2023", "BIX", "1", 2023, SelectorBix, 1, nil},
		{"spaces", " 2024 ", " 0 ", " 1 ", 2024, 0, 1, nil},
		{"fractional year", "2024.5", "0", "1", 0, 0, 0, ErrInvalidArgument},
		{"fractional day", "2024", "0", "1.5", 0, 0, 0, ErrInvalidArgument},
		{"unknown month", "2024", "Limes", "1", 0, 0, 0, ErrInvalidArgument},
		{"empty", "", "", "", 0, 0, 0, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m, d, err := ParseSelector(tt.year, tt.month, tt.day)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseSelector() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSelector() error = %v", err)
			}
			if y != tt.wantY || m != tt.wantM || d != tt.wantD {
				t.Errorf("ParseSelector() = (%d, %d, %d), want (%d, %d, %d)", y, m, d, tt.wantY, tt.wantM, tt.wantD)
			}
		})
	}
}

func TestParseSelector_RangeCheckedLater(t *testing.T) {
	y, m, d, err := ParseSelector("2024", "Nilo", "2")
	if err != nil {
		t.Fatalf("ParseSelector() error = %v", err)
	}
	if _, err := TredecoToStandard(y, m, d); !errors.Is(err, ErrInvalidDay) {
		t.Errorf("TredecoToStandard() error = %v, want ErrInvalidDay", err)
	}
}
