package tredeco

import (
	"errors"
	"testing"
	"time"
)

func TestStartWeekdayOfMarch1st(t *testing.T) {
	tests := []struct {
		year int
		want Weekday
	}{
		{2023, Wednesday},
		{2024, Friday},
		{2025, Saturday},
		{2000, Wednesday},
		{1900, Thursday},
	}

	for _, tt := range tests {
		if got := StartWeekdayOfMarch1st(tt.year); got != tt.want {
			t.Errorf("StartWeekdayOfMarch1st(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestFromStandardWeekday(t *testing.T) {
	tests := []struct {
		in   time.Weekday
		want Weekday
	}{
		{time.Sunday, Sunday},
		{time.Monday, Monday},
		{time.Saturday, Saturday},
	}

	for _, tt := range tests {
		if got := FromStandardWeekday(tt.in); got != tt.want {
			t.Errorf("FromStandardWeekday(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		day, start int
		want       Weekday
	}{
		{1, 0, Monday},
		{7, 0, Sunday},
		{8, 0, Monday},
		{1, 4, Friday},
		{4, 4, Monday},
		{28, 6, Saturday},
		{29, 2, Wednesday}, // past 28 keeps cycling
	}

	for _, tt := range tests {
		got, err := WeekdayIndex(tt.day, tt.start)
		if err != nil {
			t.Fatalf("WeekdayIndex(%d, %d) error = %v", tt.day, tt.start, err)
		}
		if got != tt.want {
			t.Errorf("WeekdayIndex(%d, %d) = %v, want %v", tt.day, tt.start, got, tt.want)
		}
	}
}

func TestWeekdayIndex_Errors(t *testing.T) {
	tests := []struct {
		name       string
		day, start int
	}{
		{"day zero", 0, 0},
		{"negative day", -3, 0},
		{"negative start", 1, -1},
		{"start seven", 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := WeekdayIndex(tt.day, tt.start); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("WeekdayIndex(%d, %d) error = %v, want ErrOutOfRange", tt.day, tt.start, err)
			}
			if _, err := WeekdayName(tt.day, tt.start); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("WeekdayName(%d, %d) error = %v, want ErrOutOfRange", tt.day, tt.start, err)
			}
		})
	}
}

func TestWeekdayIndex_Periodic(t *testing.T) {
	for start := 0; start < 7; start++ {
		for d := 1; d <= 60; d++ {
			a, err := WeekdayIndex(d, start)
			if err != nil {
				t.Fatal(err)
			}
			b, err := WeekdayIndex(d+7, start)
			if err != nil {
				t.Fatal(err)
			}
			if a != b {
				t.Errorf("WeekdayIndex(%d, %d) = %v but WeekdayIndex(%d, %d) = %v", d, start, a, d+7, start, b)
			}
		}
	}
}

// Within a year, day d has the same weekday in every month, and that
// weekday is the real one of its standard date.
func TestWeekday_SameInEveryMonth(t *testing.T) {
	for _, year := range []int{2022, 2023, 2024, 2025} {
		start := int(StartWeekdayOfMarch1st(year))

		for d := 1; d <= DaysPerMonth; d++ {
			want, err := WeekdayIndex(d, start)
			if err != nil {
				t.Fatal(err)
			}
			for m := Primo; m <= Tredeco; m++ {
				md, err := NewMonthDay(year, m, d)
				if err != nil {
					t.Fatal(err)
				}
				if md.Weekday() != want {
					t.Errorf("%s weekday = %v, want %v", md, md.Weekday(), want)
				}
				std, err := ToStandard(md)
				if err != nil {
					t.Fatal(err)
				}
				if actual := FromStandardWeekday(std.Weekday()); actual != want {
					t.Errorf("%s falls on %v, grid says %v", md, actual, want)
				}
			}
		}
	}
}

func TestWeekdayName(t *testing.T) {
	got, err := WeekdayName(1, int(Friday))
	if err != nil {
		t.Fatalf("WeekdayName() error = %v", err)
	}
	if got != "Friday" {
		t.Errorf("WeekdayName() = %q, want %q", got, "Friday")
	}
	if Sunday.Short() != "Sun" {
		t.Errorf("Sunday.Short() = %q, want %q", Sunday.Short(), "Sun")
	}
	if Weekday(9).String() != "Weekday(9)" {
		t.Errorf("Weekday(9).String() = %q", Weekday(9).String())
	}
}
