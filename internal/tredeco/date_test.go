package tredeco

import (
	"errors"
	"testing"
)

func TestDayOfYearFromTredecoDate(t *testing.T) {
	primo1, _ := NewMonthDay(2024, Primo, 1)
	tredeco28, _ := NewMonthDay(2024, Tredeco, 28)
	bix, _ := NewBix(2023)

	tests := []struct {
		name   string
		in     Date
		want   int
		wantOK bool
	}{
		{"first day", primo1, 1, true},
		{"last named day", tredeco28, 364, true},
		{"nilo", NewNilo(2024), 0, false},
		{"bix", bix, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DayOfYearFromTredecoDate(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DayOfYearFromTredecoDate(%s) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNewMonthDay_Errors(t *testing.T) {
	if _, err := NewMonthDay(2024, Month(13), 1); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("NewMonthDay(month 13) error = %v, want ErrInvalidMonth", err)
	}
	if _, err := NewMonthDay(2024, Primo, 29); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("NewMonthDay(day 29) error = %v, want ErrOutOfRange", err)
	}
}

func TestNewBix(t *testing.T) {
	if _, err := NewBix(2024); !errors.Is(err, ErrNoBix) {
		t.Errorf("NewBix(2024) error = %v, want ErrNoBix", err)
	}
	b, err := NewBix(2023)
	if err != nil {
		t.Fatalf("NewBix(2023) error = %v", err)
	}
	if m, d := b.Selector(); m != SelectorBix || d != 1 {
		t.Errorf("Selector() = (%d, %d), want (%d, 1)", m, d, SelectorBix)
	}
}

func TestDate_Exhaustive(t *testing.T) {
	// A type switch over the three implementations covers every Date.
	d, err := StandardToTredeco(date(2024, 2, 29))
	if err != nil {
		t.Fatal(err)
	}
	switch v := d.(type) {
	case MonthDay:
		t.Errorf("got month day %s, want Bix", v)
	case Nilo:
		t.Errorf("got %s, want Bix", v)
	case Bix:
		if v.Year() != 2023 {
			t.Errorf("Bix year = %d, want 2023", v.Year())
		}
	}
}

func TestMonth_String(t *testing.T) {
	tests := []struct {
		m    Month
		want string
	}{
		{Primo, "Primo"},
		{Septo, "Septo"},
		{Tredeco, "Tredeco"},
		{Month(13), "Month(13)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Month(%d).String() = %q, want %q", int(tt.m), got, tt.want)
		}
	}

	m, err := ParseMonth("duodeco")
	if err != nil || m != Duodeco {
		t.Errorf("ParseMonth(duodeco) = %v, %v", m, err)
	}
	if _, err := ParseMonth("Nilo"); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("ParseMonth(Nilo) error = %v, want ErrInvalidMonth", err)
	}
}
