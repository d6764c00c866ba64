package tredeco

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewYearGrid(t *testing.T) {
	g := NewYearGrid(2024)

	if g.Leap {
		t.Error("2024 Leap = true, want false")
	}
	if g.StartWeekday != Friday {
		t.Errorf("StartWeekday = %v, want Friday", g.StartWeekday)
	}

	wantHeaders := [7]Weekday{Friday, Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday}
	if diff := cmp.Diff(wantHeaders, g.Headers); diff != "" {
		t.Errorf("Headers mismatch (-want +got):\n%s", diff)
	}

	if !g.Start.Equal(date(2024, time.March, 1)) {
		t.Errorf("Start = %v", g.Start)
	}
	if !g.End.Equal(date(2025, time.February, 28)) {
		t.Errorf("End = %v", g.End)
	}

	first := g.Months[Primo]
	wantWeeks := [WeeksPerMonth][7]int{
		{1, 2, 3, 4, 5, 6, 7},
		{8, 9, 10, 11, 12, 13, 14},
		{15, 16, 17, 18, 19, 20, 21},
		{22, 23, 24, 25, 26, 27, 28},
	}
	if diff := cmp.Diff(wantWeeks, first.Weeks); diff != "" {
		t.Errorf("Primo weeks mismatch (-want +got):\n%s", diff)
	}

	last := g.Months[Tredeco]
	if last.Month != Tredeco {
		t.Errorf("last month = %v, want Tredeco", last.Month)
	}
	if !last.Start.Equal(date(2025, time.January, 31)) || !last.End.Equal(date(2025, time.February, 27)) {
		t.Errorf("Tredeco spans %s to %s", last.Start.Format(time.DateOnly), last.End.Format(time.DateOnly))
	}

	if len(g.Intercalary) != 1 {
		t.Fatalf("len(Intercalary) = %d, want 1", len(g.Intercalary))
	}
	nilo := g.Intercalary[0]
	if nilo.Date.Kind() != KindNilo || !nilo.Standard.Equal(date(2025, time.February, 28)) {
		t.Errorf("Intercalary[0] = %s on %s", nilo.Date, nilo.Standard.Format(time.DateOnly))
	}
}

func TestNewYearGrid_Leap(t *testing.T) {
	g := NewYearGrid(2023)

	if !g.Leap {
		t.Error("2023 Leap = false, want true")
	}
	if !g.End.Equal(date(2024, time.February, 29)) {
		t.Errorf("End = %s, want 2024-02-29", g.End.Format(time.DateOnly))
	}

	var got []string
	for _, d := range g.Intercalary {
		got = append(got, d.Date.String()+" "+d.Standard.Format(time.DateOnly))
	}
	want := []string{"Nilo 2023 2024-02-28", "Bix 2023 2024-02-29"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Intercalary mismatch (-want +got):\n%s", diff)
	}
}

// Month boundaries in the grid agree with the converter.
func TestNewYearGrid_MatchesConversion(t *testing.T) {
	for _, year := range []int{1999, 2023, 2024} {
		g := NewYearGrid(year)
		for _, mg := range g.Months {
			start, err := TredecoToStandard(year, int(mg.Month), 1)
			if err != nil {
				t.Fatal(err)
			}
			end, err := TredecoToStandard(year, int(mg.Month), DaysPerMonth)
			if err != nil {
				t.Fatal(err)
			}
			if !mg.Start.Equal(start) || !mg.End.Equal(end) {
				t.Errorf("%d %s: grid %s..%s, converter %s..%s", year, mg.Month,
					mg.Start.Format(time.DateOnly), mg.End.Format(time.DateOnly),
					start.Format(time.DateOnly), end.Format(time.DateOnly))
			}
		}
		if !g.contains(g.End) || g.contains(g.End.AddDate(0, 0, 1)) || g.contains(g.Start.AddDate(0, 0, -1)) {
			t.Errorf("%d: contains boundaries wrong", year)
		}
	}
}
