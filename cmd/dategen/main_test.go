package main

import (
	"strings"
	"testing"

	"github.com/zapponejosh/tredeco-api/internal/tredeco"
)

func TestFormatGrid(t *testing.T) {
	got := formatGrid(tredeco.NewYearGrid(2024))

	want := strings.Join([]string{
		"  Fri Sat Sun Mon Tue Wed Thu",
		"    1   2   3   4   5   6   7",
		"    8   9  10  11  12  13  14",
		"   15  16  17  18  19  20  21",
		"   22  23  24  25  26  27  28",
		"",
	}, "\n")

	if got != want {
		t.Errorf("formatGrid() =\n%s\nwant\n%s", got, want)
	}
}
