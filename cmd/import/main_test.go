package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zapponejosh/tredeco-api/internal/api"
	"github.com/zapponejosh/tredeco-api/internal/database"
	"github.com/zapponejosh/tredeco-api/internal/places"
)

func TestReadEntries(t *testing.T) {
	input := `
- api_key: s3cret
  city: Krakow
- owner: 9f86d081884c7d65
  label: Hel
  latitude: 54.608
  longitude: 18.801
`
	got, err := readEntries(strings.NewReader(input), places.Default())
	if err != nil {
		t.Fatalf("readEntries() error = %v", err)
	}

	want := []*database.Location{
		{Owner: api.OwnerID("s3cret"), Label: "Kraków", Latitude: 50.0647, Longitude: 19.945},
		{Owner: "9f86d081884c7d65", Label: "Hel", Latitude: 54.608, Longitude: 18.801},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readEntries() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadEntries_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"not a list", "city: krakow"},
		{"no owner", "- city: krakow"},
		{"key and owner", "- {api_key: a, owner: b, city: krakow}"},
		{"unknown city", "- {api_key: a, city: atlantis}"},
		{"city and coordinates", "- {api_key: a, city: krakow, latitude: 1, longitude: 1}"},
		{"half coordinates", "- {api_key: a, latitude: 1}"},
		{"bad latitude", "- {api_key: a, latitude: 91, longitude: 1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := readEntries(strings.NewReader(tt.input), places.Default()); err == nil {
				t.Error("readEntries() error = nil, want error")
			}
		})
	}
}

func TestReadEntries_UnknownCityWrapsSentinel(t *testing.T) {
	_, err := readEntries(strings.NewReader("- {api_key: a, city: atlantis}"), places.Default())
	if !errors.Is(err, places.ErrUnknownPlace) {
		t.Errorf("error = %v, want ErrUnknownPlace", err)
	}
}
