// Package places provides the city presets a location can be picked from.
package places

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/tredeco-api/internal/astronomy"
)

//go:embed cities.yaml
var defaultCities []byte

// Place is a named location preset.
type Place struct {
	Key       string  `yaml:"key" json:"key"`
	Label     string  `yaml:"label" json:"label"`
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
}

// Presets is an ordered list of places with unique keys.
type Presets []Place

// ErrUnknownPlace is returned by Lookup for a key that is not a preset.
var ErrUnknownPlace = errors.New("unknown place")

// Default returns the built-in presets.
func Default() Presets {
	p, err := Load(bytes.NewReader(defaultCities))
	if err != nil {
		// The embedded file is part of the build.
		panic(fmt.Sprintf("places: embedded presets: %v", err))
	}
	return p
}

// LoadFile reads presets from a YAML file.
func LoadFile(path string) (Presets, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open presets: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses a YAML list of places and validates every entry.
func Load(r io.Reader) (Presets, error) {
	var p Presets
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}

	seen := make(map[string]bool, len(p))
	for i := range p {
		p[i].Key = strings.ToLower(strings.TrimSpace(p[i].Key))
		if p[i].Key == "" {
			return nil, fmt.Errorf("place %d: key is required", i)
		}
		if seen[p[i].Key] {
			return nil, fmt.Errorf("place %q: duplicate key", p[i].Key)
		}
		seen[p[i].Key] = true

		if p[i].Label == "" {
			p[i].Label = p[i].Key
		}
		if err := astronomy.ValidateCoordinates(p[i].Latitude, p[i].Longitude); err != nil {
			return nil, fmt.Errorf("place %q: %w", p[i].Key, err)
		}
	}
	if len(p) == 0 {
		return nil, errors.New("no places defined")
	}
	return p, nil
}

// Lookup finds a preset by key, ignoring case.
func (p Presets) Lookup(key string) (Place, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, pl := range p {
		if pl.Key == key {
			return pl, nil
		}
	}
	return Place{}, fmt.Errorf("%w: %q", ErrUnknownPlace, key)
}

// Keys lists the preset keys in order.
func (p Presets) Keys() []string {
	keys := make([]string, len(p))
	for i, pl := range p {
		keys[i] = pl.Key
	}
	return keys
}
