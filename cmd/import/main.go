// Command import loads saved locations from a YAML file into the SQLite
// database, for example when moving users between deployments.
//
// Usage:
//
//	go run ./cmd/import -file data/locations.yaml -db data/tredeco.db
//
// Each entry names an API key (or an owner id) and either a preset city or
// explicit coordinates:
//
//	- api_key: s3cret
//	  city: krakow
//	- owner: 9f86d081884c7d65
//	  label: Hel
//	  latitude: 54.608
//	  longitude: 18.801
//
// All entries are written in one transaction; one bad entry imports
// nothing. Existing locations for the same owner are replaced.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/tredeco-api/internal/api"
	"github.com/zapponejosh/tredeco-api/internal/astronomy"
	"github.com/zapponejosh/tredeco-api/internal/database"
	"github.com/zapponejosh/tredeco-api/internal/logger"
	"github.com/zapponejosh/tredeco-api/internal/places"
)

// Entry is one location in the import file.
type Entry struct {
	APIKey    string   `yaml:"api_key"`
	Owner     string   `yaml:"owner"`
	City      string   `yaml:"city"`
	Label     string   `yaml:"label"`
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
}

func main() {
	filePath := flag.String("file", "data/locations.yaml", "Path to YAML file with locations")
	dbPath := flag.String("db", "data/tredeco.db", "Path to SQLite database")
	citiesPath := flag.String("cities", "", "Optional city presets file (default: built-in presets)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	log := logger.New(os.Stdout, level, "text")

	if err := run(*filePath, *dbPath, *citiesPath, log); err != nil {
		log.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("import complete")
}

func run(filePath, dbPath, citiesPath string, log *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	// =========================================================================
	// Step 1: Read and resolve entries
	// =========================================================================
	log.Info("reading locations file", slog.String("path", filePath))

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open locations file: %w", err)
	}
	defer f.Close()

	presets := places.Default()
	if citiesPath != "" {
		if presets, err = places.LoadFile(citiesPath); err != nil {
			return err
		}
	}

	locations, err := readEntries(f, presets)
	if err != nil {
		return err
	}
	log.Info("parsed locations", slog.Int("entries", len(locations)))

	// =========================================================================
	// Step 2: Open database and run migrations
	// =========================================================================
	log.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Info("migrations complete", slog.Int("applied", migrated))

	// =========================================================================
	// Step 3: Import in a transaction
	// =========================================================================
	err = db.WithTx(ctx, func(tx *database.Tx) error {
		for i, loc := range locations {
			if err := tx.SaveLocation(ctx, loc); err != nil {
				return fmt.Errorf("entry %d: %w", i+1, err)
			}
			log.Debug("saved location", slog.String("owner", loc.Owner), slog.String("label", loc.Label))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import locations: %w", err)
	}

	// =========================================================================
	// Step 4: Verify import
	// =========================================================================
	total, err := db.CountLocations(ctx)
	if err != nil {
		return err
	}

	elapsed := time.Since(startTime)
	log.Info("import verified",
		slog.Int("imported", len(locations)),
		slog.Int("total_locations", total),
		slog.Duration("elapsed", elapsed),
	)

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Locations imported:  %d\n", len(locations))
	fmt.Printf("Locations stored:    %d\n", total)
	fmt.Printf("Time elapsed:        %v\n", elapsed.Round(time.Millisecond))

	return nil
}

// readEntries decodes the import file and resolves every entry into a
// location ready to save.
func readEntries(r io.Reader, presets places.Presets) ([]*database.Location, error) {
	var entries []Entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("locations file is empty")
		}
		return nil, fmt.Errorf("parse locations file: %w", err)
	}

	locations := make([]*database.Location, 0, len(entries))
	for i, e := range entries {
		loc, err := e.resolve(presets)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

func (e Entry) resolve(presets places.Presets) (*database.Location, error) {
	loc := &database.Location{Owner: e.Owner, Label: e.Label}

	switch {
	case e.APIKey != "" && e.Owner != "":
		return nil, errors.New("set api_key or owner, not both")
	case e.APIKey != "":
		loc.Owner = api.OwnerID(e.APIKey)
	case e.Owner == "":
		return nil, errors.New("api_key or owner is required")
	}

	switch {
	case e.City != "":
		if e.Latitude != nil || e.Longitude != nil {
			return nil, errors.New("set city or coordinates, not both")
		}
		place, err := presets.Lookup(e.City)
		if err != nil {
			return nil, err
		}
		if loc.Label == "" {
			loc.Label = place.Label
		}
		loc.Latitude, loc.Longitude = place.Latitude, place.Longitude

	case e.Latitude != nil && e.Longitude != nil:
		if err := astronomy.ValidateCoordinates(*e.Latitude, *e.Longitude); err != nil {
			return nil, err
		}
		loc.Latitude, loc.Longitude = *e.Latitude, *e.Longitude

	default:
		return nil, errors.New("city or latitude and longitude are required")
	}

	return loc, nil
}
