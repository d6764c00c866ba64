// Package config reads the Tredeco API settings from the environment.
//
// A .env file in the working directory is loaded first when present, so
// local runs need no exported variables. Every setting has a default
// except API_KEY, which production requires.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the resolved server configuration.
type Config struct {
	Port int    // PORT
	Env  string // ENV: development, staging or production

	DatabasePath string // DATABASE_PATH: SQLite file with saved locations
	APIKey       string // API_KEY: guards /location; optional in development

	LogLevel  string // LOG_LEVEL: debug, info, warn or error
	LogFormat string // LOG_FORMAT: json or text

	DefaultCity string // DEFAULT_CITY: preset used when nothing is saved
	CitiesFile  string // CITIES_FILE: YAML presets replacing the built-in list

	// TimeZone is the TIMEZONE name that decides which calendar day
	// /today reports. Location is its loaded zone.
	TimeZone string
	Location *time.Location
}

// Deployment environments.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

var (
	environments = []string{EnvDevelopment, EnvStaging, EnvProduction}
	logLevels    = []string{"debug", "info", "warn", "error"}
	logFormats   = []string{"json", "text"}
)

// Load builds a Config from the environment and validates it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnvInt("PORT", 8080),
		Env:          getEnv("ENV", EnvDevelopment),
		DatabasePath: getEnv("DATABASE_PATH", "./data/tredeco.db"),
		APIKey:       getEnv("API_KEY", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		DefaultCity:  strings.ToLower(getEnv("DEFAULT_CITY", "warszawa")),
		CitiesFile:   getEnv("CITIES_FILE", ""),
		TimeZone:     getEnv("TIMEZONE", "Local"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once. It also loads Location
// from TimeZone.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if err := oneOf("ENV", c.Env, environments); err != nil {
		errs = append(errs, err)
	}
	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}
	if c.Env == EnvProduction && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}
	if err := oneOf("LOG_LEVEL", c.LogLevel, logLevels); err != nil {
		errs = append(errs, err)
	}
	if err := oneOf("LOG_FORMAT", c.LogFormat, logFormats); err != nil {
		errs = append(errs, err)
	}

	// Whether the preset exists is checked once the presets are loaded.
	if c.DefaultCity == "" {
		errs = append(errs, errors.New("DEFAULT_CITY is required"))
	}

	if c.TimeZone != "" {
		loc, err := time.LoadLocation(c.TimeZone)
		if err != nil {
			errs = append(errs, fmt.Errorf("TIMEZONE %q: %w", c.TimeZone, err))
		} else {
			c.Location = loc
		}
	}

	return errors.Join(errs...)
}

// IsDevelopment reports whether ENV is development.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction reports whether ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func oneOf(name, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s must be one of: %s; got %q", name, strings.Join(allowed, ", "), value)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt falls back on unset or non-numeric values.
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
