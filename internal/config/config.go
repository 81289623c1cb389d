// Package config loads the dashboard configuration from the environment.
//
// Loading order:
//  1. Load .env via godotenv (non-fatal if absent, never overrides the
//     process environment).
//  2. Populate Config from WEATHERDASH_* variables with envconfig.
//  3. Validate the struct using go-playground/validator.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/appengine-ltd/weatherdash/internal/weather"
)

const envPrefix = "WEATHERDASH"

type Config struct {
	Debug bool `envconfig:"DEBUG" default:"false"`

	City    string  `envconfig:"CITY" default:"London" validate:"required"`
	Country string  `envconfig:"COUNTRY" default:"GB"`
	Lat     float64 `envconfig:"LAT" default:"51.5074" validate:"gte=-90,lte=90"`
	Lon     float64 `envconfig:"LON" default:"-0.1278" validate:"gte=-180,lte=180"`

	// Favorites are the other cities the dashboard can switch to.
	Favorites Favorites `envconfig:"FAVORITES"`

	// Offline swaps the network provider for the synthetic one.
	Offline          bool   `envconfig:"OFFLINE" default:"false"`
	OfflineCondition string `envconfig:"OFFLINE_CONDITION" default:"partly_cloudy"`

	RefreshMinutes int           `envconfig:"REFRESH_MINUTES" default:"10" validate:"gte=1"`
	CacheTTL       time.Duration `envconfig:"CACHE_TTL" default:"10m" validate:"gte=0s"`

	EnableDynamicTheme bool    `envconfig:"DYNAMIC_THEME" default:"true"`
	// FixedThemeIndex selects a period 0..11 when dynamic theming is off; -1 means none.
	FixedThemeIndex    int     `envconfig:"FIXED_THEME_INDEX" default:"-1" validate:"gte=-1,lte=11"`
	AnimationIntensity float64 `envconfig:"ANIMATION_INTENSITY" default:"0.7" validate:"gte=0,lte=1"`

	// Seed fixes the particle RNG; 0 seeds from the clock.
	Seed   uint64 `envconfig:"SEED" default:"0"`
	Width  int    `envconfig:"WIDTH" default:"1100" validate:"gte=320"`
	Height int    `envconfig:"HEIGHT" default:"720" validate:"gte=240"`
}

// Favorites decodes WEATHERDASH_FAVORITES, a semicolon separated list of
// "Name,Country,Lat,Lon" entries. Country may be empty.
type Favorites []weather.Location

func (f *Favorites) Decode(value string) error {
	var out Favorites
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		loc, err := parseFavorite(entry)
		if err != nil {
			return err
		}
		out = append(out, loc)
	}
	*f = out
	return nil
}

func parseFavorite(entry string) (weather.Location, error) {
	fields := strings.Split(entry, ",")
	if len(fields) != 4 {
		return weather.Location{}, fmt.Errorf("favorite %q: want Name,Country,Lat,Lon", entry)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if fields[0] == "" {
		return weather.Location{}, fmt.Errorf("favorite %q: missing name", entry)
	}
	lat, err := strconv.ParseFloat(fields[2], 64)
	if err != nil || lat < -90 || lat > 90 {
		return weather.Location{}, fmt.Errorf("favorite %q: bad latitude %q", entry, fields[2])
	}
	lon, err := strconv.ParseFloat(fields[3], 64)
	if err != nil || lon < -180 || lon > 180 {
		return weather.Location{}, fmt.Errorf("favorite %q: bad longitude %q", entry, fields[3])
	}
	return weather.Location{Name: fields[0], Country: fields[1], Lat: lat, Lon: lon}, nil
}

// ThemeSettings is the persisted theme preference pair the scheduler applies.
type ThemeSettings struct {
	EnableDynamicTheme bool
	FixedThemeIndex    int
}

type ConfigErrorType string

const (
	ErrParsing    ConfigErrorType = "PARSING_FAILED"
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
)

// ConfigError wraps a loading failure with its category.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func Load() (*Config, error) {
	_ = godotenv.Load()
	return process()
}

func process() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrParsing,
			Message: "failed to process environment configuration",
			Err:     err,
		}
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return &ConfigError{
			Type:    ErrValidation,
			Message: "configuration validation failed",
			Err:     err,
		}
	}
	return nil
}

func (c *Config) Location() weather.Location {
	return weather.Location{Name: c.City, Country: c.Country, Lat: c.Lat, Lon: c.Lon}
}

// Locations lists the configured city first, then each favorite not already
// present.
func (c *Config) Locations() []weather.Location {
	primary := c.Location()
	out := []weather.Location{primary}
	seen := map[string]bool{primary.Key(): true}
	for _, loc := range c.Favorites {
		if seen[loc.Key()] {
			continue
		}
		seen[loc.Key()] = true
		out = append(out, loc)
	}
	return out
}

func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshMinutes) * time.Minute
}

func (c *Config) ThemeSettings() ThemeSettings {
	return ThemeSettings{EnableDynamicTheme: c.EnableDynamicTheme, FixedThemeIndex: c.FixedThemeIndex}
}
