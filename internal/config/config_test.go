package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessDefaults(t *testing.T) {
	cfg, err := process()
	require.NoError(t, err)

	assert.Equal(t, "London", cfg.City)
	assert.Equal(t, 10, cfg.RefreshMinutes)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.InDelta(t, 0.7, cfg.AnimationIntensity, 1e-9)
	assert.Equal(t, ThemeSettings{EnableDynamicTheme: true, FixedThemeIndex: -1}, cfg.ThemeSettings())
	assert.Equal(t, "london_gb", cfg.Location().Key())
}

func TestProcessReadsEnvironment(t *testing.T) {
	t.Setenv("WEATHERDASH_CITY", "New York")
	t.Setenv("WEATHERDASH_COUNTRY", "US")
	t.Setenv("WEATHERDASH_LAT", "40.71")
	t.Setenv("WEATHERDASH_LON", "-74.01")
	t.Setenv("WEATHERDASH_DYNAMIC_THEME", "false")
	t.Setenv("WEATHERDASH_FIXED_THEME_INDEX", "9")
	t.Setenv("WEATHERDASH_REFRESH_MINUTES", "3")

	cfg, err := process()
	require.NoError(t, err)
	assert.Equal(t, "new_york_us", cfg.Location().Key())
	assert.Equal(t, 3*time.Minute, cfg.RefreshInterval())
	assert.Equal(t, ThemeSettings{EnableDynamicTheme: false, FixedThemeIndex: 9}, cfg.ThemeSettings())
}

func TestFavorites(t *testing.T) {
	t.Setenv("WEATHERDASH_FAVORITES", "Tehran,IR,35.69,51.39; Reykjavik,,64.15,-21.94;london, gb ,51.5,-0.12;")

	cfg, err := process()
	require.NoError(t, err)
	require.Len(t, cfg.Favorites, 3)
	assert.Equal(t, "Reykjavik", cfg.Favorites[1].Name)
	assert.Equal(t, "", cfg.Favorites[1].Country)
	assert.InDelta(t, -21.94, cfg.Favorites[1].Lon, 1e-9)

	var keys []string
	for _, loc := range cfg.Locations() {
		keys = append(keys, loc.Key())
	}
	assert.Equal(t, []string{"london_gb", "tehran_ir", "reykjavik_"}, keys, "the configured city is not repeated")
}

func TestFavoritesRejectMalformedEntries(t *testing.T) {
	for _, value := range []string{
		"Tehran,IR,35.69",
		",IR,35.69,51.39",
		"Tehran,IR,north,51.39",
		"Tehran,IR,35.69,181",
	} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("WEATHERDASH_FAVORITES", value)
			_, err := process()
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, ErrParsing, cfgErr.Type)
		})
	}
}

func TestProcessRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name, key, value string
		want             ConfigErrorType
	}{
		{"latitude", "WEATHERDASH_LAT", "123", ErrValidation},
		{"theme index", "WEATHERDASH_FIXED_THEME_INDEX", "12", ErrValidation},
		{"intensity", "WEATHERDASH_ANIMATION_INTENSITY", "1.5", ErrValidation},
		{"refresh", "WEATHERDASH_REFRESH_MINUTES", "0", ErrValidation},
		{"not a number", "WEATHERDASH_WIDTH", "wide", ErrParsing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := process()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.want, cfgErr.Type)
		})
	}
}
