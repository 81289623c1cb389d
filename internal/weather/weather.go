// Package weather carries the weather values the dashboard consumes and the
// providers that produce them. The animation and theme packages only ever see
// already-resolved values from here.
package weather

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNoCoordinates = errors.New("location has no coordinates")
	ErrCircuitOpen   = errors.New("weather provider circuit open")
)

type Location struct {
	Name    string
	Country string
	Lat     float64
	Lon     float64
}

// Key is the stable favourite/cache id, e.g. "new_york_us".
func (l Location) Key() string {
	return strings.ReplaceAll(strings.ToLower(l.Name+"_"+l.Country), " ", "_")
}

// Snapshot is the current-conditions value the animation state derives from.
type Snapshot struct {
	Temperature float64
	FeelsLike   float64
	Humidity    int
	WindSpeed   float64
	Pressure    int
	Condition   Condition
	Description string
	Sunrise     *time.Time
	Sunset      *time.Time
	Timestamp   time.Time
}

type ForecastDay struct {
	Date              time.Time
	MinTemp           float64
	MaxTemp           float64
	Condition         Condition
	PrecipitationProb int
}

type Report struct {
	Location Location
	Current  Snapshot
	// Hourly holds temperatures for the next hours, index 0 being now.
	Hourly   []float64
	Forecast []ForecastDay
}

type Provider interface {
	Fetch(ctx context.Context, loc Location) (Report, error)
}
