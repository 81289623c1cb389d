// Package animation turns a weather snapshot into an animation state and runs
// the particle and cloud simulation drawn behind the dashboard.
package animation

import (
	"math"
	"time"

	"github.com/appengine-ltd/weatherdash/internal/log"
	"github.com/appengine-ltd/weatherdash/internal/weather"
)

const (
	defaultWindAngle  = 10.0
	defaultCloudSpeed = 1.0
	maxWindAngle      = 30.0
)

// State is the derived description of what the background should show.
type State struct {
	Condition     weather.Condition
	Intensity     float64
	IsNight       bool
	ParticleCount int
	WindAngle     float64
	CloudSpeed    float64
}

// Multiplier is the particle count at full intensity for a precipitating
// condition. Conditions without precipitation return 0.
func Multiplier(c weather.Condition) int {
	switch c {
	case weather.ConditionRainy:
		return 120
	case weather.ConditionSnowy:
		return 70
	case weather.ConditionStorm:
		return 180
	default:
		return 0
	}
}

// FromWeather derives the animation state for snap at wall-clock time now.
// A nil snapshot or unknown condition yields a calm partly cloudy sky.
func FromWeather(snap *weather.Snapshot, now time.Time) State {
	s := State{
		Condition:  weather.ConditionPartlyCloudy,
		Intensity:  0.3,
		IsNight:    isNight(snap, now),
		WindAngle:  defaultWindAngle,
		CloudSpeed: defaultCloudSpeed,
	}
	if snap == nil || !snap.Condition.Known() {
		return s
	}

	s.Condition = snap.Condition
	hum := float64(snap.Humidity)
	wind := snap.WindSpeed
	switch snap.Condition {
	case weather.ConditionRainy:
		s.Intensity = clamp01(hum / 80)
		s.WindAngle = windAngle(wind)
	case weather.ConditionStorm:
		s.Intensity = clamp01(0.9 + wind/100)
		s.WindAngle = windAngle(wind)
		s.CloudSpeed = 2 + wind/10
	case weather.ConditionSnowy:
		s.Intensity = clamp01(math.Max(0.4, 1-snap.Temperature/10))
		s.WindAngle = windAngle(wind) * 0.5
	case weather.ConditionCloudy:
		s.Intensity = 0.3
		s.CloudSpeed = 0.5 + wind/15
	case weather.ConditionPartlyCloudy:
		s.Intensity = 0.4
		s.CloudSpeed = 0.7 + wind/20
	case weather.ConditionSunny:
		s.Intensity = 0.5
	case weather.ConditionFoggy:
		s.Intensity = clamp01(hum / 70)
	}
	s.ParticleCount = particleCount(s.Condition, s.Intensity)

	log.Debugw("animation state derived",
		"condition", s.Condition,
		"intensity", s.Intensity,
		"night", s.IsNight,
		"particles", s.ParticleCount)
	return s
}

// UpdateIntensity clamps v to [0,1] and recomputes the particle count with
// the same multipliers FromWeather uses.
func (s *State) UpdateIntensity(v float64) {
	s.Intensity = clamp01(v)
	s.ParticleCount = particleCount(s.Condition, s.Intensity)
}

func particleCount(c weather.Condition, intensity float64) int {
	return int(float64(Multiplier(c)) * intensity)
}

func windAngle(speed float64) float64 {
	a := math.Min(maxWindAngle, speed*2)
	if math.IsNaN(a) {
		return defaultWindAngle
	}
	return a
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// isNight compares time-of-day values. now is read on its own clock, not the
// location's, so a city in another zone is judged by the viewer's clock.
func isNight(snap *weather.Snapshot, now time.Time) bool {
	if snap == nil || snap.Sunrise == nil || snap.Sunset == nil {
		h := now.Hour()
		return h < 6 || h >= 18
	}
	t := timeOfDay(now)
	return t < timeOfDay(*snap.Sunrise) || t >= timeOfDay(*snap.Sunset)
}

func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}
