package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/appengine-ltd/weatherdash/internal/weather"
)

var noon = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestFromWeatherBounds(t *testing.T) {
	for _, c := range append(weather.Conditions(), weather.ConditionUnknown, "hail") {
		for _, hum := range []int{-20, 0, 40, 80, 100, 250} {
			for _, wind := range []float64{-10, 0, 5, 20, 60, 400} {
				for _, temp := range []float64{-40, 0, 4, 10, 45} {
					s := FromWeather(&weather.Snapshot{
						Condition:   c,
						Humidity:    hum,
						WindSpeed:   wind,
						Temperature: temp,
					}, noon)
					assert.GreaterOrEqual(t, s.Intensity, 0.0)
					assert.LessOrEqual(t, s.Intensity, 1.0)
					assert.GreaterOrEqual(t, s.ParticleCount, 0)
					assert.LessOrEqual(t, s.WindAngle, maxWindAngle)
					if Multiplier(s.Condition) == 0 {
						assert.Zero(t, s.ParticleCount, "condition %s", c)
					}
				}
			}
		}
	}
}

func TestFromWeatherScenarios(t *testing.T) {
	rainy := FromWeather(&weather.Snapshot{Condition: weather.ConditionRainy, Humidity: 80, WindSpeed: 5}, noon)
	assert.Equal(t, 1.0, rainy.Intensity)
	assert.Equal(t, 120, rainy.ParticleCount)
	assert.Equal(t, 10.0, rainy.WindAngle)

	snowy := FromWeather(&weather.Snapshot{Condition: weather.ConditionSnowy, Temperature: 0}, noon)
	assert.Equal(t, 1.0, snowy.Intensity)
	assert.Equal(t, 70, snowy.ParticleCount)

	storm := FromWeather(&weather.Snapshot{Condition: weather.ConditionStorm, WindSpeed: 20}, noon)
	assert.Equal(t, 1.0, storm.Intensity)
	assert.Equal(t, 180, storm.ParticleCount)
	assert.Equal(t, 4.0, storm.CloudSpeed)
	assert.Equal(t, 30.0, storm.WindAngle)

	cloudy := FromWeather(&weather.Snapshot{Condition: weather.ConditionCloudy, WindSpeed: 15}, noon)
	assert.Equal(t, 0.3, cloudy.Intensity)
	assert.InDelta(t, 1.5, cloudy.CloudSpeed, 1e-9)
	assert.Equal(t, defaultWindAngle, cloudy.WindAngle)

	foggy := FromWeather(&weather.Snapshot{Condition: weather.ConditionFoggy, Humidity: 35}, noon)
	assert.InDelta(t, 0.5, foggy.Intensity, 1e-9)
}

func TestFromWeatherMissingSnapshot(t *testing.T) {
	s := FromWeather(nil, noon)
	assert.Equal(t, weather.ConditionPartlyCloudy, s.Condition)
	assert.Equal(t, 0.3, s.Intensity)
	assert.Zero(t, s.ParticleCount)
	assert.Equal(t, defaultCloudSpeed, s.CloudSpeed)
	assert.False(t, s.IsNight)

	unknown := FromWeather(&weather.Snapshot{Condition: "hail", Humidity: 90}, noon)
	assert.Equal(t, weather.ConditionPartlyCloudy, unknown.Condition)
	assert.Equal(t, 0.3, unknown.Intensity)
}

func TestNightFlag(t *testing.T) {
	rise := time.Date(2024, 6, 1, 6, 30, 0, 0, time.UTC)
	set := time.Date(2024, 6, 1, 19, 45, 0, 0, time.UTC)
	snap := &weather.Snapshot{Condition: weather.ConditionSunny, Sunrise: &rise, Sunset: &set}

	at := func(h, m int) time.Time { return time.Date(2024, 6, 1, h, m, 0, 0, time.UTC) }
	assert.True(t, FromWeather(snap, at(6, 29)).IsNight)
	assert.False(t, FromWeather(snap, at(6, 30)).IsNight)
	assert.False(t, FromWeather(snap, at(19, 44)).IsNight)
	assert.True(t, FromWeather(snap, at(19, 45)).IsNight)

	bare := &weather.Snapshot{Condition: weather.ConditionSunny}
	assert.True(t, FromWeather(bare, at(5, 59)).IsNight)
	assert.False(t, FromWeather(bare, at(6, 0)).IsNight)
	assert.True(t, FromWeather(bare, at(18, 0)).IsNight)
}

func TestUpdateIntensityUsesDerivationMultipliers(t *testing.T) {
	s := FromWeather(&weather.Snapshot{Condition: weather.ConditionRainy, Humidity: 40}, noon)
	assert.Equal(t, 60, s.ParticleCount)

	s.UpdateIntensity(1.7)
	assert.Equal(t, 1.0, s.Intensity)
	assert.Equal(t, 120, s.ParticleCount)

	s.UpdateIntensity(-1)
	assert.Equal(t, 0.0, s.Intensity)
	assert.Zero(t, s.ParticleCount)

	snow := State{Condition: weather.ConditionSnowy}
	snow.UpdateIntensity(0.5)
	assert.Equal(t, 35, snow.ParticleCount)

	sunny := State{Condition: weather.ConditionSunny}
	sunny.UpdateIntensity(0.9)
	assert.Zero(t, sunny.ParticleCount)
}
