package weather

import (
	"context"
	"math"
	"time"
)

type syntheticBase struct {
	temp     float64
	humidity int
	wind     float64
	pressure int
}

var syntheticBases = map[Condition]syntheticBase{
	ConditionSunny:        {temp: 24, humidity: 40, wind: 8, pressure: 1022},
	ConditionPartlyCloudy: {temp: 19, humidity: 55, wind: 12, pressure: 1016},
	ConditionCloudy:       {temp: 15, humidity: 70, wind: 15, pressure: 1010},
	ConditionRainy:        {temp: 12, humidity: 85, wind: 20, pressure: 1002},
	ConditionStorm:        {temp: 17, humidity: 90, wind: 45, pressure: 992},
	ConditionSnowy:        {temp: -2, humidity: 80, wind: 10, pressure: 1008},
	ConditionFoggy:        {temp: 8, humidity: 95, wind: 4, pressure: 1018},
}

// Synthetic produces a deterministic report for a fixed condition. It backs
// offline mode and the demo keys.
type Synthetic struct {
	Condition Condition
	Now       func() time.Time
}

func NewSynthetic(c Condition) *Synthetic {
	if !c.Known() {
		c = ConditionPartlyCloudy
	}
	return &Synthetic{Condition: c, Now: time.Now}
}

func (s *Synthetic) Fetch(ctx context.Context, loc Location) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	now := s.Now()
	base, ok := syntheticBases[s.Condition]
	if !ok {
		base = syntheticBases[ConditionPartlyCloudy]
	}

	snap := Snapshot{
		Temperature: base.temp,
		FeelsLike:   base.temp - base.wind/10,
		Humidity:    base.humidity,
		WindSpeed:   base.wind,
		Pressure:    base.pressure,
		Condition:   s.Condition,
		Description: s.Condition.Label(),
		Timestamp:   now,
	}
	if rise, set, ok := EstimateSunTimes(now, loc.Lat, loc.Lon); ok {
		snap.Sunrise = &rise
		snap.Sunset = &set
	}

	// Diurnal curve peaking mid-afternoon.
	hourly := make([]float64, hourlySamples)
	for i := range hourly {
		h := float64((now.Hour() + i) % 24)
		v := base.temp + 4*math.Sin((h-9)/24*2*math.Pi)
		hourly[i] = math.Round(v*10) / 10
	}

	days := make([]ForecastDay, 7)
	y, m, d := now.Date()
	for i := range days {
		swing := float64(i%3) - 1
		days[i] = ForecastDay{
			Date:      time.Date(y, m, d+i, 0, 0, 0, 0, now.Location()),
			MinTemp:   base.temp - 5 + swing,
			MaxTemp:   base.temp + 4 + swing,
			Condition: s.Condition,
		}
		if s.Condition == ConditionRainy || s.Condition == ConditionStorm {
			days[i].PrecipitationProb = 70
		}
	}

	return Report{Location: loc, Current: snap, Hourly: hourly, Forecast: days}, nil
}
