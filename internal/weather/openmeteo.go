package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

)

const (
	openMeteoURL    = "https://api.open-meteo.com/v1/forecast"
	openMeteoLayout = "2006-01-02T15:04"
	hourlySamples   = 24
)

// OpenMeteo fetches current conditions, the next 24 hourly temperatures and a
// daily forecast in one request.
type OpenMeteo struct {
	baseURL string
	client  *resilientClient
}

func NewOpenMeteo(client *http.Client) *OpenMeteo {
	return &OpenMeteo{
		baseURL: openMeteoURL,
		client: newResilientClient("openmeteo", client, BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		}),
	}
}

// WithBaseURL points the client at another endpoint, mostly for tests.
func (p *OpenMeteo) WithBaseURL(u string) *OpenMeteo {
	p.baseURL = u
	return p
}

func (p *OpenMeteo) WithBackoff(b BackoffConfig) *OpenMeteo {
	p.client.backoff = b
	return p
}

type openMeteoPayload struct {
	UTCOffsetSeconds int `json:"utc_offset_seconds"`
	Current          struct {
		Time                string  `json:"time"`
		Temperature         float64 `json:"temperature_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		RelativeHumidity    float64 `json:"relative_humidity_2m"`
		WindSpeed           float64 `json:"wind_speed_10m"`
		SurfacePressure     float64 `json:"surface_pressure"`
		WeatherCode         int     `json:"weather_code"`
	} `json:"current"`
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
	} `json:"hourly"`
	Daily struct {
		Time              []string  `json:"time"`
		WeatherCode       []int     `json:"weather_code"`
		TemperatureMax    []float64 `json:"temperature_2m_max"`
		TemperatureMin    []float64 `json:"temperature_2m_min"`
		Sunrise           []string  `json:"sunrise"`
		Sunset            []string  `json:"sunset"`
		PrecipitationProb []int     `json:"precipitation_probability_max"`
	} `json:"daily"`
}

func (p *OpenMeteo) Fetch(ctx context.Context, loc Location) (Report, error) {
	if loc.Lat == 0 && loc.Lon == 0 {
		return Report{}, ErrNoCoordinates
	}

	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(loc.Lat, 'f', 4, 64))
	values.Set("longitude", strconv.FormatFloat(loc.Lon, 'f', 4, 64))
	values.Set("current", "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m,surface_pressure")
	values.Set("hourly", "temperature_2m")
	values.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min,sunrise,sunset,precipitation_probability_max")
	values.Set("timezone", "auto")
	values.Set("forecast_days", "7")

	resp, err := p.client.get(ctx, p.baseURL+"?"+values.Encode())
	if err != nil {
		return Report{}, fmt.Errorf("openmeteo fetch %s: %w", loc.Key(), err)
	}
	defer resp.Body.Close()

	var payload openMeteoPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Report{}, fmt.Errorf("openmeteo decode: %w", err)
	}
	return payload.report(loc), nil
}

func (pl *openMeteoPayload) report(loc Location) Report {
	zone := time.FixedZone("", pl.UTCOffsetSeconds)
	parse := func(s string) (time.Time, bool) {
		t, err := time.ParseInLocation(openMeteoLayout, s, zone)
		if err != nil {
			t, err = time.ParseInLocation("2006-01-02", s, zone)
		}
		return t, err == nil
	}

	ts, ok := parse(pl.Current.Time)
	if !ok {
		ts = time.Now().In(zone)
	}
	code := pl.Current.WeatherCode
	snap := Snapshot{
		Temperature: pl.Current.Temperature,
		FeelsLike:   pl.Current.ApparentTemperature,
		Humidity:    int(pl.Current.RelativeHumidity + 0.5),
		WindSpeed:   pl.Current.WindSpeed,
		Pressure:    int(pl.Current.SurfacePressure + 0.5),
		Condition:   ConditionForWMO(code),
		Description: DescribeWMO(code),
		Timestamp:   ts,
	}
	if len(pl.Daily.Sunrise) > 0 && len(pl.Daily.Sunset) > 0 {
		if rise, ok := parse(pl.Daily.Sunrise[0]); ok {
			snap.Sunrise = &rise
		}
		if set, ok := parse(pl.Daily.Sunset[0]); ok {
			snap.Sunset = &set
		}
	}

	// Hourly series starts at midnight; skip forward to the current hour.
	start := 0
	hour := ts.Truncate(time.Hour)
	for i, s := range pl.Hourly.Time {
		if t, ok := parse(s); ok && !t.Before(hour) {
			start = i
			break
		}
	}
	var hourly []float64
	if start < len(pl.Hourly.Temperature) {
		end := min(start+hourlySamples, len(pl.Hourly.Temperature))
		hourly = append(hourly, pl.Hourly.Temperature[start:end]...)
	}

	var days []ForecastDay
	for i, s := range pl.Daily.Time {
		d, ok := parse(s)
		if !ok {
			continue
		}
		day := ForecastDay{Date: d}
		if i < len(pl.Daily.TemperatureMin) {
			day.MinTemp = pl.Daily.TemperatureMin[i]
		}
		if i < len(pl.Daily.TemperatureMax) {
			day.MaxTemp = pl.Daily.TemperatureMax[i]
		}
		if i < len(pl.Daily.WeatherCode) {
			day.Condition = ConditionForWMO(pl.Daily.WeatherCode[i])
		}
		if i < len(pl.Daily.PrecipitationProb) {
			day.PrecipitationProb = pl.Daily.PrecipitationProb[i]
		}
		days = append(days, day)
	}

	return Report{Location: loc, Current: snap, Hourly: hourly, Forecast: days}
}

// ConditionForWMO maps a WMO weather interpretation code onto a Condition.
func ConditionForWMO(code int) Condition {
	switch {
	case code == 0:
		return ConditionSunny
	case code == 1 || code == 2:
		return ConditionPartlyCloudy
	case code == 3:
		return ConditionCloudy
	case code == 45 || code == 48:
		return ConditionFoggy
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return ConditionRainy
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return ConditionSnowy
	case code >= 95 && code <= 99:
		return ConditionStorm
	default:
		return ConditionUnknown
	}
}

func DescribeWMO(code int) string {
	switch {
	case code == 0:
		return "Clear sky"
	case code == 1:
		return "Mainly clear"
	case code == 2:
		return "Partly cloudy"
	case code == 3:
		return "Overcast"
	case code == 45 || code == 48:
		return "Fog"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case (code >= 61 && code <= 67) || (code >= 80 && code <= 82):
		return "Rain"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "Snow"
	case code >= 95 && code <= 99:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}
