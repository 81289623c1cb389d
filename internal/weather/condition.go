package weather

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

type Condition string

const (
	ConditionUnknown      Condition = ""
	ConditionSunny        Condition = "sunny"
	ConditionPartlyCloudy Condition = "partly_cloudy"
	ConditionCloudy       Condition = "cloudy"
	ConditionRainy        Condition = "rainy"
	ConditionStorm        Condition = "storm"
	ConditionSnowy        Condition = "snowy"
	ConditionFoggy        Condition = "foggy"
)

var allConditions = []Condition{
	ConditionSunny,
	ConditionPartlyCloudy,
	ConditionCloudy,
	ConditionRainy,
	ConditionStorm,
	ConditionSnowy,
	ConditionFoggy,
}

func Conditions() []Condition {
	out := make([]Condition, len(allConditions))
	copy(out, allConditions)
	return out
}

func (c Condition) Known() bool {
	for _, known := range allConditions {
		if c == known {
			return true
		}
	}
	return false
}

func (c Condition) Label() string {
	switch c {
	case ConditionSunny:
		return "Sunny"
	case ConditionPartlyCloudy:
		return "Partly Cloudy"
	case ConditionCloudy:
		return "Cloudy"
	case ConditionRainy:
		return "Rainy"
	case ConditionStorm:
		return "Storm"
	case ConditionSnowy:
		return "Snowy"
	case ConditionFoggy:
		return "Foggy"
	default:
		return "Unknown"
	}
}

var conditionAliases = map[string]Condition{
	"sunny":         ConditionSunny,
	"sun":           ConditionSunny,
	"clear":         ConditionSunny,
	"clear sky":     ConditionSunny,
	"partly cloudy": ConditionPartlyCloudy,
	"partlycloudy":  ConditionPartlyCloudy,
	"few clouds":    ConditionPartlyCloudy,
	"mostly sunny":  ConditionPartlyCloudy,
	"cloudy":        ConditionCloudy,
	"clouds":        ConditionCloudy,
	"overcast":      ConditionCloudy,
	"rainy":         ConditionRainy,
	"rain":          ConditionRainy,
	"drizzle":       ConditionRainy,
	"showers":       ConditionRainy,
	"storm":         ConditionStorm,
	"thunderstorm":  ConditionStorm,
	"thunder":       ConditionStorm,
	"snowy":         ConditionSnowy,
	"snow":          ConditionSnowy,
	"sleet":         ConditionSnowy,
	"foggy":         ConditionFoggy,
	"fog":           ConditionFoggy,
	"mist":          ConditionFoggy,
	"haze":          ConditionFoggy,
}

// ParseCondition maps provider or user supplied text onto a Condition.
// Typos within a small edit distance of a known alias still match.
func ParseCondition(raw string) Condition {
	norm := normaliseName(raw)
	if norm == "" {
		return ConditionUnknown
	}
	if c, ok := conditionAliases[norm]; ok {
		return c
	}
	if len(norm) < 3 {
		return ConditionUnknown
	}

	best := ConditionUnknown
	bestDist := -1
	for alias, c := range conditionAliases {
		dist := levenshtein.ComputeDistance(norm, alias)
		if dist > fuzzyLimit(len(alias)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && c < best) {
			best = c
			bestDist = dist
		}
	}
	return best
}

func fuzzyLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normaliseName(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	var b strings.Builder
	lastSpace := true
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '-' || r == '_' || r == '/' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
