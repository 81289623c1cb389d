package animation

import (
	"image/color"

	"github.com/appengine-ltd/weatherdash/internal/weather"
)

const (
	MaxClouds    = 8
	MaxParticles = 350
	FrameRate    = 60

	sunMoteCount = 25
	fogBandCount = 4
)

type CloudVariant int

const (
	CloudWispy CloudVariant = iota
	CloudPuffy
	CloudCumulus
)

type Cloud struct {
	X, Y    float64
	Speed   float64 // px per second
	Scale   float64
	Opacity float64
	Variant CloudVariant
	Depth   int
}

type ParticleKind int

const (
	KindRain ParticleKind = iota
	KindSnow
	KindMote
	KindFog
)

func (k ParticleKind) String() string {
	switch k {
	case KindRain:
		return "rain"
	case KindSnow:
		return "snow"
	case KindMote:
		return "mote"
	case KindFog:
		return "fog"
	default:
		return "unknown"
	}
}

// Particle velocities are in px per frame at the nominal frame rate.
type Particle struct {
	Kind          ParticleKind
	X, Y          float64
	VX, VY        float64
	Rotation      float64
	RotationSpeed float64
	// Life counts remaining frames for sun motes.
	Life          int
	Opacity       float64
	// Size is the diameter of snow and motes, the streak length of rain and
	// the band height of fog.
	Size          float64
	// Width is only set for fog bands.
	Width         float64
}

type Flash struct {
	Opacity float64
}

// Bump is one circle of a cloud silhouette in unscaled cloud coordinates.
type Bump struct {
	X, Y, R float64
}

var cloudBumps = map[CloudVariant][]Bump{
	CloudWispy:   {{15, 35, 18}, {40, 25, 22}, {70, 30, 20}},
	CloudPuffy:   {{20, 30, 22}, {45, 20, 26}, {75, 28, 23}, {55, 38, 24}},
	CloudCumulus: {{25, 35, 20}, {50, 22, 24}, {80, 32, 21}, {65, 42, 22}},
}

func CloudBumps(v CloudVariant) []Bump {
	b, ok := cloudBumps[v]
	if !ok {
		b = cloudBumps[CloudCumulus]
	}
	out := make([]Bump, len(b))
	copy(out, b)
	return out
}

// CloudColors returns the fill and shadow tint of cloud bumps.
func CloudColors(night bool) (base, shadow color.RGBA) {
	if night {
		return color.RGBA{R: 148, G: 163, B: 184, A: 100}, color.RGBA{R: 100, G: 116, B: 139, A: 60}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 140}, color.RGBA{R: 200, G: 200, B: 200, A: 80}
}

func ParticleColor(k ParticleKind) color.RGBA {
	switch k {
	case KindRain:
		return color.RGBA{R: 220, G: 240, B: 255, A: 200}
	case KindSnow:
		return color.RGBA{R: 255, G: 255, B: 255, A: 250}
	case KindMote:
		return color.RGBA{R: 255, G: 255, B: 150, A: 200}
	default:
		return color.RGBA{R: 220, G: 220, B: 220, A: 50}
	}
}

var FlashColor = color.RGBA{R: 255, G: 255, B: 200, A: 180}

type gradientPair struct {
	day, night [2]color.RGBA
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

var gradients = map[weather.Condition]gradientPair{
	weather.ConditionSunny: {
		day:   [2]color.RGBA{rgb(59, 130, 246), rgb(37, 99, 235)},
		night: [2]color.RGBA{rgb(30, 41, 59), rgb(15, 23, 42)},
	},
	weather.ConditionPartlyCloudy: {
		day:   [2]color.RGBA{rgb(96, 165, 250), rgb(59, 130, 246)},
		night: [2]color.RGBA{rgb(51, 65, 85), rgb(30, 41, 59)},
	},
	weather.ConditionCloudy: {
		day:   [2]color.RGBA{rgb(148, 163, 184), rgb(100, 116, 139)},
		night: [2]color.RGBA{rgb(71, 85, 105), rgb(51, 65, 85)},
	},
	weather.ConditionRainy: {
		day:   [2]color.RGBA{rgb(37, 99, 235), rgb(29, 78, 216)},
		night: [2]color.RGBA{rgb(30, 58, 138), rgb(17, 24, 39)},
	},
	weather.ConditionStorm: {
		day:   [2]color.RGBA{rgb(109, 40, 217), rgb(88, 28, 135)},
		night: [2]color.RGBA{rgb(55, 48, 163), rgb(17, 24, 39)},
	},
	weather.ConditionSnowy: {
		day:   [2]color.RGBA{rgb(186, 230, 253), rgb(125, 211, 252)},
		night: [2]color.RGBA{rgb(71, 85, 105), rgb(51, 65, 85)},
	},
	weather.ConditionFoggy: {
		day:   [2]color.RGBA{rgb(161, 161, 170), rgb(113, 113, 122)},
		night: [2]color.RGBA{rgb(82, 82, 91), rgb(63, 63, 70)},
	},
}

var fallbackGradient = gradientPair{
	day:   [2]color.RGBA{rgb(96, 165, 250), rgb(59, 130, 246)},
	night: [2]color.RGBA{rgb(30, 41, 59), rgb(15, 23, 42)},
}

// Gradient returns the top and bottom background colours for a condition.
func Gradient(c weather.Condition, night bool) (top, bottom color.RGBA) {
	p, ok := gradients[c]
	if !ok {
		p = fallbackGradient
	}
	if night {
		return p.night[0], p.night[1]
	}
	return p.day[0], p.day[1]
}
