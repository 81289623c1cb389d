package theme

import (
	"image/color"
	"math"
)

// Role names one colour slot of a palette.
type Role int

const (
	Primary Role = iota
	OnPrimary
	PrimaryContainer
	OnPrimaryContainer
	Secondary
	OnSecondary
	SecondaryContainer
	OnSecondaryContainer
	Surface
	OnSurface
	SurfaceVariant
	OnSurfaceVariant
	Background
	OnBackground
	Outline
	OutlineVariant
	Error
	OnError
	Success
	OnSuccess
	Warning
	Info
	TextPrimary
	TextSecondary

	roleCount = 24
)

var roleNames = [roleCount]string{
	"Primary", "OnPrimary", "PrimaryContainer", "OnPrimaryContainer",
	"Secondary", "OnSecondary", "SecondaryContainer", "OnSecondaryContainer",
	"Surface", "OnSurface", "SurfaceVariant", "OnSurfaceVariant",
	"Background", "OnBackground", "Outline", "OutlineVariant",
	"Error", "OnError", "Success", "OnSuccess",
	"Warning", "Info", "TextPrimary", "TextSecondary",
}

func Roles() []Role {
	out := make([]Role, roleCount)
	for i := range out {
		out[i] = Role(i)
	}
	return out
}

func (r Role) Valid() bool {
	return r >= 0 && r < roleCount
}

func (r Role) String() string {
	if !r.Valid() {
		return "Role(?)"
	}
	return roleNames[r]
}

// Palette maps every role to a colour.
type Palette [roleCount]color.RGBA

var (
	// Neutral is written for a role that could not be applied.
	Neutral  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	darkInk  = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	lightInk = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// derivedRoles are computed from the container or colour they sit on.
var derivedRoles = map[Role]Role{
	OnSecondaryContainer: SecondaryContainer,
	OnError:              Error,
	OnSuccess:            Success,
}

var palettes = func() [periodCount]Palette {
	var out [periodCount]Palette
	for i, base := range basePalettes {
		p := base
		for on, under := range derivedRoles {
			p[on] = contrastInk(p[under])
		}
		out[i] = p
	}
	return out
}()

// PaletteFor returns the full palette of p. Invalid periods get Noon's.
func PaletteFor(p Period) Palette {
	if !p.Valid() {
		p = Noon
	}
	return palettes[p]
}

// contrastInk picks near-black or white text for a background, using the
// WCAG relative luminance midpoint.
func contrastInk(bg color.RGBA) color.RGBA {
	if relativeLuminance(bg) > 0.179 {
		return darkInk
	}
	return lightInk
}

func relativeLuminance(c color.RGBA) float64 {
	lin := func(v uint8) float64 {
		s := float64(v) / 255
		if s <= 0.03928 {
			return s / 12.92
		}
		return math.Pow((s+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}
