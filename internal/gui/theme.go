package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/weatherdash/internal/theme"
)

// Theme is the raylib view of the active circadian palette.
type Theme struct {
	Background      rl.Color
	Panel           rl.Color
	PanelRaised     rl.Color
	Border          rl.Color
	Divider         rl.Color
	TextPrimary     rl.Color
	TextSecondary   rl.Color
	TextMuted       rl.Color
	Accent          rl.Color
	AccentSecondary rl.Color
	AccentSoft      rl.Color
	OnAccent        rl.Color
	Warning         rl.Color
	Danger          rl.Color
	Success         rl.Color
	Info            rl.Color
}

const (
	spaceXS = float32(8)
	spaceS  = float32(12)
	spaceM  = float32(18)
	spaceL  = float32(24)

	cornerRadius   = float32(0.08)
	cornerSegments = int32(8)
	borderWidth    = float32(1.2)
)

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func themeFromPalette(p theme.Palette) Theme {
	return Theme{
		Background:      rlColor(p[theme.Background]),
		Panel:           rl.Fade(rlColor(p[theme.Surface]), 0.82),
		PanelRaised:     rl.Fade(rlColor(p[theme.SurfaceVariant]), 0.9),
		Border:          rlColor(p[theme.Outline]),
		Divider:         rlColor(p[theme.OutlineVariant]),
		TextPrimary:     rlColor(p[theme.TextPrimary]),
		TextSecondary:   rlColor(p[theme.TextSecondary]),
		TextMuted:       rlColor(p[theme.OnSurfaceVariant]),
		Accent:          rlColor(p[theme.Primary]),
		AccentSecondary: rlColor(p[theme.Secondary]),
		AccentSoft:      rl.Fade(rlColor(p[theme.PrimaryContainer]), 0.8),
		OnAccent:        rlColor(p[theme.OnPrimary]),
		Warning:         rlColor(p[theme.Warning]),
		Danger:          rlColor(p[theme.Error]),
		Success:         rlColor(p[theme.Success]),
		Info:            rlColor(p[theme.Info]),
	}
}

// ---------------------------------------------------------------------------
// Panel
// ---------------------------------------------------------------------------

// DrawPanel draws a rounded panel. If title is non-empty a header with an
// accent underline and a divider are drawn inside the panel top.
func DrawPanel(t Theme, rect rl.Rectangle, title string, raised bool) {
	fill := t.Panel
	stroke := t.Border
	if raised {
		fill = t.PanelRaised
		stroke = mix(t.Border, t.Accent, 0.35)
	}
	rl.DrawRectangleRounded(rect, cornerRadius, cornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, cornerRadius, cornerSegments, borderWidth, stroke)

	if title != "" {
		DrawHeader(t, title, int32(rect.X+spaceM), int32(rect.Y+spaceS))
		dividerY := rect.Y + spaceS + float32(typeScale.Header) + 12
		DrawDivider(t, rect.X+spaceM, dividerY, rect.X+rect.Width-spaceM, dividerY)
	}
}

// ---------------------------------------------------------------------------
// Typography helpers
// ---------------------------------------------------------------------------

func DrawHeader(t Theme, text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, typeScale.Header, t.TextPrimary)
	w := measureText(text, typeScale.Header)
	lineW := int32(float32(w) * 0.6)
	if lineW < 44 {
		lineW = 44
	}
	drawLine(float32(x), float32(y+typeScale.Header+6), float32(x+lineW), float32(y+typeScale.Header+6), 2.0, t.Accent)
}

func DrawDivider(t Theme, x1, y1, x2, y2 float32) {
	drawLine(x1, y1, x2, y2, 1.0, rl.Fade(t.Divider, 0.95))
}

func DrawHintText(t Theme, text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, typeScale.Small, t.TextMuted)
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

func mix(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
