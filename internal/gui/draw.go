package gui

import (
	"fmt"
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/weatherdash/internal/animation"
	"github.com/appengine-ltd/weatherdash/internal/chart"
)

var (
	chartGrid      = rl.NewColor(255, 255, 255, 40)
	chartGridLabel = rl.NewColor(255, 255, 255, 200)
	chartTimeLabel = rl.NewColor(255, 255, 255, 180)
	chartFillTop   = rl.NewColor(255, 255, 255, 100)
	chartFillLow   = rl.NewColor(255, 255, 255, 20)
	chartHalo      = rl.NewColor(255, 255, 255, 60)
	chartLabelBG   = rl.NewColor(0, 0, 0, 180)
)

// withOpacity scales c's own alpha, unlike rl.Fade which replaces it.
func withOpacity(c color.RGBA, opacity float64) rl.Color {
	opacity = math.Max(0, math.Min(1, opacity))
	return rl.NewColor(c.R, c.G, c.B, uint8(float64(c.A)*opacity))
}

func vec(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

// ---------------------------------------------------------------------------
// Background scene
// ---------------------------------------------------------------------------

func drawScene(s animation.Scene) {
	w, h := int32(s.Width), int32(s.Height)
	if w <= 0 || h <= 0 {
		return
	}
	rl.DrawRectangleGradientV(0, 0, w, h, rlColor(s.Top), rlColor(s.Bottom))

	base, shadow := animation.CloudColors(s.Night)
	for _, c := range s.Clouds {
		drawCloud(c, base, shadow)
	}
	for _, p := range s.Particles {
		drawParticle(p)
	}
	for _, f := range s.Flashes {
		rl.DrawRectangle(0, 0, w, h, withOpacity(animation.FlashColor, f.Opacity/0.4))
	}
}

func drawCloud(c animation.Cloud, base, shadow color.RGBA) {
	bumps := animation.CloudBumps(c.Variant)
	for _, b := range bumps {
		r := float32(b.R * c.Scale)
		rl.DrawCircleV(vec(c.X+b.X*c.Scale+3, c.Y+b.Y*c.Scale+4), r, withOpacity(shadow, c.Opacity))
	}
	for _, b := range bumps {
		r := float32(b.R * c.Scale)
		rl.DrawCircleV(vec(c.X+b.X*c.Scale, c.Y+b.Y*c.Scale), r, withOpacity(base, c.Opacity))
	}
}

func drawParticle(p animation.Particle) {
	clr := withOpacity(animation.ParticleColor(p.Kind), p.Opacity)
	switch p.Kind {
	case animation.KindRain:
		speed := math.Hypot(p.VX, p.VY)
		if speed == 0 {
			return
		}
		end := vec(p.X+p.VX/speed*p.Size, p.Y+p.VY/speed*p.Size)
		rl.DrawLineEx(vec(p.X, p.Y), end, 1.5, clr)
	case animation.KindSnow:
		rl.DrawCircleV(vec(p.X, p.Y), float32(p.Size/2), clr)
	case animation.KindMote:
		rl.DrawCircleV(vec(p.X, p.Y), float32(p.Size), withOpacity(animation.ParticleColor(p.Kind), p.Opacity*0.3))
		rl.DrawCircleV(vec(p.X, p.Y), float32(p.Size/2), clr)
	case animation.KindFog:
		rl.DrawEllipse(int32(p.X+p.Width/2), int32(p.Y+p.Size/2), float32(p.Width/2), float32(p.Size/2), clr)
	}
}

// ---------------------------------------------------------------------------
// Panels
// ---------------------------------------------------------------------------

func (ui *dashboardUI) drawInfo(t Theme) {
	h := ui.dash.headline()
	r := ui.infoRect
	DrawPanel(t, r.rec(), h.City, false)

	x := int32(r.X + spaceM)
	y := int32(r.Y+spaceS) + typeScale.Header + 22
	drawText(h.Temperature, x, y, typeScale.Display, t.TextPrimary)
	y += typeScale.Display + 4
	drawText(h.Condition, x, y, typeScale.Body, t.Accent)
	y += textLineHeight(typeScale.Body)
	if h.Details != "" {
		drawText(h.Details, x, y, typeScale.Small, t.TextSecondary)
		y += textLineHeight(typeScale.Small)
	}
	drawText(fmt.Sprintf("%s (%s)", h.Period, h.ThemeMode), x, y, typeScale.Small, t.TextSecondary)
	y += textLineHeight(typeScale.Small)

	status := t.TextMuted
	if ui.dash.lastErr != nil {
		status = t.Warning
	}
	drawText(h.Status, x, y, typeScale.Small, status)
	DrawHintText(t, "T theme  A auto  +/- intensity  R refresh", x, int32(r.Y+r.H-spaceS)-typeScale.Small)
}

func (ui *dashboardUI) drawFavorites(t Theme) {
	r := ui.favoritesRect
	if r.H < 80 {
		return
	}
	DrawPanel(t, r.rec(), "Favorites: "+ui.dash.filterLabel(), false)
	y := int32(r.Y + 58)
	rowH := textLineHeight(typeScale.Body) + 2
	left := int32(r.X + spaceM)
	right := int32(r.X + r.W - spaceM)
	hintY := int32(r.Y+r.H-spaceS) - typeScale.Small
	DrawHintText(t, "C next city  Shift+C previous  F filter", left, hintY)
	for _, row := range ui.dash.favorites() {
		if y+rowH > hintY {
			break
		}
		name := t.TextSecondary
		if row.Active {
			name = t.Accent
		}
		drawText(row.Name, left, y, typeScale.Body, name)
		drawText(row.Condition, left+150, y+3, typeScale.Small, t.TextMuted)
		drawText(row.Temperature, right-measureText(row.Temperature, typeScale.Body), y, typeScale.Body, t.TextPrimary)
		y += rowH
	}
}

func (ui *dashboardUI) drawForecast(t Theme) {
	r := ui.forecastRect
	DrawPanel(t, r.rec(), "7-day forecast", false)
	if ui.dash.report == nil {
		DrawHintText(t, "Waiting for weather...", int32(r.X+spaceM), int32(r.Y+60))
		return
	}
	y := int32(r.Y + 58)
	rowH := textLineHeight(typeScale.Body) + 4
	for i, day := range ui.dash.report.Forecast {
		if float32(y+rowH) > r.Y+r.H {
			break
		}
		name := day.Date.Format("Mon")
		if i == 0 {
			name = "Today"
		}
		left := int32(r.X + spaceM)
		drawText(name, left, y, typeScale.Body, t.TextPrimary)
		drawText(day.Condition.Label(), left+80, y, typeScale.Small, t.TextSecondary)
		temps := fmt.Sprintf("%.0f° / %.0f°", day.MaxTemp, day.MinTemp)
		drawText(temps, int32(r.X+r.W-spaceM)-measureText(temps, typeScale.Body), y, typeScale.Body, t.TextPrimary)
		y += rowH
	}
}

// ---------------------------------------------------------------------------
// Chart
// ---------------------------------------------------------------------------

func drawChart(t Theme, l chart.Layout, area rect) {
	if l.Empty() {
		DrawHintText(t, "No hourly data", int32(area.X), int32(area.Y+area.H/2))
		return
	}
	ox, oy := float64(area.X), float64(area.Y)
	at := func(p chart.Point) rl.Vector2 { return vec(ox+p.X, oy+p.Y) }

	for _, g := range l.Grid {
		drawDashedLine(ox, oy+g.Y, ox+l.Width, 5, 3, chartGrid)
		drawText(g.Label, int32(ox)+5, int32(oy+g.Y)-10, typeScale.Small, chartGridLabel)
	}

	baseline := oy + l.Fill[0].Y
	for i := 1; i < len(l.Line); i++ {
		a, b := l.Line[i-1], l.Line[i]
		for x := a.X; x < b.X; x += 2 {
			y := oy + a.Y + (b.Y-a.Y)*(x-a.X)/(b.X-a.X)
			rl.DrawRectangleGradientV(int32(ox+x), int32(y), 2, int32(baseline-y), chartFillTop, chartFillLow)
		}
	}

	for i := 1; i < len(l.Line); i++ {
		rl.DrawLineEx(at(l.Line[i-1]), at(l.Line[i]), 3.5, t.Accent)
		rl.DrawCircleV(at(l.Line[i]), 1.75, t.Accent)
	}

	for _, m := range l.Markers {
		c := at(m.Center)
		rl.DrawCircleV(c, float32(m.HaloRadius*m.HaloScale), chartHalo)
		rl.DrawCircleV(c, float32(m.Radius*m.Scale)+2, rl.White)
		rl.DrawCircleV(c, float32(m.Radius*m.Scale), t.Accent)
	}

	for _, vl := range l.ValueLabels {
		p := at(vl.At)
		w := measureText(vl.Text, typeScale.Small) + 12
		box := rl.NewRectangle(p.X-18, p.Y-30, float32(w), float32(typeScale.Small)+6)
		rl.DrawRectangleRounded(box, 0.4, 6, chartLabelBG)
		drawText(vl.Text, int32(box.X)+6, int32(box.Y)+3, typeScale.Small, t.Accent)
	}

	for _, tl := range l.TimeLabels {
		drawText(tl.Text, int32(ox+tl.At.X)-15, int32(oy+tl.At.Y)-15, typeScale.Small, chartTimeLabel)
	}
}

func drawDashedLine(x0, y, x1, dash, gap float64, clr rl.Color) {
	for x := x0; x < x1; x += dash + gap {
		end := math.Min(x+dash, x1)
		rl.DrawLineEx(vec(x, y), vec(end, y), 1, clr)
	}
}

const (
	tooltipW = 150
	tooltipH = 120
)

func drawTooltip(t Theme, tip chart.Tooltip, area rect, screenW float32) {
	if !tip.Visible || tip.Opacity <= 0 {
		return
	}
	w := float32(tooltipW * tip.Scale)
	h := float32(tooltipH * tip.Scale)
	cx := area.X + float32(tip.Anchor.X) + tooltipW/2
	cy := area.Y + float32(tip.Anchor.Y) + tooltipH/2
	if cx+w/2 > screenW-spaceS {
		cx = screenW - spaceS - w/2
	}
	box := rl.NewRectangle(cx-w/2, cy-h/2, w, h)
	alpha := float32(tip.Opacity)

	rl.DrawRectangleRounded(rl.NewRectangle(box.X, box.Y+8, box.Width, box.Height), 0.2, 8, rl.Fade(rl.Black, 0.24*alpha))
	rl.DrawRectangleRounded(box, 0.2, 8, rl.Fade(mix(t.Accent, t.AccentSecondary, 0.5), alpha))

	ink := rl.Fade(t.OnAccent, alpha)
	lines := []struct {
		text string
		size int32
	}{
		{tip.Time, typeScale.Small},
		{tip.Temperature, typeScale.Title},
		{tip.HourLabel, typeScale.Small},
	}
	y := box.Y + 12*float32(tip.Scale)
	for _, ln := range lines {
		size := int32(float64(ln.size) * tip.Scale)
		x := box.X + (box.Width-float32(measureText(ln.text, size)))/2
		drawText(ln.text, int32(x), int32(y), size, ink)
		y += float32(textLineHeight(size)) + 4
	}
}
