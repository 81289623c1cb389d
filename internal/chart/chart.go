package chart

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/appengine-ltd/weatherdash/internal/dispatch"
	"github.com/appengine-ltd/weatherdash/internal/log"
	"github.com/appengine-ltd/weatherdash/internal/tween"
)

const (
	hoverThreshold = 50.0
	animStep       = 10 * time.Millisecond
	markerDuration = 200 * time.Millisecond
	showDuration   = 200 * time.Millisecond
	hideDuration   = 150 * time.Millisecond

	hoverScale     = 1.3
	hoverHaloScale = 1.5
	tooltipMinimum = 0.9

	// Tooltip anchor relative to the pointer.
	tooltipOffsetX = 15.0
	tooltipOffsetY = -80.0
)

// Tooltip is the hover card state. Opacity and Scale animate; Visible drops
// to false once a hide animation has finished.
type Tooltip struct {
	Visible     bool
	Index       int
	Anchor      Point
	Opacity     float64
	Scale       float64
	Time        string
	Temperature string
	HourLabel   string
}

type markerAnim struct {
	timer       *dispatch.Timer
	inner, halo *tween.Tween
}

// Chart holds one data series, its layout and the hover state. Every
// animation is a timer on the dispatch loop; Close stops them all.
type Chart struct {
	loop *dispatch.Loop
	log  *zap.SugaredLogger
	now  func() time.Time

	data          []float64
	width, height float64
	layout        Layout

	hovered int
	tooltip Tooltip
	markers map[int]*markerAnim
	tipAnim *dispatch.Timer
	hiding  bool
}

type Option func(*Chart)

// WithClock sets the clock the tooltip time is offset from.
func WithClock(now func() time.Time) Option {
	return func(c *Chart) {
		if now != nil {
			c.now = now
		}
	}
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Chart) {
		if l != nil {
			c.log = l
		}
	}
}

func New(loop *dispatch.Loop, opts ...Option) *Chart {
	c := &Chart{
		loop:    loop,
		now:     time.Now,
		hovered: -1,
		tooltip: Tooltip{Index: -1},
		markers: make(map[int]*markerAnim),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = log.GetSugaredLogger()
	}
	return c
}

// SetData replaces the series and rebuilds the chart.
func (c *Chart) SetData(data []float64) {
	c.data = append(c.data[:0:0], data...)
	c.rebuild()
}

// Resize rebuilds the chart for a new surface size.
func (c *Chart) Resize(w, h float64) {
	c.width, c.height = w, h
	c.rebuild()
}

// Layout returns a copy of the current geometry with live marker scales.
func (c *Chart) Layout() Layout {
	out := c.layout
	out.Grid = append([]GridLine(nil), c.layout.Grid...)
	out.Fill = append([]Point(nil), c.layout.Fill...)
	out.Line = append([]Point(nil), c.layout.Line...)
	out.Markers = append([]Marker(nil), c.layout.Markers...)
	out.ValueLabels = append([]Label(nil), c.layout.ValueLabels...)
	out.TimeLabels = append([]Label(nil), c.layout.TimeLabels...)
	return out
}

func (c *Chart) Hovered() int {
	return c.hovered
}

func (c *Chart) Tooltip() Tooltip {
	return c.tooltip
}

// LiveTimers counts the animation timers the chart currently owns.
func (c *Chart) LiveTimers() int {
	n := 0
	for _, a := range c.markers {
		if a.timer.Active() {
			n++
		}
	}
	if c.tipAnim.Active() {
		n++
	}
	return n
}

// PointerMove hovers the nearest sample when it lies within the threshold,
// otherwise it clears the hover.
func (c *Chart) PointerMove(x, y float64) {
	idx, dist := c.layout.nearest(x, y)
	if idx < 0 {
		return
	}
	if dist >= hoverThreshold {
		c.clearHover()
		return
	}
	c.tooltip.Anchor = Point{X: x + tooltipOffsetX, Y: y + tooltipOffsetY}
	if idx == c.hovered {
		return
	}
	if c.hovered >= 0 {
		c.animateMarker(c.hovered, 1, 1)
	}
	c.hovered = idx
	c.animateMarker(idx, hoverScale, hoverHaloScale)
	c.showTooltip(idx)
}

// PointerExit clears the hover as if the pointer moved out of range.
func (c *Chart) PointerExit() {
	c.clearHover()
}

// Close stops every animation and drops the hover state.
func (c *Chart) Close() {
	c.stopAnimations()
	c.hovered = -1
	c.tooltip = Tooltip{Index: -1}
}

func (c *Chart) rebuild() {
	c.Close()
	c.layout = buildLayout(c.data, c.width, c.height)
	c.log.Debugw("chart rebuilt", "samples", len(c.data), "markers", len(c.layout.Markers))
}

func (c *Chart) stopAnimations() {
	for idx, a := range c.markers {
		a.timer.Stop()
		delete(c.markers, idx)
	}
	c.tipAnim.Stop()
	c.tipAnim = nil
	c.hiding = false
}

func (c *Chart) clearHover() {
	if c.hovered >= 0 {
		c.animateMarker(c.hovered, 1, 1)
	}
	c.hovered = -1
	c.hideTooltip()
}

func (c *Chart) animateMarker(idx int, inner, halo float64) {
	if idx < 0 || idx >= len(c.layout.Markers) {
		return
	}
	if prev, ok := c.markers[idx]; ok {
		prev.timer.Stop()
	}
	m := &c.layout.Markers[idx]
	a := &markerAnim{
		inner: tween.New(m.Scale, inner, markerDuration, tween.CubicEaseOut),
		halo:  tween.New(m.HaloScale, halo, markerDuration, tween.CubicEaseOut),
	}
	a.timer = c.loop.Every("chart.marker", animStep, func() {
		m.Scale = a.inner.Step(animStep)
		m.HaloScale = a.halo.Step(animStep)
		if a.inner.Done() && a.halo.Done() {
			a.timer.Stop()
			if c.markers[idx] == a {
				delete(c.markers, idx)
			}
		}
	})
	c.markers[idx] = a
}

func (c *Chart) showTooltip(idx int) {
	v := c.layout.Markers[idx].Value
	c.tooltip.Index = idx
	c.tooltip.Time = c.now().Add(time.Duration(idx) * time.Hour).Format("15:04")
	c.tooltip.Temperature = formatTemperature(v)
	c.tooltip.HourLabel = hourLabel(idx)
	c.hiding = false

	if c.tooltip.Visible && !c.tipAnim.Active() {
		return
	}
	if !c.tooltip.Visible {
		c.tooltip.Visible = true
		c.tooltip.Opacity = 0
		c.tooltip.Scale = tooltipMinimum
	}
	c.animateTooltip(1, 1, showDuration, tween.CubicEaseOut, nil)
}

// hideTooltip starts the fade-out once; repeated calls while it runs leave
// the animation alone.
func (c *Chart) hideTooltip() {
	if !c.tooltip.Visible || c.hiding {
		return
	}
	c.hiding = true
	c.animateTooltip(0, tooltipMinimum, hideDuration, tween.CubicEaseIn, func() {
		c.hiding = false
		c.tooltip.Visible = false
		c.tooltip.Index = -1
	})
}

// animateTooltip eases opacity and scale from their current values. done
// runs once the targets are reached.
func (c *Chart) animateTooltip(opacity, scale float64, d time.Duration, ease tween.Easing, done func()) {
	c.tipAnim.Stop()
	fade := tween.New(c.tooltip.Opacity, opacity, d, ease)
	grow := tween.New(c.tooltip.Scale, scale, d, ease)
	var timer *dispatch.Timer
	timer = c.loop.Every("chart.tooltip", animStep, func() {
		c.tooltip.Opacity = fade.Step(animStep)
		c.tooltip.Scale = grow.Step(animStep)
		if fade.Done() && grow.Done() {
			timer.Stop()
			if done != nil {
				done()
			}
		}
	})
	c.tipAnim = timer
}

// formatTemperature prints whole values without decimals and fractional ones
// with a single decimal.
func formatTemperature(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f°", v)
	}
	return fmt.Sprintf("%.1f°", v)
}

func hourLabel(idx int) string {
	if idx == 0 {
		return "Current"
	}
	return fmt.Sprintf("+%dh", idx)
}
