// Package chart lays out the hourly temperature chart and runs its hover
// state machine. It produces plain geometry; the gui draws it.
package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	padding       = 20.0
	gridRows      = 4
	markerRadius  = 4.0
	haloRadius    = 6.0
	valueLabelGap = 6
)

var timeLabelTexts = [...]string{"Now", "6h", "12h", "18h", "24h"}

type Point struct {
	X, Y float64
}

type GridLine struct {
	Y     float64
	Label string
}

// Marker is one sample's dot and halo. Scale and HaloScale animate on hover.
type Marker struct {
	Index      int
	Value      float64
	Center     Point
	Radius     float64
	HaloRadius float64
	Scale      float64
	HaloScale  float64
}

type Label struct {
	Index int
	At    Point
	Text  string
}

// Layout is the full static chart for one data set and surface size.
type Layout struct {
	Width, Height float64
	Min, Max      float64
	Range         float64

	Grid        []GridLine
	Fill        []Point
	Line        []Point
	Markers     []Marker
	ValueLabels []Label
	TimeLabels  []Label
}

// Empty reports whether there is nothing to draw.
func (l Layout) Empty() bool {
	return len(l.Markers) == 0
}

// buildLayout computes the chart geometry. Fewer than two samples, a
// non-finite sample or a surface too small for the padding yield an empty
// layout.
func buildLayout(data []float64, width, height float64) Layout {
	out := Layout{Width: width, Height: height}
	plot := height - 2*padding
	if len(data) < 2 || !(width > 0) || !(plot > 0) {
		return out
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return out
		}
	}

	lo, hi := floats.Min(data), floats.Max(data)
	span := hi - lo
	if span == 0 {
		span = 1
	}
	out.Min, out.Max, out.Range = lo, hi, span

	stepX := width / float64(len(data)-1)
	pointAt := func(i int) Point {
		return Point{
			X: float64(i) * stepX,
			Y: padding + plot - (data[i]-lo)/span*plot,
		}
	}

	for i := 0; i <= gridRows; i++ {
		out.Grid = append(out.Grid, GridLine{
			Y:     padding + plot*float64(i)/gridRows,
			Label: fmt.Sprintf("%.0f°", hi-span*float64(i)/gridRows),
		})
	}

	out.Fill = append(out.Fill, Point{X: 0, Y: height - padding})
	for i, v := range data {
		p := pointAt(i)
		out.Fill = append(out.Fill, p)
		out.Line = append(out.Line, p)
		out.Markers = append(out.Markers, Marker{
			Index:      i,
			Value:      v,
			Center:     p,
			Radius:     markerRadius,
			HaloRadius: haloRadius,
			Scale:      1,
			HaloScale:  1,
		})
		if i%valueLabelGap == 0 || i == len(data)-1 {
			out.ValueLabels = append(out.ValueLabels, Label{
				Index: i,
				At:    p,
				Text:  fmt.Sprintf("%.0f°", v),
			})
		}
	}
	out.Fill = append(out.Fill, Point{X: width, Y: height - padding})

	n := len(data)
	for i, idx := range [...]int{0, n / 4, n / 2, 3 * n / 4, n - 1} {
		out.TimeLabels = append(out.TimeLabels, Label{
			Index: idx,
			At:    Point{X: float64(idx) * stepX, Y: height},
			Text:  timeLabelTexts[i],
		})
	}
	return out
}

// nearest returns the marker closest to (x, y) and its distance, or -1 when
// the layout is empty.
func (l Layout) nearest(x, y float64) (int, float64) {
	best, bestDist := -1, math.MaxFloat64
	for i, m := range l.Markers {
		d := math.Hypot(x-m.Center.X, y-m.Center.Y)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}
