// Package tween holds the easing curves and the scalar tween used by the
// background colour transition and the chart hover animations.
package tween

import (
	"image/color"
	"math"
	"time"
)

type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func CubicEaseOut(t float64) float64 {
	f := t - 1
	return f*f*f + 1
}

func CubicEaseIn(t float64) float64 {
	return t * t * t
}

// Tween interpolates a scalar from From to To over Duration.
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Ease     Easing
	elapsed  time.Duration
}

func New(from, to float64, d time.Duration, ease Easing) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{From: from, To: to, Duration: d, Ease: ease}
}

// Step advances the tween and returns the current value.
func (tw *Tween) Step(dt time.Duration) float64 {
	tw.elapsed += dt
	if tw.elapsed > tw.Duration {
		tw.elapsed = tw.Duration
	}
	return tw.Value()
}

func (tw *Tween) Progress() float64 {
	if tw.Duration <= 0 {
		return 1
	}
	return math.Min(1, float64(tw.elapsed)/float64(tw.Duration))
}

func (tw *Tween) Value() float64 {
	return Lerp(tw.From, tw.To, tw.Ease(tw.Progress()))
}

func (tw *Tween) Done() bool {
	return tw.Progress() >= 1
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor blends two colours channel by channel, truncating like the byte
// casts of a hand-rolled RGB blend.
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		v := float64(x) + (float64(y)-float64(x))*t
		return uint8(math.Max(0, math.Min(255, v)))
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}
