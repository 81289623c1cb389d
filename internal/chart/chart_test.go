package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/appengine-ltd/weatherdash/internal/dispatch"
)

var sample = []float64{10, 12, 9, 15, 11}

func newTestChart(t *testing.T) (*Chart, *dispatch.Loop) {
	t.Helper()
	nop := zap.NewNop().Sugar()
	loop := dispatch.New(dispatch.WithLogger(nop))
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	c := New(loop, WithLogger(nop), WithClock(func() time.Time { return now }))
	c.Resize(400, 200)
	c.SetData(sample)
	return c, loop
}

func step(loop *dispatch.Loop, n int) {
	for i := 0; i < n; i++ {
		loop.Advance(animStep)
	}
}

func TestLayoutGeometry(t *testing.T) {
	c, _ := newTestChart(t)
	l := c.Layout()
	require.False(t, l.Empty())

	assert.Equal(t, 9.0, l.Min)
	assert.Equal(t, 15.0, l.Max)
	assert.Equal(t, 6.0, l.Range)

	require.Len(t, l.Grid, 5)
	assert.Equal(t, "15°", l.Grid[0].Label)
	assert.Equal(t, "9°", l.Grid[4].Label)
	assert.InDelta(t, 20, l.Grid[0].Y, 1e-9)
	assert.InDelta(t, 180, l.Grid[4].Y, 1e-9)

	require.Len(t, l.Markers, 5)
	assert.InDelta(t, 300, l.Markers[3].Center.X, 1e-9)
	assert.InDelta(t, 20, l.Markers[3].Center.Y, 1e-9)
	assert.InDelta(t, 180, l.Markers[2].Center.Y, 1e-9)
	assert.Equal(t, 4.0, l.Markers[0].Radius)
	assert.Equal(t, 6.0, l.Markers[0].HaloRadius)

	assert.Len(t, l.Line, 5)
	require.Len(t, l.Fill, 7)
	assert.Equal(t, Point{X: 0, Y: 180}, l.Fill[0])
	assert.Equal(t, Point{X: 400, Y: 180}, l.Fill[6])

	require.Len(t, l.ValueLabels, 2)
	assert.Equal(t, "10°", l.ValueLabels[0].Text)
	assert.Equal(t, 4, l.ValueLabels[1].Index)

	var texts []string
	var idx []int
	for _, tl := range l.TimeLabels {
		texts = append(texts, tl.Text)
		idx = append(idx, tl.Index)
	}
	assert.Equal(t, []string{"Now", "6h", "12h", "18h", "24h"}, texts)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, idx)
}

func TestLayoutValueLabelsEverySixth(t *testing.T) {
	data := make([]float64, 24)
	for i := range data {
		data[i] = float64(i)
	}
	l := buildLayout(data, 480, 200)
	var idx []int
	for _, vl := range l.ValueLabels {
		idx = append(idx, vl.Index)
	}
	assert.Equal(t, []int{0, 6, 12, 18, 23}, idx)
	assert.Equal(t, 18, l.TimeLabels[3].Index)
	assert.Equal(t, 23, l.TimeLabels[4].Index)
}

func TestLayoutDegenerateInput(t *testing.T) {
	assert.True(t, buildLayout([]float64{3}, 400, 200).Empty())
	assert.True(t, buildLayout(nil, 400, 200).Empty())
	assert.True(t, buildLayout(sample, 0, 200).Empty())
	assert.True(t, buildLayout(sample, 400, 0).Empty())

	flat := buildLayout([]float64{5, 5, 5}, 200, 200)
	require.False(t, flat.Empty())
	assert.Equal(t, 1.0, flat.Range)
	for _, m := range flat.Markers {
		assert.InDelta(t, 180, m.Center.Y, 1e-9)
	}
}

func TestHoverShowsTooltip(t *testing.T) {
	c, loop := newTestChart(t)

	c.PointerMove(302, 22)
	assert.Equal(t, 3, c.Hovered())

	tip := c.Tooltip()
	assert.True(t, tip.Visible)
	assert.Equal(t, "15°", tip.Temperature)
	assert.Equal(t, "+3h", tip.HourLabel)
	assert.Equal(t, "12:00", tip.Time)
	assert.Equal(t, 0.0, tip.Opacity)
	assert.InDelta(t, 0.9, tip.Scale, 1e-9)
	assert.Equal(t, Point{X: 317, Y: -58}, tip.Anchor)
	assert.Equal(t, 2, c.LiveTimers())

	step(loop, 20)
	tip = c.Tooltip()
	assert.InDelta(t, 1, tip.Opacity, 1e-9)
	assert.InDelta(t, 1, tip.Scale, 1e-9)
	m := c.Layout().Markers[3]
	assert.InDelta(t, 1.3, m.Scale, 1e-9)
	assert.InDelta(t, 1.5, m.HaloScale, 1e-9)
	assert.Zero(t, c.LiveTimers())
	assert.Zero(t, loop.Live())
}

func TestHoverMovesBetweenSamples(t *testing.T) {
	c, loop := newTestChart(t)
	c.PointerMove(300, 20)
	step(loop, 20)

	c.PointerMove(398, 126)
	assert.Equal(t, 4, c.Hovered())
	tip := c.Tooltip()
	assert.Equal(t, "11°", tip.Temperature)
	assert.Equal(t, "+4h", tip.HourLabel)
	assert.InDelta(t, 1, tip.Opacity, 1e-9, "visible tooltip is not re-faded")
	assert.Equal(t, 2, c.LiveTimers(), "one marker shrinks, one grows")

	step(loop, 20)
	l := c.Layout()
	assert.InDelta(t, 1, l.Markers[3].Scale, 1e-9)
	assert.InDelta(t, 1, l.Markers[3].HaloScale, 1e-9)
	assert.InDelta(t, 1.3, l.Markers[4].Scale, 1e-9)
}

func TestHoverThreshold(t *testing.T) {
	c, _ := newTestChart(t)

	c.PointerMove(300, 70)
	assert.Equal(t, -1, c.Hovered(), "exactly 50px is out of range")
	assert.False(t, c.Tooltip().Visible)

	c.PointerMove(300, 69)
	assert.Equal(t, 3, c.Hovered())

	c.PointerMove(200, 100)
	assert.Equal(t, -1, c.Hovered())
}

func TestPointerExitFadesOut(t *testing.T) {
	c, loop := newTestChart(t)
	c.PointerMove(300, 20)
	step(loop, 20)

	c.PointerExit()
	assert.Equal(t, -1, c.Hovered())
	assert.True(t, c.Tooltip().Visible, "still fading")

	step(loop, 5)
	tip := c.Tooltip()
	assert.True(t, tip.Visible)
	assert.Greater(t, tip.Opacity, 0.0)
	assert.Less(t, tip.Opacity, 1.0)

	step(loop, 10)
	tip = c.Tooltip()
	assert.False(t, tip.Visible)
	assert.Equal(t, -1, tip.Index)
	assert.InDelta(t, 0.9, tip.Scale, 1e-9)

	// The marker eases back over 200ms, longer than the fade.
	step(loop, 5)
	assert.InDelta(t, 1, c.Layout().Markers[3].Scale, 1e-9)
	assert.Zero(t, loop.Live())
}

func TestFadeOutCompletesUnderRepeatedMoves(t *testing.T) {
	c, loop := newTestChart(t)
	c.PointerMove(300, 20)
	step(loop, 20)
	require.InDelta(t, 1, c.Tooltip().Opacity, 1e-9)

	// The host reports the pointer every frame while it stays inside the chart.
	for i := 0; i < 10; i++ {
		c.PointerMove(350, 190)
		loop.Advance(16 * time.Millisecond)
	}
	tip := c.Tooltip()
	assert.False(t, tip.Visible)
	assert.Equal(t, -1, tip.Index)
	assert.Equal(t, -1, c.Hovered())

	for i := 0; i < 10; i++ {
		c.PointerMove(350, 190)
		loop.Advance(16 * time.Millisecond)
	}
	assert.False(t, c.Tooltip().Visible)
	assert.Zero(t, c.LiveTimers())
}

func TestReturningDuringFadeOutFadesBackIn(t *testing.T) {
	c, loop := newTestChart(t)
	c.PointerMove(300, 20)
	step(loop, 20)
	c.PointerExit()
	step(loop, 5)

	c.PointerMove(300, 20)
	step(loop, 20)
	tip := c.Tooltip()
	assert.True(t, tip.Visible)
	assert.InDelta(t, 1, tip.Opacity, 1e-9)
	assert.Zero(t, c.LiveTimers())
}

func TestRebuildIsIdempotentAndResetsHover(t *testing.T) {
	c, loop := newTestChart(t)
	before := c.Layout()

	c.PointerMove(300, 20)
	step(loop, 3)
	c.SetData(sample)

	assert.Equal(t, before, c.Layout())
	assert.Equal(t, -1, c.Hovered())
	assert.False(t, c.Tooltip().Visible)
	assert.Zero(t, loop.Live())

	c.Resize(400, 200)
	assert.Equal(t, before, c.Layout())
}

func TestCloseStopsAnimations(t *testing.T) {
	c, loop := newTestChart(t)
	c.PointerMove(300, 20)
	c.PointerMove(398, 126)
	require.NotZero(t, loop.Live())

	c.Close()
	assert.Zero(t, loop.Live())
	assert.Zero(t, c.LiveTimers())
	assert.Equal(t, -1, c.Hovered())
	step(loop, 30)
	assert.False(t, c.Tooltip().Visible)
}

func TestEmptyChartIgnoresPointer(t *testing.T) {
	nop := zap.NewNop().Sugar()
	loop := dispatch.New(dispatch.WithLogger(nop))
	c := New(loop, WithLogger(nop))
	c.SetData([]float64{1})
	c.Resize(400, 200)

	c.PointerMove(0, 0)
	c.PointerExit()
	assert.Equal(t, -1, c.Hovered())
	assert.Zero(t, loop.Live())
}

func TestFormatTemperature(t *testing.T) {
	assert.Equal(t, "15°", formatTemperature(15))
	assert.Equal(t, "-3°", formatTemperature(-3))
	assert.Equal(t, "21.4°", formatTemperature(21.4))
	assert.Equal(t, "Current", hourLabel(0))
	assert.Equal(t, "+12h", hourLabel(12))
}
