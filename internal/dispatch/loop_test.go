package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLoop() *Loop {
	return New(WithLogger(zap.NewNop().Sugar()))
}

func TestEveryFiresOncePerInterval(t *testing.T) {
	loop := newTestLoop()
	count := 0
	loop.Every("tick", 10*time.Millisecond, func() { count++ })

	loop.Advance(9 * time.Millisecond)
	assert.Equal(t, 0, count)
	loop.Advance(1 * time.Millisecond)
	assert.Equal(t, 1, count)
	loop.Advance(20 * time.Millisecond)
	assert.Equal(t, 3, count)
}

func TestAfterFiresOnceAndReleasesSlot(t *testing.T) {
	loop := newTestLoop()
	count := 0
	timer := loop.After("once", 30*time.Millisecond, func() { count++ })
	require.Equal(t, 1, loop.Live())

	loop.Advance(100 * time.Millisecond)
	loop.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, count)
	assert.False(t, timer.Active())
	assert.Equal(t, 0, loop.Live())
}

func TestTimerCanStopItself(t *testing.T) {
	loop := newTestLoop()
	count := 0
	var timer *Timer
	timer = loop.Every("self", time.Millisecond, func() {
		count++
		if count == 2 {
			timer.Stop()
		}
	})
	for i := 0; i < 10; i++ {
		loop.Advance(time.Millisecond)
	}
	assert.Equal(t, 2, count)
	assert.Equal(t, 0, loop.Live())
}

func TestTimerAddedDuringCallbackWaitsForNextAdvance(t *testing.T) {
	loop := newTestLoop()
	inner := 0
	loop.After("outer", 0, func() {
		loop.After("inner", 0, func() { inner++ })
	})
	loop.Advance(0)
	assert.Equal(t, 0, inner)
	loop.Advance(0)
	assert.Equal(t, 1, inner)
}

func TestPanickingCallbackDoesNotEscape(t *testing.T) {
	loop := newTestLoop()
	after := 0
	loop.Every("bad", time.Millisecond, func() { panic("boom") })
	loop.Every("good", time.Millisecond, func() { after++ })

	require.NotPanics(t, func() { loop.Advance(time.Millisecond) })
	assert.Equal(t, 1, after)
	assert.Equal(t, 2, loop.Live())
}

func TestLongStallIsBounded(t *testing.T) {
	loop := newTestLoop()
	count := 0
	loop.Every("frame", 10*time.Millisecond, func() { count++ })
	loop.Advance(10 * time.Second)
	assert.Equal(t, maxCatchUp, count)

	loop.Advance(10 * time.Millisecond)
	assert.Equal(t, maxCatchUp+1, count)
}

func TestStopAll(t *testing.T) {
	loop := newTestLoop()
	loop.Every("a", time.Millisecond, func() {})
	loop.After("b", time.Second, func() {})
	loop.StopAll()
	assert.Equal(t, 0, loop.Live())
}
