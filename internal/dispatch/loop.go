// Package dispatch is the single-threaded timer loop every animation driver
// runs on. The host (the raylib frame loop, or a test) owns the clock and calls
// Advance; nothing here starts a goroutine.
package dispatch

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/appengine-ltd/weatherdash/internal/log"
)

// maxCatchUp bounds how many times one timer fires in a single Advance after a
// long stall (window drag, breakpoint). Past that the timer is re-anchored.
const maxCatchUp = 4

type Timer struct {
	loop     *Loop
	interval time.Duration
	due      time.Duration
	repeat   bool
	active   bool
	fn       func()
	name     string
}

// Stop cancels the timer. Stopping an already stopped timer is a no-op, and a
// timer may stop itself from inside its own callback.
func (t *Timer) Stop() {
	if t == nil || !t.active {
		return
	}
	t.active = false
	t.loop.live--
}

func (t *Timer) Active() bool {
	return t != nil && t.active
}

type Loop struct {
	now    time.Duration
	timers []*Timer
	live   int
	log    *zap.SugaredLogger
}

type Option func(*Loop)

func WithLogger(l *zap.SugaredLogger) Option {
	return func(loop *Loop) {
		if l != nil {
			loop.log = l
		}
	}
}

func New(opts ...Option) *Loop {
	l := &Loop{}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = log.GetSugaredLogger()
	}
	return l
}

// Now is the loop's elapsed time since creation.
func (l *Loop) Now() time.Duration {
	return l.now
}

// Live reports the number of timers that have not been stopped.
func (l *Loop) Live() int {
	return l.live
}

// Every registers fn to run each interval, first firing one interval from now.
func (l *Loop) Every(name string, interval time.Duration, fn func()) *Timer {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return l.add(&Timer{name: name, interval: interval, repeat: true, fn: fn})
}

// After registers fn to run once, delay from now.
func (l *Loop) After(name string, delay time.Duration, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	return l.add(&Timer{name: name, interval: delay, fn: fn})
}

func (l *Loop) add(t *Timer) *Timer {
	t.loop = l
	t.active = true
	t.due = l.now + t.interval
	l.timers = append(l.timers, t)
	l.live++
	return t
}

// Advance moves the loop clock forward by dt and fires every due timer in
// registration order. Timers registered by a callback wait for a later Advance.
func (l *Loop) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	l.now += dt

	pending := l.timers[:len(l.timers):len(l.timers)]
	for _, t := range pending {
		fired := 0
		for t.active && t.due <= l.now {
			if fired == maxCatchUp {
				t.due = l.now + t.interval
				break
			}
			fired++
			if !t.repeat {
				t.Stop()
			} else {
				t.due += t.interval
			}
			l.fire(t)
		}
	}
	l.compact()
}

// fire runs one callback; a panic is logged and counts as a skipped frame.
func (l *Loop) fire(t *Timer) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Errorw("timer callback panicked", "timer", t.name, "panic", fmt.Sprint(r))
		}
	}()
	t.fn()
}

func (l *Loop) compact() {
	kept := l.timers[:0]
	for _, t := range l.timers {
		if t.active {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(l.timers); i++ {
		l.timers[i] = nil
	}
	l.timers = kept
}

// StopAll cancels every timer. Used on shutdown.
func (l *Loop) StopAll() {
	for _, t := range l.timers {
		t.Stop()
	}
	l.compact()
}
