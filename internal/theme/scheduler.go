package theme

import (
	"image/color"
	"time"

	"go.uber.org/zap"

	"github.com/appengine-ltd/weatherdash/internal/config"
	"github.com/appengine-ltd/weatherdash/internal/dispatch"
	"github.com/appengine-ltd/weatherdash/internal/log"
)

const pollInterval = 5 * time.Second

// Sink receives palette writes. *Store is the production sink.
type Sink interface {
	Set(Role, color.RGBA) error
}

type Mode int

const (
	ModeAutomatic Mode = iota
	ModeFixed
)

func (m Mode) String() string {
	if m == ModeFixed {
		return "fixed"
	}
	return "automatic"
}

type periodSub struct {
	id int
	fn func(Period)
}

// Scheduler applies the palette of the current circadian period and, in
// automatic mode, polls the clock for period changes on the dispatch loop.
type Scheduler struct {
	loop *dispatch.Loop
	sink Sink
	log  *zap.SugaredLogger
	now  func() time.Time

	poll    *dispatch.Timer
	mode    Mode
	current Period
	active  Period

	subs   []periodSub
	nextID int
}

type SchedulerOption func(*Scheduler)

func WithClock(now func() time.Time) SchedulerOption {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(l *zap.SugaredLogger) SchedulerOption {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

func NewScheduler(loop *dispatch.Loop, sink Sink, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{loop: loop, sink: sink, now: time.Now, active: Noon, current: Noon}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = log.GetSugaredLogger()
	}
	return s
}

// Start switches to automatic mode, applies the current period at once and
// begins polling.
func (s *Scheduler) Start() {
	s.Stop()
	s.mode = ModeAutomatic
	s.current = s.CurrentPeriod()
	s.ApplyForPeriod(s.current)
	s.poll = s.loop.Every("theme.poll", pollInterval, s.check)
	s.log.Infow("circadian theming started", "period", s.current.String())
}

// Stop halts polling. The applied palette stays.
func (s *Scheduler) Stop() {
	s.poll.Stop()
	s.poll = nil
}

// Fix stops polling and pins the palette of p.
func (s *Scheduler) Fix(p Period) {
	s.Stop()
	s.mode = ModeFixed
	s.ApplyForPeriod(p)
}

// ApplySettings re-applies persisted theme settings: dynamic theming restarts
// automatic mode, otherwise a fixed index pins that period. With neither the
// scheduler falls back to automatic.
func (s *Scheduler) ApplySettings(ts config.ThemeSettings) {
	switch {
	case ts.EnableDynamicTheme:
		s.Start()
	case ts.FixedThemeIndex >= 0:
		s.Fix(Period(ts.FixedThemeIndex))
	default:
		s.Start()
	}
}

func (s *Scheduler) CurrentPeriod() Period {
	return PeriodAt(s.now())
}

// ActivePeriod is the period whose palette was applied last.
func (s *Scheduler) ActivePeriod() Period {
	return s.active
}

func (s *Scheduler) Mode() Mode {
	return s.mode
}

func (s *Scheduler) Running() bool {
	return s.poll.Active()
}

// ApplyForPeriod writes every role of p's palette to the sink. A role the
// sink rejects is logged and replaced by Neutral; the others still apply.
func (s *Scheduler) ApplyForPeriod(p Period) {
	if !p.Valid() {
		s.log.Warnw("invalid period, using noon", "period", int(p))
		p = Noon
	}
	pal := PaletteFor(p)
	for _, r := range Roles() {
		if err := s.sink.Set(r, pal[r]); err != nil {
			s.log.Warnw("failed to apply theme role, using neutral", "role", r.String(), "error", err)
			if err := s.sink.Set(r, Neutral); err != nil {
				s.log.Errorw("failed to apply neutral fallback", "role", r.String(), "error", err)
			}
		}
	}
	s.active = p
}

// Subscribe registers fn for automatic period changes.
func (s *Scheduler) Subscribe(fn func(Period)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, periodSub{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Scheduler) check() {
	p := s.CurrentPeriod()
	if p == s.current {
		return
	}
	s.current = p
	s.ApplyForPeriod(p)
	s.log.Infow("theme auto-switched", "period", p.String())
	for _, sub := range append([]periodSub(nil), s.subs...) {
		sub.fn(p)
	}
}
