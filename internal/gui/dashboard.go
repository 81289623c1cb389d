package gui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/appengine-ltd/weatherdash/internal/animation"
	"github.com/appengine-ltd/weatherdash/internal/chart"
	"github.com/appengine-ltd/weatherdash/internal/config"
	"github.com/appengine-ltd/weatherdash/internal/dispatch"
	"github.com/appengine-ltd/weatherdash/internal/log"
	"github.com/appengine-ltd/weatherdash/internal/theme"
	"github.com/appengine-ltd/weatherdash/internal/weather"
)

const intensityStep = 0.1

// dashboard wires the animation, theme and chart cores to one dispatch loop.
// It never touches raylib so the frame logic can be driven from tests.
type dashboard struct {
	loop      *dispatch.Loop
	engine    *animation.Engine
	store     *theme.Store
	scheduler *theme.Scheduler
	chart     *chart.Chart
	log       *zap.SugaredLogger
	now       func() time.Time

	locations []weather.Location
	active    int
	settings  config.ThemeSettings
	intensity float64
	filter    weather.Condition

	// overridden is set once the user adjusts intensity by hand; from then on
	// every refreshed state carries the user's value.
	overridden bool

	report  *weather.Report
	reports map[string]weather.Report
	lastErr error
	period  theme.Period

	palette      theme.Palette
	paletteDirty bool
	unsubscribe  []func()
}

type dashboardOptions struct {
	Locations []weather.Location
	Settings  config.ThemeSettings
	Intensity float64
	Seed      uint64
	Now       func() time.Time
	Log       *zap.SugaredLogger
}

func newDashboard(opts dashboardOptions) *dashboard {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if opts.Log == nil {
		opts.Log = log.GetSugaredLogger()
	}
	if len(opts.Locations) == 0 {
		opts.Locations = []weather.Location{{Name: "Unknown"}}
	}
	loop := dispatch.New(dispatch.WithLogger(opts.Log))
	store := theme.NewStore()
	d := &dashboard{
		loop:         loop,
		engine:       animation.NewEngine(loop, animation.WithSeed(opts.Seed), animation.WithLogger(opts.Log), animation.WithClock(now)),
		store:        store,
		scheduler:    theme.NewScheduler(loop, store, theme.WithClock(now), theme.WithLogger(opts.Log)),
		chart:        chart.New(loop, chart.WithClock(now), chart.WithLogger(opts.Log)),
		log:          opts.Log,
		now:          now,
		locations:    append([]weather.Location(nil), opts.Locations...),
		settings:     opts.Settings,
		intensity:    opts.Intensity,
		reports:      make(map[string]weather.Report),
		paletteDirty: true,
	}
	d.unsubscribe = append(d.unsubscribe,
		store.Subscribe(func(theme.Role, color.RGBA) { d.paletteDirty = true }),
		d.scheduler.Subscribe(func(p theme.Period) { d.period = p }),
	)
	return d
}

// start applies the theme settings, shows the fallback scene until the first
// report arrives and attaches the engine to the viewport.
func (d *dashboard) start(width, height float64) {
	d.scheduler.ApplySettings(d.settings)
	d.period = d.scheduler.ActivePeriod()
	d.engine.SetState(animation.FromWeather(nil, d.now()))
	d.engine.Attach(width, height)
}

func (d *dashboard) resize(width, height, chartW, chartH float64) {
	d.engine.Resize(width, height)
	d.chart.Resize(chartW, chartH)
}

// frame advances every timer by the real frame delta.
func (d *dashboard) frame(delta time.Duration) {
	d.loop.Advance(delta)
}

func (d *dashboard) location() weather.Location {
	return d.locations[d.active]
}

// applyResult takes a finished fetch for any city. Only the active city
// drives the scene. A failure keeps the last good report; without one the
// scene stays on the fallback state.
func (d *dashboard) applyResult(res refreshResult) {
	key := res.Location.Key()
	if res.Err == nil {
		d.reports[key] = res.Report
	}
	if key != d.location().Key() {
		return
	}
	if res.Err != nil {
		d.lastErr = res.Err
		if d.report == nil {
			d.engine.SetState(animation.FromWeather(nil, d.now()))
		}
		return
	}
	d.lastErr = nil
	d.show(res.Report)
}

func (d *dashboard) show(report weather.Report) {
	d.report = &report
	state := animation.FromWeather(&report.Current, d.now())
	if d.overridden {
		state.UpdateIntensity(d.intensity)
	}
	d.engine.SetState(state)
	d.chart.SetData(report.Hourly)
}

// cycleCity moves the active city by step, wrapping around. The scene is
// re-derived from the city's last report, or the fallback state until one
// arrives. It reports whether the active city changed.
func (d *dashboard) cycleCity(step int) bool {
	n := len(d.locations)
	next := ((d.active+step)%n + n) % n
	if next == d.active {
		return false
	}
	d.active = next
	d.lastErr = nil
	d.report = nil
	if report, ok := d.reports[d.location().Key()]; ok {
		d.show(report)
	} else {
		d.engine.SetState(animation.FromWeather(nil, d.now()))
		d.chart.SetData(nil)
	}
	d.log.Infow("city selected", "location", d.location().Key())
	return true
}

// cycleFilter steps the favorites filter through every condition and back
// to showing all cities.
func (d *dashboard) cycleFilter() {
	all := append([]weather.Condition{weather.ConditionUnknown}, weather.Conditions()...)
	for i, c := range all {
		if c == d.filter {
			d.filter = all[(i+1)%len(all)]
			return
		}
	}
	d.filter = weather.ConditionUnknown
}

func (d *dashboard) adjustIntensity(delta float64) {
	d.intensity = math.Round(math.Max(0, math.Min(1, d.intensity+delta))*100) / 100
	d.overridden = true
	state, ok := d.engine.State()
	if !ok {
		return
	}
	state.UpdateIntensity(d.intensity)
	d.engine.SetState(state)
}

// cycleTheme pins the period after the active one.
func (d *dashboard) cycleTheme() {
	next := d.scheduler.ActivePeriod().Next()
	d.settings = config.ThemeSettings{EnableDynamicTheme: false, FixedThemeIndex: int(next)}
	d.scheduler.ApplySettings(d.settings)
	d.period = d.scheduler.ActivePeriod()
	d.log.Infow("theme pinned", "period", d.period.String())
}

func (d *dashboard) automaticTheme() {
	d.settings = config.ThemeSettings{EnableDynamicTheme: true, FixedThemeIndex: -1}
	d.scheduler.ApplySettings(d.settings)
	d.period = d.scheduler.ActivePeriod()
}

// Palette returns the store's colours, re-read only after a change.
func (d *dashboard) Palette() theme.Palette {
	if d.paletteDirty {
		d.palette = d.store.Snapshot()
		d.paletteDirty = false
	}
	return d.palette
}

func (d *dashboard) close() {
	d.chart.Close()
	d.engine.Detach()
	d.scheduler.Stop()
	for _, fn := range d.unsubscribe {
		fn()
	}
	d.unsubscribe = nil
	d.loop.StopAll()
}

// favoriteRow is one line of the favorites panel.
type favoriteRow struct {
	Name        string
	Temperature string
	Condition   string
	Active      bool
}

// favorites lists the cities matching the condition filter. The active city
// is always listed. Cities without a report yet only match the empty filter.
func (d *dashboard) favorites() []favoriteRow {
	var rows []favoriteRow
	for i, loc := range d.locations {
		row := favoriteRow{Name: loc.Name, Temperature: "--°", Condition: weather.ConditionUnknown.Label(), Active: i == d.active}
		report, ok := d.reports[loc.Key()]
		if ok {
			row.Temperature = fmt.Sprintf("%.0f°", report.Current.Temperature)
			row.Condition = report.Current.Condition.Label()
		}
		if d.filter != weather.ConditionUnknown && !row.Active && (!ok || report.Current.Condition != d.filter) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func (d *dashboard) filterLabel() string {
	if d.filter == weather.ConditionUnknown {
		return "All"
	}
	return d.filter.Label()
}

// headline is the text of the info panel.
type headline struct {
	City        string
	Temperature string
	Condition   string
	Details     string
	Period      string
	ThemeMode   string
	Status      string
}

func (d *dashboard) headline() headline {
	h := headline{
		City:      d.location().Name,
		Period:    d.period.Label(),
		ThemeMode: d.scheduler.Mode().String(),
	}
	if loc := d.location(); loc.Country != "" {
		h.City += ", " + loc.Country
	}
	if d.report == nil {
		h.Temperature = "--°"
		h.Condition = weather.ConditionUnknown.Label()
	} else {
		cur := d.report.Current
		h.Temperature = fmt.Sprintf("%.0f°", cur.Temperature)
		h.Condition = cur.Condition.Label()
		h.Details = fmt.Sprintf("Feels %.0f°  Humidity %d%%  Wind %.0f km/h", cur.FeelsLike, cur.Humidity, cur.WindSpeed)
	}
	switch {
	case d.lastErr != nil && d.report != nil:
		h.Status = "Refresh failed, showing last report"
	case d.lastErr != nil:
		h.Status = "Weather unavailable"
	default:
		h.Status = fmt.Sprintf("Intensity %.0f%%", d.intensity*100)
	}
	return h
}
