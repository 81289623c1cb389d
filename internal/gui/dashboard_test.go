package gui

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/appengine-ltd/weatherdash/internal/animation"
	"github.com/appengine-ltd/weatherdash/internal/config"
	"github.com/appengine-ltd/weatherdash/internal/theme"
	"github.com/appengine-ltd/weatherdash/internal/weather"
)

var (
	london = weather.Location{Name: "London", Country: "GB", Lat: 51.5074, Lon: -0.1278}
	tehran = weather.Location{Name: "Tehran", Country: "IR", Lat: 35.69, Lon: 51.39}
	oslo   = weather.Location{Name: "Oslo", Country: "NO", Lat: 59.91, Lon: 10.75}
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestDashboard(t *testing.T, clock *testClock, locs ...weather.Location) *dashboard {
	t.Helper()
	if len(locs) == 0 {
		locs = []weather.Location{london}
	}
	d := newDashboard(dashboardOptions{
		Locations: locs,
		Settings:  config.ThemeSettings{EnableDynamicTheme: true, FixedThemeIndex: -1},
		Intensity: 0.7,
		Seed:      7,
		Now:       clock.Now,
		Log:       zap.NewNop().Sugar(),
	})
	d.start(800, 600)
	d.chart.Resize(600, 200)
	return d
}

func syntheticResult(t *testing.T, loc weather.Location, c weather.Condition, now time.Time) refreshResult {
	t.Helper()
	p := weather.NewSynthetic(c)
	p.Now = func() time.Time { return now }
	r, err := p.Fetch(context.Background(), loc)
	if err != nil {
		t.Fatalf("synthetic fetch: %v", err)
	}
	return refreshResult{Location: loc, Report: r, At: now}
}

func midday() *testClock {
	return &testClock{now: time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)}
}

func TestDashboardStartsOnFallbackScene(t *testing.T) {
	clock := midday()
	d := newTestDashboard(t, clock)
	defer d.close()

	state, ok := d.engine.State()
	if !ok {
		t.Fatalf("expected a state after start")
	}
	if state.Condition != weather.ConditionPartlyCloudy || state.Intensity != 0.3 {
		t.Fatalf("fallback state = %s at %v, want partly cloudy at 0.3", state.Condition, state.Intensity)
	}
	if d.period != theme.Noon {
		t.Fatalf("period = %v, want Noon", d.period)
	}
	if d.Palette() != theme.PaletteFor(theme.Noon) {
		t.Fatalf("palette is not the Noon palette")
	}

	h := d.headline()
	if h.City != "London, GB" || h.Temperature != "--°" || h.Period != "Noon" || h.ThemeMode != "automatic" {
		t.Fatalf("unexpected headline %+v", h)
	}
}

func TestDashboardAppliesReports(t *testing.T) {
	clock := midday()
	d := newTestDashboard(t, clock)
	defer d.close()

	d.applyResult(syntheticResult(t, london, weather.ConditionRainy, clock.now))
	state, _ := d.engine.State()
	if state.Condition != weather.ConditionRainy || state.Intensity != 1.0 || state.ParticleCount != 120 {
		t.Fatalf("rainy state = %+v", state)
	}
	if got := len(d.chart.Layout().Markers); got != 24 {
		t.Fatalf("chart markers = %d, want 24", got)
	}

	h := d.headline()
	if h.Temperature != "12°" || h.Condition != "Rainy" || h.Status != "Intensity 70%" {
		t.Fatalf("unexpected headline %+v", h)
	}

	d.applyResult(refreshResult{Location: london, Err: errors.New("dial tcp: timeout")})
	state, _ = d.engine.State()
	if state.Condition != weather.ConditionRainy {
		t.Fatalf("a failed refresh replaced the scene with %s", state.Condition)
	}
	if got := d.headline().Status; got != "Refresh failed, showing last report" {
		t.Fatalf("status = %q", got)
	}
}

func TestDashboardFailureWithoutReport(t *testing.T) {
	clock := midday()
	d := newTestDashboard(t, clock)
	defer d.close()

	d.applyResult(refreshResult{Location: london, Err: errors.New("no route to host")})
	state, _ := d.engine.State()
	if state.Condition != weather.ConditionPartlyCloudy {
		t.Fatalf("condition = %s, want partly cloudy", state.Condition)
	}
	if got := d.headline().Status; got != "Weather unavailable" {
		t.Fatalf("status = %q", got)
	}
}

func TestDashboardIntensityOverride(t *testing.T) {
	clock := midday()
	d := newTestDashboard(t, clock)
	defer d.close()

	res := syntheticResult(t, london, weather.ConditionRainy, clock.now)
	d.applyResult(res)

	d.adjustIntensity(-intensityStep)
	state, _ := d.engine.State()
	if state.Intensity != 0.6 || state.ParticleCount != 72 {
		t.Fatalf("after lowering intensity: %+v", state)
	}

	d.applyResult(res)
	state, _ = d.engine.State()
	if state.Intensity != 0.6 {
		t.Fatalf("override lost on refresh: intensity %v", state.Intensity)
	}

	for i := 0; i < 20; i++ {
		d.adjustIntensity(intensityStep)
	}
	state, _ = d.engine.State()
	if state.Intensity != 1.0 || state.ParticleCount != 120 {
		t.Fatalf("intensity not capped: %+v", state)
	}
}

func TestDashboardThemeKeys(t *testing.T) {
	clock := midday()
	d := newTestDashboard(t, clock)
	defer d.close()

	d.cycleTheme()
	if d.period != theme.Afternoon || d.scheduler.Mode() != theme.ModeFixed {
		t.Fatalf("after cycle: period %v mode %v", d.period, d.scheduler.Mode())
	}
	if d.Palette() != theme.PaletteFor(theme.Afternoon) {
		t.Fatalf("palette is not the Afternoon palette")
	}
	if want := (config.ThemeSettings{FixedThemeIndex: int(theme.Afternoon)}); d.settings != want {
		t.Fatalf("settings = %+v, want %+v", d.settings, want)
	}

	d.cycleTheme()
	if d.period != theme.LateAfternoon {
		t.Fatalf("period = %v, want LateAfternoon", d.period)
	}

	d.automaticTheme()
	if d.period != theme.Noon || d.scheduler.Mode() != theme.ModeAutomatic {
		t.Fatalf("after automatic: period %v mode %v", d.period, d.scheduler.Mode())
	}
	if d.Palette() != theme.PaletteFor(theme.Noon) {
		t.Fatalf("palette is not the Noon palette")
	}
}

func TestDashboardFollowsClock(t *testing.T) {
	clock := midday()
	d := newTestDashboard(t, clock)
	defer d.close()

	clock.now = clock.now.Add(6 * time.Hour)
	d.frame(5 * time.Second)
	if d.period != theme.Dusk {
		t.Fatalf("period = %v, want Dusk", d.period)
	}
	if d.Palette() != theme.PaletteFor(theme.Dusk) {
		t.Fatalf("palette is not the Dusk palette")
	}
}

func TestDashboardSwitchesCities(t *testing.T) {
	clock := midday()
	d := newTestDashboard(t, clock, london, tehran, oslo)
	defer d.close()

	d.applyResult(syntheticResult(t, london, weather.ConditionRainy, clock.now))
	d.applyResult(syntheticResult(t, tehran, weather.ConditionSunny, clock.now))
	state, _ := d.engine.State()
	if state.Condition != weather.ConditionRainy {
		t.Fatalf("a background city changed the scene to %s", state.Condition)
	}
	if d.engine.LiveEntities() == 0 {
		t.Fatalf("rainy scene has no entities")
	}

	if !d.cycleCity(1) {
		t.Fatalf("cycleCity reported no change")
	}
	state, _ = d.engine.State()
	if state.Condition != weather.ConditionSunny {
		t.Fatalf("condition after switch = %s, want sunny", state.Condition)
	}
	if h := d.headline(); h.City != "Tehran, IR" || h.Condition != "Sunny" {
		t.Fatalf("unexpected headline %+v", h)
	}
	for _, p := range d.engine.Snapshot().Particles {
		if p.Kind == animation.KindRain {
			t.Fatalf("rain left over after switching to a sunny city")
		}
	}

	// Oslo has no report yet: fallback scene and an empty chart until one arrives.
	d.cycleCity(1)
	state, _ = d.engine.State()
	if state.Condition != weather.ConditionPartlyCloudy || d.report != nil {
		t.Fatalf("oslo before any report: %s, report %v", state.Condition, d.report)
	}
	if !d.chart.Layout().Empty() {
		t.Fatalf("chart kept the previous city's series")
	}
	d.applyResult(syntheticResult(t, oslo, weather.ConditionSnowy, clock.now))
	state, _ = d.engine.State()
	if state.Condition != weather.ConditionSnowy {
		t.Fatalf("oslo report not applied: %s", state.Condition)
	}

	// Wraps back to the first city and its cached report.
	d.cycleCity(1)
	if d.location() != london {
		t.Fatalf("location = %+v, want London", d.location())
	}
	d.cycleCity(-1)
	if d.location() != oslo {
		t.Fatalf("location = %+v, want Oslo", d.location())
	}
}

func TestDashboardSingleCityDoesNotSwitch(t *testing.T) {
	d := newTestDashboard(t, midday())
	defer d.close()
	if d.cycleCity(1) {
		t.Fatalf("cycling a single city reported a change")
	}
}

func TestDashboardFavoritesFilter(t *testing.T) {
	clock := midday()
	d := newTestDashboard(t, clock, london, tehran, oslo)
	defer d.close()

	d.applyResult(syntheticResult(t, london, weather.ConditionRainy, clock.now))
	d.applyResult(syntheticResult(t, tehran, weather.ConditionSunny, clock.now))

	rows := d.favorites()
	if len(rows) != 3 || !rows[0].Active || rows[2].Temperature != "--°" {
		t.Fatalf("unfiltered rows = %+v", rows)
	}
	if d.filterLabel() != "All" {
		t.Fatalf("filter label = %q", d.filterLabel())
	}

	d.cycleFilter()
	if d.filter != weather.ConditionSunny {
		t.Fatalf("filter = %q, want sunny", d.filter)
	}
	rows = d.favorites()
	if len(rows) != 2 || rows[0].Name != "London" || rows[1].Name != "Tehran" {
		t.Fatalf("sunny rows = %+v, want the active city and Tehran", rows)
	}

	for i := 0; i < len(weather.Conditions()); i++ {
		d.cycleFilter()
	}
	if d.filter != weather.ConditionUnknown || len(d.favorites()) != 3 {
		t.Fatalf("filter did not wrap back to all cities")
	}
}

func TestDashboardCloseStopsEverything(t *testing.T) {
	clock := midday()
	d := newTestDashboard(t, clock)

	d.applyResult(syntheticResult(t, london, weather.ConditionStorm, clock.now))
	d.chart.PointerMove(0, 0)
	d.frame(100 * time.Millisecond)
	if d.loop.Live() == 0 {
		t.Fatalf("expected live timers while running")
	}

	d.close()
	if d.loop.Live() != 0 || d.engine.LiveEntities() != 0 || d.chart.LiveTimers() != 0 {
		t.Fatalf("close left timers %d entities %d chart timers %d", d.loop.Live(), d.engine.LiveEntities(), d.chart.LiveTimers())
	}
	if d.scheduler.Running() {
		t.Fatalf("scheduler still running after close")
	}
}
