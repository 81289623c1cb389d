package gui

import (
	"net/http"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/weatherdash/internal/animation"
	"github.com/appengine-ltd/weatherdash/internal/config"
	"github.com/appengine-ltd/weatherdash/internal/log"
	"github.com/appengine-ltd/weatherdash/internal/weather"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Settings  config.Config
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui := newDashboardUI(a.cfg, log.GetSugaredLogger())
	return ui.Run()
}

// newProvider picks the weather source. Both sit behind the TTL cache so a
// forced refresh inside the TTL does not hit the network.
func newProvider(cfg config.Config) weather.Provider {
	var p weather.Provider
	if cfg.Offline {
		p = weather.NewSynthetic(weather.ParseCondition(cfg.OfflineCondition))
	} else {
		p = weather.NewOpenMeteo(&http.Client{Timeout: 15 * time.Second})
	}
	return weather.NewCache(p, cfg.CacheTTL)
}

type rect struct {
	X, Y, W, H float32
}

func (r rect) rec() rl.Rectangle {
	return rl.NewRectangle(r.X, r.Y, r.W, r.H)
}

func (r rect) contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

type dashboardUI struct {
	cfg       AppConfig
	log       *zap.SugaredLogger
	dash      *dashboard
	queue     *resultQueue
	refresher *refresher

	width  int32
	height int32
	quit   bool

	infoRect      rect
	favoritesRect rect
	forecastRect  rect
	chartPanel    rect
	chartArea     rect
	pointerIn     bool

	lastTick time.Time
}

func newDashboardUI(cfg AppConfig, logger *zap.SugaredLogger) *dashboardUI {
	s := cfg.Settings
	locs := s.Locations()
	queue := newResultQueue(len(locs) + 2)
	return &dashboardUI{
		cfg: cfg,
		log: logger,
		dash: newDashboard(dashboardOptions{
			Locations: locs,
			Settings:  s.ThemeSettings(),
			Intensity: s.AnimationIntensity,
			Seed:      s.Seed,
			Log:       logger,
		}),
		queue:     queue,
		refresher: newRefresher(newProvider(s), locs, queue, logger),
		width:     int32(s.Width),
		height:    int32(s.Height),
	}
}

func (ui *dashboardUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "weatherdash")
	rl.SetExitKey(0)
	rl.SetTargetFPS(animation.FrameRate)
	initTypography()

	ui.layout()
	ui.dash.start(float64(ui.width), float64(ui.height))
	ui.dash.chart.Resize(float64(ui.chartArea.W), float64(ui.chartArea.H))
	if err := ui.refresher.Start(ui.cfg.Settings.RefreshInterval()); err != nil {
		ui.dash.close()
		shutdownTypography()
		rl.CloseWindow()
		return err
	}
	ui.lastTick = time.Now()

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		if w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()); w != ui.width || h != ui.height {
			ui.width, ui.height = w, h
			ui.layout()
			ui.dash.resize(float64(w), float64(h), float64(ui.chartArea.W), float64(ui.chartArea.H))
		}

		ui.update(delta)

		t := themeFromPalette(ui.dash.Palette())
		rl.BeginDrawing()
		rl.ClearBackground(t.Background)
		ui.draw(t)
		rl.EndDrawing()
	}

	ui.refresher.Stop()
	ui.dash.close()
	shutdownTypography()
	rl.CloseWindow()
	return nil
}

func (ui *dashboardUI) layout() {
	w, h := float32(ui.width), float32(ui.height)
	ui.infoRect = rect{X: spaceL, Y: spaceL, W: 400, H: 240}
	ui.forecastRect = rect{X: w - spaceL - 340, Y: spaceL, W: 340, H: 300}
	ui.chartPanel = rect{X: spaceL, Y: h - spaceL - 260, W: w - 2*spaceL, H: 260}
	favTop := ui.infoRect.Y + ui.infoRect.H + spaceM
	ui.favoritesRect = rect{X: spaceL, Y: favTop, W: 400, H: ui.chartPanel.Y - spaceM - favTop}
	ui.chartArea = rect{
		X: ui.chartPanel.X + spaceM,
		Y: ui.chartPanel.Y + 56,
		W: ui.chartPanel.W - 2*spaceM,
		H: ui.chartPanel.H - 56 - spaceS,
	}
}

func (ui *dashboardUI) update(delta time.Duration) {
	for {
		res, ok := ui.queue.Dequeue()
		if !ok {
			break
		}
		ui.dash.applyResult(res)
	}

	for _, action := range pressedActions() {
		switch action {
		case actionCycleTheme:
			ui.dash.cycleTheme()
		case actionAutoTheme:
			ui.dash.automaticTheme()
		case actionIntensityUp:
			ui.dash.adjustIntensity(intensityStep)
		case actionIntensityDown:
			ui.dash.adjustIntensity(-intensityStep)
		case actionRefresh:
			ui.refresher.Trigger()
		case actionNextCity:
			if ui.dash.cycleCity(1) {
				ui.refresher.Trigger()
			}
		case actionPrevCity:
			if ui.dash.cycleCity(-1) {
				ui.refresher.Trigger()
			}
		case actionCycleFilter:
			ui.dash.cycleFilter()
		case actionQuit:
			ui.quit = true
		}
	}

	mouse := rl.GetMousePosition()
	switch {
	case ui.chartArea.contains(mouse.X, mouse.Y):
		ui.pointerIn = true
		ui.dash.chart.PointerMove(float64(mouse.X-ui.chartArea.X), float64(mouse.Y-ui.chartArea.Y))
	case ui.pointerIn:
		ui.pointerIn = false
		ui.dash.chart.PointerExit()
	}

	ui.dash.frame(delta)
}

func (ui *dashboardUI) draw(t Theme) {
	drawScene(ui.dash.engine.Snapshot())
	ui.drawInfo(t)
	ui.drawFavorites(t)
	ui.drawForecast(t)

	DrawPanel(t, ui.chartPanel.rec(), "Next 24 hours", false)
	drawChart(t, ui.dash.chart.Layout(), ui.chartArea)
	drawTooltip(t, ui.dash.chart.Tooltip(), ui.chartArea, float32(ui.width))
}
