//go:build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/weatherdash/internal/config"
	"github.com/appengine-ltd/weatherdash/internal/gui"
	"github.com/appengine-ltd/weatherdash/internal/log"
	"github.com/appengine-ltd/weatherdash/internal/theme"
)

// version, commit, date are set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		offline     bool
		condition   string
		period      string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&offline, "offline", false, "use generated weather instead of Open-Meteo")
	flag.StringVar(&condition, "condition", "", "weather condition for offline mode (implies -offline)")
	flag.StringVar(&period, "period", "", "pin the theme to a period, e.g. \"dusk\" or 9")
	flag.Parse()

	if showVersion {
		fmt.Printf("weatherdash %s (%s) %s\n", version, commit, date)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if offline || condition != "" {
		cfg.Offline = true
	}
	if condition != "" {
		cfg.OfflineCondition = condition
	}
	if period != "" {
		p, ok := theme.ParsePeriod(period)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown period %q\n", period)
			os.Exit(2)
		}
		cfg.EnableDynamicTheme = false
		cfg.FixedThemeIndex = int(p)
	}

	if err := log.Init(cfg.Debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Settings:  *cfg,
	})

	if err := app.Run(); err != nil {
		log.Errorw("weatherdash exited", "error", err)
		log.Sync()
		os.Exit(1)
	}
}
