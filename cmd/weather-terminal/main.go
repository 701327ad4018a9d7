package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/logger"
	"github.com/ngmaloney/weather-terminal/internal/owm"
	"github.com/ngmaloney/weather-terminal/internal/session"
	"github.com/ngmaloney/weather-terminal/internal/ui"
)

func main() {
	exitCode := 0
	defer func() { os.Exit(exitCode) }()

	configPath := flag.String("config", "", "Path to a YAML config file (defaults to $WEATHER_CONFIG)")
	city := flag.String("city", "", "City to load on start (defaults to the configured default city)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "weather")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log := logger.New(logOut, cfg.Log.Level)
	if cfg.API.Key == "" {
		log.Warn("no API key configured; set OPENWEATHER_API_KEY")
	}

	opts := owm.Options{
		APIKey:      cfg.API.Key,
		ForecastURL: cfg.API.ForecastURL,
		IconURL:     cfg.API.IconURL,
		Units:       cfg.API.Units,
		Lang:        cfg.API.Lang,
		Timeout:     cfg.API.Timeout,
		Logger:      log,
	}

	initial := *city
	if initial == "" {
		initial = cfg.Display.DefaultCity
	}

	m := ui.NewModel(ui.Options{
		Config:      cfg,
		Client:      owm.NewRateLimitedForecastClient(owm.NewForecastClient(opts), cfg.API.RateLimit, cfg.API.Burst),
		Icons:       owm.NewCachedIconResolver(owm.NewIconResolver(opts)),
		Session:     session.New(),
		Logger:      log,
		InitialCity: initial,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		exitCode = 1
	}
}
