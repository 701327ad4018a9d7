package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/owm"
	"github.com/ngmaloney/weather-terminal/internal/ui"
)

// This demo shows the UI with a synthetic forecast and no network access
func main() {
	city := flag.String("city", config.DefaultCity, "City name to show")
	lang := flag.String("lang", "tr", "Display language (tr or en)")
	flag.Parse()

	cfg := config.Default()
	cfg.API.Lang = *lang

	m := ui.NewModel(ui.Options{
		Config:      cfg,
		Client:      owm.NewStaticForecastClient(),
		InitialCity: *city,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}
