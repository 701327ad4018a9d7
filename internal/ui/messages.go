package ui

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/weather-terminal/internal/advice"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/owm"
)

// forecastFetchedMsg is sent when a forecast request completes
type forecastFetchedMsg struct {
	gen      uint64
	city     string
	forecast *models.Forecast
	err      error
}

// iconFetchedMsg is sent when a condition icon has been downloaded.
// dayKey is set for the header icon of a selected day and empty for day cards.
type iconFetchedMsg struct {
	gen    uint64
	dayKey string
	code   string
	img    image.Image // nil when absent
}

// clothingFetchedMsg carries the thumbnails for one day's clothing items
type clothingFetchedMsg struct {
	gen    uint64
	dayKey string
	images map[advice.Item]image.Image
}

// requestContext bounds one request by the configured API timeout; zero means no deadline
func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

// fetchForecast requests the forecast for a city in the background
func fetchForecast(client owm.ForecastClient, timeout time.Duration, gen uint64, city string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		forecast, err := client.Fetch(ctx, city)
		return forecastFetchedMsg{gen: gen, city: city, forecast: forecast, err: err}
	}
}

// fetchIcon downloads and decodes a condition icon in the background
func fetchIcon(icons owm.IconResolver, timeout time.Duration, gen uint64, dayKey, code string) tea.Cmd {
	if icons == nil || code == "" {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		msg := iconFetchedMsg{gen: gen, dayKey: dayKey, code: code}
		if data, ok := icons.FetchIcon(ctx, code); ok {
			msg.img = decodeImage(data)
		}
		return msg
	}
}

// fetchClothing downloads the thumbnails for the given items one after another, each under its own deadline
func fetchClothing(icons owm.IconResolver, cfg *config.Config, gen uint64, dayKey string, items []advice.Item) tea.Cmd {
	if icons == nil || len(items) == 0 {
		return nil
	}
	return func() tea.Msg {
		images := make(map[advice.Item]image.Image, len(items))
		for _, item := range items {
			url, ok := cfg.ClothingURL(string(item))
			if !ok {
				continue
			}
			ctx, cancel := requestContext(cfg.API.Timeout)
			data, ok := icons.FetchImage(ctx, url)
			cancel()
			if !ok {
				continue
			}
			if img := decodeImage(data); img != nil {
				images[item] = img
			}
		}
		return clothingFetchedMsg{gen: gen, dayKey: dayKey, images: images}
	}
}

func decodeImage(data []byte) image.Image {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return img
}
