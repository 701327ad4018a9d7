package ui

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/owm"
)

var testStart = time.Date(2025, 3, 4, 6, 0, 0, 0, time.UTC)

// mockForecastClient serves a fixed forecast or error and counts calls
type mockForecastClient struct {
	mu       sync.Mutex
	forecast *models.Forecast
	err      error
	calls    int
}

func (c *mockForecastClient) Fetch(ctx context.Context, city string) (*models.Forecast, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.forecast, nil
}

// mockIconResolver returns a small PNG for every request unless missing is set
type mockIconResolver struct {
	mu      sync.Mutex
	missing bool
	icons   []string
	images  []string
}

func (r *mockIconResolver) FetchIcon(ctx context.Context, code string) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.icons = append(r.icons, code)
	if r.missing {
		return nil, false
	}
	return testPNG(), true
}

func (r *mockIconResolver) FetchImage(ctx context.Context, url string) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images = append(r.images, url)
	if r.missing {
		return nil, false
	}
	return testPNG(), true
}

func testPNG() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.NRGBA{R: 255, G: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func staticForecast(t *testing.T, city string) *models.Forecast {
	t.Helper()
	f, err := owm.NewStaticForecastClientAt(testStart).Fetch(context.Background(), city)
	if err != nil {
		t.Fatalf("static forecast: %v", err)
	}
	return f
}

func newTestModel(client owm.ForecastClient, icons owm.IconResolver) Model {
	return NewModel(Options{
		Config:   config.Default(),
		Client:   client,
		Icons:    icons,
		Location: time.UTC,
	})
}

// typeText sends one key press per rune
func typeText(m Model, text string) Model {
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func press(m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	updated, cmd := m.Update(key)
	return updated.(Model), cmd
}

// search types a city, submits it and delivers the forecast result synchronously
func search(t *testing.T, m Model, city string) Model {
	t.Helper()
	if m.focus != FocusInput {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	}
	m.searchInput.SetValue("")
	m = typeText(m, city)
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after submitting a search")
	}
	msg := fetchForecast(m.client, time.Second, m.session.Generation(), city)()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

var errBoom = errors.New("boom")
