package owm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/logger"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	defaultForecastURL = "http://api.openweathermap.org/data/2.5/forecast"
	defaultUserAgent   = "WeatherTerminal/1.0 (github.com/ngmaloney/weather-terminal)"
)

// Options configures the OpenWeatherMap clients
type Options struct {
	APIKey      string
	ForecastURL string
	IconURL     string // fmt template with one %s for the condition code
	Units       string
	Lang        string
	Timeout     time.Duration
	Logger      *slog.Logger
}

// OWMForecastClient implements ForecastClient using the OpenWeatherMap 5 day / 3 hour API
type OWMForecastClient struct {
	baseURL    string
	apiKey     string
	units      string
	lang       string
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
	now        func() time.Time
}

// NewForecastClient creates a new OpenWeatherMap forecast client
func NewForecastClient(opts Options) *OWMForecastClient {
	c := &OWMForecastClient{
		baseURL: defaultForecastURL,
		apiKey:  opts.APIKey,
		units:   "metric",
		lang:    "tr",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent: defaultUserAgent,
		logger:    opts.Logger,
		now:       time.Now,
	}
	if opts.ForecastURL != "" {
		c.baseURL = opts.ForecastURL
	}
	if opts.Units != "" {
		c.units = opts.Units
	}
	if opts.Lang != "" {
		c.lang = opts.Lang
	}
	if opts.Timeout > 0 {
		c.httpClient.Timeout = opts.Timeout
	}
	if c.logger == nil {
		c.logger = logger.Discard()
	}
	c.logger = c.logger.With("component", "owm.forecast")
	return c
}

// Fetch retrieves the forecast for a city. Every failure is reported as ErrNotFound.
func (c *OWMForecastClient) Fetch(ctx context.Context, city string) (*models.Forecast, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}

	forecast, err := c.fetch(ctx, city)
	if err != nil {
		c.logger.Debug("forecast fetch failed", "city", city, "err", err)
		return nil, notFound(err)
	}

	c.logger.Debug("forecast fetched", "city", forecast.City, "points", len(forecast.Points))
	return forecast, nil
}

func (c *OWMForecastClient) fetch(ctx context.Context, city string) (*models.Forecast, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", c.units)
	params.Set("lang", c.lang)

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var forecastResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecastResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return forecastResp.toModel(c.now()), nil
}

// Internal types for OpenWeatherMap API responses

type forecastResponse struct {
	List []forecastItem `json:"list"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
}

type forecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Pop        float64  `json:"pop"`
	Visibility *float64 `json:"visibility"`
}

func (r forecastResponse) toModel(fetchedAt time.Time) *models.Forecast {
	forecast := &models.Forecast{
		City:      r.City.Name,
		Points:    make([]models.ForecastPoint, 0, len(r.List)),
		FetchedAt: fetchedAt,
	}

	for _, item := range r.List {
		point := models.ForecastPoint{
			Time:              time.Unix(item.Dt, 0),
			Temperature:       item.Main.Temp,
			FeelsLike:         item.Main.FeelsLike,
			Humidity:          item.Main.Humidity,
			Pressure:          item.Main.Pressure,
			Visibility:        models.DefaultVisibility,
			PrecipProbability: item.Pop,
			WindSpeed:         item.Wind.Speed,
			WindDeg:           item.Wind.Deg,
		}
		if item.Visibility != nil {
			point.Visibility = *item.Visibility
		}
		if len(item.Weather) > 0 {
			point.Icon = item.Weather[0].Icon
			point.Description = item.Weather[0].Description
		}
		forecast.Points = append(forecast.Points, point)
	}

	return forecast
}
