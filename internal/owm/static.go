package owm

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// staticDay describes the synthetic weather for one day of the static forecast
type staticDay struct {
	icon        string
	description string
	baseTemp    float64
	pop         float64
	wind        float64
}

var staticDays = []staticDay{
	{"03", "parçalı bulutlu", 16, 0.1, 12},
	{"10", "hafif yağmur", 10, 0.8, 24},
	{"01", "açık", 24, 0, 8},
	{"13", "kar yağışlı", -1, 0.9, 15},
	{"04", "kapalı", 29, 0.2, 18},
}

// StaticForecastClient returns a deterministic synthetic forecast without network access
type StaticForecastClient struct {
	now func() time.Time
}

// NewStaticForecastClient creates a static client anchored at the current time
func NewStaticForecastClient() *StaticForecastClient {
	return &StaticForecastClient{now: time.Now}
}

// NewStaticForecastClientAt creates a static client anchored at a fixed time
func NewStaticForecastClientAt(start time.Time) *StaticForecastClient {
	return &StaticForecastClient{now: func() time.Time { return start }}
}

// Fetch returns 40 points in 3-hour steps covering five days
func (s *StaticForecastClient) Fetch(ctx context.Context, city string) (*models.Forecast, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}
	if err := ctx.Err(); err != nil {
		return nil, notFound(err)
	}

	start := s.now().Truncate(3 * time.Hour)
	forecast := &models.Forecast{
		City:      city,
		Points:    make([]models.ForecastPoint, 0, 40),
		FetchedAt: s.now(),
	}

	for i := 0; i < 40; i++ {
		at := start.Add(time.Duration(i) * 3 * time.Hour)
		day := staticDays[(i/8)%len(staticDays)]

		// Warmest around 15:00, coldest around 03:00
		swing := 4 * math.Sin(float64(at.Hour()-9)*math.Pi/12)
		temp := math.Round((day.baseTemp+swing)*10) / 10

		suffix := "n"
		if at.Hour() >= 6 && at.Hour() < 18 {
			suffix = "d"
		}

		forecast.Points = append(forecast.Points, models.ForecastPoint{
			Time:              at,
			Temperature:       temp,
			FeelsLike:         temp - 1.5,
			Humidity:          55 + i%30,
			Pressure:          1008 + i%12,
			Visibility:        models.DefaultVisibility,
			PrecipProbability: day.pop,
			WindSpeed:         day.wind + float64(i%4),
			WindDeg:           float64((i * 45) % 360),
			Icon:              day.icon + suffix,
			Description:       day.description,
		})
	}

	return forecast, nil
}
