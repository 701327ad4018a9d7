package models

import "time"

// DefaultVisibility is used when the provider omits visibility (meters)
const DefaultVisibility = 10000.0

// ForecastPoint represents one 3-hour forecast sample
type ForecastPoint struct {
	Time              time.Time
	Temperature       float64 // Celsius
	FeelsLike         float64 // Celsius
	Humidity          int     // percent
	Pressure          int     // hPa
	Visibility        float64 // meters
	PrecipProbability float64 // 0.0 - 1.0
	WindSpeed         float64 // shown as km/h
	WindDeg           float64 // degrees the wind blows from
	Icon              string  // condition code, e.g. "10d"
	Description       string  // provider text in the requested language
}

// RainPercent returns the precipitation probability as 0-100
func (p ForecastPoint) RainPercent() float64 {
	return p.PrecipProbability * 100
}

// VisibilityKm returns visibility in kilometers
func (p ForecastPoint) VisibilityKm() float64 {
	return p.Visibility / 1000
}

// Forecast is a parsed forecast response for one city
type Forecast struct {
	City      string
	Points    []ForecastPoint // Ordered by time
	FetchedAt time.Time
}

// Current returns the first forecast point, which stands in for current conditions
func (f *Forecast) Current() (ForecastPoint, bool) {
	if f == nil || len(f.Points) == 0 {
		return ForecastPoint{}, false
	}
	return f.Points[0], true
}
