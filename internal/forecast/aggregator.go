// Package forecast groups a flat forecast time series into calendar days
package forecast

import (
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	dayKeyLayout    = "2006-01-02"
	timeLabelLayout = "15:04"
)

// DayBucket holds every forecast point of one local calendar day.
// The parallel slices are in insertion (chronological) order.
type DayBucket struct {
	Key     string // local date, e.g. "2025-03-04"
	Date    time.Time
	Weekday time.Weekday

	Times   []string  // "15:04" labels
	Temps   []float64 // Celsius
	Rains   []float64 // precipitation probability, 0-100
	Winds   []float64 // wind speed
	Degrees []float64 // wind direction
	Points  []models.ForecastPoint
}

// Representative returns the first point of the day
func (b *DayBucket) Representative() (models.ForecastPoint, bool) {
	if b == nil || len(b.Points) == 0 {
		return models.ForecastPoint{}, false
	}
	return b.Points[0], true
}

// DaySummary is the one-per-day digest shown on day cards
type DaySummary struct {
	Key         string
	Date        time.Time
	Weekday     time.Weekday
	Icon        string  // icon of the first point seen for the day
	SampleTemp  float64 // temperature of the first point seen for the day
	Description string
	Min         float64
	Max         float64
}

// Aggregation is the result of grouping one forecast. It is not mutated after Aggregate returns.
type Aggregation struct {
	Buckets   map[string]*DayBucket
	Summaries []DaySummary // order of first appearance in the input
}

// Aggregate groups points into day buckets keyed by their local date in loc.
// A nil loc means time.Local.
func Aggregate(points []models.ForecastPoint, loc *time.Location) *Aggregation {
	if loc == nil {
		loc = time.Local
	}

	agg := &Aggregation{
		Buckets:   make(map[string]*DayBucket),
		Summaries: make([]DaySummary, 0),
	}

	for _, p := range points {
		local := p.Time.In(loc)
		key := local.Format(dayKeyLayout)

		bucket, ok := agg.Buckets[key]
		if !ok {
			bucket = &DayBucket{
				Key:     key,
				Date:    time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc),
				Weekday: local.Weekday(),
			}
			agg.Buckets[key] = bucket
			agg.Summaries = append(agg.Summaries, DaySummary{
				Key:         key,
				Date:        bucket.Date,
				Weekday:     bucket.Weekday,
				Icon:        p.Icon,
				SampleTemp:  p.Temperature,
				Description: p.Description,
			})
		}

		bucket.Times = append(bucket.Times, local.Format(timeLabelLayout))
		bucket.Temps = append(bucket.Temps, p.Temperature)
		bucket.Rains = append(bucket.Rains, p.RainPercent())
		bucket.Winds = append(bucket.Winds, p.WindSpeed)
		bucket.Degrees = append(bucket.Degrees, p.WindDeg)
		bucket.Points = append(bucket.Points, p)
	}

	for i := range agg.Summaries {
		temps := agg.Buckets[agg.Summaries[i].Key].Temps
		agg.Summaries[i].Min, agg.Summaries[i].Max = minMax(temps)
	}

	return agg
}

// Empty reports whether there is nothing to render
func (a *Aggregation) Empty() bool {
	return a == nil || len(a.Summaries) == 0
}

// Len returns the number of days
func (a *Aggregation) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Summaries)
}

// Bucket looks up a day by its key
func (a *Aggregation) Bucket(key string) (*DayBucket, bool) {
	if a == nil {
		return nil, false
	}
	b, ok := a.Buckets[key]
	return b, ok
}

// Day returns the summary and bucket at position i of the summary list
func (a *Aggregation) Day(i int) (DaySummary, *DayBucket, bool) {
	if a == nil || i < 0 || i >= len(a.Summaries) {
		return DaySummary{}, nil, false
	}
	s := a.Summaries[i]
	return s, a.Buckets[s.Key], true
}

// minMax expects a non-empty slice; every bucket has at least one point
func minMax(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
