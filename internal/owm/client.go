package owm

import (
	"context"
	"errors"
	"fmt"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

var (
	// ErrNotFound is returned for every forecast failure: unknown city, bad status,
	// malformed body or transport error. Callers cannot tell them apart.
	ErrNotFound = errors.New("forecast not found")

	// ErrEmptyCity is returned without any I/O when the city is blank
	ErrEmptyCity = errors.New("city cannot be empty")
)

// ForecastClient defines the interface for fetching a city forecast
type ForecastClient interface {
	// Fetch retrieves the 5-day/3-hour forecast for a city
	Fetch(ctx context.Context, city string) (*models.Forecast, error)
}

// IconResolver defines the interface for best-effort image downloads.
// A false result means "skip rendering", never a fatal condition.
type IconResolver interface {
	// FetchIcon retrieves the image for a weather condition code (e.g. "10d")
	FetchIcon(ctx context.Context, code string) ([]byte, bool)

	// FetchImage retrieves an image from an arbitrary URL
	FetchImage(ctx context.Context, url string) ([]byte, bool)
}

// notFound collapses any cause into ErrNotFound while keeping it for logs
func notFound(cause error) error {
	return fmt.Errorf("%w: %w", ErrNotFound, cause)
}
