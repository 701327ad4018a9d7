package owm

import (
	"context"
	"fmt"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"golang.org/x/time/rate"
)

// RateLimitedForecastClient wraps a ForecastClient with rate limiting
type RateLimitedForecastClient struct {
	client  ForecastClient
	limiter *rate.Limiter
}

// NewRateLimitedForecastClient creates a new rate limited forecast client.
// rps is the maximum requests per second allowed (can be fractional),
// burst is the maximum burst size allowed.
func NewRateLimitedForecastClient(client ForecastClient, rps float64, burst int) *RateLimitedForecastClient {
	return &RateLimitedForecastClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Fetch waits for the limiter and forwards to the wrapped client
func (r *RateLimitedForecastClient) Fetch(ctx context.Context, city string) (*models.Forecast, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, notFound(fmt.Errorf("rate limit wait canceled: %w", err))
	}
	return r.client.Fetch(ctx, city)
}

var (
	_ ForecastClient = (*RateLimitedForecastClient)(nil)
	_ ForecastClient = (*OWMForecastClient)(nil)
	_ ForecastClient = (*StaticForecastClient)(nil)
	_ IconResolver   = (*OWMIconResolver)(nil)
	_ IconResolver   = (*CachedIconResolver)(nil)
)
