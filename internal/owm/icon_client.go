package owm

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/logger"
)

const (
	defaultIconURL = "https://openweathermap.org/img/wn/%s@4x.png"

	// maxImageBytes bounds a single icon download
	maxImageBytes = 2 << 20
)

// OWMIconResolver implements IconResolver with plain HTTP GETs
type OWMIconResolver struct {
	iconURL    string
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// NewIconResolver creates a new icon resolver
func NewIconResolver(opts Options) *OWMIconResolver {
	r := &OWMIconResolver{
		iconURL: defaultIconURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent: defaultUserAgent,
		logger:    opts.Logger,
	}
	if opts.IconURL != "" {
		r.iconURL = opts.IconURL
	}
	if opts.Timeout > 0 {
		r.httpClient.Timeout = opts.Timeout
	}
	if r.logger == nil {
		r.logger = logger.Discard()
	}
	r.logger = r.logger.With("component", "owm.icons")
	return r
}

// FetchIcon retrieves the condition icon for a code such as "01d"
func (r *OWMIconResolver) FetchIcon(ctx context.Context, code string) ([]byte, bool) {
	if code == "" {
		return nil, false
	}
	return r.FetchImage(ctx, fmt.Sprintf(r.iconURL, code))
}

// FetchImage retrieves an image. Failures are logged at debug level and reported as absent.
func (r *OWMIconResolver) FetchImage(ctx context.Context, url string) ([]byte, bool) {
	if url == "" {
		return nil, false
	}

	data, err := r.download(ctx, url)
	if err != nil {
		r.logger.Debug("image fetch failed", "url", url, "err", err)
		return nil, false
	}
	return data, true
}

func (r *OWMIconResolver) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image request returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	return data, nil
}
