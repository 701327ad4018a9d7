package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates the runtime settings of the weather terminal
type Config struct {
	API      APIConfig         `yaml:"api"`
	Display  DisplayConfig     `yaml:"display"`
	Colors   ColorConfig       `yaml:"colors"`
	Clothing map[string]string `yaml:"clothingIcons"`
	Log      LogConfig         `yaml:"log"`
}

// APIConfig controls the OpenWeatherMap clients
type APIConfig struct {
	Key         string        `yaml:"key"`
	ForecastURL string        `yaml:"forecastUrl"`
	IconURL     string        `yaml:"iconUrl"` // printf template taking the condition code
	Units       string        `yaml:"units"`
	Lang        string        `yaml:"lang"`
	Timeout     time.Duration `yaml:"timeout"`
	RateLimit   float64       `yaml:"rateLimit"` // requests per second
	Burst       int           `yaml:"burst"`
}

// DisplayConfig controls the layout
type DisplayConfig struct {
	Title       string `yaml:"title"`
	DefaultCity string `yaml:"defaultCity"`
	MaxDays     int    `yaml:"maxDays"`
	Width       int    `yaml:"width"`  // terminal cells
	Height      int    `yaml:"height"` // terminal cells
}

// ColorConfig holds hex colours, with the background picked per condition code
type ColorConfig struct {
	Background string            `yaml:"background"`
	Card       string            `yaml:"card"`
	Text       string            `yaml:"text"`
	TextGray   string            `yaml:"textGray"`
	Accent     string            `yaml:"accent"`
	Rain       string            `yaml:"rain"`
	Wind       string            `yaml:"wind"`
	Palette    map[string]string `yaml:"palette"`
}

// LogConfig selects the optional debug log
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty disables logging
}

// Load builds the configuration from defaults, the YAML file at path (or
// WEATHER_CONFIG when path is empty) and environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("WEATHER_CONFIG")
	}
	if path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPENWEATHER_API_KEY"); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv("WEATHER_FORECAST_URL"); v != "" {
		cfg.API.ForecastURL = v
	}
	if v := os.Getenv("WEATHER_ICON_URL"); v != "" {
		cfg.API.IconURL = v
	}
	if v := os.Getenv("WEATHER_LANG"); v != "" {
		cfg.API.Lang = v
	}
	if v := os.Getenv("WEATHER_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.API.Timeout = parsed
		}
	}
	if v := os.Getenv("WEATHER_RATE_LIMIT"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.API.RateLimit = parsed
		}
	}
	if v := os.Getenv("WEATHER_CITY"); v != "" {
		cfg.Display.DefaultCity = v
	}
	if v := os.Getenv("WEATHER_MAX_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Display.MaxDays = parsed
		}
	}
	if v := os.Getenv("WEATHER_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Validate checks that the settings needed to run are present.
// A missing API key is allowed; forecast requests then fail as not found.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.API.ForecastURL) == "" {
		errs = append(errs, errors.New("api.forecastUrl is required"))
	}
	if strings.TrimSpace(c.API.IconURL) == "" {
		errs = append(errs, errors.New("api.iconUrl is required"))
	}
	if c.Display.MaxDays <= 0 {
		errs = append(errs, fmt.Errorf("display.maxDays must be positive, got %d", c.Display.MaxDays))
	}
	if c.API.RateLimit <= 0 || c.API.Burst < 1 {
		errs = append(errs, fmt.Errorf("api.rateLimit and api.burst must be positive, got %v/%d", c.API.RateLimit, c.API.Burst))
	}
	if c.API.Timeout < 0 {
		errs = append(errs, fmt.Errorf("api.timeout must not be negative, got %s", c.API.Timeout))
	}
	return errors.Join(errs...)
}

// BackgroundFor returns the header colour for a condition code such as "10d"
func (c *Config) BackgroundFor(code string) string {
	if color, ok := c.Colors.Palette[code]; ok {
		return color
	}
	return c.Colors.Background
}

// ClothingURL returns the icon URL for a clothing item identifier
func (c *Config) ClothingURL(item string) (string, bool) {
	url, ok := c.Clothing[item]
	return url, ok && url != ""
}
