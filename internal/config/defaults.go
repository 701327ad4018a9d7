package config

import "time"

const (
	DefaultForecastURL = "http://api.openweathermap.org/data/2.5/forecast"
	DefaultIconURL     = "https://openweathermap.org/img/wn/%s@4x.png"
	DefaultCity        = "Kocaeli"
	DefaultMaxDays     = 6
)

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		API: APIConfig{
			ForecastURL: DefaultForecastURL,
			IconURL:     DefaultIconURL,
			Units:       "metric",
			Lang:        "tr",
			Timeout:     10 * time.Second,
			RateLimit:   1,
			Burst:       3,
		},
		Display: DisplayConfig{
			Title:       "Akıllı Hava Durumu",
			DefaultCity: DefaultCity,
			MaxDays:     DefaultMaxDays,
			Width:       120,
			Height:      45,
		},
		Colors: ColorConfig{
			Background: "#2B2B2B",
			Card:       "#282828",
			Text:       "#FFFFFF",
			TextGray:   "#D0D0D0",
			Accent:     "#FFD700",
			Rain:       "#4A90E2",
			Wind:       "#50E3C2",
			Palette: map[string]string{
				"01d": "#E67E22", "01n": "#1A253A",
				"02d": "#2980B9", "02n": "#2C3E50",
				"03d": "#7F8C8D", "03n": "#34495E",
				"04d": "#7F8C8D", "04n": "#34495E",
				"09d": "#30336B", "09n": "#130f40",
				"10d": "#30336B", "10n": "#130f40",
				"11d": "#2d3436", "11n": "#000000",
				"13d": "#95a5a6", "13n": "#535c68",
				"50d": "#636e72", "50n": "#2d3436",
			},
		},
		Clothing: map[string]string{
			"winter_coat": "https://cdn-icons-png.flaticon.com/128/1926/1926322.png",
			"jacket":      "https://cdn-icons-png.flaticon.com/128/3893/3893192.png",
			"tshirt":      "https://cdn-icons-png.flaticon.com/512/863/863684.png",
			"raincoat":    "https://cdn-icons-png.flaticon.com/128/3333/3333534.png",
			"umbrella":    "https://cdn-icons-png.flaticon.com/128/1147/1147591.png",
			"snow_boots":  "https://cdn-icons-png.flaticon.com/128/17257/17257525.png",
			"sunglasses":  "https://cdn-icons-png.flaticon.com/128/11554/11554135.png",
			"scarf":       "https://cdn-icons-png.flaticon.com/128/6371/6371544.png",
			"cap":         "https://cdn-icons-png.flaticon.com/128/2806/2806186.png",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
