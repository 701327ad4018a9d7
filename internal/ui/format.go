package ui

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/ngmaloney/weather-terminal/internal/advice"
)

func formatHumidity(h int) string {
	return fmt.Sprintf("%%%d", h)
}

func formatDegrees(t float64) string {
	return fmt.Sprintf("%.0f°", t)
}

func formatVisibility(km float64) string {
	return humanize.FtoaWithDigits(km, 1) + " km"
}

func formatPressure(p int) string {
	return fmt.Sprintf("%d hPa", p)
}

// formatRange renders a day card's "max° / min°"
func formatRange(hi, lo float64) string {
	return fmt.Sprintf("%.0f° / %.0f°", hi, lo)
}

var windArrows = []string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// windArrow points where the wind blows to, given the direction it comes from
func windArrow(deg float64) string {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return "·"
	}
	to := math.Mod(math.Mod(deg+180, 360)+360, 360)
	return windArrows[int(math.Round(to/45))%len(windArrows)]
}

// conditionGlyph stands in for a condition icon that could not be fetched
func conditionGlyph(code string) string {
	if len(code) < 2 {
		return "?"
	}
	night := len(code) == 3 && code[2] == 'n'
	switch code[:2] {
	case "01":
		if night {
			return "🌙"
		}
		return "☀️"
	case "02":
		return "⛅"
	case "03", "04":
		return "☁️"
	case "09":
		return "🌧️"
	case "10":
		return "🌦️"
	case "11":
		return "⛈️"
	case "13":
		return "❄️"
	case "50":
		return "🌫️"
	default:
		return "?"
	}
}

var clothingGlyphs = map[advice.Item]string{
	advice.WinterCoat: "🧥",
	advice.Jacket:     "🦺",
	advice.TShirt:     "👕",
	advice.Raincoat:   "🥼",
	advice.Umbrella:   "☂️",
	advice.SnowBoots:  "🥾",
	advice.Sunglasses: "🕶️",
	advice.Scarf:      "🧣",
	advice.Cap:        "🧢",
}

func clothingGlyph(item advice.Item) string {
	if g, ok := clothingGlyphs[item]; ok {
		return g
	}
	return "•"
}
