package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/weather-terminal/internal/config"
)

var (
	// Fixed colours
	colorDanger = lipgloss.Color("#FF6B6B")
	colorMuted  = lipgloss.Color("#6C757D")
	colorBorder = lipgloss.Color("#4A4A4A")

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)

// theme holds the styles that depend on configured colours
type theme struct {
	colors config.ColorConfig

	title        lipgloss.Style
	label        lipgloss.Style
	value        lipgloss.Style
	accent       lipgloss.Style
	rain         lipgloss.Style
	wind         lipgloss.Style
	card         lipgloss.Style
	selectedCard lipgloss.Style
	focusedBox   lipgloss.Style
}

func newTheme(c config.ColorConfig) theme {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	return theme{
		colors: c,
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Accent)),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.TextGray)),
		value: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Text)),
		accent: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Accent)),
		rain: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Rain)),
		wind: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Wind)),
		card: card,
		selectedCard: card.
			BorderForeground(lipgloss.Color(c.Accent)),
		focusedBox: searchBoxStyle.
			BorderForeground(lipgloss.Color(c.Accent)),
	}
}

// header returns the banner style for a condition code
func (t theme) header(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(t.colors.Text)).
		Padding(1, 2)
}
