package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/weather-terminal/internal/forecast"
)

const (
	cardIconCols = 8
	cardIconRows = 4
)

func dayZoneID(i int) string {
	return fmt.Sprintf("day-%d", i)
}

// renderDayCards draws up to MaxDays clickable cards
func (m Model) renderDayCards(agg *forecast.Aggregation) string {
	n := min(agg.Len(), m.cfg.Display.MaxDays)
	cards := make([]string, 0, n)
	for i := 0; i < n; i++ {
		summary, _, _ := agg.Day(i)
		card := m.renderDayCard(summary, i == m.selected)
		if m.zones != nil {
			card = m.zones.Mark(dayZoneID(i), card)
		}
		cards = append(cards, card)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) renderDayCard(s forecast.DaySummary, selected bool) string {
	style := m.theme.card
	day := m.theme.value
	if selected {
		style = m.theme.selectedCard
		day = m.theme.accent
	}

	icon := conditionGlyph(s.Icon)
	if img := m.iconImages[s.Icon]; img != nil {
		icon = renderHalfBlocks(img, cardIconCols, cardIconRows, m.cfg.Colors.Card)
	}

	return style.Width(cardIconCols + 6).Align(lipgloss.Center).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			day.Render(m.text.ShortWeekday(s.Weekday)),
			icon,
			m.theme.label.Render(formatRange(s.Max, s.Min)),
		),
	)
}
