package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/weather-terminal/internal/forecast"
	"github.com/ngmaloney/weather-terminal/internal/locale"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/session"
)

const (
	headerIconCols   = 16
	headerIconRows   = 8
	clothingIconCols = 6
	clothingIconRows = 3
	wideLayout       = 110
)

// View renders the UI
func (m Model) View() string {
	var view string
	switch m.state {
	case StateLoading:
		view = m.viewLoading()
	case StateDisplay:
		view = m.viewDisplay()
	default:
		view = m.viewSearch()
	}
	if m.zones != nil {
		view = m.zones.Scan(view)
	}
	return view
}

func (m Model) contentWidth() int {
	if m.width > 0 {
		return m.width
	}
	return m.cfg.Display.Width
}

// viewSearch renders the search view
func (m Model) viewSearch() string {
	var sections []string
	sections = append(sections, m.theme.title.Render(m.cfg.Display.Title), "", m.renderSearchBar())
	sections = append(sections, "", helpStyle.Render(m.text.Label(locale.HelpSearch)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewLoading renders the first search in flight
func (m Model) viewLoading() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.title.Render(m.cfg.Display.Title),
		"",
		fmt.Sprintf("%s %s %s", m.spinner.View(), m.text.Label(locale.Loading), mutedStyle.Render(m.query)),
	)
}

// renderSearchBar draws the city box and the status text
func (m Model) renderSearchBar() string {
	box := searchBoxStyle
	if m.focus == FocusInput {
		box = m.theme.focusedBox
	}
	bar := box.Render(m.searchInput.View())

	var status string
	switch {
	case m.status == "":
	case m.statusErr:
		status = errorStyle.Render("✗ " + m.status)
	case m.loading:
		status = m.spinner.View() + " " + mutedStyle.Render(m.status)
	default:
		status = mutedStyle.Render(m.status)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, bar, "  ", status)
}

// viewDisplay renders the selected day of the current snapshot
func (m Model) viewDisplay() string {
	snap := m.session.Current()
	if snap == nil || snap.Aggregation.Empty() {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderSearchBar(),
			"",
			mutedStyle.Render(m.text.Label(locale.NoData)),
			helpStyle.Render(m.text.Label(locale.HelpSearch)),
		)
	}

	summary, bucket, ok := snap.Aggregation.Day(m.selected)
	if !ok {
		summary, bucket, _ = snap.Aggregation.Day(0)
	}
	rep, _ := bucket.Representative()

	width := m.contentWidth()
	leftWidth, rightWidth := width, width
	wide := width >= wideLayout
	if wide {
		leftWidth = width * 5 / 11
		rightWidth = width - leftWidth - 2
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(snap, summary, rep, leftWidth),
		m.renderSearchBar(),
		m.renderStats(rep, leftWidth),
		m.renderAdvice(leftWidth),
	)
	right := m.theme.card.Width(rightWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.title.Render(m.text.DayTitle(summary.Weekday)),
		"",
		m.renderCharts(bucket, rightWidth-6),
	))

	var body string
	if wide {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, left, right)
	}

	help := m.text.Label(locale.HelpDisplay)
	if m.focus == FocusInput {
		help = m.text.Label(locale.HelpSearch)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.renderDayCards(snap.Aggregation),
		helpStyle.Render(help),
	)
}

// renderHeader shows city, date, icon, temperature and description on the condition colour
func (m Model) renderHeader(snap *session.Snapshot, summary forecast.DaySummary, rep models.ForecastPoint, width int) string {
	bg := m.cfg.BackgroundFor(rep.Icon)
	style := m.theme.header(bg)

	icon := lipgloss.NewStyle().Background(lipgloss.Color(bg)).Render(conditionGlyph(rep.Icon))
	if img := m.iconImages[rep.Icon]; img != nil {
		icon = renderHalfBlocks(img, headerIconCols, headerIconRows, bg)
	}

	onBg := lipgloss.NewStyle().Background(lipgloss.Color(bg)).Foreground(lipgloss.Color(m.cfg.Colors.Text))
	temp := onBg.Bold(true).Render(formatDegrees(rep.Temperature))
	desc := onBg.Render(m.text.TitleCase(rep.Description))

	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		onBg.Bold(true).Render(strings.ToUpper(snap.City)),
		onBg.Render(m.text.FormatDate(rep.Time.In(m.tz))),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, icon, onBg.Render("  "), lipgloss.JoinVertical(lipgloss.Left, temp, desc)),
	))
}

// renderStats draws humidity, feels-like, visibility and pressure cards
func (m Model) renderStats(p models.ForecastPoint, width int) string {
	stats := []struct {
		key   locale.Key
		value string
	}{
		{locale.Humidity, formatHumidity(p.Humidity)},
		{locale.FeelsLike, formatDegrees(p.FeelsLike)},
		{locale.Visibility, formatVisibility(p.VisibilityKm())},
		{locale.Pressure, formatPressure(p.Pressure)},
	}

	cardWidth := max(12, width/len(stats)-2)
	cards := make([]string, len(stats))
	for i, s := range stats {
		cards[i] = m.theme.card.Width(cardWidth).Align(lipgloss.Center).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				m.theme.label.Render(m.text.Label(s.key)),
				m.theme.value.Render(s.value),
			),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderAdvice draws the recommendation text and the clothing thumbnails
func (m Model) renderAdvice(width int) string {
	items := make([]string, 0, len(m.clothing))
	for _, item := range m.clothing {
		thumb := clothingGlyph(item)
		if img := m.clothingImages[item]; img != nil {
			thumb = renderHalfBlocks(img, clothingIconCols, clothingIconRows, m.cfg.Colors.Card)
		}
		items = append(items, lipgloss.NewStyle().Padding(0, 1).Render(
			lipgloss.JoinVertical(lipgloss.Center, thumb, m.theme.label.Render(item.Label(m.text.Lang()))),
		))
	}

	inner := max(20, width-4)
	return m.theme.card.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.title.Render(m.text.Label(locale.Advice)),
		lipgloss.NewStyle().Width(inner).Render(m.adviceText),
		"",
		m.theme.label.Render(m.text.Label(locale.Clothing)),
		lipgloss.JoinHorizontal(lipgloss.Top, items...),
	))
}
