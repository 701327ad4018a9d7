package ui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/weather-terminal/internal/forecast"
	"github.com/ngmaloney/weather-terminal/internal/locale"
)

const (
	chartHeight = 5
	minColWidth = 5
)

// renderCharts draws the rain, temperature and wind charts for one day
func (m Model) renderCharts(bucket *forecast.DayBucket, width int) string {
	if bucket == nil || len(bucket.Times) == 0 {
		return mutedStyle.Render(m.text.Label(locale.NoData))
	}
	col := max(minColWidth, width/len(bucket.Times))
	times := columnRow(bucket.Times, col, m.theme.label)

	rainLabels := make([]string, len(bucket.Rains))
	for i, r := range bucket.Rains {
		rainLabels[i] = fmt.Sprintf("%%%.0f", r)
	}

	tempLabels := make([]string, len(bucket.Temps))
	for i, t := range bucket.Temps {
		tempLabels[i] = formatDegrees(t)
	}
	lo, hi := bounds(bucket.Temps)
	tempRange := mutedStyle.Render(fmt.Sprintf("min %s • max %s", formatDegrees(lo), formatDegrees(hi)))

	windLabels := make([]string, len(bucket.Winds))
	arrows := make([]string, len(bucket.Degrees))
	for i, w := range bucket.Winds {
		windLabels[i] = fmt.Sprintf("%.0f", w)
	}
	for i, d := range bucket.Degrees {
		arrows[i] = windArrow(d)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.rain.Render(m.text.Label(locale.RainChart)),
		columnRow(rainLabels, col, lipgloss.NewStyle()),
		rainChart(bucket.Times, bucket.Rains, col, m.theme.rain),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.theme.accent.Render(m.text.Label(locale.TempChart)), "  ", tempRange),
		columnRow(tempLabels, col, lipgloss.NewStyle()),
		spark(bucket.Temps, col, m.theme.accent),
		"",
		m.theme.wind.Render(m.text.Label(locale.WindChart)),
		columnRow(arrows, col, m.theme.wind),
		columnRow(windLabels, col, lipgloss.NewStyle()),
		spark(bucket.Winds, col, m.theme.wind),
		times,
	)
}

// rainChart draws one bar per slot on a fixed 0-100 scale
func rainChart(times []string, rains []float64, col int, style lipgloss.Style) string {
	data := make([]barchart.BarData, len(rains))
	for i, r := range rains {
		data[i] = barchart.BarData{
			Label:  times[i],
			Values: []barchart.BarValue{{Name: times[i], Value: r, Style: style}},
		}
	}
	bc := barchart.New(col*len(rains), chartHeight+1, barchart.WithMaxValue(100))
	bc.PushAll(data)
	bc.Draw()
	return bc.View()
}

// spark draws a stepped sparkline, widening every value to one column of col cells.
// Values are shifted so the lowest one still shows a sliver.
func spark(values []float64, col int, style lipgloss.Style) string {
	lo, _ := bounds(values)
	stretched := make([]float64, 0, len(values)*col)
	for _, v := range values {
		for i := 0; i < col; i++ {
			stretched = append(stretched, v-lo+1)
		}
	}
	sl := sparkline.New(len(stretched), chartHeight, sparkline.WithStyle(style))
	sl.PushAll(stretched)
	sl.Draw()
	return sl.View()
}

// columnRow centres each label in a cell of width col
func columnRow(labels []string, col int, style lipgloss.Style) string {
	cell := style.Width(col).Align(lipgloss.Center)
	var b strings.Builder
	for _, l := range labels {
		b.WriteString(cell.Render(l))
	}
	return b.String()
}

func bounds(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
