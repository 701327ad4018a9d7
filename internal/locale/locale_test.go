package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_FallsBackToTurkish(t *testing.T) {
	require.Equal(t, "tr", New("tr").Lang())
	require.Equal(t, "en", New(" EN ").Lang())
	require.Equal(t, "tr", New("de").Lang())
	require.Equal(t, "tr", New("").Lang())

	var zero Locale
	require.Equal(t, "Pazartesi", zero.Weekday(time.Monday))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "16 Ekim, Cuma", New("tr").FormatDate(d))
	require.Equal(t, "16 October, Friday", New("en").FormatDate(d))
}

func TestWeekdayNames(t *testing.T) {
	tr := New("tr")
	tests := []struct {
		day   time.Weekday
		full  string
		short string
	}{
		{time.Sunday, "Pazar", "PAZ"},
		{time.Monday, "Pazartesi", "PZT"},
		{time.Wednesday, "Çarşamba", "ÇAR"},
		{time.Saturday, "Cumartesi", "CMT"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.full, tr.Weekday(tt.day))
		require.Equal(t, tt.short, tr.ShortWeekday(tt.day))
	}

	require.Equal(t, "THU", New("en").ShortWeekday(time.Thursday))
}

func TestMonth(t *testing.T) {
	require.Equal(t, "Ocak", New("tr").Month(time.January))
	require.Equal(t, "Aralık", New("tr").Month(time.December))
	require.Equal(t, "May", New("en").Month(time.May))
	require.Equal(t, "%!Month(13)", New("tr").Month(time.Month(13)))
}

func TestLabels(t *testing.T) {
	tr := New("tr")
	require.Equal(t, "Yükleniyor...", tr.Label(Loading))
	require.Equal(t, "Bulunamadı!", tr.Label(NotFound))
	require.Equal(t, "Yağış İhtimali (%)", tr.Label(RainChart))
	require.Equal(t, "Salı Günü Detaylı Analiz", tr.DayTitle(time.Tuesday))

	en := New("en")
	require.Equal(t, "Not found!", en.Label(NotFound))

	for k := Humidity; k <= HelpDisplay; k++ {
		require.NotEmpty(t, tr.Label(k), "tr label %d", k)
		require.NotEmpty(t, en.Label(k), "en label %d", k)
	}
}

func TestTitleCase(t *testing.T) {
	tr := New("tr")
	require.Equal(t, "Parçalı Bulutlu", tr.TitleCase("parçalı bulutlu"))
	require.Equal(t, "Açık", tr.TitleCase("açık"))
	require.Equal(t, "İnce Yağmur", tr.TitleCase("ince yağmur"))
	require.Equal(t, "Light Rain", New("en").TitleCase("light rain"))
	require.Equal(t, "", tr.TitleCase(""))
}
