// Package locale provides the fixed Turkish and English texts used by the terminal UI
package locale

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default is used for unknown language codes
const Default = "tr"

// Key names a translatable UI label
type Key int

const (
	Humidity Key = iota
	FeelsLike
	Visibility
	Pressure
	RainChart
	TempChart
	WindChart
	DayAnalysis
	Loading
	NotFound
	SearchPlaceholder
	NoData
	Advice
	Clothing
	HelpSearch
	HelpDisplay
)

type table struct {
	tag      language.Tag
	weekdays [7]string
	short    [7]string
	months   [12]string
	labels   map[Key]string
}

var tables = map[string]*table{
	"tr": {
		tag:      language.Turkish,
		weekdays: [7]string{"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi"},
		short:    [7]string{"PAZ", "PZT", "SAL", "ÇAR", "PER", "CUM", "CMT"},
		months: [12]string{"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
			"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık"},
		labels: map[Key]string{
			Humidity:          "💧 Nem",
			FeelsLike:         "🌡️ His",
			Visibility:        "👁️ Görüş",
			Pressure:          "⏲️ Basınç",
			RainChart:         "Yağış İhtimali (%)",
			TempChart:         "Sıcaklık (°C)",
			WindChart:         "Rüzgar (km/s)",
			DayAnalysis:       "%s Günü Detaylı Analiz",
			Loading:           "Yükleniyor...",
			NotFound:          "Bulunamadı!",
			SearchPlaceholder: "Şehir Ara...",
			NoData:            "Veri yok",
			Advice:            "Öneri",
			Clothing:          "Ne giymeli?",
			HelpSearch:        "enter: ara • tab: günler • esc: temizle • ctrl+c: çıkış",
			HelpDisplay:       "←/→ 1-6: gün seç • tab: arama • q: çıkış",
		},
	},
	"en": {
		tag:      language.English,
		weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		short:    [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"},
		months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		labels: map[Key]string{
			Humidity:          "💧 Humidity",
			FeelsLike:         "🌡️ Feels",
			Visibility:        "👁️ Visibility",
			Pressure:          "⏲️ Pressure",
			RainChart:         "Rain Chance (%)",
			TempChart:         "Temperature (°C)",
			WindChart:         "Wind (km/h)",
			DayAnalysis:       "%s Detailed Analysis",
			Loading:           "Loading...",
			NotFound:          "Not found!",
			SearchPlaceholder: "Search city...",
			NoData:            "No data",
			Advice:            "Advice",
			Clothing:          "What to wear?",
			HelpSearch:        "enter: search • tab: days • esc: clear • ctrl+c: quit",
			HelpDisplay:       "←/→ 1-6: select day • tab: search • q: quit",
		},
	},
}

// Locale renders dates and labels for one language
type Locale struct {
	lang string
	t    *table
}

// New returns the locale for lang; unknown languages fall back to Turkish
func New(lang string) Locale {
	lang = strings.ToLower(strings.TrimSpace(lang))
	t, ok := tables[lang]
	if !ok {
		lang = Default
		t = tables[Default]
	}
	return Locale{lang: lang, t: t}
}

// Lang returns the resolved language code
func (l Locale) Lang() string {
	return l.lang
}

func (l Locale) table() *table {
	if l.t == nil {
		return tables[Default]
	}
	return l.t
}

// Weekday returns the full weekday name
func (l Locale) Weekday(d time.Weekday) string {
	return l.table().weekdays[d%7]
}

// ShortWeekday returns the three-letter day card label
func (l Locale) ShortWeekday(d time.Weekday) string {
	return l.table().short[d%7]
}

// Month returns the month name
func (l Locale) Month(m time.Month) string {
	if m < time.January || m > time.December {
		return m.String()
	}
	return l.table().months[m-1]
}

// FormatDate renders a date as "16 Ekim, Cuma"
func (l Locale) FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s, %s", t.Day(), l.Month(t.Month()), l.Weekday(t.Weekday()))
}

// Label returns the text for a UI label
func (l Locale) Label(k Key) string {
	return l.table().labels[k]
}

// DayTitle returns the chart heading for a weekday
func (l Locale) DayTitle(d time.Weekday) string {
	return fmt.Sprintf(l.Label(DayAnalysis), l.Weekday(d))
}

// TitleCase capitalizes each word of a provider description using the language's casing rules
func (l Locale) TitleCase(s string) string {
	return cases.Title(l.table().tag).String(s)
}
