package advice

// Band is a temperature range used by the advice rules
type Band int

const (
	BandFreezing Band = iota // t < 5
	BandCool                 // 5 <= t <= 18
	BandPleasant             // 18 < t <= 25
	BandHot                  // 25 < t <= 32
	BandScorching            // t > 32
	BandUnknown              // NaN
)

func (b Band) String() string {
	switch b {
	case BandFreezing:
		return "freezing"
	case BandCool:
		return "cool"
	case BandPleasant:
		return "pleasant"
	case BandHot:
		return "hot"
	case BandScorching:
		return "scorching"
	default:
		return "unknown"
	}
}

// BandFor classifies a temperature in Celsius
func BandFor(temp float64) Band {
	switch {
	case temp < 5:
		return BandFreezing
	case temp >= 5 && temp <= 18:
		return BandCool
	case temp > 18 && temp <= 25:
		return BandPleasant
	case temp > 25 && temp <= 32:
		return BandHot
	case temp > 32:
		return BandScorching
	default:
		return BandUnknown
	}
}

// WindLimit is the speed above which the windbreaker warning is added
const WindLimit = 20.0

const (
	SnowMessage = "❄️ KAR YAĞIŞI: Dışarısı beyaz bir masal gibi ama soğuk şakaya gelmez! Mutlaka su geçirmeyen botlarını ve en kalın montunu giy.\n\n" +
		"🎒 İPUCU: Atkı, bere ve eldiven üçlüsü olmadan çıkma. Araç kullanacaksan buz kazıyıcıyı unutma."

	coldRainMessage = "☔ SOĞUK YAĞMUR: Hava hem ıslak hem üşütücü. Su geçirmeyen kalın bir mont ve sağlam botlar şart.\n\n" +
		"🎒 İPUCU: Rüzgara dayanıklı bir şemsiye al. Ayakların ıslanırsa günün zehir olur, dikkat et!"

	mildRainMessage = "🌦️ ILIK YAĞMUR: Yağmur var ama hava yumuşak. İnce bir yağmurluk veya trençkot işini görür.\n\n" +
		"🎒 İPUCU: Şemsiyeni yanından ayırma. Islanan elektronik cihazlar için çantanda yer aç."

	// WindWarning is appended whenever wind exceeds WindLimit, except for snow
	WindWarning = "\n\n🌬️ UYARI: Rüzgar sert esiyor! Rüzgar kesici (Windbreaker) bir mont giymezsen üşütürsün."

	// FallbackMessage is returned when no rule produced any text
	FallbackMessage = "Hava değişken olabilir, tedbirli olmakta fayda var!"

	// coldRainBelow separates the cold and mild rain messages
	coldRainBelow = 12.0
)

var bandMessages = map[Band]string{
	BandFreezing: "🥶 KURU SOĞUK: Hava buz gibi! Termal içliklerin varsa tam zamanı. Lahana gibi kat kat giyinmek seni sıcak tutar.\n\n" +
		"🎒 İPUCU: Soğuk cildini kurutabilir, nemlendirici sürmeyi ve kulaklarını bereyle korumayı unutma.",
	BandCool: "☁️ SERİN HAVA: Tam bir geçiş havası. Tişört üstüne hırka veya mevsimlik bir ceket alarak 'katmanlı' giyin.\n\n" +
		"🎒 İPUCU: Güneşe aldanma, akşam serinliği çarpar. Yanına yedek bir üst al.",
	BandPleasant: "🌤️ HARİKA HAVA: Ne üşütür ne terletir. En sevdiğin tişörtünü, kotunu veya rahat spor kıyafetlerini giy.\n\n" +
		"🎒 İPUCU: Dışarıda vakit geçirmek için mükemmel gün. Güneş gözlüğün yanında olsun.",
	BandHot: "☀️ SICAK: Güneş kendini hissettiriyor. Açık renkli, pamuklu ve terletmeyen ince kıyafetler tercih et.\n\n" +
		"🎒 İPUCU: Güneş gözlüğü ve şapka şart. Susuz kalmamak için su mataranı mutlaka yanına al.",
	BandScorching: "🔥 AŞIRI SICAK: Hava bunaltıcı seviyede. Mümkünse gölgeden ayrılma ve en ferah, en ince kıyafetlerini giy.\n\n" +
		"🎒 İPUCU: Sıcakta telefon şarjı çabuk biter, powerbank al. Ve tabii ki bol bol su iç!",
}

// Advise builds the recommendation text for a temperature (°C), a weather
// description and a wind speed. Snow wins over everything and skips the wind
// warning; rain wins over the temperature bands.
func Advise(temp float64, description string, windSpeed float64) string {
	if IsSnow(description) {
		return SnowMessage
	}

	var text string
	if IsRain(description) {
		if temp < coldRainBelow {
			text = coldRainMessage
		} else {
			text = mildRainMessage
		}
	} else {
		text = bandMessages[BandFor(temp)]
	}

	if windSpeed > WindLimit {
		text += WindWarning
	}

	if text == "" {
		return FallbackMessage
	}
	return text
}
