package advice

// Item identifies a clothing icon
type Item string

const (
	WinterCoat Item = "winter_coat"
	Jacket     Item = "jacket"
	TShirt     Item = "tshirt"
	Raincoat   Item = "raincoat"
	Umbrella   Item = "umbrella"
	SnowBoots  Item = "snow_boots"
	Sunglasses Item = "sunglasses"
	Scarf      Item = "scarf"
	Cap        Item = "cap"
)

// AllItems lists every item in a stable order
var AllItems = []Item{WinterCoat, Jacket, TShirt, Raincoat, Umbrella, SnowBoots, Sunglasses, Scarf, Cap}

var itemLabels = map[string]map[Item]string{
	"tr": {
		WinterCoat: "Kışlık Mont",
		Jacket:     "Mevsimlik Ceket",
		TShirt:     "Tişört",
		Raincoat:   "Yağmurluk",
		Umbrella:   "Şemsiye",
		SnowBoots:  "Kar Botu",
		Sunglasses: "Gözlük",
		Scarf:      "Atkı/Bere",
		Cap:        "Şapka",
	},
	"en": {
		WinterCoat: "Winter Coat",
		Jacket:     "Jacket",
		TShirt:     "T-Shirt",
		Raincoat:   "Raincoat",
		Umbrella:   "Umbrella",
		SnowBoots:  "Snow Boots",
		Sunglasses: "Sunglasses",
		Scarf:      "Scarf/Beanie",
		Cap:        "Cap",
	},
}

// Label returns the display label for lang, falling back to Turkish and then to the identifier
func (i Item) Label(lang string) string {
	if labels, ok := itemLabels[lang]; ok {
		if label, ok := labels[i]; ok {
			return label
		}
	}
	if label, ok := itemLabels["tr"][i]; ok {
		return label
	}
	return string(i)
}

// SelectClothing picks the clothing items for a temperature (°C) and description.
// The result is ordered and holds no duplicates.
func SelectClothing(temp float64, description string) []Item {
	var items []Item
	add := func(item Item) {
		for _, existing := range items {
			if existing == item {
				return
			}
		}
		items = append(items, item)
	}

	switch {
	case temp < 5:
		add(WinterCoat)
		add(Scarf)
	case temp < 15:
		add(WinterCoat)
	case temp < 22:
		add(Jacket)
	default:
		add(TShirt)
	}

	if IsSnow(description) {
		add(SnowBoots)
		add(Scarf)
	} else if IsRain(description) {
		add(Raincoat)
		add(Umbrella)
	}

	if IsClear(description) && temp > 18 {
		add(Sunglasses)
	}
	if temp > 25 {
		add(Cap)
	}

	return items
}
