package advice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectClothing(t *testing.T) {
	tests := []struct {
		name        string
		temp        float64
		description string
		want        []Item
	}{
		{"freezing dry", 2, "bulutlu", []Item{WinterCoat, Scarf}},
		{"freezing snow keeps single scarf", 3, "kar", []Item{WinterCoat, Scarf, SnowBoots}},
		{"cold snow adds scarf", 8, "hafif kar yağışı", []Item{WinterCoat, SnowBoots, Scarf}},
		{"lower coat edge", 5, "kapalı", []Item{WinterCoat}},
		{"jacket edge", 15, "kapalı", []Item{Jacket}},
		{"rainy jacket", 17, "hafif yağmur", []Item{Jacket, Raincoat, Umbrella}},
		{"clear but cool", 18, "açık", []Item{Jacket}},
		{"clear and mild", 19, "açık", []Item{Jacket, Sunglasses}},
		{"tshirt edge", 22, "bulutlu", []Item{TShirt}},
		{"hot and sunny", 27, "clear sky", []Item{TShirt, Sunglasses, Cap}},
		{"hot rain", 28, "sağanak", []Item{TShirt, Raincoat, Umbrella, Cap}},
		{"cap needs more than 25", 25, "bulutlu", []Item{TShirt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SelectClothing(tt.temp, tt.description))
		})
	}
}

func TestSelectClothing_NoDuplicates(t *testing.T) {
	for temp := -10.0; temp <= 40; temp += 0.5 {
		for _, desc := range []string{"kar", "yağmur", "açık", "snow rain clear", ""} {
			items := SelectClothing(temp, desc)
			seen := make(map[Item]bool)
			for _, item := range items {
				require.False(t, seen[item], "duplicate %s for %v %q", item, temp, desc)
				seen[item] = true
			}
			require.NotEmpty(t, items)
		}
	}
}

func TestItemLabel(t *testing.T) {
	require.Equal(t, "Kışlık Mont", WinterCoat.Label("tr"))
	require.Equal(t, "Winter Coat", WinterCoat.Label("en"))
	require.Equal(t, "Şemsiye", Umbrella.Label("de"))
	require.Equal(t, "parka", Item("parka").Label("en"))

	for _, item := range AllItems {
		require.NotEqual(t, string(item), item.Label("tr"))
		require.NotEqual(t, string(item), item.Label("en"))
	}
}
