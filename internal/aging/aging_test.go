package aging

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/gildedrose/internal/model"
)

func advanceOne(name string, sellIn, quality int) model.Item {
	items := []model.Item{{Name: name, SellIn: sellIn, Quality: quality}}
	Advance(items)
	return items[0]
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name        string
		item        string
		sellIn      int
		quality     int
		wantSellIn  int
		wantQuality int
	}{
		{"ordinary decays", "Nintendo", 1, 2, 0, 1},
		{"ordinary above max converges", "Nintendo", 1, 51, 0, 50},
		{"ordinary stays at zero", "Nintendo", 1, 0, 0, 0},
		{"ordinary expired decays twice", "Microsoft Mouse", -1, 4, -2, 2},
		{"ordinary expired above max", "Microsoft Windows 10 Licence Key", -1, 51, -2, 49},
		{"ordinary expired at zero", "Softwire mug", -1, 0, -2, 0},
		{"ordinary negative quality raised", "Dell Monitor", 3, -7, 2, 0},
		{"ordinary on sell date", "Dell Laptop", 0, 10, -1, 9},

		{"brie gains", "Aged Brie", 1, 2, 0, 3},
		{"brie above max", "Aged Brie", 1, 51, 0, 50},
		{"brie from zero", "Aged Brie", 1, 0, 0, 1},
		{"brie saturates", "Aged Brie", 1, 49, 0, 50},
		{"brie on sell date gains once", "Aged Brie", 0, 10, -1, 11},
		{"brie expired gains twice", "Aged Brie", -1, 2, -2, 4},
		{"brie expired saturates", "Aged Brie", -1, 49, -2, 50},
		{"brie expired from zero", "Aged Brie", -1, 0, -2, 2},

		{"ticket five days or fewer", "Backstage passes thingy", 1, 2, 0, 5},
		{"ticket five days clamps", "Backstage passes thingy", 5, 49, 4, 50},
		{"ticket on event day", "Backstage passes to a TAFKAL80ETC concert", 0, 20, -1, 23},
		{"ticket six days", "Backstage passes thingy", 6, 2, 5, 4},
		{"ticket nine days", "Backstage passes thingy", 9, 5, 8, 7},
		{"ticket ten days", "Backstage passes thingy", 10, 5, 9, 7},
		{"ticket eleven days", "Backstage passes thingy", 11, 2, 10, 3},
		{"ticket far out clamps", "Backstage passes thingy", 16, 49, 15, 50},
		{"ticket expired", "Backstage passes thingy", -1, 2, -2, 0},
		{"ticket long expired", "Backstage passes thingy", -12, 5, -13, 0},

		{"sulfuras pinned", "Sulfuras, Hand of Ragnaros", 13, 2, 13, 80},
		{"sulfuras fixture", "Sulfuras, Hand of Ragnaros", 13, 80, 13, 80},
		{"sulfuras expired", "Sulfuras, Hand of Ragnaros", -1, 80, -1, 80},
		{"conjured sulfuras is legendary", "Conjured Sulfuras", 11, 12, 11, 80},

		{"conjured brie decays twice", "Conjured Aged Brie", 10, 2, 9, 0},
		{"conjured lowercase passes", "Conjured backstage passes", 2, 14, 1, 12},
		{"conjured mana cake", "Conjured Mana Cake", 3, 6, 2, 4},
		{"conjured expired brie", "Conjured Aged Brie", -1, 2, -2, 0},
		{"conjured expired passes", "Conjured backstage passes", -2, 14, -3, 10},
		{"conjured expired above max", "Conjured Mana Cake", -1, 60, -2, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := advanceOne(tc.item, tc.sellIn, tc.quality)
			assert.Equal(t, tc.wantSellIn, got.SellIn, "sellIn")
			assert.Equal(t, tc.wantQuality, got.Quality, "quality")
		})
	}
}

func TestAdvanceEmpty(t *testing.T) {
	assert.NotPanics(t, func() { Advance(nil) })
	assert.NotPanics(t, func() { Advance([]model.Item{}) })
}

func TestAdvancePreservesOrder(t *testing.T) {
	items := []model.Item{
		{Name: "Aged Brie", SellIn: 2, Quality: 0},
		{Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7},
		{Name: "Sulfuras, Hand of Ragnaros", SellIn: 0, Quality: 80},
	}
	first := &items[0]

	Advance(items)

	assert.Len(t, items, 3)
	assert.Same(t, first, &items[0])
	assert.Equal(t, "Aged Brie", items[0].Name)
	assert.Equal(t, "Elixir of the Mongoose", items[1].Name)
	assert.Equal(t, "Sulfuras, Hand of Ragnaros", items[2].Name)
}

func TestAdvanceCachesCategory(t *testing.T) {
	items := []model.Item{{Name: "Aged Brie", SellIn: 1, Quality: 1}}
	Advance(items)
	assert.Equal(t, model.Ripening, items[0].Category)

	// A stale tag wins over the name: the name is not re-inspected.
	items[0].Category = model.Ordinary
	Advance(items)
	assert.Equal(t, 1, items[0].Quality)
}

func TestAdvanceKeepsBoundsOverManyDays(t *testing.T) {
	items := []model.Item{
		{Name: "+5 Dexterity Vest", SellIn: 10, Quality: 20},
		{Name: "Aged Brie", SellIn: 2, Quality: 0},
		{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 15, Quality: 20},
		{Name: "Conjured Mana Cake", SellIn: 3, Quality: 6},
		{Name: "Nintendo", SellIn: 1, Quality: 51},
	}
	for day := 0; day < 60; day++ {
		Advance(items)
		for _, it := range items {
			assert.GreaterOrEqual(t, it.Quality, MinQuality, it.Name)
			assert.LessOrEqual(t, it.Quality, MaxQuality, it.Name)
		}
	}
}

func TestStepSaturates(t *testing.T) {
	got := Step(model.Ordinary, State{SellIn: math.MinInt, Quality: math.MinInt})
	assert.Equal(t, State{SellIn: math.MinInt, Quality: 0}, got)

	got = Step(model.Ripening, State{SellIn: math.MinInt, Quality: math.MaxInt})
	assert.Equal(t, State{SellIn: math.MinInt, Quality: 50}, got)

	got = Step(model.EventTicket, State{SellIn: math.MaxInt, Quality: math.MaxInt})
	assert.Equal(t, State{SellIn: math.MaxInt - 1, Quality: 50}, got)
}

func TestStepLegendaryIgnoresInput(t *testing.T) {
	for _, s := range []State{{13, 80}, {-5, 0}, {0, 51}, {math.MinInt, math.MaxInt}} {
		got := Step(model.Legendary, s)
		assert.Equal(t, s.SellIn, got.SellIn)
		assert.Equal(t, LegendaryQuality, got.Quality)
	}
}
