package cli

import (
	"fmt"
	"io"

	"github.com/idilsaglam/gildedrose/internal/aging"
	"github.com/idilsaglam/gildedrose/internal/model"
	"github.com/idilsaglam/gildedrose/internal/ui"
)

// SeedInventory is the shop's starter stock.
func SeedInventory() []model.Item {
	seed := []struct {
		name            string
		sellIn, quality int
	}{
		{"+5 Dexterity Vest", 10, 20},
		{"Aged Brie", 2, 0},
		{"Elixir of the Mongoose", 5, 7},
		{"Sulfuras, Hand of Ragnaros", 0, 80},
		{"Sulfuras, Hand of Ragnaros", -1, 80},
		{"Backstage passes to a TAFKAL80ETC concert", 15, 20},
		{"Backstage passes to a TAFKAL80ETC concert", 10, 49},
		{"Backstage passes to a TAFKAL80ETC concert", 5, 49},
		{"Conjured Mana Cake", 3, 6},
	}
	items := make([]model.Item, 0, len(seed))
	for _, s := range seed {
		it, _ := model.NewItem(s.name, s.sellIn, s.quality)
		items = append(items, it)
	}
	return items
}

// WriteReport prints the inventory for day 0 through days, advancing a copy
// between each block.
func WriteReport(w io.Writer, items []model.Item, days int) {
	cur := make([]model.Item, len(items))
	copy(cur, items)
	for day := 0; day <= days; day++ {
		fmt.Fprintf(w, "-------- day %d --------\n", day)
		fmt.Fprintln(w, "name, sellIn, quality")
		for _, it := range cur {
			fmt.Fprintf(w, "%s, %d, %d\n", it.Name, it.SellIn, it.Quality)
		}
		fmt.Fprintln(w)
		aging.Advance(cur)
	}
}

// small inventory stats used for the header
func stats(items []model.Item) map[model.Category]int {
	out := make(map[model.Category]int, 5)
	for i := range items {
		out[items[i].Classified()]++
	}
	return out
}

func inventoryLines(items []model.Item) []string {
	st := stats(items)
	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s %d  %s %d  %s %d",
		ui.TitleStyle().Render("Gilded Rose"),
		ui.AccentStyle().Render("total"), len(items),
		ui.CategoryStyle(model.Ordinary).Render("ordinary"), st[model.Ordinary],
		ui.CategoryStyle(model.Ripening).Render("ripening"), st[model.Ripening],
		ui.CategoryStyle(model.EventTicket).Render("tickets"), st[model.EventTicket],
		ui.CategoryStyle(model.Conjured).Render("conjured"), st[model.Conjured],
		ui.CategoryStyle(model.Legendary).Render("legendary"), st[model.Legendary],
	)

	lines := []string{header, ""}
	if len(items) == 0 {
		lines = append(lines, ui.MutedStyle().Render("no items"))
	}
	for i, it := range items {
		lines = append(lines, ui.ItemLine(i+1, it, 42))
	}
	lines = append(lines, "")
	lines = append(lines, ui.MutedStyle().Render(t.SymExpired+" past sell date · tip: `gildedrose advance` ages everything by a day"))
	return lines
}
