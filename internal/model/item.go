package model

import "strings"

// Item is one line of the inventory.
// Category is derived from Name and cached; it never reaches the data file.
type Item struct {
	Name     string   `json:"name" yaml:"name"`
	SellIn   int      `json:"sell_in" yaml:"sell_in"`
	Quality  int      `json:"quality" yaml:"quality"`
	Category Category `json:"-" yaml:"-"`
}

// NewItem builds a classified item.
func NewItem(name string, sellIn, quality int) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, ErrEmptyName
	}
	return Item{Name: name, SellIn: sellIn, Quality: quality, Category: Classify(name)}, nil
}

// Classified returns the item's category, classifying it on first use.
func (it *Item) Classified() Category {
	if it.Category == Unclassified {
		it.Category = Classify(it.Name)
	}
	return it.Category
}

// ClassifyAll tags every item that has not been tagged yet.
func ClassifyAll(items []Item) {
	for i := range items {
		items[i].Classified()
	}
}
