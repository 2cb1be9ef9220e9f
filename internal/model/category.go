package model

import "strings"

// Category selects the daily aging rule of an item.
type Category int

const (
	Unclassified Category = iota
	Ordinary
	Legendary
	Ripening
	EventTicket
	Conjured
)

// Name fragments that mark the special categories. Matching is case-sensitive.
const (
	LegendaryMark   = "Sulfuras"
	ConjuredMark    = "Conjured"
	RipeningMark    = "Aged Brie"
	EventTicketMark = "Backstage passes"
)

// Classify maps an item name to its category.
// Legendary beats Conjured, and Conjured beats the other specials.
func Classify(name string) Category {
	switch {
	case strings.Contains(name, LegendaryMark):
		return Legendary
	case strings.Contains(name, ConjuredMark):
		return Conjured
	case strings.Contains(name, RipeningMark):
		return Ripening
	case strings.Contains(name, EventTicketMark):
		return EventTicket
	default:
		return Ordinary
	}
}

func (c Category) String() string {
	switch c {
	case Ordinary:
		return "ordinary"
	case Legendary:
		return "legendary"
	case Ripening:
		return "ripening"
	case EventTicket:
		return "event-ticket"
	case Conjured:
		return "conjured"
	default:
		return "unclassified"
	}
}
