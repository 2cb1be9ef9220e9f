// Package aging ages inventory items by one day.
package aging

import (
	"math"

	"github.com/idilsaglam/gildedrose/internal/model"
)

const (
	MinQuality       = 0
	MaxQuality       = 50
	LegendaryQuality = 80
)

// State is the part of an item that changes from one day to the next.
type State struct {
	SellIn  int
	Quality int
}

// Step returns the state one day after s for an item of category c.
// The sell-by check uses the SellIn value at the start of the day.
func Step(c model.Category, s State) State {
	if c == model.Legendary {
		return State{SellIn: s.SellIn, Quality: LegendaryQuality}
	}
	expired := s.SellIn < 0
	q := s.Quality

	switch c {
	case model.Ripening:
		q = add(q, 1)
		if expired {
			q = add(q, 1)
		}
	case model.EventTicket:
		switch {
		case expired:
			q = 0
		case s.SellIn <= 5:
			q = add(q, 3)
		case s.SellIn <= 10:
			q = add(q, 2)
		default:
			q = add(q, 1)
		}
	case model.Conjured:
		if expired {
			q = add(q, -4)
		} else {
			q = add(q, -2)
		}
	default:
		if expired {
			q = add(q, -2)
		} else {
			q = add(q, -1)
		}
	}

	return State{SellIn: add(s.SellIn, -1), Quality: clamp(q)}
}

// Advance ages every item by one day, in place and in order.
func Advance(items []model.Item) {
	for i := range items {
		it := &items[i]
		next := Step(it.Classified(), State{SellIn: it.SellIn, Quality: it.Quality})
		it.SellIn, it.Quality = next.SellIn, next.Quality
	}
}

func clamp(q int) int {
	if q < MinQuality {
		return MinQuality
	}
	if q > MaxQuality {
		return MaxQuality
	}
	return q
}

// add saturates at the int range instead of wrapping.
func add(a, d int) int {
	if d > 0 && a > math.MaxInt-d {
		return math.MaxInt
	}
	if d < 0 && a < math.MinInt-d {
		return math.MinInt
	}
	return a + d
}
