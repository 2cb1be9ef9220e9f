package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/gildedrose/internal/model"
)

// QualityBar renders quality as a bar scaled to max, followed by the number.
func QualityBar(quality, max, width int) string {
	if max <= 0 {
		max = 1
	}
	if width < 5 {
		width = 5
	}
	q := quality
	if q < 0 {
		q = 0
	}
	filled := int(float64(q) / float64(max) * float64(width))
	if filled > width {
		filled = width
	}
	t := current
	return strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled) + fmt.Sprintf(" %3d", quality)
}

// PanelString frames lines using the current theme.
func PanelString(lines []string) string {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.Muted).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Panel prints a framed box.
func Panel(lines []string) {
	fmt.Fprintln(stdout, PanelString(lines))
}

// ItemLine renders one inventory row: index, name, sellIn, quality bar.
func ItemLine(index int, it model.Item, nameWidth int) string {
	if nameWidth < 2 {
		nameWidth = 2
	}
	name := it.Name
	if r := []rune(name); len(r) > nameWidth {
		name = string(r[:nameWidth-1]) + "…"
	}
	name = CategoryStyle(it.Category).Render(name)
	if pad := nameWidth - lipgloss.Width(name); pad > 0 {
		name += strings.Repeat(" ", pad)
	}

	sellIn := fmt.Sprintf("%4d", it.SellIn)
	if it.SellIn < 0 && it.Category != model.Legendary {
		sellIn = WarnStyle().Render(sellIn + " " + current.SymExpired)
	} else {
		sellIn += "  "
	}

	barMax := 50
	if it.Category == model.Legendary {
		barMax = 80
	}
	return fmt.Sprintf("%s %s %s %s",
		MutedStyle().Render(fmt.Sprintf("%2d.", index)), name, sellIn,
		QualityBar(it.Quality, barMax, 20))
}
