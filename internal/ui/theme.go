package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Warn lipgloss.TerminalColor
	BarFull, BarEmpty                          string
	Border                                     lipgloss.Border
	SymOK, SymFail, SymExpired                 string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title: lipgloss.NoColor{}, Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
		Success: lipgloss.Color("42"), Error: lipgloss.Color("9"), Warn: lipgloss.Color("214"),
		BarFull: "█", BarEmpty: "░",
		Border: lipgloss.NormalBorder(),
		SymOK:  "✔", SymFail: "✖", SymExpired: "⌛",
	}
}

// SetTheme switches the palette. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = Theme{
			Title: lipgloss.Color("13"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
			Success: lipgloss.Color("10"), Error: lipgloss.Color("9"), Warn: lipgloss.Color("11"),
			BarFull: "▰", BarEmpty: "▱",
			Border: lipgloss.RoundedBorder(),
			SymOK:  "✔", SymFail: "✖", SymExpired: "⌛",
		}
	case "mono":
		current = Theme{
			Title: lipgloss.NoColor{}, Muted: lipgloss.NoColor{}, Accent: lipgloss.NoColor{},
			Success: lipgloss.NoColor{}, Error: lipgloss.NoColor{}, Warn: lipgloss.NoColor{},
			BarFull: "#", BarEmpty: ".",
			Border: lipgloss.Border{
				Top: "-", Bottom: "-", Left: "|", Right: "|",
				TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
			},
			SymOK: "ok", SymFail: "error:", SymExpired: "!",
		}
	default: // classic
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
