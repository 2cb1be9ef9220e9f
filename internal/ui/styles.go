package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/gildedrose/internal/model"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects OK/Fail/Panel output. Nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

func fg(c lipgloss.TerminalColor) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

func TitleStyle() lipgloss.Style   { return fg(current.Title).Bold(true) }
func MutedStyle() lipgloss.Style   { return fg(current.Muted).Faint(true) }
func AccentStyle() lipgloss.Style  { return fg(current.Accent) }
func SuccessStyle() lipgloss.Style { return fg(current.Success) }
func WarnStyle() lipgloss.Style    { return fg(current.Warn) }
func ErrorStyle() lipgloss.Style   { return fg(current.Error).Bold(true) }

// CategoryStyle colors an item name by category.
func CategoryStyle(c model.Category) lipgloss.Style {
	switch c {
	case model.Legendary:
		return fg(current.Warn).Bold(true)
	case model.Ripening:
		return fg(current.Success)
	case model.EventTicket:
		return fg(current.Accent)
	case model.Conjured:
		return fg(current.Title).Italic(true)
	default:
		return lipgloss.NewStyle()
	}
}

func OK(msg string)   { fmt.Fprintln(stdout, SuccessStyle().Render(current.SymOK+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(stderr, ErrorStyle().Render(current.SymFail+" "+msg)) }
