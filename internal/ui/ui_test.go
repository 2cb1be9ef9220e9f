package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/gildedrose/internal/model"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestQualityBar(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	assert.Equal(t, "##########..........  25", QualityBar(25, 50, 20))
	assert.Equal(t, "....................  -3", QualityBar(-3, 50, 20))
	assert.Equal(t, "####################  80", QualityBar(80, 50, 20))
	assert.Equal(t, "#....  10", QualityBar(10, 50, 1))
}

func TestPanelString(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	out := PanelString([]string{"ab", "abcd"})
	lines := strings.Split(out, "\n")
	assert.Equal(t, "+------+", lines[0])
	assert.Equal(t, "| ab   |", lines[1])
	assert.Equal(t, "| abcd |", lines[2])
	assert.Equal(t, "+------+", lines[3])
}

func TestItemLine(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	line := ItemLine(3, model.Item{Name: "Elixir of the Mongoose", SellIn: -2, Quality: 5, Category: model.Ordinary}, 10)
	assert.True(t, strings.HasPrefix(line, " 3. Elixir of… "), line)
	assert.Contains(t, line, "-2 !")

	assert.NotPanics(t, func() {
		line = ItemLine(2, model.Item{Name: "Mug", SellIn: 1, Quality: 1, Category: model.Ordinary}, 0)
	})
	assert.True(t, strings.HasPrefix(line, " 2. M… "), line)

	line = ItemLine(1, model.Item{Name: "Sulfuras", SellIn: -1, Quality: 80, Category: model.Legendary}, 10)
	assert.NotContains(t, line, "!")
	assert.Contains(t, line, "####################  80")
}

func TestOKAndFail(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(os.Stdout, os.Stderr)
	SetTheme("classic")

	OK("saved")
	Fail("broken")
	assert.Equal(t, "✔ saved\n", out.String())
	assert.Equal(t, "✖ broken\n", errOut.String())
}

func TestSetThemeFallsBack(t *testing.T) {
	SetTheme("does-not-exist")
	assert.Equal(t, "✔", Current().SymOK)
	assert.Equal(t, lipgloss.NormalBorder(), Current().Border)
}
