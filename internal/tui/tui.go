// Package tui is the interactive inventory browser.
package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/gildedrose/internal/aging"
	"github.com/idilsaglam/gildedrose/internal/model"
	"github.com/idilsaglam/gildedrose/internal/ui"
)

const nameWidth = 42

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) Title() string       { return i.Name }
func (i listItem) Description() string { return i.Category.String() }
func (i listItem) FilterValue() string { return i.Name }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = lipgloss.NewStyle().Bold(true).Reverse(true).Render("> ")
	}
	fmt.Fprint(w, prefix+ui.ItemLine(index+1, it.Item, nameWidth))
}

var (
	nextBind = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next day"))
	addBind  = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	delBind  = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	undoBind = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
)

// Model is the Bubble Tea model behind `gildedrose ls`.
type Model struct {
	list    list.Model
	days    int
	changed bool
	width   int
	height  int

	// Inline add / edit share one text input
	adding    bool
	editing   bool
	editIndex int // position in the full list, not the filtered view
	ti        textinput.Model
	inputErr  string

	// Undo support (single-level)
	canUndo   bool
	undoIndex int
	undoItem  *listItem
}

// New builds the model for items. The slice is copied.
func New(items []model.Item) Model {
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		it.Classified()
		li = append(li, listItem{it})
	}

	l := list.New(li, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle()
	l.Styles.HelpStyle = ui.MutedStyle()
	l.Styles.PaginationStyle = ui.MutedStyle()
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	extra := func() []key.Binding { return []key.Binding{nextBind, addBind, editBind, delBind, undoBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	m := Model{list: l, width: 80, height: 24}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "name;sellIn;quality"
	m.ti.CharLimit = 200
	m.refreshTitle()
	return m
}

// Items returns the current inventory in display order.
func (m Model) Items() []model.Item {
	out := make([]model.Item, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.Item)
		}
	}
	return out
}

// Changed reports whether the inventory was modified.
func (m Model) Changed() bool { return m.changed }

// Days is how many days were advanced in this session.
func (m Model) Days() int { return m.days }

func (m *Model) refreshTitle() {
	var expired int
	items := m.list.Items()
	for _, it := range items {
		if li, ok := it.(listItem); ok && li.SellIn < 0 && li.Category != model.Legendary {
			expired++
		}
	}
	m.list.Title = fmt.Sprintf("Gilded Rose  day +%d  %s %d expired", m.days, ui.Current().SymExpired, expired)
}

// selected returns the highlighted item and its index in the full list.
// With a filter applied, m.list.Index() counts visible rows only.
func (m Model) selected() (listItem, int, bool) {
	if len(m.list.VisibleItems()) == 0 {
		return listItem{}, -1, false
	}
	i := m.list.GlobalIndex()
	if i < 0 || i >= len(m.list.Items()) {
		return listItem{}, -1, false
	}
	li, ok := m.list.Items()[i].(listItem)
	return li, i, ok
}

func (m *Model) advance() tea.Cmd {
	items := m.Items()
	aging.Advance(items)
	li := make([]list.Item, len(items))
	for i, it := range items {
		li[i] = listItem{it}
	}
	// The item held for undo ages with the rest of the stock.
	if m.undoItem != nil {
		u := m.undoItem
		next := aging.Step(u.Classified(), aging.State{SellIn: u.SellIn, Quality: u.Quality})
		u.SellIn, u.Quality = next.SellIn, next.Quality
	}
	m.days++
	m.changed = true
	cmd := m.list.SetItems(li)
	m.refreshTitle()
	return cmd
}

// ParseEntry reads "name;sellIn;quality" as typed in the add/edit box.
func ParseEntry(s string) (model.Item, error) {
	parts := strings.Split(s, ";")
	if len(parts) != 3 {
		return model.Item{}, fmt.Errorf("want name;sellIn;quality")
	}
	sellIn, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Item{}, fmt.Errorf("sellIn: not a number: %q", strings.TrimSpace(parts[1]))
	}
	quality, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return model.Item{}, fmt.Errorf("quality: not a number: %q", strings.TrimSpace(parts[2]))
	}
	return model.NewItem(parts[0], sellIn, quality)
}

func formatEntry(it model.Item) string {
	return fmt.Sprintf("%s;%d;%d", it.Name, it.SellIn, it.Quality)
}

// Update and View implement Bubble Tea's Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.adding || m.editing {
		return m.updateInput(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "n":
			return m, m.advance()
		case "d":
			li, i, ok := m.selected()
			if !ok {
				return m, nil
			}
			tmp := li
			m.undoItem = &tmp
			m.undoIndex = i
			m.canUndo = true
			m.list.RemoveItem(i)
			if m.list.FilterState() == list.FilterApplied {
				// RemoveItem leaves the remaining matches pointing at old positions.
				m.list.SetFilterText(m.list.FilterValue())
			}
			m.changed = true
			m.refreshTitle()
			return m, nil
		case "a":
			m.adding = true
			m.inputErr = ""
			m.ti.SetValue("")
			m.resize()
			return m, m.ti.Focus()
		case "e":
			li, i, ok := m.selected()
			if !ok {
				return m, nil
			}
			m.editing = true
			m.editIndex = i
			m.inputErr = ""
			m.ti.SetValue(formatEntry(li.Item))
			m.ti.CursorEnd()
			m.resize()
			return m, m.ti.Focus()
		case "u":
			if m.canUndo && m.undoItem != nil {
				idx := m.undoIndex
				if idx > len(m.list.Items()) {
					idx = len(m.list.Items())
				}
				cmd := m.list.InsertItem(idx, *m.undoItem)
				m.changed = true
				m.canUndo = false
				m.undoItem = nil
				m.refreshTitle()
				return m, cmd
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			it, err := ParseEntry(m.ti.Value())
			if err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			var cmd tea.Cmd
			if m.editing {
				if m.editIndex >= 0 && m.editIndex < len(m.list.Items()) {
					cmd = m.list.SetItem(m.editIndex, listItem{it})
				}
			} else {
				at := 0
				if _, i, ok := m.selected(); ok {
					at = i + 1
				}
				cmd = m.list.InsertItem(at, listItem{it})
			}
			m.changed = true
			m.closeInput()
			m.refreshTitle()
			return m, cmd
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding = false
	m.editing = false
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *Model) resize() {
	h := m.height - 4
	if m.adding || m.editing {
		h -= 4
	}
	if h < 1 {
		h = 1
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding || m.editing {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ui.Current().Muted).Padding(0, 1)
		title := "Add item"
		if m.editing {
			title = "Edit item"
		}
		if m.inputErr != "" {
			title += ": " + ui.ErrorStyle().Render(m.inputErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return lipgloss.NewStyle().
		Border(ui.Current().Border).
		BorderForeground(ui.Current().Muted).
		Padding(0, 1).
		Render(content)
}

// Run starts the browser and returns the final state when the user quits.
func Run(items []model.Item) (Model, error) {
	p := tea.NewProgram(New(items), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return Model{}, fmt.Errorf("unexpected model %T", final)
	}
	return fm, nil
}
