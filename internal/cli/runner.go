package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/idilsaglam/gildedrose/internal/aging"
	"github.com/idilsaglam/gildedrose/internal/config"
	"github.com/idilsaglam/gildedrose/internal/model"
	"github.com/idilsaglam/gildedrose/internal/store/fixture"
	"github.com/idilsaglam/gildedrose/internal/store/jsonstore"
	"github.com/idilsaglam/gildedrose/internal/tui"
	"github.com/idilsaglam/gildedrose/internal/ui"
)

// MaxDays caps `advance` and `report` at ten years of simulated days.
const MaxDays = 3650

// Options tune behavior from root flags. Empty fields fall back to Config.
type Options struct {
	Config  config.Config
	File    string // inventory file, overrides GILDEDROSE_DATA_FILE
	Theme   string
	Verbose bool

	// Out and Err default to the process streams.
	Out, Err io.Writer
}

type runner struct {
	path string
	out  io.Writer
	log  *log.Logger
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	r := setup(opt)
	if len(args) == 0 {
		PrintHelp(r.out)
		return 2
	}
	cmd, a := args[0], args[1:]
	r.log.Printf("command %q, inventory %s", cmd, r.path)

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(r.out)
		return 0

	case "ls":
		return r.doBrowse()

	case "show":
		return r.doShow()

	case "add":
		if len(a) < 3 {
			ui.Fail("usage: gildedrose add <sellIn> <quality> <name...>")
			return 2
		}
		sellIn, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("add: sellIn not a number: " + a[0])
			return 2
		}
		quality, err := strconv.Atoi(a[1])
		if err != nil {
			ui.Fail("add: quality not a number: " + a[1])
			return 2
		}
		return r.doAdd(strings.Join(a[2:], " "), sellIn, quality)

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: gildedrose rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return r.doRemove(n)

	case "advance", "report":
		days := 1
		if cmd == "report" {
			days = 2
		}
		if len(a) > 1 {
			ui.Fail("usage: gildedrose " + cmd + " [days]")
			return 2
		}
		if len(a) == 1 {
			n, err := strconv.Atoi(a[0])
			if err != nil || n < 0 {
				ui.Fail(cmd + ": days must be a non-negative number: " + a[0])
				return 2
			}
			if n > MaxDays {
				ui.Fail(fmt.Sprintf("%s: at most %d days at a time, got %d", cmd, MaxDays, n))
				return 2
			}
			days = n
		}
		if cmd == "report" {
			return r.doReport(days)
		}
		return r.doAdvance(days)

	case "seed":
		return r.doReplace(SeedInventory(), "seeded")

	case "import":
		if len(a) != 1 {
			ui.Fail("usage: gildedrose import <file.yaml|file.json>")
			return 2
		}
		items, err := fixture.Read(a[0])
		if err != nil {
			ui.Fail("import: " + err.Error())
			return 1
		}
		return r.doReplace(items, fmt.Sprintf("imported %d items", len(items)))
	}

	ui.Fail("unknown subcommand: " + cmd)
	PrintHelp(r.out)
	return 2
}

func setup(opt Options) *runner {
	cfg := opt.Config
	out, errOut := opt.Out, opt.Err
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	ui.SetOutput(out, errOut)

	theme := cfg.Theme
	if opt.Theme != "" {
		theme = opt.Theme
	}
	ui.SetTheme(theme)
	ui.SetColorForcing(cfg.ForceColor, cfg.NoColor || strings.EqualFold(theme, "mono"))

	path := cfg.DataFile
	if opt.File != "" {
		path = opt.File
	}
	if path == "" {
		path = "inventory.json"
	}

	logOut := io.Discard
	if opt.Verbose || cfg.Verbose {
		logOut = errOut
	}
	return &runner{
		path: path,
		out:  out,
		log:  log.New(logOut, "[gildedrose] ", log.LstdFlags),
	}
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `gildedrose - inventory that ages one day at a time

Usage:
  gildedrose [-v] [-file path] [-theme classic|neon|mono] <subcommand> [args]

Subcommands:
  ls                               Browse items (interactive TUI, n = next day)
  show                             Print the inventory
  add <sellIn> <quality> <name...> Add an item
  rm <index>                       Remove item at 1-based index
  advance [days]                   Age every item (default 1 day, at most 3650)
  report [days]                    Print a day-by-day report without saving (default 2, at most 3650)
  seed                             Replace the inventory with the starter stock
  import <file>                    Replace the inventory from a YAML/JSON fixture

Environment:
  GILDEDROSE_DATA_FILE, GILDEDROSE_THEME, GILDEDROSE_NO_COLOR,
  GILDEDROSE_FORCE_COLOR, GILDEDROSE_VERBOSE

Examples:
  gildedrose seed
  gildedrose add 10 20 "+5 Dexterity Vest"
  gildedrose advance 3
  gildedrose report 30
`)
}

// -------------- subcommand impls ----------------

func (r *runner) load() ([]model.Item, bool) {
	items, err := jsonstore.Load(r.path)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return nil, false
	}
	r.log.Printf("loaded %d items", len(items))
	return items, true
}

func (r *runner) save(items []model.Item) bool {
	if err := jsonstore.Save(r.path, items); err != nil {
		ui.Fail("save: " + err.Error())
		return false
	}
	r.log.Printf("saved %d items", len(items))
	return true
}

func (r *runner) doBrowse() int {
	items, ok := r.load()
	if !ok {
		return 1
	}
	final, err := tui.Run(items)
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	if !final.Changed() {
		return 0
	}
	if !r.save(final.Items()) {
		return 1
	}
	ui.OK(fmt.Sprintf("saved (%d days advanced)", final.Days()))
	return 0
}

func (r *runner) doShow() int {
	items, ok := r.load()
	if !ok {
		return 1
	}
	ui.Panel(inventoryLines(items))
	return 0
}

func (r *runner) doAdd(name string, sellIn, quality int) int {
	items, ok := r.load()
	if !ok {
		return 1
	}
	it, err := model.NewItem(name, sellIn, quality)
	if err != nil {
		ui.Fail("add: " + err.Error())
		return 2
	}
	items = append(items, it)
	if !r.save(items) {
		return 1
	}
	ui.OK(fmt.Sprintf("added %s (%s)", it.Name, it.Category))
	return 0
}

func (r *runner) doRemove(userIndex int) int {
	items, ok := r.load()
	if !ok {
		return 1
	}
	items, err := removeAt(items, userIndex)
	if err != nil {
		ui.Fail(err.Error())
		fmt.Fprintln(r.out, ui.MutedStyle().Render("Hint: run `gildedrose show` to see valid indexes"))
		return 2
	}
	if !r.save(items) {
		return 1
	}
	ui.OK("removed")
	return 0
}

func (r *runner) doAdvance(days int) int {
	items, ok := r.load()
	if !ok {
		return 1
	}
	for d := 1; d <= days; d++ {
		before := make([]model.Item, len(items))
		copy(before, items)
		aging.Advance(items)
		for i := range items {
			r.log.Printf("day %d: %s (%s) sellIn %d -> %d, quality %d -> %d",
				d, items[i].Name, items[i].Category,
				before[i].SellIn, items[i].SellIn, before[i].Quality, items[i].Quality)
		}
	}
	if !r.save(items) {
		return 1
	}
	ui.OK(fmt.Sprintf("advanced %d items by %d day(s)", len(items), days))
	return 0
}

func (r *runner) doReport(days int) int {
	items, ok := r.load()
	if !ok {
		return 1
	}
	WriteReport(r.out, items, days)
	return 0
}

func (r *runner) doReplace(items []model.Item, msg string) int {
	if !r.save(items) {
		return 1
	}
	ui.OK(msg)
	return 0
}

func removeAt(items []model.Item, userIndex int) ([]model.Item, error) {
	if userIndex < 1 || userIndex > len(items) {
		return nil, fmt.Errorf("%w: have %d, got %d", model.ErrIndexOutOfRange, len(items), userIndex)
	}
	idx := userIndex - 1
	return append(items[:idx], items[idx+1:]...), nil
}

