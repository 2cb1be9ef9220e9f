package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/gildedrose/internal/cli"
	"github.com/idilsaglam/gildedrose/internal/config"
)

func main() {
	// Root flags (apply to every subcommand)
	verbose := flag.Bool("v", false, "log every step to stderr")
	file := flag.String("file", "", "inventory file (default $GILDEDROSE_DATA_FILE or inventory.json)")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{
		Config:  cfg,
		File:    *file,
		Theme:   *theme,
		Verbose: *verbose,
	})
	os.Exit(code)
}
