package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	title := flag.String("title", "", "list title")
	theme := flag.String("theme", "", "classic | neon | mono")
	group := flag.Bool("group", false, "group output by pending/done")
	configPath := flag.String("config", "", "config file (default ~/.tada/config.toml)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	// Only flags given on the command line override the config.
	var ov config.Overrides
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			ov.Title = title
		case "theme":
			ov.Theme = theme
		case "group":
			ov.Group = group
		}
	})
	if *verbose {
		lvl := "debug"
		ov.LogLevel = &lvl
	}

	cfg, err := config.Load(*configPath, ov)
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		os.Exit(1)
	}
	ui.SetTheme(cfg.Theme)

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tada"})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}
	logger.Debug("config loaded", "title", cfg.Title, "theme", cfg.Theme, "group", cfg.Group)

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stderr)
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Title:  cfg.Title,
		Group:  cfg.Group,
		Logger: logger,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
