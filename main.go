// ABOUTME: Entry point for nightzoo, a terminal playlist viewer
// ABOUTME: Handles command-line parsing, config loading and routing to CLI or TUI modes

// Package main provides the entry point for nightzoo.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"nightzoo/config"
	"nightzoo/palette"
	"nightzoo/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file (default: ./nightzoo.toml or ~/.config/nightzoo/config.toml)")
	accent := flag.String("accent", "", "accent color to start with (default: random)")
	light := flag.Bool("light", false, "start in light appearance")
	debug := flag.Bool("debug", false, "enable debug logging to nightzoo-debug.log")
	embedLink := flag.String("embed", "", "print iframe markup for this playlist link and exit")
	width := flag.Int("width", 1280, "host width used with -embed; the frame is half of it")
	height := flag.Int("height", 720, "host height used with -embed; the frame is half of it")
	writeConfig := flag.Bool("write-config", false, "write the effective config file and exit")
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Println("Usage: nightzoo [flags]")
		fmt.Println("Example: nightzoo -accent teal")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	logger, closeLog, err := SetupLogger(*debug, debugLogFile)
	if err != nil {
		log.Printf("Failed to setup debug log: %v", err)

		return 1
	}
	defer closeLog()

	path := *configPath
	if path == "" {
		path = config.GetConfigPath()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		// Defaults are returned alongside the error
		logger.Warn().Err(err).Str("path", path).Msg("using default config")
	}

	cfg, err = applyFlags(cfg, *accent, *light)
	if err != nil {
		log.Printf("Invalid flag: %v", err)

		return 1
	}

	if *writeConfig {
		if err := config.SaveConfig(path, cfg); err != nil {
			log.Printf("Failed to write config: %v", err)

			return 1
		}

		fmt.Printf("Wrote config to: %s\n", path)

		return 0
	}

	if *embedLink != "" {
		if err := RunEmbed(os.Stdout, cfg, *embedLink, *width, *height); err != nil {
			log.Printf("Embed error: %v", err)

			return 1
		}

		return 0
	}

	deps := tui.Dependencies{
		Log:     logger,
		OpenURL: OpenURL,
	}

	watcher, err := config.NewWatcher(path, logger)
	if err != nil {
		logger.Debug().Err(err).Msg("config live reload disabled")
	} else {
		defer func() {
			if err := watcher.Close(); err != nil {
				logger.Warn().Err(err).Msg("failed to close config watcher")
			}
		}()

		deps.Watcher = watcher
	}

	if err := tui.Run(cfg, deps); err != nil {
		log.Printf("TUI error: %v", err)

		return 1
	}

	return 0
}

// applyFlags overrides config values given on the command line
func applyFlags(cfg config.Config, accent string, light bool) (config.Config, error) {
	if accent != "" {
		c, err := palette.Parse(accent)
		if err != nil {
			return cfg, err
		}

		cfg.Accent = c.String()
	}

	if light {
		cfg.Appearance = config.AppearanceLight
	}

	return cfg, nil
}
