// ABOUTME: Shared setup code for all modes (CLI, TUI)
// ABOUTME: Provides debug logger creation and the browser hand-off

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/browser"
	"github.com/rs/zerolog"
)

const debugLogFile = "nightzoo-debug.log"

func init() {
	// The browser launcher must not write over the TUI
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// SetupLogger returns a JSON debug logger writing to filename when debug
// is set, and a no-op logger otherwise. The returned func closes the file.
func SetupLogger(debug bool, filename string) (zerolog.Logger, func(), error) {
	if !debug {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.Create(filename)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("failed to create debug log file: %w", err)
	}

	if isTTY(os.Stdout) {
		fmt.Printf("Debug logging enabled: %s\n", filename)
	}

	logger := newLogger(f, zerolog.DebugLevel)

	return logger, func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close debug log: %v\n", err)
		}
	}, nil
}

// newLogger builds the timestamped logger used by every component
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// OpenURL opens url in the system browser
func OpenURL(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}

// isTTY checks if the given file is a terminal
func isTTY(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}

	return (stat.Mode() & os.ModeCharDevice) != 0
}
