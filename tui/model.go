// ABOUTME: Terminal UI model and core state management
// ABOUTME: Bubble Tea model for the playlist viewer with injected dependencies

// Package tui provides the interactive playlist viewer.
package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"nightzoo/config"
	"nightzoo/palette"
)

// errNoBrowser is reported when no opener was injected
var errNoBrowser = errors.New("no browser opener configured")

// Focus targets
const (
	focusInput   = "input"
	focusPalette = "palette"
)

// Layout constants for UI dimensions
const (
	inputWidthPercent   = 60 // Link field width as a share of the terminal
	paletteWidthPercent = 50 // Palette width as a share of the terminal
	fieldChrome         = 5  // Border, padding and cursor cell around the link field

	statusMessageDuration = 5 * time.Second // How long to show transient status messages
)

// Dependencies holds all external dependencies for the TUI
type Dependencies struct {
	Log     zerolog.Logger
	OpenURL func(string) error                              // Hands the embed URL to the browser
	Watcher *config.Watcher                                 // Optional config live reload
	Pick    func([]palette.AccentColor) palette.AccentColor // Initial accent picker, random when nil
}

// configReloadedMsg carries a config reloaded from disk
type configReloadedMsg struct {
	cfg config.Config
	err error
}

// browserOpenedMsg reports the result of opening the embed URL
type browserOpenedMsg struct {
	url string
	err error
}

// model holds the TUI state
type model struct {
	// Dependencies
	log     zerolog.Logger
	openURL func(string) error
	watcher *config.Watcher

	// Session state
	state State
	title string

	// UI state
	input        textinput.Model
	focus        string      // "input" or "palette"
	cursor       *GridCursor // Highlighted palette entry
	warning      string      // Blocking warning text, empty when hidden
	statusMsg    string      // Temporary status message (e.g., "Config reloaded")
	statusMsgAge time.Time   // When status message was set
	quitting     bool
}

// Key bindings
type keyMap struct {
	Submit        key.Binding
	Toggle        key.Binding
	PaletteToggle key.Binding // Palette-only toggle without a modifier
	Left          key.Binding
	Right         key.Binding
	Up            key.Binding
	Down          key.Binding
	Select        key.Binding
	Focus         key.Binding
	Blur          key.Binding
	Open          key.Binding
	Dismiss       key.Binding
	Quit          key.Binding
	PaletteQuit   key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "load link"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "dark/light"),
	),
	PaletteToggle: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "dark/light"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous color"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next color"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "row up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "row down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "pick color"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab", "/", "i"),
		key.WithHelp("tab", "edit link"),
	),
	Blur: key.NewBinding(
		key.WithKeys("tab", "esc"),
		key.WithHelp("tab/esc", "palette"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open in browser"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("enter", "esc", " "),
		key.WithHelp("enter", "dismiss"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	PaletteQuit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// Run starts the TUI with injected dependencies
func Run(cfg config.Config, deps Dependencies) error {
	m := initModel(cfg, deps)

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// initModel creates the initial model with injected dependencies
func initModel(cfg config.Config, deps Dependencies) model {
	pick := deps.Pick
	if pick == nil {
		pick = func(all []palette.AccentColor) palette.AccentColor {
			return palette.PickRandom(nil, all)
		}
	}

	// Empty or unknown accent falls through to a random pick
	accent, _ := palette.Parse(cfg.Accent)

	state := NewState(cfg.DefaultEmbedPath, cfg.EmbedHost, Appearance(cfg.Appearance), accent, pick)

	input := textinput.New()
	input.Placeholder = "Enter a playlist URL…"
	input.Prompt = ""
	input.CharLimit = 2048
	input.Focus()

	pos := 0
	for i, c := range palette.All() {
		if c == state.Accent {
			pos = i
		}
	}

	deps.Log.Debug().
		Str("accent", state.Accent.String()).
		Str("appearance", string(state.Appearance)).
		Str("embed_path", state.EmbedPath).
		Msg("viewer mounted")

	return model{
		log:     deps.Log,
		openURL: deps.OpenURL,
		watcher: deps.Watcher,

		state: state,
		title: cfg.Title,

		input:  input,
		focus:  focusInput,
		cursor: NewGridCursor(1, palette.Len(), pos),
	}
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		waitForConfigChange(m.watcher),
	)
}

// waitForConfigChange returns a command that waits for the next config reload
func waitForConfigChange(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		cfg, err := w.Wait()
		if errors.Is(err, config.ErrWatcherClosed) {
			return nil
		}

		return configReloadedMsg{cfg: cfg, err: err}
	}
}

// openInBrowser returns a command that opens url with the injected opener
func openInBrowser(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		if open == nil {
			return browserOpenedMsg{url: url, err: errNoBrowser}
		}

		return browserOpenedMsg{url: url, err: open(url)}
	}
}

// setStatus shows a transient status line
func (m *model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusMsgAge = time.Now()
}

// paletteColumns is how many palette buttons fit per row at width
func paletteColumns(width int) int {
	return max(width*paletteWidthPercent/100/buttonCellWidth, 1)
}

// inputWidth is the text width of the link field at width
func inputWidth(width int) int {
	return max(width*inputWidthPercent/100-fieldChrome, 10)
}
