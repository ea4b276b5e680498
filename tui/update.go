// ABOUTME: Event handling and state updates for the TUI
// ABOUTME: Implements the Bubble Tea Update() function and message handlers

package tui

import (
	"errors"
	"runtime/debug"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"nightzoo/palette"
	"nightzoo/playlist"
)

// Warning texts shown in the blocking dialog
const (
	warnEmptyLink   = "Enter a valid link"
	warnInvalidLink = "That link can't be embedded.\nPaste a link like https://www.youtube.com/playlist?list=…"
)

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error().Interface("panic", r).Str("stack", string(debug.Stack())).Msg("update panic")
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil

	case configReloadedMsg:
		m.handleConfigReload(msg)
		return m, waitForConfigChange(m.watcher)

	case browserOpenedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("url", msg.url).Msg("failed to open browser")
			m.setStatus("Could not open browser: " + msg.err.Error())
		} else {
			m.setStatus("Opened " + msg.url)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other textinput internals
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// handleResize records the terminal size and reflows dependent widgets
func (m *model) handleResize(width, height int) {
	m.state.Resize(width, height)
	m.input.Width = inputWidth(m.state.Viewport.Width)
	m.cursor.SetColumns(paletteColumns(m.state.Viewport.Width))

	frame := m.state.FrameSize()
	m.log.Debug().
		Int("width", m.state.Viewport.Width).
		Int("height", m.state.Viewport.Height).
		Int("frame_width", frame.Width).
		Int("frame_height", frame.Height).
		Msg("resized")
}

// handleConfigReload applies display settings from a reloaded config
// Session state (embed path, appearance, accent) is kept.
func (m *model) handleConfigReload(msg configReloadedMsg) {
	if msg.err != nil {
		m.log.Warn().Err(msg.err).Msg("config reload failed")
		m.setStatus("Config reload failed: " + msg.err.Error())
		return
	}

	m.title = msg.cfg.Title
	m.state.EmbedHost = msg.cfg.EmbedHost
	m.log.Info().Str("title", m.title).Str("embed_host", m.state.EmbedHost).Msg("config reloaded")
	m.setStatus("Config reloaded")
}

// handleKey routes a key press to the warning, the link field or the palette
func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m.quit()
	}

	// The warning blocks everything until dismissed
	if m.warning != "" {
		if key.Matches(msg, keys.Dismiss) {
			m.warning = ""
		}
		return m, nil
	}

	if key.Matches(msg, keys.Toggle) {
		m.toggleAppearance()
		return m, nil
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}

	return m.handlePaletteKey(msg)
}

// handleInputKey handles keys while the link field has focus
func (m model) handleInputKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		m.submitLink()
		return m, nil

	case key.Matches(msg, keys.Blur):
		m.blurInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// handlePaletteKey handles keys while the palette has focus
func (m model) handlePaletteKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.PaletteQuit):
		return m.quit()

	case key.Matches(msg, keys.Focus):
		m.focus = focusInput
		return m, m.input.Focus()

	case key.Matches(msg, keys.PaletteToggle):
		m.toggleAppearance()

	case key.Matches(msg, keys.Left):
		m.cursor.Left()

	case key.Matches(msg, keys.Right):
		m.cursor.Right()

	case key.Matches(msg, keys.Up):
		m.cursor.Up()

	case key.Matches(msg, keys.Down):
		m.cursor.Down()

	case key.Matches(msg, keys.Select):
		m.selectAccent(palette.All()[m.cursor.Pos()])

	case key.Matches(msg, keys.Open):
		url, err := m.state.EmbedURL()
		if err != nil {
			m.log.Warn().Err(err).Msg("current embed path is not embeddable")
			m.setStatus("Current playlist can't be opened")
			return m, nil
		}
		return m, openInBrowser(m.openURL, url)
	}

	return m, nil
}

// submitLink runs the link field content through the input handler.
// On success the field is cleared and loses focus; on failure a warning is
// raised and the field keeps its content for correction.
func (m *model) submitLink() {
	raw := m.input.Value()

	if err := m.state.Submit(raw); err != nil {
		m.warning = warningFor(err)
		m.log.Debug().Err(err).Str("link", raw).Msg("link rejected")
		return
	}

	m.log.Info().Str("embed_path", m.state.EmbedPath).Msg("playlist loaded")
	m.input.Reset()
	m.blurInput()
}

// blurInput moves focus from the link field to the palette
func (m *model) blurInput() {
	m.input.Blur()
	m.focus = focusPalette
}

// toggleAppearance flips dark/light
func (m *model) toggleAppearance() {
	m.state.ToggleAppearance()
	m.log.Debug().Str("appearance", string(m.state.Appearance)).Msg("appearance toggled")
}

// selectAccent applies a palette entry
func (m *model) selectAccent(c palette.AccentColor) {
	if err := m.state.SelectAccent(c); err != nil {
		m.log.Error().Err(err).Msg("palette entry outside the accent set")
		return
	}

	m.log.Debug().Str("accent", c.String()).Str("hex", m.state.AccentHex).Msg("accent selected")
}

// quit stops the program
func (m model) quit() (model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// warningFor maps a submit error to the dialog text
func warningFor(err error) string {
	if errors.Is(err, playlist.ErrInvalidLink) {
		return warnInvalidLink
	}

	return warnEmptyLink
}
