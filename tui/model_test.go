// ABOUTME: Unit tests for TUI model behavior
// ABOUTME: Drives Update() with key, resize and reload messages

package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"nightzoo/config"
	"nightzoo/palette"
)

// createTestModel creates a model with stub dependencies for testing
func createTestModel(opened *[]string) model {
	cfg := config.DefaultConfig()

	deps := Dependencies{
		Log: zerolog.Nop(),
		OpenURL: func(url string) error {
			if opened != nil {
				*opened = append(*opened, url)
			}
			return nil
		},
		Pick: pickFirst,
	}

	return initModel(cfg, deps)
}

// send feeds one message through Update and returns the new model
func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(msg)

	next, ok := updated.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", updated)
	}

	return next, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelInitialization(t *testing.T) {
	m := createTestModel(nil)

	if m.focus != focusInput {
		t.Errorf("Expected focus on input, got %q", m.focus)
	}

	if !m.input.Focused() {
		t.Error("Expected link field to be focused")
	}

	if m.state.EmbedPath != config.DefaultEmbedPath {
		t.Errorf("Expected default embed path, got %q", m.state.EmbedPath)
	}

	if m.state.Accent != palette.Gray || m.cursor.Pos() != 0 {
		t.Errorf("Expected gray accent with cursor on it, got %s at %d", m.state.Accent, m.cursor.Pos())
	}

	if m.title != "Night Zoo" {
		t.Errorf("Expected default title, got %q", m.title)
	}
}

func TestModelPinnedAccentMovesCursor(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Accent = "Teal"

	m := initModel(cfg, Dependencies{Log: zerolog.Nop(), Pick: pickFirst})

	if m.state.Accent != palette.Teal {
		t.Errorf("Expected pinned teal, got %s", m.state.Accent)
	}

	if palette.All()[m.cursor.Pos()] != palette.Teal {
		t.Errorf("Expected cursor on teal, got index %d", m.cursor.Pos())
	}
}

func TestWindowResize(t *testing.T) {
	m := createTestModel(nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 800, Height: 600})

	frame := m.state.FrameSize()
	if frame.Width != 400 || frame.Height != 300 {
		t.Errorf("Expected frame 400x300, got %dx%d", frame.Width, frame.Height)
	}

	if m.input.Width != inputWidth(800) {
		t.Errorf("Expected input width %d, got %d", inputWidth(800), m.input.Width)
	}

	if m.cursor.Columns() != paletteColumns(800) {
		t.Errorf("Expected %d palette columns, got %d", paletteColumns(800), m.cursor.Columns())
	}
}

func TestSubmitValidLink(t *testing.T) {
	m := createTestModel(nil)
	m.input.SetValue("https://www.youtube.com/playlist?list=ABC")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state.EmbedPath != "playlist?list=ABC" {
		t.Errorf("Expected embed path playlist?list=ABC, got %q", m.state.EmbedPath)
	}

	if m.input.Value() != "" {
		t.Errorf("Expected field cleared, got %q", m.input.Value())
	}

	if m.input.Focused() || m.focus != focusPalette {
		t.Error("Expected field to lose focus after submit")
	}

	if m.warning != "" {
		t.Errorf("Expected no warning, got %q", m.warning)
	}
}

// TestSubmitBlankLink checks "" and "   " behave the same
func TestSubmitBlankLink(t *testing.T) {
	for _, value := range []string{"", "   "} {
		m := createTestModel(nil)
		m.input.SetValue(value)

		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		if m.warning != warnEmptyLink {
			t.Errorf("Submit(%q) warning = %q, want %q", value, m.warning, warnEmptyLink)
		}

		if m.state.EmbedPath != config.DefaultEmbedPath {
			t.Errorf("Submit(%q) changed embed path to %q", value, m.state.EmbedPath)
		}

		if m.input.Value() != value {
			t.Errorf("Submit(%q) changed field to %q", value, m.input.Value())
		}

		if m.focus != focusInput {
			t.Errorf("Submit(%q) moved focus to %q", value, m.focus)
		}
	}
}

func TestSubmitInvalidLinkKeepsField(t *testing.T) {
	m := createTestModel(nil)
	m.input.SetValue("https://youtu.be/abc")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.warning != warnInvalidLink {
		t.Errorf("Expected invalid link warning, got %q", m.warning)
	}

	if m.input.Value() != "https://youtu.be/abc" {
		t.Errorf("Expected field unchanged, got %q", m.input.Value())
	}

	if m.state.EmbedPath != config.DefaultEmbedPath {
		t.Errorf("Expected embed path unchanged, got %q", m.state.EmbedPath)
	}
}

// TestWarningBlocksUntilDismissed checks the dialog swallows other keys
func TestWarningBlocksUntilDismissed(t *testing.T) {
	m := createTestModel(nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.warning == "" {
		t.Fatal("Expected warning after blank submit")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.state.Appearance != Dark {
		t.Error("Appearance toggled while warning was shown")
	}

	m, _ = send(t, m, runes("x"))
	if m.input.Value() != "" {
		t.Errorf("Field edited while warning was shown: %q", m.input.Value())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.warning != "" {
		t.Errorf("Expected warning dismissed, got %q", m.warning)
	}

	if m.focus != focusInput {
		t.Errorf("Expected focus to stay on input, got %q", m.focus)
	}
}

func TestToggleAppearanceKeys(t *testing.T) {
	m := createTestModel(nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.state.Appearance != Light {
		t.Errorf("Expected light after ctrl+t, got %s", m.state.Appearance)
	}

	// Plain "t" types into the focused field
	m, _ = send(t, m, runes("t"))
	if m.state.Appearance != Light || m.input.Value() != "t" {
		t.Errorf("Expected 't' typed into field, got appearance %s value %q", m.state.Appearance, m.input.Value())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = send(t, m, runes("t"))
	if m.state.Appearance != Dark {
		t.Errorf("Expected dark after palette toggle, got %s", m.state.Appearance)
	}
}

func TestSelectTealFromPalette(t *testing.T) {
	m := createTestModel(nil)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})

	if m.focus != focusPalette {
		t.Fatalf("Expected palette focus after tab, got %q", m.focus)
	}

	for palette.All()[m.cursor.Pos()] != palette.Teal {
		before := m.cursor.Pos()
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
		if m.cursor.Pos() == before {
			t.Fatal("Cursor stopped before reaching teal")
		}
	}

	// Moving the cursor alone does not select
	if m.state.Accent != palette.Gray {
		t.Errorf("Expected accent gray before select, got %s", m.state.Accent)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state.Accent != palette.Teal || m.state.AccentHex != "#14a494" {
		t.Errorf("Expected teal #14a494, got %s %s", m.state.Accent, m.state.AccentHex)
	}
}

func TestPaletteFocusBackToInput(t *testing.T) {
	m := createTestModel(nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.focus != focusPalette || m.input.Focused() {
		t.Fatal("Expected esc to move focus to palette")
	}

	m, _ = send(t, m, runes("/"))

	if m.focus != focusInput || !m.input.Focused() {
		t.Error("Expected / to focus the link field")
	}
}

func TestOpenInBrowser(t *testing.T) {
	var opened []string

	m := createTestModel(&opened)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := send(t, m, runes("o"))

	if cmd == nil {
		t.Fatal("Expected a command to open the browser")
	}

	msg := cmd()
	m, _ = send(t, m, msg)

	want := "https://www.youtube.com/embed/videoseries?list=PLFsQleAWXsj_4yDeebiIADdH5FMayBiJo"
	if len(opened) != 1 || opened[0] != want {
		t.Errorf("Expected %q opened, got %v", want, opened)
	}

	if m.statusMsg != "Opened "+want {
		t.Errorf("Unexpected status %q", m.statusMsg)
	}
}

func TestOpenInBrowserFailure(t *testing.T) {
	m := createTestModel(nil)
	m.openURL = func(string) error { return errors.New("no display") }

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := send(t, m, runes("o"))
	m, _ = send(t, m, cmd())

	if m.statusMsg != "Could not open browser: no display" {
		t.Errorf("Unexpected status %q", m.statusMsg)
	}
}

// TestConfigReloadKeepsSession checks reloads only touch display settings
func TestConfigReloadKeepsSession(t *testing.T) {
	m := createTestModel(nil)
	m.input.SetValue("https://www.youtube.com/playlist?list=ABC")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	cfg := config.DefaultConfig()
	cfg.Title = "Day Zoo"
	cfg.EmbedHost = "www.youtube-nocookie.com"
	cfg.DefaultEmbedPath = "videoseries?list=OTHER"
	cfg.Appearance = config.AppearanceLight

	m, cmd := send(t, m, configReloadedMsg{cfg: cfg})

	if cmd != nil {
		t.Error("Expected no wait command without a watcher")
	}

	if m.title != "Day Zoo" || m.state.EmbedHost != "www.youtube-nocookie.com" {
		t.Errorf("Expected reloaded title and host, got %q %q", m.title, m.state.EmbedHost)
	}

	if m.state.EmbedPath != "playlist?list=ABC" || m.state.Appearance != Dark {
		t.Errorf("Session state changed on reload: %+v", m.state)
	}
}

func TestConfigReloadError(t *testing.T) {
	m := createTestModel(nil)

	m, _ = send(t, m, configReloadedMsg{err: errors.New("bad toml")})

	if m.title != "Night Zoo" {
		t.Errorf("Expected title unchanged, got %q", m.title)
	}

	if m.statusMsg != "Config reload failed: bad toml" {
		t.Errorf("Unexpected status %q", m.statusMsg)
	}
}

func TestQuitKeys(t *testing.T) {
	m := createTestModel(nil)

	// "q" is just text while the field is focused
	m, _ = send(t, m, runes("q"))
	if m.quitting {
		t.Fatal("q in the link field should not quit")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := send(t, m, runes("q"))

	if !m.quitting || cmd == nil {
		t.Error("Expected q on the palette to quit")
	}

	m = createTestModel(nil)
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting || cmd == nil {
		t.Error("Expected ctrl+c to quit")
	}
}
