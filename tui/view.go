// ABOUTME: Rendering and display functions for the TUI
// ABOUTME: Implements the Bubble Tea View() function and all render helpers

package tui

import (
	"runtime/debug"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"nightzoo/palette"
)

// Icons drawn around the title and on the toggle
const (
	rocketIcon = "🚀"
	moonIcon   = "☾"
	sunIcon    = "☀"
)

// View renders the TUI
func (m model) View() string {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error().Interface("panic", r).Str("stack", string(debug.Stack())).Msg("view panic")
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	if m.quitting {
		return ""
	}

	if m.state.Viewport.Width == 0 || m.state.Viewport.Height == 0 {
		return "Loading..."
	}

	t := newTheme(m.state.Appearance, m.state.AccentHex)
	width, height := m.state.Viewport.Width, m.state.Viewport.Height
	bg := lipgloss.WithWhitespaceBackground(t.background)

	if m.warning != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.renderWarning(t), bg)
	}

	toggle := lipgloss.PlaceHorizontal(width, lipgloss.Right, m.renderToggle(t), bg)

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		m.renderHeader(t),
		m.renderInput(t),
		"",
		m.renderFrame(t),
		"",
		m.renderPalette(t),
	)

	footer := m.renderFooter(t, width)
	bodyHeight := max(height-lipgloss.Height(toggle)-lipgloss.Height(footer), 1)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		toggle,
		lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, body, bg),
		footer,
	)
}

// renderToggle renders the appearance toggle for the current mode
func (m model) renderToggle(t theme) string {
	icon := moonIcon
	if m.state.Appearance == Light {
		icon = sunIcon
	}

	return t.toggleButton().Render(icon)
}

// renderHeader renders the accent-colored title between two rockets
func (m model) renderHeader(t theme) string {
	rocket := t.base().Foreground(lipgloss.Color(m.state.AccentHex)).Render(rocketIcon)
	space := t.base().Render(" ")

	return lipgloss.JoinHorizontal(lipgloss.Center, rocket, space, t.title().Render(m.title), space, rocket)
}

// renderInput renders the link field
// The field view is one cell wider than input.Width for the trailing cursor.
func (m model) renderInput(t theme) string {
	return t.field(m.focus == focusInput, m.input.Width+3).Render(m.input.View())
}

// renderFrame renders the embed card at half the terminal size
func (m model) renderFrame(t theme) string {
	size := m.state.FrameSize()

	var lines []string

	lines = append(lines, t.title().Render("▶ Playlist"))

	if url, err := m.state.EmbedURL(); err == nil {
		lines = append(lines, t.base().Render(url))
	} else {
		lines = append(lines, t.help().Render(m.state.EmbedPath))
	}

	lines = append(lines, "", t.help().Render("o: open in browser"))

	return t.frame(size.Width, size.Height).Render(strings.Join(lines, "\n"))
}

// renderPalette renders the accent buttons wrapped to the palette width
func (m model) renderPalette(t theme) string {
	all := palette.All()
	cols := m.cursor.Columns()
	paletteFocused := m.focus == focusPalette

	rows := make([]string, 0, m.cursor.Rows())

	for start := 0; start < len(all); start += cols {
		end := min(start+cols, len(all))
		buttons := make([]string, 0, end-start)

		for i := start; i < end; i++ {
			c := all[i]
			highlighted := paletteFocused && i == m.cursor.Pos()
			buttons = append(buttons, t.accentButton(c, c == m.state.Accent, highlighted).Render(c.Label()))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}

	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// renderWarning renders the blocking warning dialog
func (m model) renderWarning(t theme) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		t.title().Render("Warning!"),
		"",
		t.base().Render(m.warning),
		"",
		t.toggleButton().Render("OK"),
	)

	return t.modal().Render(content)
}

// renderFooter renders the status message or the help line
func (m model) renderFooter(t theme, width int) string {
	if m.statusMsg != "" && time.Since(m.statusMsgAge) < statusMessageDuration {
		return t.help().Width(width).Render(" " + m.statusMsg)
	}

	return t.help().Width(width).Render(" " + m.helpText())
}

// helpText lists the bindings active for the current focus
func (m model) helpText() string {
	var bindings []key.Help

	if m.focus == focusInput {
		bindings = []key.Help{keys.Submit.Help(), keys.Blur.Help(), keys.Toggle.Help(), keys.Quit.Help()}
	} else {
		bindings = []key.Help{
			{Key: "←/→/↑/↓", Desc: "choose color"},
			keys.Select.Help(), keys.PaletteToggle.Help(), keys.Open.Help(), keys.Focus.Help(), keys.PaletteQuit.Help(),
		}
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Key+": "+b.Desc)
	}

	return strings.Join(parts, " | ")
}
