// ABOUTME: Theme scoped to the current appearance and accent color
// ABOUTME: Builds lipgloss styles for buttons, the link field and the embed frame

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"nightzoo/palette"
)

// Palette button geometry
const (
	buttonLabelWidth = 9                        // Longest label is 7 characters
	buttonCellWidth  = buttonLabelWidth + 2 + 1 // Border plus right margin
)

// theme holds colors for one appearance/accent combination
type theme struct {
	background lipgloss.Color
	foreground lipgloss.Color
	muted      lipgloss.Color
	accent     lipgloss.Color
}

// newTheme derives the theme from the current state
func newTheme(a Appearance, accentHex string) theme {
	t := theme{
		background: lipgloss.Color("#111113"),
		foreground: lipgloss.Color("#eeeef0"),
		muted:      lipgloss.Color("#6f6f77"),
		accent:     lipgloss.Color(accentHex),
	}

	if a == Light {
		t.background = lipgloss.Color("#fcfcfd")
		t.foreground = lipgloss.Color("#1c2024")
		t.muted = lipgloss.Color("#8b8d98")
	}

	return t
}

func (t theme) base() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.foreground).
		Background(t.background)
}

func (t theme) title() lipgloss.Style {
	return t.base().
		Bold(true).
		Foreground(t.accent)
}

func (t theme) help() lipgloss.Style {
	return t.base().Foreground(t.muted)
}

// toggleButton is the classic-variant appearance toggle
func (t theme) toggleButton() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 2).
		Foreground(t.background).
		Background(t.accent)
}

// field is the soft-variant link input box
func (t theme) field(focused bool, width int) lipgloss.Style {
	s := t.base().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.muted).
		BorderBackground(t.background).
		Padding(0, 1).
		Width(width)

	if focused {
		s = s.BorderForeground(t.accent)
	}

	return s
}

// frame is the card around the embedded playlist
func (t theme) frame(width, height int) lipgloss.Style {
	return t.base().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.accent).
		BorderBackground(t.background).
		Width(max(width-2, 1)).
		Height(max(height-2, 1)).
		MaxWidth(max(width, 3)).
		MaxHeight(max(height, 3)).
		Align(lipgloss.Center, lipgloss.Center)
}

// accentButton renders a palette entry in its own color. The selected
// entry is filled (classic), the rest are outlined; the highlighted
// entry gets a thick border.
func (t theme) accentButton(c palette.AccentColor, selected, highlighted bool) lipgloss.Style {
	hex, _ := palette.Hex(c)
	color := lipgloss.Color(hex)

	border := lipgloss.RoundedBorder()
	if highlighted {
		border = lipgloss.ThickBorder()
	}

	s := lipgloss.NewStyle().
		Border(border).
		BorderForeground(color).
		BorderBackground(t.background).
		Width(buttonLabelWidth).
		Align(lipgloss.Center).
		MarginRight(1).
		MarginBackground(t.background)

	if selected {
		return s.Bold(true).Foreground(t.background).Background(color)
	}

	return s.Foreground(color).Background(t.background)
}

// modal is the blocking warning dialog
func (t theme) modal() lipgloss.Style {
	return t.base().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.accent).
		BorderBackground(t.background).
		Padding(1, 4).
		Align(lipgloss.Center)
}
