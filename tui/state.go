// ABOUTME: Viewer state container and the event handlers that mutate it
// ABOUTME: Pure logic with no terminal dependencies so it can be tested directly

package tui

import (
	"errors"
	"fmt"
	"strings"

	"nightzoo/palette"
	"nightzoo/playlist"
)

// ErrEmptyLink is returned when the link field is blank on submit
var ErrEmptyLink = errors.New("enter a valid link")

// Appearance is the dark/light mode of the UI shell
type Appearance string

// Appearance values
const (
	Dark  Appearance = "dark"
	Light Appearance = "light"
)

// Toggle returns the opposite appearance
func (a Appearance) Toggle() Appearance {
	if a == Dark {
		return Light
	}

	return Dark
}

// Viewport is the last observed terminal size in cells
type Viewport struct {
	Width  int
	Height int
}

// State is everything the viewer keeps for one session
type State struct {
	Viewport   Viewport
	EmbedPath  string
	EmbedHost  string
	Appearance Appearance
	Accent     palette.AccentColor
	AccentHex  string
}

// NewState builds the initial state. An invalid or empty accent is
// replaced by a pick drawn from the full palette.
func NewState(embedPath, embedHost string, appearance Appearance, accent palette.AccentColor, pick func([]palette.AccentColor) palette.AccentColor) State {
	if appearance != Light {
		appearance = Dark
	}

	if !accent.Valid() {
		accent = pick(palette.All())
	}

	hex, _ := palette.Hex(accent) // accent is valid here

	return State{
		EmbedPath:  embedPath,
		EmbedHost:  embedHost,
		Appearance: appearance,
		Accent:     accent,
		AccentHex:  hex,
	}
}

// Resize records a new terminal size; negative values are clamped to zero
func (s *State) Resize(width, height int) {
	s.Viewport = Viewport{Width: max(width, 0), Height: max(height, 0)}
}

// FrameSize is the embed frame's display size, half the viewport
func (s State) FrameSize() Viewport {
	return Viewport{Width: s.Viewport.Width / 2, Height: s.Viewport.Height / 2}
}

// ToggleAppearance flips between dark and light
func (s *State) ToggleAppearance() {
	s.Appearance = s.Appearance.Toggle()
}

// SelectAccent sets the accent and its hex together. Unknown tokens leave
// the state untouched.
func (s *State) SelectAccent(c palette.AccentColor) error {
	hex, err := palette.Hex(c)
	if err != nil {
		return err
	}

	s.Accent = c
	s.AccentHex = hex

	return nil
}

// Submit replaces the embed path with the one extracted from link.
// On any error the state is left unchanged.
func (s *State) Submit(link string) error {
	link = strings.TrimSpace(link)
	if link == "" {
		return ErrEmptyLink
	}

	path, err := playlist.ExtractEmbedPath(link)
	if err != nil {
		return err
	}

	if _, err := playlist.EmbedURL(s.EmbedHost, path); err != nil {
		return err
	}

	s.EmbedPath = path

	return nil
}

// EmbedURL returns the source URL of the current embed
func (s State) EmbedURL() (string, error) {
	u, err := playlist.EmbedURL(s.EmbedHost, s.EmbedPath)
	if err != nil {
		return "", fmt.Errorf("current embed: %w", err)
	}

	return u, nil
}
