// ABOUTME: CLI mode that prints embed markup without starting the TUI
// ABOUTME: Runs a link through the same parser and frame builder as the viewer

package main

import (
	"fmt"
	"io"
	"strings"

	"nightzoo/config"
	"nightzoo/playlist"
)

// RunEmbed writes the iframe markup for link to w. The frame is sized to
// half of hostWidth x hostHeight.
func RunEmbed(w io.Writer, cfg config.Config, link string, hostWidth, hostHeight int) error {
	link = strings.TrimSpace(link)
	if link == "" {
		return fmt.Errorf("%w: empty link", playlist.ErrInvalidLink)
	}

	if hostWidth < 0 || hostHeight < 0 {
		return fmt.Errorf("host size must not be negative, got %dx%d", hostWidth, hostHeight)
	}

	path, err := playlist.ExtractEmbedPath(link)
	if err != nil {
		return err
	}

	frame, err := playlist.NewFrame(cfg.EmbedHost, path, hostWidth, hostHeight)
	if err != nil {
		return err
	}

	html, err := frame.HTML()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, html); err != nil {
		return fmt.Errorf("failed to write markup: %w", err)
	}

	return nil
}
