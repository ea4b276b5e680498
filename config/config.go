// ABOUTME: Configuration management for the playlist viewer
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

// Package config loads and watches the viewer's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"nightzoo/palette"
	"nightzoo/playlist"
)

// Appearance values accepted in the config file
const (
	AppearanceDark  = "dark"
	AppearanceLight = "light"
)

// DefaultEmbedPath is shown until the user submits a link
const DefaultEmbedPath = "videoseries?list=PLFsQleAWXsj_4yDeebiIADdH5FMayBiJo"

// ErrInvalidConfig is returned when a loaded value is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the viewer settings read from disk
type Config struct {
	Title            string `toml:"title"`
	EmbedHost        string `toml:"embed_host"`
	DefaultEmbedPath string `toml:"default_embed_path"`
	Appearance       string `toml:"appearance"` // "dark" or "light"
	Accent           string `toml:"accent"`     // empty picks one at random
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		Title:            "Night Zoo",
		EmbedHost:        playlist.DefaultHost,
		DefaultEmbedPath: DefaultEmbedPath,
		Appearance:       AppearanceDark,
		Accent:           "",
	}
}

// GetConfigPath returns the default config file path
// First tries current directory, then falls back to ~/.config/nightzoo/config.toml
func GetConfigPath() string {
	if _, err := os.Stat("./nightzoo.toml"); err == nil {
		return "./nightzoo.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./nightzoo.toml"
	}

	return filepath.Join(home, ".config", "nightzoo", "config.toml")
}

// LoadConfig loads configuration from a TOML file
// If the file doesn't exist, returns default config. On any error the
// defaults are returned alongside the error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg = withDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a TOML file
func SaveConfig(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks the enumerated fields
func (c Config) Validate() error {
	switch c.Appearance {
	case AppearanceDark, AppearanceLight:
	default:
		return fmt.Errorf("%w: appearance must be %q or %q, got %q", ErrInvalidConfig, AppearanceDark, AppearanceLight, c.Appearance)
	}

	if c.Accent != "" {
		if _, err := palette.Parse(c.Accent); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if strings.ContainsAny(c.EmbedHost, "/?#@ ") {
		return fmt.Errorf("%w: embed_host must be a bare host name, got %q", ErrInvalidConfig, c.EmbedHost)
	}

	return nil
}

// withDefaults fills blank fields from DefaultConfig
func withDefaults(c Config) Config {
	d := DefaultConfig()

	if c.Title == "" {
		c.Title = d.Title
	}

	if c.EmbedHost == "" {
		c.EmbedHost = d.EmbedHost
	}

	if c.DefaultEmbedPath == "" {
		c.DefaultEmbedPath = d.DefaultEmbedPath
	}

	c.Appearance = strings.ToLower(strings.TrimSpace(c.Appearance))
	if c.Appearance == "" {
		c.Appearance = d.Appearance
	}

	return c
}
