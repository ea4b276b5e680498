// ABOUTME: Live reload of the config file using fsnotify
// ABOUTME: Watches the containing directory so editor atomic saves are seen

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// ErrWatcherClosed is returned by Wait after Close
var ErrWatcherClosed = errors.New("config watcher closed")

// reloadDebounce lets atomic writes finish before the file is read
const reloadDebounce = 100 * time.Millisecond

// Watcher reports changes to a single config file
type Watcher struct {
	fs   *fsnotify.Watcher
	path string
	log  zerolog.Logger
}

// NewWatcher starts watching the directory holding path
func NewWatcher(path string, log zerolog.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	if err := fs.Add(filepath.Dir(abs)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	return &Watcher{
		fs:   fs,
		path: abs,
		log:  log.With().Str("component", "config-watcher").Str("path", abs).Logger(),
	}, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Wait blocks until the config file is written or created, then reloads it.
// Returns ErrWatcherClosed once Close has been called.
func (w *Watcher) Wait() (Config, error) {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return Config{}, ErrWatcherClosed
			}

			if filepath.Clean(event.Name) != w.path {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			time.Sleep(reloadDebounce)
			w.log.Debug().Str("op", event.Op.String()).Msg("config changed")

			return LoadConfig(w.path)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return Config{}, ErrWatcherClosed
			}
			// Keep watching after transient errors
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

// Close stops the watcher
func (w *Watcher) Close() error {
	return w.fs.Close()
}
