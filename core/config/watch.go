// File: watch.go
// Title: Configuration File Watcher
// Description: Reloads a file backed configuration when the file changes on
//              disk. Uses fsnotify on the parent directory so editors that
//              replace files atomically are picked up as well.
// Author: msto63
// Version: v0.1.1
// Created: 2025-03-02
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with debounced reload
// - 2025-03-09 v0.1.1: Reload shares the read path of LoadWithOptions

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	tberror "github.com/msto63/toolbox/core/error"
)

// DefaultDebounce is the quiet period after the last file event before a
// reload is attempted.
const DefaultDebounce = 100 * time.Millisecond

// ReloadHandler is called after every reload attempt. err is nil when the new
// content was parsed and applied; on error the previous content stays active.
type ReloadHandler func(cfg *Config, err error)

// Watch starts watching the configuration file and calls handler after each
// debounced change. It returns once the watcher is running; the watcher stops
// when ctx is cancelled.
func (c *Config) Watch(ctx context.Context, handler ReloadHandler) error {
	return c.WatchWithDebounce(ctx, DefaultDebounce, handler)
}

// WatchWithDebounce is Watch with an explicit debounce period
func (c *Config) WatchWithDebounce(ctx context.Context, debounce time.Duration, handler ReloadHandler) error {
	path := c.FilePath()
	if path == "" {
		return failure("Watch", tberror.CodeInvalidInput, nil, "configuration was not loaded from a file").Build()
	}
	if handler == nil {
		return failure("Watch", tberror.CodeInvalidParameter, nil, "reload handler cannot be nil").Build()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return failure("Watch", tberror.CodeInternal, err, "failed to create file watcher").Build()
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return failure("Watch", tberror.CodeConfigError, err, "failed to watch config directory").
			Detail("filePath", path).
			Build()
	}

	go c.watchLoop(ctx, watcher, path, debounce, handler)
	return nil
}

func (c *Config) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, debounce time.Duration, handler ReloadHandler) {
	defer watcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			handler(c, c.reload())

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			handler(c, failure("Watch", tberror.CodeConfigError, err, "file watcher error").Build())
		}
	}
}

// reload re-reads the file and swaps the content in place. A parse failure
// leaves the current content untouched.
func (c *Config) reload() error {
	c.mu.RLock()
	path, format := c.filePath, c.format
	c.mu.RUnlock()

	data, content, err := readDocument("reload", path, format)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.data = mergeDefaults(data, c.defaults)
	c.raw = content
	c.mu.Unlock()
	return nil
}
