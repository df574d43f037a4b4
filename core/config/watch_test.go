// File: watch_test.go
// Title: Configuration Watcher Tests
// Description: Tests for debounced reloads of file backed configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package config

import (
	"context"
	"os"
	"testing"
	"time"

	tberror "github.com/msto63/toolbox/core/error"
)

func TestWatchReloadsOnChange(t *testing.T) {
	path := writeConfig(t, "watch.toml", "length = 8\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan error, 4)
	err = cfg.WatchWithDebounce(ctx, 20*time.Millisecond, func(_ *Config, err error) {
		reloaded <- err
	})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("length = 16\n"), 0644); err != nil {
		t.Fatalf("Failed to update config: %v", err)
	}

	select {
	case err := <-reloaded:
		if err != nil {
			t.Fatalf("reload error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	if got := cfg.GetInt("length"); got != 16 {
		t.Errorf("Expected reloaded length 16, got %d", got)
	}
}

func TestWatchKeepsContentOnParseError(t *testing.T) {
	path := writeConfig(t, "broken.toml", "length = 8\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan error, 4)
	if err := cfg.WatchWithDebounce(ctx, 20*time.Millisecond, func(_ *Config, err error) {
		reloaded <- err
	}); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("length = [\n"), 0644); err != nil {
		t.Fatalf("Failed to update config: %v", err)
	}

	select {
	case err := <-reloaded:
		if !tberror.HasCode(err, tberror.CodeInvalidConfig) {
			t.Errorf("reload error = %v, want INVALID_CONFIG", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	if got := cfg.GetInt("length"); got != 8 {
		t.Errorf("Previous content should stay active, got length %d", got)
	}
}

func TestWatchRequiresFile(t *testing.T) {
	cfg, err := LoadFromString("length = 8", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	err = cfg.Watch(context.Background(), func(*Config, error) {})
	if !tberror.HasCode(err, tberror.CodeInvalidInput) {
		t.Errorf("Watch() error = %v, want INVALID_INPUT", err)
	}
}

func TestWatchRequiresHandler(t *testing.T) {
	path := writeConfig(t, "nohandler.toml", "length = 8\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	err = cfg.Watch(context.Background(), nil)
	if !tberror.HasCode(err, tberror.CodeInvalidParameter) {
		t.Errorf("Watch() error = %v, want INVALID_PARAMETER", err)
	}
}
