// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management with support
//              for TOML and YAML formats, environment variable overrides,
//              struct decoding and hot reloading.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-02 v0.2.0: fsnotify based watcher, Decode

/*
Package config provides configuration management for toolbox applications.

Key Features:
  - Multi-format support (TOML, YAML) with detection by file extension
  - Environment variable overrides with an optional prefix
  - Typed access with defaults and decoding into tagged structs
  - Debounced hot reloading through fsnotify
  - Thread-safe concurrent access

# Basic Configuration Loading

	cfg, err := config.Load("toolbox.toml")
	if err != nil {
		return err
	}

	level := cfg.GetString("log.level", "info")
	length := cfg.GetInt("policies.password.length", 16)

# Environment Variables

With LoadOptions.EnvPrefix set to "TOOLBOX" the key policies.password.length
is overridden by TOOLBOX_POLICIES_PASSWORD_LENGTH. Values that fail to parse
as the requested type are ignored.

# Decoding

Decode hands the raw document to the toml or yaml decoder:

	var doc struct {
		Policies map[string]stringx.Policy `toml:"policies" yaml:"policies"`
	}
	if err := cfg.Decode(&doc); err != nil {
		return err
	}

# Hot Reloading

	err := cfg.Watch(ctx, func(cfg *config.Config, err error) {
		if err != nil {
			logger.LogError(err)
			return
		}
		// re-read values
	})

The parent directory is watched so atomic replacements by editors are seen.
A file that fails to parse leaves the previous content active.
*/
package config
