// File: config.go
// Title: Logger Construction from Configuration
// Description: Builds a Logger from a loaded configuration document. Reads the
//              log.level, log.format and log.name keys.
// Author: msto63
// Version: v0.1.1
// Created: 2025-03-02
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation
// - 2025-03-09 v0.1.1: Parse failures are coded toolbox errors

package log

import (
	"io"

	"github.com/msto63/toolbox/core/config"
)

// NewFromConfig creates a logger from cfg writing to output. Missing keys fall
// back to the defaults of New. An invalid level or format is reported as an
// INVALID_FORMAT error, returned together with a logger using the defaults.
func NewFromConfig(cfg *config.Config, output io.Writer) (*Logger, error) {
	lc := Config{
		Level:  DefaultLevel(),
		Format: FormatJSON,
		Output: output,
	}
	if cfg == nil {
		return NewWithConfig(lc), nil
	}

	var firstErr error
	if raw := cfg.GetString("log.level"); raw != "" {
		level, err := ParseLevel(raw)
		if err != nil {
			firstErr = err
		} else {
			lc.Level = level
		}
	}
	if raw := cfg.GetString("log.format"); raw != "" {
		format, err := ParseFormat(raw)
		if err != nil && firstErr == nil {
			firstErr = err
		} else if err == nil {
			lc.Format = format
		}
	}
	lc.Name = cfg.GetString("log.name")

	return NewWithConfig(lc), firstErr
}
