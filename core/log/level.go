// File: level.go
// Title: Log Level Definitions
// Description: Log levels, their string forms and parsing from configuration.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-09
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-03-02 v0.2.0: Level colors moved to the console formatter styles
// - 2025-03-09 v0.3.0: Name table, parse failures as INVALID_FORMAT errors

package log

import (
	"strings"

	"github.com/msto63/toolbox/core/errors"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelFatal represents critical errors that cause program termination
	LevelFatal

	// LevelAudit is always logged regardless of the minimum level
	LevelAudit

	// LevelOff disables all output except audit entries
	LevelOff
)

// levelNames is indexed by Level. Aliases are accepted by ParseLevel in
// addition to the long name and the lowercased short tag.
var levelNames = [...]struct {
	long    string
	short   string
	aliases []string
}{
	LevelTrace: {"trace", "TRC", nil},
	LevelDebug: {"debug", "DBG", nil},
	LevelInfo:  {"info", "INF", []string{"information"}},
	LevelWarn:  {"warn", "WRN", []string{"warning"}},
	LevelError: {"error", "ERR", nil},
	LevelFatal: {"fatal", "FTL", nil},
	LevelAudit: {"audit", "AUD", nil},
	LevelOff:   {"off", "OFF", []string{"none", "silent"}},
}

func (l Level) known() bool {
	return l >= 0 && int(l) < len(levelNames)
}

// String returns the lowercase name used in structured output
func (l Level) String() string {
	if !l.known() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three letter tag used by the text formatters
func (l Level) ShortString() string {
	if !l.known() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel && l != LevelOff
}

// ParseLevel parses a level name, its short tag or an alias, ignoring case
// and surrounding space. An unknown name yields LevelInfo and an
// INVALID_FORMAT error.
func ParseLevel(level string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	for l, n := range levelNames {
		if name == n.long || name == strings.ToLower(n.short) {
			return Level(l), nil
		}
		for _, alias := range n.aliases {
			if name == alias {
				return Level(l), nil
			}
		}
	}
	return DefaultLevel(), errors.InvalidFormat(errors.ModuleLog, level, "a log level name")
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
