// File: entry.go
// Title: Log Entry and Field Types
// Description: Entry carries one log record through the formatters. Fields are
//              the structured key/value pairs attached to an entry.
// Author: msto63
// Version: v0.1.2
// Created: 2025-01-24
// Modified: 2025-03-09
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-03-02 v0.1.1: Dropped request/user IDs, kept correlation ID
// - 2025-03-09 v0.1.2: Field constructors removed, Merge takes any number of sets

package log

import (
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp     time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string
	Fields        Fields
	Error         error
	Duration      time.Duration
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Merge returns a new set holding f and then every set in others. Later
// sets win on conflicting keys. The result is never nil.
func (f Fields) Merge(others ...Fields) Fields {
	size := len(f)
	for _, o := range others {
		size += len(o)
	}
	result := make(Fields, size)
	for k, v := range f {
		result[k] = v
	}
	for _, o := range others {
		for k, v := range o {
			result[k] = v
		}
	}
	return result
}

// NewEntry creates a new log entry with the given level and message
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
