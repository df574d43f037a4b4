// File: format_test.go
// Title: Log Formatter Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-09
//
// Change History:
// - 2025-01-24 v0.1.0: Initial formatter tests
// - 2025-03-02 v0.2.0: Console colors and sorted fields
// - 2025-03-09 v0.3.0: Optional parts, coded parse errors, format names

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	tberror "github.com/msto63/toolbox/core/error"
)

func testEntry() *Entry {
	entry := NewEntry(LevelInfo, "policy loaded")
	entry.Timestamp = time.Date(2025, 3, 2, 10, 30, 0, 0, time.UTC)
	entry.Logger = "registry"
	entry.Fields = Fields{"zeta": 1, "alpha": "a"}
	return entry
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{" console ", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormatError(t *testing.T) {
	_, err := ParseFormat("xml")
	if !tberror.HasCode(err, tberror.CodeInvalidFormat) {
		t.Errorf("ParseFormat(\"xml\") error = %v, want INVALID_FORMAT", err)
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "json"},
		{FormatText, "text"},
		{FormatConsole, "console"},
		{FormatLogfmt, "logfmt"},
		{Format(-1), "unknown"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %s, want %s", tt.format, got, tt.want)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	entry := testEntry()
	entry.Error = errors.New("boom")
	entry.Duration = 1500 * time.Microsecond

	out, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	want := map[string]interface{}{
		"timestamp":   "2025-03-02T10:30:00Z",
		"level":       "info",
		"message":     "policy loaded",
		"logger":      "registry",
		"alpha":       "a",
		"zeta":        float64(1),
		"error":       "boom",
		"duration_ms": 1.5,
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s = %v, want %v", k, data[k], v)
		}
	}
}

func TestJSONFormatterErrorField(t *testing.T) {
	entry := testEntry()
	entry.Fields["cause"] = errors.New("inner")

	out, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(out), `"cause":"inner"`) {
		t.Errorf("error field should be rendered as string: %s", out)
	}
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "10:30:00 [INF] {registry} policy loaded [alpha=a zeta=1]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestTextFormatterOptionalParts(t *testing.T) {
	entry := testEntry()
	entry.Fields = Fields{}
	entry.Logger = ""
	entry.CorrelationID = "c1"
	entry.Error = errors.New("boom")
	entry.Duration = 2 * time.Second

	f := NewTextFormatter()
	f.DisableTimestamp = true
	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "[INF] (corr=c1) policy loaded error=\"boom\" duration=2s\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestConsoleFormatterWithoutColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true

	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	text, _ := NewTextFormatter().Format(testEntry())
	if string(out) != string(text) {
		t.Errorf("console without colors = %q, want %q", out, text)
	}
}

func TestConsoleFormatterKeepsMessage(t *testing.T) {
	out, err := NewConsoleFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(out), "INF") || !strings.Contains(string(out), "policy loaded") {
		t.Errorf("console output lost content: %q", out)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	out, err := NewLogfmtFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `timestamp=2025-03-02T10:30:00Z level=info message="policy loaded" logger=registry alpha="a" zeta=1` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestLogfmtFormatterOptionalParts(t *testing.T) {
	entry := testEntry()
	entry.Fields = Fields{"cause": errors.New("inner")}
	entry.CorrelationID = "c1"
	entry.Error = errors.New("boom")
	entry.Duration = 1500 * time.Microsecond

	out, err := NewLogfmtFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `timestamp=2025-03-02T10:30:00Z level=info message="policy loaded" logger=registry correlation_id=c1 cause="inner" error="boom" duration_ms=1.500` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "*log.JSONFormatter"},
		{FormatText, "*log.TextFormatter"},
		{FormatConsole, "*log.ConsoleFormatter"},
		{FormatLogfmt, "*log.LogfmtFormatter"},
		{Format(99), "*log.JSONFormatter"},
		{Format(-1), "*log.JSONFormatter"},
	}

	for _, tt := range tests {
		got := GetFormatter(tt.format)
		switch got.(type) {
		case *JSONFormatter:
			if tt.want != "*log.JSONFormatter" {
				t.Errorf("GetFormatter(%v) = JSON, want %s", tt.format, tt.want)
			}
		case *TextFormatter:
			if tt.want != "*log.TextFormatter" {
				t.Errorf("GetFormatter(%v) = Text, want %s", tt.format, tt.want)
			}
		case *ConsoleFormatter:
			if tt.want != "*log.ConsoleFormatter" {
				t.Errorf("GetFormatter(%v) = Console, want %s", tt.format, tt.want)
			}
		case *LogfmtFormatter:
			if tt.want != "*log.LogfmtFormatter" {
				t.Errorf("GetFormatter(%v) = Logfmt, want %s", tt.format, tt.want)
			}
		}
	}
}
