// File: format.go
// Title: Log Output Formatters
// Description: JSON, text, console and logfmt formatters. The console formatter
//              styles the level tag with lipgloss so colors degrade cleanly on
//              terminals without color support.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-09
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four formatters
// - 2025-03-02 v0.2.0: Console colors via lipgloss, sorted field output
// - 2025-03-09 v0.3.0: Format table, shared field ordering, coded parse errors

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/toolbox/core/errors"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs colored console logs for development
	FormatConsole

	// FormatLogfmt outputs logfmt structured logs (key=value pairs)
	FormatLogfmt
)

// formats is indexed by Format
var formats = [...]struct {
	name string
	make func() Formatter
}{
	FormatJSON:    {"json", func() Formatter { return NewJSONFormatter() }},
	FormatText:    {"text", func() Formatter { return NewTextFormatter() }},
	FormatConsole: {"console", func() Formatter { return NewConsoleFormatter() }},
	FormatLogfmt:  {"logfmt", func() Formatter { return NewLogfmtFormatter() }},
}

func (f Format) known() bool {
	return f >= 0 && int(f) < len(formats)
}

// String returns the configuration name of the format
func (f Format) String() string {
	if !f.known() {
		return "unknown"
	}
	return formats[f].name
}

// ParseFormat parses a format name, ignoring case and surrounding space. An
// unknown name yields FormatJSON and an INVALID_FORMAT error.
func ParseFormat(format string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(format))
	for f, def := range formats {
		if def.name == name {
			return Format(f), nil
		}
	}
	return FormatJSON, errors.InvalidFormat(errors.ModuleLog, format, "a log format name")
}

// GetFormatter returns a formatter for the specified format, JSON when the
// format is unknown
func GetFormatter(format Format) Formatter {
	if !format.known() {
		format = FormatJSON
	}
	return formats[format].make()
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// field is one entry field in output order
type field struct {
	key   string
	value interface{}
}

// sortedFields returns the entry fields ordered by key. Error values are
// replaced by their message so every formatter renders them the same way.
func sortedFields(fields Fields) []field {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]field, len(keys))
	for i, k := range keys {
		v := fields[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		out[i] = field{key: k, value: v}
	}
	return out
}

// durationMillis converts d to fractional milliseconds
func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format writes one JSON object per entry. Entry fields share the top level
// with the fixed keys; a toolbox error adds its JSON form as error_details.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(f.TimestampFormat),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}
	optional := map[string]string{
		"logger":         entry.Logger,
		"correlation_id": entry.CorrelationID,
	}
	for k, v := range optional {
		if v != "" {
			data[k] = v
		}
	}
	for _, fd := range sortedFields(entry.Fields) {
		data[fd.key] = fd.value
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				data["error_details"] = json.RawMessage(raw)
			}
		}
	}
	if entry.Duration > 0 {
		data["duration_ms"] = durationMillis(entry.Duration)
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as human-readable text:
//
//	10:30:00 [INF] {registry} (corr=id) policy loaded [alpha=a zeta=1]
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return f.render(entry, entry.Level.ShortString()), nil
}

func (f *TextFormatter) render(entry *Entry, levelTag string) []byte {
	var b strings.Builder
	sep := func() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
	}

	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	}
	sep()
	b.WriteString("[" + levelTag + "]")
	if entry.Logger != "" {
		b.WriteString(" {" + entry.Logger + "}")
	}
	if entry.CorrelationID != "" {
		b.WriteString(" (corr=" + entry.CorrelationID + ")")
	}
	b.WriteString(" " + entry.Message)

	if fields := sortedFields(entry.Fields); len(fields) > 0 {
		b.WriteString(" [")
		for i, fd := range fields {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", fd.key, fd.value)
		}
		b.WriteByte(']')
	}

	if entry.Error != nil {
		b.WriteString(" error=" + strconv.Quote(entry.Error.Error()))
	}
	if entry.Duration > 0 {
		b.WriteString(" duration=" + entry.Duration.String())
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

// levelStyles colors the console level tag
var levelStyles = map[Level]lipgloss.Style{
	LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
	LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
	LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true),
	LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
	LevelFatal: lipgloss.NewStyle().Foreground(lipgloss.Color("#D946EF")).Bold(true),
	LevelAudit: lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")),
}

// ConsoleFormatter is the text layout with a colored level tag. With
// DisableColors set its output equals the TextFormatter's.
type ConsoleFormatter struct {
	*TextFormatter
	DisableColors bool
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: NewTextFormatter()}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	tag := entry.Level.ShortString()
	if style, ok := levelStyles[entry.Level]; ok && !f.DisableColors {
		tag = style.Render(tag)
	}
	return f.render(entry, tag), nil
}

// LogfmtFormatter formats log entries as logfmt key=value pairs. String
// values are quoted, other values are printed with %v.
type LogfmtFormatter struct {
	TimestampFormat string
}

// NewLogfmtFormatter creates a new logfmt formatter
func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry in logfmt format
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	pairs := []field{
		{"timestamp", entry.Timestamp.Format(f.TimestampFormat)},
		{"level", entry.Level.String()},
	}
	var b strings.Builder
	write := func(fd field) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fd.key + "=")
		switch v := fd.value.(type) {
		case quoted:
			b.WriteString(strconv.Quote(string(v)))
		case string:
			b.WriteString(v)
		default:
			fmt.Fprintf(&b, "%v", v)
		}
	}

	pairs = append(pairs, field{"message", quoted(entry.Message)})
	if entry.Logger != "" {
		pairs = append(pairs, field{"logger", entry.Logger})
	}
	if entry.CorrelationID != "" {
		pairs = append(pairs, field{"correlation_id", entry.CorrelationID})
	}
	for _, fd := range sortedFields(entry.Fields) {
		if s, ok := fd.value.(string); ok {
			fd.value = quoted(s)
		}
		pairs = append(pairs, fd)
	}
	if entry.Error != nil {
		pairs = append(pairs, field{"error", quoted(entry.Error.Error())})
	}
	if entry.Duration > 0 {
		pairs = append(pairs, field{"duration_ms", strconv.FormatFloat(durationMillis(entry.Duration), 'f', 3, 64)})
	}

	for _, fd := range pairs {
		write(fd)
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// quoted marks a logfmt value that is written with Go quoting
type quoted string
