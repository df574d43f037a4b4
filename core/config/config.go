// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading and parsing TOML and
//              YAML documents, dot separated key access and typed decoding
//              into structs.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2025-03-09
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-02 v0.2.0: Decode into structs, env cache removed
// - 2025-03-09 v0.3.0: Codec table, one read path for load and reload,
//                      typed getters moved to getters.go

package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tberror "github.com/msto63/toolbox/core/error"
	"github.com/msto63/toolbox/core/errors"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// codecs is indexed by Format. FormatAuto has no decoder of its own.
var codecs = [...]struct {
	name       string
	extensions []string
	unmarshal  func([]byte, interface{}) error
}{
	FormatTOML: {"toml", []string{".toml"}, toml.Unmarshal},
	FormatYAML: {"yaml", []string{".yaml", ".yml"}, yaml.Unmarshal},
	FormatAuto: {"auto", nil, nil},
}

// String returns the string representation of the format
func (f Format) String() string {
	if f < 0 || int(f) >= len(codecs) {
		return "unknown"
	}
	return codecs[f].name
}

// unmarshal decodes content into target with the decoder of f
func (f Format) unmarshal(content []byte, target interface{}) error {
	if f < 0 || int(f) >= len(codecs) || codecs[f].unmarshal == nil {
		return tberror.New("unsupported format: " + f.String()).
			WithCode(tberror.CodeInvalidConfig)
	}
	return codecs[f].unmarshal(content, target)
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	raw       []byte
	filePath  string
	format    Format
	envPrefix string
	defaults  map[string]interface{}
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values for missing top-level keys
}

// failure builds a config error whose severity follows its code
func failure(op string, code tberror.Code, cause error, message string) *errors.ErrorBuilder {
	return errors.NewErrorBuilder(errors.ModuleConfig).
		Operation(op).
		Message(message).
		Cause(cause).
		Code(code).
		Severity(tberror.GetSeverityFromCode(code))
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options. An
// empty path is VALIDATION_FAILED, a missing file NOT_FOUND, an unreadable
// one CONFIG_ERROR and malformed content INVALID_CONFIG.
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	const op = "LoadWithOptions"

	if strings.TrimSpace(filePath) == "" {
		return nil, failure(op, tberror.CodeValidationFailed, nil, "config file path cannot be empty").Build()
	}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, failure(op, tberror.CodeNotFound, nil, "config file not found: "+filePath).
			Detail("filePath", filePath).
			Build()
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, content, err := readDocument(op, filePath, format)
	if err != nil {
		return nil, err
	}

	return &Config{
		data:      mergeDefaults(data, options.Defaults),
		raw:       content,
		filePath:  filepath.Clean(filePath),
		format:    format,
		envPrefix: options.EnvPrefix,
		defaults:  options.Defaults,
	}, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, failure("LoadFromString", tberror.CodeInvalidConfig, err, "failed to parse config from string").
			Detail("format", format.String()).
			Build()
	}

	return &Config{
		data:   data,
		raw:    []byte(content),
		format: format,
	}, nil
}

// readDocument reads and parses the file at path. Load and reload share it.
func readDocument(op, path string, format Format) (map[string]interface{}, []byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, failure(op, tberror.CodeConfigError, err, "failed to read config file").
			Detail("filePath", path).
			Build()
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, nil, failure(op, tberror.CodeInvalidConfig, err, "failed to parse config file").
			Detail("filePath", path).
			Detail("format", format.String()).
			Build()
	}
	return data, content, nil
}

func detectFormat(filePath string) Format {
	ext := strings.ToLower(filepath.Ext(filePath))
	for f, codec := range codecs {
		for _, e := range codec.extensions {
			if e == ext {
				return Format(f)
			}
		}
	}
	return FormatTOML
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := format.unmarshal(content, &data); err != nil {
		return nil, err
	}
	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults returns data over defaults. data is returned as is when
// there are no defaults.
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	if len(defaults) == 0 {
		return data
	}
	result := make(map[string]interface{}, len(data)+len(defaults))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		result[k] = v
	}
	return result
}

// Decode decodes the whole document into target using the native decoder of
// the document's format. Struct tags follow the toml and yaml packages.
func (c *Config) Decode(target interface{}) error {
	c.mu.RLock()
	raw, format := c.raw, c.format
	c.mu.RUnlock()

	if err := format.unmarshal(raw, target); err != nil {
		return failure("Decode", tberror.CodeInvalidConfig, err, "failed to decode config").
			Detail("format", format.String()).
			Build()
	}
	return nil
}

// walk follows the dot separated key through nested tables and returns the
// table holding the last segment. With create set, missing tables are made.
func walk(data map[string]interface{}, key string, create bool) (map[string]interface{}, string) {
	segments := strings.Split(key, ".")
	current := data
	for _, seg := range segments[:len(segments)-1] {
		next, ok := current[seg].(map[string]interface{})
		if !ok {
			if !create {
				return nil, ""
			}
			next = make(map[string]interface{})
			current[seg] = next
		}
		current = next
	}
	return current, segments[len(segments)-1]
}

// getValue retrieves a configuration value by dot separated key
func (c *Config) getValue(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	table, last := walk(c.data, key, false)
	if table == nil {
		return nil
	}
	return table[last]
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	return c.getValue(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, last := walk(c.data, key, true)
	table[last] = value
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}
