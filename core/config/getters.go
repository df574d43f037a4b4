// File: getters.go
// Title: Typed Configuration Accessors
// Description: Typed getters over dot separated keys. Every getter checks
//              the environment first, then the document, then the caller's
//              default.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Getters share one lookup with per type converters

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// lookup resolves key in precedence order. An environment value or document
// value that does not convert is skipped, not an error.
func lookup[T any](c *Config, key string, fromEnv func(string) (T, bool), fromValue func(interface{}) (T, bool), defaults []T) T {
	if env := c.getEnvValue(key); env != "" {
		if v, ok := fromEnv(env); ok {
			return v
		}
	}
	if v, ok := fromValue(c.getValue(key)); ok {
		return v
	}
	if len(defaults) > 0 {
		return defaults[0]
	}
	var zero T
	return zero
}

// same uses the document converter for environment values
func same[T any](fromValue func(interface{}) (T, bool)) func(string) (T, bool) {
	return func(s string) (T, bool) { return fromValue(s) }
}

func toString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	}
	return 0, false
}

func toBool(value interface{}) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		return b, err == nil
	}
	return false, false
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

// toDuration accepts duration strings and integer nanoseconds
func toDuration(value interface{}) (time.Duration, bool) {
	switch v := value.(type) {
	case string:
		d, err := time.ParseDuration(v)
		return d, err == nil
	case int:
		return time.Duration(v), true
	case int64:
		return time.Duration(v), true
	}
	return 0, false
}

func toStringSlice(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result, true
	case string:
		return []string{v}, true
	}
	return nil, false
}

// splitList reads a comma separated environment list
func splitList(s string) ([]string, bool) {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, true
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	return lookup(c, key, same(toString), toString, defaultValue)
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	return lookup(c, key, same(toInt), toInt, defaultValue)
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	return lookup(c, key, same(toBool), toBool, defaultValue)
}

// GetFloat returns a float64 configuration value with optional default
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	return lookup(c, key, same(toFloat), toFloat, defaultValue)
}

// GetDuration returns a time.Duration configuration value with optional default
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	return lookup(c, key, same(toDuration), toDuration, defaultValue)
}

// GetStringSlice returns a string slice configuration value with optional
// default. An environment override is a comma separated list.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	return lookup(c, key, splitList, toStringSlice, defaultValue)
}

func (c *Config) getEnvValue(key string) string {
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey converts a config key to environment variable format:
// stringx.policy.length with prefix APP becomes APP_STRINGX_POLICY_LENGTH
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}
