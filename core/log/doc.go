// Package log provides structured logging for the toolbox packages.
//
// Package: log
// Title: Structured Logging
// Description: Contextual structured logging with JSON, text, console and
//              logfmt output, log levels, operation timers and integration
//              with the toolbox error type.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-03-09
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-03-02 v0.2.0: Nop logger, lipgloss console styles, construction from config
// - 2025-03-09 v0.2.1: Table driven level and format names, coded parse errors
//
// Features:
// - Structured logging with JSON, text, console and logfmt formats
// - Multiple log levels with filtering, audit entries bypass the filter
// - Contextual fields and correlation IDs on immutable logger copies
// - Severity based logging of toolbox errors via LogError
// - Operation timers logging their duration on completion
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//	}).WithField("component", "stringx")
//
//	logger.Info("policy loaded", log.Fields{"policy": "password"})
//
//	timer := logger.StartTimer("policy.reload")
//	defer timer.Stop()
//
// Library code accepts a *Logger and falls back to NewNop, so nothing is
// written unless the host application injects a logger.
package log
