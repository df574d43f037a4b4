// File: timer_test.go
// Title: Operation Timer Tests
// Description: Tests for timer completion logging.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial timer tests
// - 2025-03-02 v0.1.1: Reduced to Stop/StopWithError

package log

import (
	"errors"
	"testing"
)

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("policy.reload").WithField("policies", 3)
	if !timer.IsRunning() {
		t.Error("new timer should be running")
	}

	timer.Stop()
	if timer.IsRunning() {
		t.Error("stopped timer should not be running")
	}

	data := decodeLine(t, buf)
	if data["message"] != "policy.reload completed" {
		t.Errorf("message = %v", data["message"])
	}
	if data["operation"] != "policy.reload" {
		t.Errorf("operation = %v", data["operation"])
	}
	if data["policies"] != float64(3) {
		t.Errorf("policies = %v, want 3", data["policies"])
	}
	if _, ok := data["duration_ms"]; !ok {
		t.Error("duration_ms missing")
	}
}

func TestTimerStopTwice(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	timer := logger.StartTimer("op")
	timer.Stop()
	buf.Reset()

	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}
	if buf.Len() != 0 {
		t.Error("second Stop() should not log")
	}
}

func TestTimerLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)

	logger.StartTimer("quiet").Stop()
	if buf.Len() != 0 {
		t.Error("debug timer should be filtered at info level")
	}

	logger.StartTimer("loud").WithLevel(LevelInfo).Stop()
	if buf.Len() == 0 {
		t.Error("info timer should be logged at info level")
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.StartTimer("policy.reload").StopWithError(errors.New("parse failed"))

	data := decodeLine(t, buf)
	if data["level"] != "error" {
		t.Errorf("level = %v, want error", data["level"])
	}
	if data["success"] != false {
		t.Errorf("success = %v, want false", data["success"])
	}
	if data["error"] != "parse failed" {
		t.Errorf("error = %v", data["error"])
	}
}
