// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification for structured errors. The logger uses
//              the severity to choose the level an error is reported at.
// Author: msto63
// Version: v0.1.2
// Created: 2025-01-24
// Modified: 2025-03-09
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-03-02 v0.1.1: Severity mapping for library codes
// - 2025-03-09 v0.1.2: ShouldAlert drives the logger's error level

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller input problem, e.g. an unsatisfiable parameter
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error such as a failing random source
	SeverityHigh

	// SeverityCritical indicates an error that leaves the component unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert reports whether the severity is high enough to be logged at
// error level
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh

	case CodeConfigError, CodeInvalidConfig:
		return SeverityMedium

	case CodeInvalidInput, CodeInvalidParameter, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
