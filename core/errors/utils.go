// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent builder and standard constructors used by every toolbox
//              package, so that all errors carry module, operation and a code.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2025-03-09
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-03-02 v0.2.0: InvalidParameter constructor, modules trimmed to toolbox
// - 2025-03-09 v0.2.1: Log module identifier

package errors

import (
	"fmt"

	tberror "github.com/msto63/toolbox/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMathx   = "mathx"
	ModuleStringx = "stringx"
	ModuleColorx  = "colorx"
	ModuleConfig  = "config"
	ModuleLog     = "log"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  tberror.Severity
	code      tberror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: tberror.SeverityMedium,
		code:     tberror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity tberror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code tberror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *tberror.Error {
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	operation := eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
		operation = eb.module + "." + eb.operation
	}

	var err *tberror.Error
	if eb.cause != nil {
		err = tberror.Wrap(eb.cause, eb.message)
	} else {
		err = tberror.New(eb.message)
	}

	return err.
		WithCode(eb.code).
		WithOperation(operation).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// InvalidParameter reports a request whose constraints cannot be satisfied.
// It is a caller bug and is never retried.
func InvalidParameter(module, operation, reason string) *ErrorBuilder {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid parameter for %s.%s: %s", module, operation, reason).
		Code(tberror.CodeInvalidParameter).
		Severity(tberror.SeverityLow)
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *tberror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(tberror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(tberror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *tberror.Error {
	return NewErrorBuilder(module).
		Operation("format").
		Messagef("invalid format, expected %s", expectedFormat).
		Code(tberror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(tberror.SeverityLow).
		Build()
}

// OperationFailed wraps a cause that made an operation fail
func OperationFailed(module, operation string, cause error) *tberror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Code(tberror.CodeInternal).
		Severity(tberror.SeverityHigh).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *tberror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("item not found in %s.%s", module, operation).
		Code(tberror.CodeNotFound).
		Detail("identifier", identifier).
		Severity(tberror.SeverityLow).
		Build()
}

// ExtractDetails extracts all details from one of our errors
func ExtractDetails(err error) map[string]interface{} {
	if e, ok := err.(*tberror.Error); ok {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
