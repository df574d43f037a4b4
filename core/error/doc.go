// Package error provides structured errors for the toolbox packages.
//
// Package: error
// Title: Toolbox Error Handling
// Description: Errors carry a code, a severity, key-value details, the
//              operation that failed and a stack trace. Wrapping keeps the
//              classification of the inner error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Code based Is for sentinel matching
//
// Usage:
//
//	import tberror "github.com/msto63/toolbox/core/error"
//
//	err := tberror.New("sum of minimums exceeds length").
//		WithCode(tberror.CodeInvalidParameter).
//		WithDetail("length", 5)
//
//	wrapped := tberror.Wrap(err, "policy cannot be generated")
//	tberror.HasCode(wrapped, tberror.CodeInvalidParameter) // true
//
// Two *Error values with the same known code match under errors.Is, so a
// package can export a sentinel such as stringx.ErrInvalidParameter and
// callers can test for it without comparing messages.
//
// The package name shadows the predeclared error type. Import it under an
// alias, conventionally tberror.
package error
