// Package errors provides the standard error constructors used by every
// toolbox module.
//
// Package: errors
// Title: Standard Error Constructors
// Description: Module identifiers, a fluent builder and constructors for the
//              common failure kinds, built on core/error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2025-03-02 v0.2.0: InvalidParameter builder, module list for this library
//
// Every constructor records the module and operation in the error details,
// so ExtractModule and ExtractOperation work on any error built here:
//
//	err := errors.InvalidParameter(errors.ModuleMathx, "RuleOfThree", "x1 must not be zero").
//		Detail("x1", 0).
//		Build()
//
//	errors.IsModuleOperation(err, errors.ModuleMathx, "RuleOfThree") // true
//
// InvalidParameter returns the builder instead of the error so callers can
// attach details before calling Build.
package errors
