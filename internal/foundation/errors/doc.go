// Package errors provides foundational, type-safe error primitives used across the
// signature renderer.
//
// This package contains classified error types and helpers for robust error handling,
// including a fluent builder API for constructing ClassifiedError values with context.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, model, render, internal, ...)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLI adapter for error presentation and exit codes
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryModel, "class has no name").
//		WithSeverity(errors.SeverityFatal).
//		WithContext("dri", dri.String()).
//		Build()
package errors
