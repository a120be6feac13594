// Package errors provides structured error types for Inkwell.
// Errors carry a stable code, a category for consistent handling, and context.
package errors

import (
	"fmt"
	"strings"
)

// Category classifies errors for consistent handling and display.
type Category string

const (
	CategoryValidation Category = "validation" // Input-shape errors (bad rows, bad specs)
	CategoryLayout     Category = "layout"     // Table layout and pagination errors
	CategoryData       Category = "data"       // Record loading/parsing errors
	CategoryIO         Category = "io"         // File read/write errors
	CategoryConfig     Category = "config"     // Configuration loading/parsing errors
	CategoryInternal   Category = "internal"   // Internal/unexpected errors
)

// ReportError is a structured error with a stable code and context.
// It implements the error interface and supports error wrapping.
type ReportError struct {
	// Code is a unique identifier for this error type (e.g. "ROW_SHAPE_MISMATCH")
	Code string

	// Category classifies this error for consistent handling
	Category Category

	// Message is the primary error message describing what went wrong
	Message string

	// Context provides additional key-value details about the error
	Context map[string]string

	// Cause is the underlying error that triggered this error (for wrapping)
	Cause error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain inspection.
// This enables errors.Is() and errors.As() to work with ReportError.
func (e *ReportError) Unwrap() error {
	return e.Cause
}

// Is reports whether e matches target for errors.Is() checks.
// Two ReportErrors match if they have the same Code.
func (e *ReportError) Is(target error) bool {
	if t, ok := target.(*ReportError); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new ReportError with the given code, category, and message.
func New(code string, category Category, message string) *ReportError {
	return &ReportError{
		Code:     code,
		Category: category,
		Message:  message,
		Context:  make(map[string]string),
	}
}

// WithContext adds a context key-value pair and returns the error for chaining.
func (e *ReportError) WithContext(key, value string) *ReportError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithCause wraps an underlying error and returns the error for chaining.
func (e *ReportError) WithCause(cause error) *ReportError {
	e.Cause = cause
	return e
}

// HasContext returns true if the error has context information.
func (e *ReportError) HasContext() bool {
	return len(e.Context) > 0
}

// ContextString returns a formatted string of all context entries.
func (e *ReportError) ContextString() string {
	if len(e.Context) == 0 {
		return ""
	}
	var parts []string
	for k, v := range e.Context {
		parts = append(parts, fmt.Sprintf("%s=%q", k, v))
	}
	return strings.Join(parts, ", ")
}

// Wrap wraps an existing error with a ReportError.
func Wrap(err error, code string, category Category, message string) *ReportError {
	return New(code, category, message).WithCause(err)
}

// AsReportError attempts to convert an error to a ReportError.
// Returns the ReportError and true if successful, nil and false otherwise.
func AsReportError(err error) (*ReportError, bool) {
	if err == nil {
		return nil, false
	}
	if re, ok := err.(*ReportError); ok {
		return re, true
	}
	return nil, false
}

// IsCategory checks if an error is a ReportError with the given category.
func IsCategory(err error, category Category) bool {
	if re, ok := AsReportError(err); ok {
		return re.Category == category
	}
	return false
}

// IsCode checks if an error is a ReportError with the given code.
func IsCode(err error, code string) bool {
	if re, ok := AsReportError(err); ok {
		return re.Code == code
	}
	return false
}

// -----------------------------------------------------------------------------
// Helper Constructors for Common Error Types
// -----------------------------------------------------------------------------

// ValidationError creates a new input validation error.
// Use for malformed rows, bad column specs, or constraint violations.
func ValidationError(code, message string) *ReportError {
	return New(code, CategoryValidation, message)
}

// ValidationErrorf creates a new validation error with formatted message.
func ValidationErrorf(code, format string, args ...interface{}) *ReportError {
	return New(code, CategoryValidation, fmt.Sprintf(format, args...))
}

// LayoutError creates a new layout error.
// Use for pagination or geometry failures inside the table engine.
func LayoutError(code, message string) *ReportError {
	return New(code, CategoryLayout, message)
}

// LayoutErrorf creates a new layout error with formatted message.
func LayoutErrorf(code, format string, args ...interface{}) *ReportError {
	return New(code, CategoryLayout, fmt.Sprintf(format, args...))
}

// DataError creates a new record loading/parsing error.
// Use for CSV field parsing failures or roster shape problems.
func DataError(code, message string) *ReportError {
	return New(code, CategoryData, message)
}

// DataErrorf creates a new data error with formatted message.
func DataErrorf(code, format string, args ...interface{}) *ReportError {
	return New(code, CategoryData, fmt.Sprintf(format, args...))
}

// IOError creates a new file/IO error.
// Use for file read/write failures, permission issues, or disk errors.
func IOError(code, message string) *ReportError {
	return New(code, CategoryIO, message)
}

// IOErrorf creates a new IO error with formatted message.
func IOErrorf(code, format string, args ...interface{}) *ReportError {
	return New(code, CategoryIO, fmt.Sprintf(format, args...))
}

// ConfigError creates a new configuration error.
// Use for config file parsing, missing files, or invalid configuration values.
func ConfigError(code, message string) *ReportError {
	return New(code, CategoryConfig, message)
}

// ConfigErrorf creates a new configuration error with formatted message.
func ConfigErrorf(code, format string, args ...interface{}) *ReportError {
	return New(code, CategoryConfig, fmt.Sprintf(format, args...))
}

// InternalError creates a new internal/unexpected error.
func InternalError(code, message string) *ReportError {
	return New(code, CategoryInternal, message)
}

// -----------------------------------------------------------------------------
// Wrapping Helpers
// -----------------------------------------------------------------------------

// WrapData wraps an error as a data error.
func WrapData(err error, code, message string) *ReportError {
	return Wrap(err, code, CategoryData, message)
}

// WrapIO wraps an error as an IO error.
func WrapIO(err error, code, message string) *ReportError {
	return Wrap(err, code, CategoryIO, message)
}

// WrapConfig wraps an error as a configuration error.
func WrapConfig(err error, code, message string) *ReportError {
	return Wrap(err, code, CategoryConfig, message)
}
