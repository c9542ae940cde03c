// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     errors
// Description: Structured error type with codes, details and cause chains
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// Coder is implemented by errors that carry a structured code.
type Coder interface {
	Code() Code
}

// Error represents a structured error with context, code, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context. The code of a
// wrapped Coder is preserved.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := New(message)
	wrapped.cause = err

	if code := CodeOf(err); code != CodeUnknown {
		wrapped.code = code
		wrapped.severity = SeverityFromCode(code)
	}

	var kbErr *Error
	if stderrors.As(err, &kbErr) {
		for k, v := range kbErr.details {
			wrapped.details[k] = v
		}
	}

	return wrapped
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code and derives the severity from it
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = SeverityFromCode(code)
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Operation returns the operation that failed
func (e *Error) Operation() string {
	return e.operation
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// String returns a verbose, single-line description including code and details
func (e *Error) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(e.code.String())
	b.WriteString("] ")
	if e.operation != "" {
		b.WriteString(e.operation)
		b.WriteString(": ")
	}
	b.WriteString(e.Error())

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.details[k])
		}
		b.WriteString("}")
	}
	return b.String()
}

// MarshalJSON implements json.Marshaler
func (e *Error) MarshalJSON() ([]byte, error) {
	payload := map[string]interface{}{
		"message":  e.Error(),
		"code":     e.code,
		"severity": e.severity.String(),
	}
	if e.operation != "" {
		payload["operation"] = e.operation
	}
	if len(e.details) > 0 {
		payload["details"] = e.details
	}
	return json.Marshal(payload)
}

// CodeOf returns the code of the first Coder in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var coder Coder
	if stderrors.As(err, &coder) {
		return coder.Code()
	}
	return CodeUnknown
}

// HasCode checks if an error chain carries a specific code
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}
