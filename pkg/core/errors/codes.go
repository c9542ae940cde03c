// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     errors
// Description: Error codes and severities shared by the conversion pipeline
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package errors

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Pipeline codes
	CodeLexical Code = "LEXICAL_ERROR"
	CodeSyntax  Code = "SYNTAX_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsInputError reports whether the code describes a problem with the
// expression text rather than with the program or its environment.
func (c Code) IsInputError() bool {
	switch c {
	case CodeInvalidInput, CodeLexical, CodeSyntax:
		return true
	default:
		return false
	}
}

// ExitCode maps an error code to a process exit status for the CLI.
func ExitCode(c Code) int {
	switch c {
	case "":
		return 0
	case CodeLexical, CodeSyntax, CodeInvalidInput:
		return 2
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return 3
	default:
		return 1
	}
}

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers bad user input
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
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

// SeverityFromCode returns the default severity for a code
func SeverityFromCode(c Code) Severity {
	switch c {
	case CodeLexical, CodeSyntax, CodeInvalidInput:
		return SeverityLow
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh
	case CodeInternal:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
