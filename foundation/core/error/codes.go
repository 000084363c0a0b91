// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the leutils packages. Codes let callers branch on the kind
//              of failure without depending on concrete error types.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-03-02 v0.2.0: Reduced to the codes used by the tokeniser, config and CLI

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes used across leutils
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Tokeniser
	CodeUnclosedQuote   Code = "UNCLOSED_QUOTE"
	CodeIndexOutOfRange Code = "INDEX_OUT_OF_RANGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation and output
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeUnclosedQuote, CodeIndexOutOfRange,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnclosedQuote, CodeIndexOutOfRange:
		return "tokeniser"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c {
	case CodeUnclosedQuote, CodeInvalidInput, CodeIndexOutOfRange:
		return 2
	case CodeConfigError, CodeInvalidConfig, CodeNotFound:
		return 3
	case CodeValidationFailed, CodeInvalidFormat:
		return 4
	default:
		return 1
	}
}
