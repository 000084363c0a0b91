// File: error_test.go
// Title: Error Module Tests
// Description: Tests for the error module covering creation, wrapping, codes,
//              severity, details and code lookup through the Coder interface.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-03-02 v0.2.0: Coder lookup and wrapped code propagation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type codedError struct{ code Code }

func (e codedError) Error() string { return "coded: " + string(e.code) }
func (e codedError) Code() Code    { return e.code }

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap leutils error",
			err:      New("original error").WithCode(CodeConfigError),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeConfigError,
		},
		{
			name:     "wrap coded domain error",
			err:      codedError{code: CodeUnclosedQuote},
			message:  "tokenise failed",
			wantMsg:  "tokenise failed: coded: UNCLOSED_QUOTE",
			wantCode: CodeUnclosedQuote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped error")
			}
		})
	}
}

func TestWrapCopiesDetails(t *testing.T) {
	inner := New("inner").WithDetail("path", "/tmp/x.toml")
	outer := Wrap(inner, "outer")

	if got := outer.Details()["path"]; got != "/tmp/x.toml" {
		t.Errorf("Details()[path] = %v, want /tmp/x.toml", got)
	}

	// The copy must not alias the inner map
	outer.WithDetail("extra", 1)
	if _, ok := inner.Details()["extra"]; ok {
		t.Error("inner error details were modified through the wrapper")
	}
}

func TestWithDetails(t *testing.T) {
	err := New("2 of 5 lines have an unclosed quote").
		WithDetail("failed", 1).
		WithDetails(map[string]interface{}{
			"failed": 2,
			"lines":  5,
		})

	details := err.Details()
	if details["failed"] != 2 || details["lines"] != 5 {
		t.Errorf("Details() = %v, want failed=2 lines=5", details)
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeUnclosedQuote, SeverityLow},
		{CodeIndexOutOfRange, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, CodeUnknown},
		{"plain", errors.New("plain"), CodeUnknown},
		{"leutils error", New("x").WithCode(CodeInvalidFormat), CodeInvalidFormat},
		{"coder", codedError{code: CodeIndexOutOfRange}, CodeIndexOutOfRange},
		{"fmt wrapped coder", fmt.Errorf("ctx: %w", codedError{code: CodeUnclosedQuote}), CodeUnclosedQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}

	if HasCode(nil, CodeUnknown) {
		t.Error("HasCode(nil) should be false")
	}
	if !HasCode(codedError{code: CodeUnclosedQuote}, CodeUnclosedQuote) {
		t.Error("HasCode should match a Coder")
	}
}

func TestGetSeverity(t *testing.T) {
	if got := GetSeverity(codedError{code: CodeUnclosedQuote}); got != SeverityLow {
		t.Errorf("GetSeverity(coder) = %v, want low", got)
	}
	if got := GetSeverity(errors.New("plain")); got != SeverityMedium {
		t.Errorf("GetSeverity(plain) = %v, want medium", got)
	}
	if got := GetSeverity(New("x").WithSeverity(SeverityHigh)); got != SeverityHigh {
		t.Errorf("GetSeverity(*Error) = %v, want high", got)
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "top")

	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}

	single := New("alone")
	if single.RootCause() != single {
		t.Error("RootCause() of an unwrapped error should be itself")
	}
}

func TestString(t *testing.T) {
	err := New("render failed").
		WithCode(CodeInvalidFormat).
		WithOperation("render.Encode").
		WithDetail("format", "xml").
		WithDetail("attempt", 1)

	s := err.String()
	for _, want := range []string{
		"Error: render failed",
		"Code: INVALID_FORMAT",
		"Severity: low",
		"Operation: render.Encode",
		"Details: {attempt=1, format=xml}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("disk full"), "write failed").
		WithCode(CodeInternal).
		WithOperation("render.Write").
		WithDetail("bytes", 42)

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("json.Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if unmarshalErr := json.Unmarshal(data, &decoded); unmarshalErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", unmarshalErr)
	}

	if decoded["code"] != "INTERNAL" {
		t.Errorf("code = %v, want INTERNAL", decoded["code"])
	}
	if decoded["severity"] != "critical" {
		t.Errorf("severity = %v, want critical", decoded["severity"])
	}
	if decoded["operation"] != "render.Write" {
		t.Errorf("operation = %v, want render.Write", decoded["operation"])
	}
	if decoded["cause"] != "disk full" {
		t.Errorf("cause = %v, want disk full", decoded["cause"])
	}
}
