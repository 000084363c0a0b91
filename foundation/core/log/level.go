// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and controlling log output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-03-02 v0.2.0: Dropped fatal and audit levels, table-driven names

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is per-line tokeniser output
	LevelTrace Level = iota
	// LevelDebug covers configuration and timing details
	LevelDebug
	LevelInfo
	// LevelWarn is used for rejected input lines
	LevelWarn
	LevelError
)

var levelNames = [...]struct{ long, short string }{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
}

// levelAliases maps accepted spellings to levels
var levelAliases = map[string]Level{
	"trace": LevelTrace, "trc": LevelTrace,
	"debug": LevelDebug, "dbg": LevelDebug,
	"info": LevelInfo, "inf": LevelInfo, "information": LevelInfo,
	"warn": LevelWarn, "wrn": LevelWarn, "warning": LevelWarn,
	"error": LevelError, "err": LevelError,
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelError
}

// String returns the lower-case level name
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three letter tag used by the text formatters
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog reports whether l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a level name or alias, case-insensitively. Unknown
// input yields LevelInfo and a *ParseError.
func ParseLevel(level string) (Level, error) {
	if l, ok := levelAliases[strings.ToLower(strings.TrimSpace(level))]; ok {
		return l, nil
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level of a logger built with New
func DefaultLevel() Level {
	return LevelInfo
}
