// ============================================================================
// leutils - Command line utilities
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating Foundation loggers
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/term"

	mdwlog "github.com/msto63/leutils/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name, written as the logger name
	ServiceName string

	// Log level (trace, debug, info, warn, error). Unknown values fall back to info.
	Level string

	// Output format (json, text, console, logfmt). Unknown values fall back to json.
	Format string

	// Output defaults to stderr
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// CorrelationID tags every entry; NewLogger generates one when empty
	CorrelationID string

	// NoColor disables colours of the console format
	NoColor bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, _ := mdwlog.ParseLevel(cfg.Level)
	format, _ := mdwlog.ParseFormat(cfg.Format)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	colors := !cfg.NoColor && IsTerminal(output)

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})

	if format == mdwlog.FormatConsole {
		console := mdwlog.NewConsoleFormatter()
		console.DisableColors = !colors
		logger = logger.WithFormatter(console)
	}

	return logger.WithCorrelationID(correlationID)
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// NewCorrelationID returns a fresh random correlation ID
func NewCorrelationID() string {
	return uuid.NewString()
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
