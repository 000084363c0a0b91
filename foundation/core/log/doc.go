// Package log provides structured logging for the leutils packages and CLI.
//
// Package: log
// Title: leutils Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual fields, log levels, several output formats and
//              integration with the leutils error codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-03-02 v0.2.0: Sorted field output, fatih/color console formatter, no async mode
//
// Usage:
//
//	import mdwlog "github.com/msto63/leutils/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelInfo).
//		WithFormatter(mdwlog.GetFormatter(mdwlog.FormatText)).
//		WithCorrelationID(uuid.NewString())
//
//	logger.Info("tokenised line", mdwlog.Int("arguments", tok.NumberOfArguments()))
//	logger.LogError(err)
//
//	timer := logger.StartTimer("tokenise_file")
//	// ... tokenise
//	timer.Stop()
package log
