// Package error provides structured error handling for the leutils packages.
//
// Package: error
// Title: leutils Error Handling Framework
// Description: This package implements a structured error type with error codes,
//              severities, details and the operation that failed. Domain packages
//              may define their own error types and still take part in code based
//              classification by implementing the Coder interface.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Coder interface, errors.As based code lookup
//
// Usage:
//
//	import mdwerror "github.com/msto63/leutils/foundation/core/error"
//
//	err := mdwerror.New("unsupported output format").
//		WithCode(mdwerror.CodeInvalidFormat).
//		WithDetail("format", "xml").
//		WithOperation("render.Encode")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
//		// handle
//	}
package error
