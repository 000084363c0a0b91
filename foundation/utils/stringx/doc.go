// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the small string helpers shared by the
//              tokeniser, the configuration layer and the CLI renderers.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2025-03-02 v0.3.0: Reduced to the helpers leutils uses, added TrimControl

// Package stringx provides extended string operations for leutils.
//
// Functions:
//
//   - IsBlank, IsNotBlank: emptiness checks
//   - TrimControl: strips leading and trailing spaces and ASCII control characters
//   - FirstNonBlank: first value that is not blank, for defaults
//
// Example:
//
//	line := stringx.TrimControl("\t cp a b \r\n")       // "cp a b"
//	path := stringx.FirstNonBlank(flagValue, "leutils.toml")
package stringx
