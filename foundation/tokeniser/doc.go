// File: doc.go
// Title: Tokeniser Package Documentation
// Description: Splits a single command line into space separated arguments,
//              honouring double quoted spans and backslash escaped quotes, and
//              classifies the resulting arguments into flags and options.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial tokeniser implementation

/*
Package tokeniser turns a raw argument line into an immutable Token.

Scanning rules:

  - Leading and trailing whitespace and control characters are stripped first.
  - A space outside double quotes ends the current argument.
  - A double quote opens or closes a quoted span; spaces inside it are literal.
    Closing a span ends the current argument.
  - A backslash escapes only a double quote. Before any other character, and at
    the very end of the input, the backslash is kept literally.
  - A quoted span still open at the end of the input is an UnclosedQuoteError.

Classification:

  - Flags are arguments of the form "-x..." where x is an ASCII letter.
  - Options are arguments starting with "--".

Example:

	tok, err := tokeniser.Tokenise(`cp -r "My Documents" --verbose`)
	if err != nil {
		return err
	}
	tok.Arguments() // [cp -r My Documents --verbose]
	tok.Flags()     // [-r]
	tok.Options()   // [--verbose]

A Token never changes after construction and may be shared between goroutines.
*/
package tokeniser
