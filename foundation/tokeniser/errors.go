// File: errors.go
// Title: Tokeniser Errors
// Description: Error types returned by the tokeniser and the Token accessors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package tokeniser

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/leutils/foundation/core/error"
)

var (
	// ErrUnclosedQuote matches every *UnclosedQuoteError with errors.Is
	ErrUnclosedQuote = errors.New("tokeniser: unclosed quote")

	// ErrIndexOutOfRange matches every *IndexOutOfRangeError with errors.Is
	ErrIndexOutOfRange = errors.New("tokeniser: index out of range")
)

// UnclosedQuoteError reports a quoted span that was still open at the end of
// the input. Fragment holds the text collected since the last argument ended.
type UnclosedQuoteError struct {
	Fragment string
}

// Error implements the error interface
func (e *UnclosedQuoteError) Error() string {
	return `expected closing quote for starting quote -> "` + e.Fragment
}

// Is reports whether target is ErrUnclosedQuote
func (e *UnclosedQuoteError) Is(target error) bool {
	return target == ErrUnclosedQuote
}

// Code implements mdwerror.Coder
func (e *UnclosedQuoteError) Code() mdwerror.Code {
	return mdwerror.CodeUnclosedQuote
}

// IndexOutOfRangeError reports an accessor call with an index outside the
// addressed sequence.
type IndexOutOfRangeError struct {
	Sequence string // "arguments", "flags" or "options"
	Index    int
	Length   int
}

// Error implements the error interface
func (e *IndexOutOfRangeError) Error() string {
	if e.Length == 0 {
		return fmt.Sprintf("index %d out of range: no %s", e.Index, e.Sequence)
	}
	return fmt.Sprintf("index %d out of range for %d %s", e.Index, e.Length, e.Sequence)
}

// Is reports whether target is ErrIndexOutOfRange
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// Code implements mdwerror.Coder
func (e *IndexOutOfRangeError) Code() mdwerror.Code {
	return mdwerror.CodeIndexOutOfRange
}
