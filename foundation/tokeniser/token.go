// File: token.go
// Title: Token Value and Query Surface
// Description: Implements the immutable Token produced by Tokenise together
//              with its read-only accessors, equality and hashing.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package tokeniser

import (
	"encoding/binary"
	"hash/fnv"
	"path/filepath"
	"strings"
)

// Token holds the arguments found in one input line. The flag and option
// lists are derived once, when the token is built, and never change.
type Token struct {
	arguments []string
	flags     []string
	options   []string
}

// Tokenise splits input into arguments. It fails with an *UnclosedQuoteError
// when a double quoted span is not closed before the end of the input; no
// Token is returned in that case.
func Tokenise(input string) (*Token, error) {
	arguments, err := scan(input)
	if err != nil {
		return nil, err
	}

	flags, options := classify(arguments)
	return &Token{
		arguments: arguments,
		flags:     flags,
		options:   options,
	}, nil
}

// MustTokenise is like Tokenise but panics on error. It is meant for
// constant inputs in tests and package initialisation.
func MustTokenise(input string) *Token {
	tok, err := Tokenise(input)
	if err != nil {
		panic(err)
	}
	return tok
}

// Arguments returns a copy of all arguments in input order
func (t *Token) Arguments() []string {
	return cloneStrings(t.arguments)
}

// NumberOfArguments returns the number of arguments
func (t *Token) NumberOfArguments() int {
	return len(t.arguments)
}

// IsEmpty reports whether the input held no arguments
func (t *Token) IsEmpty() bool {
	return len(t.arguments) == 0
}

// HasExactly reports whether the token holds exactly n arguments
func (t *Token) HasExactly(n int) bool {
	return len(t.arguments) == n
}

// ArgumentAt returns the argument at index
func (t *Token) ArgumentAt(index int) (string, error) {
	return at(t.arguments, index, "arguments")
}

// FirstArgument returns the first argument
func (t *Token) FirstArgument() (string, error) {
	return at(t.arguments, 0, "arguments")
}

// LastArgument returns the last argument
func (t *Token) LastArgument() (string, error) {
	if len(t.arguments) == 0 {
		return at(t.arguments, 0, "arguments")
	}
	return t.arguments[len(t.arguments)-1], nil
}

// Flags returns a copy of the flag arguments in input order
func (t *Token) Flags() []string {
	return cloneStrings(t.flags)
}

// Options returns a copy of the option arguments in input order
func (t *Token) Options() []string {
	return cloneStrings(t.options)
}

// FlagAt returns the flag at index, with or without its leading dash
func (t *Token) FlagAt(index int, includeDash bool) (string, error) {
	flag, err := at(t.flags, index, "flags")
	if err != nil {
		return "", err
	}
	if includeDash {
		return flag, nil
	}
	return strings.TrimPrefix(flag, flagPrefix), nil
}

// FlagValueAt returns the letter that follows the dash of the flag at index
func (t *Token) FlagValueAt(index int) (byte, error) {
	flag, err := at(t.flags, index, "flags")
	if err != nil {
		return 0, err
	}
	return flag[1], nil
}

// OptionAt returns the option at index, with or without its leading dashes
func (t *Token) OptionAt(index int, includeDashes bool) (string, error) {
	option, err := at(t.options, index, "options")
	if err != nil {
		return "", err
	}
	if includeDashes {
		return option, nil
	}
	return strings.TrimPrefix(option, optionPrefix), nil
}

// PathFromArgument returns the argument at index as a file system path. The
// path is not checked for existence or validity.
func (t *Token) PathFromArgument(index int) (string, error) {
	arg, err := at(t.arguments, index, "arguments")
	if err != nil {
		return "", err
	}
	return filepath.FromSlash(arg), nil
}

// Equal reports whether both tokens hold the same arguments in the same order
func (t *Token) Equal(other *Token) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.arguments) != len(other.arguments) {
		return false
	}
	for i := range t.arguments {
		if t.arguments[i] != other.arguments[i] {
			return false
		}
	}
	return true
}

// Hash returns a hash of the arguments. Equal tokens have equal hashes.
func (t *Token) Hash() uint64 {
	h := fnv.New64a()
	var size [binary.MaxVarintLen64]byte
	for _, arg := range t.arguments {
		// Length prefix keeps ["ab"] and ["a", "b"] apart
		n := binary.PutUvarint(size[:], uint64(len(arg)))
		_, _ = h.Write(size[:n])
		_, _ = h.Write([]byte(arg))
	}
	return h.Sum64()
}

// String returns a representation like Token{arguments=[cp, -r, a b]}
func (t *Token) String() string {
	return "Token{arguments=[" + strings.Join(t.arguments, ", ") + "]}"
}

func at(seq []string, index int, name string) (string, error) {
	if index < 0 || index >= len(seq) {
		return "", &IndexOutOfRangeError{Sequence: name, Index: index, Length: len(seq)}
	}
	return seq[index], nil
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
