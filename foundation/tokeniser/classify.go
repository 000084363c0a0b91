// File: classify.go
// Title: Flag and Option Classification
// Description: Derives the flag and option subsequences of an argument list.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package tokeniser

import "strings"

const (
	flagPrefix   = "-"
	optionPrefix = "--"
)

// IsFlag reports whether arg is a flag: one dash followed by an ASCII letter.
// "-", "-2" and "--x" are not flags.
func IsFlag(arg string) bool {
	return len(arg) >= 2 && arg[0] == '-' && isASCIILetter(arg[1])
}

// IsOption reports whether arg starts with two dashes
func IsOption(arg string) bool {
	return strings.HasPrefix(arg, optionPrefix)
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// classify returns the flags and options of arguments, in input order
func classify(arguments []string) (flags, options []string) {
	flags = make([]string, 0)
	options = make([]string, 0)

	for _, arg := range arguments {
		switch {
		case IsFlag(arg):
			flags = append(flags, arg)
		case IsOption(arg):
			options = append(options, arg)
		}
	}
	return flags, options
}
