// File: scanner.go
// Title: Argument Scanner
// Description: Single pass finite state scanner that splits an argument line
//              into arguments. The three states and their transitions are
//              kept in one step function so the escape/quote interaction is
//              visible in a single place.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial scanner implementation

package tokeniser

import (
	"strings"

	mdwstringx "github.com/msto63/leutils/foundation/utils/stringx"
)

// scanState is the state of the argument scanner
type scanState int

const (
	stateNormal  scanState = iota // outside quotes, spaces delimit
	stateQuoted                   // inside a quoted span, spaces are literal
	stateEscaped                  // previous byte was a backslash
)

// String returns the state name, used in test failure messages
func (s scanState) String() string {
	switch s {
	case stateNormal:
		return "normal"
	case stateQuoted:
		return "quoted"
	case stateEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

const (
	quoteByte     = '"'
	backslashByte = '\\'
	spaceByte     = ' '
)

// scanner holds the mutable state of one tokenising pass
type scanner struct {
	state scanState
	// resume is the state to return to after an escape
	resume scanState

	current   strings.Builder
	arguments []string
}

// step applies the transition for one input byte
func (s *scanner) step(c byte) {
	switch s.state {
	case stateEscaped:
		// Only a quote is escapable; any other byte keeps its backslash
		if c != quoteByte {
			s.current.WriteByte(backslashByte)
		}
		s.current.WriteByte(c)
		s.state = s.resume

	case stateNormal:
		switch c {
		case backslashByte:
			s.resume, s.state = stateNormal, stateEscaped
		case quoteByte:
			s.state = stateQuoted
		case spaceByte:
			s.flush()
		default:
			s.current.WriteByte(c)
		}

	case stateQuoted:
		switch c {
		case backslashByte:
			s.resume, s.state = stateQuoted, stateEscaped
		case quoteByte:
			s.state = stateNormal
			s.flush()
		default:
			s.current.WriteByte(c)
		}
	}
}

// flush moves a non-empty current argument to the output
func (s *scanner) flush() {
	if s.current.Len() == 0 {
		return
	}
	s.arguments = append(s.arguments, s.current.String())
	s.current.Reset()
}

// insideQuotes reports whether a quoted span is open, including while an
// escape inside that span is pending
func (s *scanner) insideQuotes() bool {
	return s.state == stateQuoted || (s.state == stateEscaped && s.resume == stateQuoted)
}

// finish ends the scan and returns the arguments or an UnclosedQuoteError
func (s *scanner) finish() ([]string, error) {
	unclosed := s.insideQuotes()

	// A trailing lone backslash is kept literally
	if s.state == stateEscaped {
		s.current.WriteByte(backslashByte)
		s.state = s.resume
	}

	fragment := s.current.String()
	s.flush()

	if unclosed {
		return nil, &UnclosedQuoteError{Fragment: fragment}
	}
	return s.arguments, nil
}

// scan splits input into arguments
func scan(input string) ([]string, error) {
	trimmed := mdwstringx.TrimControl(input)

	s := &scanner{arguments: make([]string, 0, strings.Count(trimmed, " ")+1)}
	for i := 0; i < len(trimmed); i++ {
		s.step(trimmed[i])
	}
	return s.finish()
}
