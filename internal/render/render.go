// ============================================================================
// leutils - Command line utilities
// ============================================================================
//
// Package:     render
// Description: Presents tokenised lines as text, JSON, YAML, TOML or MessagePack
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	mdwerror "github.com/msto63/leutils/foundation/core/error"
	"github.com/msto63/leutils/foundation/tokeniser"
)

// Format identifies an output encoding
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatMsgPack Format = "msgpack"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML, FormatMsgPack}

// ParseFormat parses a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", mdwerror.New(fmt.Sprintf("unknown output format: %s", name)).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("render.ParseFormat").
		WithDetail("format", name)
}

// Result is the outcome of tokenising one input line
type Result struct {
	Input     string   `json:"input" yaml:"input" toml:"input" msgpack:"input"`
	Arguments []string `json:"arguments" yaml:"arguments" toml:"arguments" msgpack:"arguments"`
	Flags     []string `json:"flags" yaml:"flags" toml:"flags" msgpack:"flags"`
	Options   []string `json:"options" yaml:"options" toml:"options" msgpack:"options"`
	Error     string   `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty" msgpack:"error,omitempty"`
	Fragment  string   `json:"fragment,omitempty" yaml:"fragment,omitempty" toml:"fragment,omitempty" msgpack:"fragment,omitempty"`
}

// Failed reports whether the line could not be tokenised
func (r Result) Failed() bool {
	return r.Error != ""
}

// NewResult builds a Result from the return values of tokeniser.Tokenise
func NewResult(input string, tok *tokeniser.Token, err error) Result {
	r := Result{
		Input:     input,
		Arguments: []string{},
		Flags:     []string{},
		Options:   []string{},
	}

	if err != nil {
		r.Error = err.Error()
		var quoteErr *tokeniser.UnclosedQuoteError
		if errors.As(err, &quoteErr) {
			r.Fragment = quoteErr.Fragment
		}
		return r
	}

	if tok != nil {
		r.Arguments = tok.Arguments()
		r.Flags = tok.Flags()
		r.Options = tok.Options()
	}
	return r
}

// Tokenise tokenises input and wraps the outcome in a Result
func Tokenise(input string) Result {
	tok, err := tokeniser.Tokenise(input)
	return NewResult(input, tok, err)
}

// Document is the top level value written by the structured encoders
type Document struct {
	Results []Result `json:"results" yaml:"results" toml:"results" msgpack:"results"`
}

// Options control rendering
type Options struct {
	// Color enables styled text output
	Color bool

	// Width is the available line width for text output; 0 means unlimited
	Width int
}

// Renderer writes results to w
type Renderer interface {
	Render(w io.Writer, results []Result) error
}

// New returns the renderer for format
func New(format Format, opts Options) (Renderer, error) {
	switch format {
	case FormatText:
		return NewTextRenderer(opts), nil
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatYAML:
		return yamlRenderer{}, nil
	case FormatTOML:
		return tomlRenderer{}, nil
	case FormatMsgPack:
		return msgpackRenderer{}, nil
	default:
		return nil, mdwerror.New(fmt.Sprintf("unknown output format: %s", format)).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("render.New")
	}
}

func wrapEncodeErr(err error, format Format) error {
	if err == nil {
		return nil
	}
	return mdwerror.Wrap(err, "failed to encode results").
		WithCode(mdwerror.CodeInternal).
		WithOperation("render.Render").
		WithDetail("format", string(format))
}
