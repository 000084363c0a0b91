// ============================================================================
// leutils - Command line utilities
// ============================================================================
//
// Package:     render
// Description: Structured encoders for tokenise results
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package render

import (
	"encoding/json"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return wrapEncodeErr(enc.Encode(Document{Results: results}), FormatJSON)
}

type yamlRenderer struct{}

func (yamlRenderer) Render(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Results: results}); err != nil {
		return wrapEncodeErr(err, FormatYAML)
	}
	return wrapEncodeErr(enc.Close(), FormatYAML)
}

type tomlRenderer struct{}

func (tomlRenderer) Render(w io.Writer, results []Result) error {
	return wrapEncodeErr(toml.NewEncoder(w).Encode(Document{Results: results}), FormatTOML)
}

type msgpackRenderer struct{}

func (msgpackRenderer) Render(w io.Writer, results []Result) error {
	return wrapEncodeErr(msgpack.NewEncoder(w).Encode(Document{Results: results}), FormatMsgPack)
}
