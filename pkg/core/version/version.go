// ============================================================================
// leutils - Command line utilities
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and its components
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for leutils components
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Tokeniser = "1.0.0"
	Render    = "1.0.0"
	TokenView = "1.0.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/leutils/pkg/core/version.Commit=..."
var (
	Commit = "unknown"
	Date   = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information
func Get() Info {
	return Info{
		Version:   Platform,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("leutils %s (commit %s, built %s, %s %s)",
		i.Version, i.Commit, i.Date, i.GoVersion, i.Platform)
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "tokeniser":
		return Tokeniser
	case "render":
		return Render
	case "tokenview":
		return TokenView
	default:
		return Platform
	}
}
