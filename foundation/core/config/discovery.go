// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Locates a configuration file across a list of directories,
//              base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2025-03-02 v0.2.0: Added user config directory and optional discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/leutils/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try
	EnvPrefix  string   // Environment variable prefix for overrides
	Defaults   map[string]interface{}
	Required   bool // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns discovery options for an application.
// The working directory is searched first, then the user config directory
// (e.g. ~/.config/<app> on Linux).
func DefaultDiscoveryOptions(app string) DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, app))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{app, "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  strings.ToUpper(app),
	}
}

// Discover finds and loads the first matching configuration file. When no
// file exists and Required is false, an empty configuration carrying the
// defaults and environment prefix is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	}

	configPath, err := FindConfigFile(options)
	if err != nil {
		if !options.Required && mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			return Empty(loadOptions), nil
		}
		return nil, err
	}

	config, err := LoadWithOptions(configPath, loadOptions)
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
			WithOperation("config.Discover").
			WithDetail("configPath", configPath)
	}
	return config, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := candidatePaths(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", mdwerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(candidates, ", "))).
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

func candidatePaths(options DiscoveryOptions) []string {
	paths := options.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	filenames := options.Filenames
	if len(filenames) == 0 {
		filenames = []string{"config"}
	}
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = []string{".toml", ".yaml", ".yml"}
	}

	candidates := make([]string, 0, len(paths)*len(filenames)*len(extensions))
	for _, path := range paths {
		for _, filename := range filenames {
			for _, ext := range extensions {
				candidates = append(candidates, filepath.Join(path, filename+ext))
			}
		}
	}
	return candidates
}
