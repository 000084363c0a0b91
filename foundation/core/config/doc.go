// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration loading for leutils
//              tools with support for TOML and YAML formats, file discovery,
//              environment variable overrides and rule based validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-02 v0.2.0: Trimmed to loading, discovery and validation

/*
Package config provides configuration management for leutils tools.

Key Features:
  • TOML and YAML support with detection by file extension
  • Environment variable overrides with an optional prefix
  • Nested defaults merged beneath file values
  • File discovery across directories, with optional fallback to defaults
  • Rule based validation (required, type, allowed values)
  • Thread-safe access

# Basic Configuration Loading

	cfg, err := mdwconfig.Load("leutils.toml")
	if err != nil {
		return err
	}

	format := cfg.GetString("output.format", "text")
	color := cfg.GetBool("output.color", true)

# Environment Variable Integration

Keys map to environment variables by upper-casing and replacing dots with
underscores. With prefix LEUTILS, "output.format" is read from
LEUTILS_OUTPUT_FORMAT. A set, non-empty variable takes precedence over the
file value.

# Discovery

	opts := mdwconfig.DefaultDiscoveryOptions("leutils")
	opts.Defaults = map[string]interface{}{
		"output": map[string]interface{}{"format": "text"},
	}
	cfg, err := mdwconfig.Discover(opts)

Discover searches ./leutils.toml, ./config.toml and the YAML variants, then
the same names in the user config directory. Without Required, a missing
file yields an empty configuration carrying the defaults.

# Validation

	result := cfg.Validate(mdwconfig.ValidationRules{
		"output.format": {Type: "string", OneOf: []string{"text", "json"}},
		"output.color":  {Type: "bool"},
	})
	if err := result.Err(); err != nil {
		return err
	}

Errors returned by this package are *mdwerror.Error values coded NOT_FOUND,
CONFIG_ERROR, INVALID_CONFIG or INVALID_FORMAT.
*/
package config
