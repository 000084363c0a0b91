// ============================================================================
// leutils - Command line utilities
// ============================================================================
//
// Package:     config
// Description: Typed configuration for the leutils CLI
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package config

import (
	"os"

	mdwconfig "github.com/msto63/leutils/foundation/core/config"
	mdwerror "github.com/msto63/leutils/foundation/core/error"
	mdwstringx "github.com/msto63/leutils/foundation/utils/stringx"
)

// AppName is used for config file discovery and the environment prefix
const AppName = "leutils"

// PathEnv names the environment variable that points at a config file
const PathEnv = "LEUTILS_CONFIG"

// Supported values
var (
	LogLevels     = []string{"trace", "debug", "info", "warn", "error"}
	LogFormats    = []string{"json", "text", "console", "logfmt"}
	OutputFormats = []string{"text", "json", "yaml", "toml", "msgpack"}
)

// Config holds the complete application configuration
type Config struct {
	Log         LogConfig         `toml:"log" yaml:"log" json:"log"`
	Output      OutputConfig      `toml:"output" yaml:"output" json:"output"`
	Interactive InteractiveConfig `toml:"interactive" yaml:"interactive" json:"interactive"`

	// Source is the file the configuration was read from, empty for defaults
	Source string `toml:"-" yaml:"-" json:"-"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" json:"level"`
	Format string `toml:"format" yaml:"format" json:"format"`
}

// OutputConfig holds settings for the tokenise command output
type OutputConfig struct {
	Format string `toml:"format" yaml:"format" json:"format"`
	Color  bool   `toml:"color" yaml:"color" json:"color"`
}

// InteractiveConfig holds settings for the interactive view
type InteractiveConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt" json:"prompt"`
	HistorySize int    `toml:"history_size" yaml:"history_size" json:"history_size"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
		Interactive: InteractiveConfig{
			Prompt:      "> ",
			HistorySize: 50,
		},
	}
}

// defaultsMap mirrors Default in the nested form the loader merges
func defaultsMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  d.Log.Level,
			"format": d.Log.Format,
		},
		"output": map[string]interface{}{
			"format": d.Output.Format,
			"color":  d.Output.Color,
		},
		"interactive": map[string]interface{}{
			"prompt":       d.Interactive.Prompt,
			"history_size": int64(d.Interactive.HistorySize),
		},
	}
}

// validationRules lists the constraints every source must satisfy
func validationRules() mdwconfig.ValidationRules {
	return mdwconfig.ValidationRules{
		"log.level":                {Type: "string", OneOf: LogLevels},
		"log.format":               {Type: "string", OneOf: LogFormats},
		"output.format":            {Type: "string", OneOf: OutputFormats},
		"output.color":             {Type: "bool"},
		"interactive.prompt":       {Type: "string"},
		"interactive.history_size": {Type: "int"},
	}
}

// Load reads the configuration. An explicit path must exist. Without one,
// LEUTILS_CONFIG is consulted, then the default locations are searched and
// a missing file falls back to defaults. LEUTILS_* environment variables
// override file values in every case.
func Load(path string) (*Config, error) {
	path = mdwstringx.FirstNonBlank(path, os.Getenv(PathEnv))

	var (
		src *mdwconfig.Config
		err error
	)

	if path != "" {
		src, err = mdwconfig.LoadWithOptions(os.ExpandEnv(path), mdwconfig.LoadOptions{
			Format:    mdwconfig.FormatAuto,
			EnvPrefix: AppName,
			Defaults:  defaultsMap(),
		})
	} else {
		opts := mdwconfig.DefaultDiscoveryOptions(AppName)
		opts.Defaults = defaultsMap()
		src, err = mdwconfig.Discover(opts)
	}
	if err != nil {
		return nil, err
	}

	return FromSource(src)
}

// FromSource validates a loaded configuration and converts it to Config
func FromSource(src *mdwconfig.Config) (*Config, error) {
	if err := src.Validate(validationRules()).Err(); err != nil {
		return nil, mdwerror.Wrap(err, "configuration rejected").
			WithOperation("config.FromSource").
			WithDetail("source", src.FilePath())
	}

	d := Default()
	cfg := &Config{
		Log: LogConfig{
			Level:  src.GetString("log.level", d.Log.Level),
			Format: src.GetString("log.format", d.Log.Format),
		},
		Output: OutputConfig{
			Format: src.GetString("output.format", d.Output.Format),
			Color:  src.GetBool("output.color", d.Output.Color),
		},
		Interactive: InteractiveConfig{
			Prompt:      src.GetString("interactive.prompt", d.Interactive.Prompt),
			HistorySize: src.GetInt("interactive.history_size", d.Interactive.HistorySize),
		},
		Source: src.FilePath(),
	}

	if cfg.Interactive.HistorySize < 0 {
		cfg.Interactive.HistorySize = 0
	}

	return cfg, nil
}
