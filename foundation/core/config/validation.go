// File: validation.go
// Title: Configuration Validation Implementation
// Description: Rule based validation of configuration values, covering
//              presence, type and allowed values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation and struct binding
// - 2025-03-02 v0.2.0: Replaced bounds and pattern checks with allowed values

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/leutils/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // Expected type: "string", "bool" or "int"
	OneOf    []string // Allowed values, compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns nil for a valid result, otherwise an error carrying every
// violation as detail
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	message := "invalid configuration: " + strings.Join(r.Errors, "; ")
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("violations", r.Errors)
}

// Validate validates the configuration against the provided rules. Values
// from environment overrides are validated the same way as file values.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Errors: make([]string, 0),
	}

	// Sorted keys keep the error order stable
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// validateField validates a single configuration field
func (c *Config) validateField(key string, rule ValidationRule) error {
	c.mu.RLock()
	value := c.getValue(key)
	envValue, fromEnv := c.lookupEnv(key)
	c.mu.RUnlock()

	if fromEnv {
		value = envValue
	}

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if len(rule.OneOf) > 0 {
		text := fmt.Sprintf("%v", value)
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(text, allowed) {
				return nil
			}
		}
		return fmt.Errorf("field '%s' has value '%s', expected one of: %s",
			key, text, strings.Join(rule.OneOf, ", "))
	}

	return nil
}

// validateType validates the type of a configuration value. Strings are
// accepted for bool and int when they parse, since environment overrides
// are always strings.
func validateType(key string, value interface{}, expectedType string) error {
	ok := false

	switch expectedType {
	case "string":
		_, ok = value.(string)
	case "bool":
		switch v := value.(type) {
		case bool:
			ok = true
		case string:
			_, err := strconv.ParseBool(v)
			ok = err == nil
		}
	case "int":
		switch v := value.(type) {
		case int, int64:
			ok = true
		case string:
			_, err := strconv.Atoi(v)
			ok = err == nil
		}
	default:
		return fmt.Errorf("field '%s' uses unsupported rule type '%s'", key, expectedType)
	}

	if !ok {
		return fmt.Errorf("field '%s' should be of type %s, got %T", key, expectedType, value)
	}
	return nil
}
