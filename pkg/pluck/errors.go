// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pluck

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every configuration error returned from this
// package. Use errors.Is to tell a rejected configuration apart from a valid
// but empty result.
var ErrInvalidConfig = errors.New("pluck: invalid configuration")

// ConfigError describes why a selector or configuration was rejected.
type ConfigError struct {
	// Option names the offending setting (e.g. "mode", "joiner", "selector").
	Option string

	// Reason is a human-readable explanation.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("pluck: invalid %s: %s", e.Option, e.Reason)
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func configErr(option, format string, args ...any) error {
	return &ConfigError{Option: option, Reason: fmt.Sprintf(format, args...)}
}
