package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrConfiguration covers every invalid-parameter failure. Configuration
	// errors are raised synchronously at construction time, never during
	// evaluation: for a validated configuration, evaluation is total.
	ErrConfiguration = errors.New("invalid configuration")

	ErrUnknownVariant      = fmt.Errorf("%w: unknown noise variant", ErrConfiguration)
	ErrUnsupportedIn3D     = fmt.Errorf("%w: variant not defined in three dimensions", ErrConfiguration)
	ErrTileSizeNotPowerOf2 = fmt.Errorf("%w: tile size must be a power of two", ErrConfiguration)
)

// NewConfigError reports an out-of-range or malformed parameter.
func NewConfigError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrConfiguration, field, reason)
}

// NewConfigValueError reports a parameter together with the offending value.
func NewConfigValueError(field string, value interface{}, reason string) error {
	return fmt.Errorf("%w: %s = %v: %s", ErrConfiguration, field, value, reason)
}

// IsConfigurationError reports whether err came from config validation.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
