package donut

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every *ConfigurationError.
	ErrInvalidConfig = errors.New("donut: invalid configuration")

	// ErrDegenerateVector is matched by every *DegenerateVectorError.
	ErrDegenerateVector = errors.New("donut: degenerate vector")
)

// ConfigurationError reports a configuration value rejected at construction,
// before any rendering work is done.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrInvalidConfig }

func configErr(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// DegenerateVectorError reports an attempt to normalize a vector without a
// direction.
type DegenerateVectorError struct {
	Vector Vec3
}

func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("%v: cannot normalize %v", ErrDegenerateVector, e.Vector)
}

func (e *DegenerateVectorError) Unwrap() error { return ErrDegenerateVector }
