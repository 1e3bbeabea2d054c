package arraypq

import (
	"errors"
	"fmt"
)

var (
	// ErrConcurrentModification is returned by an Iterator when the queue it
	// traverses was structurally modified after the Iterator was created.
	ErrConcurrentModification = errors.New("arraypq: queue modified during iteration")

	// ErrNoMoreElements is returned by Iterator.Next when the traversal is exhausted.
	ErrNoMoreElements = errors.New("arraypq: no more elements")

	// ErrUnsupportedOperation is returned by Iterator.Remove.
	ErrUnsupportedOperation = errors.New("arraypq: operation not supported")
)

// ConfigError represents an error in configuration parameters
type ConfigError struct {
	// Field is the name of the configuration field that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %s", e.Field, e.Value, e.Reason)
}

// NewConfigError creates a ConfigError
func NewConfigError(field string, value interface{}, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}
