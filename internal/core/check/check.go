// Package check holds the argument validation helpers shared by the core
// types. Each helper returns a *ArgumentError wrapping one of the two
// sentinel kinds so callers can test with errors.Is.
package check

import (
	"cmp"
	"errors"
	"fmt"
)

var (
	// ErrArgumentBelowMinimum is returned when a value is smaller than its lower bound.
	ErrArgumentBelowMinimum = errors.New("argument below minimum")
	// ErrArgumentOutOfRange is returned when a value falls outside a closed interval.
	ErrArgumentOutOfRange = errors.New("argument out of range")
)

// ArgumentError describes a rejected argument.
type ArgumentError struct {
	Name    string
	Value   any
	Message string
	Kind    error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %s", e.Kind, e.Name, e.Value, e.Message)
}

func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

// NotLessThan fails with ErrArgumentBelowMinimum when value < min.
func NotLessThan[T cmp.Ordered](value, min T, name, message string) error {
	if value < min {
		return &ArgumentError{Name: name, Value: value, Message: message, Kind: ErrArgumentBelowMinimum}
	}
	return nil
}

// WithinRange fails with ErrArgumentOutOfRange when value is outside [min, max].
func WithinRange[T cmp.Ordered](value, min, max T, name, message string) error {
	if value < min || value > max {
		return &ArgumentError{Name: name, Value: value, Message: message, Kind: ErrArgumentOutOfRange}
	}
	return nil
}
