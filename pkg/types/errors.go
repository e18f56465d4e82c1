package types

import (
	"errors"
	"fmt"
)

// ErrInvalidType is returned when a declared element or value type is unrecognized
// or does not name a registered class.
var ErrInvalidType = errors.New("invalid type")

// ErrInvalidKeyType is returned when a declared key type is not integer or string.
var ErrInvalidKeyType = errors.New("invalid key type")

// ErrTypeMismatch is returned when a value does not satisfy a declared type.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrKeyTypeMismatch is returned when a key does not satisfy a declared key type.
var ErrKeyTypeMismatch = errors.New("key type mismatch")

// ErrIndexOutOfRange is returned when a sequence index is outside [0, len).
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrUnsupportedType is returned when the type of a runtime value cannot be inferred.
var ErrUnsupportedType = errors.New("unsupported type")

// MismatchError represents a single value (or key) that failed validation.
type MismatchError struct {
	Expected Type // Declared type the value was checked against
	Value    any  // The offending value
	Key      bool // True when the value was checked as a key
}

func (e *MismatchError) Error() string {
	what := "value"
	if e.Key {
		what = "key"
	}
	if e.Value == nil {
		return fmt.Sprintf("%s is not of type %s (got nil)", what, e.Expected.Name())
	}
	return fmt.Sprintf("%s is not of type %s (got %T)", what, e.Expected.Name(), e.Value)
}

func (e *MismatchError) Unwrap() error {
	if e.Key {
		return ErrKeyTypeMismatch
	}
	return ErrTypeMismatch
}

// Mismatch returns the MismatchError carried by err, if any.
func Mismatch(err error) (*MismatchError, bool) {
	var m *MismatchError
	if errors.As(err, &m) {
		return m, true
	}
	return nil, false
}
