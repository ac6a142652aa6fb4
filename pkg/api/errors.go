package api

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyID is returned when an operation addressing a single resource
	// receives an empty id.
	ErrEmptyID = errors.New("empty id")

	// ErrIDTooLong is returned when an id is longer than MaxIDLength.
	ErrIDTooLong = fmt.Errorf("id longer than %d characters", MaxIDLength)

	// ErrNilParams is returned when a create operation is sent without its
	// parameter record. Other operations treat a nil record as empty.
	ErrNilParams = errors.New("nil params")
)

// MissingFieldError is returned when a required field is absent, either from
// a decoded response or from a request record being serialized.
type MissingFieldError struct {
	// Path locates the field, e.g. "custom_fields[0].label.type".
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %s", e.Path)
}

// TypeMismatchError is returned when the JSON shape of a response field
// disagrees with the record it is decoded into.
type TypeMismatchError struct {
	Path     string
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
	}
	return fmt.Sprintf("type mismatch at %s: expected %s, got %s", e.Path, e.Expected, e.Got)
}
