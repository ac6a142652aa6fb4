package enum

import "fmt"

// DecodeError is returned when a closed enum receives a wire string it does
// not declare.
type DecodeError struct {
	// Enum is the name of the enum set.
	Enum string

	// Value is the offending wire string.
	Value string

	// Path locates the field in the decoded document, if known.
	Path string
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("enum %s: unknown value %q at %s", e.Enum, e.Value, e.Path)
	}
	return fmt.Sprintf("enum %s: unknown value %q", e.Enum, e.Value)
}

// UnsupportedVariantError is returned when a value an enum does not declare
// is serialized into a request. For open enums this is the Unknown variant.
type UnsupportedVariantError struct {
	Enum  string
	Value string
	Path  string
}

func (e *UnsupportedVariantError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("enum %s: value %q at %s cannot be sent in a request", e.Enum, e.Value, e.Path)
	}
	return fmt.Sprintf("enum %s: value %q cannot be sent in a request", e.Enum, e.Value)
}
