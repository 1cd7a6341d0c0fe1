package stty

import "errors"

// Attribute model errors.
var (
	// ErrUnsupportedAttribute is returned when an attribute name is not in
	// the Catalog for this platform.
	ErrUnsupportedAttribute = errors.New("attribute unsupported on platform")

	// ErrInvalidType is returned when a value's shape does not match the
	// attribute's category.
	ErrInvalidType = errors.New("invalid value type for attribute")

	// ErrInvalidValue is returned when a value has the right shape but lies
	// outside the attribute's domain.
	ErrInvalidValue = errors.New("unsupported value for attribute")

	// ErrMalformedSnapshot is returned when snapshot data lacks the raw
	// terminal blocks.
	ErrMalformedSnapshot = errors.New("snapshot is missing raw terminal data")

	// ErrIncompleteSnapshot is returned when snapshot data lacks attributes
	// required on the current platform.
	ErrIncompleteSnapshot = errors.New("snapshot is missing required attributes")
)
