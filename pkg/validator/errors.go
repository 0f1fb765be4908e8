package validator

import "errors"

// Sentinels matched by ValidationError.Unwrap.
var (
	// ErrValidationFailed is returned when validation fails but no specific kind applies.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidType is returned when a value has the wrong type for the field.
	ErrInvalidType = errors.New("invalid type")

	// ErrOutOfRange is returned when a numeric value is out of the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotInList is returned when a value is not among the allowed options.
	ErrNotInList = errors.New("value not among allowed options")
)
