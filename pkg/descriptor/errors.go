package descriptor

import (
	"errors"
	"fmt"
)

var (
	// ErrAttributeNotFound is returned when a field is read before any successful write.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrNotBound is returned when a descriptor is used before Bind.
	ErrNotBound = errors.New("descriptor is not bound to a field")

	// ErrAlreadyBound is returned when a descriptor is bound to a second field.
	ErrAlreadyBound = errors.New("descriptor is already bound to another field")

	// ErrEmptyName is returned when binding to an empty field name.
	ErrEmptyName = errors.New("field name is empty")

	// ErrNilValidator is returned when a field is declared without a validator.
	ErrNilValidator = errors.New("validator is nil")

	// ErrNilOwner is returned when reading or writing a nil owner.
	ErrNilOwner = errors.New("owner is nil")

	// ErrDuplicateField is returned when a schema declares the same field twice.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrFieldCount is returned when Assign gets a different number of values than fields.
	ErrFieldCount = errors.New("value count does not match field count")

	// ErrUnknownField is returned when a schema has no field with the given name.
	ErrUnknownField = errors.New("unknown field")
)

// AttributeError reports a read of a slot that was never written.
type AttributeError struct {
	Owner string
	Name  string
	Key   string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Owner, e.Name, ErrAttributeNotFound)
}

func (e *AttributeError) Unwrap() error { return ErrAttributeNotFound }
