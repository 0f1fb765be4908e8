// Package descriptor implements the field binding protocol: a Descriptor
// ties one validator.Validator to one named field of an owner type and
// intercepts every read and write of that field.
//
// # Protocol
//
//   - Bind(owner, name) fixes the field name and derives the hidden storage
//     key ("buns" -> "_buns"). It runs once, when the owner type is defined.
//   - Read(o) returns the stored value or an *AttributeError matching
//     ErrAttributeNotFound when the field was never written on o.
//   - Write(o, v) runs the validator and stores v only if it passes. A failed
//     write leaves the slot untouched and returns a validator.ValidationError
//     carrying the field name.
//
// Values live in Slots, which owners embed. Slots has no exported mutators,
// so the descriptor write path is the only way to change a stored value.
//
// # Schema
//
// A Schema is the per-type field table, defined once in a package-level
// variable and shared by every instance of the owner:
//
//	var schema = descriptor.MustDefine("BurgerRecipe",
//	    descriptor.Field("buns", validator.Number(2, 3)),
//	    descriptor.Field("sauce", validator.OneOf("ketchup", "mayo", "burger")),
//	)
//
//	type BurgerRecipe struct {
//	    descriptor.Slots
//	}
//
//	err := schema.Set(r, "buns", 5) // validator.ErrOutOfRange, r unchanged
//
// Field names are unique within a schema and keys are derived by prefixing,
// so two fields never share a slot.
//
// # Logging
//
// Rejected writes are logged at debug level through slog.Default, or through
// the logger given with WithLogger.
package descriptor
