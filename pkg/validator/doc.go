// Package validator provides field predicates and the validation error
// taxonomy shared by the rest of fieldkit.
//
// Two layers live here. The lower one is the Rule: a Check closure paired
// with a translation-friendly ValidationError, evaluated eagerly by Apply
// which collects failures into ValidationErrors. The upper one is the
// Validator interface, a reusable predicate over an untyped value that is
// attached once to a named field and shared by every record carrying it.
// Number and OneOf are built from the rule helpers (Between, InListString).
//
// # Error Kinds
//
// Every ValidationError produced by a Validator carries a Kind:
//
//   - KindType       – the value has the wrong dynamic type (ErrInvalidType)
//   - KindRange      – an integer lies outside [min, max] (ErrOutOfRange)
//   - KindMembership – a value is not one of the options (ErrNotInList)
//
// ValidationError unwraps to the matching sentinel, so callers can use
// errors.Is without inspecting fields:
//
//	err := validator.Number(2, 3).Validate(5)
//	if errors.Is(err, validator.ErrOutOfRange) {
//	    // ...
//	}
//
// # Integers
//
// Number accepts every Go signed and unsigned integer kind, named types
// included. Booleans and floating point values are rejected with KindType
// even when a float holds a whole number.
//
// # Translation
//
// TranslationKey and TranslationValues describe the failure independently of
// the English Message. TranslationArgs flattens the values into the key/value
// argument list accepted by i18n.Translator.T.
package validator
