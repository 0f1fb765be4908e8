package validator

import (
	"math"
	"reflect"
	"slices"
)

// Validator is a reusable predicate attached to a field.
// Validate returns nil when value is acceptable and a ValidationError otherwise.
// Implementations must not keep per-value state: one instance is shared by every
// record that carries the field.
type Validator interface {
	Validate(value any) error
}

// Func adapts an ordinary function to the Validator interface.
type Func func(value any) error

func (f Func) Validate(value any) error { return f(value) }

// NumberValidator accepts integers within an inclusive range.
type NumberValidator struct {
	min, max int
}

// Number returns a validator for integers in [min, max].
// min <= max is the caller's responsibility.
func Number(min, max int) *NumberValidator {
	return &NumberValidator{min: min, max: max}
}

func (n *NumberValidator) Min() int { return n.min }
func (n *NumberValidator) Max() int { return n.max }

// Validate rejects non-integers with KindType and integers outside the bounds with KindRange.
// Booleans and floats are not integers, even when a float holds a whole number.
// A bound at math.MinInt or math.MaxInt is reported as open, so Number(1, math.MaxInt)
// fails with "must be at least 1".
func (n *NumberValidator) Validate(value any) error {
	v, ok := AsInt64(value)
	if !ok {
		if !isUnsigned(value) {
			return ValidationError{
				Kind:           KindType,
				Message:        "should be integer",
				TranslationKey: "validation.integer",
				TranslationValues: map[string]any{
					"type": typeName(value),
				},
			}
		}
		// an unsigned value that overflows int64 is above any int bound
		return MaxNum("", v, int64(n.max)).Error
	}

	if r := n.rule(v); !r.Check() {
		return r.Error
	}
	return nil
}

func (n *NumberValidator) rule(v int64) Rule {
	switch {
	case n.min == math.MinInt && n.max != math.MaxInt:
		return MaxNum("", v, int64(n.max))
	case n.min != math.MinInt && n.max == math.MaxInt:
		return MinNum("", v, int64(n.min))
	default:
		return Between("", v, int64(n.min), int64(n.max))
	}
}

// OneOfValidator accepts strings from a fixed set of options.
type OneOfValidator struct {
	options []string
}

// OneOf returns a validator accepting exactly the given options.
// The options are copied; their order is kept for error messages.
func OneOf(options ...string) *OneOfValidator {
	return &OneOfValidator{options: slices.Clone(options)}
}

// Options returns a copy of the allowed values.
func (o *OneOfValidator) Options() []string { return slices.Clone(o.options) }

// Validate rejects anything that is not exactly one of the options with KindMembership.
func (o *OneOfValidator) Validate(value any) error {
	s, ok := value.(string)
	r := InListString("", s, o.options)
	if ok && r.Check() {
		return nil
	}
	err := r.Error
	err.TranslationValues["value"] = value
	return err
}

// AsInt64 reports the value of any Go integer kind as int64.
// It returns false for non-integers, booleans included, and for unsigned values
// that overflow int64.
func AsInt64(value any) (int64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	default:
		return 0, false
	}
}

func isUnsigned(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}
