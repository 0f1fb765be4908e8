package validator

import (
	"fmt"
	"slices"
	"strings"
)

// InList validates that value is one of allowedValues.
// The error carries its own copy of allowedValues.
func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           KindMembership,
			Message:        fmt.Sprintf("must be one of: %v", allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": slices.Clone(allowedValues),
			},
		},
	}
}

// InListString is InList with the options listed comma-separated in the message.
func InListString(field, value string, allowedValues []string) Rule {
	r := InList(field, value, allowedValues)
	r.Error.Message = fmt.Sprintf("must be one of: %s", strings.Join(allowedValues, ", "))
	return r
}
