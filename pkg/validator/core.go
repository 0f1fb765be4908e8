package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Kind classifies why a value was rejected.
type Kind string

const (
	// KindType means the value has the wrong dynamic type for the field.
	KindType Kind = "type"
	// KindRange means a numeric value lies outside the configured bounds.
	KindRange Kind = "range"
	// KindMembership means a value is not among the allowed options.
	KindMembership Kind = "membership"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Kind              Kind
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap maps the error kind to its sentinel so errors.Is(err, ErrOutOfRange) works.
func (e ValidationError) Unwrap() error {
	switch e.Kind {
	case KindType:
		return ErrInvalidType
	case KindRange:
		return ErrOutOfRange
	case KindMembership:
		return ErrNotInList
	default:
		return ErrValidationFailed
	}
}

// WithField returns a copy of the error attributed to field.
// TranslationValues is copied so the receiver stays untouched.
func (e ValidationError) WithField(field string) ValidationError {
	values := make(map[string]any, len(e.TranslationValues)+1)
	for k, v := range e.TranslationValues {
		values[k] = v
	}
	values["field"] = field
	e.Field = field
	e.TranslationValues = values
	return e
}

// TranslationArgs flattens TranslationValues into sorted key/value string pairs,
// the argument shape expected by i18n.Translator.T.
// String slices are joined with ", ".
func (e ValidationError) TranslationArgs() []string {
	keys := make([]string, 0, len(e.TranslationValues))
	for k := range e.TranslationValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		var s string
		switch v := e.TranslationValues[k].(type) {
		case []string:
			s = strings.Join(v, ", ")
		case string:
			s = v
		default:
			s = fmt.Sprint(v)
		}
		args = append(args, k, s)
	}
	return args
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errors = append(errors, rule.Error)
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

// ExtractValidationErrors extracts validation errors from err.
// A lone ValidationError is returned as a single-element collection.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var many ValidationErrors
	if errors.As(err, &many) {
		return many
	}

	var one ValidationError
	if errors.As(err, &one) {
		return ValidationErrors{one}
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
