package descriptor

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// KeyPrefix is prepended to a field name to form its storage key.
const KeyPrefix = "_"

// StorageKey derives the hidden slot key for a public field name.
func StorageKey(name string) string { return KeyPrefix + name }

// Descriptor binds a validator to one named field of an owner type and
// routes every read and write of that field through it.
// A descriptor holds configuration only; values live in each owner's Slots.
type Descriptor struct {
	validator validator.Validator
	owner     string
	name      string
	key       string
	logger    *slog.Logger
}

// New returns an unbound descriptor enforcing v.
func New(v validator.Validator) *Descriptor {
	return &Descriptor{validator: v}
}

// Bind attaches the descriptor to field name of owner and fixes its storage key.
// Binding again to the same owner and name is a no-op.
func (d *Descriptor) Bind(owner, name string) error {
	if d.validator == nil {
		return ErrNilValidator
	}
	if name == "" {
		return ErrEmptyName
	}
	if d.key != "" {
		if d.owner == owner && d.name == name {
			return nil
		}
		return fmt.Errorf("%w: %s.%s", ErrAlreadyBound, d.owner, d.name)
	}

	d.owner = owner
	d.name = name
	d.key = StorageKey(name)
	return nil
}

// Read returns the value last written to the field on o.
func (d *Descriptor) Read(o Owner) (any, error) {
	if d.key == "" {
		return nil, ErrNotBound
	}
	slots, err := slotsOf(o)
	if err != nil {
		return nil, err
	}

	v, ok := slots.load(d.key)
	if !ok {
		return nil, &AttributeError{Owner: d.owner, Name: d.name, Key: d.key}
	}
	return v, nil
}

// Write validates value and stores it on o.
// When validation fails the slot is left exactly as it was, unset included,
// and the validation error is returned attributed to this field.
func (d *Descriptor) Write(o Owner, value any) error {
	if d.key == "" {
		return ErrNotBound
	}
	slots, err := slotsOf(o)
	if err != nil {
		return err
	}

	if err := d.validator.Validate(value); err != nil {
		err = d.annotate(err)
		attrs := []any{
			logger.Component("descriptor"),
			logger.Owner(d.owner),
			logger.Field(d.name),
			logger.Value(value),
			logger.Error(err),
		}
		var ve validator.ValidationError
		if errors.As(err, &ve) {
			attrs = append(attrs, logger.Kind(string(ve.Kind)))
		}
		d.log().Debug("field write rejected", attrs...)
		return err
	}

	slots.store(d.key, value)
	return nil
}

// IsSet reports whether the field holds a value on o.
func (d *Descriptor) IsSet(o Owner) bool {
	if d.key == "" {
		return false
	}
	slots, err := slotsOf(o)
	if err != nil {
		return false
	}
	_, ok := slots.load(d.key)
	return ok
}

func (d *Descriptor) Name() string                   { return d.name }
func (d *Descriptor) Key() string                    { return d.key }
func (d *Descriptor) Owner() string                  { return d.owner }
func (d *Descriptor) Validator() validator.Validator { return d.validator }

// SetLogger routes rejected-write diagnostics to l instead of slog.Default.
func (d *Descriptor) SetLogger(l *slog.Logger) {
	d.logger = l
}

func (d *Descriptor) log() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return slog.Default()
}

func (d *Descriptor) annotate(err error) error {
	var ve validator.ValidationError
	if errors.As(err, &ve) {
		return ve.WithField(d.name)
	}
	return fmt.Errorf("%s.%s: %w", d.owner, d.name, err)
}

func slotsOf(o Owner) (*Slots, error) {
	if o == nil {
		return nil, ErrNilOwner
	}
	if rv := reflect.ValueOf(o); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, ErrNilOwner
	}
	slots := o.slots()
	if slots == nil {
		return nil, ErrNilOwner
	}
	return slots, nil
}
