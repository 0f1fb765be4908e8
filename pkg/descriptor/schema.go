package descriptor

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Declaration is one argument to Define: a field (Attr) or an Option.
type Declaration interface {
	declare(s *Schema) error
}

// Attr declares a named field enforced by a descriptor.
type Attr struct {
	Name       string
	Descriptor *Descriptor
}

// Field declares a field name validated by v.
func Field(name string, v validator.Validator) Attr {
	return Attr{Name: name, Descriptor: New(v)}
}

func (a Attr) declare(s *Schema) error {
	if a.Descriptor == nil {
		return fmt.Errorf("%w: %s", ErrNilValidator, a.Name)
	}
	if _, ok := s.fields[a.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateField, a.Name)
	}
	if err := a.Descriptor.Bind(s.owner, a.Name); err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}
	s.fields[a.Name] = a.Descriptor
	s.order = append(s.order, a.Name)
	return nil
}

// Option configures a Schema.
type Option func(*Schema)

func (o Option) declare(s *Schema) error {
	if o != nil {
		o(s)
	}
	return nil
}

// WithLogger sets the logger used by every descriptor of the schema.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Schema) {
		if l != nil {
			s.logger = l
		}
	}
}

// Schema is the field table of one owner type: public name to descriptor,
// in declaration order. It is built once, usually in a package-level var,
// and is read-only afterwards.
type Schema struct {
	owner  string
	order  []string
	fields map[string]*Descriptor
	logger *slog.Logger
}

// Define binds every declared field to owner and returns the schema.
func Define(owner string, decls ...Declaration) (*Schema, error) {
	if owner == "" {
		return nil, fmt.Errorf("descriptor: define: %w: owner", ErrEmptyName)
	}

	s := &Schema{
		owner:  owner,
		fields: make(map[string]*Descriptor, len(decls)),
	}
	for _, d := range decls {
		if d == nil {
			continue
		}
		if err := d.declare(s); err != nil {
			return nil, fmt.Errorf("descriptor: define %s: %w", owner, err)
		}
	}

	if s.logger != nil {
		for _, d := range s.fields {
			d.SetLogger(s.logger)
		}
	}
	return s, nil
}

// MustDefine is like Define but panics on error.
// Intended for package-level schema variables.
func MustDefine(owner string, decls ...Declaration) *Schema {
	s, err := Define(owner, decls...)
	if err != nil {
		panic(err)
	}
	return s
}

// Owner returns the owner type name the schema was defined for.
func (s *Schema) Owner() string { return s.owner }

// Names returns the field names in declaration order.
func (s *Schema) Names() []string { return slices.Clone(s.order) }

// Descriptor returns the descriptor bound to name.
func (s *Schema) Descriptor(name string) (*Descriptor, bool) {
	d, ok := s.fields[name]
	return d, ok
}

// Get reads field name from o.
func (s *Schema) Get(o Owner, name string) (any, error) {
	d, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return d.Read(o)
}

// Set validates value and writes it to field name of o.
func (s *Schema) Set(o Owner, name string, value any) error {
	d, err := s.lookup(name)
	if err != nil {
		return err
	}
	return d.Write(o, value)
}

// IsSet reports whether field name holds a value on o.
func (s *Schema) IsSet(o Owner, name string) bool {
	d, ok := s.fields[name]
	return ok && d.IsSet(o)
}

// Assign writes values to the fields in declaration order and stops at the
// first failure. Fields written before the failing one keep their new values.
func (s *Schema) Assign(o Owner, values ...any) error {
	if len(values) != len(s.order) {
		return fmt.Errorf("%w: %s has %d fields, got %d values", ErrFieldCount, s.owner, len(s.order), len(values))
	}
	for i, name := range s.order {
		if err := s.fields[name].Write(o, values[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) lookup(name string) (*Descriptor, error) {
	d, ok := s.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, s.owner, name)
	}
	return d, nil
}
