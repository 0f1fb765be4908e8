package recipe

import (
	"slices"

	"github.com/dmitrymomot/fieldkit/pkg/descriptor"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Field names of BurgerRecipe, in declaration order.
const (
	FieldBuns     = "buns"
	FieldCheese   = "cheese"
	FieldTomatoes = "tomatoes"
	FieldCutlets  = "cutlets"
	FieldEggs     = "eggs"
	FieldSauce    = "sauce"
)

// Allowed sauces.
const (
	SauceKetchup = "ketchup"
	SauceMayo    = "mayo"
	SauceBurger  = "burger"
)

var sauces = []string{SauceKetchup, SauceMayo, SauceBurger}

var burgerSchema = descriptor.MustDefine("BurgerRecipe",
	descriptor.Field(FieldBuns, validator.Number(2, 3)),
	descriptor.Field(FieldCheese, validator.Number(0, 2)),
	descriptor.Field(FieldTomatoes, validator.Number(0, 3)),
	descriptor.Field(FieldCutlets, validator.Number(1, 3)),
	descriptor.Field(FieldEggs, validator.Number(0, 2)),
	descriptor.Field(FieldSauce, validator.OneOf(sauces...)),
)

// BurgerRecipe is a record whose six fields are validated on every write.
// The zero value has no fields set; reading one returns
// descriptor.ErrAttributeNotFound.
//
// Use it through a pointer and duplicate it with Clone; a value copy shares
// storage with the original.
type BurgerRecipe struct {
	descriptor.Slots
}

// New builds a recipe, assigning each field through its validator in
// declaration order. It returns the first validation error and no recipe,
// so a partially built value never escapes.
func New(buns, cheese, tomatoes, cutlets, eggs int, sauce string) (*BurgerRecipe, error) {
	r := &BurgerRecipe{}
	if err := burgerSchema.Assign(r, buns, cheese, tomatoes, cutlets, eggs, sauce); err != nil {
		return nil, err
	}
	return r, nil
}

// Clone returns an independent copy of r.
func (r *BurgerRecipe) Clone() *BurgerRecipe {
	c := &BurgerRecipe{}
	c.CopyFrom(&r.Slots)
	return c
}

// Fields returns the field names in declaration order.
func Fields() []string { return burgerSchema.Names() }

// Sauces returns the allowed sauce values.
func Sauces() []string { return slices.Clone(sauces) }

// Get reads a field by name.
func (r *BurgerRecipe) Get(field string) (any, error) {
	return burgerSchema.Get(r, field)
}

// Set validates value and writes it to the named field.
// Unlike the typed setters it accepts any value, so type errors surface here.
func (r *BurgerRecipe) Set(field string, value any) error {
	return burgerSchema.Set(r, field, value)
}

// IsSet reports whether the named field holds a value.
func (r *BurgerRecipe) IsSet(field string) bool {
	return burgerSchema.IsSet(r, field)
}

// Typed accessors. Getters return descriptor.ErrAttributeNotFound for a field
// that was never set; setters validate like Set and leave the field unchanged
// on error.
func (r *BurgerRecipe) Buns() (int, error)     { return r.count(FieldBuns) }
func (r *BurgerRecipe) Cheese() (int, error)   { return r.count(FieldCheese) }
func (r *BurgerRecipe) Tomatoes() (int, error) { return r.count(FieldTomatoes) }
func (r *BurgerRecipe) Cutlets() (int, error)  { return r.count(FieldCutlets) }
func (r *BurgerRecipe) Eggs() (int, error)     { return r.count(FieldEggs) }

func (r *BurgerRecipe) Sauce() (string, error) {
	v, err := r.Get(FieldSauce)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (r *BurgerRecipe) SetBuns(n int) error     { return r.Set(FieldBuns, n) }
func (r *BurgerRecipe) SetCheese(n int) error   { return r.Set(FieldCheese, n) }
func (r *BurgerRecipe) SetTomatoes(n int) error { return r.Set(FieldTomatoes, n) }
func (r *BurgerRecipe) SetCutlets(n int) error  { return r.Set(FieldCutlets, n) }
func (r *BurgerRecipe) SetEggs(n int) error     { return r.Set(FieldEggs, n) }
func (r *BurgerRecipe) SetSauce(s string) error { return r.Set(FieldSauce, s) }

// count reads an integer field. Stored values already passed validator.Number,
// so any integer kind fits in int.
func (r *BurgerRecipe) count(field string) (int, error) {
	v, err := r.Get(field)
	if err != nil {
		return 0, err
	}
	n, _ := validator.AsInt64(v)
	return int(n), nil
}
