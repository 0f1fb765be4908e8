// Package recipe defines BurgerRecipe, a record built from six validated
// fields:
//
//	buns     Number(2, 3)
//	cheese   Number(0, 2)
//	tomatoes Number(0, 3)
//	cutlets  Number(1, 3)
//	eggs     Number(0, 2)
//	sauce    OneOf("ketchup", "mayo", "burger")
//
// The field table is a package-level descriptor.Schema shared by every
// recipe; each recipe keeps its own values.
//
//	r, err := recipe.New(2, 1, 2, 1, 1, recipe.SauceKetchup)
//	if err != nil {
//	    // validator.ErrOutOfRange, validator.ErrNotInList, ...
//	}
//	if err := r.SetCheese(5); err != nil {
//	    // cheese still holds 1
//	}
//	err = r.Set("cutlets", "two") // validator.ErrInvalidType
package recipe
