package app

import "errors"

var (
	ErrInvalidConfig    = errors.New("app: invalid configuration")
	ErrTranslationsLoad = errors.New("app: failed to load translations")
)
