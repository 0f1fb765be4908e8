package app

import (
	"io"
	"io/fs"
)

// Option configures New.
type Option func(*options)

type options struct {
	output  io.Writer
	locales fs.FS
	dir     string
}

// WithOutput sends log output to w instead of stdout. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithLocales replaces the built-in message catalogs with the YAML files in
// dir of fsys.
func WithLocales(fsys fs.FS, dir string) Option {
	return func(o *options) {
		if fsys != nil {
			o.locales = fsys
			o.dir = dir
		}
	}
}
