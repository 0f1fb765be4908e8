package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed copy per configuration type.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	globalCache      = &cache{values: make(map[reflect.Type]any)}
	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v according to its `env` tags.
// The first call for a type parses and caches the result; later calls for
// the same type copy the cached value. The default .env file, when present,
// is loaded once before the first parse and never overrides variables that
// are already set. Failed parses are not cached.
//
//	type Config struct {
//		Env      string     `env:"APP_ENV" envDefault:"development"`
//		LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(v).Elem()
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s is not a struct", ErrInvalidConfigType, typ)
	}

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[typ]; ok {
		*v = cached.(T)
		return nil
	}
	return parse(typ, v)
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig parses v again, replacing any cached copy.
// Useful after the process environment changed.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	typ := reflect.TypeOf(v).Elem()
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s is not a struct", ErrInvalidConfigType, typ)
	}

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	delete(globalCache.values, typ)
	return parse(typ, v)
}

// ResetCache drops every cached configuration.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	clear(globalCache.values)
}

// LoadEnv loads variables from the given .env files; later files override
// earlier ones and the current environment. Without paths it loads ./.env
// without overriding variables that are already set.
func LoadEnv(paths ...string) error {
	var err error
	if len(paths) == 0 {
		err = godotenv.Load()
	} else {
		err = godotenv.Overload(paths...)
	}
	if err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

// parse must be called with globalCache.mu held.
func parse[T any](typ reflect.Type, v *T) error {
	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	globalCache.values[typ] = parsed
	*v = parsed
	return nil
}
