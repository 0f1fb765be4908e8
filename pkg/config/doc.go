// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for .env files:
//
//	type Config struct {
//	    Env      string     `env:"APP_ENV" envDefault:"development"`
//	    LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil { // optional
//	    return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Each configuration type is parsed once and cached for the life of the
// process. ForceReloadConfig and ResetCache exist for tests and for code
// that changes the environment at runtime.
//
// Errors can be matched with errors.Is: ErrParsingConfig,
// ErrInvalidConfigType, ErrNilPointer, ErrLoadingEnvFile.
package config
