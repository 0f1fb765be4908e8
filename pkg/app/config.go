package app

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/fieldkit/pkg/config"
)

// Config holds process-level settings read from the environment.
type Config struct {
	Env       string     `env:"APP_ENV" envDefault:"development"`
	Name      string     `env:"APP_NAME" envDefault:"fieldkit"`
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"LOG_FORMAT"` // json or text; empty keeps the environment preset
	Language  string     `env:"APP_LANGUAGE" envDefault:"en"`
}

// Load reads Config from the environment, including a ./.env file if present.
func Load(ctx context.Context) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
