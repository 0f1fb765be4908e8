package app

import (
	"context"
	"embed"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/fieldkit/pkg/environment"
	"github.com/dmitrymomot/fieldkit/pkg/i18n"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

//go:embed locales/*.yaml
var locales embed.FS

// App bundles the logger and translator configured from Config.
type App struct {
	cfg        Config
	logger     *slog.Logger
	translator *i18n.Translator
	lang       string
}

// New builds the logger, installs it as the slog default so descriptors log
// through it, and loads the message catalogs.
func New(ctx context.Context, cfg Config, opts ...Option) (*App, error) {
	o := &options{locales: locales, dir: "locales"}
	for _, opt := range opts {
		opt(o)
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevel(cfg.LogLevel),
		logger.WithContextExtractors(localeExtractor),
		logger.WithOutput(o.output),
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		logOpts = append(logOpts, logger.WithFormat(format))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	ctx = environment.WithContext(ctx, cfg.Env)

	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), o.locales, o.dir)
	tr, err := i18n.NewTranslator(ctx, adapter,
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithLogger(log.With(logger.Component("i18n"))),
		i18n.WithMissingTranslationsLogging(!environment.IsProduction(ctx)),
	)
	if err != nil {
		return nil, errors.Join(ErrTranslationsLoad, err)
	}

	a := &App{cfg: cfg, logger: log, translator: tr}
	a.lang = i18n.MatchLanguage(cfg.Language, tr.SupportedLanguages(), tr.DefaultLanguage())

	log.DebugContext(ctx, "application initialized",
		logger.Event("app.init"),
		slog.String("language", a.lang),
	)
	return a, nil
}

func (a *App) Config() Config               { return a.cfg }
func (a *App) Logger() *slog.Logger         { return a.logger }
func (a *App) Translator() *i18n.Translator { return a.translator }

// Language returns the configured language resolved against the loaded
// catalogs.
func (a *App) Language() string { return a.lang }

func localeExtractor(ctx context.Context) (slog.Attr, bool) {
	if locale, ok := i18n.LocaleFromContext(ctx); ok {
		return slog.String("locale", locale), true
	}
	return slog.Attr{}, false
}
