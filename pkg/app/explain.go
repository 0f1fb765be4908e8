package app

import (
	"context"
	"errors"

	"github.com/dmitrymomot/fieldkit/pkg/descriptor"
	"github.com/dmitrymomot/fieldkit/pkg/i18n"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

const keyAttributeNotFound = "attribute.not_found"

// Explain renders err as human-readable messages in the language of ctx
// (see i18n.SetLocale), falling back to the configured language. Validation
// failures yield one message per failed field; errors without a catalog
// entry are rendered with Error().
func (a *App) Explain(ctx context.Context, err error) []string {
	if err == nil {
		return nil
	}
	lang := a.languageFor(ctx)

	var attrErr *descriptor.AttributeError
	if errors.As(err, &attrErr) {
		return []string{a.translator.Td(lang, keyAttributeNotFound, attrErr.Error(),
			"owner", attrErr.Owner,
			"field", attrErr.Name,
		)}
	}

	if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			if e.TranslationKey == "" {
				msgs = append(msgs, e.Error())
				continue
			}
			msgs = append(msgs, a.translator.Td(lang, e.TranslationKey, e.Error(), e.TranslationArgs()...))
		}
		return msgs
	}

	return []string{err.Error()}
}

func (a *App) languageFor(ctx context.Context) string {
	if locale, ok := i18n.LocaleFromContext(ctx); ok {
		return i18n.MatchLanguage(locale, a.translator.SupportedLanguages(), a.lang)
	}
	return a.lang
}
