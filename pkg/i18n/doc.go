// Package i18n translates message keys into localized strings. fieldkit uses
// it to render validation failures in the caller's language.
//
// Translations are nested maps keyed by language and loaded through a
// TranslationAdapter: MapAdapter for in-memory data, FSAdapter for a
// directory of YAML files in any fs.FS (typically an embed.FS).
//
//	//go:embed locales
//	var locales embed.FS
//
//	tr, err := i18n.NewTranslator(ctx,
//	    i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
//	    i18n.WithDefaultLanguage("en"),
//	)
//	msg := tr.T("es", "validation.between", "field", "buns", "min", "2", "max", "3")
//
// Keys use dot notation to walk nested maps. Placeholders have the form
// %{name}; unknown placeholders are left in place.
//
// MatchLanguage maps a requested tag such as "es-MX" onto the closest loaded
// language using golang.org/x/text/language. SetLocale and LocaleFromContext
// carry the chosen language through context.Context.
//
// Translator is safe for concurrent use.
package i18n
