package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Translator resolves dotted keys to localized templates and fills in
// %{name} placeholders.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads translations from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, entries := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if entries == nil {
			return nil, fmt.Errorf("%w: nil translations for %q", ErrInvalidTranslations, lang)
		}
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

// DefaultLanguage returns the language used when none is requested.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation reports whether key resolves to a value for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(langMap, key)
	return ok
}

// T translates key for lang. args are key/value pairs substituted into
// %{key} placeholders; a trailing odd argument is ignored.
// An empty lang means the default language. Missing translations return the
// key itself when fallback to key is enabled, and "" otherwise.
//
//	// "validation.between": "%{field} must be within [%{min}, %{max}]"
//	t.T("en", "validation.between", "field", "buns", "min", "2", "max", "3")
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return substitute(s, args)
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td is like T but returns defaultValue when key cannot be resolved.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return substitute(s, args)
	}
	return substitute(defaultValue, args)
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	if lang == "" {
		lang = t.defaultLang
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		t.missing("language not supported", lang, key)
		return "", false
	}
	val, ok := lookup(langMap, key)
	if !ok {
		t.missing("translation not found", lang, key)
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		t.missing("translation is not a string", lang, key)
		return "", false
	}
}

func (t *Translator) missing(msg, lang, key string) {
	if t.missingLogMode {
		t.logger.Warn(msg, "lang", lang, "key", key)
	}
}

// lookup traverses nested maps using a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}

		switch nm := next.(type) {
		case map[string]any:
			current = nm
		case map[any]any:
			current = make(map[string]any, len(nm))
			for k, v := range nm {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders; unknown placeholders are kept.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
