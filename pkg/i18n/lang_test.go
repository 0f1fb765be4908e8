package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldkit/pkg/i18n"
)

func TestMatchLanguage(t *testing.T) {
	supported := []string{"en", "es"}

	tests := []struct {
		name string
		want string
		out  string
	}{
		{"exact", "es", "es"},
		{"regional variant", "es-MX", "es"},
		{"english variant", "en-GB", "en"},
		{"preference list", "fr-FR,es;q=0.8,en;q=0.5", "es"},
		{"unsupported", "ja", "en"},
		{"empty", "", "en"},
		{"malformed", "!!", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.out, i18n.MatchLanguage(tt.want, supported, "en"))
		})
	}

	t.Run("no supported languages", func(t *testing.T) {
		assert.Equal(t, "xx", i18n.MatchLanguage("es", nil, "xx"))
	})
}

func TestLocaleContext(t *testing.T) {
	ctx := context.Background()
	_, ok := i18n.LocaleFromContext(ctx)
	assert.False(t, ok)
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(ctx))

	ctx = i18n.SetLocale(ctx, "es")
	locale, ok := i18n.LocaleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "es", locale)
	assert.Equal(t, "es", i18n.GetLocale(ctx))

	_, ok = i18n.LocaleFromContext(i18n.SetLocale(ctx, ""))
	assert.False(t, ok)
}
