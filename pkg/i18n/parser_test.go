package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/i18n"
)

func TestYAMLParser(t *testing.T) {
	p := i18n.NewYAMLParser()

	t.Run("parses nested languages", func(t *testing.T) {
		data, err := p.Parse(context.Background(), "en:\n  validation:\n    integer: \"%{field} should be integer\"\n")
		require.NoError(t, err)
		nested, ok := data["en"]["validation"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "%{field} should be integer", nested["integer"])
	})

	t.Run("rejects non-map language", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "en: hello\n")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "en: [unclosed\n")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, "en:\n  a: b\n")
		assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
	})

	t.Run("extensions", func(t *testing.T) {
		assert.True(t, p.SupportsFileExtension("yaml"))
		assert.True(t, p.SupportsFileExtension(".YML"))
		assert.False(t, p.SupportsFileExtension("json"))
	})
}

func TestNewParserForFile(t *testing.T) {
	assert.NotNil(t, i18n.NewParserForFile("locales/en.yaml"))
	assert.NotNil(t, i18n.NewParserForFile("en.yml"))
	assert.Nil(t, i18n.NewParserForFile("en.json"))
	assert.Nil(t, i18n.NewParserForFile("README"))
}
