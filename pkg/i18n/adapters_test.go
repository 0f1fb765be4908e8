package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/i18n"
)

func TestMapAdapter(t *testing.T) {
	data, err := (&i18n.MapAdapter{}).Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}

func TestFSAdapter(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml":   {Data: []byte("en:\n  hello: Hello\n  nested:\n    a: A\n")},
		"locales/es.yml":    {Data: []byte("es:\n  hello: Hola\n")},
		"locales/extra.yml": {Data: []byte("en:\n  hello: Hi\n")},
		"locales/notes.txt": {Data: []byte("ignored")},
		"locales/sub/x.yml": {Data: []byte("fr:\n  hello: Salut\n")},
	}

	t.Run("merges supported files", func(t *testing.T) {
		adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales")
		require.NotNil(t, adapter)

		data, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, data, 2)
		assert.Equal(t, "Hola", data["es"]["hello"])
		// extra.yml sorts after en.yaml
		assert.Equal(t, "Hi", data["en"]["hello"])
		assert.Equal(t, map[string]any{"a": "A"}, data["en"]["nested"])
	})

	t.Run("works with translator", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales"))
		require.NoError(t, err)
		assert.Equal(t, "A", tr.T("en", "nested.a"))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "nope").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("no supported files", func(t *testing.T) {
		only := fstest.MapFS{"notes.txt": {Data: []byte("x")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), only, "").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("invalid file", func(t *testing.T) {
		bad := fstest.MapFS{"bad.yaml": {Data: []byte("en: [1, 2]\n")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), bad, ".").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("nil arguments", func(t *testing.T) {
		assert.Nil(t, i18n.NewFSAdapter(nil, fsys, "locales"))
		assert.Nil(t, i18n.NewFSAdapter(i18n.NewYAMLParser(), nil, "locales"))
	})
}
