package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestFieldAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		want string
	}{
		{logger.Owner("BurgerRecipe"), "owner", "BurgerRecipe"},
		{logger.Field("buns"), "field", "buns"},
		{logger.Kind("range"), "kind", "range"},
		{logger.Component("descriptor"), "component", "descriptor"},
		{logger.Event("rejected"), "event", "rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, slog.KindString, tt.attr.Value.Kind())
			assert.Equal(t, tt.want, tt.attr.Value.String())
		})
	}
}

func TestValue(t *testing.T) {
	t.Run("keeps data and dynamic type", func(t *testing.T) {
		attr := logger.Value(int8(5))
		require.Equal(t, "value", attr.Key)
		g := attr.Value.Group()
		require.Len(t, g, 2)
		assert.Equal(t, "data", g[0].Key)
		assert.Equal(t, int64(5), g[0].Value.Int64())
		assert.Equal(t, "int8", g[1].Value.String())
	})

	t.Run("nil value", func(t *testing.T) {
		g := logger.Value(nil).Value.Group()
		require.Len(t, g, 1)
		assert.Equal(t, "nil", g[0].Value.String())
	})
}
