package config_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/config"
)

type defaultsConfig struct {
	Name  string     `env:"FIELDKIT_DEFAULT_NAME" envDefault:"fieldkit"`
	Count int        `env:"FIELDKIT_DEFAULT_COUNT" envDefault:"42"`
	Level slog.Level `env:"FIELDKIT_DEFAULT_LEVEL" envDefault:"DEBUG"`
}

type envConfig struct {
	Name  string   `env:"FIELDKIT_ENV_NAME"`
	Count int      `env:"FIELDKIT_ENV_COUNT"`
	Debug bool     `env:"FIELDKIT_ENV_DEBUG"`
	List  []string `env:"FIELDKIT_ENV_LIST" envSeparator:","`
}

type cachedConfig struct {
	Value string `env:"FIELDKIT_CACHED_VALUE" envDefault:"initial"`
}

type requiredConfig struct {
	Required string `env:"FIELDKIT_REQUIRED,required"`
}

type fileConfig struct {
	Name  string   `env:"FIELDKIT_TEST_NAME"`
	Count int      `env:"FIELDKIT_TEST_COUNT"`
	List  []string `env:"FIELDKIT_TEST_LIST" envSeparator:","`
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "fieldkit", cfg.Name)
	assert.Equal(t, 42, cfg.Count)
	assert.Equal(t, slog.LevelDebug, cfg.Level)
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.ResetCache()
	t.Setenv("FIELDKIT_ENV_NAME", "burger")
	t.Setenv("FIELDKIT_ENV_COUNT", "3")
	t.Setenv("FIELDKIT_ENV_DEBUG", "true")
	t.Setenv("FIELDKIT_ENV_LIST", "ketchup,mayo")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "burger", cfg.Name)
	assert.Equal(t, 3, cfg.Count)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"ketchup", "mayo"}, cfg.List)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "initial", first.Value)

	t.Setenv("FIELDKIT_CACHED_VALUE", "changed")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "initial", second.Value, "cached copy is served")

	var reloaded cachedConfig
	require.NoError(t, config.ForceReloadConfig(&reloaded))
	assert.Equal(t, "changed", reloaded.Value)

	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "changed", third.Value)
}

func TestLoad_RequiredMissingIsNotCached(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("FIELDKIT_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("FIELDKIT_REQUIRED", "present")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "present", cfg.Required)
}

func TestLoad_InvalidTargets(t *testing.T) {
	var nilCfg *defaultsConfig
	assert.ErrorIs(t, config.Load(nilCfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.ForceReloadConfig(nilCfg), config.ErrNilPointer)

	var n int
	assert.ErrorIs(t, config.Load(&n), config.ErrInvalidConfigType)
	assert.ErrorIs(t, config.ForceReloadConfig(&n), config.ErrInvalidConfigType)
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("FIELDKIT_REQUIRED")

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Cleanup(func() {
		os.Unsetenv("FIELDKIT_TEST_NAME")
		os.Unsetenv("FIELDKIT_TEST_COUNT")
		os.Unsetenv("FIELDKIT_TEST_LIST")
	})

	t.Run("later files override earlier ones", func(t *testing.T) {
		config.ResetCache()
		require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "override", cfg.Name)
		assert.Equal(t, 7, cfg.Count)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.List)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/missing.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("MustLoadEnv", func(t *testing.T) {
		assert.NotPanics(t, func() { config.MustLoadEnv("testdata/.env.base") })
		assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
	})
}
