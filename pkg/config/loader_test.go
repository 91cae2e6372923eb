package config_test

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/config"
)

type defaultsConfig struct {
	Locale    string   `env:"TEST_DEFAULTS_LOCALE" envDefault:"pt_br"`
	MinLength int      `env:"TEST_DEFAULTS_MIN_LENGTH" envDefault:"8"`
	Domains   []string `env:"TEST_DEFAULTS_DOMAINS" envDefault:"spam.com,fake.com" envSeparator:","`
}

type overrideConfig struct {
	Locale string `env:"TEST_OVERRIDE_LOCALE" envDefault:"pt_br"`
}

type cachedConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"TEST_REQUIRED_VALUE,required"`
}

type invalidConfig struct {
	Number int `env:"TEST_INVALID_NUMBER"`
}

type fileConfig struct {
	Locale string   `env:"TEST_VALIDKIT_LOCALE"`
	Words  []string `env:"TEST_VALIDKIT_WORDS" envSeparator:","`
	Level  string   `env:"TEST_VALIDKIT_LEVEL"`
	Second string   `env:"TEST_VALIDKIT_SECOND"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "pt_br", cfg.Locale)
	assert.Equal(t, 8, cfg.MinLength)
	assert.Equal(t, []string{"spam.com", "fake.com"}, cfg.Domains)
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("TEST_OVERRIDE_LOCALE", "en")

	var cfg overrideConfig
	require.NoError(t, config.Reload(&cfg))
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoad_CachesPerType(t *testing.T) {
	var first cachedConfig
	require.NoError(t, config.Reload(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("TEST_CACHED_VALUE", "second")

	var cached cachedConfig
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, "first", cached.Value)

	var reloaded cachedConfig
	require.NoError(t, config.Reload(&reloaded))
	assert.Equal(t, "second", reloaded.Value)
}

func TestLoad_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var cfg defaultsConfig
			assert.NoError(t, config.Load(&cfg))
			assert.Equal(t, "pt_br", cfg.Locale)
		}()
	}
	wg.Wait()
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[defaultsConfig](nil), config.ErrNilPointer)
		assert.ErrorIs(t, config.Reload[defaultsConfig](nil), config.ErrNilPointer)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		assert.ErrorIs(t, config.Reload(&cfg), config.ErrParsingConfig)

		t.Setenv("TEST_REQUIRED_VALUE", "present")
		require.NoError(t, config.Reload(&cfg))
		assert.Equal(t, "present", cfg.Value)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("TEST_INVALID_NUMBER", "eight")
		var cfg invalidConfig
		assert.ErrorIs(t, config.Reload(&cfg), config.ErrParsingConfig)
	})

	t.Run("must load panics", func(t *testing.T) {
		t.Setenv("TEST_INVALID_NUMBER", "eight")
		config.ResetCache()
		assert.Panics(t, func() {
			var cfg invalidConfig
			config.MustLoad(&cfg)
		})
	})
}

func TestLoadEnv(t *testing.T) {
	for _, name := range []string{"TEST_VALIDKIT_LOCALE", "TEST_VALIDKIT_WORDS", "TEST_VALIDKIT_LEVEL", "TEST_VALIDKIT_SECOND"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	require.NoError(t, config.LoadEnv("testdata/.env.first", "testdata/.env.second"))

	var cfg fileConfig
	require.NoError(t, config.Reload(&cfg))
	assert.Equal(t, "en", cfg.Locale, "earlier files win")
	assert.Equal(t, []string{"alpha", "beta"}, cfg.Words)
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "only_here", cfg.Second)

	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
}
