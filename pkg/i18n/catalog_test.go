package i18n_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/i18n"
)

func testData() map[string]map[string]any {
	return map[string]map[string]any{
		"pt_br": {
			"validations": map[string]any{
				"cpf": map[string]any{
					"invalid_length": "CPF deve ter 11 dígitos",
					"success":        "CPF válido",
				},
				"password": map[string]any{
					"length": "A senha deve ter no mínimo %{min} caracteres",
				},
				"count": 3,
			},
		},
		"en": {
			"validations": map[string]any{
				"cpf": map[string]any{
					"invalid_length": "CPF must have 11 digits",
				},
			},
		},
	}
}

func newCatalog(t *testing.T, opts ...i18n.Option) *i18n.Catalog {
	t.Helper()
	c, err := i18n.NewCatalog(testData(), opts...)
	require.NoError(t, err)
	return c
}

func TestCatalog_Resolve(t *testing.T) {
	t.Parallel()
	c := newCatalog(t)

	t.Run("resolves nested key", func(t *testing.T) {
		msg, err := c.Resolve("pt_br", "validations.cpf.invalid_length", "default")
		require.NoError(t, err)
		assert.Equal(t, "CPF deve ter 11 dígitos", msg)
	})

	t.Run("unknown key returns default", func(t *testing.T) {
		msg, err := c.Resolve("pt_br", "validations.cpf.unknown", "fallback message")
		require.NoError(t, err)
		assert.Equal(t, "fallback message", msg)
	})

	t.Run("missing intermediate segment returns default", func(t *testing.T) {
		msg, err := c.Resolve("en", "validations.password.length", "fallback")
		require.NoError(t, err)
		assert.Equal(t, "fallback", msg)
	})

	t.Run("non-string leaf returns default", func(t *testing.T) {
		msg, err := c.Resolve("pt_br", "validations.count", "not a string")
		require.NoError(t, err)
		assert.Equal(t, "not a string", msg)
	})

	t.Run("key pointing at a subtree returns default", func(t *testing.T) {
		msg, err := c.Resolve("pt_br", "validations.cpf", "subtree")
		require.NoError(t, err)
		assert.Equal(t, "subtree", msg)
	})

	t.Run("key descending past a leaf returns default", func(t *testing.T) {
		msg, err := c.Resolve("pt_br", "validations.cpf.success.extra", "too deep")
		require.NoError(t, err)
		assert.Equal(t, "too deep", msg)
	})

	t.Run("unknown locale is a hard failure", func(t *testing.T) {
		msg, err := c.Resolve("fr", "validations.cpf.invalid_length", "default")
		require.Error(t, err)
		assert.ErrorIs(t, err, i18n.ErrLocaleNotFound)
		assert.Empty(t, msg)
	})

	t.Run("no cross-locale fallback", func(t *testing.T) {
		msg, err := c.Resolve("en", "validations.cpf.success", "Valid CPF")
		require.NoError(t, err)
		assert.Equal(t, "Valid CPF", msg)
	})

	t.Run("substitutes placeholders", func(t *testing.T) {
		msg, err := c.Resolve("pt_br", "validations.password.length", "", "min", "8")
		require.NoError(t, err)
		assert.Equal(t, "A senha deve ter no mínimo 8 caracteres", msg)
	})

	t.Run("substitutes placeholders in default", func(t *testing.T) {
		msg, err := c.Resolve("en", "missing", "at least %{min} chars, %{other}", "min", "8")
		require.NoError(t, err)
		assert.Equal(t, "at least 8 chars, %{other}", msg)
	})

	t.Run("odd argument is ignored", func(t *testing.T) {
		msg, err := c.Resolve("pt_br", "validations.password.length", "", "min")
		require.NoError(t, err)
		assert.Equal(t, "A senha deve ter no mínimo %{min} caracteres", msg)
	})
}

func TestCatalog_IsImmutable(t *testing.T) {
	t.Parallel()

	data := testData()
	c, err := i18n.NewCatalog(data)
	require.NoError(t, err)

	data["pt_br"]["validations"].(map[string]any)["cpf"].(map[string]any)["success"] = "mutated"
	delete(data, "en")

	msg, err := c.Resolve("pt_br", "validations.cpf.success", "")
	require.NoError(t, err)
	assert.Equal(t, "CPF válido", msg)
	assert.True(t, c.HasLocale("en"))
}

func TestCatalog_Construction(t *testing.T) {
	t.Parallel()

	t.Run("empty locale", func(t *testing.T) {
		_, err := i18n.NewCatalog(map[string]map[string]any{"": {}})
		assert.ErrorIs(t, err, i18n.ErrEmptyLocale)
	})

	t.Run("nil translations", func(t *testing.T) {
		_, err := i18n.NewCatalog(map[string]map[string]any{"en": nil})
		assert.ErrorIs(t, err, i18n.ErrNilTranslations)
	})

	t.Run("empty data is allowed", func(t *testing.T) {
		c, err := i18n.NewCatalog(nil)
		require.NoError(t, err)
		assert.Empty(t, c.Locales())
	})

	t.Run("map any any from yaml v2 style documents", func(t *testing.T) {
		c, err := i18n.NewCatalog(map[string]map[string]any{
			"en": {"a": map[any]any{"b": "c", 1: "skipped"}},
		})
		require.NoError(t, err)
		assert.True(t, c.Has("en", "a.b"))
	})
}

func TestCatalog_Lookup(t *testing.T) {
	t.Parallel()
	c := newCatalog(t)

	assert.Equal(t, []string{"en", "pt_br"}, c.Locales())
	assert.True(t, c.HasLocale("pt_br"))
	assert.False(t, c.HasLocale("es"))
	assert.True(t, c.Has("pt_br", "validations.cpf.success"))
	assert.False(t, c.Has("pt_br", "validations.count"))
	assert.False(t, c.Has("es", "validations.cpf.success"))
}

func TestCatalog_ExportJSON(t *testing.T) {
	t.Parallel()
	c := newCatalog(t)

	out, err := c.ExportJSON("en")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, map[string]any{
		"validations": map[string]any{
			"cpf": map[string]any{"invalid_length": "CPF must have 11 digits"},
		},
	}, doc)

	_, err = c.ExportJSON("xx")
	assert.ErrorIs(t, err, i18n.ErrLocaleNotFound)
}

func TestCatalog_MissingKeyLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	c := newCatalog(t, i18n.WithLogger(logger), i18n.WithMissingKeyLogging(true))
	_, err := c.Resolve("en", "nope", "default")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "message not found")
	assert.Contains(t, buf.String(), "key=nope")
	assert.Contains(t, buf.String(), "locale=en")

	buf.Reset()
	quiet := newCatalog(t, i18n.WithLogger(logger))
	_, err = quiet.Resolve("en", "nope", "default")
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
