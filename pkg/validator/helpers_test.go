package validator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/i18n"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

func testCatalog(t *testing.T) *i18n.Catalog {
	t.Helper()

	c, err := i18n.NewCatalog(map[string]map[string]any{
		"pt_br": {
			"validations": map[string]any{
				"cpf": map[string]any{
					"invalid_length":       "CPF deve ter 11 dígitos",
					"invalid_digits":       "CPF não pode ter todos os dígitos iguais",
					"invalid_check_digits": "Dígitos verificadores do CPF inválidos",
					"success":              "CPF válido",
				},
				"document": map[string]any{
					"invalid_length": "Documento deve ter 11 (CPF) ou 14 (CNPJ) dígitos",
				},
				"password": map[string]any{
					"length":  "A senha deve ter no mínimo %{min} caracteres",
					"invalid": "Senha inválida",
					"valid":   "Senha válida",
				},
				"bank": map[string]any{
					"validation": map[string]any{
						"failed":  "Dados bancários inválidos",
						"success": "Dados bancários válidos",
					},
				},
			},
		},
		"en": {
			"validations": map[string]any{
				"cpf": map[string]any{"success": "Valid CPF"},
			},
		},
	})
	require.NoError(t, err)
	return c
}

func testLocalizer(t *testing.T) validator.Localizer {
	t.Helper()

	loc, err := validator.NewLocalizer(testCatalog(t), "pt_br")
	require.NoError(t, err)
	return loc
}

func codes(r validator.Result) []validator.Code {
	var out []validator.Code
	for _, e := range r.Errors() {
		out = append(out, e.Code)
	}
	return out
}

func keys(r validator.Result) []string {
	var out []string
	for _, e := range r.Errors() {
		out = append(out, e.Key)
	}
	return out
}
