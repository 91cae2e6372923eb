package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestCPF(t *testing.T) {
	t.Parallel()
	v := validator.NewCPF(testLocalizer(t))

	tests := []struct {
		name    string
		input   string
		code    validator.Code
		message string
	}{
		{name: "valid raw", input: "11144477735"},
		{name: "valid formatted", input: "111.444.777-35"},
		{name: "valid second vector", input: "529.982.247-25"},
		{name: "empty", input: "", code: validator.CodeWrongLength, message: "CPF deve ter 11 dígitos"},
		{name: "too short", input: "1114447773", code: validator.CodeWrongLength, message: "CPF deve ter 11 dígitos"},
		{name: "repeated digits", input: "111.111.111-11", code: validator.CodeRepeatedDigits, message: "CPF não pode ter todos os dígitos iguais"},
		{name: "bad check digit", input: "11144477736", code: validator.CodeBadCheckDigit, message: "Dígitos verificadores do CPF inválidos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := v.Validate(tt.input)
			if tt.code == "" {
				assert.True(t, res.Success())
				assert.Equal(t, "CPF válido", res.Message())
				return
			}
			require.False(t, res.Success())
			require.Equal(t, 1, res.Len())
			e := res.Errors()[0]
			assert.Equal(t, validator.FieldCPF, e.Field)
			assert.Equal(t, tt.code, e.Code)
			assert.Equal(t, tt.message, e.Message)
		})
	}
}

func TestCNPJ(t *testing.T) {
	t.Parallel()
	v := validator.NewCNPJ(testLocalizer(t))

	assert.True(t, v.Validate("11.444.777/0001-61").Success())
	assert.True(t, v.Validate("11222333000181").Success())

	res := v.Validate("11444777000162")
	assert.Equal(t, []validator.Code{validator.CodeBadCheckDigit}, codes(res))
	assert.Equal(t, []string{"validations.cnpj.invalid_check_digits"}, keys(res))
	// Not in the test catalog: the default text is used.
	assert.Equal(t, "CNPJ check digits are invalid", res.Errors()[0].Message)

	assert.Equal(t, []validator.Code{validator.CodeRepeatedDigits}, codes(v.Validate("00000000000000")))
	assert.Equal(t, []validator.Code{validator.CodeWrongLength}, codes(v.Validate("1144477700016")))
	assert.Equal(t, "CNPJ must have 14 digits", v.Validate("123").Errors()[0].Message)
}

func TestDocument(t *testing.T) {
	t.Parallel()
	v := validator.NewDocument(testLocalizer(t))

	t.Run("routes 11 digits to CPF", func(t *testing.T) {
		res := v.Validate("111.444.777-35")
		assert.True(t, res.Success())
		assert.Equal(t, "CPF válido", res.Message())

		res = v.Validate("111.444.777-36")
		assert.True(t, res.Has(validator.FieldCPF))
	})

	t.Run("routes 14 digits to CNPJ", func(t *testing.T) {
		assert.True(t, v.Validate("11.444.777/0001-61").Success())
		assert.True(t, v.Validate("11.444.777/0001-62").Has(validator.FieldCNPJ))
	})

	t.Run("any other digit count is a single length error", func(t *testing.T) {
		for n := 0; n <= 20; n++ {
			if n == 11 || n == 14 {
				continue
			}
			input := strings.Repeat("1", n)
			res := v.Validate(input)
			require.False(t, res.Success(), "length %d", n)
			require.Equal(t, 1, res.Len(), "length %d", n)
			e := res.Errors()[0]
			assert.Equal(t, validator.FieldDocument, e.Field)
			assert.Equal(t, validator.KeyDocumentInvalidLength, e.Key)
			assert.Equal(t, validator.CodeWrongLength, e.Code)
			assert.Equal(t, "Documento deve ter 11 (CPF) ou 14 (CNPJ) dígitos", e.Message)
		}
	})

	t.Run("formatting characters do not count", func(t *testing.T) {
		res := v.Validate("abc.def-12")
		assert.Equal(t, []string{validator.KeyDocumentInvalidLength}, keys(res))
	})
}

func TestDocumentKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, validator.KindCPF, validator.DocumentKind("111.444.777-35"))
	assert.Equal(t, validator.KindCNPJ, validator.DocumentKind("11.444.777/0001-61"))
	assert.Equal(t, validator.Kind(0), validator.DocumentKind("123"))
}
