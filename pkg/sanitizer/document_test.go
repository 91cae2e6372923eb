package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/sanitizer"
)

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "cpf", input: "11144477735", expected: "111.444.777-35"},
		{name: "cpf already formatted", input: "111.444.777-35", expected: "111.444.777-35"},
		{name: "cnpj", input: "11444777000161", expected: "11.444.777/0001-61"},
		{name: "unknown length is preserved", input: "12-34", expected: "12-34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.FormatDocument(tt.input))
		})
	}

	assert.Equal(t, "123", sanitizer.FormatCPF("123"))
	assert.Equal(t, "123", sanitizer.FormatCNPJ("123"))
}

func TestFormatCEP(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "01310-100", sanitizer.FormatCEP("01310100"))
	assert.Equal(t, "0131", sanitizer.FormatCEP("0131"))
}

func TestFormatPhone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(11) 3333-4444", sanitizer.FormatPhone("1133334444"))
	assert.Equal(t, "(11) 99999-8888", sanitizer.FormatPhone("11 999998888"))
	assert.Equal(t, "123", sanitizer.FormatPhone("123"))
}

func TestMaskDocument(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "*********35", sanitizer.MaskDocument("111.444.777-35"))
	assert.Equal(t, "**", sanitizer.MaskDocument("12"))
	assert.Equal(t, "*", sanitizer.MaskDocument("1"))
	assert.Equal(t, "", sanitizer.MaskDocument(""))
}
