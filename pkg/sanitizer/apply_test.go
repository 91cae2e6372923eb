package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  123.456  ",
			transforms: []func(string) string{strings.TrimSpace},
			expected:   "123.456",
		},
		{
			name:  "applies multiple transforms in sequence",
			input: "  111.444.777-35  ",
			transforms: []func(string) string{
				strings.TrimSpace,
				sanitizer.Digits,
			},
			expected: "11144477735",
		},
		{
			name:       "no transforms returns input",
			input:      "unchanged",
			transforms: nil,
			expected:   "unchanged",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(strings.TrimSpace, sanitizer.FormatCPF)
	assert.Equal(t, "111.444.777-35", clean("  11144477735 "))
	assert.Equal(t, "123", clean(" 123 "))
}
