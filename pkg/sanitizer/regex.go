package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Email formatting
	dotRegex = regexp.MustCompile(`\.+`)

	// Numeric extraction
	nonDigitRegex       = regexp.MustCompile(`\D`)
	nonDigitHyphenRegex = regexp.MustCompile(`[^0-9-]`)
)
