package sanitizer

import (
	"strings"
)

// Digits strips every character that is not an ASCII digit.
func Digits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// DigitsAndHyphen keeps ASCII digits and hyphens, the characters allowed in
// bank account numbers ("12345-6").
func DigitsAndHyphen(s string) string {
	return nonDigitHyphenRegex.ReplaceAllString(s, "")
}

// NormalizeEmail prevents common email input errors but preserves original for invalid formats.
// Consolidates consecutive dots which can cause delivery issues with some email providers.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	email = strings.ToLower(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// ExtractEmailDomain returns the lower-cased part after the single "@", or
// an empty string when the address does not contain exactly one "@".
func ExtractEmailDomain(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}
	return strings.ToLower(parts[1])
}

// MaskEmail preserves full domain for user recognition while hiding personal info.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	domain := parts[1]

	if len(local) == 0 {
		return email
	}

	if len(local) == 1 {
		return "*@" + domain
	}

	masked := string(local[0]) + strings.Repeat("*", len(local)-1)
	return masked + "@" + domain
}
