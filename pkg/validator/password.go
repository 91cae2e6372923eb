package validator

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// FieldPassword is the field name used by the password validator.
const FieldPassword = "senha"

// SpecialChars is the set of characters accepted as "special" by the
// password policy.
const SpecialChars = `!@#$%^&*(),.?":{}|<>`

// Common weak passwords, compared case-insensitively.
var commonPasswords = map[string]bool{
	"password":    true,
	"password1":   true,
	"password123": true,
	"123456":      true,
	"12345678":    true,
	"123456789":   true,
	"1234567890":  true,
	"qwerty":      true,
	"qwerty123":   true,
	"abc123":      true,
	"admin":       true,
	"admin123":    true,
	"letmein":     true,
	"welcome":     true,
	"iloveyou":    true,
	"senha":       true,
	"senha123":    true,
	"mudar123":    true,
	"brasil":      true,
	"111111":      true,
	"000000":      true,
}

// PasswordPolicy configures the password validator.
type PasswordPolicy struct {
	// MinLength is the minimum number of characters.
	MinLength int
	// MaxRepeat is the longest allowed run of one repeated character.
	// Zero disables the check.
	MaxRepeat        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigit     bool
	RequireSpecial   bool
	// RejectCommon rejects the built-in list of common passwords.
	RejectCommon bool
	// Blocklist extends the common passwords list.
	Blocklist []string
}

// DefaultPasswordPolicy returns the policy applied when none is configured:
// at least 8 characters, one uppercase and one lowercase letter, one digit,
// one special character, no common passwords and no run of more than three
// identical characters.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		MaxRepeat:        3,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigit:     true,
		RequireSpecial:   true,
		RejectCommon:     true,
	}
}

// Password validates a password against a PasswordPolicy. Every violated
// rule is reported.
type Password struct {
	loc       Localizer
	policy    PasswordPolicy
	blocklist map[string]bool
}

// NewPassword returns a Password validator.
func NewPassword(loc Localizer, policy PasswordPolicy) Password {
	blocklist := make(map[string]bool, len(policy.Blocklist))
	for _, word := range policy.Blocklist {
		if word = strings.TrimSpace(word); word != "" {
			blocklist[strings.ToLower(word)] = true
		}
	}
	return Password{loc: loc, policy: policy, blocklist: blocklist}
}

// Validate implements Validator.
func (v Password) Validate(value string) Result {
	p := v.policy
	lower := strings.ToLower(value)

	errs := v.loc.Apply(
		Rule{
			Check:   func() bool { return utf8.RuneCountInString(value) >= p.MinLength },
			Field:   FieldPassword,
			Code:    CodePolicyViolation,
			Key:     "validations.password.length",
			Default: "Password must have at least %{min} characters",
			Args:    []string{"min", strconv.Itoa(p.MinLength)},
		},
		Rule{
			Check:   func() bool { return !p.RequireUppercase || strings.IndexFunc(value, isASCIIUpper) >= 0 },
			Field:   FieldPassword,
			Code:    CodePolicyViolation,
			Key:     "validations.password.uppercase",
			Default: "Password must contain at least one uppercase letter",
		},
		Rule{
			Check:   func() bool { return !p.RequireLowercase || strings.IndexFunc(value, isASCIILower) >= 0 },
			Field:   FieldPassword,
			Code:    CodePolicyViolation,
			Key:     "validations.password.lowercase",
			Default: "Password must contain at least one lowercase letter",
		},
		Rule{
			Check:   func() bool { return !p.RequireDigit || strings.IndexFunc(value, isASCIIDigit) >= 0 },
			Field:   FieldPassword,
			Code:    CodePolicyViolation,
			Key:     "validations.password.number",
			Default: "Password must contain at least one number",
		},
		Rule{
			Check:   func() bool { return !p.RequireSpecial || strings.ContainsAny(value, SpecialChars) },
			Field:   FieldPassword,
			Code:    CodePolicyViolation,
			Key:     "validations.password.special",
			Default: "Password must contain at least one special character",
		},
		Rule{
			Check:   func() bool { return !(p.RejectCommon && commonPasswords[lower]) && !v.blocklist[lower] },
			Field:   FieldPassword,
			Code:    CodePolicyViolation,
			Key:     "validations.password.common",
			Default: "Password is too common",
		},
		Rule{
			Check:   func() bool { return p.MaxRepeat <= 0 || longestRun(value) <= p.MaxRepeat },
			Field:   FieldPassword,
			Code:    CodePolicyViolation,
			Key:     "validations.password.repeated",
			Default: "Password cannot repeat the same character more than %{max} times in a row",
			Args:    []string{"max", strconv.Itoa(p.MaxRepeat)},
		},
	)

	if len(errs) > 0 {
		return NewResult(v.loc.Message("validations.password.invalid", "Invalid password"), errs...)
	}
	return NewResult(v.loc.Message("validations.password.valid", "Password is valid"))
}

// Character classes are ASCII only: accented letters and non-Latin digits
// count toward the length but satisfy no class.
func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// longestRun returns the length of the longest run of one repeated rune.
func longestRun(s string) int {
	var prev rune
	run, longest := 0, 0
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		prev = r
		longest = max(longest, run)
	}
	return longest
}
