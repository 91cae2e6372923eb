package validator

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrymomot/validkit/pkg/sanitizer"
)

// Field names used by contact validators.
const (
	FieldPhone = "telefone"
	FieldEmail = "email"
)

// MinAreaCode is the lowest valid Brazilian area code (DDD).
const MinAreaCode = 11

// Phone validates a Brazilian phone number: 10 digits for landlines or 11
// for mobiles, starting with a valid area code.
type Phone struct {
	loc Localizer
}

// NewPhone returns a Phone validator.
func NewPhone(loc Localizer) Phone {
	return Phone{loc: loc}
}

// Validate implements Validator.
func (v Phone) Validate(value string) Result {
	digits := sanitizer.Digits(value)

	var errs ValidationErrors
	if len(digits) != 10 && len(digits) != 11 {
		errs = append(errs, v.loc.FieldError(FieldPhone, CodeWrongLength,
			"validations.phone.invalid_length", "Phone must have 10 or 11 digits"))
	}
	if len(digits) >= 2 {
		if ddd, _ := strconv.Atoi(digits[:2]); ddd < MinAreaCode {
			errs = append(errs, v.loc.FieldError(FieldPhone, CodeFormatMismatch,
				"validations.phone.invalid_ddd", "Invalid area code (DDD)"))
		}
	}

	return v.loc.result("validations.phone.success", "Phone is valid", errs)
}

// Email performs a syntactic check of an e-mail address in the
// local@domain.tld shape. No mail exchange lookup is done.
type Email struct {
	loc Localizer
}

// NewEmail returns an Email validator.
func NewEmail(loc Localizer) Email {
	return Email{loc: loc}
}

// Validate implements Validator.
func (v Email) Validate(value string) Result {
	value = strings.TrimSpace(value)

	var errs ValidationErrors
	switch {
	case value == "":
		errs = append(errs, v.loc.FieldError(FieldEmail, CodeRequired,
			"validations.email.required", "E-mail is required"))
	case !isEmailShape(value):
		errs = append(errs, v.loc.FieldError(FieldEmail, CodeFormatMismatch,
			"validations.email.invalid_format", "Invalid e-mail"))
	}

	return v.loc.result("validations.email.success", "E-mail is valid", errs)
}

// isEmailShape requires exactly one "@", a non-empty local part and a domain
// of at least two non-empty dot-separated labels.
func isEmailShape(email string) bool {
	if strings.IndexFunc(email, unicode.IsSpace) >= 0 {
		return false
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" {
			return false
		}
	}
	return true
}
