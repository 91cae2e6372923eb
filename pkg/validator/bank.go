package validator

import (
	"strconv"

	"github.com/dmitrymomot/validkit/pkg/checksum"
	"github.com/dmitrymomot/validkit/pkg/sanitizer"
)

// Field names used by banking validators.
const (
	FieldBank       = "banco"
	FieldAgency     = "agencia"
	FieldAccount    = "conta"
	FieldCheckDigit = "digito"
)

// Digit count limits for banking fields.
const (
	AgencyMinDigits     = 4
	AgencyMaxDigits     = 10
	AccountMinDigits    = 5
	AccountMaxDigits    = 20
	CheckDigitMaxDigits = 2
)

// Agency validates a bank branch number: 4 to 10 digits once every other
// character is removed.
type Agency struct {
	loc Localizer
}

// NewAgency returns an Agency validator.
func NewAgency(loc Localizer) Agency {
	return Agency{loc: loc}
}

// Validate implements Validator.
func (v Agency) Validate(value string) Result {
	n := len(sanitizer.Digits(value))
	errs := v.loc.Apply(Rule{
		Check:   func() bool { return n >= AgencyMinDigits && n <= AgencyMaxDigits },
		Field:   FieldAgency,
		Code:    CodeWrongLength,
		Key:     "validations.bank.agency.invalid_length",
		Default: "Agency must have between %{min} and %{max} digits",
		Args:    []string{"min", strconv.Itoa(AgencyMinDigits), "max", strconv.Itoa(AgencyMaxDigits)},
	})
	return v.loc.result("validations.bank.agency.success", "Agency is valid", errs)
}

// Account validates a bank account number. Hyphens are kept while
// normalizing but do not count towards the 5 to 20 digit limit.
type Account struct {
	loc Localizer
}

// NewAccount returns an Account validator.
func NewAccount(loc Localizer) Account {
	return Account{loc: loc}
}

// Validate implements Validator.
func (v Account) Validate(value string) Result {
	n := checksum.CountDigits(sanitizer.DigitsAndHyphen(value))
	errs := v.loc.Apply(Rule{
		Check:   func() bool { return n >= AccountMinDigits && n <= AccountMaxDigits },
		Field:   FieldAccount,
		Code:    CodeWrongLength,
		Key:     "validations.bank.account.invalid_length",
		Default: "Account must have between %{min} and %{max} digits",
		Args:    []string{"min", strconv.Itoa(AccountMinDigits), "max", strconv.Itoa(AccountMaxDigits)},
	})
	return v.loc.result("validations.bank.account.success", "Account is valid", errs)
}

// CheckDigit validates the optional account check digit. An empty value is
// valid; otherwise at most two digits are allowed.
type CheckDigit struct {
	loc Localizer
}

// NewCheckDigit returns a CheckDigit validator.
func NewCheckDigit(loc Localizer) CheckDigit {
	return CheckDigit{loc: loc}
}

// Validate implements Validator.
func (v CheckDigit) Validate(value string) Result {
	n := len(sanitizer.Digits(value))
	errs := v.loc.Apply(Rule{
		Check:   func() bool { return n <= CheckDigitMaxDigits },
		Field:   FieldCheckDigit,
		Code:    CodeWrongLength,
		Key:     "validations.bank.digit.invalid_length",
		Default: "Check digit must have at most %{max} digits",
		Args:    []string{"max", strconv.Itoa(CheckDigitMaxDigits)},
	})
	return v.loc.result("validations.bank.digit.success", "Check digit is valid", errs)
}
