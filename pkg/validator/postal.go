package validator

import "github.com/dmitrymomot/validkit/pkg/sanitizer"

// FieldCEP is the field name used by the postal code validator.
const FieldCEP = "cep"

// CEPLength is the digit count of a Brazilian postal code.
const CEPLength = 8

// CEP validates a Brazilian postal code: exactly 8 digits once formatting is
// removed ("01310-100").
type CEP struct {
	loc Localizer
}

// NewCEP returns a CEP validator.
func NewCEP(loc Localizer) CEP {
	return CEP{loc: loc}
}

// Validate implements Validator.
func (v CEP) Validate(value string) Result {
	n := len(sanitizer.Digits(value))
	errs := v.loc.Apply(Rule{
		Check:   func() bool { return n == CEPLength },
		Field:   FieldCEP,
		Code:    CodeWrongLength,
		Key:     "validations.cep.invalid_length",
		Default: "CEP must have 8 digits",
	})
	return v.loc.result("validations.cep.success", "CEP is valid", errs)
}
