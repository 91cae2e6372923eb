package validator

import (
	"strconv"

	"github.com/dmitrymomot/validkit/pkg/checksum"
)

// Field names used by identifier validators.
const (
	FieldCPF      = "cpf"
	FieldCNPJ     = "cnpj"
	FieldDocument = "document"
)

// Message keys used by identifier validators.
const (
	KeyDocumentInvalidLength = "validations.document.invalid_length"
)

type nationalID struct {
	field     string
	namespace string
	length    int
	label     string
	check     func(string) checksum.Status
}

var (
	cpfID = nationalID{
		field:     FieldCPF,
		namespace: "validations.cpf",
		length:    checksum.LenNationalID11,
		label:     "CPF",
		check:     checksum.NationalID11,
	}
	cnpjID = nationalID{
		field:     FieldCNPJ,
		namespace: "validations.cnpj",
		length:    checksum.LenNationalID14,
		label:     "CNPJ",
		check:     checksum.NationalID14,
	}
)

func (n nationalID) validate(loc Localizer, value string) Result {
	var errs ValidationErrors

	switch n.check(value) {
	case checksum.Valid:
	case checksum.WrongLength:
		errs = append(errs, loc.FieldError(n.field, CodeWrongLength,
			n.namespace+".invalid_length", "%{label} must have %{length} digits",
			"label", n.label, "length", strconv.Itoa(n.length)))
	case checksum.RepeatedDigits:
		errs = append(errs, loc.FieldError(n.field, CodeRepeatedDigits,
			n.namespace+".invalid_digits", "%{label} cannot have all digits equal",
			"label", n.label))
	default:
		errs = append(errs, loc.FieldError(n.field, CodeBadCheckDigit,
			n.namespace+".invalid_check_digits", "%{label} check digits are invalid",
			"label", n.label))
	}

	return loc.result(n.namespace+".success", n.label+" is valid", errs)
}

// CPF validates the 11-digit individual taxpayer identifier.
type CPF struct {
	loc Localizer
}

// NewCPF returns a CPF validator.
func NewCPF(loc Localizer) CPF {
	return CPF{loc: loc}
}

// Validate implements Validator.
func (v CPF) Validate(value string) Result {
	return cpfID.validate(v.loc, value)
}

// CNPJ validates the 14-digit organization identifier.
type CNPJ struct {
	loc Localizer
}

// NewCNPJ returns a CNPJ validator.
func NewCNPJ(loc Localizer) CNPJ {
	return CNPJ{loc: loc}
}

// Validate implements Validator.
func (v CNPJ) Validate(value string) Result {
	return cnpjID.validate(v.loc, value)
}

// Document routes an identifier to the CPF or CNPJ validator by its digit
// count. Any other length is rejected without running a checksum.
type Document struct {
	loc  Localizer
	cpf  CPF
	cnpj CNPJ
}

// NewDocument returns a Document dispatcher.
func NewDocument(loc Localizer) Document {
	return Document{loc: loc, cpf: NewCPF(loc), cnpj: NewCNPJ(loc)}
}

// Validate implements Validator.
func (v Document) Validate(value string) Result {
	switch checksum.CountDigits(value) {
	case checksum.LenNationalID11:
		return v.cpf.Validate(value)
	case checksum.LenNationalID14:
		return v.cnpj.Validate(value)
	default:
		return NewResult("", v.loc.FieldError(FieldDocument, CodeWrongLength,
			KeyDocumentInvalidLength, "Document must have 11 (CPF) or 14 (CNPJ) digits"))
	}
}

// DocumentKind reports which identifier a value would be routed to, based on
// its digit count. It returns 0 for any other length.
func DocumentKind(value string) Kind {
	switch checksum.CountDigits(value) {
	case checksum.LenNationalID11:
		return KindCPF
	case checksum.LenNationalID14:
		return KindCNPJ
	default:
		return 0
	}
}
