package validator

import (
	"fmt"
	"strings"
)

// Validator checks a single raw input value.
type Validator interface {
	Validate(value string) Result
}

// Func adapts an ordinary function to the Validator interface.
type Func func(value string) Result

// Validate implements Validator.
func (f Func) Validate(value string) Result {
	return f(value)
}

// Kind enumerates the built-in validators.
type Kind uint8

const (
	KindCPF Kind = iota + 1
	KindCNPJ
	KindDocument
	KindAgency
	KindAccount
	KindCheckDigit
	KindPhone
	KindEmail
	KindPassword
	KindCEP
)

var kindNames = map[Kind]string{
	KindCPF:        "cpf",
	KindCNPJ:       "cnpj",
	KindDocument:   "document",
	KindAgency:     "agency",
	KindAccount:    "account",
	KindCheckDigit: "check_digit",
	KindPhone:      "phone",
	KindEmail:      "email",
	KindPassword:   "password",
	KindCEP:        "cep",
}

// Kinds returns every built-in kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindCPF, KindCNPJ, KindDocument, KindAgency, KindAccount,
		KindCheckDigit, KindPhone, KindEmail, KindPassword, KindCEP,
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind returns the kind named s, ignoring case.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for kind, name := range kindNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

type options struct {
	password PasswordPolicy
}

// Option configures validators built by New.
type Option func(*options)

// WithPasswordPolicy sets the policy used by KindPassword.
func WithPasswordPolicy(p PasswordPolicy) Option {
	return func(o *options) {
		o.password = p
	}
}

// New builds the validator of kind bound to loc.
func New(kind Kind, loc Localizer, opts ...Option) (Validator, error) {
	o := options{password: DefaultPasswordPolicy()}
	for _, opt := range opts {
		opt(&o)
	}

	switch kind {
	case KindCPF:
		return NewCPF(loc), nil
	case KindCNPJ:
		return NewCNPJ(loc), nil
	case KindDocument:
		return NewDocument(loc), nil
	case KindAgency:
		return NewAgency(loc), nil
	case KindAccount:
		return NewAccount(loc), nil
	case KindCheckDigit:
		return NewCheckDigit(loc), nil
	case KindPhone:
		return NewPhone(loc), nil
	case KindEmail:
		return NewEmail(loc), nil
	case KindPassword:
		return NewPassword(loc, o.password), nil
	case KindCEP:
		return NewCEP(loc), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}
