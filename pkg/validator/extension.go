package validator

import (
	"strings"

	"github.com/dmitrymomot/validkit/pkg/checksum"
	"github.com/dmitrymomot/validkit/pkg/sanitizer"
)

// Extension inspects a value after the base validator ran and returns the
// additional errors to append. It receives the base result so it can decide
// to run only when the base succeeded.
type Extension func(value string, base Result) []FieldError

// Extend returns a validator that runs base and then every extension in
// order, appending their errors to the base result. Base errors are never
// removed or relabelled. When a successful base result gains errors, its
// success summary is cleared.
func Extend(base Validator, extensions ...Extension) Validator {
	return Func(func(value string) Result {
		res := base.Validate(value)

		var extra []FieldError
		for _, ext := range extensions {
			extra = append(extra, ext(value, res)...)
		}
		if len(extra) == 0 {
			return res
		}

		out := res.Append(extra...)
		if res.Success() {
			out = out.WithMessage("")
		}
		return out
	})
}

// BlockedEmailDomains rejects e-mail addresses whose domain is in domains.
// It only runs when the base validator accepted the address.
func BlockedEmailDomains(loc Localizer, domains ...string) Extension {
	blocked := toSet(domains, strings.ToLower)
	return func(value string, base Result) []FieldError {
		if !base.Success() || len(blocked) == 0 {
			return nil
		}
		domain := sanitizer.ExtractEmailDomain(value)
		if !blocked[domain] {
			return nil
		}
		return []FieldError{loc.FieldError(FieldEmail, CodePolicyViolation,
			"validations.email.blocked_domain", "E-mail domain %{domain} is not allowed",
			"domain", domain)}
	}
}

// BlockedDocuments rejects identifiers present in documents. Values are
// compared by their digits only, so formatting does not matter. It runs
// regardless of the base result.
func BlockedDocuments(loc Localizer, documents ...string) Extension {
	blocked := toSet(documents, sanitizer.Digits)
	return func(value string, _ Result) []FieldError {
		digits := sanitizer.Digits(value)
		if !blocked[digits] {
			return nil
		}
		return []FieldError{loc.FieldError(documentField(digits), CodePolicyViolation,
			"validations.document.blocked", "This document is not allowed")}
	}
}

// DictionaryWords rejects passwords equal to one of words, ignoring case.
// It runs regardless of the base result.
func DictionaryWords(loc Localizer, words ...string) Extension {
	blocked := toSet(words, strings.ToLower)
	return func(value string, _ Result) []FieldError {
		if !blocked[strings.ToLower(value)] {
			return nil
		}
		return []FieldError{loc.FieldError(FieldPassword, CodePolicyViolation,
			"validations.password.dictionary", "Password is a dictionary word")}
	}
}

func documentField(digits string) string {
	switch len(digits) {
	case checksum.LenNationalID11:
		return FieldCPF
	case checksum.LenNationalID14:
		return FieldCNPJ
	default:
		return FieldDocument
	}
}

func toSet(values []string, normalize func(string) string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v = normalize(strings.TrimSpace(v)); v != "" {
			set[v] = true
		}
	}
	return set
}
