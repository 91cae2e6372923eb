package validator

import (
	"fmt"

	"github.com/dmitrymomot/validkit/pkg/i18n"
)

// Localizer resolves validation messages for one locale of a catalog
// snapshot. It is a small value and safe to copy.
//
// The zero Localizer has no catalog and resolves every message to the
// default text supplied by the caller.
type Localizer struct {
	catalog *i18n.Catalog
	locale  string
}

// NewLocalizer binds catalog to locale. It fails with i18n.ErrLocaleNotFound
// when the catalog has no messages for locale; the engine never falls back
// to another locale on its own.
func NewLocalizer(catalog *i18n.Catalog, locale string) (Localizer, error) {
	if catalog == nil {
		return Localizer{}, ErrNilCatalog
	}
	if !catalog.HasLocale(locale) {
		return Localizer{}, fmt.Errorf("%w: %s", i18n.ErrLocaleNotFound, locale)
	}
	return Localizer{catalog: catalog, locale: locale}, nil
}

// Locale returns the bound locale.
func (l Localizer) Locale() string {
	return l.locale
}

// Message resolves key, falling back to def when the key is missing or
// holds an empty string.
func (l Localizer) Message(key, def string, args ...string) string {
	if l.catalog == nil {
		return i18n.Format(def, args...)
	}
	msg, err := l.catalog.Resolve(l.locale, key, def, args...)
	if err != nil || msg == "" {
		return i18n.Format(def, args...)
	}
	return msg
}

// FieldError builds a resolved field error.
func (l Localizer) FieldError(field string, code Code, key, def string, args ...string) FieldError {
	return FieldError{
		Field:   field,
		Message: l.Message(key, def, args...),
		Key:     key,
		Code:    code,
	}
}

// Rule is a single check and the error reported when it fails.
// The message is resolved only for failing rules.
type Rule struct {
	Check   func() bool
	Field   string
	Code    Code
	Key     string
	Default string
	Args    []string
}

// Apply evaluates every rule in order and returns the errors of the failing
// ones. It never stops at the first failure.
func (l Localizer) Apply(rules ...Rule) ValidationErrors {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, l.FieldError(rule.Field, rule.Code, rule.Key, rule.Default, rule.Args...))
		}
	}
	return errs
}

// result builds the outcome of a single-field validator: the success message
// when errs is empty, an empty summary otherwise.
func (l Localizer) result(successKey, successDef string, errs ValidationErrors) Result {
	if len(errs) == 0 {
		return NewResult(l.Message(successKey, successDef))
	}
	return NewResult("", errs...)
}
