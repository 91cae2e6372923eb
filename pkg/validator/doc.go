// Package validator implements the validation engine for Brazilian
// identifiers, banking fields, contact fields and password policies.
//
// Every validator satisfies the same contract:
//
//	type Validator interface {
//	    Validate(value string) Result
//	}
//
// A Result carries a summary message and an insertion-ordered list of
// FieldError values. It is successful exactly when that list is empty;
// success is derived from the errors and cannot be set independently.
//
// # Messages
//
// Human-readable texts are resolved through a Localizer, which pairs an
// immutable i18n.Catalog snapshot with a locale. Keys live under the
// "validations" namespace ("validations.cpf.invalid_length"). A missing key
// degrades to the default text supplied by the validator; an unknown locale
// is rejected once, when the Localizer is built with NewLocalizer. The zero
// Localizer resolves every message to its default.
//
// # Kinds
//
// The built-in validators form a closed set enumerated by Kind. New builds
// the validator of a kind:
//
//	loc, err := validator.NewLocalizer(catalog, "pt_br")
//	if err != nil {
//	    return err // i18n.ErrLocaleNotFound
//	}
//
//	v, err := validator.New(validator.KindDocument, loc)
//	res := v.Validate("111.444.777-35")
//	if !res.Success() {
//	    for _, e := range res.Errors() {
//	        fmt.Println(e.Field, e.Message)
//	    }
//	}
//
// # Extensions
//
// Extend wraps a validator and appends the errors produced by extensions.
// Extensions never remove or relabel the errors of the wrapped validator:
//
//	email := validator.Extend(
//	    validator.NewEmail(loc),
//	    validator.BlockedEmailDomains(loc, "spam.com", "fake.com"),
//	)
//
// # Records
//
// BankAccountValidator, TransactionValidator, UserValidator and
// CustomerValidator validate multi-field records and accumulate every field
// error in a single Result.
//
// # Concurrency
//
// Validators hold no mutable state. Validate performs no I/O and may be
// called concurrently from any number of goroutines.
package validator
