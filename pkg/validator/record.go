package validator

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Field names used by record validators.
const (
	FieldName        = "nome"
	FieldDescription = "descricao"
	FieldAmount      = "valor"
	FieldDate        = "data"
	FieldType        = "tipo"
)

// Transaction types.
const (
	TransactionIncome  = "entrada"
	TransactionExpense = "saida"
)

// DateLayout is the layout of transaction dates.
const DateLayout = "2006-01-02"

// MinNameLength is the minimum length of names and descriptions.
const MinNameLength = 3

// recordResult attaches the summary message of a record validator.
func recordResult(loc Localizer, namespace string, errs ValidationErrors) Result {
	if len(errs) > 0 {
		return NewResult(loc.Message(namespace+".validation.failed", "Validation failed"), errs...)
	}
	return NewResult(loc.Message(namespace+".validation.success", "Validation succeeded"))
}

func minLength(field, namespace, value string) []Rule {
	value = strings.TrimSpace(value)
	return []Rule{
		{
			Check:   func() bool { return value != "" },
			Field:   field,
			Code:    CodeRequired,
			Key:     namespace + ".required",
			Default: "This field is required",
		},
		{
			Check:   func() bool { return value == "" || utf8.RuneCountInString(value) >= MinNameLength },
			Field:   field,
			Code:    CodeWrongLength,
			Key:     namespace + ".too_short",
			Default: "Must have at least %{min} characters",
			Args:    []string{"min", strconv.Itoa(MinNameLength)},
		},
	}
}

// BankAccount is a bank account record.
type BankAccount struct {
	Bank    string
	Agency  string
	Account string
	Digit   string
}

// BankAccountValidator validates bank account records.
type BankAccountValidator struct {
	loc     Localizer
	agency  Validator
	account Validator
	digit   Validator
}

// NewBankAccountValidator returns a validator for bank account records.
func NewBankAccountValidator(loc Localizer) BankAccountValidator {
	return BankAccountValidator{
		loc:     loc,
		agency:  NewAgency(loc),
		account: NewAccount(loc),
		digit:   NewCheckDigit(loc),
	}
}

// Validate checks every field of a and reports all failures.
func (v BankAccountValidator) Validate(a BankAccount) Result {
	bank := strings.TrimSpace(a.Bank)
	errs := v.loc.Apply(Rule{
		Check:   func() bool { return bank != "" },
		Field:   FieldBank,
		Code:    CodeRequired,
		Key:     "validations.bank.bank.required",
		Default: "Bank is required",
	})
	errs = append(errs, v.agency.Validate(a.Agency).errors...)
	errs = append(errs, v.account.Validate(a.Account).errors...)
	errs = append(errs, v.digit.Validate(a.Digit).errors...)

	return recordResult(v.loc, "validations.bank", errs)
}

// Transaction is a financial entry.
type Transaction struct {
	Description string
	Amount      float64
	Date        string
	Type        string
}

// TransactionOption configures a TransactionValidator.
type TransactionOption func(*TransactionValidator)

// WithClock sets the function returning the current time. Dates after the
// current day in the clock's location are rejected.
func WithClock(now func() time.Time) TransactionOption {
	return func(v *TransactionValidator) {
		if now != nil {
			v.now = now
		}
	}
}

// TransactionValidator validates financial entries.
type TransactionValidator struct {
	loc Localizer
	now func() time.Time
}

// NewTransactionValidator returns a validator for financial entries.
func NewTransactionValidator(loc Localizer, opts ...TransactionOption) TransactionValidator {
	v := TransactionValidator{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// Validate checks every field of t and reports all failures.
func (v TransactionValidator) Validate(t Transaction) Result {
	rules := minLength(FieldDescription, "validations.transaction.description", t.Description)

	rules = append(rules, Rule{
		Check:   func() bool { return t.Amount > 0 },
		Field:   FieldAmount,
		Code:    CodeOutOfRange,
		Key:     "validations.transaction.value.invalid",
		Default: "Amount must be greater than zero",
	})

	date := strings.TrimSpace(t.Date)
	now := v.now()
	parsed, parseErr := time.ParseInLocation(DateLayout, date, now.Location())
	rules = append(rules,
		Rule{
			Check:   func() bool { return date != "" },
			Field:   FieldDate,
			Code:    CodeRequired,
			Key:     "validations.transaction.date.required",
			Default: "Date is required",
		},
		Rule{
			Check:   func() bool { return date == "" || parseErr == nil },
			Field:   FieldDate,
			Code:    CodeFormatMismatch,
			Key:     "validations.transaction.date.invalid_format",
			Default: "Date must use the YYYY-MM-DD format",
		},
		Rule{
			Check: func() bool {
				if parseErr != nil {
					return true
				}
				today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
				return !parsed.After(today)
			},
			Field:   FieldDate,
			Code:    CodeOutOfRange,
			Key:     "validations.transaction.date.future",
			Default: "Date cannot be in the future",
		},
		Rule{
			Check:   func() bool { return t.Type == TransactionIncome || t.Type == TransactionExpense },
			Field:   FieldType,
			Code:    CodeFormatMismatch,
			Key:     "validations.transaction.type.invalid",
			Default: "Type must be 'entrada' or 'saida'",
		},
	)

	return recordResult(v.loc, "validations.transaction", v.loc.Apply(rules...))
}

// User is a user account record.
type User struct {
	Name     string
	Email    string
	Password string
}

// UserValidator validates user records.
type UserValidator struct {
	loc      Localizer
	email    Validator
	password Validator
}

// NewUserValidator returns a validator for user records. The e-mail and
// password validators are usually extended ones.
func NewUserValidator(loc Localizer, email, password Validator) UserValidator {
	return UserValidator{loc: loc, email: email, password: password}
}

// Validate checks every field of u and reports all failures.
func (v UserValidator) Validate(u User) Result {
	errs := v.loc.Apply(minLength(FieldName, "validations.user.name", u.Name)...)
	errs = append(errs, v.email.Validate(u.Email).errors...)
	errs = append(errs, v.password.Validate(u.Password).errors...)
	return recordResult(v.loc, "validations.user", errs)
}

// Customer is a customer record. Email is optional.
type Customer struct {
	Name  string
	CPF   string
	Email string
}

// CustomerValidator validates customer records.
type CustomerValidator struct {
	loc   Localizer
	cpf   Validator
	email Validator
}

// NewCustomerValidator returns a validator for customer records.
func NewCustomerValidator(loc Localizer, cpf, email Validator) CustomerValidator {
	return CustomerValidator{loc: loc, cpf: cpf, email: email}
}

// Validate checks every field of c and reports all failures.
func (v CustomerValidator) Validate(c Customer) Result {
	errs := v.loc.Apply(minLength(FieldName, "validations.customer.name", c.Name)...)
	errs = append(errs, v.cpf.Validate(c.CPF).errors...)
	if strings.TrimSpace(c.Email) != "" {
		errs = append(errs, v.email.Validate(c.Email).errors...)
	}
	return recordResult(v.loc, "validations.customer", errs)
}
