package validator_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestBankAccountValidator(t *testing.T) {
	t.Parallel()
	v := validator.NewBankAccountValidator(testLocalizer(t))

	t.Run("valid", func(t *testing.T) {
		res := v.Validate(validator.BankAccount{Bank: "001", Agency: "1234", Account: "56789-0", Digit: "1"})
		assert.True(t, res.Success())
		assert.Equal(t, "Dados bancários válidos", res.Message())
	})

	t.Run("digit is optional", func(t *testing.T) {
		res := v.Validate(validator.BankAccount{Bank: "341", Agency: "1234", Account: "12345"})
		assert.True(t, res.Success())
	})

	t.Run("accumulates every field error in order", func(t *testing.T) {
		res := v.Validate(validator.BankAccount{Bank: " ", Agency: "12", Account: "1", Digit: "123"})
		require.False(t, res.Success())
		assert.Equal(t, []string{
			validator.FieldBank, validator.FieldAgency, validator.FieldAccount, validator.FieldCheckDigit,
		}, res.Fields())
		assert.Equal(t, "Dados bancários inválidos", res.Message())
	})
}

func TestTransactionValidator(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.April, 12, 15, 30, 0, 0, time.UTC)
	v := validator.NewTransactionValidator(validator.Localizer{}, validator.WithClock(func() time.Time { return now }))

	valid := validator.Transaction{Description: "Aluguel", Amount: 1500, Date: "2025-04-12", Type: validator.TransactionExpense}

	tests := []struct {
		name   string
		mutate func(tx *validator.Transaction)
		keys   []string
	}{
		{name: "valid", mutate: func(*validator.Transaction) {}},
		{name: "income", mutate: func(tx *validator.Transaction) { tx.Type = validator.TransactionIncome }},
		{name: "past date", mutate: func(tx *validator.Transaction) { tx.Date = "2024-12-31" }},
		{name: "missing description", mutate: func(tx *validator.Transaction) { tx.Description = "" },
			keys: []string{"validations.transaction.description.required"}},
		{name: "short description", mutate: func(tx *validator.Transaction) { tx.Description = "ab" },
			keys: []string{"validations.transaction.description.too_short"}},
		{name: "zero amount", mutate: func(tx *validator.Transaction) { tx.Amount = 0 },
			keys: []string{"validations.transaction.value.invalid"}},
		{name: "negative amount", mutate: func(tx *validator.Transaction) { tx.Amount = -10 },
			keys: []string{"validations.transaction.value.invalid"}},
		{name: "nan amount", mutate: func(tx *validator.Transaction) { tx.Amount = math.NaN() },
			keys: []string{"validations.transaction.value.invalid"}},
		{name: "missing date", mutate: func(tx *validator.Transaction) { tx.Date = "" },
			keys: []string{"validations.transaction.date.required"}},
		{name: "malformed date", mutate: func(tx *validator.Transaction) { tx.Date = "12/04/2025" },
			keys: []string{"validations.transaction.date.invalid_format"}},
		{name: "future date", mutate: func(tx *validator.Transaction) { tx.Date = "2025-04-13" },
			keys: []string{"validations.transaction.date.future"}},
		{name: "unknown type", mutate: func(tx *validator.Transaction) { tx.Type = "transfer" },
			keys: []string{"validations.transaction.type.invalid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tx := valid
			tt.mutate(&tx)
			res := v.Validate(tx)
			assert.Equal(t, len(tt.keys) == 0, res.Success())
			assert.Equal(t, tt.keys, keys(res))
		})
	}

	t.Run("everything wrong", func(t *testing.T) {
		res := v.Validate(validator.Transaction{})
		assert.Equal(t, []string{
			validator.FieldDescription, validator.FieldAmount, validator.FieldDate, validator.FieldType,
		}, res.Fields())
		assert.Equal(t, "Validation failed", res.Message())
	})
}

func TestUserValidator(t *testing.T) {
	t.Parallel()
	loc := validator.Localizer{}
	v := validator.NewUserValidator(loc,
		validator.Extend(validator.NewEmail(loc), validator.BlockedEmailDomains(loc, "spam.com")),
		validator.Extend(validator.NewPassword(loc, validator.DefaultPasswordPolicy()), validator.DictionaryWords(loc, "querty")),
	)

	assert.True(t, v.Validate(validator.User{Name: "Maria", Email: "maria@example.com", Password: "Abcdefg1!"}).Success())

	res := v.Validate(validator.User{Name: "Al", Email: "al@spam.com", Password: "abc"})
	assert.Equal(t, []string{validator.FieldName, validator.FieldEmail, validator.FieldPassword}, res.Fields())
	assert.True(t, res.Has(validator.FieldEmail))
	assert.Contains(t, keys(res), "validations.email.blocked_domain")
	assert.Contains(t, keys(res), "validations.user.name.too_short")
}

func TestCustomerValidator(t *testing.T) {
	t.Parallel()
	loc := validator.Localizer{}
	v := validator.NewCustomerValidator(loc,
		validator.Extend(validator.NewCPF(loc), validator.BlockedDocuments(loc, "22222222222")),
		validator.NewEmail(loc),
	)

	assert.True(t, v.Validate(validator.Customer{Name: "João Silva", CPF: "111.444.777-35"}).Success())
	assert.True(t, v.Validate(validator.Customer{Name: "João Silva", CPF: "111.444.777-35", Email: "joao@example.com"}).Success())

	res := v.Validate(validator.Customer{Name: "", CPF: "222.222.222-22", Email: "joao@"})
	assert.Equal(t, []string{
		"validations.customer.name.required",
		"validations.cpf.invalid_digits",
		"validations.document.blocked",
		"validations.email.invalid_format",
	}, keys(res))
}
