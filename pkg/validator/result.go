package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Code classifies a validation failure independently of its message text.
type Code string

const (
	CodeWrongLength     Code = "wrong_length"
	CodeRepeatedDigits  Code = "repeated_digits"
	CodeBadCheckDigit   Code = "bad_check_digit"
	CodeFormatMismatch  Code = "format_mismatch"
	CodePolicyViolation Code = "policy_violation"
	CodeRequired        Code = "required"
	CodeOutOfRange      Code = "out_of_range"
)

// FieldError is a single validation failure scoped to one input field.
// Field is empty for failures about the whole input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Key     string `json:"key"`
	Code    Code   `json:"code"`
}

// ValidationErrors represents a collection of field errors.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		if err.Field == "" {
			parts = append(parts, err.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any error belongs to field.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages of field in insertion order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct field names in order of first appearance.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// HasCode reports whether any error carries code.
func (ve ValidationErrors) HasCode(code Code) bool {
	for _, err := range ve {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

// IsValidationError reports whether err wraps ValidationErrors.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// Result is the outcome of a validation. It is successful iff it carries no
// errors. Results are values: Append and WithMessage return modified copies
// and never share the error slice with the receiver.
type Result struct {
	message string
	errors  ValidationErrors
}

// NewResult returns a result with the given summary message and errors.
func NewResult(message string, errs ...FieldError) Result {
	r := Result{message: message}
	if len(errs) > 0 {
		r.errors = slices.Clone(errs)
	}
	return r
}

// Success reports whether no rule failed.
func (r Result) Success() bool {
	return len(r.errors) == 0
}

// Message returns the summary message. It may be empty for failed results
// whose detail is carried by the field errors.
func (r Result) Message() string {
	return r.message
}

// Errors returns a copy of the field errors in insertion order.
func (r Result) Errors() []FieldError {
	return slices.Clone(r.errors)
}

// Len returns the number of field errors.
func (r Result) Len() int {
	return len(r.errors)
}

// Err returns nil for a successful result and ValidationErrors otherwise.
func (r Result) Err() error {
	if r.Success() {
		return nil
	}
	return slices.Clone(r.errors)
}

// Fields returns the distinct names of the failed fields.
func (r Result) Fields() []string {
	return r.errors.Fields()
}

// Has reports whether field failed.
func (r Result) Has(field string) bool {
	return r.errors.Has(field)
}

// Messages returns the error messages of field.
func (r Result) Messages(field string) []string {
	return r.errors.Get(field)
}

// Append returns a copy of r with errs appended after the existing errors.
func (r Result) Append(errs ...FieldError) Result {
	if len(errs) == 0 {
		return r
	}
	out := Result{message: r.message, errors: make(ValidationErrors, 0, len(r.errors)+len(errs))}
	out.errors = append(out.errors, r.errors...)
	out.errors = append(out.errors, errs...)
	return out
}

// WithMessage returns a copy of r with a different summary message.
func (r Result) WithMessage(message string) Result {
	r.message = message
	return r
}

type resultJSON struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	errs := r.errors
	if errs == nil {
		errs = ValidationErrors{}
	}
	return json.Marshal(resultJSON{
		Success: r.Success(),
		Message: r.message,
		Errors:  errs,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The success flag is derived
// from the decoded errors.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw resultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = NewResult(raw.Message, raw.Errors...)
	return nil
}
