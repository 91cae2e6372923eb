// Package sanitizer provides normalization helpers for the raw user input that
// validators receive: identifier digits, bank account numbers, e-mail
// addresses and Brazilian postal codes and phone numbers.
//
// The functions are grouped conceptually into two areas:
//
//   - Normalization – reducing input to the canonical characters a validator
//     inspects (Digits, DigitsAndHyphen, NormalizeEmail, ExtractEmailDomain).
//
//   - Presentation – re-formatting or masking already valid values for display
//     and logs (FormatCPF, FormatCNPJ, FormatCEP, FormatPhone, MaskDocument,
//     MaskEmail).
//
// The higher-order Apply and Compose helpers allow the creation of pipelines:
//
//	clean := sanitizer.Compose(
//	    strings.TrimSpace,
//	    sanitizer.Digits,
//	)
//
//	digits := clean(" 111.444.777-35 ") // "11144477735"
//
// # Error handling
//
// None of the helpers returns an error – presentation helpers fall back to
// the original input when it does not have the expected shape, so no data is
// lost.
//
// # Performance
//
// The package is stateless and depends only on the Go standard library.
package sanitizer
