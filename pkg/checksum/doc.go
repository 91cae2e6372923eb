// Package checksum implements the mod-11 check-digit arithmetic used by
// Brazilian tax identifiers: the 11-digit individual identifier (CPF) and the
// 14-digit organization identifier (CNPJ).
//
// Every function normalizes its input by discarding all non-digit characters
// before doing any arithmetic, so formatted values ("111.444.777-35") and raw
// digit strings are treated the same. Digits are collected into fixed-size
// arrays; the package performs no heap allocation and keeps no state, which
// makes it safe for unrestricted concurrent use.
//
// # Usage
//
//	switch checksum.NationalID11("111.444.777-35") {
//	case checksum.Valid:
//	    // accept
//	case checksum.WrongLength, checksum.RepeatedDigits, checksum.BadCheckDigit:
//	    // reject with a specific reason
//	}
//
// The result is a Status value rather than an error: every outcome is an
// expected classification of user input, not a failure of the function.
package checksum
