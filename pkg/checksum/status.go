package checksum

// Status classifies an identifier after checksum evaluation.
type Status uint8

const (
	// Valid means the length is correct and both check digits match.
	Valid Status = iota
	// WrongLength means the normalized input has the wrong number of digits.
	WrongLength
	// RepeatedDigits means every digit is the same (e.g. "00000000000").
	// Such values satisfy the arithmetic but are never issued.
	RepeatedDigits
	// BadCheckDigit means one of the two trailing check digits is wrong.
	BadCheckDigit
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case WrongLength:
		return "wrong_length"
	case RepeatedDigits:
		return "repeated_digits"
	case BadCheckDigit:
		return "bad_check_digit"
	default:
		return "unknown"
	}
}

// OK reports whether s is Valid.
func (s Status) OK() bool {
	return s == Valid
}
