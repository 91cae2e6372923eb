package checksum

// NationalID11 validates an 11-digit individual identifier (CPF).
//
// The first check digit is Mod11 of the first nine digits weighted 10..2;
// the second is Mod11 of the first ten digits weighted 11..2.
func NationalID11(s string) Status {
	var d [LenNationalID11]uint8
	if collect(d[:], s) != LenNationalID11 {
		return WrongLength
	}
	if allSame(d[:]) {
		return RepeatedDigits
	}
	if Mod11(weightedDescending(d[:9], 10)) != int(d[9]) {
		return BadCheckDigit
	}
	if Mod11(weightedDescending(d[:10], 11)) != int(d[10]) {
		return BadCheckDigit
	}
	return Valid
}

// NationalID14 validates a 14-digit organization identifier (CNPJ).
//
// The first check digit is Mod11 of the first twelve digits weighted
// 5,4,3,2,9,8,7,6,5,4,3,2; the second is Mod11 of the first thirteen digits
// weighted 6,5,4,3,2,9,8,7,6,5,4,3,2.
func NationalID14(s string) Status {
	var d [LenNationalID14]uint8
	if collect(d[:], s) != LenNationalID14 {
		return WrongLength
	}
	if allSame(d[:]) {
		return RepeatedDigits
	}
	if Mod11(weightedCyclic(d[:12], 5)) != int(d[12]) {
		return BadCheckDigit
	}
	if Mod11(weightedCyclic(d[:13], 6)) != int(d[13]) {
		return BadCheckDigit
	}
	return Valid
}

// CheckDigits11 computes the two check digits for the first nine digits of
// s. ok is false when s does not contain exactly nine digits.
func CheckDigits11(s string) (first, second int, ok bool) {
	var d [LenNationalID11]uint8
	if collect(d[:9], s) != 9 {
		return 0, 0, false
	}
	first = Mod11(weightedDescending(d[:9], 10))
	d[9] = uint8(first)
	second = Mod11(weightedDescending(d[:10], 11))
	return first, second, true
}

// CheckDigits14 computes the two check digits for the first twelve digits of
// s. ok is false when s does not contain exactly twelve digits.
func CheckDigits14(s string) (first, second int, ok bool) {
	var d [LenNationalID14]uint8
	if collect(d[:12], s) != 12 {
		return 0, 0, false
	}
	first = Mod11(weightedCyclic(d[:12], 5))
	d[12] = uint8(first)
	second = Mod11(weightedCyclic(d[:13], 6))
	return first, second, true
}
