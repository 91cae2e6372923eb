package checksum

const (
	// LenNationalID11 is the digit count of an individual identifier (CPF).
	LenNationalID11 = 11
	// LenNationalID14 is the digit count of an organization identifier (CNPJ).
	LenNationalID14 = 14
)

// Mod11 reduces a weighted digit sum to a check digit: 11 - (sum mod 11),
// with results above 9 collapsing to 0.
func Mod11(sum int) int {
	r := 11 - sum%11
	if r > 9 {
		return 0
	}
	return r
}

// CountDigits returns the number of ASCII digits in s.
func CountDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			n++
		}
	}
	return n
}

// collect copies the digit values of s into dst and returns how many digits
// s contains. Digits beyond len(dst) are counted but not stored.
func collect(dst []uint8, s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) {
			continue
		}
		if n < len(dst) {
			dst[n] = c - '0'
		}
		n++
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allSame(d []uint8) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}

// weightedDescending sums d[i] * (start - i); used by the 11-digit scheme.
func weightedDescending(d []uint8, start int) int {
	sum := 0
	for i, v := range d {
		sum += int(v) * (start - i)
	}
	return sum
}

// weightedCyclic sums d[i] * w where w starts at start, decrements each step
// and wraps from 2 back to 9; used by the 14-digit scheme.
func weightedCyclic(d []uint8, start int) int {
	sum := 0
	w := start
	for _, v := range d {
		sum += int(v) * w
		w--
		if w < 2 {
			w = 9
		}
	}
	return sum
}
