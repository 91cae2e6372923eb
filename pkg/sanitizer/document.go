package sanitizer

import "strings"

// FormatCPF renders an 11-digit identifier as "000.000.000-00".
// Input with a different digit count is returned unchanged.
func FormatCPF(cpf string) string {
	d := Digits(cpf)
	if len(d) != 11 {
		return cpf
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// FormatCNPJ renders a 14-digit identifier as "00.000.000/0000-00".
// Input with a different digit count is returned unchanged.
func FormatCNPJ(cnpj string) string {
	d := Digits(cnpj)
	if len(d) != 14 {
		return cnpj
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// FormatDocument picks FormatCPF or FormatCNPJ by digit count.
func FormatDocument(doc string) string {
	switch len(Digits(doc)) {
	case 11:
		return FormatCPF(doc)
	case 14:
		return FormatCNPJ(doc)
	default:
		return doc
	}
}

// FormatCEP renders an 8-digit postal code as "00000-000".
func FormatCEP(cep string) string {
	d := Digits(cep)
	if len(d) != 8 {
		return cep
	}
	return d[0:5] + "-" + d[5:8]
}

// FormatPhone renders 10 or 11 digit numbers as "(11) 9999-9999" or
// "(11) 99999-9999".
func FormatPhone(phone string) string {
	d := Digits(phone)
	switch len(d) {
	case 10:
		return "(" + d[0:2] + ") " + d[2:6] + "-" + d[6:10]
	case 11:
		return "(" + d[0:2] + ") " + d[2:7] + "-" + d[7:11]
	default:
		return phone
	}
}

// MaskDocument hides every digit except the last two, which is how
// identifiers are written to logs.
func MaskDocument(doc string) string {
	d := Digits(doc)
	if len(d) <= 2 {
		return strings.Repeat("*", len(d))
	}
	return strings.Repeat("*", len(d)-2) + d[len(d)-2:]
}
