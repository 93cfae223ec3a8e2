package utils

import "regexp"

var nonDigits = regexp.MustCompile(`\D`)

// StripNonDigits removes every non-digit character from a string
func StripNonDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidateCPF checks that a CPF reduces to exactly 11 digits after stripping
// non-digit characters. Submitters type CPFs with dots and dashes; the stored
// value keeps the submitted form and uniqueness is enforced by the store.
func ValidateCPF(cpf string) bool {
	return len(StripNonDigits(cpf)) == 11
}

// ValidateCNPJ checks that a CNPJ reduces to exactly 14 digits after
// stripping non-digit characters. CNPJ is optional, so empty is valid.
func ValidateCNPJ(cnpj string) bool {
	if cnpj == "" {
		return true
	}
	return len(StripNonDigits(cnpj)) == 14
}
