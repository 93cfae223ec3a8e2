package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeNome trims a name and title-cases each word
func NormalizeNome(nome string) string {
	trimmed := strings.TrimSpace(nome)
	if trimmed == "" {
		return ""
	}
	// cases.Caser carries internal state, so build one per call
	caser := cases.Title(language.BrazilianPortuguese)
	return caser.String(strings.ToLower(trimmed))
}

// NormalizeTelefone strips everything except digits from a phone number
func NormalizeTelefone(telefone string) string {
	return StripNonDigits(telefone)
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
