package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripNonDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"formatted cpf", "123.456.789-00", "12345678900"},
		{"formatted cnpj", "12.345.678/0001-00", "12345678000100"},
		{"phone with symbols", "+55 (21) 98765-4321", "5521987654321"},
		{"already digits", "12345678900", "12345678900"},
		{"no digits", "abc-def", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripNonDigits(tt.input))
		})
	}
}

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{"formatted with 11 digits", "123.456.789-00", true},
		{"bare 11 digits", "12345678900", true},
		{"10 digits", "1234567890", false},
		{"12 digits", "123456789012", false},
		{"empty", "", false},
		{"letters only", "abcdefghijk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCPF(tt.cpf))
		})
	}
}

func TestValidateCNPJ(t *testing.T) {
	tests := []struct {
		name string
		cnpj string
		want bool
	}{
		{"empty is valid, cnpj is optional", "", true},
		{"formatted with 14 digits", "12.345.678/0001-00", true},
		{"bare 14 digits", "12345678000100", true},
		{"too short", "123", false},
		{"13 digits", "1234567800010", false},
		{"15 digits", "123456780001000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCNPJ(tt.cnpj))
		})
	}
}
