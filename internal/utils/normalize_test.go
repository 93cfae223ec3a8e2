package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNome(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "joão da silva", "João Da Silva"},
		{"uppercase", "MARIA SOUZA", "Maria Souza"},
		{"mixed with padding", "  pEdRo ALVES  ", "Pedro Alves"},
		{"single word", "ana", "Ana"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeNome(tt.input))
		})
	}
}

func TestNormalizeTelefone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"formatted", "(21) 98765-4321", "21987654321"},
		{"with country code", "+55 21 98765-4321", "5521987654321"},
		{"already digits", "21987654321", "21987654321"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTelefone(tt.input))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"uppercase", "JOAO@EXAMPLE.COM", "joao@example.com"},
		{"padded", "  joao@example.com  ", "joao@example.com"},
		{"mixed", " Joao.Silva@Example.Com ", "joao.silva@example.com"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.input))
		})
	}
}
