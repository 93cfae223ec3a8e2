package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTelefoneBR(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", FormatTelefoneBR(""))
	})

	t.Run("valid mobile number gets country code", func(t *testing.T) {
		got := FormatTelefoneBR("21987654321")
		assert.True(t, strings.HasPrefix(got, "+55"), "expected +55 prefix, got %q", got)
	})

	t.Run("number already carrying country code", func(t *testing.T) {
		got := FormatTelefoneBR("5521987654321")
		assert.True(t, strings.HasPrefix(got, "+55"), "expected +55 prefix, got %q", got)
	})

	t.Run("unparseable input falls back to digits", func(t *testing.T) {
		assert.Equal(t, "123", FormatTelefoneBR("12-3"))
	})
}
