package utils

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// FormatTelefoneBR renders a stored digits-only phone number in international
// notation for display. The stored value is never changed; when the number
// cannot be parsed the digits are returned as-is.
func FormatTelefoneBR(telefone string) string {
	digits := StripNonDigits(telefone)
	if digits == "" {
		return ""
	}

	candidate := digits
	if !strings.HasPrefix(candidate, "+") {
		if strings.HasPrefix(candidate, "55") && len(candidate) > 11 {
			candidate = "+" + candidate
		} else {
			candidate = "+55" + candidate
		}
	}

	num, err := phonenumbers.Parse(candidate, "BR")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return digits
	}

	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
