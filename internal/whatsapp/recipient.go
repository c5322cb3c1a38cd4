package whatsapp

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	localNumberLen = 10
	minNumberLen   = 10
	maxNumberLen   = 15
)

// NormalizeRecipient strips everything but digits from raw. A ten digit
// local number gets countryCode prepended. The result must be 10 to 15 digits.
func NormalizeRecipient(raw, countryCode string) (string, error) {
	digits := digitsOnly(raw)
	if len(digits) == localNumberLen {
		digits = digitsOnly(countryCode) + digits
	}

	if len(digits) < minNumberLen || len(digits) > maxNumberLen {
		return "", fmt.Errorf("%w: %q", ErrInvalidRecipient, raw)
	}

	return digits, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
