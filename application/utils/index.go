package utils

import (
	"errors"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/oklog/ulid/v2"
)

func GenerateULIDString() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()).String()
}

func GetStringPointer(text string) *string {
	return &text
}

var ErrInvalidPhone = errors.New("phone number could not be normalized")

// NormalizePhoneNumber turns lead-form input into E.164. Non-digits are
// stripped; 10-digit US numbers get a +1 prefix, 11-digit numbers starting
// with 1 get a + prefix, anything else is rejected. The lead form is
// US-only, so no other country codes are accepted.
func NormalizePhoneNumber(raw string) (string, error) {
	var digits strings.Builder
	for _, char := range raw {
		if unicode.IsDigit(char) {
			digits.WriteRune(char)
		}
	}
	cleaned := digits.String()
	switch {
	case len(cleaned) == 10:
		return "+1" + cleaned, nil
	case len(cleaned) == 11 && strings.HasPrefix(cleaned, "1"):
		return "+" + cleaned, nil
	default:
		return "", ErrInvalidPhone
	}
}

// RedirectWithReason appends a reason code to a redirect target, preserving
// any query the URL already carries.
func RedirectWithReason(base string, reason string) string {
	parsed, err := url.Parse(base)
	if err != nil {
		return base
	}
	query := parsed.Query()
	query.Set("reason", reason)
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
