package share

import (
	"errors"
	"strings"

	"go.mau.fi/whatsmeow/types"
)

// ErrNoPhone is returned when a phone number has no digits at all.
var ErrNoPhone = errors.New("phone number has no digits")

// JIDFromPhone converts a free-form phone number into a WhatsApp user JID.
// Everything but digits is stripped; numbers without a country code get
// countryCode prefixed.
func JIDFromPhone(phone, countryCode string) (types.JID, error) {
	digits := digitsOnly(phone)
	if digits == "" {
		return types.JID{}, ErrNoPhone
	}
	if countryCode != "" && !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}
	return types.NewJID(digits, types.DefaultUserServer), nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
