package validators

import (
	"strings"
	"unicode"
)

// MinPhoneDigits is the shortest phone accepted (DDD + number).
const MinPhoneDigits = 10

// PhoneDigits strips everything but digits, so "(11) 99999-9999" and
// "11999999999" are the same client.
func PhoneDigits(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsPhoneValid(phone string) bool {
	return len(PhoneDigits(phone)) >= MinPhoneDigits
}
