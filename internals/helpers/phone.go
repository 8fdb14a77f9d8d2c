package helper

import (
	"regexp"
	"strings"
)

var idPhoneRe = regexp.MustCompile(`^\+62\d{9,13}$`)

// NormalizePhone mengubah prefix lokal "08..." menjadi format internasional "+62...".
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "08") {
		return "+62" + phone[1:]
	}
	return phone
}

// IsValidIndonesianPhone: format +62 diikuti 9-13 digit.
func IsValidIndonesianPhone(phone string) bool {
	return idPhoneRe.MatchString(phone)
}
