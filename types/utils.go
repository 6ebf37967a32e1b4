package types

import "strings"

// NormalizeContact lowercases and trims a contact value such as an
// email address so that equivalent inputs produce the same identity key.
func NormalizeContact(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePhone strips formatting characters from a phone number.
// Digits and a leading plus sign are kept; everything else is dropped.
func NormalizePhone(s string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(s) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
