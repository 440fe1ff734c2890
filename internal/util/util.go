package util

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail lowercases and trims an email address so lookups and
// uniqueness checks are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail reports whether the address has a plausible mailbox@domain
// shape. It is a syntax check only, not a deliverability check.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePasswordLength reports whether the password meets the minimum
// length requirement.
func ValidatePasswordLength(password string, minLength int) bool {
	return len(password) >= minLength
}
