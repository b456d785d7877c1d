// Package validation enforces the format rules for credentials and list
// filters. All checks are pure; callers decide which domain error a
// rejection maps to.
package validation

import "regexp"

const (
	// MinUsernameLength and MaxUsernameLength bound usernames; the upper
	// bound matches the 20-character storage column.
	MinUsernameLength = 3
	MaxUsernameLength = 20

	// MinPasswordLength is the only length rule for passwords; no upper
	// bound is enforced here since the stored hash is fixed-size.
	MinPasswordLength = 8
)

var (
	usernameRegex   = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	lowerRegex      = regexp.MustCompile(`[a-z]`)
	upperRegex      = regexp.MustCompile(`[A-Z]`)
	digitRegex      = regexp.MustCompile(`[0-9]`)
	symbolRegex     = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	dateFormatRegex = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}$`)
)

// ValidUsername reports whether username is non-empty, within length
// bounds, and made of letters, digits, '_', '.' or '-' only.
func ValidUsername(username string) bool {
	if username == "" {
		return false
	}
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return false
	}
	return usernameRegex.MatchString(username)
}

// ValidPassword reports whether password meets the minimum length and
// contains a lowercase letter, an uppercase letter, a digit and a symbol
// from the fixed punctuation set.
func ValidPassword(password string) bool {
	if password == "" {
		return false
	}
	if len(password) < MinPasswordLength {
		return false
	}
	if !lowerRegex.MatchString(password) {
		return false
	}
	if !upperRegex.MatchString(password) {
		return false
	}
	if !digitRegex.MatchString(password) {
		return false
	}
	return symbolRegex.MatchString(password)
}

// ValidDateFormat reports whether s matches the fixed YYYY.MM.DD pattern
// used by list filters.
func ValidDateFormat(s string) bool {
	return dateFormatRegex.MatchString(s)
}
