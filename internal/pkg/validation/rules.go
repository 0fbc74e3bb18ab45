package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation rule patterns
var (
	// EmailPattern: something@something.tld with a TLD of at least two
	// characters. Unicode separators and BOM count as whitespace.
	EmailPattern = `^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]{2,}$`

	// PasswordMinLength is the minimum password length in characters
	PasswordMinLength = 6

	// PasswordMaxBytes is the longest password bcrypt can hash
	PasswordMaxBytes = 72
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// Messages returned to clients on credential validation failures
const (
	MsgMissingSignupFields = "Provide email, password and name"
	MsgMissingLoginFields  = "Provide email and password."
	MsgInvalidEmail        = "Provide a valid email address."
	MsgWeakPassword        = "Password must have at least 6 characters and contain at least one number, one lowercase and one uppercase letter."
	MsgPasswordTooLong     = "Password must not be longer than 72 bytes."
)

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail checks the email format
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsStrongPassword requires a single line of at least PasswordMinLength
// characters holding a digit, a lowercase and an uppercase ASCII letter.
// Line breaks split the password and are never counted.
func IsStrongPassword(password string) bool {
	for _, line := range strings.FieldsFunc(password, isLineBreak) {
		if isStrongLine(line) {
			return true
		}
	}
	return false
}

// IsPasswordTooLong reports passwords bcrypt would refuse
func IsPasswordTooLong(password string) bool {
	return len(password) > PasswordMaxBytes
}

func isStrongLine(line string) bool {
	if utf8.RuneCountInString(line) < PasswordMinLength {
		return false
	}

	var hasDigit, hasLower, hasUpper bool
	for _, r := range line {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		}
	}
	return hasDigit && hasLower && hasUpper
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}
