package lead

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^[0-9+()\-\s]{6,}$`)
)

// IsBlank reports whether text is empty or whitespace only.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// ValidEmail reports whether email looks like a deliverable address.
func ValidEmail(email string) bool {
	if IsBlank(email) {
		return false
	}
	return emailRe.MatchString(email)
}

// ValidPhone reports whether phone consists of at least six digits, spacing
// or punctuation characters.
func ValidPhone(phone string) bool {
	if IsBlank(phone) {
		return false
	}
	return phoneRe.MatchString(phone)
}
