package domain

import (
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	linkedinPattern = regexp.MustCompile(`^https?://(?:www\.)?linkedin\.com/(?:in|pub)/[a-zA-Z0-9_-]+$`)
)

// IsValidEmail reports whether the address has a plausible mailbox shape.
// This is a structural check, not a deliverability check.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword requires at least one lowercase letter, one uppercase
// letter, one digit, and a minimum length of 8.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}

// IsLinkedinProfileLink reports whether url points at a personal LinkedIn
// profile (in/ or pub/), as opposed to a company or group page.
func IsLinkedinProfileLink(url string) bool {
	return linkedinPattern.MatchString(url)
}

// IsCredentialStructure validates the shape of an SMTP app password:
// exactly four space-separated groups of exactly four characters each,
// e.g. "abcd efgh ijkl mnop". Shape only, nothing cryptographic.
func IsCredentialStructure(credential string) bool {
	groups := strings.Split(credential, " ")
	if len(groups) != 4 {
		return false
	}
	for _, g := range groups {
		if len(g) != 4 {
			return false
		}
	}
	return true
}
