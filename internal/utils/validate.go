package utils

import "regexp"

// emailRe is a deliberately light format check: local part, domain and a
// 2-6 letter top-level label.  No DNS or deliverability check is performed.
var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)

// nameRe allows alphabetic letters and whitespace only.
var nameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// ValidEmail reports whether s looks like an email address.  An empty
// string fails the match, so callers do not need a separate presence check.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidUsername reports whether s contains only letters and spaces.
func ValidUsername(s string) bool {
	return nameRe.MatchString(s)
}

// ValidPassword reports whether s meets the minimum length of 6 characters.
// There is no upper bound and no complexity requirement.
func ValidPassword(s string) bool {
	return len(s) >= 6
}
