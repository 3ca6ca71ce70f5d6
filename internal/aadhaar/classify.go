package aadhaar

import "strings"

// IsSecure reports whether payload is an optionally signed base-10 integer,
// ignoring surrounding whitespace. Single underscores may separate digits.
func IsSecure(payload string) bool {
	s := strings.TrimSpace(payload)
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	prevDigit := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			prevDigit = true
		case c == '_' && prevDigit && i+1 < len(s):
			prevDigit = false
		default:
			return false
		}
	}
	return prevDigit
}

// Classifier adapts IsSecure to domain.Classifier.
type Classifier struct{}

// IsSecure implements domain.Classifier.
func (Classifier) IsSecure(payload string) bool { return IsSecure(payload) }
