package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// NormalizeEmail lowercases and trims an email address. Returns "" for nil.
func NormalizeEmail(email *string) string {
	if email == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*email))
}

// EmailLocalPart returns the part of an email before "@", or the whole
// string when there is no "@".
func EmailLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}

// NameTokens splits a normalized name into words, dropping punctuation
// other than hyphens and apostrophes.
func NameTokens(name string) []string {
	return strings.FieldsFunc(NormalizeText(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '\''
	})
}
