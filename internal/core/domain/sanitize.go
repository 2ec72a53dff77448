package domain

import "strings"

const (
	maxQueryLen    = 60
	maxFilenameLen = 80

	// Used when sanitization strips everything away.
	sanitizeFallback = "short"
)

// SafeQuery sanitizes a topic string for use as a provider search query.
func SafeQuery(s string) string {
	return sanitize(s, maxQueryLen)
}

// SafeFilename sanitizes a string for use as a filename.
func SafeFilename(s string) string {
	return sanitize(s, maxFilenameLen)
}

// sanitize collapses whitespace runs to single spaces, strips every
// character outside [A-Za-z0-9 _-], trims, and truncates to maxLen.
// The result of sanitizing a sanitized string is the string itself.
func sanitize(s string, maxLen int) string {
	s = strings.Join(strings.Fields(s), " ")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	// Stripping can leave adjacent spaces behind ("a ! b" -> "a  b"),
	// so collapse once more to keep sanitization idempotent.
	s = strings.Join(strings.Fields(b.String()), " ")

	if len(s) > maxLen {
		s = strings.TrimSpace(s[:maxLen])
	}
	if s == "" {
		return sanitizeFallback
	}
	return s
}
