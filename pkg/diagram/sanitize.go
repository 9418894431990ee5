package diagram

import (
	"strings"
	"unicode"
)

// Sanitize removes every rune that is not an ASCII letter, digit or
// whitespace, collapses whitespace runs into a single space and trims the
// result.
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingSpace := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		case isASCIIAlnum(r):
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate returns at most limit runes of text. No ellipsis is appended.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	count := 0
	for idx := range text {
		if count == limit {
			return text[:idx]
		}
		count++
	}
	return text
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
