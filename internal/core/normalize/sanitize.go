package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sanitize turns line breaks and tabs into spaces and drops the other C0/C1
// controls, DEL, U+FFFD and invalid UTF-8. Clean input is returned as is
func Sanitize(s string) string {
	if isClean(s) {
		return s
	}
	return strings.Map(sanitizeRune, s)
}

func sanitizeRune(r rune) rune {
	switch {
	case r == '\t', r == '\n', r == '\v', r == '\f', r == '\r':
		return ' '
	case r == utf8.RuneError, unicode.IsControl(r):
		return -1
	}
	return r
}

func isClean(s string) bool {
	for _, r := range s {
		if r == utf8.RuneError || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
