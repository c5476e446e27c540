package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWord reports whether r is considered a word character for boundary checks.
// Letters, numbers, combining marks (Mn) and connector punctuation (Pc) count.
// Hyphen and most punctuation remain non-word
func isWord(r rune) bool {
	if r == utf8.RuneError || r == 0 {
		return false
	}
	return unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.In(r, unicode.Mn, unicode.Pc)
}

// boundaryOK reports whether [start,end) in s is flanked by non-word runes
func boundaryOK(s string, start, end int) bool {
	var prev, next rune
	if start > 0 {
		prev, _ = utf8.DecodeLastRuneInString(s[:start])
	}
	if end < len(s) {
		next, _ = utf8.DecodeRuneInString(s[end:])
	}
	return !isWord(prev) && !isWord(next)
}

// indexWord returns the byte offset of the first occurrence of phrase in s that
// sits on word boundaries, searching from offset from. -1 when absent
func indexWord(s, phrase string, from int) int {
	if phrase == "" || from < 0 || from > len(s) {
		return -1
	}
	for from <= len(s)-len(phrase) {
		i := strings.Index(s[from:], phrase)
		if i < 0 {
			return -1
		}
		start := from + i
		if boundaryOK(s, start, start+len(phrase)) {
			return start
		}
		from = start + 1
	}
	return -1
}

// lastWords returns up to n whitespace separated words that end exactly at offset
// end in s, nearest word last. Punctuation before end stops the walk
func lastWords(s string, end, n int) []string {
	if end > len(s) {
		end = len(s)
	}
	head := strings.TrimRight(s[:end], " ")
	var words []string
	for len(words) < n && head != "" {
		i := strings.LastIndexByte(head, ' ')
		w := head[i+1:]
		if w == "" || !isWordString(w) {
			break
		}
		words = append([]string{w}, words...)
		if i < 0 {
			break
		}
		head = strings.TrimRight(head[:i], " ")
	}
	return words
}

func isWordString(w string) bool {
	for _, r := range w {
		if !isWord(r) && r != '-' {
			return false
		}
	}
	return true
}
