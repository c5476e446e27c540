package normalize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// mojibakeMarkers are the lead characters UTF-8 multibyte sequences turn into
// when the bytes were decoded as Windows-1252 (Ã for U+00C0..U+00FF, Â for U+0080..U+00BF, â for punctuation)
const mojibakeMarkers = "ÃÂâ"

// RepairMojibake reverses a single round of UTF-8 bytes decoded as Windows-1252.
// The text is only replaced when the re-encoded bytes form valid UTF-8 that is
// shorter than the input, otherwise s is returned unchanged
func RepairMojibake(s string) string {
	if !strings.ContainsAny(s, mojibakeMarkers) {
		return s
	}
	raw, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		// contains runes outside cp1252 so it was never mis-decoded as a whole
		return s
	}
	if !utf8.ValidString(raw) || utf8.RuneCountInString(raw) >= utf8.RuneCountInString(s) {
		return s
	}
	return raw
}
