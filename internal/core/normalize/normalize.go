// Package normalize provides the deterministic text normalizer applied to product
// titles and tags before any lookup-table matching
// Pipeline order
// 1 Sanitize: controls to spaces or dropped, invalid UTF-8 dropped
// 2 Repair Latin-1/Windows-1252 mojibake (eg "pavÃ©" -> "pavé")
// 3 Unicode NFKD decomposition
// 4 Case folding
// 5 Remove combining marks (diacritics) and format characters
// 6 Width fold fullwidth to ASCII, then NFC recompose
// 7 Collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKD,                          // split é into e + U+0301
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
			norm.NFC,
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the normalized form of s following the pipeline described above
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = Sanitize(s)

	// 2 undo double encoding before the marks get stripped
	s = RepairMojibake(s)

	// 3-6 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 7 collapse whitespace and trim
	return collapseSpaces(ns)
}

// Key normalizes a lookup phrase. Identical to Normalize today, kept separate so
// table keys and scanned text can never drift apart silently
func Key(s string) string { return shared.Normalize(s) }

// Text is the package-level convenience over a shared Normalizer
func Text(s string) string { return shared.Normalize(s) }

var shared = New()

// collapseSpaces converts every whitespace run to a single ASCII space and trims the edges
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
