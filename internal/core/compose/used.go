package compose

import "strings"

// UsedTerms records the lowercased terms already placed in one title, in claim order.
// A zero value is ready to use; it is not safe for concurrent use
type UsedTerms struct {
	seen  map[string]struct{}
	order []string
}

// Claim reserves term. It returns the term and true on first claim, and "" and
// false when the term is empty or was claimed before
func (u *UsedTerms) Claim(term string) (string, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", false
	}
	k := strings.ToLower(term)
	if u.seen == nil {
		u.seen = make(map[string]struct{})
	}
	if _, ok := u.seen[k]; ok {
		return "", false
	}
	u.seen[k] = struct{}{}
	u.order = append(u.order, term)
	return term, true
}

// Has reports whether term was claimed
func (u *UsedTerms) Has(term string) bool {
	_, ok := u.seen[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// Order returns the claimed terms in first-claim order
func (u *UsedTerms) Order() []string {
	return append([]string(nil), u.order...)
}
