// Package compose assembles extracted attributes into a prioritized, deduplicated,
// budget-bounded listing title
package compose

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"titlesmith/internal/core/extract"
)

// Rescue selects what happens when the title overflows its budget
type Rescue string

const (
	// RescueAbbreviate substitutes "CZ" for "Cubic Zirconia" once
	RescueAbbreviate Rescue = "abbreviate"
	// RescueSlice abbreviates, then hard-slices to the budget
	RescueSlice Rescue = "slice"
	// RescueNone leaves an overflowing title as is
	RescueNone Rescue = "none"
)

// ParseRescue maps a config value onto a Rescue mode
func ParseRescue(s string) (Rescue, error) {
	switch r := Rescue(strings.ToLower(strings.TrimSpace(s))); r {
	case RescueAbbreviate, RescueSlice, RescueNone:
		return r, nil
	default:
		return "", fmt.Errorf("compose: unknown rescue mode %q", s)
	}
}

// Budgets the marketplace accepts
const (
	BudgetShort   = 75
	BudgetDefault = 80
)

const (
	sep         = ", "
	longStone   = "Cubic Zirconia"
	shortStone  = "CZ"
	setSuffix   = "Set"
	setQuantity = "2 Pcs"
)

// Policy controls composition
type Policy struct {
	// Budget is the maximum title length in characters; <= 0 means BudgetDefault
	Budget int
	// StrictDescriptors stops at the first descriptor that does not fit
	StrictDescriptors bool
	// Rescue is applied when the title exceeds Budget; empty means RescueAbbreviate
	Rescue Rescue
}

// Sections are the pieces a title was built from
type Sections struct {
	Base        string   `json:"base"`
	Style       string   `json:"style,omitempty"`
	Stone       string   `json:"stone,omitempty"`
	Metal       string   `json:"metal,omitempty"`
	Descriptors []string `json:"descriptors,omitempty"`
}

// Result is one composed title plus its bookkeeping
type Result struct {
	Title    string   `json:"title"`
	Length   int      `json:"length"`
	Budget   int      `json:"budget"`
	Overflow bool     `json:"overflow"`
	Rescued  bool     `json:"rescued"`
	Sections Sections `json:"sections"`
}

// Len counts characters the way the marketplace does, in code points
func Len(s string) int { return utf8.RuneCountInString(s) }

// ComposeString returns only the title
func ComposeString(a extract.Attributes, p Policy) string {
	return Compose(a, p).Title
}

// Compose builds the title. Mandatory sections come in fixed priority
// base, style, stone, metal; descriptors are appended only while they fit
func Compose(a extract.Attributes, p Policy) Result {
	budget := p.Budget
	if budget <= 0 {
		budget = BudgetDefault
	}
	rescue := p.Rescue
	if rescue == "" {
		rescue = RescueAbbreviate
	}

	var used UsedTerms
	var s Sections

	s.Base, _ = used.Claim(base(a))

	var styles []string
	for _, st := range a.Styles {
		if t, ok := used.Claim(st); ok {
			styles = append(styles, t)
		}
	}
	s.Style = strings.Join(styles, " ")

	s.Stone = compound(&used, a.StoneShape, a.StoneColor, a.StoneType)
	s.Metal = compound(&used, a.Material, a.PlatingLabel())

	title := joinNonEmpty(s.Base, s.Style, s.Stone, s.Metal)

	var descriptors []string
	if a.IsSet {
		descriptors = append(descriptors, setQuantity)
	}
	descriptors = append(descriptors, a.Descriptors...)
	for _, d := range descriptors {
		t, ok := used.Claim(d)
		if !ok {
			continue
		}
		next := t
		if title != "" {
			next = title + sep + t
		}
		if Len(next) <= budget {
			title = next
			s.Descriptors = append(s.Descriptors, t)
			continue
		}
		if p.StrictDescriptors {
			break
		}
	}

	r := Result{Budget: budget, Sections: s}
	if Len(title) > budget && rescue != RescueNone {
		if strings.Contains(title, longStone) {
			title = strings.ReplaceAll(title, longStone, shortStone)
			r.Rescued = true
		}
		if rescue == RescueSlice && Len(title) > budget {
			title = slice(title, budget)
			r.Rescued = true
		}
	}

	r.Title = strings.TrimSpace(title)
	r.Length = Len(r.Title)
	r.Overflow = r.Length > budget
	return r
}

// base is "<Audience>'s <ProductType>[ Set]", without the possessive when unspecified
func base(a extract.Attributes) string {
	parts := []string{a.Audience.Possessive(), a.ProductType}
	if a.IsSet {
		parts = append(parts, setSuffix)
	}
	return joinWords(parts...)
}

// compound claims each part on its own, then the joined phrase. Parts already
// placed earlier in the title are dropped
func compound(used *UsedTerms, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if t, ok := used.Claim(p); ok {
			kept = append(kept, t)
		}
	}
	phrase := strings.Join(kept, " ")
	if len(kept) > 1 {
		used.Claim(phrase)
	}
	return phrase
}

func joinWords(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

// slice cuts s to n code points and drops a dangling separator
func slice(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimRight(string(r[:n]), " ,&-")
}
