// Package extract implements the attribute extractor: it reads a raw product title
// and tag list against the lexicon tables and returns structured listing attributes
package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"titlesmith/internal/core/lexicon"
	"titlesmith/internal/core/normalize"
)

// Audience is the possessive prefix of the composed title
type Audience string

const (
	// AudienceWomen is the default audience
	AudienceWomen Audience = "Women"
	// AudienceMen is selected by a men tag
	AudienceMen Audience = "Men"
	// AudienceUnspecified omits the possessive prefix
	AudienceUnspecified Audience = "Unspecified"
)

// Possessive renders the audience as a title prefix, empty when unspecified
func (a Audience) Possessive() string {
	switch a {
	case AudienceWomen, AudienceMen:
		return string(a) + "'s"
	default:
		return ""
	}
}

// Literal descriptors
const (
	HighPolished = "High Polished"
	Gift         = "Gift"
)

// MaxPlatings caps the plating labels kept per title
const MaxPlatings = 2

// RawInput is what the upstream collaborator hands over
type RawInput struct {
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// Attributes is the structured result of one extraction run
type Attributes struct {
	Audience    Audience `json:"audience"`
	IsSet       bool     `json:"is_set"`
	ProductType string   `json:"product_type"`
	Styles      []string `json:"styles,omitempty"`
	StoneShape  string   `json:"stone_shape,omitempty"`
	StoneColor  string   `json:"stone_color,omitempty"`
	StoneType   string   `json:"stone_type,omitempty"`
	Material    string   `json:"material,omitempty"`
	Plating     []string `json:"plating,omitempty"`
	Descriptors []string `json:"descriptors,omitempty"`
}

// PlatingLabel renders the plating set as one phrase
// Two platings read "<first without -Plated> & <second>", eg "Gold & Rose Gold-Plated"
func (a Attributes) PlatingLabel() string {
	switch len(a.Plating) {
	case 0:
		return ""
	case 1:
		return a.Plating[0]
	default:
		return strings.TrimSuffix(a.Plating[0], "-Plated") + " & " + a.Plating[1]
	}
}

// Options controls extractor behavior
type Options struct {
	// AppendGift adds the Gift filler descriptor
	AppendGift bool
}

// Extractor runs extraction against one lexicon. It holds no per-call state and
// is safe for concurrent use
type Extractor struct {
	lex  *lexicon.Lexicon
	opts Options

	plating      *automaton
	platingLabel []string
}

// leading SKU token: must carry a digit so words like "Women's" survive
var skuPrefix = regexp.MustCompile(`^[A-Z-]*[0-9][A-Z0-9-]*(?:\s*[-–—]\s*|\s+)`)

// words that end an "in <color>" capture
var colorStop = map[string]struct{}{
	"and": {}, "with": {}, "on": {}, "for": {}, "ip": {}, "in": {}, "or": {},
}

const maxColorWords = 3

// New builds an Extractor over lex
func New(lex *lexicon.Lexicon, opts Options) *Extractor {
	e := &Extractor{lex: lex, opts: opts}

	ac := newAutomaton()
	id := 0
	lex.Platings.Each(func(en lexicon.Entry) bool {
		ac.add(en.Phrase, id)
		e.platingLabel = append(e.platingLabel, en.Label)
		id++
		return true
	})
	ac.build()
	e.plating = ac
	return e
}

// StripSKU removes a leading catalog number such as "TK3180 - " from a raw title
func StripSKU(title string) string {
	return skuPrefix.ReplaceAllString(strings.TrimSpace(title), "")
}

// Extract derives Attributes from in. It never fails: a rule without a match
// leaves its field empty or at its default
func (e *Extractor) Extract(in RawInput) Attributes {
	full := normalize.Key(in.Title)
	work := normalize.Key(StripSKU(in.Title))

	tags := make([]string, 0, len(in.Tags))
	tagSet := make(map[string]struct{}, len(in.Tags))
	for _, t := range in.Tags {
		k := strings.TrimSuffix(normalize.Key(t), ",")
		if k == "" {
			continue
		}
		if _, dup := tagSet[k]; dup {
			continue
		}
		tagSet[k] = struct{}{}
		tags = append(tags, k)
	}

	a := Attributes{
		Audience:    e.audience(tagSet),
		IsSet:       e.isSet(full, tagSet),
		ProductType: e.productType(tagSet),
		Styles:      e.styles(tags),
	}

	if !e.noStone(full, tags) {
		work = e.stone(&a, work, tags, tagSet)
	}
	a.Plating = e.platings(work, tags)
	a.Material = e.material(work, tagSet)

	if anyWord(work, e.lex.HighPolished) {
		a.Descriptors = append(a.Descriptors, HighPolished)
	}
	if e.opts.AppendGift {
		a.Descriptors = append(a.Descriptors, Gift)
	}
	return a
}

func (e *Extractor) audience(tags map[string]struct{}) Audience {
	if anyTag(tags, e.lex.MenTags) {
		return AudienceMen
	}
	if anyTag(tags, e.lex.UnisexTags) {
		return AudienceUnspecified
	}
	return AudienceWomen
}

func (e *Extractor) isSet(full string, tags map[string]struct{}) bool {
	if anyTag(tags, e.lex.SetTags) {
		return true
	}
	return e.lex.SetMarker != "" && strings.Contains(full, e.lex.SetMarker)
}

// productType walks the rules in order, first match wins
func (e *Extractor) productType(tags map[string]struct{}) string {
	for _, r := range e.lex.ProductTypes {
		if r.Matches(tags) {
			return r.Label
		}
	}
	return e.lex.DefaultProductType
}

// styles uses substring containment so plural and compound tags qualify
func (e *Extractor) styles(tags []string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, t := range tags {
		e.lex.Styles.Each(func(en lexicon.Entry) bool {
			if !strings.Contains(t, en.Phrase) {
				return true
			}
			if _, ok := seen[en.Label]; !ok {
				seen[en.Label] = struct{}{}
				out = append(out, en.Label)
			}
			return false
		})
	}
	return out
}

// noStone reports a "no stone" mention anywhere in the title or inside any tag.
// full still carries the SKU, so it covers the stripped title too
func (e *Extractor) noStone(full string, tags []string) bool {
	if anyWord(full, e.lex.NoStone) {
		return true
	}
	for _, t := range tags {
		if anyWord(t, e.lex.NoStone) {
			return true
		}
	}
	return false
}

// stone fills the stone fields and returns the working title with any
// "in <color>" span removed
func (e *Extractor) stone(a *Attributes, work string, tags []string, tagSet map[string]struct{}) string {
	if label, ok := firstEntry(e.lex.Epoxy, work, tags); ok {
		a.StoneType = label
		return work
	}

	typ, ok := firstEntry(e.lex.StoneTypes, work, tags)
	if !ok {
		return work
	}
	a.StoneType = typ

	e.lex.Shapes.Each(func(en lexicon.Entry) bool {
		if _, ok := tagSet[en.Phrase]; ok {
			a.StoneShape = en.Label
			return false
		}
		return true
	})

	// where the stone is mentioned in the title, if at all
	start, end := -1, 0
	e.lex.StoneTypes.Each(func(en lexicon.Entry) bool {
		if i := indexWord(work, en.Phrase, 0); i >= 0 {
			start, end = i, i+len(en.Phrase)
			return false
		}
		return true
	})

	if color, from, to, ok := e.colorPhrase(work, end); ok {
		a.StoneColor = color
		return collapse(work[:from] + " " + work[to:])
	}
	if start >= 0 {
		a.StoneColor = e.precedingColor(work, start)
	}
	return work
}

// colorPhrase finds "in <words>" at or after offset from and maps the words
// through the color table, title-casing them when no entry exists
func (e *Extractor) colorPhrase(work string, from int) (label string, start, end int, ok bool) {
	for at := from; ; {
		i := indexWord(work, "in", at)
		if i < 0 {
			return "", 0, 0, false
		}
		at = i + len("in")

		words, stop := colorWords(work, at)
		if len(words) == 0 {
			continue
		}
		// longest prefix present in the table wins
		for n := len(words); n > 0; n-- {
			phrase := strings.Join(words[:n], " ")
			if l, found := e.lex.StoneColors.Lookup(phrase); found {
				return l, i, stop[n-1], true
			}
		}
		phrase := strings.Join(words, " ")
		if e.metalPhrase(phrase) || anyWord(phrase, e.lex.HighPolished) {
			continue
		}
		return cases.Title(language.English).String(phrase), i, stop[len(words)-1], true
	}
}

// colorWords reads up to maxColorWords words after offset at, stopping at
// punctuation or a stop word. stop[i] is the byte offset after words[i]
func colorWords(s string, at int) (words []string, stop []int) {
	if at >= len(s) || s[at] != ' ' {
		return nil, nil
	}
	i := at
	for len(words) < maxColorWords {
		for i < len(s) && s[i] == ' ' {
			i++
		}
		j := i
		for j < len(s) && s[j] != ' ' {
			j++
		}
		w := strings.TrimRight(s[i:j], ",.;:)/")
		cut := len(w) != j-i
		if w == "" || !isWordString(w) || !startsLetter(w) {
			break
		}
		if _, sw := colorStop[w]; sw {
			break
		}
		words = append(words, w)
		stop = append(stop, i+len(w))
		if cut {
			break
		}
		i = j
	}
	return words, stop
}

func startsLetter(w string) bool {
	return w != "" && w[0] >= 'a' && w[0] <= 'z'
}

// metalPhrase reports whether phrase mentions a material or plating
func (e *Extractor) metalPhrase(phrase string) bool {
	hit := false
	for _, t := range []*lexicon.Table{e.lex.Materials, e.lex.Platings} {
		t.Each(func(en lexicon.Entry) bool {
			if indexWord(phrase, en.Phrase, 0) >= 0 {
				hit = true
				return false
			}
			return true
		})
	}
	return hit
}

// precedingColor tries the two words before the stone mention, then the last one
func (e *Extractor) precedingColor(work string, stoneStart int) string {
	words := lastWords(work, stoneStart, 2)
	for n := len(words); n > 0; n-- {
		if l, ok := e.lex.StoneColors.Lookup(strings.Join(words[len(words)-n:], " ")); ok {
			return l
		}
	}
	return ""
}

// platings returns up to MaxPlatings distinct labels in discovery order.
// Tags equal to a plating phrase count after the title
func (e *Extractor) platings(work string, tags []string) []string {
	var out []string
	add := func(label string) {
		for _, p := range out {
			if p == label {
				return
			}
		}
		if len(out) < MaxPlatings {
			out = append(out, label)
		}
	}

	for _, m := range e.plating.scan(work, func(s, t int) bool { return boundaryOK(work, s, t) }) {
		add(e.platingLabel[m.id])
	}
	for _, t := range tags {
		if l, ok := e.lex.Platings.Lookup(t); ok {
			add(l)
		}
	}
	return out
}

// material is the first table entry present in the title or the tags.
// A tag may carry either the phrase or the label, eg "stainless steel"
func (e *Extractor) material(work string, tags map[string]struct{}) string {
	out := ""
	e.lex.Materials.Each(func(en lexicon.Entry) bool {
		_, phraseTag := tags[en.Phrase]
		_, labelTag := tags[normalize.Key(en.Label)]
		if indexWord(work, en.Phrase, 0) >= 0 || phraseTag || labelTag {
			out = en.Label
			return false
		}
		return true
	})
	return out
}

// firstEntry returns the label of the first entry, in table order, found on word
// boundaries in the title or any tag
func firstEntry(t *lexicon.Table, work string, tags []string) (string, bool) {
	label, ok := "", false
	t.Each(func(en lexicon.Entry) bool {
		if indexWord(work, en.Phrase, 0) >= 0 {
			label, ok = en.Label, true
			return false
		}
		for _, tg := range tags {
			if indexWord(tg, en.Phrase, 0) >= 0 {
				label, ok = en.Label, true
				return false
			}
		}
		return true
	})
	return label, ok
}

func anyTag(tags map[string]struct{}, phrases []string) bool {
	for _, p := range phrases {
		if _, ok := tags[p]; ok {
			return true
		}
	}
	return false
}

func anyWord(s string, phrases []string) bool {
	for _, p := range phrases {
		if indexWord(s, p, 0) >= 0 {
			return true
		}
	}
	return false
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
