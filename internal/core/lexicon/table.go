package lexicon

import (
	"fmt"
	"strings"

	"titlesmith/internal/core/normalize"
)

// Entry is one normalized phrase and its canonical display label
type Entry struct {
	Phrase string `json:"phrase"`
	Label  string `json:"label"`
}

// Table is an ordered phrase -> label mapping. Order is match priority
type Table struct {
	name    string
	entries []Entry
	index   map[string]string
}

func newTable(name string, in []rawEntry) (*Table, error) {
	t := &Table{
		name:    name,
		entries: make([]Entry, 0, len(in)),
		index:   make(map[string]string, len(in)),
	}
	for i, e := range in {
		phrase := normalize.Key(e.Phrase)
		label := strings.TrimSpace(e.Label)
		if phrase == "" || label == "" {
			return nil, fmt.Errorf("lexicon: %s[%d]: phrase and label are required", name, i)
		}
		if _, dup := t.index[phrase]; dup {
			return nil, fmt.Errorf("lexicon: %s: duplicate phrase %q", name, phrase)
		}
		t.index[phrase] = label
		t.entries = append(t.entries, Entry{Phrase: phrase, Label: label})
	}
	return t, nil
}

// Name returns the table name as it appears in the lexicon document
func (t *Table) Name() string { return t.name }

// Len returns the number of entries
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Lookup maps a phrase (normalized on the way in) to its label
func (t *Table) Lookup(phrase string) (string, bool) {
	if t == nil {
		return "", false
	}
	label, ok := t.index[normalize.Key(phrase)]
	return label, ok
}

// Entries returns a copy of the entries in priority order
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	return append([]Entry(nil), t.entries...)
}

// Each walks entries in priority order until fn returns false
func (t *Table) Each(fn func(Entry) bool) {
	if t == nil {
		return
	}
	for _, e := range t.entries {
		if !fn(e) {
			return
		}
	}
}
