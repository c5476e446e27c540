// Package lexicon loads and compiles the versioned jewelry lookup tables from the
// embedded lexicon.json (or an external JSON/YAML file). Tables are read-only once
// loaded and safe to share across goroutines
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"titlesmith/internal/core/normalize"
	"titlesmith/internal/platform/config"
	perr "titlesmith/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.json
var embedded []byte

// SupportedVersion is the only lexicon schema version this build understands
const SupportedVersion = 1

// Format identifies the encoding of a lexicon document
type Format string

const (
	// FormatJSON is the embedded/default encoding
	FormatJSON Format = "json"
	// FormatYAML is accepted for hand-maintained override files
	FormatYAML Format = "yaml"
)

type rawEntry struct {
	Phrase string `json:"phrase" yaml:"phrase"`
	Label  string `json:"label"  yaml:"label"`
}

type rawProductRule struct {
	Label  string     `json:"label"  yaml:"label"`
	Groups [][]string `json:"groups" yaml:"groups"`
}

type rawAudience struct {
	Men    []string `json:"men"    yaml:"men"`
	Unisex []string `json:"unisex" yaml:"unisex"`
}

type rawLexicon struct {
	Version            int              `json:"version"              yaml:"version"`
	Meta               map[string]any   `json:"meta"                 yaml:"meta"`
	Audience           rawAudience      `json:"audience"             yaml:"audience"`
	SetTags            []string         `json:"set_tags"             yaml:"set_tags"`
	SetMarker          string           `json:"set_marker"           yaml:"set_marker"`
	NoStone            []string         `json:"no_stone"             yaml:"no_stone"`
	Epoxy              []rawEntry       `json:"epoxy"                yaml:"epoxy"`
	HighPolished       []string         `json:"high_polished"        yaml:"high_polished"`
	DefaultProductType string           `json:"default_product_type" yaml:"default_product_type"`
	ProductTypes       []rawProductRule `json:"product_types"        yaml:"product_types"`
	Styles             []rawEntry       `json:"styles"               yaml:"styles"`
	Shapes             []rawEntry       `json:"shapes"               yaml:"shapes"`
	StoneTypes         []rawEntry       `json:"stone_types"          yaml:"stone_types"`
	StoneColors        []rawEntry       `json:"stone_colors"         yaml:"stone_colors"`
	Platings           []rawEntry       `json:"platings"             yaml:"platings"`
	Materials          []rawEntry       `json:"materials"            yaml:"materials"`
}

// ProductRule maps a tag co-occurrence to a product type label.
// Every group must be satisfied by at least one tag
type ProductRule struct {
	Label  string
	Groups [][]string // normalized tag alternatives
}

// Matches reports whether every group has a member in tags
func (r ProductRule) Matches(tags map[string]struct{}) bool {
	if len(r.Groups) == 0 {
		return false
	}
	for _, g := range r.Groups {
		hit := false
		for _, t := range g {
			if _, ok := tags[t]; ok {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// Lexicon is the compiled set of lookup tables
type Lexicon struct {
	Version int
	Meta    map[string]any

	StoneTypes  *Table
	StoneColors *Table
	Platings    *Table
	Materials   *Table
	Styles      *Table
	Shapes      *Table
	Epoxy       *Table

	ProductTypes       []ProductRule
	DefaultProductType string

	// normalized phrase lists
	MenTags      []string
	UnisexTags   []string
	SetTags      []string
	SetMarker    string
	NoStone      []string
	HighPolished []string
}

// Tables returns every lookup table, for reporting
func (l *Lexicon) Tables() []*Table {
	return []*Table{l.StoneTypes, l.StoneColors, l.Platings, l.Materials, l.Styles, l.Shapes, l.Epoxy}
}

// Load returns the compiled lexicon from the embedded lexicon.json
func Load() (*Lexicon, error) {
	return Parse(embedded, FormatJSON)
}

var (
	defOnce sync.Once
	defLex  *Lexicon
	defErr  error
)

// Default returns the embedded lexicon, compiled once per process
func Default() (*Lexicon, error) {
	defOnce.Do(func() { defLex, defErr = Load() })
	return defLex, defErr
}

// MustDefault is Default for wiring code that cannot continue without tables
func MustDefault() *Lexicon {
	l, err := Default()
	if err != nil {
		panic(err)
	}
	return l
}

// LoadFile reads a lexicon from disk, picking the decoder by extension (.json, .yaml, .yml)
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return Parse(data, FormatYAML)
	case ".json":
		return Parse(data, FormatJSON)
	default:
		return nil, fmt.Errorf("lexicon: unsupported file extension %q", filepath.Ext(path))
	}
}

// FromConfig loads LEXICON_PATH under conf when set, otherwise the embedded tables
func FromConfig(conf config.Conf) (*Lexicon, error) {
	path := conf.MayString("LEXICON_PATH", "")
	if path == "" {
		return Default()
	}
	l, err := LoadFile(path)
	if err != nil {
		return nil, perr.WithField(perr.Wrap(err, perr.ErrorCodeInvalidArgument, "lexicon load failed"), "LEXICON_PATH")
	}
	return l, nil
}

// Parse decodes and compiles a lexicon document
func Parse(data []byte, format Format) (*Lexicon, error) {
	var rl rawLexicon
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &rl); err != nil {
			return nil, fmt.Errorf("lexicon: parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &rl); err != nil {
			return nil, fmt.Errorf("lexicon: parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("lexicon: unknown format %q", format)
	}
	return compile(rl)
}

func compile(rl rawLexicon) (*Lexicon, error) {
	if rl.Version != SupportedVersion {
		return nil, fmt.Errorf("lexicon: unsupported version %d (want %d)", rl.Version, SupportedVersion)
	}

	l := &Lexicon{
		Version:            rl.Version,
		Meta:               rl.Meta,
		DefaultProductType: strings.TrimSpace(rl.DefaultProductType),
		MenTags:            keys(rl.Audience.Men),
		UnisexTags:         keys(rl.Audience.Unisex),
		SetTags:            keys(rl.SetTags),
		SetMarker:          normalize.Key(rl.SetMarker),
		NoStone:            keys(rl.NoStone),
		HighPolished:       keys(rl.HighPolished),
	}
	if l.DefaultProductType == "" {
		return nil, fmt.Errorf("lexicon: default_product_type is required")
	}

	var err error
	tables := []struct {
		dst  **Table
		name string
		in   []rawEntry
	}{
		{&l.StoneTypes, "stone_types", rl.StoneTypes},
		{&l.StoneColors, "stone_colors", rl.StoneColors},
		{&l.Platings, "platings", rl.Platings},
		{&l.Materials, "materials", rl.Materials},
		{&l.Styles, "styles", rl.Styles},
		{&l.Shapes, "shapes", rl.Shapes},
		{&l.Epoxy, "epoxy", rl.Epoxy},
	}
	for _, t := range tables {
		if *t.dst, err = newTable(t.name, t.in); err != nil {
			return nil, err
		}
	}

	for i, pr := range rl.ProductTypes {
		label := strings.TrimSpace(pr.Label)
		if label == "" {
			return nil, fmt.Errorf("lexicon: product_types[%d]: empty label", i)
		}
		if len(pr.Groups) == 0 {
			return nil, fmt.Errorf("lexicon: product_types[%d] %q: no tag groups", i, label)
		}
		rule := ProductRule{Label: label}
		for j, g := range pr.Groups {
			ng := keys(g)
			if len(ng) == 0 {
				return nil, fmt.Errorf("lexicon: product_types[%d] %q: group %d is empty", i, label, j)
			}
			rule.Groups = append(rule.Groups, ng)
		}
		l.ProductTypes = append(l.ProductTypes, rule)
	}

	return l, nil
}

// keys normalizes a phrase list, dropping empties and duplicates while keeping order
func keys(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		k := normalize.Key(s)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
