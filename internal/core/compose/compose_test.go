package compose

import (
	"strings"
	"testing"

	"titlesmith/internal/core/extract"
)

func scenarioA() extract.Attributes {
	return extract.Attributes{
		Audience:    extract.AudienceWomen,
		ProductType: "Ring",
		Styles:      []string{"Solitaire"},
		StoneShape:  "Round",
		StoneColor:  "Clear",
		StoneType:   "Cubic Zirconia",
		Material:    "Stainless Steel",
		Plating:     []string{"Gold-Plated"},
		Descriptors: []string{extract.HighPolished},
	}
}

func TestCompose_Scenarios(t *testing.T) {
	cases := []struct {
		name    string
		attrs   extract.Attributes
		policy  Policy
		want    string
		rescued bool
	}{
		{
			name:   "mandatory sections fill the default budget exactly",
			attrs:  scenarioA(),
			policy: Policy{Budget: 80},
			want:   "Women's Ring, Solitaire, Round Clear Cubic Zirconia, Stainless Steel Gold-Plated",
		},
		{
			name:    "short budget rescued by abbreviation",
			attrs:   scenarioA(),
			policy:  Policy{Budget: 75},
			want:    "Women's Ring, Solitaire, Round Clear CZ, Stainless Steel Gold-Plated",
			rescued: true,
		},
		{
			name: "set gets suffix and quantity",
			attrs: extract.Attributes{
				Audience:    extract.AudienceWomen,
				IsSet:       true,
				ProductType: "Ring",
				Styles:      []string{"Stackable"},
				StoneType:   "Cubic Zirconia",
				Material:    "Stainless Steel",
			},
			policy: Policy{Budget: 80},
			want:   "Women's Ring Set, Stackable, Cubic Zirconia, Stainless Steel, 2 Pcs",
		},
		{
			name: "empty stone section leaves no separator artifact",
			attrs: extract.Attributes{
				Audience:    extract.AudienceMen,
				ProductType: "Ring Band",
				Material:    "Stainless Steel",
				Plating:     []string{"Black-Plated"},
			},
			policy: Policy{Budget: 80},
			want:   "Men's Ring Band, Stainless Steel Black-Plated",
		},
		{
			name: "two platings render as one phrase",
			attrs: extract.Attributes{
				Audience:    extract.AudienceWomen,
				ProductType: "Ring",
				StoneColor:  "Pink",
				StoneType:   "Cubic Zirconia",
				Plating:     []string{"Gold-Plated", "Rose Gold-Plated"},
			},
			policy: Policy{Budget: 80},
			want:   "Women's Ring, Pink Cubic Zirconia, Gold & Rose Gold-Plated",
		},
		{
			name: "overflow caused only by cubic zirconia",
			attrs: extract.Attributes{
				Audience:    extract.AudienceWomen,
				ProductType: "Cocktail Ring",
				Styles:      []string{"Halo", "Eternity"},
				StoneShape:  "Round",
				StoneColor:  "Champagne",
				StoneType:   "Cubic Zirconia",
				Material:    "Brass",
				Plating:     []string{"Rhodium-Plated"},
			},
			policy:  Policy{Budget: 80},
			want:    "Women's Cocktail Ring, Halo Eternity, Round Champagne CZ, Brass Rhodium-Plated",
			rescued: true,
		},
		{
			name: "unspecified audience drops the possessive",
			attrs: extract.Attributes{
				Audience:    extract.AudienceUnspecified,
				ProductType: "Bracelet",
				Material:    "Iron",
				Descriptors: []string{extract.HighPolished, extract.Gift},
			},
			policy: Policy{Budget: 75},
			want:   "Bracelet, Iron, High Polished, Gift",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Compose(tc.attrs, tc.policy)
			if r.Title != tc.want {
				t.Fatalf("title:\n got %q\nwant %q", r.Title, tc.want)
			}
			if r.Length != Len(tc.want) {
				t.Fatalf("length: got %d want %d", r.Length, Len(tc.want))
			}
			if r.Rescued != tc.rescued {
				t.Fatalf("rescued: got %v want %v", r.Rescued, tc.rescued)
			}
			if r.Overflow {
				t.Fatalf("unexpected overflow (%d > %d)", r.Length, r.Budget)
			}
		})
	}
}

func TestCompose_DescriptorOrdering(t *testing.T) {
	a := extract.Attributes{
		Audience:    extract.AudienceWomen,
		ProductType: "Ring",
		Material:    "Brass",
		Descriptors: []string{extract.HighPolished, extract.Gift},
	}
	// "Women's Ring, Brass" is 19; High Polished needs 15 more, Gift 6
	lenient := Compose(a, Policy{Budget: 30})
	if lenient.Title != "Women's Ring, Brass, Gift" {
		t.Fatalf("lenient: got %q", lenient.Title)
	}
	strict := Compose(a, Policy{Budget: 30, StrictDescriptors: true})
	if strict.Title != "Women's Ring, Brass" {
		t.Fatalf("strict: got %q", strict.Title)
	}
	if len(strict.Sections.Descriptors) != 0 {
		t.Fatalf("strict descriptors: %v", strict.Sections.Descriptors)
	}
}

func TestCompose_NoDuplicateTerms(t *testing.T) {
	a := extract.Attributes{
		Audience:    extract.AudienceWomen,
		ProductType: "Ring",
		Styles:      []string{"Heart", "Halo", "heart"},
		StoneShape:  "Heart",
		StoneType:   "Crystal",
		Descriptors: []string{"Gift", "gift"},
	}
	r := Compose(a, Policy{Budget: 80})
	if want := "Women's Ring, Heart Halo, Crystal, Gift"; r.Title != want {
		t.Fatalf("got %q want %q", r.Title, want)
	}
	for _, term := range []string{"heart", "gift"} {
		if n := strings.Count(strings.ToLower(r.Title), term); n != 1 {
			t.Fatalf("%q appears %d times in %q", term, n, r.Title)
		}
	}
}

func TestCompose_PriorityOrder(t *testing.T) {
	a := scenarioA()
	a.IsSet = true
	a.Plating = nil
	r := Compose(a, Policy{Budget: 200})
	idx := func(s string) int {
		i := strings.Index(r.Title, s)
		if i < 0 {
			t.Fatalf("%q missing from %q", s, r.Title)
		}
		return i
	}
	order := []int{
		idx(r.Sections.Base),
		idx(r.Sections.Style),
		idx(r.Sections.Stone),
		idx(r.Sections.Metal),
		idx(setQuantity),
		idx(extract.HighPolished),
	}
	for i := 1; i < len(order); i++ {
		if order[i] <= order[i-1] {
			t.Fatalf("section %d out of order in %q", i, r.Title)
		}
	}
}

func TestCompose_UnrescuableOverflow(t *testing.T) {
	a := extract.Attributes{
		Audience:    extract.AudienceWomen,
		ProductType: "Pendant Necklace",
		Styles:      []string{"Solitaire", "Halo"},
		StoneShape:  "Pear",
		StoneColor:  "Light Sapphire",
		StoneType:   "Top Grade Crystal",
		Material:    "Sterling Silver",
		Plating:     []string{"Gold-Plated", "Rose Gold-Plated"},
	}

	kept := Compose(a, Policy{Budget: 75, Rescue: RescueAbbreviate})
	if !kept.Overflow || kept.Rescued {
		t.Fatalf("abbreviate: overflow=%v rescued=%v", kept.Overflow, kept.Rescued)
	}
	if !strings.HasSuffix(kept.Title, "Gold & Rose Gold-Plated") {
		t.Fatalf("abbreviate should not cut: %q", kept.Title)
	}

	none := Compose(a, Policy{Budget: 75, Rescue: RescueNone})
	if none.Title != kept.Title {
		t.Fatalf("none: got %q", none.Title)
	}

	cut := Compose(a, Policy{Budget: 75, Rescue: RescueSlice})
	if cut.Overflow || cut.Length > 75 || !cut.Rescued {
		t.Fatalf("slice: %+v", cut)
	}
	if !strings.HasPrefix(kept.Title, cut.Title) {
		t.Fatalf("slice must be a prefix: %q", cut.Title)
	}
}

func TestCompose_NoneSkipsAbbreviation(t *testing.T) {
	r := Compose(scenarioA(), Policy{Budget: 75, Rescue: RescueNone})
	if !r.Overflow || r.Rescued || !strings.Contains(r.Title, "Cubic Zirconia") {
		t.Fatalf("got %+v", r)
	}
}

func TestCompose_BudgetInvariantWithSlice(t *testing.T) {
	styles := [][]string{nil, {"Solitaire"}, {"Halo", "Eternity", "Stackable"}}
	stones := []string{"", "Cubic Zirconia", "AAA Grade Cubic Zirconia", "Semi-Precious Stone"}
	platings := [][]string{nil, {"Gold-Plated"}, {"Light Coffee-Plated", "Rose Gold-Plated"}}
	for _, budget := range []int{BudgetShort, BudgetDefault} {
		for _, st := range styles {
			for _, stone := range stones {
				for _, pl := range platings {
					a := extract.Attributes{
						Audience:    extract.AudienceWomen,
						IsSet:       true,
						ProductType: "Cocktail Ring",
						Styles:      st,
						StoneShape:  "Oblong",
						StoneColor:  "London Blue",
						StoneType:   stone,
						Material:    "Stainless Steel",
						Plating:     pl,
						Descriptors: []string{extract.HighPolished, extract.Gift},
					}
					p := Policy{Budget: budget, Rescue: RescueSlice}
					r := Compose(a, p)
					if r.Length > budget || r.Overflow {
						t.Fatalf("budget %d exceeded: %q (%d)", budget, r.Title, r.Length)
					}
					if again := Compose(a, p); again.Title != r.Title {
						t.Fatalf("non deterministic: %q vs %q", again.Title, r.Title)
					}
				}
			}
		}
	}
}

func TestComposeString(t *testing.T) {
	if got, want := ComposeString(scenarioA(), Policy{}), Compose(scenarioA(), Policy{Budget: BudgetDefault}).Title; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestLenCountsRunes(t *testing.T) {
	if got := Len("Pavé"); got != 4 {
		t.Fatalf("got %d", got)
	}
}

func TestParseRescue(t *testing.T) {
	for in, want := range map[string]Rescue{"abbreviate": RescueAbbreviate, " Slice ": RescueSlice, "NONE": RescueNone} {
		got, err := ParseRescue(in)
		if err != nil || got != want {
			t.Fatalf("ParseRescue(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseRescue("truncate"); err == nil {
		t.Fatalf("expected error")
	}
}
