// Package profile bundles extractor options and composer policy under a name.
// The observed title variants disagree on budget, Gift filler and overflow rescue,
// so each variant is a named profile and the deployment picks one
package profile

import (
	"strings"

	"titlesmith/internal/core/compose"
	"titlesmith/internal/core/extract"
	"titlesmith/internal/platform/config"
	perr "titlesmith/internal/platform/errors"
)

// Name identifies a built-in profile
type Name string

const (
	// Canonical is 80 characters, abbreviation rescue, no Gift
	Canonical Name = "canonical"
	// Legacy is 75 characters with the Gift filler
	Legacy Name = "legacy"
	// Strict is 75 characters, strict descriptor order and hard slicing
	Strict Name = "strict"
)

// Profile is one complete title policy
type Profile struct {
	Name        Name
	Description string
	Extract     extract.Options
	Policy      compose.Policy
}

var builtin = []Profile{
	{
		Name:        Canonical,
		Description: "80 characters, Cubic Zirconia abbreviated on overflow, no Gift filler",
		Policy:      compose.Policy{Budget: compose.BudgetDefault, Rescue: compose.RescueAbbreviate},
	},
	{
		Name:        Legacy,
		Description: "75 characters with a Gift filler descriptor",
		Extract:     extract.Options{AppendGift: true},
		Policy:      compose.Policy{Budget: compose.BudgetShort, Rescue: compose.RescueAbbreviate},
	},
	{
		Name:        Strict,
		Description: "75 characters, stops at the first descriptor that does not fit, hard slices on overflow",
		Policy:      compose.Policy{Budget: compose.BudgetShort, StrictDescriptors: true, Rescue: compose.RescueSlice},
	},
}

// Builtin returns the built-in profiles in a stable order
func Builtin() []Profile {
	return append([]Profile(nil), builtin...)
}

// Lookup returns a built-in profile by name (case-insensitive)
func Lookup(name string) (Profile, error) {
	n := Name(strings.ToLower(strings.TrimSpace(name)))
	for _, p := range builtin {
		if p.Name == n {
			return p, nil
		}
	}
	return Profile{}, perr.Newf(perr.ErrorCodeInvalidArgument, "unknown title profile %q", name)
}

// ValidBudget reports whether b is a budget the marketplace accepts
func ValidBudget(b int) bool {
	return b == compose.BudgetShort || b == compose.BudgetDefault
}

// FromConfig resolves the deployment profile from TITLE_* keys under conf.
// The named profile is the base; BUDGET, GIFT, STRICT_DESCRIPTORS and RESCUE override it
func FromConfig(conf config.Conf) (Profile, error) {
	p, err := Lookup(conf.MayString("TITLE_PROFILE", string(Canonical)))
	if err != nil {
		return Profile{}, perr.WithField(err, "TITLE_PROFILE")
	}

	p.Policy.Budget = conf.MayInt("TITLE_BUDGET", p.Policy.Budget)
	if !ValidBudget(p.Policy.Budget) {
		return Profile{}, perr.WithField(
			perr.Newf(perr.ErrorCodeInvalidArgument, "title budget must be %d or %d, got %d",
				compose.BudgetShort, compose.BudgetDefault, p.Policy.Budget),
			"TITLE_BUDGET")
	}
	p.Extract.AppendGift = conf.MayBool("TITLE_GIFT", p.Extract.AppendGift)
	p.Policy.StrictDescriptors = conf.MayBool("TITLE_STRICT_DESCRIPTORS", p.Policy.StrictDescriptors)

	if s := conf.MayString("TITLE_RESCUE", ""); s != "" {
		r, err := compose.ParseRescue(s)
		if err != nil {
			return Profile{}, perr.WithField(perr.Wrap(err, perr.ErrorCodeInvalidArgument, "invalid rescue mode"), "TITLE_RESCUE")
		}
		p.Policy.Rescue = r
	}
	return p, nil
}

// Catalog resolves per-request profile names against the built-ins, with the
// configured deployment profile standing in for its own name and for ""
type Catalog struct {
	def Profile
}

// NewCatalog returns a Catalog whose default is def
func NewCatalog(def Profile) *Catalog { return &Catalog{def: def} }

// Default returns the deployment profile
func (c *Catalog) Default() Profile { return c.def }

// Resolve maps a requested name onto a profile
func (c *Catalog) Resolve(name string) (Profile, error) {
	n := Name(strings.ToLower(strings.TrimSpace(name)))
	if n == "" || n == c.def.Name {
		return c.def, nil
	}
	return Lookup(string(n))
}

// All lists every resolvable profile, the deployment profile in place of its built-in
func (c *Catalog) All() []Profile {
	out := Builtin()
	for i := range out {
		if out[i].Name == c.def.Name {
			out[i] = c.def
		}
	}
	return out
}
